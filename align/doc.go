// Package align lines up the links of two route-paths row by row so that
// a side-by-side view can show which links both variants share and where
// one of them takes a detour.
//
// 🚏 What does it do?
//
//	Given two ordered link sequences it walks both with a cursor each.
//	Matching links are emitted on the same row; when they differ, a forward
//	lookahead decides which side is "ahead" and that side's link is drawn
//	alone, leaving a gap on the other side.
//
//	  seq1: A→B  B→C  C→D  D
//	  seq2: A→B   ·   C→D  D
//
// ✨ Key features:
//   - single pass, O(N·M) worst case, no DP matrix
//   - synthetic terminal link per sequence, so the last node gets a row too
//   - configurable tie-break for ambiguous rows (see TieBreak)
//   - hard length ceiling: over-long inputs fail with ErrAlignmentOverflow
//
// ⚙️ Usage:
//
//	opts := align.DefaultOptions()
//	rows, err := align.Align(rpA.Links, rpB.Links, &opts)
//	if err != nil {
//	  // handle ErrEmptySequence or ErrAlignmentOverflow
//	}
//	s := align.Summarize(rows)
//	fmt.Println(s.Identical())
//
// Align is pure and keeps no package state, so it may be called from many
// goroutines at once.
package align
