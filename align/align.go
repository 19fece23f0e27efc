package align

import (
	"fmt"

	"github.com/katalvlaran/rpdiff/routepath"
)

// Align lines up the links of seq1 and seq2.
//
// Algorithm Outline:
//  1. Extend each sequence with a terminal link starting at the last real
//     link's end node (EndNode=nil).
//  2. Keep cursors i (ext1) and j (ext2). While either is in range:
//     - one side exhausted       → emit the other side alone, advance it.
//     - ext1[i] matches ext2[j]  → emit both, Equal=true, advance both.
//     - otherwise look ahead: d1 = distance to ext1[i] in ext2 from j,
//     d2 = distance to ext2[j] in ext1 from i (-1 when absent).
//     d1 < d2 → emit ext1[i] alone, advance i.
//     d1 > d2 → emit ext2[j] alone, advance j.
//     equal   → emit both per opts.TieBreak, advance both.
//  3. Return rows in emission order.
//
// Every loop step advances at least one cursor, so
// len(rows) ≤ len(seq1)+len(seq2)+2.
//
// Complexity:
//
//	Time   = O(N·M) worst case (lookahead scans)
//	Memory = O(N+M)
//
// Errors:
//   - ErrEmptySequence     — seq1 or seq2 is empty.
//   - ErrAlignmentOverflow — a sequence is longer than opts.MaxLinks.
func Align(seq1, seq2 []routepath.Link, opts *Options) ([]Row, error) {
	maxLinks := DefaultMaxLinks
	tie := TieBreakMismatch
	if opts != nil {
		if opts.MaxLinks > 0 {
			maxLinks = opts.MaxLinks
		}
		tie = opts.TieBreak
	}

	if len(seq1) == 0 {
		return nil, fmt.Errorf("first: %w", ErrEmptySequence)
	}
	if len(seq2) == 0 {
		return nil, fmt.Errorf("second: %w", ErrEmptySequence)
	}
	if len(seq1) > maxLinks {
		return nil, fmt.Errorf("first has %d links, limit %d: %w", len(seq1), maxLinks, ErrAlignmentOverflow)
	}
	if len(seq2) > maxLinks {
		return nil, fmt.Errorf("second has %d links, limit %d: %w", len(seq2), maxLinks, ErrAlignmentOverflow)
	}

	ext1, ext2 := extend(seq1), extend(seq2)
	n, m := len(ext1), len(ext2)
	rows := make([]Row, 0, n+m)
	limit := n + m

	i, j := 0, 0
	for step := 0; i < n || j < m; step++ {
		if step >= limit {
			// unreachable while every branch advances a cursor
			return nil, fmt.Errorf("no progress after %d steps: %w", step, ErrAlignmentOverflow)
		}

		var l1, l2 *ComparableLink
		if i < n {
			l1 = ext1[i]
		}
		if j < m {
			l2 = ext2[j]
		}

		switch {
		case l1 == nil:
			rows = append(rows, Row{Second: l2})
			j++
		case l2 == nil:
			rows = append(rows, Row{First: l1})
			i++
		case l1.Matches(l2):
			rows = append(rows, Row{First: l1, Second: l2, Equal: true})
			i++
			j++
		default:
			d1 := distance(ext2, j, l1)
			d2 := distance(ext1, i, l2)
			switch {
			case d1 < d2:
				rows = append(rows, Row{First: l1})
				i++
			case d1 > d2:
				rows = append(rows, Row{Second: l2})
				j++
			default:
				rows = append(rows, Row{First: l1, Second: l2, Equal: tie == TieBreakLegacy})
				i++
				j++
			}
		}
	}

	return rows, nil
}

// AlignRoutePaths validates a and b and aligns their links.
func AlignRoutePaths(a, b *routepath.RoutePath, opts *Options) ([]Row, error) {
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("first route-path: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("second route-path: %w", err)
	}

	return Align(a.Links, b.Links, opts)
}

// extend converts seq to comparable links and appends the terminal link.
// seq must be non-empty.
func extend(seq []routepath.Link) []*ComparableLink {
	out := make([]*ComparableLink, 0, len(seq)+1)
	for k := range seq {
		end := seq[k].EndNode
		out = append(out, &ComparableLink{
			ID:          seq[k].ID,
			StartNode:   seq[k].StartNode,
			EndNode:     &end,
			OrderNumber: seq[k].OrderNumber,
		})
	}
	last := seq[len(seq)-1]
	out = append(out, &ComparableLink{
		ID:          last.ID,
		StartNode:   last.EndNode,
		OrderNumber: last.OrderNumber + 1,
	})

	return out
}

// distance returns k-from for the first ext[k] (k ≥ from) matching l, or -1.
func distance(ext []*ComparableLink, from int, l *ComparableLink) int {
	for k := from; k < len(ext); k++ {
		if ext[k].Matches(l) {
			return k - from
		}
	}

	return -1
}
