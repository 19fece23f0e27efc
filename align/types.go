package align

import "github.com/katalvlaran/rpdiff/routepath"

// DefaultMaxLinks is the longest route-path Align accepts.
const DefaultMaxLinks = 10000

// TieBreak controls the Equal flag of a paired row emitted when neither
// link can be found ahead in the other sequence at a closer distance.
//
//   - TieBreakMismatch — pair the links and report Equal=false.
//   - TieBreakLegacy   — pair the links and report Equal=true.
type TieBreak int

const (
	// TieBreakMismatch reports tied, unequal links as a mismatch.
	TieBreakMismatch TieBreak = iota

	// TieBreakLegacy reports tied links as equal.
	TieBreakLegacy
)

// String returns "mismatch" or "legacy".
func (t TieBreak) String() string {
	switch t {
	case TieBreakMismatch:
		return "mismatch"
	case TieBreakLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Options configures Align.
//
// Fields:
//   - MaxLinks — longest accepted input sequence; ≤0 means DefaultMaxLinks.
//   - TieBreak — Equal flag for tied rows.
type Options struct {
	MaxLinks int
	TieBreak TieBreak
}

// DefaultOptions returns MaxLinks=DefaultMaxLinks and TieBreakMismatch.
func DefaultOptions() Options {
	return Options{MaxLinks: DefaultMaxLinks, TieBreak: TieBreakMismatch}
}

// ComparableLink is a link as seen by the aligner. EndNode is nil only on
// the synthetic terminal link appended after the last real link.
type ComparableLink struct {
	ID          string
	StartNode   routepath.Node
	EndNode     *routepath.Node
	OrderNumber int
}

// Terminal reports whether l is the synthetic terminal link.
func (l *ComparableLink) Terminal() bool { return l.EndNode == nil }

// Matches reports whether l and o describe the same link: equal start ids
// and equal end ids, or equal start ids alone when either end is missing.
func (l *ComparableLink) Matches(o *ComparableLink) bool {
	if l.StartNode.ID != o.StartNode.ID {
		return false
	}
	if l.EndNode == nil || o.EndNode == nil {
		return true
	}

	return l.EndNode.ID == o.EndNode.ID
}

// String renders "start→end", or just "start" for the terminal link.
func (l *ComparableLink) String() string {
	if l.EndNode == nil {
		return l.StartNode.ID
	}

	return l.StartNode.ID + "→" + l.EndNode.ID
}

// RowKind classifies a Row.
type RowKind int

const (
	// KindEqual — both sides present and equal.
	KindEqual RowKind = iota
	// KindOnlyFirst — only the first sequence has a link on this row.
	KindOnlyFirst
	// KindOnlySecond — only the second sequence has a link on this row.
	KindOnlySecond
	// KindMismatch — both sides present but not equal.
	KindMismatch
)

// Row is one line of the side-by-side comparison. First or Second is nil
// when that sequence has no link on this row.
type Row struct {
	First  *ComparableLink `json:"first"`
	Second *ComparableLink `json:"second"`
	Equal  bool            `json:"equal"`
}

// Kind classifies r.
func (r Row) Kind() RowKind {
	switch {
	case r.First == nil:
		return KindOnlySecond
	case r.Second == nil:
		return KindOnlyFirst
	case r.Equal:
		return KindEqual
	default:
		return KindMismatch
	}
}

// String returns "equal", "only-first", "only-second" or "mismatch".
func (k RowKind) String() string {
	switch k {
	case KindEqual:
		return "equal"
	case KindOnlyFirst:
		return "only-first"
	case KindOnlySecond:
		return "only-second"
	case KindMismatch:
		return "mismatch"
	default:
		return "unknown"
	}
}

// MarshalText encodes k by name.
func (k RowKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }
