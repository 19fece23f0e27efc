// Package render presents alignment rows: a side-by-side text table with
// optional lipgloss highlighting, or a JSON document for other tools.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/rpdiff/align"
)

// Status markers printed in the last column of the text table.
const (
	MarkEqual      = "="
	MarkOnlyFirst  = "<"
	MarkOnlySecond = ">"
	MarkMismatch   = "≠"
	MarkAbsent     = "-"
)

// TextOptions configures Text.
type TextOptions struct {
	FirstTitle  string // column header for the first sequence; default "FIRST"
	SecondTitle string // column header for the second sequence; default "SECOND"
	Color       bool   // highlight rows that are not equal
	Summary     bool   // append a one-line summary
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	oneSidedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5C07B"))
	mismatchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E06C75")).Bold(true)
)

// Text writes rows as an aligned table:
//
//	#  FIRST  SECOND
//	1  A→B    A→B     =
//	2  B→C    -       <
func Text(w io.Writer, rows []align.Row, opts TextOptions) error {
	first, second := opts.FirstTitle, opts.SecondTitle
	if first == "" {
		first = "FIRST"
	}
	if second == "" {
		second = "SECOND"
	}

	cells := make([][3]string, len(rows))
	wNum, w1, w2 := lipgloss.Width("#"), lipgloss.Width(first), lipgloss.Width(second)
	for k, r := range rows {
		cells[k] = [3]string{strconv.Itoa(k + 1), cell(r.First), cell(r.Second)}
		wNum = max(wNum, lipgloss.Width(cells[k][0]))
		w1 = max(w1, lipgloss.Width(cells[k][1]))
		w2 = max(w2, lipgloss.Width(cells[k][2]))
	}

	header := join(pad("#", wNum), pad(first, w1), second)
	if opts.Color {
		header = headerStyle.Render(header)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	for k, r := range rows {
		line := join(pad(cells[k][0], wNum), pad(cells[k][1], w1), pad(cells[k][2], w2), marker(r.Kind()))
		if opts.Color {
			line = styleFor(r.Kind()).Render(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if opts.Summary {
		s := align.Summarize(rows)
		_, err := fmt.Fprintf(w, "%d rows, %d equal, %d only in %s, %d only in %s, %d mismatched\n",
			s.Rows, s.Equal, s.OnlyFirst, first, s.OnlySecond, second, s.Mismatch)
		return err
	}

	return nil
}

// Document is the JSON shape written by JSON.
type Document struct {
	First   string        `json:"first,omitempty"`
	Second  string        `json:"second,omitempty"`
	Rows    []DocumentRow `json:"rows"`
	Summary align.Summary `json:"summary"`
}

// DocumentRow is one row of Document.
type DocumentRow struct {
	Index  int           `json:"index"`
	Kind   align.RowKind `json:"kind"`
	Equal  bool          `json:"equal"`
	First  *DocumentLink `json:"first"`
	Second *DocumentLink `json:"second"`
}

// DocumentLink is a link; End is empty on the terminal row.
type DocumentLink struct {
	ID          string `json:"id,omitempty"`
	Start       string `json:"start"`
	End         string `json:"end,omitempty"`
	OrderNumber int    `json:"orderNumber"`
}

// NewDocument converts rows into the JSON document model.
func NewDocument(firstKey, secondKey string, rows []align.Row) Document {
	doc := Document{
		First:   firstKey,
		Second:  secondKey,
		Rows:    make([]DocumentRow, len(rows)),
		Summary: align.Summarize(rows),
	}
	for k, r := range rows {
		doc.Rows[k] = DocumentRow{
			Index:  k + 1,
			Kind:   r.Kind(),
			Equal:  r.Equal,
			First:  docLink(r.First),
			Second: docLink(r.Second),
		}
	}

	return doc
}

// JSON writes NewDocument(firstKey, secondKey, rows) indented.
func JSON(w io.Writer, firstKey, secondKey string, rows []align.Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(NewDocument(firstKey, secondKey, rows))
}

func docLink(l *align.ComparableLink) *DocumentLink {
	if l == nil {
		return nil
	}
	d := &DocumentLink{ID: l.ID, Start: l.StartNode.ID, OrderNumber: l.OrderNumber}
	if l.EndNode != nil {
		d.End = l.EndNode.ID
	}

	return d
}

func cell(l *align.ComparableLink) string {
	if l == nil {
		return MarkAbsent
	}

	return l.String()
}

func marker(k align.RowKind) string {
	switch k {
	case align.KindOnlyFirst:
		return MarkOnlyFirst
	case align.KindOnlySecond:
		return MarkOnlySecond
	case align.KindMismatch:
		return MarkMismatch
	default:
		return MarkEqual
	}
}

func styleFor(k align.RowKind) lipgloss.Style {
	switch k {
	case align.KindOnlyFirst, align.KindOnlySecond:
		return oneSidedStyle
	case align.KindMismatch:
		return mismatchStyle
	default:
		return lipgloss.NewStyle()
	}
}

// pad right-fills s with spaces to display width n.
func pad(s string, n int) string {
	if d := n - lipgloss.Width(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}

	return s
}

func join(cols ...string) string { return strings.Join(cols, "  ") }
