package align

// Summary counts rows by kind.
type Summary struct {
	Rows       int `json:"rows"`
	Equal      int `json:"equal"`
	OnlyFirst  int `json:"onlyFirst"`
	OnlySecond int `json:"onlySecond"`
	Mismatch   int `json:"mismatch"`
}

// Summarize tallies rows.
func Summarize(rows []Row) Summary {
	s := Summary{Rows: len(rows)}
	for _, r := range rows {
		switch r.Kind() {
		case KindEqual:
			s.Equal++
		case KindOnlyFirst:
			s.OnlyFirst++
		case KindOnlySecond:
			s.OnlySecond++
		case KindMismatch:
			s.Mismatch++
		}
	}

	return s
}

// Identical reports whether every row is equal.
func (s Summary) Identical() bool { return s.Equal == s.Rows }

// Differences is the number of rows that are not equal.
func (s Summary) Differences() int { return s.Rows - s.Equal }
