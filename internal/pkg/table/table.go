package table

// Row maps a column name to its value. Values are strings,
// decimal.Decimal for coerced numbers, or nil when the provider omitted
// the field. nil is deliberately distinct from an empty string the
// provider actually returned.
type Row map[string]any

// Table is an ordered sequence of rows sharing one column schema.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

func New(columns ...string) *Table {
	return &Table{Columns: columns, Rows: []Row{}}
}

func (t *Table) Append(rows ...Row) {
	t.Rows = append(t.Rows, rows...)
}

func (t *Table) Len() int {
	return len(t.Rows)
}

func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// OrderColumns reorders columns so that the ones listed in preferred come
// first, in preferred order, followed by the remaining columns in their
// existing order. Preferred names that are not present are skipped.
func OrderColumns(preferred []string, columns []string) []string {
	present := make(map[string]bool, len(columns))
	for _, c := range columns {
		present[c] = true
	}

	out := make([]string, 0, len(columns))
	taken := make(map[string]bool, len(columns))
	for _, c := range preferred {
		if present[c] && !taken[c] {
			out = append(out, c)
			taken[c] = true
		}
	}
	for _, c := range columns {
		if !taken[c] {
			out = append(out, c)
			taken[c] = true
		}
	}
	return out
}

// Reorder applies OrderColumns to the table itself.
func (t *Table) Reorder(preferred ...string) *Table {
	t.Columns = OrderColumns(preferred, t.Columns)
	return t
}
