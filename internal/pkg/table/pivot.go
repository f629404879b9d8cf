package table

import "strings"

// Pivot turns long-format rows into one row per distinct key tuple, with
// the values of nameCol becoming columns holding the matching valueCol
// cell. Duplicate (key, name) pairs resolve last-write-wins. Row order
// follows first appearance of each key tuple; pivoted columns follow
// first appearance of each name.
func Pivot(t *Table, keyCols []string, nameCol, valueCol string) *Table {
	out := New(keyCols...)

	index := map[string]int{}
	seenCol := map[string]bool{}

	for _, row := range t.Rows {
		parts := make([]string, 0, len(keyCols))
		for _, k := range keyCols {
			if s, ok := row[k].(string); ok {
				parts = append(parts, s)
			} else {
				parts = append(parts, "")
			}
		}
		key := strings.Join(parts, "\x00")

		i, ok := index[key]
		if !ok {
			pivoted := Row{}
			for _, k := range keyCols {
				pivoted[k] = row[k]
			}
			out.Append(pivoted)
			i = out.Len() - 1
			index[key] = i
		}

		name, ok := row[nameCol].(string)
		if !ok || name == "" {
			continue
		}
		if !seenCol[name] {
			out.Columns = append(out.Columns, name)
			seenCol[name] = true
		}
		out.Rows[i][name] = row[valueCol]
	}

	// absent (key, name) pairs stay missing
	for _, row := range out.Rows {
		for _, c := range out.Columns {
			if _, ok := row[c]; !ok {
				row[c] = nil
			}
		}
	}

	return out
}
