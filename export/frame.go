package export

import "fmt"

// Frame is a minimal tabular dataset: ordered column names over
// string-valued rows. Row cells are parallel to Columns.
type Frame struct {
	Columns []string
	Rows    [][]string
}

// Select returns a new Frame restricted to the named columns, in the given
// order. An unknown column name is an error.
func (f *Frame) Select(columns []string) (*Frame, error) {
	idx := make([]int, len(columns))
	for i, c := range columns {
		idx[i] = -1
		for j, have := range f.Columns {
			if have == c {
				idx[i] = j
				break
			}
		}
		if idx[i] < 0 {
			return nil, fmt.Errorf("export: no column %q", c)
		}
	}
	out := &Frame{Columns: append([]string(nil), columns...)}
	for _, row := range f.Rows {
		cells := make([]string, len(idx))
		for i, j := range idx {
			cells[i] = row[j]
		}
		out.Rows = append(out.Rows, cells)
	}
	return out, nil
}
