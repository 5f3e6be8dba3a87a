package export

import (
	"encoding/csv"
	"os"
)

// WriteCSV writes a Frame to a comma-delimited file. A non-nil column list
// restricts and reorders the exported columns; nil exports all columns.
func WriteCSV(f *Frame, path string, columns []string) error {
	if columns != nil {
		sub, err := f.Select(columns)
		if err != nil {
			return err
		}
		f = sub
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	w := csv.NewWriter(out)
	if err := w.Write(f.Columns); err != nil {
		return err
	}
	for _, row := range f.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return out.Close()
}
