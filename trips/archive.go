package trips

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// matrixArchive reads a period's trip tables from a zip archive holding one
// headerless CSV matrix per mode, named <Mode>.csv.
type matrixArchive struct {
	zr    *zip.ReadCloser
	files map[string]*zip.File
}

// OpenMatrixArchive opens a zip-of-CSV trip table file. It is the default
// Opener for OpenTripTables.
func OpenMatrixArchive(path string) (MatrixFile, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	files := make(map[string]*zip.File)
	for _, f := range zr.File {
		name := f.Name
		if !strings.HasSuffix(strings.ToLower(name), ".csv") {
			continue
		}
		files[name[:len(name)-len(".csv")]] = f
	}
	return &matrixArchive{zr: zr, files: files}, nil
}

func (a *matrixArchive) Modes() []string {
	modes := make([]string, 0, len(a.files))
	for m := range a.files {
		modes = append(modes, m)
	}
	sort.Strings(modes)
	return modes
}

func (a *matrixArchive) Matrix(mode string) ([][]float64, error) {
	f, ok := a.files[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrModeNotFound, mode)
	}
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	csvr := csv.NewReader(r)
	rec, err := csvr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("matrix %q: %w", mode, err)
	}
	m := make([][]float64, len(rec))
	for i, row := range rec {
		m[i] = make([]float64, len(row))
		for j, cell := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("matrix %q row %d col %d: %w", mode, i, j, err)
			}
			m[i][j] = v
		}
	}
	return m, nil
}

func (a *matrixArchive) Close() error {
	return a.zr.Close()
}
