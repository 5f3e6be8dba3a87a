package trips

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ErrModeNotFound reports a mode requested from a matrix file that holds no
// matrix under that name.
var ErrModeNotFound = errors.New("mode not found in trip table")

// MatrixFile is a single time period's trip table file: a container of
// named origin-destination matrices, one per mode.
type MatrixFile interface {
	// Matrix returns a fresh copy of the named matrix.
	Matrix(mode string) ([][]float64, error)
	// Modes lists the matrix names present in the file.
	Modes() []string
	Close() error
}

// Opener opens one period's matrix file at the given path.
type Opener func(path string) (MatrixFile, error)

// periodFileNames are the fixed per-period file names written by the model.
var periodFileNames = map[string]string{
	PeriodAM: "AfterSC_Final_AM_Tables.omx",
	PeriodMD: "AfterSC_Final_MD_Tables.omx",
	PeriodPM: "AfterSC_Final_PM_Tables.omx",
	PeriodNT: "AfterSC_Final_NT_Tables.omx",
}

// OpenTripTables opens the four fixed-named period files under dir and
// returns a handle per time period. A nil opener defaults to
// OpenMatrixArchive. If any file fails to open, handles opened so far are
// closed and the error is returned.
func OpenTripTables(dir string, open Opener) (map[string]MatrixFile, error) {
	if open == nil {
		open = OpenMatrixArchive
	}
	tables := make(map[string]MatrixFile, len(AllTimePeriods))
	for _, period := range AllTimePeriods {
		path := filepath.Join(dir, periodFileNames[period])
		mf, err := open(path)
		if err != nil {
			for _, opened := range tables {
				opened.Close()
			}
			return nil, fmt.Errorf("open trip tables for %s: %w", period, err)
		}
		tables[period] = mf
	}
	return tables, nil
}

// CloseTripTables closes every period handle, returning the first error.
func CloseTripTables(tables map[string]MatrixFile) error {
	var first error
	for _, mf := range tables {
		if err := mf.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// LoadTripTables reads the trip tables for all time periods for the given
// modes out of the open period files. A nil mode list loads the full
// catalogue. The result maps period -> mode -> dense matrix; matrices are
// copies, not views, and nothing is cached across calls.
func LoadTripTables(tables map[string]MatrixFile, modes []string) (map[string]map[string][][]float64, error) {
	if modes == nil {
		modes = AllModes
	}
	out := make(map[string]map[string][][]float64, len(AllTimePeriods))
	for _, period := range AllTimePeriods {
		mf, ok := tables[period]
		if !ok {
			return nil, fmt.Errorf("no open trip table for period %q", period)
		}
		out[period] = make(map[string][][]float64, len(modes))
		for _, mode := range modes {
			m, err := mf.Matrix(mode)
			if err != nil {
				return nil, fmt.Errorf("load trip table [%s][%s]: %w", period, mode, err)
			}
			out[period][mode] = m
		}
	}
	return out, nil
}
