package transit

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ctpsstaff/modx/export"
)

// BoardingColumns are the numeric counter columns of a transit assignment
// result table, in canonical order.
var BoardingColumns = []string{
	"DirectTransferOff",
	"DirectTransferOn",
	"DriveAccessOn",
	"EgressOff",
	"Off",
	"On",
	"WalkAccessOn",
	"WalkTransferOff",
	"WalkTransferOn",
}

var boardingColumnIndex = func() map[string]int {
	m := make(map[string]int, len(BoardingColumns))
	for i, c := range BoardingColumns {
		m[c] = i
	}
	return m
}()

// resultPeriods are the per-period result directory names written by the
// transit assignment step, in summation order.
var resultPeriods = []string{"AM", "MD", "PM", "NT"}

// Row is one (route, stop) row of a boardings table. Counts is parallel to
// BoardingColumns.
type Row struct {
	Route  string
	Stop   string
	Counts []float64
}

// Count returns the named counter of the row.
func (r Row) Count(column string) float64 {
	i, ok := boardingColumnIndex[column]
	if !ok {
		return 0
	}
	return r.Counts[i]
}

type routeStop struct{ route, stop string }

// Table is a boardings table keyed by (route, stop). (route, stop) is
// unique within a table; rows keep their input order.
type Table struct {
	rows  []Row
	index map[routeStop]int
}

// NewTable returns an empty boardings table.
func NewTable() *Table {
	return &Table{index: make(map[routeStop]int)}
}

// NumRows returns the number of (route, stop) rows.
func (t *Table) NumRows() int { return len(t.rows) }

// Rows returns the table's rows in order. The slice is shared; callers must
// not modify it.
func (t *Table) Rows() []Row { return t.rows }

// Lookup returns the row for (route, stop), if present.
func (t *Table) Lookup(route, stop string) (Row, bool) {
	i, ok := t.index[routeStop{route, stop}]
	if !ok {
		return Row{}, false
	}
	return t.rows[i], true
}

// Append adds a new (route, stop) row, copying its counts. Appending a key
// already in the table is an error: duplicate keys in assignment results
// would otherwise be silently double-counted downstream.
func (t *Table) Append(row Row) error {
	key := routeStop{row.Route, row.Stop}
	if _, dup := t.index[key]; dup {
		return fmt.Errorf("transit: duplicate (route, stop) = (%s, %s)", row.Route, row.Stop)
	}
	t.index[key] = len(t.rows)
	t.rows = append(t.rows, Row{
		Route:  row.Route,
		Stop:   row.Stop,
		Counts: append([]float64(nil), row.Counts...),
	})
	return nil
}

// accumulate adds the row's counts into the existing row for its key, or
// appends it if the key is new. Missing keys on either side behave as rows
// of zeros, which is the outer-join zero fill.
func (t *Table) accumulate(row Row) {
	key := routeStop{row.Route, row.Stop}
	if i, ok := t.index[key]; ok {
		for j, v := range row.Counts {
			t.rows[i].Counts[j] += v
		}
		return
	}
	t.Append(row)
}

// sumPair outer-joins two tables on (route, stop) and sums their counters.
// Row order is a's rows followed by b's rows not present in a.
func sumPair(a, b *Table) *Table {
	out := NewTable()
	for _, r := range a.rows {
		out.accumulate(r)
	}
	for _, r := range b.rows {
		out.accumulate(r)
	}
	return out
}

// CalculateTotalDailyBoardings adds a "daily" table to a per-period
// boardings map, summing the AM, MD, PM and NT tables pairwise (AM+MD,
// PM+NT, then the two partial sums). The period tables are not guaranteed
// to share a row set: a (route, stop) pair may be served in some periods
// only, so each summation outer-joins on (route, stop) with absent pairs
// contributing zero. Every pair appearing in any period appears exactly
// once in the daily table. The four input tables are returned unchanged.
func CalculateTotalDailyBoardings(byTOD map[string]*Table) map[string]*Table {
	if byTOD == nil {
		byTOD = make(map[string]*Table)
	}
	period := func(name string) *Table {
		if t := byTOD[name]; t != nil {
			return t
		}
		return NewTable()
	}
	amMD := sumPair(period("AM"), period("MD"))
	pmNT := sumPair(period("PM"), period("NT"))
	byTOD["daily"] = sumPair(amMD, pmNT)
	return byTOD
}

// ReadPeriodResults reads every CSV file in one time period's result
// directory and sums them column-wise into a single table. Files within a
// period share a fixed row schema, so rows are summed by position after
// verifying the (route, stop) keys line up.
func ReadPeriodResults(dir string) (*Table, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var total *Table
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		tbl, err := readResultsCSV(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		if total == nil {
			total = tbl
			continue
		}
		if err := addAligned(total, tbl); err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
	}
	if total == nil {
		return nil, fmt.Errorf("transit: no CSV files in %s", dir)
	}
	return total, nil
}

// ImportTransitAssignment imports the transit assignment results for a
// scenario: the AM, MD, PM and NT result directories are each read and
// summed, then the daily total is derived. The result maps "AM", "MD",
// "PM", "NT" and "daily" to their tables.
func ImportTransitAssignment(scenarioDir string) (map[string]*Table, error) {
	byTOD := make(map[string]*Table, len(resultPeriods)+1)
	for _, period := range resultPeriods {
		tbl, err := ReadPeriodResults(filepath.Join(scenarioDir, period))
		if err != nil {
			return nil, fmt.Errorf("import transit assignment %s: %w", period, err)
		}
		byTOD[period] = tbl
	}
	return CalculateTotalDailyBoardings(byTOD), nil
}

func readResultsCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rec, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(rec) == 0 {
		return nil, fmt.Errorf("%s: empty result file", path)
	}
	head := rec[0]
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	route := idx("ROUTE")
	stop := idx("STOP")
	if route < 0 || stop < 0 {
		return nil, fmt.Errorf("%s: missing ROUTE/STOP column", path)
	}
	counters := make([]int, len(BoardingColumns))
	for i, col := range BoardingColumns {
		if counters[i] = idx(col); counters[i] < 0 {
			return nil, fmt.Errorf("%s: missing column %q", path, col)
		}
	}

	tbl := NewTable()
	for n, row := range rec[1:] {
		counts := make([]float64, len(BoardingColumns))
		for i, c := range counters {
			cell := strings.TrimSpace(row[c])
			if cell == "" {
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%s: row %d column %q: %w", path, n+1, BoardingColumns[i], err)
			}
			counts[i] = v
		}
		r := Row{Route: strings.TrimSpace(row[route]), Stop: strings.TrimSpace(row[stop]), Counts: counts}
		if err := tbl.Append(r); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, n+1, err)
		}
	}
	return tbl, nil
}

// addAligned adds b's counters into a row-by-row. Result files within one
// period share a row schema; a key mismatch at any position means the files
// do not belong to the same period layout.
func addAligned(a, b *Table) error {
	if a.NumRows() != b.NumRows() {
		return fmt.Errorf("transit: row count mismatch: %d vs %d", a.NumRows(), b.NumRows())
	}
	for i := range b.rows {
		if a.rows[i].Route != b.rows[i].Route || a.rows[i].Stop != b.rows[i].Stop {
			return fmt.Errorf("transit: row %d key mismatch: (%s, %s) vs (%s, %s)",
				i, a.rows[i].Route, a.rows[i].Stop, b.rows[i].Route, b.rows[i].Stop)
		}
		for j, v := range b.rows[i].Counts {
			a.rows[i].Counts[j] += v
		}
	}
	return nil
}

// Frame converts the table to a tabular dataset for export, with ROUTE and
// STOP followed by the counter columns.
func (t *Table) Frame() *export.Frame {
	cols := append([]string{"ROUTE", "STOP"}, BoardingColumns...)
	rows := make([][]string, 0, len(t.rows))
	for _, r := range t.rows {
		row := make([]string, 0, len(cols))
		row = append(row, r.Route, r.Stop)
		for _, v := range r.Counts {
			row = append(row, strconv.FormatFloat(v, 'g', -1, 64))
		}
		rows = append(rows, row)
	}
	return &export.Frame{Columns: cols, Rows: rows}
}
