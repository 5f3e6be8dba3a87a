package transit

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// onRow builds a row with only the On counter set.
func onRow(route, stop string, on float64) Row {
	counts := make([]float64, len(BoardingColumns))
	counts[boardingColumnIndex["On"]] = on
	return Row{Route: route, Stop: stop, Counts: counts}
}

func tableOf(t *testing.T, rows ...Row) *Table {
	t.Helper()
	tbl := NewTable()
	for _, r := range rows {
		if err := tbl.Append(r); err != nil {
			t.Fatal(err)
		}
	}
	return tbl
}

func TestCalculateTotalDailyBoardings(t *testing.T) {
	byTOD := map[string]*Table{
		"AM": tableOf(t, onRow("1", "10", 5)),
		"MD": tableOf(t, onRow("1", "10", 3), onRow("2", "20", 7)),
		"PM": tableOf(t),
		"NT": tableOf(t, onRow("2", "20", 1)),
	}

	out := CalculateTotalDailyBoardings(byTOD)
	daily := out["daily"]
	if daily == nil {
		t.Fatal("no daily table produced")
	}
	if daily.NumRows() != 2 {
		t.Fatalf("daily has %d rows, want 2", daily.NumRows())
	}
	for _, key := range [][2]string{{"1", "10"}, {"2", "20"}} {
		r, ok := daily.Lookup(key[0], key[1])
		if !ok {
			t.Fatalf("daily missing (%s, %s)", key[0], key[1])
		}
		if got := r.Count("On"); got != 8 {
			t.Errorf("daily (%s, %s) On = %g, want 8", key[0], key[1], got)
		}
	}

	// The per-period inputs come back unchanged.
	if out["AM"].NumRows() != 1 || out["MD"].NumRows() != 2 || out["PM"].NumRows() != 0 || out["NT"].NumRows() != 1 {
		t.Error("period tables must be returned unchanged")
	}
	if r, _ := out["AM"].Lookup("1", "10"); r.Count("On") != 5 {
		t.Error("AM table was mutated by the daily aggregation")
	}
}

func TestDailyCoverage(t *testing.T) {
	// Each (route, stop) pair appears in a different subset of periods;
	// every pair must appear exactly once in daily with the true sum.
	byTOD := map[string]*Table{
		"AM": tableOf(t, onRow("R1", "S1", 1), onRow("R2", "S1", 2)),
		"MD": tableOf(t, onRow("R2", "S1", 4)),
		"PM": tableOf(t, onRow("R3", "S9", 8)),
		"NT": tableOf(t, onRow("R1", "S1", 16), onRow("R3", "S9", 32)),
	}
	daily := CalculateTotalDailyBoardings(byTOD)["daily"]

	want := map[[2]string]float64{
		{"R1", "S1"}: 17,
		{"R2", "S1"}: 6,
		{"R3", "S9"}: 40,
	}
	if daily.NumRows() != len(want) {
		t.Fatalf("daily has %d rows, want %d", daily.NumRows(), len(want))
	}
	for key, sum := range want {
		r, ok := daily.Lookup(key[0], key[1])
		if !ok {
			t.Errorf("daily missing (%s, %s)", key[0], key[1])
			continue
		}
		if got := r.Count("On"); got != sum {
			t.Errorf("daily (%s, %s) On = %g, want %g", key[0], key[1], got, sum)
		}
	}
}

func TestCalculateTotalDailyBoardingsMissingPeriods(t *testing.T) {
	byTOD := map[string]*Table{"AM": tableOf(t, onRow("1", "10", 5))}
	daily := CalculateTotalDailyBoardings(byTOD)["daily"]
	if daily.NumRows() != 1 {
		t.Fatalf("daily has %d rows, want 1", daily.NumRows())
	}
	if r, _ := daily.Lookup("1", "10"); r.Count("On") != 5 {
		t.Error("absent periods must contribute zero, not drop rows")
	}
}

func TestAppendRejectsDuplicateKey(t *testing.T) {
	tbl := tableOf(t, onRow("1", "10", 5))
	if err := tbl.Append(onRow("1", "10", 3)); err == nil {
		t.Fatal("expected error for duplicate (route, stop)")
	}
}

const resultsHeader = "ROUTE,STOP,DirectTransferOff,DirectTransferOn,DriveAccessOn,EgressOff,Off,On,WalkAccessOn,WalkTransferOff,WalkTransferOn\n"

func writeResultsCSV(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(resultsHeader+body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestReadPeriodResults(t *testing.T) {
	dir := t.TempDir()
	writeResultsCSV(t, filepath.Join(dir, "rail.csv"),
		"1,10,0,0,0,0,2,5,0,0,0\n2,20,0,0,0,0,1,3,0,0,0\n")
	writeResultsCSV(t, filepath.Join(dir, "bus.csv"),
		"1,10,0,0,0,0,1,4,0,0,0\n2,20,0,0,0,0,0,2,0,0,0\n")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644); err != nil {
		t.Fatal(err)
	}

	tbl, err := ReadPeriodResults(dir)
	if err != nil {
		t.Fatalf("ReadPeriodResults: %v", err)
	}
	if tbl.NumRows() != 2 {
		t.Fatalf("got %d rows, want 2", tbl.NumRows())
	}
	r, _ := tbl.Lookup("1", "10")
	if r.Count("On") != 9 || r.Count("Off") != 3 {
		t.Errorf("(1, 10): On=%g Off=%g, want On=9 Off=3", r.Count("On"), r.Count("Off"))
	}
}

func TestReadPeriodResultsMissingDir(t *testing.T) {
	if _, err := ReadPeriodResults(filepath.Join(t.TempDir(), "AM")); err == nil {
		t.Fatal("expected error for missing result directory")
	}
}

func TestReadPeriodResultsMissingColumn(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.csv"),
		[]byte("ROUTE,STOP,On\n1,10,5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadPeriodResults(dir); err == nil {
		t.Fatal("expected error for missing counter columns")
	}
}

func TestReadPeriodResultsDuplicateKey(t *testing.T) {
	dir := t.TempDir()
	writeResultsCSV(t, filepath.Join(dir, "dup.csv"),
		"1,10,0,0,0,0,0,5,0,0,0\n1,10,0,0,0,0,0,3,0,0,0\n")
	if _, err := ReadPeriodResults(dir); err == nil {
		t.Fatal("expected error for duplicate (route, stop) within a period")
	}
}

func TestReadPeriodResultsRowMismatch(t *testing.T) {
	dir := t.TempDir()
	writeResultsCSV(t, filepath.Join(dir, "a.csv"), "1,10,0,0,0,0,0,5,0,0,0\n")
	writeResultsCSV(t, filepath.Join(dir, "b.csv"), "2,20,0,0,0,0,0,3,0,0,0\n")
	if _, err := ReadPeriodResults(dir); err == nil {
		t.Fatal("expected error for misaligned result files")
	}
}

func TestImportTransitAssignment(t *testing.T) {
	scenario := t.TempDir()
	bodies := map[string]string{
		"AM": "1,10,0,0,0,0,0,5,0,0,0\n",
		"MD": "1,10,0,0,0,0,0,3,0,0,0\n2,20,0,0,0,0,0,7,0,0,0\n",
		"PM": "1,10,0,0,0,0,0,0,0,0,0\n",
		"NT": "2,20,0,0,0,0,0,1,0,0,0\n",
	}
	for period, body := range bodies {
		dir := filepath.Join(scenario, period)
		if err := os.Mkdir(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		writeResultsCSV(t, filepath.Join(dir, "results.csv"), body)
	}

	byTOD, err := ImportTransitAssignment(scenario)
	if err != nil {
		t.Fatalf("ImportTransitAssignment: %v", err)
	}
	for _, key := range []string{"AM", "MD", "PM", "NT", "daily"} {
		if byTOD[key] == nil {
			t.Errorf("missing %q table", key)
		}
	}
	if r, _ := byTOD["daily"].Lookup("1", "10"); r.Count("On") != 8 {
		t.Errorf("daily (1, 10) On = %g, want 8", r.Count("On"))
	}
	if r, _ := byTOD["daily"].Lookup("2", "20"); r.Count("On") != 8 {
		t.Errorf("daily (2, 20) On = %g, want 8", r.Count("On"))
	}
}

func TestImportTransitAssignmentMissingPeriodDir(t *testing.T) {
	scenario := t.TempDir()
	if err := os.Mkdir(filepath.Join(scenario, "AM"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeResultsCSV(t, filepath.Join(scenario, "AM", "results.csv"), "1,10,0,0,0,0,0,5,0,0,0\n")
	if _, err := ImportTransitAssignment(scenario); err == nil {
		t.Fatal("expected error when a period directory is missing")
	}
}

func TestTableFrame(t *testing.T) {
	tbl := tableOf(t, onRow("1", "10", 5))
	f := tbl.Frame()

	wantCols := append([]string{"ROUTE", "STOP"}, BoardingColumns...)
	if !reflect.DeepEqual(f.Columns, wantCols) {
		t.Errorf("Frame columns = %v, want %v", f.Columns, wantCols)
	}
	if len(f.Rows) != 1 {
		t.Fatalf("Frame has %d rows, want 1", len(f.Rows))
	}
	if f.Rows[0][0] != "1" || f.Rows[0][1] != "10" {
		t.Errorf("unexpected key cells: %v", f.Rows[0][:2])
	}
	onCol := 2 + boardingColumnIndex["On"]
	if f.Rows[0][onCol] != "5" {
		t.Errorf("On cell = %q, want %q", f.Rows[0][onCol], "5")
	}
}
