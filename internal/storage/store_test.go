package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/avasil/metadyn/internal/sim"
)

func testResult() *sim.Result {
	return &sim.Result{
		Positions: []float64{5.0, 5.1, 5.3},
		Energies:  []float64{0.0, 0.005, 0.045},
		Metrics:   map[string]float64{"well_crossings": 2},
		Steps:     2,
		Deposits:  1,
	}
}

func TestFileStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("doublewell", "langevin", 42, true, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Potential != "doublewell" {
		t.Errorf("potential = %s, want doublewell", meta.Potential)
	}
	if meta.Seed != 42 {
		t.Errorf("seed = %d, want 42", meta.Seed)
	}
	if !meta.Biased || meta.Deposits != 1 {
		t.Error("bias bookkeeping lost on roundtrip")
	}
	if meta.Metrics["well_crossings"] != 2 {
		t.Errorf("well_crossings = %f, want 2", meta.Metrics["well_crossings"])
	}

	positions, energies, err := st.LoadTrajectory(runID)
	if err != nil {
		t.Fatalf("load trajectory failed: %v", err)
	}
	if len(positions) != 3 || len(energies) != 3 {
		t.Fatalf("trajectory lengths = %d/%d, want 3/3", len(positions), len(energies))
	}
	if positions[2] != 5.3 {
		t.Errorf("positions[2] = %f, want 5.3", positions[2])
	}
}

func TestFileStoreProfile(t *testing.T) {
	st := New(t.TempDir())

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("doublewell", "langevin", 1, true, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	centers := []float64{0.5, 1.5, 2.5}
	biasE := []float64{0.1, 0.3, 0.2}
	freeE := []float64{0.2, 0.0, 0.1}

	if err := st.SaveProfile(runID, centers, biasE, freeE); err != nil {
		t.Fatalf("save profile failed: %v", err)
	}

	c, b, f, err := st.LoadProfile(runID)
	if err != nil {
		t.Fatalf("load profile failed: %v", err)
	}
	if len(c) != 3 || len(b) != 3 || len(f) != 3 {
		t.Fatalf("profile lengths = %d/%d/%d, want 3/3/3", len(c), len(b), len(f))
	}
	if b[1] != 0.3 || f[1] != 0.0 {
		t.Error("profile values lost on roundtrip")
	}
}

func TestFileStoreList(t *testing.T) {
	st := New(t.TempDir())

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save("harmonic", "metropolis", 7, false, testResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestFileStoreStructure(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save("wave", "langevin", 3, false, testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(dir, runID)
	if _, err := os.Stat(filepath.Join(runDir, "metadata.json")); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}
	if _, err := os.Stat(filepath.Join(runDir, "trajectory.csv")); os.IsNotExist(err) {
		t.Error("trajectory.csv not created")
	}
}

func TestSQLiteStoreRoundtrip(t *testing.T) {
	ctx := context.Background()
	st := NewSQLiteStore(filepath.Join(t.TempDir(), "runs.db"))

	if err := st.Init(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	defer st.Close()

	fs := New(t.TempDir())
	if err := fs.Init(); err != nil {
		t.Fatalf("file store init failed: %v", err)
	}

	runID, err := fs.Save("doublewell", "langevin", 42, true, testResult())
	if err != nil {
		t.Fatalf("file save failed: %v", err)
	}
	meta, err := fs.Load(runID)
	if err != nil {
		t.Fatalf("file load failed: %v", err)
	}

	if err := st.SaveRun(ctx, *meta); err != nil {
		t.Fatalf("sqlite save failed: %v", err)
	}

	got, ok, err := st.GetRun(ctx, runID)
	if err != nil {
		t.Fatalf("sqlite get failed: %v", err)
	}
	if !ok {
		t.Fatal("run not found after save")
	}
	if got.Potential != "doublewell" || got.Deposits != 1 || !got.Biased {
		t.Error("run metadata lost in sqlite roundtrip")
	}
	if got.Metrics["well_crossings"] != 2 {
		t.Errorf("well_crossings = %f, want 2", got.Metrics["well_crossings"])
	}

	// Saving the same run again must update, not duplicate.
	meta.Steps = 99
	if err := st.SaveRun(ctx, *meta); err != nil {
		t.Fatalf("sqlite resave failed: %v", err)
	}
	runs, err := st.ListRuns(ctx)
	if err != nil {
		t.Fatalf("sqlite list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Steps != 99 {
		t.Errorf("steps = %d, want 99", runs[0].Steps)
	}
}

func TestSQLiteStoreMissingRun(t *testing.T) {
	ctx := context.Background()
	st := NewSQLiteStore(filepath.Join(t.TempDir(), "runs.db"))

	if err := st.Init(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	defer st.Close()

	_, ok, err := st.GetRun(ctx, "nope")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if ok {
		t.Error("expected missing run")
	}
}
