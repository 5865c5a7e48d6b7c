package storage

import (
	"errors"
	"testing"
	"time"

	"pkg.jsn.cam/tabgen/pkg/tabgen"
)

func testRun(id string, created time.Time) *Run {
	return &Run{
		ID:   id,
		Name: "sensors",
		Kind: tabgen.KindTimeSeries,
		Config: tabgen.Config{
			Name:        "sensors",
			Kind:        tabgen.KindTimeSeries,
			SampleSize:  2,
			FeatureSize: 3,
			StartDate:   "2024-01-01",
			EndDate:     "2024-01-02",
		},
		Rows:      4,
		Columns:   5,
		CreatedAt: created,
		Version:   RecordVersion,
	}
}

// storeTestSuite runs the same checks against any Store implementation
func storeTestSuite(t *testing.T, newStore func() (Store, func(), error)) {
	t.Run("SaveAndGet", func(t *testing.T) {
		store, cleanup, err := newStore()
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}
		defer cleanup()

		run := testRun("run-1", time.Now().UTC())
		if err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}

		got, err := store.GetRun("run-1")
		if err != nil {
			t.Fatalf("GetRun failed: %v", err)
		}
		if got.Name != run.Name || got.Rows != run.Rows || got.Columns != run.Columns {
			t.Errorf("GetRun returned %+v, want %+v", got, run)
		}
		if got.Config.SampleSize != 2 || got.Config.EndDate != "2024-01-02" {
			t.Errorf("config not preserved: %+v", got.Config)
		}
		if !got.CreatedAt.Equal(run.CreatedAt) {
			t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, run.CreatedAt)
		}
	})

	t.Run("SaveOverwrites", func(t *testing.T) {
		store, cleanup, err := newStore()
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}
		defer cleanup()

		run := testRun("run-1", time.Now().UTC())
		store.SaveRun(run)
		run.Output = "out.csv"
		if err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}

		got, err := store.GetRun("run-1")
		if err != nil {
			t.Fatalf("GetRun failed: %v", err)
		}
		if got.Output != "out.csv" {
			t.Errorf("Output = %q, want out.csv", got.Output)
		}
	})

	t.Run("GetMissing", func(t *testing.T) {
		store, cleanup, err := newStore()
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}
		defer cleanup()

		_, err = store.GetRun("nope")
		if !errors.Is(err, ErrRunNotFound) {
			t.Errorf("GetRun error = %v, want ErrRunNotFound", err)
		}
	})

	t.Run("ListNewestFirst", func(t *testing.T) {
		store, cleanup, err := newStore()
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}
		defer cleanup()

		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		for i, id := range []string{"a", "b", "c"} {
			if err := store.SaveRun(testRun(id, base.Add(time.Duration(i)*time.Hour))); err != nil {
				t.Fatalf("SaveRun failed: %v", err)
			}
		}

		runs, err := store.ListRuns()
		if err != nil {
			t.Fatalf("ListRuns failed: %v", err)
		}
		if len(runs) != 3 {
			t.Fatalf("ListRuns returned %d runs, want 3", len(runs))
		}
		want := []string{"c", "b", "a"}
		for i, run := range runs {
			if run.ID != want[i] {
				t.Errorf("runs[%d] = %s, want %s", i, run.ID, want[i])
			}
		}
	})

	t.Run("ListEmpty", func(t *testing.T) {
		store, cleanup, err := newStore()
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}
		defer cleanup()

		runs, err := store.ListRuns()
		if err != nil {
			t.Fatalf("ListRuns failed: %v", err)
		}
		if len(runs) != 0 {
			t.Errorf("ListRuns returned %d runs, want 0", len(runs))
		}
	})

	t.Run("Delete", func(t *testing.T) {
		store, cleanup, err := newStore()
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}
		defer cleanup()

		store.SaveRun(testRun("run-1", time.Now().UTC()))
		if err := store.DeleteRun("run-1"); err != nil {
			t.Fatalf("DeleteRun failed: %v", err)
		}
		if _, err := store.GetRun("run-1"); !errors.Is(err, ErrRunNotFound) {
			t.Errorf("GetRun after delete error = %v, want ErrRunNotFound", err)
		}
		if err := store.DeleteRun("run-1"); !errors.Is(err, ErrRunNotFound) {
			t.Errorf("second DeleteRun error = %v, want ErrRunNotFound", err)
		}
	})

	t.Run("IncompatibleVersion", func(t *testing.T) {
		store, cleanup, err := newStore()
		if err != nil {
			t.Fatalf("failed to create store: %v", err)
		}
		defer cleanup()

		old := testRun("future", time.Now().UTC())
		old.Version = "v2.0.0"
		store.SaveRun(old)
		store.SaveRun(testRun("current", time.Now().UTC()))

		if _, err := store.GetRun("future"); !errors.Is(err, ErrIncompatibleVersion) {
			t.Errorf("GetRun error = %v, want ErrIncompatibleVersion", err)
		}

		runs, err := store.ListRuns()
		if err != nil {
			t.Fatalf("ListRuns failed: %v", err)
		}
		if len(runs) != 1 || runs[0].ID != "current" {
			t.Errorf("ListRuns should skip incompatible runs, got %d", len(runs))
		}
	})
}

func TestIsCompatibleVersion(t *testing.T) {
	tests := []struct {
		version string
		want    bool
		wantErr bool
	}{
		{"v1.0.0", true, false},
		{"v1.4.2", true, false},
		{"v2.0.0", false, false},
		{"v0.9.0", false, false},
		{"1.0.0", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		got, err := IsCompatibleVersion(tt.version)
		if (err != nil) != tt.wantErr {
			t.Errorf("IsCompatibleVersion(%q) error = %v, wantErr %v", tt.version, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("IsCompatibleVersion(%q) = %v, want %v", tt.version, got, tt.want)
		}
	}
}

func TestNewRun(t *testing.T) {
	ts, err := tabgen.NewTimeSeries(2, 3, "2024-01-01", "2024-01-02", 0)
	if err != nil {
		t.Fatalf("NewTimeSeries failed: %v", err)
	}
	df, err := ts.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	cfg := tabgen.Config{Name: "sensors", Kind: tabgen.KindTimeSeries, SampleSize: 2, FeatureSize: 3}
	run := NewRun(cfg, df)

	if run.ID == "" {
		t.Error("run ID should be set")
	}
	if run.Rows != 4 || run.Columns != 5 {
		t.Errorf("shape = %dx%d, want 4x5", run.Rows, run.Columns)
	}
	if len(run.Summary) != 5 {
		t.Errorf("summary has %d columns, want 5", len(run.Summary))
	}
	if run.Version != RecordVersion {
		t.Errorf("Version = %s, want %s", run.Version, RecordVersion)
	}
}
