package storage

import (
	"fmt"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/google/uuid"
	"golang.org/x/mod/semver"

	"pkg.jsn.cam/tabgen/pkg/tabgen"
)

// RecordVersion is the format version written into every Run.
// Records are readable while the major version matches.
const RecordVersion = "v1.0.0"

var runsBucket = []byte("runs")

// Run records one generated dataset.
type Run struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Kind      string                 `json:"kind"`
	Config    tabgen.Config          `json:"config"`
	Rows      int                    `json:"rows"`
	Columns   int                    `json:"columns"`
	Summary   []tabgen.ColumnSummary `json:"summary,omitempty"`
	Output    string                 `json:"output,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	Version   string                 `json:"version"`
}

// NewRun describes df as produced from cfg. The caller fills Output.
func NewRun(cfg tabgen.Config, df dataframe.DataFrame) *Run {
	return &Run{
		ID:        uuid.NewString(),
		Name:      cfg.Name,
		Kind:      cfg.Kind,
		Config:    cfg,
		Rows:      df.Nrow(),
		Columns:   df.Ncol(),
		Summary:   tabgen.Describe(df),
		CreatedAt: time.Now().UTC(),
		Version:   RecordVersion,
	}
}

// Store persists runs
type Store interface {
	SaveRun(run *Run) error
	GetRun(id string) (*Run, error)
	// ListRuns returns compatible runs, newest first.
	ListRuns() ([]*Run, error)
	DeleteRun(id string) error
	Close() error
}

// IsCompatibleVersion reports whether a record written at version can be
// read by this build. Major versions must match.
func IsCompatibleVersion(version string) (bool, error) {
	if !semver.IsValid(version) {
		return false, fmt.Errorf("invalid record version: %q", version)
	}
	return semver.Major(version) == semver.Major(RecordVersion), nil
}

func checkVersion(run *Run) error {
	ok, err := IsCompatibleVersion(run.Version)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIncompatibleVersion, err)
	}
	if !ok {
		return fmt.Errorf("%w: run %s has version %s, need %s.x.x",
			ErrIncompatibleVersion, run.ID, run.Version, semver.Major(RecordVersion))
	}
	return nil
}
