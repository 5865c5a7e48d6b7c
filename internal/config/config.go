package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"

	"pkg.jsn.cam/tabgen/internal/export"
	"pkg.jsn.cam/tabgen/pkg/tabgen"
)

var ErrInvalidBatch = errors.New("invalid batch file")

// Batch is a set of datasets generated together.
type Batch struct {
	// Workers bounds concurrent generation. Zero means runtime.NumCPU().
	Workers int `yaml:"workers"`
	// OutDir receives one file per dataset. Empty means no files are written.
	OutDir string `yaml:"out_dir"`
	// Format is the output encoding, e.g. "csv", "json.xz" or "sqlite".
	Format   string          `yaml:"format"`
	Datasets []tabgen.Config `yaml:"datasets"`
}

// Load reads and validates a batch file
func Load(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a batch from YAML, applies defaults and checks that every
// dataset can be built.
func Parse(data []byte) (*Batch, error) {
	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBatch, err)
	}
	b.applyDefaults()
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

func (b *Batch) applyDefaults() {
	if b.Workers <= 0 {
		b.Workers = runtime.NumCPU()
	}
	if b.Format == "" {
		b.Format = string(export.KindCSV)
	}
	for i := range b.Datasets {
		if b.Datasets[i].Name == "" {
			b.Datasets[i].Name = fmt.Sprintf("%s_%d", b.Datasets[i].Kind, i)
		}
	}
}

// Validate checks the output format, name uniqueness and every dataset config.
func (b *Batch) Validate() error {
	if len(b.Datasets) == 0 {
		return fmt.Errorf("%w: no datasets", ErrInvalidBatch)
	}
	if _, err := export.ParseFormat(b.Format); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBatch, err)
	}

	seen := make(map[string]bool, len(b.Datasets))
	for i, cfg := range b.Datasets {
		if seen[cfg.Name] {
			return fmt.Errorf("%w: duplicate dataset name %q", ErrInvalidBatch, cfg.Name)
		}
		seen[cfg.Name] = true

		if _, err := tabgen.New(cfg); err != nil {
			return fmt.Errorf("%w: dataset %d (%s): %w", ErrInvalidBatch, i, cfg.Name, err)
		}
	}
	return nil
}

// OutputPath returns where the named dataset is written, or "" when the
// batch has no output directory.
func (b *Batch) OutputPath(name string) string {
	if b.OutDir == "" {
		return ""
	}
	f, err := export.ParseFormat(b.Format)
	if err != nil {
		return ""
	}
	return filepath.Join(b.OutDir, name+f.Extension())
}
