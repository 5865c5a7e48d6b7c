package main

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"pkg.jsn.cam/tabgen/internal/ui"
	"pkg.jsn.cam/tabgen/pkg/tabgen"
)

type generateFlags struct {
	name       string
	samples    int
	features   int
	start      string
	end        string
	missing    float64
	seed       int64
	randomSeed bool
	output     string
	preview    int
}

var (
	tsFlags  generateFlags
	catFlags generateFlags
)

var timeseriesCmd = &cobra.Command{
	Use:   "timeseries",
	Short: "Generate a time-series table",
	Long: `Generate one row per sample per calendar day between --start and --end
(inclusive). Each row has an id, a timestamp and --features standard normal
feature columns; each feature is missing with probability --missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := tsFlags.config(cmd, tabgen.KindTimeSeries)
		cfg.StartDate = tsFlags.start
		cfg.EndDate = tsFlags.end
		return generate(cfg, tsFlags)
	},
}

var categoryCmd = &cobra.Command{
	Use:   "category",
	Short: "Generate a categorical table (not implemented yet)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return generate(catFlags.config(cmd, tabgen.KindCategory), catFlags)
	},
}

func (f *generateFlags) config(cmd *cobra.Command, kind string) tabgen.Config {
	cfg := tabgen.Config{
		Name:         f.name,
		Kind:         kind,
		SampleSize:   f.samples,
		FeatureSize:  f.features,
		MissingRatio: f.missing,
		RandomSeed:   f.randomSeed,
	}
	if cfg.Name == "" {
		cfg.Name = kind
	}
	if cmd.Flags().Changed("seed") {
		seed := f.seed
		cfg.Seed = &seed
	}
	return cfg
}

func generate(cfg tabgen.Config, f generateFlags) error {
	quietForStdout(f.output)

	ds, err := tabgen.New(cfg)
	if err != nil {
		return err
	}
	if c, ok := ds.(*tabgen.Category); ok && !c.Implemented() {
		ui.Warning.Println("Category generation is not implemented yet; the table is empty")
	}

	seed, known := ds.Seed()
	if known {
		ui.Debug.Printf("Generating %s with seed %d\n", cfg.Name, seed)
	}

	df, err := ds.Generate()
	if err != nil {
		return err
	}
	ui.Success.Printf("Generated %s: %s rows x %d columns\n",
		cfg.Name, humanize.Comma(int64(df.Nrow())), df.Ncol())

	if f.preview > 0 {
		if err := ui.RenderPreview(df, f.preview); err != nil {
			return err
		}
	}

	output := ""
	if f.output != "" {
		output, err = writeOutput(f.output, cfg.Name, df, f.output != "-")
		if err != nil {
			return err
		}
	}

	if catalogPath == "" {
		return nil
	}
	store, err := openCatalog()
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := recordRun(store, pinSeed(cfg, seed, known), df, output)
	if err != nil {
		return err
	}
	ui.Info.Printf("Recorded run %s\n", run.ID)
	return nil
}

func addCommonFlags(cmd *cobra.Command, f *generateFlags) {
	cmd.Flags().StringVar(&f.name, "name", "", "dataset name (default: the kind)")
	cmd.Flags().IntVarP(&f.samples, "samples", "n", 100, "number of samples")
	cmd.Flags().IntVar(&f.features, "features", 5, "number of feature columns")
	cmd.Flags().Float64Var(&f.missing, "missing", 0, "probability that a feature value is missing (0-1)")
	cmd.Flags().Int64Var(&f.seed, "seed", tabgen.DefaultSeed, "random seed")
	cmd.Flags().BoolVar(&f.randomSeed, "random-seed", false, "draw a fresh seed (reported in the run record)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (.csv, .json, .db, optionally .xz; - for stdout)")
	cmd.Flags().IntVar(&f.preview, "preview", 0, "print the first N rows")
}

func init() {
	addCommonFlags(timeseriesCmd, &tsFlags)
	timeseriesCmd.Flags().StringVar(&tsFlags.start, "start", "", "first date (YYYY-MM-DD)")
	timeseriesCmd.Flags().StringVar(&tsFlags.end, "end", "", "last date (YYYY-MM-DD)")
	timeseriesCmd.MarkFlagRequired("start")
	timeseriesCmd.MarkFlagRequired("end")

	addCommonFlags(categoryCmd, &catFlags)

	rootCmd.AddCommand(timeseriesCmd, categoryCmd)
}
