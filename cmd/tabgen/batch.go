package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"pkg.jsn.cam/tabgen/internal/batch"
	"pkg.jsn.cam/tabgen/internal/config"
	"pkg.jsn.cam/tabgen/internal/ui"
	"pkg.jsn.cam/tabgen/pkg/storage"
)

var (
	batchFile    string
	batchWorkers int
	batchOutDir  string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate every dataset listed in a YAML batch file",
	Example: `  tabgen batch -f datasets.yaml --out-dir out --catalog runs.db`,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := config.Load(batchFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("workers") {
			b.Workers = batchWorkers
		}
		if cmd.Flags().Changed("out-dir") {
			b.OutDir = batchOutDir
		}

		var store storage.Store
		if catalogPath != "" {
			store, err = openCatalog()
			if err != nil {
				return err
			}
			defer store.Close()
		}

		ui.Debug.Printf("Running %d datasets on %d workers\n", len(b.Datasets), b.Workers)
		spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Generating %d datasets...", len(b.Datasets)))
		results, err := batch.Run(cmd.Context(), b.Datasets, b.Workers)
		if err != nil {
			spinner.Fail(err.Error())
			return err
		}
		spinner.Success("Generation finished")

		tableData := pterm.TableData{
			{"Name", "Kind", "Rows", "Columns", "Seed", "Elapsed", "Result"},
		}
		for i := range results {
			r := &results[i]
			var status string
			if r.Err == nil {
				status = finishEntry(b, store, r)
			}
			if r.Err != nil {
				status = pterm.Red(r.Err.Error())
			}

			seed := "-"
			if r.Seeded {
				seed = strconv.FormatInt(r.Seed, 10)
			}
			tableData = append(tableData, []string{
				r.Config.Name,
				r.Config.Kind,
				humanize.Comma(int64(r.Data.Nrow())),
				strconv.Itoa(r.Data.Ncol()),
				seed,
				r.Elapsed.Round(time.Microsecond).String(),
				status,
			})
		}
		pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()

		if failed := batch.Failed(results); failed > 0 {
			return fmt.Errorf("%d of %d datasets failed", failed, len(results))
		}
		return nil
	},
}

// finishEntry writes and records a successful result. Failures are stored
// in r.Err.
func finishEntry(b *config.Batch, store storage.Store, r *batch.Result) string {
	output := ""
	if path := b.OutputPath(r.Config.Name); path != "" {
		output, r.Err = writeOutput(path, r.Config.Name, r.Data, false)
		if r.Err != nil {
			return ""
		}
	}
	if store != nil {
		if _, r.Err = recordRun(store, pinSeed(r.Config, r.Seed, r.Seeded), r.Data, output); r.Err != nil {
			return ""
		}
	}
	if output != "" {
		return pterm.Green(output)
	}
	return pterm.Green("ok")
}

func init() {
	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "batch YAML file")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "concurrent generators (default from file, then NumCPU)")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "", "directory for generated files")
	batchCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(batchCmd)
}
