package main

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"pkg.jsn.cam/tabgen/internal/ui"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect the run catalog",
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded runs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCatalog()
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.ListRuns()
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			ui.Info.Println("No runs recorded")
			return nil
		}

		tableData := pterm.TableData{
			{"ID", "Name", "Kind", "Rows", "Columns", "Created", "Output"},
		}
		for _, run := range runs {
			tableData = append(tableData, []string{
				run.ID,
				run.Name,
				run.Kind,
				humanize.Comma(int64(run.Rows)),
				strconv.Itoa(run.Columns),
				humanize.Time(run.CreatedAt),
				run.Output,
			})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
	},
}

var runsShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show one run and its column summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCatalog()
		if err != nil {
			return err
		}
		defer store.Close()

		run, err := store.GetRun(args[0])
		if err != nil {
			return err
		}

		seed := "-"
		if run.Config.Seed != nil {
			seed = strconv.FormatInt(*run.Config.Seed, 10)
		}
		tableData := pterm.TableData{
			{"Property", "Value"},
			{"ID", run.ID},
			{"Name", run.Name},
			{"Kind", run.Kind},
			{"Samples", strconv.Itoa(run.Config.SampleSize)},
			{"Features", strconv.Itoa(run.Config.FeatureSize)},
			{"Missing ratio", strconv.FormatFloat(run.Config.MissingRatio, 'g', -1, 64)},
			{"Seed", seed},
			{"Rows", humanize.Comma(int64(run.Rows))},
			{"Columns", strconv.Itoa(run.Columns)},
			{"Created", run.CreatedAt.Format("2006-01-02 15:04:05")},
			{"Output", run.Output},
			{"Record version", run.Version},
		}
		if run.Config.StartDate != "" {
			tableData = append(tableData,
				[]string{"Start date", run.Config.StartDate},
				[]string{"End date", run.Config.EndDate})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
			return err
		}
		if len(run.Summary) == 0 {
			return nil
		}
		return ui.RenderSummary(run.Summary)
	},
}

var runsRmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete a run record (generated files are kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCatalog()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeleteRun(args[0]); err != nil {
			return err
		}
		ui.Success.Printf("Deleted run %s\n", args[0])
		return nil
	},
}

func init() {
	runsCmd.AddCommand(runsListCmd, runsShowCmd, runsRmCmd)
	rootCmd.AddCommand(runsCmd)
}
