package main

import (
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"pkg.jsn.cam/tabgen/internal/export"
	"pkg.jsn.cam/tabgen/internal/ui"
	"pkg.jsn.cam/tabgen/pkg/tabgen"
)

var describePreview int

var describeCmd = &cobra.Command{
	Use:   "describe FILE",
	Short: "Summarize a CSV or JSON table (optionally .xz)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		df, err := export.ReadFile(args[0])
		if err != nil {
			return err
		}

		ui.Info.Printf("%s: %s rows x %d columns\n", args[0], humanize.Comma(int64(df.Nrow())), df.Ncol())
		if describePreview > 0 {
			if err := ui.RenderPreview(df, describePreview); err != nil {
				return err
			}
		}
		return ui.RenderSummary(tabgen.Describe(df))
	},
}

func init() {
	describeCmd.Flags().IntVar(&describePreview, "preview", 0, "print the first N rows")
	rootCmd.AddCommand(describeCmd)
}
