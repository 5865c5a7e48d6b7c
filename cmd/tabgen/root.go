package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"pkg.jsn.cam/tabgen/internal/ui"
)

var (
	debug       bool
	catalogPath string
	version     = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "tabgen",
	Short: "Synthetic tabular dataset generator",
	Long: `tabgen generates reproducible synthetic tables (time series, categorical)
with configurable size and missing-value ratio, and exports them as CSV,
JSON or SQLite.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.InitLogger(debug)
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.Error.Println(err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "bbolt file recording generated runs")
}
