package main

import (
	"fmt"
	"runtime"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"pkg.jsn.cam/tabgen/pkg/storage"
	"pkg.jsn.cam/tabgen/pkg/tabgen"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		tableData := pterm.TableData{
			{"Property", "Value"},
			{"Version", version},
			{"Record version", storage.RecordVersion},
			{"Kinds", fmt.Sprint(tabgen.Kinds())},
			{"Go Version", runtime.Version()},
			{"OS/Arch", fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)},
		}

		pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
