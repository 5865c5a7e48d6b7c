package ui

import (
	"fmt"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/pterm/pterm"

	"pkg.jsn.cam/tabgen/pkg/tabgen"
)

// PreviewData returns the header and the first n rows of df as table data.
// Missing floats are shown as "NaN".
func PreviewData(df dataframe.DataFrame, n int) pterm.TableData {
	if df.Ncol() == 0 {
		return nil
	}
	records := df.Records()
	if n < 0 || n+1 > len(records) {
		n = len(records) - 1
	}
	return pterm.TableData(records[:n+1])
}

// RenderPreview prints the first n rows of df.
func RenderPreview(df dataframe.DataFrame, n int) error {
	data := PreviewData(df, n)
	if data == nil {
		Warning.Println("Table is empty")
		return nil
	}
	pterm.DefaultSection.Printf("Preview (%d of %d rows)\n", len(data)-1, df.Nrow())
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// SummaryData lays out column summaries, one row per column.
func SummaryData(summaries []tabgen.ColumnSummary) pterm.TableData {
	data := pterm.TableData{
		{"Column", "Type", "Count", "Missing", "Unique", "Mean", "Std", "Min", "Max"},
	}
	for _, s := range summaries {
		missing := fmt.Sprintf("%d (%.1f%%)", s.Missing, s.MissingRatio*100)
		row := []string{s.Name, s.Type, strconv.Itoa(s.Count), missing, "-", "-", "-", "-", "-"}
		if s.Numeric() {
			row[5] = formatFloat(s.Mean)
			row[6] = formatFloat(s.Std)
			row[7] = formatFloat(s.Min)
			row[8] = formatFloat(s.Max)
		} else {
			row[4] = strconv.Itoa(s.Unique)
		}
		data = append(data, row)
	}
	return data
}

// RenderSummary prints one row of statistics per column.
func RenderSummary(summaries []tabgen.ColumnSummary) error {
	pterm.DefaultSection.Println("Summary")
	return pterm.DefaultTable.WithHasHeader().WithData(SummaryData(summaries)).Render()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
