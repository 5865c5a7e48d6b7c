package export

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkg.jsn.cam/tabgen/pkg/tabgen"
)

func sampleFrame(t *testing.T) dataframe.DataFrame {
	t.Helper()
	df := dataframe.New(
		series.New([]string{"a", "b", "c"}, series.String, "id"),
		series.New([]float64{0.123456789, math.NaN(), -2.5}, series.Float, "feature_1"),
	)
	require.NoError(t, df.Err)
	return df
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleFrame(t)))

	want := "id,feature_1\na,0.123456789\nb,NaN\nc,-2.5\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, dataframe.DataFrame{}))
	assert.Equal(t, "\n", buf.String())
}

func TestCSVRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleFrame(t)))

	df, err := Read(&buf, Format{Kind: KindCSV})
	require.NoError(t, err)
	require.Equal(t, 3, df.Nrow())

	col := df.Col("feature_1")
	assert.Equal(t, series.Float, col.Type())
	values := col.Float()
	assert.Equal(t, 0.123456789, values[0])
	assert.True(t, math.IsNaN(values[1]))
	assert.Equal(t, -2.5, values[2])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleFrame(t)))

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 3)

	assert.Equal(t, "a", rows[0]["id"])
	assert.Equal(t, 0.123456789, rows[0]["feature_1"])
	assert.Nil(t, rows[1]["feature_1"])
	assert.Contains(t, rows[1], "feature_1")
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, dataframe.DataFrame{}))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestToFileCompressed(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "out.csv")
	packed := filepath.Join(dir, "nested", "out.csv.xz")

	ts, err := tabgen.NewTimeSeries(50, 4, "2024-01-01", "2024-01-10", 0.1)
	require.NoError(t, err)
	df, err := ts.Generate()
	require.NoError(t, err)

	n, err := ToFile(plain, "out", df, Options{})
	require.NoError(t, err)
	info, err := os.Stat(plain)
	require.NoError(t, err)
	assert.Equal(t, info.Size(), n)

	n, err = ToFile(packed, "out", df, Options{Progress: true})
	require.NoError(t, err)
	info, err = os.Stat(packed)
	require.NoError(t, err)
	assert.Equal(t, info.Size(), n)

	back, err := ReadFile(packed)
	require.NoError(t, err)
	assert.Equal(t, df.Nrow(), back.Nrow())
	assert.Equal(t, df.Names(), back.Names())
	assert.Equal(t, df.Col(tabgen.ColumnID).Records(), back.Col(tabgen.ColumnID).Records())
}

func TestToFileUnsupported(t *testing.T) {
	_, err := ToFile(filepath.Join(t.TempDir(), "out.xlsx"), "out", sampleFrame(t), Options{})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadFileRejectsSQLite(t *testing.T) {
	_, err := ReadFile("catalog.db")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
