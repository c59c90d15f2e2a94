package report_test

import (
	"bytes"
	"encoding/csv"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rootcmp/internal/compare"
	"rootcmp/internal/fixedpoint"
	"rootcmp/internal/problems"
	"rootcmp/internal/report"
)

func catalogRows(t *testing.T) []compare.Row {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return compare.NewRunner(compare.DefaultConfig(), logger).Run(problems.Catalog())
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{0.5, "0.5000000000"},
		{-2, "-2.0000000000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, report.Format(tt.in))
	}
}

func TestWriteTable(t *testing.T) {
	rows := catalogRows(t)
	var buf bytes.Buffer
	require.NoError(t, report.WriteTable(&buf, 1e-6, rows))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3+len(rows))
	assert.Contains(t, lines[0], "tol = 1e-06")
	assert.True(t, strings.HasPrefix(lines[1], "label | method"))
	assert.Contains(t, lines[3], "Newton")
	assert.True(t, strings.HasSuffix(lines[3], "| -"), "converged rows have no note")
	assert.Contains(t, lines[len(lines)-1], "No valid bracketing interval")
	assert.Contains(t, lines[len(lines)-1], "inf")
}

func TestWriteFixedPoint(t *testing.T) {
	a := fixedpoint.Analyze(fixedpoint.ExpMap, fixedpoint.DefaultSeeds, fixedpoint.DefaultTarget)
	var buf bytes.Buffer
	require.NoError(t, report.WriteFixedPoint(&buf, fixedpoint.ExpMap.Name, a))

	out := buf.String()
	assert.Contains(t, out, "Reference fixed point alpha ~= 1.27846")
	assert.Contains(t, out, "Target accuracy: 1e-05")
	assert.Contains(t, out, "x0    | predicted_n | observed_n")
	assert.Contains(t, out, "1.5   | ")
}

func TestWriteFixedPoint_NotReached(t *testing.T) {
	a := fixedpoint.Analysis{Target: 1e-5, Rows: []fixedpoint.Row{{Seed: 3, Predicted: 4}}}
	var buf bytes.Buffer
	require.NoError(t, report.WriteFixedPoint(&buf, "g", a))

	assert.Contains(t, buf.String(), "not reached")
}

func TestSaveMarkdown(t *testing.T) {
	rows := catalogRows(t)
	a := fixedpoint.Analyze(fixedpoint.ExpMap, fixedpoint.DefaultSeeds, fixedpoint.DefaultTarget)
	doc := report.NewDocument(compare.DefaultConfig(), rows, fixedpoint.ExpMap, a)
	require.NotEmpty(t, doc.RunID)

	path := filepath.Join(t.TempDir(), "results.md")
	require.NoError(t, report.SaveMarkdown(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.HasPrefix(out, "# Results\n"))
	assert.Contains(t, out, doc.RunID)
	assert.Contains(t, out, "## Problem 1")
	assert.Contains(t, out, "## Problem 3")
	assert.Contains(t, out, "| c: `x^3 - 2x - 5` | Newton | true | 2.0945514815 |")
	assert.Contains(t, out, "- Fixed-point map: `g(x) = 1 + exp(-x)`")
	assert.Equal(t, len(rows), strings.Count(out, "| Newton |")+strings.Count(out, "| Secant |")+strings.Count(out, "| Bisection |"))
}

func TestSaveMarkdown_BadPath(t *testing.T) {
	err := report.SaveMarkdown(filepath.Join(t.TempDir(), "missing", "results.md"), report.Document{})
	require.Error(t, err)
}

func TestWriteTraceCSV(t *testing.T) {
	rows := catalogRows(t)
	var buf bytes.Buffer
	require.NoError(t, report.WriteTraceCSV(&buf, rows))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	total := 0
	for _, row := range rows {
		total += len(row.Result.History)
	}
	require.Len(t, records, total+1)
	assert.Equal(t, []string{"label", "method", "iteration", "x", "fx"}, records[0])
	assert.Equal(t, "a", records[1][0])
	assert.Equal(t, "Newton", records[1][1])
	assert.Equal(t, "1", records[1][2])
}

func TestSavePlots(t *testing.T) {
	dir := t.TempDir()
	rows := catalogRows(t)

	conv := filepath.Join(dir, "c.png")
	require.NoError(t, report.SaveConvergencePlot(conv, "c", rows))
	assert.FileExists(t, conv)

	a := fixedpoint.Analyze(fixedpoint.ExpMap, fixedpoint.DefaultSeeds, fixedpoint.DefaultTarget)
	fp := filepath.Join(dir, "fixedpoint.png")
	require.NoError(t, report.SaveFixedPointPlot(fp, fixedpoint.ExpMap, a))
	assert.FileExists(t, fp)
}
