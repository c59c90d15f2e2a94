package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"rootcmp/internal/compare"
	"rootcmp/internal/fixedpoint"
)

// Document — всё, что попадает в итоговый отчёт
type Document struct {
	RunID      string
	Config     compare.Config
	Rows       []compare.Row
	MapName    string
	FixedPoint fixedpoint.Analysis
}

// NewDocument собирает отчёт с новым идентификатором запуска
func NewDocument(cfg compare.Config, rows []compare.Row, m fixedpoint.Map, a fixedpoint.Analysis) Document {
	return Document{
		RunID:      uuid.NewString(),
		Config:     cfg,
		Rows:       rows,
		MapName:    m.Name,
		FixedPoint: a,
	}
}

// Format — число с 10 знаками, либо nan / inf
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', 10, 64)
}

func note(msg string) string {
	if msg == "" {
		return "-"
	}
	return msg
}

func observed(r fixedpoint.Row) string {
	if !r.Reached {
		return "not reached"
	}
	return strconv.Itoa(r.Observed)
}

// WriteTable печатает таблицу сравнения методов фиксированной ширины
func WriteTable(w io.Writer, tol float64, rows []compare.Row) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Problem 1: Root-finding comparison (tol = %g on |x_{n+1} - x_n|)\n", tol)
	fmt.Fprintln(bw, "label | method    | converged | root          | iterations | residual      | note")
	fmt.Fprintln(bw, strings.Repeat("-", 88))
	for _, row := range rows {
		r := row.Result
		fmt.Fprintf(bw, "%5s | %-9s | %-9t | %-13s | %-10d | %-13s | %s\n",
			row.Label, r.Method, r.Converged, Format(r.Root), r.Iterations, Format(r.Residual), note(r.Message))
	}
	return bw.Flush()
}

// WriteFixedPoint печатает таблицу для простой итерации
func WriteFixedPoint(w io.Writer, mapName string, a fixedpoint.Analysis) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "\nProblem 3: Fixed-point iteration %s\n", mapName)
	fmt.Fprintf(bw, "Reference fixed point alpha ~= %s\n", Format(a.Alpha))
	fmt.Fprintf(bw, "Lipschitz constant estimate L = max|g'(x)| = %s\n", Format(a.L))
	fmt.Fprintf(bw, "Target accuracy: %.0e\n", a.Target)
	fmt.Fprintln(bw, "x0    | predicted_n | observed_n")
	fmt.Fprintln(bw, strings.Repeat("-", 34))
	for _, r := range a.Rows {
		fmt.Fprintf(bw, "%-5g | %-11d | %s\n", r.Seed, r.Predicted, observed(r))
	}
	return bw.Flush()
}

// WriteMarkdown пишет отчёт в Markdown: сравнение методов и анализ простой итерации
func WriteMarkdown(w io.Writer, d Document) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# Results")
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "- Run: `%s`\n", d.RunID)
	fmt.Fprintf(bw, "- Tolerance: `%g` on `|x_{n+1} - x_n|`\n", d.Config.Tol)
	fmt.Fprintf(bw, "- Max iterations: `%d`\n", d.Config.MaxIter)
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "## Problem 1")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "| Function | Method | Converged | Root | Iterations | Residual | Note |")
	fmt.Fprintln(bw, "|---|---|---:|---:|---:|---:|---|")
	for _, row := range d.Rows {
		r := row.Result
		fmt.Fprintf(bw, "| %s: `%s` | %s | %t | %s | %d | %s | %s |\n",
			row.Label, row.Expression, r.Method, r.Converged, Format(r.Root), r.Iterations,
			Format(r.Residual), escapeCell(note(r.Message)))
	}

	a := d.FixedPoint
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "## Problem 3")
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "- Fixed-point map: `%s`\n", d.MapName)
	fmt.Fprintf(bw, "- Reference fixed point: `%s`\n", Format(a.Alpha))
	fmt.Fprintf(bw, "- Contraction constant: `L = %s`\n", Format(a.L))
	fmt.Fprintf(bw, "- Target accuracy: `%.0e`\n", a.Target)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "| x0 | Predicted iterations (theory) | Observed iterations |")
	fmt.Fprintln(bw, "|---:|---:|---:|")
	for _, r := range a.Rows {
		fmt.Fprintf(bw, "| %g | %d | %s |\n", r.Seed, r.Predicted, observed(r))
	}
	return bw.Flush()
}

// SaveMarkdown пишет отчёт в файл path
func SaveMarkdown(path string, d Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := WriteMarkdown(f, d); err != nil {
		f.Close()
		return fmt.Errorf("report: %w", err)
	}
	return f.Close()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
