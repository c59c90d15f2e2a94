package report

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"rootcmp/internal/compare"
	"rootcmp/internal/fixedpoint"
)

// нижняя граница для log10 от точного нуля
const logFloor = -17.0

func log10Abs(v float64) float64 {
	if v == 0 {
		return logFloor
	}
	return math.Max(math.Log10(math.Abs(v)), logFloor)
}

// SaveConvergencePlot — график log10|f(x_n)| по итерациям для всех методов задачи label
func SaveConvergencePlot(path, label string, rows []compare.Row) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Convergence, problem %s", label)
	p.X.Label.Text = "n"
	p.Y.Label.Text = "log10 |f(x_n)|"

	var lines []interface{}
	for _, row := range rows {
		if row.Label != label || len(row.Result.History) == 0 {
			continue
		}
		pts := make(plotter.XYs, 0, len(row.Result.History))
		for _, it := range row.Result.History {
			pts = append(pts, plotter.XY{X: float64(it.Iteration), Y: log10Abs(it.FX)})
		}
		lines = append(lines, row.Result.Method, pts)
	}
	if len(lines) > 0 {
		if err := plotutil.AddLinePoints(p, lines...); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}

// SaveFixedPointPlot — график log10|x_n - α| для каждой начальной точки
func SaveFixedPointPlot(path string, m fixedpoint.Map, a fixedpoint.Analysis) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Fixed-point iteration %s", m.Name)
	p.X.Label.Text = "n"
	p.Y.Label.Text = "log10 |x_n - alpha|"

	var lines []interface{}
	for _, r := range a.Rows {
		steps := r.Predicted
		if r.Reached {
			steps = max(steps, r.Observed)
		}
		steps = max(steps, 1)
		pts := make(plotter.XYs, 0, steps)
		for i, x := range fixedpoint.Trajectory(m, r.Seed, steps) {
			pts = append(pts, plotter.XY{X: float64(i + 1), Y: log10Abs(x - a.Alpha)})
		}
		lines = append(lines, fmt.Sprintf("x0 = %g", r.Seed), pts)
	}
	if len(lines) > 0 {
		if err := plotutil.AddLinePoints(p, lines...); err != nil {
			return fmt.Errorf("report: %w", err)
		}
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	return nil
}
