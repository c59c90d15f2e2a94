package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"rootcmp/internal/compare"
	"rootcmp/internal/fixedpoint"
	"rootcmp/internal/report"
)

// RunCompare прогоняет каталог задач, анализ простой итерации и пишет отчёты
func RunCompare(w io.Writer, p *CompareParams) error {
	if err := p.normalize(); err != nil {
		return err
	}
	set, err := p.selected()
	if err != nil {
		return err
	}

	runner := compare.NewRunner(p.config(), slog.Default())
	rows := runner.Run(set)
	analysis := fixedpoint.Analyze(fixedpoint.ExpMap, p.Seeds, p.Target)

	if err := report.WriteTable(w, p.Tol, rows); err != nil {
		return err
	}
	if err := report.WriteFixedPoint(w, fixedpoint.ExpMap.Name, analysis); err != nil {
		return err
	}

	doc := report.NewDocument(runner.Config(), rows, fixedpoint.ExpMap, analysis)
	sum := compare.Summarize(rows)
	slog.Info("сравнение завершено", "run", doc.RunID, "runs", sum.Total, "converged", sum.Converged)

	if p.Out != "" {
		if err := report.SaveMarkdown(p.Out, doc); err != nil {
			return err
		}
		fmt.Fprintf(w, "\nWrote markdown report: %s\n", p.Out)
	}

	if p.TraceCSV != "" {
		if err := report.SaveTraceCSV(p.TraceCSV, rows); err != nil {
			return err
		}
		slog.Info("история итераций записана", "path", p.TraceCSV)
	}

	if p.PlotDir != "" {
		if err := savePlots(p.PlotDir, labelsOf(rows), rows, analysis); err != nil {
			return err
		}
		slog.Info("графики сохранены", "dir", p.PlotDir)
	}
	return nil
}

// RunFixedPoint — только анализ простой итерации
func RunFixedPoint(w io.Writer, target float64, seeds []float64, plotPath string) error {
	if len(seeds) == 0 {
		return ErrNoSeeds
	}
	if target <= 0 {
		target = fixedpoint.DefaultTarget
	}

	analysis := fixedpoint.Analyze(fixedpoint.ExpMap, seeds, target)
	if err := report.WriteFixedPoint(w, fixedpoint.ExpMap.Name, analysis); err != nil {
		return err
	}
	if plotPath != "" {
		if err := report.SaveFixedPointPlot(plotPath, fixedpoint.ExpMap, analysis); err != nil {
			return err
		}
		slog.Info("график сохранён", "path", plotPath)
	}
	return nil
}

// RunSolve решает одну задачу, заданную выражениями
func RunSolve(w io.Writer, p *SolveParams) error {
	if err := p.normalize(); err != nil {
		return err
	}
	prob, err := p.problem()
	if err != nil {
		return err
	}

	runner := compare.NewRunner(compare.Config{Tol: p.Tol, MaxIter: p.MaxIter}, slog.Default())
	return report.WriteTable(w, p.Tol, runner.RunProblem(prob))
}

func savePlots(dir string, labels []string, rows []compare.Row, a fixedpoint.Analysis) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cli: %w", err)
	}
	for _, label := range labels {
		if err := report.SaveConvergencePlot(filepath.Join(dir, "problem_"+label+".png"), label, rows); err != nil {
			return err
		}
	}
	return report.SaveFixedPointPlot(filepath.Join(dir, "fixedpoint.png"), fixedpoint.ExpMap, a)
}

// labelsOf — метки задач в порядке появления
func labelsOf(rows []compare.Row) []string {
	seen := map[string]bool{}
	var labels []string
	for _, row := range rows {
		if !seen[row.Label] {
			seen[row.Label] = true
			labels = append(labels, row.Label)
		}
	}
	return labels
}
