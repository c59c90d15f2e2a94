package cli

import (
	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"rootcmp/internal/fixedpoint"
	"rootcmp/internal/solver"
)

// NewRootCmd собирает дерево команд rootcmp
func NewRootCmd() *cobra.Command {
	var logLevel string
	cp := &CompareParams{}

	root := &cobra.Command{
		Use:           "rootcmp",
		Short:         "Сравнение методов Ньютона, секущих и деления пополам",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := parseLevel(logLevel)
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(
				tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
					Level:      lvl,
					TimeFormat: "15:04:05",
				}),
			))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunCompare(cmd.OutOrStdout(), cp)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "уровень логирования: debug|info|warn|error")
	compareFlags(root, cp)

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "Прогнать все методы по каталогу задач и записать отчёт",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunCompare(cmd.OutOrStdout(), cp)
		},
	}
	compareFlags(compareCmd, cp)

	root.AddCommand(compareCmd, newFixedPointCmd(), newSolveCmd())
	return root
}

func compareFlags(cmd *cobra.Command, p *CompareParams) {
	f := cmd.Flags()
	f.Float64Var(&p.Tol, "tol", solver.DefaultTol, "допуск по |x_{n+1} - x_n|")
	f.IntVar(&p.MaxIter, "max-iter", solver.DefaultMaxIter, "максимум итераций")
	f.Float64Var(&p.Target, "target", fixedpoint.DefaultTarget, "целевая точность простой итерации")
	f.Float64SliceVar(&p.Seeds, "seeds", fixedpoint.DefaultSeeds, "начальные точки простой итерации")
	f.StringSliceVar(&p.Problems, "problem", nil, "метки задач каталога (по умолчанию все)")
	f.StringVar(&p.Out, "out", "results.md", "файл Markdown-отчёта")
	f.StringVar(&p.TraceCSV, "trace-csv", "", "файл CSV с историей итераций")
	f.StringVar(&p.PlotDir, "plot-dir", "", "каталог для PNG-графиков сходимости")
}

func newFixedPointCmd() *cobra.Command {
	var (
		target float64
		seeds  []float64
		plot   string
	)
	cmd := &cobra.Command{
		Use:   "fixedpoint",
		Short: "Анализ сходимости простой итерации x = 1 + exp(-x)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunFixedPoint(cmd.OutOrStdout(), target, seeds, plot)
		},
	}
	cmd.Flags().Float64Var(&target, "target", fixedpoint.DefaultTarget, "целевая точность")
	cmd.Flags().Float64SliceVar(&seeds, "seeds", fixedpoint.DefaultSeeds, "начальные точки")
	cmd.Flags().StringVar(&plot, "plot", "", "файл PNG с графиком ошибки")
	return cmd
}

func newSolveCmd() *cobra.Command {
	p := &SolveParams{}
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Решить f(x) = 0 для выражения, заданного строкой",
		Example: `  rootcmp solve --f "x**3 - 2" --x0 1 --x1 1.2 --a 1 --b 2
  rootcmp solve --f "x - cos(x)" --df "1 + sin(x)" --x0 0.5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p.Bracket = cmd.Flags().Changed("a") && cmd.Flags().Changed("b")
			return RunSolve(cmd.OutOrStdout(), p)
		},
	}
	f := cmd.Flags()
	f.StringVar(&p.Label, "label", "user", "метка задачи в таблице")
	f.StringVar(&p.F, "f", "", "выражение f(x)")
	f.StringVar(&p.DF, "df", "", "выражение f'(x); если не задано, производная считается численно")
	f.Float64Var(&p.X0, "x0", 1, "начальное приближение")
	f.Float64Var(&p.X1, "x1", 1.1, "вторая точка метода секущих")
	f.Float64Var(&p.A, "a", 0, "левый конец отрезка")
	f.Float64Var(&p.B, "b", 0, "правый конец отрезка")
	f.Float64Var(&p.Tol, "tol", solver.DefaultTol, "допуск по |x_{n+1} - x_n|")
	f.IntVar(&p.MaxIter, "max-iter", solver.DefaultMaxIter, "максимум итераций")
	_ = cmd.MarkFlagRequired("f")
	return cmd
}
