package compare

import (
	"log/slog"

	"rootcmp/internal/problems"
	"rootcmp/internal/solver"
)

// Config — общие параметры останова для всех методов
type Config struct {
	Tol     float64
	MaxIter int
}

func DefaultConfig() Config {
	return Config{Tol: solver.DefaultTol, MaxIter: solver.DefaultMaxIter}
}

// Row — результат одного метода на одной задаче
type Row struct {
	Label      string
	Expression string
	Result     solver.Result
}

// Runner прогоняет все методы по набору задач
type Runner struct {
	cfg Config
	log *slog.Logger
}

func NewRunner(cfg Config, logger *slog.Logger) *Runner {
	if cfg.Tol <= 0 {
		cfg.Tol = solver.DefaultTol
	}
	if cfg.MaxIter <= 0 {
		cfg.MaxIter = solver.DefaultMaxIter
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{cfg: cfg, log: logger}
}

func (r *Runner) Config() Config {
	return r.cfg
}

// RunProblem запускает Newton, Secant и Bisection (в этом порядке).
// Если у задачи нет отрезка, вместо Bisection подставляется заранее собранный неуспешный результат.
func (r *Runner) RunProblem(p problems.Problem) []Row {
	results := []solver.Result{
		solver.Newton(p.F, p.DF, p.X0, r.cfg.Tol, r.cfg.MaxIter),
		solver.Secant(p.F, p.X0, p.SecantX1, r.cfg.Tol, r.cfg.MaxIter),
	}
	if a, b, ok := p.Bracket.Get(); ok {
		results = append(results, solver.Bisection(p.F, a, b, r.cfg.Tol, r.cfg.MaxIter))
	} else {
		results = append(results, solver.Unavailable(solver.MethodBisection, p.X0, p.Bracket.Reason()))
	}

	rows := make([]Row, 0, len(results))
	for _, res := range results {
		r.logResult(p, res)
		rows = append(rows, Row{Label: p.Label, Expression: p.Expression, Result: res})
	}
	return rows
}

// Run прогоняет все задачи; неудача одного метода не прерывает пакет.
func (r *Runner) Run(set []problems.Problem) []Row {
	rows := make([]Row, 0, 3*len(set))
	for _, p := range set {
		rows = append(rows, r.RunProblem(p)...)
	}
	return rows
}

func (r *Runner) logResult(p problems.Problem, res solver.Result) {
	attrs := []any{
		"problem", p.Label,
		"method", res.Method,
		"iterations", res.Iterations,
		"root", res.Root,
		"residual", res.Residual,
	}
	if res.Converged {
		r.log.Debug("метод сошёлся", attrs...)
		return
	}
	r.log.Info("метод не сошёлся", append(attrs, "reason", res.Message)...)
}

// Summary — сводка по пакету
type Summary struct {
	Total     int
	Converged int
	ByMethod  map[string]int
}

// Summarize считает число сошедшихся запусков, в том числе по методам.
func Summarize(rows []Row) Summary {
	s := Summary{Total: len(rows), ByMethod: map[string]int{}}
	for _, row := range rows {
		if row.Result.Converged {
			s.Converged++
			s.ByMethod[row.Result.Method]++
		}
	}
	return s
}
