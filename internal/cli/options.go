package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"rootcmp/internal/compare"
	"rootcmp/internal/fixedpoint"
	"rootcmp/internal/problems"
)

var (
	ErrBadInterval = errors.New("cli: требуется a < b")
	ErrNoSeeds     = errors.New("cli: требуется хотя бы одна начальная точка")
)

// параметры сравнения методов
type CompareParams struct {
	Tol      float64
	MaxIter  int
	Target   float64
	Seeds    []float64
	Problems []string
	Out      string
	TraceCSV string
	PlotDir  string
}

// параметры решения пользовательской задачи
type SolveParams struct {
	Label   string
	F       string
	DF      string
	X0      float64
	X1      float64
	A       float64
	B       float64
	Bracket bool
	Tol     float64
	MaxIter int
}

func (p *CompareParams) normalize() error {
	cfg := normalizeConfig(p.Tol, p.MaxIter)
	p.Tol, p.MaxIter = cfg.Tol, cfg.MaxIter
	if p.Target <= 0 {
		p.Target = fixedpoint.DefaultTarget
	}
	if len(p.Seeds) == 0 {
		return ErrNoSeeds
	}
	return nil
}

func (p *CompareParams) config() compare.Config {
	return compare.Config{Tol: p.Tol, MaxIter: p.MaxIter}
}

// selected — задачи каталога, отфильтрованные по --problem
func (p *CompareParams) selected() ([]problems.Problem, error) {
	if len(p.Problems) == 0 {
		return problems.Catalog(), nil
	}
	set := make([]problems.Problem, 0, len(p.Problems))
	for _, label := range p.Problems {
		prob, err := problems.Lookup(strings.TrimSpace(label))
		if err != nil {
			return nil, err
		}
		set = append(set, prob)
	}
	return set, nil
}

func (p *SolveParams) normalize() error {
	cfg := normalizeConfig(p.Tol, p.MaxIter)
	p.Tol, p.MaxIter = cfg.Tol, cfg.MaxIter
	if p.Label == "" {
		p.Label = "user"
	}
	if p.Bracket && !(p.A < p.B) {
		return ErrBadInterval
	}
	return nil
}

func (p *SolveParams) problem() (problems.Problem, error) {
	bracket := problems.NoInterval("No bracketing interval given (use --a and --b).")
	if p.Bracket {
		bracket = problems.Interval(p.A, p.B)
	}
	return problems.FromExpr(p.Label, p.F, p.DF, p.X0, p.X1, bracket)
}

func normalizeConfig(tol float64, maxIter int) compare.Config {
	cfg := compare.DefaultConfig()
	if tol > 0 {
		cfg.Tol = tol
	}
	if maxIter > 0 {
		cfg.MaxIter = maxIter
	}
	return cfg
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return lvl, fmt.Errorf("cli: неизвестный уровень логирования %q", s)
	}
	return lvl, nil
}
