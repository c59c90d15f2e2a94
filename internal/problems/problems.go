package problems

import (
	"errors"
	"fmt"
	"math"

	"rootcmp/internal/solver"
)

// ErrUnknownProblem — в каталоге нет задачи с такой меткой
var ErrUnknownProblem = errors.New("problems: unknown label")

// Bracket — отрезок локализации корня либо явная отметка его отсутствия.
type Bracket struct {
	a, b   float64
	valid  bool
	reason string
}

// Interval — корректный отрезок [a, b]
func Interval(a, b float64) Bracket {
	return Bracket{a: a, b: b, valid: true}
}

// NoInterval — отрезка нет; reason объясняет почему
func NoInterval(reason string) Bracket {
	return Bracket{reason: reason}
}

// Get возвращает концы отрезка; ok == false, если отрезка нет.
func (b Bracket) Get() (lo, hi float64, ok bool) {
	return b.a, b.b, b.valid
}

// Reason — пояснение для задач без отрезка
func (b Bracket) Reason() string {
	return b.reason
}

// Problem — одна тестовая задача
type Problem struct {
	Label      string
	Expression string
	F          solver.Func
	DF         solver.Func
	X0         float64
	SecantX1   float64
	Bracket    Bracket
}

// Catalog возвращает набор задач a–j. Каждый вызов строит новый срез.
func Catalog() []Problem {
	return []Problem{
		{
			Label:      "a",
			Expression: "1 - 2x*exp(-x/2)",
			F:          solver.FuncOf(func(x float64) float64 { return 1 - 2*x*math.Exp(-x/2) }),
			DF:         solver.FuncOf(func(x float64) float64 { return (x - 2) * math.Exp(-x/2) }),
			X0:         0,
			SecantX1:   0.5,
			Bracket:    Interval(0, 2),
		},
		{
			Label:      "b",
			Expression: "5 - x^(-1)",
			F:          solver.FuncOf(func(x float64) float64 { return 5 - 1/x }),
			DF:         solver.FuncOf(func(x float64) float64 { return 1 / (x * x) }),
			X0:         0.25,
			SecantX1:   0.3,
			Bracket:    Interval(0.1, 0.5),
		},
		{
			Label:      "c",
			Expression: "x^3 - 2x - 5",
			F:          solver.FuncOf(func(x float64) float64 { return x*x*x - 2*x - 5 }),
			DF:         solver.FuncOf(func(x float64) float64 { return 3*x*x - 2 }),
			X0:         2,
			SecantX1:   2.2,
			Bracket:    Interval(2, 3),
		},
		{
			Label:      "d",
			Expression: "exp(x) - 2",
			F:          solver.FuncOf(func(x float64) float64 { return math.Exp(x) - 2 }),
			DF:         solver.FuncOf(math.Exp),
			X0:         1,
			SecantX1:   0.5,
			Bracket:    Interval(0, 2),
		},
		{
			Label:      "e",
			Expression: "x - exp(-x)",
			F:          solver.FuncOf(func(x float64) float64 { return x - math.Exp(-x) }),
			DF:         solver.FuncOf(func(x float64) float64 { return 1 + math.Exp(-x) }),
			X0:         1,
			SecantX1:   0.5,
			Bracket:    Interval(0, 1),
		},
		{
			Label:      "f",
			Expression: "x^6 - x - 1",
			F:          solver.FuncOf(func(x float64) float64 { return math.Pow(x, 6) - x - 1 }),
			DF:         solver.FuncOf(func(x float64) float64 { return 6*math.Pow(x, 5) - 1 }),
			X0:         1,
			SecantX1:   1.2,
			Bracket:    Interval(1, 2),
		},
		{
			Label:      "g",
			Expression: "x^2 - sin(x)",
			F:          solver.FuncOf(func(x float64) float64 { return x*x - math.Sin(x) }),
			DF:         solver.FuncOf(func(x float64) float64 { return 2*x - math.Cos(x) }),
			X0:         0.5,
			SecantX1:   0.8,
			Bracket:    Interval(0.5, 1),
		},
		{
			Label:      "h",
			Expression: "x^3 - 2",
			F:          solver.FuncOf(func(x float64) float64 { return x*x*x - 2 }),
			DF:         solver.FuncOf(func(x float64) float64 { return 3 * x * x }),
			X0:         1,
			SecantX1:   1.2,
			Bracket:    Interval(1, 2),
		},
		{
			Label:      "i",
			Expression: "x + tan(x)",
			F:          solver.FuncOf(func(x float64) float64 { return x + math.Tan(x) }),
			DF: solver.FuncOf(func(x float64) float64 {
				c := math.Cos(x)
				return 1 + 1/(c*c)
			}),
			X0:       3,
			SecantX1: 2.9,
			Bracket:  Interval(2, 3),
		},
		{
			Label:      "j",
			Expression: "2 - ln(x)/x",
			F:          solver.FuncOf(func(x float64) float64 { return 2 - math.Log(x)/x }),
			DF:         solver.FuncOf(func(x float64) float64 { return (math.Log(x) - 1) / (x * x) }),
			X0:         1.0 / 3.0,
			SecantX1:   0.4,
			Bracket:    NoInterval("No valid bracketing interval: f(x) = 2 - ln(x)/x has no real root."),
		},
	}
}

// Lookup ищет задачу каталога по метке
func Lookup(label string) (Problem, error) {
	for _, p := range Catalog() {
		if p.Label == label {
			return p, nil
		}
	}
	return Problem{}, fmt.Errorf("%w: %q", ErrUnknownProblem, label)
}

// FromExpr строит задачу по строковым выражениям f(x) и f'(x).
// Если dfExpr пусто, производная считается численно.
func FromExpr(label, fExpr, dfExpr string, x0, x1 float64, bracket Bracket) (Problem, error) {
	f, err := solver.NewExprFunc(fExpr)
	if err != nil {
		return Problem{}, fmt.Errorf("ошибка в выражении функции: %w", err)
	}

	var df solver.Func
	if dfExpr == "" {
		df = solver.NumericDerivative(f)
	} else {
		df, err = solver.NewExprFunc(dfExpr)
		if err != nil {
			return Problem{}, fmt.Errorf("ошибка в выражении производной: %w", err)
		}
	}

	return Problem{
		Label:      label,
		Expression: fExpr,
		F:          f,
		DF:         df,
		X0:         x0,
		SecantX1:   x1,
		Bracket:    bracket,
	}, nil
}
