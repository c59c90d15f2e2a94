package solver

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/Knetic/govaluate"
	"gonum.org/v1/gonum/diff/fd"
)

// Func — интерфейс для абстрактной функции f(x)
type Func interface {
	Eval(x float64) (float64, error)
}

// FuncOf оборачивает обычное замыкание в Func.
// Нечисловой результат (NaN, ±Inf) считается ошибкой вычисления.
func FuncOf(f func(float64) float64) Func {
	return plainFunc(f)
}

type plainFunc func(float64) float64

func (f plainFunc) Eval(x float64) (float64, error) {
	return finite(x, f(x))
}

func finite(x, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v, &EvalError{X: x, Err: ErrNonFinite}
	}
	return v, nil
}

// exprFunc — реализация Func на основе govaluate
type exprFunc struct {
	expr   *govaluate.EvaluableExpression
	params map[string]interface{}
}

// decimalComma — запятая между цифрами: "0,5" -> "0.5".
// Запятая с пробелом, как в pow(x, 2), остаётся разделителем аргументов.
var decimalComma = regexp.MustCompile(`(\d),(\d)`)

// NewExprFunc создаёт вычислимую функцию по строке f(x)
func NewExprFunc(expr string) (Func, error) {
	funcs := map[string]govaluate.ExpressionFunction{
		"sin": unary("sin", math.Sin),
		"cos": unary("cos", math.Cos),
		"tan": unary("tan", math.Tan),
		"exp": unary("exp", math.Exp),
		"abs": unary("abs", math.Abs),
		"log": func(args ...interface{}) (interface{}, error) {
			v, err := numArgs("log", args, 1)
			if err != nil {
				return nil, err
			}
			if v[0] <= 0 {
				return nil, fmt.Errorf("log(%g): %w", v[0], ErrDomain)
			}
			return math.Log(v[0]), nil
		},
		"sqrt": func(args ...interface{}) (interface{}, error) {
			v, err := numArgs("sqrt", args, 1)
			if err != nil {
				return nil, err
			}
			if v[0] < 0 {
				return nil, fmt.Errorf("sqrt(%g): %w", v[0], ErrDomain)
			}
			return math.Sqrt(v[0]), nil
		},
		"pow": func(args ...interface{}) (interface{}, error) {
			v, err := numArgs("pow", args, 2)
			if err != nil {
				return nil, err
			}
			return math.Pow(v[0], v[1]), nil
		},
	}

	expr = decimalComma.ReplaceAllString(strings.TrimSpace(expr), "$1.$2")

	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(expr, funcs)
	if err != nil {
		return nil, err
	}

	return &exprFunc{
		expr:   parsed,
		params: map[string]interface{}{"x": 0.0},
	}, nil
}

// Eval подставляет x и вычисляет выражение.
// govaluate хранит все числа как float64; любой другой тип результата
// (строка, bool, список из-за лишней запятой) — ошибка выражения.
func (f *exprFunc) Eval(x float64) (float64, error) {
	f.params["x"] = x
	v, err := f.expr.Evaluate(f.params)
	if err != nil {
		return math.NaN(), &EvalError{X: x, Err: err}
	}
	y, ok := v.(float64)
	if !ok {
		return math.NaN(), &EvalError{X: x, Err: fmt.Errorf("%w: результат типа %T", ErrNotNumber, v)}
	}
	return finite(x, y)
}

// NumericDerivative — центральная разностная производная f.
// Используется, когда аналитическая производная не задана.
func NumericDerivative(f Func) Func {
	return derivFunc{f: f}
}

type derivFunc struct {
	f Func
}

func (d derivFunc) Eval(x float64) (float64, error) {
	var evalErr error
	g := func(t float64) float64 {
		v, err := d.f.Eval(t)
		if err != nil {
			if evalErr == nil {
				evalErr = err
			}
			return math.NaN()
		}
		return v
	}
	v := fd.Derivative(g, x, &fd.Settings{Formula: fd.Central})
	if evalErr != nil {
		return math.NaN(), evalErr
	}
	return finite(x, v)
}

func unary(name string, fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		v, err := numArgs(name, args, 1)
		if err != nil {
			return nil, err
		}
		return fn(v[0]), nil
	}
}

// numArgs проверяет число аргументов функции выражения и что все они числа
func numArgs(name string, args []interface{}, want int) ([]float64, error) {
	if len(args) != want {
		return nil, fmt.Errorf("%s: ожидается аргументов: %d, получено %d", name, want, len(args))
	}
	out := make([]float64, want)
	for i, a := range args {
		v, ok := a.(float64)
		if !ok {
			return nil, fmt.Errorf("%s: аргумент %d типа %T: %w", name, i+1, a, ErrNotNumber)
		}
		out[i] = v
	}
	return out, nil
}
