package solver

import (
	"fmt"
	"math"
)

const (
	DefaultTol     = 1e-6
	DefaultMaxIter = 500
)

// Названия методов в результатах
const (
	MethodNewton    = "Newton"
	MethodSecant    = "Secant"
	MethodBisection = "Bisection"
)

// Сообщения о неудачных запусках
const (
	MsgMaxIter        = "Maximum iterations reached."
	MsgZeroDerivative = "Derivative became zero."
	MsgZeroSecant     = "Secant denominator became zero."
	MsgNoBracket      = "Interval does not bracket a root."
)

// IterationPoint — одна итерация метода
type IterationPoint struct {
	Iteration int
	X         float64
	FX        float64
}

// Result — итог одного запуска метода.
// Message пуст тогда и только тогда, когда Converged.
type Result struct {
	Method     string
	Converged  bool
	Root       float64
	Iterations int
	Residual   float64
	History    []IterationPoint
	Message    string
}

// Unavailable — заранее построенный неуспешный результат для метода,
// который нельзя запустить на данной задаче (например, нет отрезка локализации).
func Unavailable(method string, x0 float64, reason string) Result {
	return Result{
		Method:   method,
		Root:     x0,
		Residual: math.Inf(1),
		History:  []IterationPoint{},
		Message:  reason,
	}
}

type trace struct {
	method  string
	history []IterationPoint
}

func newTrace(method string) *trace {
	return &trace{method: method, history: []IterationPoint{}}
}

func (t *trace) add(n int, x, fx float64) {
	t.history = append(t.history, IterationPoint{Iteration: n, X: x, FX: fx})
}

// fail — неуспешный результат; невязка берётся по последней записанной точке
func (t *trace) fail(x float64, msg string) Result {
	residual := math.Inf(1)
	if len(t.history) > 0 {
		residual = math.Abs(t.history[len(t.history)-1].FX)
	}
	return Result{
		Method:     t.method,
		Root:       x,
		Iterations: len(t.history),
		Residual:   residual,
		History:    t.history,
		Message:    msg,
	}
}

func (t *trace) done(root, fx float64, iterations int) Result {
	return Result{
		Method:     t.method,
		Converged:  true,
		Root:       root,
		Iterations: iterations,
		Residual:   math.Abs(fx),
		History:    t.history,
	}
}

// eval вычисляет f(x); паника и нечисловой результат превращаются в EvalError
func eval(f Func, x float64) (v float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = math.NaN(), &EvalError{X: x, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	v, err = f.Eval(x)
	if err != nil {
		return v, err
	}
	return finite(x, v)
}

func evalFailed(what string, err error) string {
	return fmt.Sprintf("%s evaluation failed: %v", what, err)
}
