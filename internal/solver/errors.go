package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrNonFinite — функция вернула NaN или ±Inf (переполнение, деление на ноль)
	ErrNonFinite = errors.New("solver: non-finite function value")

	// ErrDomain — аргумент вне области определения (log, sqrt)
	ErrDomain = errors.New("solver: math domain error")

	// ErrNotNumber — выражение или аргумент функции не является числом
	ErrNotNumber = errors.New("solver: expression is not a number")
)

// EvalError — неудачное вычисление функции в точке X
type EvalError struct {
	X   float64
	Err error
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("x = %g: %v", e.X, e.Err)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}
