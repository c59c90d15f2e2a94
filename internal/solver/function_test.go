package solver_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rootcmp/internal/solver"
)

func TestExprFunc_DomainErrors(t *testing.T) {
	tests := []struct {
		name string
		expr string
		x    float64
	}{
		{"log of zero", "log(x)", 0},
		{"log of negative", "log(x)", -1},
		{"sqrt of negative", "sqrt(x)", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := solver.NewExprFunc(tt.expr)
			require.NoError(t, err)

			_, err = f.Eval(tt.x)
			require.Error(t, err)
			assert.True(t, errors.Is(err, solver.ErrDomain), "got %v", err)

			var ee *solver.EvalError
			require.True(t, errors.As(err, &ee))
			assert.Equal(t, tt.x, ee.X)
		})
	}
}

func TestExprFunc_DecimalComma(t *testing.T) {
	tests := []struct {
		expr string
		x    float64
		want float64
	}{
		{"x - 0,5", 1, 0.5},
		{" 2,25*x ", 2, 4.5},
		{"pow(x, 2) - 1,5", 3, 7.5},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			f, err := solver.NewExprFunc(tt.expr)
			require.NoError(t, err)

			v, err := f.Eval(tt.x)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, v, 1e-12)
		})
	}
}

func TestExprFunc_NotANumber(t *testing.T) {
	f, err := solver.NewExprFunc("x > 1")
	require.NoError(t, err)

	_, err = f.Eval(2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, solver.ErrNotNumber), "got %v", err)
}

func TestExprFunc_WrongArity(t *testing.T) {
	f, err := solver.NewExprFunc("pow(x)")
	require.NoError(t, err)

	_, err = f.Eval(2)
	require.Error(t, err)
}

func TestNewton_ExpressionLeavesDomain(t *testing.T) {
	f, err := solver.NewExprFunc("log(x)")
	require.NoError(t, err)
	df, err := solver.NewExprFunc("1/x")
	require.NoError(t, err)

	// x1 = 3 - 3*ln(3) < 0
	r := solver.Newton(f, df, 3, solver.DefaultTol, solver.DefaultMaxIter)

	require.False(t, r.Converged)
	assert.True(t, strings.HasPrefix(r.Message, "Function evaluation failed"), r.Message)
	assert.Contains(t, r.Message, "domain")
	require.Len(t, r.History, 1)
	assert.InDelta(t, math.Log(3), r.Residual, 1e-15)
	assert.Less(t, r.Root, 0.0)
}

func TestFuncOf_NonFinite(t *testing.T) {
	_, err := solver.FuncOf(math.Log).Eval(-1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, solver.ErrNonFinite))
}

func TestNumericDerivative(t *testing.T) {
	d := solver.NumericDerivative(solver.FuncOf(func(x float64) float64 { return x * x }))

	v, err := d.Eval(3)
	require.NoError(t, err)
	assert.InDelta(t, 6.0, v, 1e-6)

	_, err = solver.NumericDerivative(solver.FuncOf(math.Log)).Eval(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, solver.ErrNonFinite))
}
