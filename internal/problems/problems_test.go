package problems_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rootcmp/internal/problems"
	"rootcmp/internal/solver"
)

func TestCatalog_Labels(t *testing.T) {
	cat := problems.Catalog()
	require.Len(t, cat, 10)

	for i, p := range cat {
		assert.Equal(t, string(rune('a'+i)), p.Label)
		assert.NotEmpty(t, p.Expression)
		require.NotNil(t, p.F, p.Label)
		require.NotNil(t, p.DF, p.Label)
	}
}

func TestCatalog_Brackets(t *testing.T) {
	for _, p := range problems.Catalog() {
		a, b, ok := p.Bracket.Get()
		if p.Label == "j" {
			assert.False(t, ok)
			assert.Contains(t, p.Bracket.Reason(), "no real root")
			continue
		}
		require.True(t, ok, p.Label)
		assert.Less(t, a, b, p.Label)
		assert.Empty(t, p.Bracket.Reason())

		fa, err := p.F.Eval(a)
		require.NoError(t, err, p.Label)
		fb, err := p.F.Eval(b)
		require.NoError(t, err, p.Label)
		assert.LessOrEqual(t, fa*fb, 0.0, "problem %s must bracket a root", p.Label)
	}
}

func TestCatalog_FreshSlice(t *testing.T) {
	first := problems.Catalog()
	first[0].Label = "changed"

	assert.Equal(t, "a", problems.Catalog()[0].Label)
}

func TestCatalog_DomainErrors(t *testing.T) {
	j, err := problems.Lookup("j")
	require.NoError(t, err)

	_, err = j.F.Eval(-1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, solver.ErrNonFinite))

	b, err := problems.Lookup("b")
	require.NoError(t, err)
	_, err = b.F.Eval(0)
	assert.True(t, errors.Is(err, solver.ErrNonFinite))
}

func TestLookup_Unknown(t *testing.T) {
	_, err := problems.Lookup("z")
	require.Error(t, err)
	assert.True(t, errors.Is(err, problems.ErrUnknownProblem))
}

func TestFromExpr(t *testing.T) {
	p, err := problems.FromExpr("user", "x**3 - 2*x - 5", "3*x**2 - 2", 2, 2.2, problems.Interval(2, 3))
	require.NoError(t, err)

	v, err := p.F.Eval(2)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, v, 1e-12)

	dv, err := p.DF.Eval(2)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, dv, 1e-12)
}

func TestFromExpr_DecimalComma(t *testing.T) {
	p, err := problems.FromExpr("user", "x - 0,5", "1", 0, 1, problems.Interval(0, 1))
	require.NoError(t, err)

	v, err := p.F.Eval(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, v, 1e-15)

	r := solver.Bisection(p.F, 0, 1, solver.DefaultTol, solver.DefaultMaxIter)
	require.True(t, r.Converged)
	assert.Equal(t, 0.5, r.Root)
}

func TestFromExpr_NumericDerivative(t *testing.T) {
	p, err := problems.FromExpr("user", "exp(x) - 2", "", 1, 0.5, problems.NoInterval("none"))
	require.NoError(t, err)

	dv, err := p.DF.Eval(1)
	require.NoError(t, err)
	assert.InDelta(t, math.E, dv, 1e-6)

	r := solver.Newton(p.F, p.DF, p.X0, solver.DefaultTol, solver.DefaultMaxIter)
	require.True(t, r.Converged)
	assert.InDelta(t, math.Ln2, r.Root, 1e-8)
}

func TestFromExpr_BadExpression(t *testing.T) {
	_, err := problems.FromExpr("user", "x +", "", 0, 1, problems.NoInterval("none"))
	require.Error(t, err)

	_, err = problems.FromExpr("user", "x", "(", 0, 1, problems.NoInterval("none"))
	require.Error(t, err)
}
