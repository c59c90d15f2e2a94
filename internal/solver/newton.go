package solver

import "math"

// Newton — метод Ньютона x_{n+1} = x_n - f(x_n)/f'(x_n).
// Останов по |x_{n+1} - x_n| < tol.
func Newton(f, df Func, x0, tol float64, maxIter int) Result {
	t := newTrace(MethodNewton)
	x := x0

	for n := 1; n <= maxIter; n++ {
		fx, err := eval(f, x)
		if err != nil {
			return t.fail(x, evalFailed("Function", err))
		}
		t.add(n, x, fx)

		dfx, err := eval(df, x)
		if err != nil {
			return t.fail(x, evalFailed("Derivative", err))
		}
		if dfx == 0 {
			return t.fail(x, MsgZeroDerivative)
		}

		next := x - fx/dfx
		if math.Abs(next-x) < tol {
			fnext, err := eval(f, next)
			if err != nil {
				return t.fail(next, evalFailed("Function", err))
			}
			t.add(n+1, next, fnext)
			return t.done(next, fnext, n)
		}
		x = next
	}

	return t.fail(x, MsgMaxIter)
}
