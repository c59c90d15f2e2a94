package solver

import "math"

// Secant — метод секущих по двум начальным точкам x0, x1.
// В историю пишется только текущая точка, чтобы не дублировать записи.
func Secant(f Func, x0, x1, tol float64, maxIter int) Result {
	t := newTrace(MethodSecant)
	prev, curr := x0, x1

	for n := 1; n <= maxIter; n++ {
		fprev, err := eval(f, prev)
		if err != nil {
			return t.fail(prev, evalFailed("Function", err))
		}
		fcurr, err := eval(f, curr)
		if err != nil {
			return t.fail(curr, evalFailed("Function", err))
		}
		t.add(n, curr, fcurr)

		denom := fcurr - fprev
		if denom == 0 {
			return t.fail(curr, MsgZeroSecant)
		}

		next := curr - fcurr*(curr-prev)/denom
		if math.Abs(next-curr) < tol {
			fnext, err := eval(f, next)
			if err != nil {
				return t.fail(next, evalFailed("Function", err))
			}
			t.add(n+1, next, fnext)
			return t.done(next, fnext, n)
		}
		prev, curr = curr, next
	}

	return t.fail(curr, MsgMaxIter)
}
