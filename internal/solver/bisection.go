package solver

import (
	"fmt"
	"math"
)

// Bisection — метод деления отрезка [a, b] пополам.
// Требует, чтобы f(a) и f(b) были разных знаков.
// Останов по разности двух последовательных середин: |mid_k - mid_{k-1}| < tol
// (у Ньютона и секущих сравниваются соседние приближения x_n, x_{n+1}).
func Bisection(f Func, a, b, tol float64, maxIter int) Result {
	t := newTrace(MethodBisection)

	fa, err := eval(f, a)
	if err != nil {
		return t.fail(a, fmt.Sprintf("Function evaluation failed at interval start: %v", err))
	}
	fb, err := eval(f, b)
	if err != nil {
		return t.fail(b, fmt.Sprintf("Function evaluation failed at interval end: %v", err))
	}

	// корень попал точно в конец отрезка
	if fa == 0 {
		t.add(1, a, fa)
		return t.done(a, 0, 0)
	}
	if fb == 0 {
		t.add(1, b, fb)
		return t.done(b, 0, 0)
	}
	if fa*fb > 0 {
		return t.fail(a, MsgNoBracket)
	}

	left, right := a, b
	var prevMid float64
	hasPrev := false

	for n := 1; n <= maxIter; n++ {
		mid := (left + right) / 2
		fmid, err := eval(f, mid)
		if err != nil {
			return t.fail(mid, evalFailed("Function", err))
		}
		t.add(n, mid, fmid)

		if hasPrev && math.Abs(mid-prevMid) < tol {
			return t.done(mid, fmid, n)
		}
		if fmid == 0 {
			return t.done(mid, 0, n)
		}

		if fa*fmid < 0 {
			right, fb = mid, fmid
		} else {
			left, fa = mid, fmid
		}
		prevMid, hasPrev = mid, true
	}

	return t.fail((left+right)/2, MsgMaxIter)
}
