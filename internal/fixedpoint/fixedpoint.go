package fixedpoint

import "math"

const (
	DefaultSeed     = 1.5
	DefaultRefTol   = 1e-14
	DefaultRefIter  = 5000
	DefaultMaxSteps = 5000
	DefaultTarget   = 1e-5
)

// DefaultSeeds — начальные точки для сравнения с теоретической оценкой
var DefaultSeeds = []float64{1.0, 1.5, 2.0}

// Map — отображение x_{n+1} = G(x_n) на отрезке [Lo, Hi]
type Map struct {
	Name   string
	G      func(float64) float64
	DG     func(float64) float64
	Lo, Hi float64
}

// ExpMap — g(x) = 1 + e^{-x} на [1, 2]
var ExpMap = Map{
	Name: "g(x) = 1 + exp(-x)",
	G:    func(x float64) float64 { return 1 + math.Exp(-x) },
	DG:   func(x float64) float64 { return -math.Exp(-x) },
	Lo:   1,
	Hi:   2,
}

// Row — предсказанное и наблюдаемое число итераций для одной начальной точки
type Row struct {
	Seed      float64
	Predicted int
	Observed  int
	Reached   bool
}

// Analysis — итог анализа сходимости простой итерации
type Analysis struct {
	Alpha  float64
	L      float64
	Target float64
	Rows   []Row
}

// Reference итерирует G от seed, пока соседние значения не станут ближе tol.
// Результат используется как эталонная неподвижная точка α.
func Reference(m Map, seed, tol float64, maxIter int) float64 {
	x := seed
	for i := 0; i < maxIter; i++ {
		next := m.G(x)
		if math.Abs(next-x) < tol {
			return next
		}
		x = next
	}
	return x
}

// IterationsToError возвращает число шагов n (с единицы), после которого |x_n - α| < target.
// ok == false, если цель не достигнута за DefaultMaxSteps шагов.
func IterationsToError(m Map, x0, alpha, target float64) (n int, ok bool) {
	x := x0
	for n = 1; n < DefaultMaxSteps; n++ {
		x = m.G(x)
		if math.Abs(x-alpha) < target {
			return n, true
		}
	}
	return 0, false
}

// Lipschitz — оценка константы сжатия L = max(|g'(Lo)|, |g'(Hi)|)
func Lipschitz(m Map) float64 {
	return math.Max(math.Abs(m.DG(m.Lo)), math.Abs(m.DG(m.Hi)))
}

// TheoryBound — априорная оценка числа итераций из принципа сжимающих отображений:
//
//	n >= log(ε(1-L)/|x1-x0|) / log(L)
func TheoryBound(m Map, x0, target float64) int {
	l := Lipschitz(m)
	x1 := m.G(x0)
	d := math.Abs(x1 - x0)
	if d == 0 {
		return 0
	}
	n := math.Log(target*(1-l)/d) / math.Log(l)
	return max(0, int(math.Ceil(n)))
}

// Analyze считает α, L и строки таблицы для всех seeds.
func Analyze(m Map, seeds []float64, target float64) Analysis {
	alpha := Reference(m, DefaultSeed, DefaultRefTol, DefaultRefIter)
	a := Analysis{
		Alpha:  alpha,
		L:      Lipschitz(m),
		Target: target,
		Rows:   make([]Row, 0, len(seeds)),
	}
	for _, x0 := range seeds {
		observed, ok := IterationsToError(m, x0, alpha, target)
		a.Rows = append(a.Rows, Row{
			Seed:      x0,
			Predicted: TheoryBound(m, x0, target),
			Observed:  observed,
			Reached:   ok,
		})
	}
	return a
}

// Trajectory — первые steps итераций x_1..x_steps от x0
func Trajectory(m Map, x0 float64, steps int) []float64 {
	xs := make([]float64, 0, steps)
	x := x0
	for i := 0; i < steps; i++ {
		x = m.G(x)
		xs = append(xs, x)
	}
	return xs
}
