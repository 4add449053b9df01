// Package catalan computes Catalan numbers and their common asymptotic
// approximations.
//
// The exact value is C_n = binom(2n, n) / (n+1). Three approximations of
// decreasing fidelity are provided for comparison:
//
//	Stirling:  4^n / sqrt(pi * n^3)   (the true leading asymptotic)
//	Sqrt:      4^n / sqrt(n)
//	Linear:    4^n / n
//
// The float64 variants overflow past n = 514 or so, where 4^n leaves
// float64 range; ExactInt stays exact at any n via math/big.
package catalan

import (
	"errors"
	"math"
	"math/big"
)

// Errors returned for out-of-domain arguments.
var (
	ErrNegativeN = errors.New("catalan: n must be >= 0")
	ErrZeroN     = errors.New("catalan: n must be >= 1")
)

// Exact returns the n-th Catalan number as a float64, evaluated by the
// multiplicative recurrence C_n = C_{n-1} * 2(2n-1)/(n+1) to avoid
// forming the large intermediate binomial. C_0 = 1.
func Exact(n int) (float64, error) {
	if n < 0 {
		return 0, ErrNegativeN
	}

	c := 1.0
	for k := 1; k <= n; k++ {
		c *= 2 * float64(2*k-1) / float64(k+1)
	}

	return c, nil
}

// ExactInt returns the n-th Catalan number exactly.
func ExactInt(n int) (*big.Int, error) {
	if n < 0 {
		return nil, ErrNegativeN
	}

	b := new(big.Int).Binomial(int64(2*n), int64(n))

	return b.Div(b, big.NewInt(int64(n+1))), nil
}

// Stirling returns the full Stirling approximation 4^n / sqrt(pi*n^3).
func Stirling(n int) (float64, error) {
	if n < 1 {
		return 0, ErrZeroN
	}

	fn := float64(n)

	return math.Pow(4, fn) / math.Sqrt(math.Pi*fn*fn*fn), nil
}

// SqrtApprox returns the simplified approximation 4^n / sqrt(n).
func SqrtApprox(n int) (float64, error) {
	if n < 1 {
		return 0, ErrZeroN
	}

	fn := float64(n)

	return math.Pow(4, fn) / math.Sqrt(fn), nil
}

// LinearApprox returns the crude approximation 4^n / n.
func LinearApprox(n int) (float64, error) {
	if n < 1 {
		return 0, ErrZeroN
	}

	fn := float64(n)

	return math.Pow(4, fn) / fn, nil
}

// RelativeError returns |approx-exact| / |exact|. Returns NaN when
// exact is zero.
func RelativeError(approx, exact float64) float64 {
	if exact == 0 {
		return math.NaN()
	}

	return math.Abs(approx-exact) / math.Abs(exact)
}

// Table holds the exact sequence and all three approximations for
// n = 1..maxN, aligned index-for-index (N[i] = i+1).
type Table struct {
	N        []int
	Exact    []float64
	Stirling []float64
	Sqrt     []float64
	Linear   []float64
}

// BuildTable evaluates all four sequences for n = 1..maxN.
func BuildTable(maxN int) (Table, error) {
	if maxN < 1 {
		return Table{}, ErrZeroN
	}

	t := Table{
		N:        make([]int, maxN),
		Exact:    make([]float64, maxN),
		Stirling: make([]float64, maxN),
		Sqrt:     make([]float64, maxN),
		Linear:   make([]float64, maxN),
	}

	c := 1.0

	for i := range t.N {
		n := i + 1
		t.N[i] = n

		// Same multiplicative recurrence as Exact, carried across rows.
		c *= 2 * float64(2*n-1) / float64(n+1)
		t.Exact[i] = c

		s, err := Stirling(n)
		if err != nil {
			return Table{}, err
		}
		t.Stirling[i] = s

		q, err := SqrtApprox(n)
		if err != nil {
			return Table{}, err
		}
		t.Sqrt[i] = q

		l, err := LinearApprox(n)
		if err != nil {
			return Table{}, err
		}
		t.Linear[i] = l
	}

	return t, nil
}
