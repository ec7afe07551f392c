package main

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var ErrInvalidDirection = errors.New("invalid displacement direction")

// Direction of a displacement along a normal mode
type Direction int

const (
	Plus Direction = iota
	Minus
)

// ParseDirection accepts the sign or the step number of a
// displacement
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "+", "1":
		return Plus, nil
	case "-", "2":
		return Minus, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

// Step returns the step directory number for d
func (d Direction) Step() int {
	return int(d) + 1
}

func (d Direction) String() string {
	if d == Minus {
		return "-"
	}
	return "+"
}

// ModeCount returns the number of vibrational modes for a molecule
// with natoms atoms
func ModeCount(natoms int, linear bool) int {
	if linear {
		return 3*natoms - 5
	}
	return 3*natoms - 6
}

// ModePair holds the property values at the positive and negative
// displacements along a single mode
type ModePair struct {
	Plus  float64
	Minus float64
}

// AlphaII returns the central-difference second derivative of the
// property along each mode
func AlphaII(eq float64, pairs []ModePair, dxs []float64) ([]float64, error) {
	if len(pairs) != len(dxs) {
		return nil, fmt.Errorf("%w: %d modes, %d step sizes",
			ErrArrayLengthMismatch, len(pairs), len(dxs))
	}
	ret := make([]float64, len(pairs))
	for i, p := range pairs {
		ret[i] = (p.Plus - 2*eq + p.Minus) / (dxs[i] * dxs[i])
	}
	return ret, nil
}

// HarmonicCorrections returns the per-mode correction terms printed in
// the report. This is not alpha_ii*dx^2
func HarmonicCorrections(eq float64, pairs []ModePair) []float64 {
	ret := make([]float64, len(pairs))
	for i, p := range pairs {
		ret[i] = 0.5 * (p.Plus + 2*eq - p.Minus)
	}
	return ret
}

// SumCorrection computes sum_i alpha_ii dx_i^2, the second term of the
// vibrational averaging formula on p. 1892 of Wiberg
func SumCorrection(alpha, dxs []float64) (float64, error) {
	if len(alpha) != len(dxs) {
		return 0, fmt.Errorf("%w: %d derivatives, %d step sizes",
			ErrArrayLengthMismatch, len(alpha), len(dxs))
	}
	dx2 := make([]float64, len(dxs))
	floats.MulTo(dx2, dxs, dxs)
	return floats.Dot(alpha, dx2), nil
}

// Correction is the vibrational averaging of a single property
type Correction struct {
	Eq              float64
	Alpha           []float64
	C               []float64
	TotalCorrection float64
	Total           float64
}

// Aggregate combines the equilibrium value eq with the displaced values
// in pairs, generated with step sizes dxs
func Aggregate(eq float64, pairs []ModePair, dxs []float64) (Correction, error) {
	alpha, err := AlphaII(eq, pairs, dxs)
	if err != nil {
		return Correction{}, err
	}
	c := HarmonicCorrections(eq, pairs)
	corr := floats.Sum(c)
	return Correction{
		Eq:              eq,
		Alpha:           alpha,
		C:               c,
		TotalCorrection: corr,
		Total:           eq + corr,
	}, nil
}

// HarmonicFrequencies diagonalizes the mass-weighted Cartesian Hessian
// hess (Eh/bohr^2) for atoms with masses in amu and returns the
// vibrational frequencies in cm-1 in ascending order. The translations
// and rotations are taken to be the 6 (5 if linear) eigenvalues of
// smallest magnitude. Imaginary frequencies are returned as negative
// numbers
func HarmonicFrequencies(hess mat.Symmetric, masses []float64,
	linear bool) ([]float64, error) {
	d := hess.Symmetric()
	if d != 3*len(masses) {
		return nil, fmt.Errorf("%w: %dx%d hessian for %d atoms",
			ErrDimensionMismatch, d, d, len(masses))
	}
	nvib := ModeCount(len(masses), linear)
	if nvib < 1 {
		return nil, fmt.Errorf("%w: no vibrations for %d atoms",
			ErrDimensionMismatch, len(masses))
	}
	mw := mat.NewSymDense(d, nil)
	for i := 0; i < d; i++ {
		for j := 0; j <= i; j++ {
			mw.SetSym(i, j, hess.At(i, j)/
				math.Sqrt(masses[i/3]*masses[j/3]))
		}
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(mw, false); !ok {
		return nil, errors.New("hessian diagonalization failed")
	}
	vals := eig.Values(nil)
	sort.Slice(vals, func(i, j int) bool {
		return math.Abs(vals[i]) < math.Abs(vals[j])
	})
	vals = vals[d-nvib:]
	sort.Float64s(vals)
	conv := HARTREE2J / (BOHR2M * BOHR2M * AMU2KG)
	ret := make([]float64, len(vals))
	for i, v := range vals {
		w := math.Sqrt(math.Abs(v)*conv) / (2 * math.Pi * LIGHT * 100)
		if v < 0 {
			w = -w
		}
		ret[i] = w
	}
	return ret, nil
}
