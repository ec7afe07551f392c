package main

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Record names in Gaussian fchk files
const (
	WEIGHTS     = "Real atomic weights"
	FREQUENCIES = "Frequencies for FD properties"
	ROTATIONS   = "FD Optical Rotation Tensor"
	FCS         = "Cartesian Force Constants"
	NATOMS      = "Number of atoms"
	GRADIENT    = "Cartesian Gradient"
	GEOMETRY    = "Current cartesian coordinates"
)

// Symmetric expands the lower triangle in packed, stored row by row,
// into a full 3natoms x 3natoms symmetric matrix
func Symmetric(packed []float64, natoms int) (*mat.SymDense, error) {
	d := 3 * natoms
	if d <= 0 || len(packed) != d*(d+1)/2 {
		return nil, fmt.Errorf(
			"%w: %d packed values for %d atoms, wanted %d",
			ErrDimensionMismatch, len(packed), natoms, d*(d+1)/2)
	}
	ret := mat.NewSymDense(d, nil)
	var k int
	for i := 0; i < d; i++ {
		for j := 0; j <= i; j++ {
			ret.SetSym(i, j, packed[k])
			k++
		}
	}
	return ret, nil
}

// PackLower is the inverse of Symmetric
func PackLower(m mat.Symmetric) []float64 {
	d := m.Symmetric()
	ret := make([]float64, 0, d*(d+1)/2)
	for i := 0; i < d; i++ {
		for j := 0; j <= i; j++ {
			ret = append(ret, m.At(i, j))
		}
	}
	return ret
}

// ParseHessian reconstructs the Cartesian Hessian in text
func ParseHessian(text string) (*mat.SymDense, error) {
	packed, err := FindArray(text, FCS)
	if err != nil {
		return nil, err
	}
	natom, err := FindScalar(text, NATOMS)
	if err != nil {
		return nil, err
	}
	if natom.Kind != Integer {
		return nil, fmt.Errorf("%w: %q is not an integer",
			ErrMalformedRecord, NATOMS)
	}
	return Symmetric(packed, natom.Int)
}

// ParseGradient returns the Cartesian gradient in text. Gaussian
// always writes this record, filling it with zeros when no gradient was
// computed
func ParseGradient(text string) ([]float64, error) {
	return FindArray(text, GRADIENT)
}

// ParseGeometry returns the current Cartesian coordinates in text as
// an natoms x 3 matrix
func ParseGeometry(text string) (*mat.Dense, error) {
	coords, err := FindArray(text, GEOMETRY)
	if err != nil {
		return nil, err
	}
	if len(coords) == 0 || len(coords)%3 != 0 {
		return nil, fmt.Errorf("%w: %d coordinates",
			ErrDimensionMismatch, len(coords))
	}
	return mat.NewDense(len(coords)/3, 3, coords), nil
}

// ParseMasses returns the atomic weights in text
func ParseMasses(text string) ([]float64, error) {
	return FindArray(text, WEIGHTS)
}

// MolecularWeight sums the atomic weights in text
func MolecularWeight(text string) (float64, error) {
	masses, err := ParseMasses(text)
	if err != nil {
		return 0, err
	}
	return floats.Sum(masses), nil
}

func (f *Fchk) Hessian() (*mat.SymDense, error) {
	return ParseHessian(f.Text)
}

func (f *Fchk) Gradient() ([]float64, error) {
	return ParseGradient(f.Text)
}

func (f *Fchk) Geometry() (*mat.Dense, error) {
	return ParseGeometry(f.Text)
}

func (f *Fchk) Masses() ([]float64, error) {
	return ParseMasses(f.Text)
}
