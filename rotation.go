package main

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	ErrInvalidFrequency = errors.New("invalid field frequency")
	ErrInvalidWeight    = errors.New("invalid molecular weight")
)

// Rotations maps field wavelengths in nm to specific rotations in
// deg cm^3 dm^-1 g^-1 mol
type Rotations map[int]float64

// AuToNm converts a field energy in Eh to a wavelength in nm, rounded
// to the nearest integer. A negative energy gives a negative wavelength
func AuToNm(freq float64) (int, error) {
	if freq == 0 || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return 0, fmt.Errorf("%w: %g Eh", ErrInvalidFrequency, freq)
	}
	m := PLANCK * LIGHT / (freq * HARTREE2J)
	return int(math.Round(m * 1e9)), nil
}

// RotationPrefactor collects the physical constants in the specific
// rotation formula
func RotationPrefactor() float64 {
	hbar := PLANCK / (2 * math.Pi)
	return -72e6 * hbar * hbar * AVOGADRO / (LIGHT * LIGHT) / (EMASS * EMASS)
}

// SpecificRotation reduces the optical rotation tensor G' computed at
// field frequency freq (Eh) to a specific rotation for a molecule of
// weight mw (amu)
func SpecificRotation(gprime mat.Matrix, freq, mw float64) (float64, error) {
	if r, c := gprime.Dims(); r != 3 || c != 3 {
		return 0, fmt.Errorf("%w: %dx%d rotation tensor",
			ErrDimensionMismatch, r, c)
	}
	if !(mw > 0) {
		return 0, fmt.Errorf("%w: %g", ErrInvalidWeight, mw)
	}
	return RotationPrefactor() * freq * freq * mat.Trace(gprime) / mw / 3.0, nil
}

// ParseRotations computes the specific rotation at each field
// frequency in text from the FD optical rotation tensors. Gaussian only
// prints the rotations to two decimal places, so they are recomputed
// from the tensors here. If two frequencies round to the same
// wavelength, the later one is kept
func ParseRotations(text string) (Rotations, error) {
	mw, err := MolecularWeight(text)
	if err != nil {
		return nil, err
	}
	freqs, err := FindArray(text, FREQUENCIES)
	if err != nil {
		return nil, err
	}
	tensors, err := FindArray(text, ROTATIONS)
	if err != nil {
		return nil, err
	}
	if len(tensors) != 9*len(freqs) {
		return nil, fmt.Errorf("%w: %d tensor elements for %d frequencies",
			ErrArrayLengthMismatch, len(tensors), len(freqs))
	}
	ret := make(Rotations, len(freqs))
	for i, f := range freqs {
		wl, err := AuToNm(f)
		if err != nil {
			return nil, err
		}
		gprime := mat.NewDense(3, 3, tensors[9*i:9*i+9])
		ret[wl], err = SpecificRotation(gprime, f, mw)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func (f *Fchk) Rotations() (Rotations, error) {
	return ParseRotations(f.Text)
}
