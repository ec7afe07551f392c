package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var ErrWavelengthNotFound = errors.New("wavelength not found")

// BlobLoader supplies the fchk text for the reference geometry and
// for each displaced geometry
type BlobLoader interface {
	Reference() (string, error)
	Mode(i int, d Direction) (string, error)
}

// ModeRotation holds the rotations at both displacements along one
// mode
type ModeRotation struct {
	Plus  Rotations `json:"+"`
	Minus Rotations `json:"-,"`
}

// RotationResult holds the rotations at the reference geometry and at
// every displaced geometry
type RotationResult struct {
	Eq    Rotations      `json:"eq"`
	Modes []ModeRotation `json:"modes"`
}

// Collect parses the rotations for the reference geometry and for
// nmodes modes from load
func Collect(load BlobLoader, nmodes int) (RotationResult, error) {
	text, err := load.Reference()
	if err != nil {
		return RotationResult{}, err
	}
	eq, err := ParseRotations(text)
	if err != nil {
		return RotationResult{}, fmt.Errorf("reference geometry: %w", err)
	}
	modes := make([]ModeRotation, nmodes)
	for i := range modes {
		for _, d := range []Direction{Plus, Minus} {
			rots, err := ModeRotations(load, i, d)
			if err != nil {
				return RotationResult{}, err
			}
			if d == Plus {
				modes[i].Plus = rots
			} else {
				modes[i].Minus = rots
			}
		}
	}
	return RotationResult{Eq: eq, Modes: modes}, nil
}

// ModeRotations parses the rotations at the displacement of mode i in
// direction d from load
func ModeRotations(load BlobLoader, i int, d Direction) (Rotations, error) {
	text, err := load.Mode(i, d)
	if err != nil {
		return nil, err
	}
	rots, err := ParseRotations(text)
	if err != nil {
		return nil, fmt.Errorf("mode %d (%s): %w", i, d, err)
	}
	return rots, nil
}

// Wavelengths returns the wavelengths at the reference geometry in
// descending order
func (r RotationResult) Wavelengths() []int {
	ret := maps.Keys(r.Eq)
	slices.SortFunc(ret, func(a, b int) bool { return a > b })
	return ret
}

// Pairs returns the displaced rotations at wavelength wl for every
// mode
func (r RotationResult) Pairs(wl int) ([]ModePair, error) {
	ret := make([]ModePair, len(r.Modes))
	for i, m := range r.Modes {
		p, ok := m.Plus[wl]
		if !ok {
			return nil, fmt.Errorf("%w: %d nm for mode %d (+)",
				ErrWavelengthNotFound, wl, i)
		}
		n, ok := m.Minus[wl]
		if !ok {
			return nil, fmt.Errorf("%w: %d nm for mode %d (-)",
				ErrWavelengthNotFound, wl, i)
		}
		ret[i] = ModePair{Plus: p, Minus: n}
	}
	return ret, nil
}

// Correct vibrationally averages the rotation at every wavelength
// using the step sizes in dxs
func (r RotationResult) Correct(dxs []float64) (map[int]Correction, error) {
	ret := make(map[int]Correction, len(r.Eq))
	for _, wl := range r.Wavelengths() {
		pairs, err := r.Pairs(wl)
		if err != nil {
			return nil, err
		}
		ret[wl], err = Aggregate(r.Eq[wl], pairs, dxs)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// WriteJSON dumps r to w as indented JSON
func (r RotationResult) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(r)
}

// LoadRotations reads a RotationResult written by WriteJSON
func LoadRotations(r io.Reader) (ret RotationResult, err error) {
	err = json.NewDecoder(r).Decode(&ret)
	return
}
