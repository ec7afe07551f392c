package main

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
		step int
	}{
		{"+", Plus, 1},
		{"1", Plus, 1},
		{"-", Minus, 2},
		{"2", Minus, 2},
	}
	for _, test := range tests {
		got, err := ParseDirection(test.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != test.want || got.Step() != test.step {
			t.Errorf("%q: got %v (step %d), wanted %v (step %d)\n",
				test.in, got, got.Step(), test.want, test.step)
		}
	}
	for _, in := range []string{"", "0", "3", "plus", "+-"} {
		_, err := ParseDirection(in)
		if !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("%q: got %v, wanted %v\n", in, err, ErrInvalidDirection)
		}
	}
}

func TestModeCount(t *testing.T) {
	if got := ModeCount(12, false); got != 30 {
		t.Errorf("got %v, wanted %v\n", got, 30)
	}
	if got := ModeCount(3, true); got != 4 {
		t.Errorf("got %v, wanted %v\n", got, 4)
	}
}

func TestAggregate(t *testing.T) {
	got, err := Aggregate(10, []ModePair{{Plus: 12, Minus: 8}}, []float64{0.1})
	if err != nil {
		t.Fatal(err)
	}
	want := Correction{
		Eq:              10,
		Alpha:           []float64{0},
		C:               []float64{12},
		TotalCorrection: 12,
		Total:           22,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
}

func TestAggregateModes(t *testing.T) {
	pairs := []ModePair{
		{Plus: 12, Minus: 8},
		{Plus: 11, Minus: 11},
		{Plus: 9.5, Minus: 10.25},
	}
	dxs := []float64{0.1, 0.5, 0.25}
	got, err := Aggregate(10, pairs, dxs)
	if err != nil {
		t.Fatal(err)
	}
	wantAlpha := []float64{0, 8, -0.25 / 0.0625}
	wantC := []float64{12, 10, 9.625}
	if !compFloat(got.Alpha, wantAlpha, 1e-12) {
		t.Errorf("alpha: got %v, wanted %v\n", got.Alpha, wantAlpha)
	}
	if !compFloat(got.C, wantC, 1e-12) {
		t.Errorf("c: got %v, wanted %v\n", got.C, wantC)
	}
	if math.Abs(got.TotalCorrection-31.625) > 1e-12 {
		t.Errorf("correction: got %v, wanted %v\n", got.TotalCorrection, 31.625)
	}
	if math.Abs(got.Total-41.625) > 1e-12 {
		t.Errorf("total: got %v, wanted %v\n", got.Total, 41.625)
	}
	_, err = Aggregate(10, pairs, dxs[:2])
	if !errors.Is(err, ErrArrayLengthMismatch) {
		t.Errorf("got %v, wanted %v\n", err, ErrArrayLengthMismatch)
	}
}

func TestSumCorrection(t *testing.T) {
	got, err := SumCorrection([]float64{0, 8, -4}, []float64{0.1, 0.5, 0.25})
	if err != nil {
		t.Fatal(err)
	}
	want := 8*0.25 - 4*0.0625
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	if _, err := SumCorrection([]float64{1}, nil); !errors.Is(err, ErrArrayLengthMismatch) {
		t.Errorf("got %v, wanted %v\n", err, ErrArrayLengthMismatch)
	}
}

func TestHarmonicFrequencies(t *testing.T) {
	conv := HARTREE2J / (BOHR2M * BOHR2M * AMU2KG)
	wavenumber := func(k float64) float64 {
		return math.Sqrt(k*conv) / (2 * math.Pi * LIGHT * 100)
	}
	diag := []float64{
		1e-10, -2e-10, 3e-10, 1e-10, 0, 2e-10,
		0.3, -0.1, 0.2,
	}
	hess := mat.NewSymDense(9, nil)
	for i, d := range diag {
		hess.SetSym(i, i, d)
	}
	got, err := HarmonicFrequencies(hess, []float64{1, 1, 1}, false)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{-wavenumber(0.1), wavenumber(0.2), wavenumber(0.3)}
	if !compFloat(got, want, 1e-6) {
		t.Errorf("got %v, wanted %v\n", got, want)
	}
	// O-H stretch like force constant gives a few thousand cm-1
	if got[2] < 1000 || got[2] > 10000 {
		t.Errorf("implausible frequency %v\n", got[2])
	}
}

func TestHarmonicFrequenciesMassWeighting(t *testing.T) {
	hess := mat.NewSymDense(6, nil)
	for i := 0; i < 6; i++ {
		hess.SetSym(i, i, 1e-12)
	}
	// single stretch along z between two atoms
	k := 0.5
	hess.SetSym(2, 2, k)
	hess.SetSym(5, 5, k)
	hess.SetSym(2, 5, -k)
	masses := []float64{12.0, 15.9949146}
	got, err := HarmonicFrequencies(hess, masses, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d frequencies, wanted 1\n", len(got))
	}
	mu := masses[0] * masses[1] / (masses[0] + masses[1])
	conv := HARTREE2J / (BOHR2M * BOHR2M * AMU2KG)
	want := math.Sqrt(k/mu*conv) / (2 * math.Pi * LIGHT * 100)
	if math.Abs(got[0]-want) > 1e-6 {
		t.Errorf("got %v, wanted %v\n", got[0], want)
	}
	if _, err := HarmonicFrequencies(hess, masses[:1], true); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("got %v, wanted %v\n", err, ErrDimensionMismatch)
	}
}
