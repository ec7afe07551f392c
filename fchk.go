package main

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Errors
var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrMalformedRecord     = errors.New("malformed record")
	ErrDimensionMismatch   = errors.New("dimension mismatch")
	ErrArrayLengthMismatch = errors.New("array length mismatch")
)

// PERLINE is the number of values Gaussian writes on each line of an
// array record. It only bounds how many continuation lines are read
const PERLINE = 5

const number = `[-+]?(?:\d*\.\d+|\d+\.?)(?:[EeDd][-+]?\d+)?`

type Kind int

const (
	Integer Kind = iota
	Real
)

// Scalar is a single named value from an fchk file. Int is only set
// for Integer records, but Real is always set
type Scalar struct {
	Kind Kind
	Int  int
	Real float64
}

func (s Scalar) String() string {
	if s.Kind == Integer {
		return strconv.Itoa(s.Int)
	}
	return strconv.FormatFloat(s.Real, 'g', -1, 64)
}

func scalarMatcher(name string) *regexp.Regexp {
	return regexp.MustCompile(
		`(?i)^` + regexp.QuoteMeta(name) +
			`\s+([IR])\s+(` + number + `)\s*$`,
	)
}

func arrayMatcher(name string) *regexp.Regexp {
	return regexp.MustCompile(
		`(?i)^` + regexp.QuoteMeta(name) + `\s+R\s+N=\s*(\d+)\s*$`,
	)
}

// lastMatch returns the submatches and line index of the last line in
// lines matching re, or -1 if none match
func lastMatch(re *regexp.Regexp, lines []string) (match []string, at int) {
	at = -1
	for i, line := range lines {
		if m := re.FindStringSubmatch(line); m != nil {
			match = m
			at = i
		}
	}
	return
}

// parseReal parses a Fortran-style float, allowing D exponents
func parseReal(s string) (float64, error) {
	return strconv.ParseFloat(
		strings.NewReplacer("D", "E", "d", "e").Replace(s), 64,
	)
}

// FindScalar returns the scalar record called name in text
func FindScalar(text, name string) (ret Scalar, err error) {
	match, at := lastMatch(scalarMatcher(name), strings.Split(text, "\n"))
	if at < 0 {
		return ret, fmt.Errorf("%w: %q", ErrRecordNotFound, name)
	}
	val := match[2]
	if strings.EqualFold(match[1], "I") {
		ret.Kind = Integer
		ret.Int, err = strconv.Atoi(val)
		if err != nil {
			return ret, fmt.Errorf("%w: %q has integer type but value %q",
				ErrMalformedRecord, name, val)
		}
		ret.Real = float64(ret.Int)
		return
	}
	ret.Kind = Real
	ret.Real, err = parseReal(val)
	if err != nil {
		return ret, fmt.Errorf("%w: %q: %v", ErrMalformedRecord, name, err)
	}
	return
}

// FindArray returns the real array record called name in text. The
// element count in the header determines how many of the following
// lines are consumed
func FindArray(text, name string) ([]float64, error) {
	lines := strings.Split(text, "\n")
	match, at := lastMatch(arrayMatcher(name), lines)
	if at < 0 {
		return nil, fmt.Errorf("%w: %q", ErrRecordNotFound, name)
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: bad count %q",
			ErrMalformedRecord, name, match[1])
	}
	start := at + 1
	// n is checked against the remaining lines before any arithmetic
	// on it
	if n > PERLINE*(len(lines)-start) {
		return nil, fmt.Errorf(
			"%w: %q: declared %d values, only %d lines follow line %d",
			ErrMalformedRecord, name, n, len(lines)-start, at+1)
	}
	nline := (n + PERLINE - 1) / PERLINE
	ret := make([]float64, 0, n)
	for _, line := range lines[start : start+nline] {
		for _, field := range strings.Fields(line) {
			v, err := parseReal(field)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v",
					ErrMalformedRecord, name, err)
			}
			ret = append(ret, v)
		}
	}
	if len(ret) != n {
		return nil, fmt.Errorf("%w: %q: declared %d values, found %d",
			ErrMalformedRecord, name, n, len(ret))
	}
	return ret, nil
}

// Fchk holds the contents of a formatted checkpoint file
type Fchk struct {
	Text string
}

// LoadFchk reads filename into an Fchk
func LoadFchk(filename string) (*Fchk, error) {
	byts, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return &Fchk{Text: string(byts)}, nil
}

func (f *Fchk) Array(name string) ([]float64, error) {
	return FindArray(f.Text, name)
}

func (f *Fchk) Scalar(name string) (Scalar, error) {
	return FindScalar(f.Text, name)
}
