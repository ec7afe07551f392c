package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"gonum.org/v1/gonum/mat"
)

// toFloat converts a list of strings to a float64 using
// strconv.ParseFloat
func toFloat(strs []string) ([]float64, error) {
	ret := make([]float64, len(strs))
	var err error
	for i, s := range strs {
		ret[i], err = strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}

func WriteMat(w io.Writer, m mat.Matrix) error {
	nw := bufio.NewWriter(w)
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		fmt.Fprintf(nw, "%5d", i)
		for j := 0; j < c; j++ {
			fmt.Fprintf(nw, "%12.8f", m.At(i, j))
		}
		fmt.Fprint(nw, "\n")
	}
	fmt.Fprint(nw, "\n")
	return nw.Flush()
}
