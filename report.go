package main

import (
	"bufio"
	"fmt"
	"io"
)

const LINEWIDTH = 40

func title(w io.Writer, t string) {
	fmt.Fprintf(w, "%-*s\n", LINEWIDTH, t)
}

// modeLabel formats the mode header, including its harmonic frequency
// if omegas has one
func modeLabel(i int, omegas []float64) string {
	if i < len(omegas) {
		return fmt.Sprintf("Mode %d A %8.2f cm-1", i, omegas[i])
	}
	return fmt.Sprintf("Mode %d", i)
}

// WriteReport writes the rotations in res, the per-mode corrections
// and the vibrationally-averaged rotations in corrs to w
func WriteReport(w io.Writer, res RotationResult, corrs map[int]Correction,
	omegas []float64) error {
	nw := bufio.NewWriter(w)
	wls := res.Wavelengths()

	title(nw, "Optical Rotation @ Reference Geometry")
	for _, wl := range wls {
		fmt.Fprintf(nw, "%-5.1f nm %14.8f\n", float64(wl), res.Eq[wl])
	}
	fmt.Fprint(nw, "\n\n")

	title(nw, "Optical rotation at displaced geometry")
	for i, m := range res.Modes {
		title(nw, modeLabel(i, omegas))
		for _, wl := range wls {
			fmt.Fprintf(nw, "%-5.1f nm (+)   %14.8f (-)   %14.8f\n",
				float64(wl), m.Plus[wl], m.Minus[wl])
		}
		fmt.Fprint(nw, "\n")
	}

	title(nw, "Harmonic Correction per mode")
	for i := range res.Modes {
		title(nw, modeLabel(i, omegas))
		for _, wl := range wls {
			c, ok := corrs[wl]
			if !ok || i >= len(c.C) {
				continue
			}
			fmt.Fprintf(nw, "%-5.1f nm      %5.2f\n", float64(wl), c.C[i])
		}
	}

	title(nw, "Vibrationally-Averaged Optical Rotation")
	fmt.Fprintf(nw, "%10s %10s %10s %10s\n", "λ", "α(0)", "Δ(vib)α", "<α>")
	for _, wl := range wls {
		c, ok := corrs[wl]
		if !ok {
			continue
		}
		fmt.Fprintf(nw, "%10.1f %10.2f %10.2f %10.2f\n",
			float64(wl), c.Eq, c.TotalCorrection, c.Total)
	}
	return nw.Flush()
}
