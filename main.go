package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
)

// Flags
var (
	collect = flag.Bool("collect", false,
		"parse the rotations, write them to the JSON file and exit")
	load = flag.Bool("load", false,
		"read the rotations from the JSON file instead of the fchk files")
	hessian = flag.Bool("hessian", false,
		"print the reconstructed Cartesian Hessian")
	mode = flag.Int("mode", -1,
		"print the rotations at a single displaced geometry of this mode and exit")
	dir = flag.String("dir", "+",
		"direction of the -mode displacement: +, -, 1 or 2")
	cpuprofile = flag.String("cpu", "", "write a CPU profile")
)

// progress reports each file as Collect reads it
type progress struct {
	BlobLoader
}

func (p progress) Mode(i int, d Direction) (string, error) {
	fmt.Fprintf(os.Stderr, "collecting mode %d (%s)\n", i, d)
	return p.BlobLoader.Mode(i, d)
}

func printRotations(rots Rotations) {
	res := RotationResult{Eq: rots}
	for _, wl := range res.Wavelengths() {
		fmt.Printf("%-5.1f nm %14.8f\n", float64(wl), rots[wl])
	}
}

func loadRotations(filename string) (RotationResult, error) {
	f, err := os.Open(filename)
	if err != nil {
		return RotationResult{}, err
	}
	defer f.Close()
	return LoadRotations(f)
}

func dumpRotations(res RotationResult, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := res.WriteJSON(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func main() {
	flag.Parse()
	args := flag.Args()
	infile := "vibave.toml"
	if len(args) >= 1 {
		infile = args[0]
	}
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}
	conf, err := LoadConfig(infile)
	if err != nil {
		log.Fatalf("loading %s: %v\n", infile, err)
	}
	layout := Layout{Root: conf.Root, Molecule: conf.Molecule}
	if *mode >= 0 {
		d, err := ParseDirection(*dir)
		if err != nil {
			log.Fatalln(err)
		}
		rots, err := ModeRotations(layout, *mode, d)
		if err != nil {
			log.Fatalln(err)
		}
		printRotations(rots)
		return
	}

	hf, err := layout.Hessian()
	if err != nil {
		log.Fatalln(err)
	}
	hess, err := hf.Hessian()
	if err != nil {
		log.Fatalf("reading hessian: %v\n", err)
	}
	masses, err := hf.Masses()
	if err != nil {
		log.Fatalf("reading masses: %v\n", err)
	}
	if geom, err := hf.Geometry(); err != nil {
		log.Fatalf("reading geometry: %v\n", err)
	} else if r, _ := geom.Dims(); r != len(masses) {
		log.Fatalf("%d atoms in geometry, %d masses\n", r, len(masses))
	}
	if *hessian {
		if err := WriteMat(os.Stdout, hess); err != nil {
			log.Fatal(err)
		}
	}
	omegas, err := HarmonicFrequencies(hess, masses, conf.Linear)
	if err != nil {
		log.Fatalf("harmonic analysis: %v\n", err)
	}
	nmodes := conf.Modes
	if nmodes == 0 {
		nmodes = ModeCount(len(masses), conf.Linear)
	}

	var res RotationResult
	if *load {
		res, err = loadRotations(conf.JSON)
		if err != nil {
			log.Fatalf("loading rotations: %v\n", err)
		}
		if len(res.Modes) != nmodes {
			log.Fatalf("%s has %d modes, wanted %d\n",
				conf.JSON, len(res.Modes), nmodes)
		}
	} else {
		fmt.Fprintf(os.Stderr, "collecting %d modes of %s\n",
			nmodes, conf.Molecule)
		res, err = Collect(progress{layout}, nmodes)
		if err != nil {
			log.Fatalf("collecting rotations: %v\n", err)
		}
		if err := dumpRotations(res, conf.JSON); err != nil {
			log.Fatalf("writing %s: %v\n", conf.JSON, err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", conf.JSON)
	}
	if *collect {
		return
	}

	dxs, err := conf.StepSizes(nmodes)
	if err != nil {
		log.Fatalln(err)
	}
	corrs, err := res.Correct(dxs)
	if err != nil {
		log.Fatalf("computing corrections: %v\n", err)
	}
	if err := WriteReport(os.Stdout, res, corrs, omegas); err != nil {
		log.Fatalln(err)
	}
}
