package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

type RawConf struct {
	Molecule string
	Root     string
	Modes    int
	Linear   bool
	Steps    string
	JSON     string
}

func (rc RawConf) ToConfig() (conf Config, err error) {
	if rc.Molecule == "" {
		return conf, errors.New("Molecule is required")
	}
	conf.Molecule = rc.Molecule
	conf.Root = rc.Root
	conf.Modes = rc.Modes
	conf.Linear = rc.Linear
	conf.Steps, err = toFloat(strings.Fields(rc.Steps))
	if err != nil {
		return conf, fmt.Errorf("parsing Steps: %w", err)
	}
	if len(conf.Steps) == 0 {
		return conf, errors.New("at least one step size is required")
	}
	conf.JSON = rc.JSON
	if conf.JSON == "" {
		conf.JSON = rc.Molecule + "_rotations.json"
	}
	return
}

type Config struct {
	Molecule string
	Root     string
	// Modes is the number of displaced modes. Zero means derive it
	// from the number of atoms in the hessian file
	Modes  int
	Linear bool
	Steps  []float64
	JSON   string
}

// StepSizes returns one displacement size per mode. A single step in
// the input applies to every mode
func (c Config) StepSizes(nmodes int) ([]float64, error) {
	switch len(c.Steps) {
	case nmodes:
		return c.Steps, nil
	case 1:
		ret := make([]float64, nmodes)
		for i := range ret {
			ret[i] = c.Steps[0]
		}
		return ret, nil
	}
	return nil, fmt.Errorf("%w: %d step sizes for %d modes",
		ErrArrayLengthMismatch, len(c.Steps), nmodes)
}

func LoadConfig(filename string) (Config, error) {
	cont, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, err
	}
	// Defaults
	rc := RawConf{
		Root:  ".",
		Steps: "0.1",
	}
	err = toml.Unmarshal(cont, &rc)
	if err != nil {
		return Config{}, err
	}
	return rc.ToConfig()
}
