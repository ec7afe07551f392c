package main

// CODATA 2014 values, matching the psi4 physconst table
const (
	PLANCK    = 6.626070040e-34   // J s
	LIGHT     = 2.99792458e8      // m/s
	AVOGADRO  = 6.022140857e23    // 1/mol
	EMASS     = 9.10938356e-31    // kg
	HARTREE2J = 4.359744650e-18   // J/Eh
	BOHR2M    = 0.52917721067e-10 // m/bohr
	AMU2KG    = 1.660539040e-27   // kg/amu
)

// PhysConst maps the short names used in the unit conversions to
// their values
var PhysConst = map[string]float64{
	"h":         PLANCK,
	"c":         LIGHT,
	"na":        AVOGADRO,
	"me":        EMASS,
	"hartree2J": HARTREE2J,
	"bohr2m":    BOHR2M,
	"amu2kg":    AMU2KG,
}
