package cleaner

// The px/mm ratio is fixed at 96 DPI. Output files depend on it, so it is
// not configurable.
const (
	PXPerInch = 96.0
	MMPerInch = 25.4
)

// MMToPX converts millimeters to CSS px.
func MMToPX(mm float64) float64 {
	return (mm / MMPerInch) * PXPerInch
}

// PXToMM converts CSS px to millimeters.
func PXToMM(px float64) float64 {
	return (px / PXPerInch) * MMPerInch
}

/*
	Units as defined at https://www.w3.org/TR/css3-values/#absolute-lengths

	unit	name	equivalence
	cm	centimeters	1cm = 96px/2.54
	mm	millimeters	1mm = 1/10th of 1 cm
	Q	quarter-millimeters	1Q = 1/40th of 1 cm
	in	inches	1 in = 2.54cm = 96px
	pc	picas	1 pc = 1/6th of 1 in
	pt	points	1 pt = 1/72th of 1 in
	px	pixels	1 px = 1/96th of 1 in
*/
var unitFactors = map[string]float64{
	"cm": 10,
	"mm": 1,
	"Q":  0.25,
	"in": 25.4,
	"pc": 25.4 / 6,
	"pt": 25.4 / 72,
	"px": 25.4 / 96,
}
