// Package elements is a thin façade over periodic-table data: symbol ↔
// atomic number lookups, provisional-symbol normalization, and the standard
// valence sets the smiles package needs for implicit-hydrogen accounting.
//
// It deliberately knows nothing about molecular graphs, bonds, or SMILES
// syntax; callers hand it a symbol or a number and get back facts.
package elements

import "fmt"

// Info holds the periodic facts this package tracks for one element.
type Info struct {
	Symbol       string
	Number       int
	Group        int
	Period       int
	Aromatic     bool // can this element appear in SMILES lowercase form
	StdValences  []int
}

// table is indexed by atomic number; index 0 is unused.
var table = []Info{
	{},
	{"H", 1, 1, 1, false, []int{1}},
	{"He", 2, 8, 1, false, nil},
	{"Li", 3, 1, 2, false, []int{1}},
	{"Be", 4, 2, 2, false, []int{2}},
	{"B", 5, 3, 2, true, []int{3}},
	{"C", 6, 4, 2, true, []int{4}},
	{"N", 7, 5, 2, true, []int{3, 5}},
	{"O", 8, 6, 2, true, []int{2}},
	{"F", 9, 7, 2, false, []int{1}},
	{"Ne", 10, 8, 2, false, nil},
	{"Na", 11, 1, 3, false, []int{1}},
	{"Mg", 12, 2, 3, false, []int{2}},
	{"Al", 13, 3, 3, false, []int{3}},
	{"Si", 14, 4, 3, false, []int{4}},
	{"P", 15, 5, 3, true, []int{3, 5}},
	{"S", 16, 6, 3, true, []int{2, 4, 6}},
	{"Cl", 17, 7, 3, false, []int{1}},
	{"Ar", 18, 8, 3, false, nil},
	{"K", 19, 1, 4, false, []int{1}},
	{"Ca", 20, 2, 4, false, []int{2}},
	{"Sc", 21, 3, 4, false, nil},
	{"Ti", 22, 4, 4, false, nil},
	{"V", 23, 5, 4, false, nil},
	{"Cr", 24, 6, 4, false, nil},
	{"Mn", 25, 7, 4, false, nil},
	{"Fe", 26, 8, 4, false, nil},
	{"Co", 27, 8, 4, false, nil},
	{"Ni", 28, 8, 4, false, nil},
	{"Cu", 29, 1, 4, false, nil},
	{"Zn", 30, 2, 4, false, nil},
	{"Ga", 31, 3, 4, true, nil},
	{"Ge", 32, 4, 4, false, []int{4}},
	{"As", 33, 5, 4, true, []int{3, 5}},
	{"Se", 34, 6, 4, true, []int{2, 4, 6}},
	{"Br", 35, 7, 4, true, []int{1}},
	{"Kr", 36, 8, 4, false, nil},
	{"Rb", 37, 1, 5, false, []int{1}},
	{"Sr", 38, 2, 5, false, []int{2}},
	{"Y", 39, 3, 5, false, nil},
	{"Zr", 40, 4, 5, false, nil},
	{"Nb", 41, 5, 5, false, nil},
	{"Mo", 42, 6, 5, false, nil},
	{"Tc", 43, 7, 5, false, nil},
	{"Ru", 44, 8, 5, false, nil},
	{"Rh", 45, 8, 5, false, nil},
	{"Pd", 46, 8, 5, false, nil},
	{"Ag", 47, 1, 5, false, nil},
	{"Cd", 48, 2, 5, false, nil},
	{"In", 49, 3, 5, false, nil},
	{"Sn", 50, 4, 5, false, []int{2, 4}},
	{"Sb", 51, 5, 5, false, []int{3, 5}},
	{"Te", 52, 6, 5, false, []int{2, 4, 6}},
	{"I", 53, 7, 5, true, []int{1, 3, 5, 7}},
	{"Xe", 54, 8, 5, false, nil},
	{"Cs", 55, 1, 6, false, []int{1}},
	{"Ba", 56, 2, 6, false, []int{2}},
	{"La", 57, 3, 6, false, nil},
	{"Ce", 58, 3, 6, false, nil},
	{"Pr", 59, 3, 6, false, nil},
	{"Nd", 60, 3, 6, false, nil},
	{"Pm", 61, 3, 6, false, nil},
	{"Sm", 62, 3, 6, false, nil},
	{"Eu", 63, 3, 6, false, nil},
	{"Gd", 64, 3, 6, false, nil},
	{"Tb", 65, 3, 6, false, nil},
	{"Dy", 66, 3, 6, false, nil},
	{"Ho", 67, 3, 6, false, nil},
	{"Er", 68, 3, 6, false, nil},
	{"Tm", 69, 3, 6, false, nil},
	{"Yb", 70, 3, 6, false, nil},
	{"Lu", 71, 3, 6, false, nil},
	{"Hf", 72, 4, 6, false, nil},
	{"Ta", 73, 5, 6, false, nil},
	{"W", 74, 6, 6, false, nil},
	{"Re", 75, 7, 6, false, nil},
	{"Os", 76, 8, 6, false, nil},
	{"Ir", 77, 8, 6, false, nil},
	{"Pt", 78, 8, 6, false, nil},
	{"Au", 79, 1, 6, false, nil},
	{"Hg", 80, 2, 6, false, nil},
	{"Tl", 81, 3, 6, false, nil},
	{"Pb", 82, 4, 6, false, []int{2, 4}},
	{"Bi", 83, 5, 6, false, []int{3, 5}},
	{"Po", 84, 6, 6, false, []int{2, 4, 6}},
	{"At", 85, 7, 6, true, []int{1}},
	{"Rn", 86, 8, 6, false, nil},
	{"Fr", 87, 1, 7, false, []int{1}},
	{"Ra", 88, 2, 7, false, []int{2}},
	{"Ac", 89, 3, 7, false, nil},
	{"Th", 90, 3, 7, false, nil},
	{"Pa", 91, 3, 7, false, nil},
	{"U", 92, 3, 7, false, nil},
	{"Np", 93, 3, 7, false, nil},
	{"Pu", 94, 3, 7, false, nil},
	{"Am", 95, 3, 7, false, nil},
	{"Cm", 96, 3, 7, false, nil},
	{"Bk", 97, 3, 7, false, nil},
	{"Cf", 98, 3, 7, false, nil},
	{"Es", 99, 3, 7, false, nil},
	{"Fm", 100, 3, 7, false, nil},
	{"Md", 101, 3, 7, false, nil},
	{"No", 102, 3, 7, false, nil},
	{"Lr", 103, 3, 7, false, nil},
	{"Rf", 104, 4, 7, false, nil},
	{"Db", 105, 5, 7, false, nil},
	{"Sg", 106, 6, 7, false, nil},
	{"Bh", 107, 7, 7, false, nil},
	{"Hs", 108, 8, 7, false, nil},
	{"Mt", 109, 8, 7, false, nil},
	{"Ds", 110, 8, 7, false, nil},
	{"Rg", 111, 1, 7, false, nil},
	{"Cn", 112, 2, 7, false, nil},
	{"Nh", 113, 3, 7, false, nil},
	{"Fl", 114, 4, 7, false, nil},
	{"Mc", 115, 5, 7, false, nil},
	{"Lv", 116, 6, 7, false, nil},
	{"Ts", 117, 7, 7, true, []int{1}},
	{"Og", 118, 8, 7, false, nil},
}

// provisional maps the provisional IUPAC systematic names accepted on input
// (elements 110–118, as used by RDKit/Indigo/OpenBabel) to their modern
// symbols. Uun and Uuu are the older names element 110/111 carried before
// Ds/Rg were assigned; toolkits that still emit them are accepted here too.
var provisional = map[string]string{
	"Uun": "Ds",
	"Uuu": "Rg",
	"Uub": "Cn",
	"Uut": "Nh",
	"Uuq": "Fl",
	"Uup": "Mc",
	"Uuh": "Lv",
	"Uus": "Ts",
	"Uuo": "Og",
}

var bySymbol = func() map[string]int {
	m := make(map[string]int, len(table))
	for i := 1; i < len(table); i++ {
		m[table[i].Symbol] = i
	}
	return m
}()

// Normalize resolves a provisional element name (e.g. "Uuo") to its modern
// symbol. Symbols that are not provisional names are returned unchanged.
func Normalize(symbol string) string {
	if modern, ok := provisional[symbol]; ok {
		return modern
	}
	return symbol
}

// Lookup returns the atomic number for a symbol, normalizing provisional
// names first. ok is false for unrecognized symbols.
func Lookup(symbol string) (number int, ok bool) {
	n, ok := bySymbol[Normalize(symbol)]
	return n, ok
}

// Symbol returns the canonical (modern) symbol for an atomic number, or a
// placeholder of the form "Elem%d" if the number is out of range.
func Symbol(number int) string {
	if number > 0 && number < len(table) {
		return table[number].Symbol
	}
	return fmt.Sprintf("Elem%d", number)
}

// CanBeAromatic reports whether the element may appear in SMILES lowercase
// (aromatic) form, as marked in the table: b, c, n, o, p, s, se, as, plus
// ga, br, i, at, and ts. The smiles package's grammar does not consult it.
func CanBeAromatic(number int) bool {
	if number > 0 && number < len(table) {
		return table[number].Aromatic
	}
	return false
}

// StandardValences returns the candidate standard valences for an element,
// in ascending order, or nil if the element has no standard valence model
// (implicit-hydrogen accounting then always yields zero for it).
func StandardValences(number int) []int {
	if number > 0 && number < len(table) {
		return table[number].StdValences
	}
	return nil
}

// IsHalogen reports whether the element is one of the classic halogens.
func IsHalogen(number int) bool {
	switch number {
	case 9, 17, 35, 53, 85, 117: // F, Cl, Br, I, At, Ts
		return true
	}
	return false
}
