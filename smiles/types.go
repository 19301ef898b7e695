// Package smiles reads and writes SMILES (Simplified Molecular Input Line
// Entry System) strings against a shared adjacency-list data model. It
// follows the OpenSMILES grammar plus the broader input superset accepted
// by common chemistry toolkits (aromatic sulfur/phosphorus/etc.,
// provisional element symbols, stray single-quote characters).
//
// The package does not perceive aromaticity, canonicalize structures, or
// validate chemistry beyond valence bookkeeping. It turns text into a
// graph and a graph back into text.
package smiles

import "fmt"

// AtomKind is the closed set of ways an atom can appear in SMILES text.
type AtomKind uint8

const (
	// KindAliphatic is an uppercase organic-subset shortcut atom (C, N, O, ...).
	KindAliphatic AtomKind = iota
	// KindAromatic is a lowercase organic-subset shortcut atom (c, n, o, ...).
	KindAromatic
	// KindStar is the wildcard atom '*'.
	KindStar
	// KindBracket is a bracket atom, [...] , carrying the full feature set.
	KindBracket
)

func (k AtomKind) String() string {
	switch k {
	case KindAliphatic:
		return "aliphatic"
	case KindAromatic:
		return "aromatic"
	case KindStar:
		return "star"
	case KindBracket:
		return "bracket"
	default:
		return "unknown"
	}
}

// ParityClass names the families of stereo parity descriptors a bracket
// atom's `@...` token can select.
type ParityClass uint8

const (
	ParityNone ParityClass = iota
	ParityTH               // tetrahedral: @TH1, @TH2 (bare @/@@ normalize to these)
	ParityAL               // allene: @AL1, @AL2
	ParitySP               // square planar: @SP1..@SP3
	ParityTB               // trigonal bipyramidal: @TB1..@TB20
	ParityOH               // octahedral: @OH1..@OH30
)

// Parity is a tagged stereo descriptor: a class plus its 1-based index
// within that class. ParityNone carries Index 0.
type Parity struct {
	Class ParityClass
	Index int
}

// IsSet reports whether any stereo descriptor was specified.
func (p Parity) IsSet() bool { return p.Class != ParityNone }

func (p Parity) String() string {
	switch p.Class {
	case ParityNone:
		return ""
	case ParityTH:
		return fmt.Sprintf("@TH%d", p.Index)
	case ParityAL:
		return fmt.Sprintf("@AL%d", p.Index)
	case ParitySP:
		return fmt.Sprintf("@SP%d", p.Index)
	case ParityTB:
		return fmt.Sprintf("@TB%d", p.Index)
	case ParityOH:
		return fmt.Sprintf("@OH%d", p.Index)
	default:
		return ""
	}
}

// BondKind is the closed set of bond symbols (and their absence) SMILES
// text can carry.
type BondKind uint8

const (
	BondElided BondKind = iota
	BondSingle
	BondDouble
	BondTriple
	BondQuadruple
	BondAromatic
	BondUp
	BondDown
)

func (k BondKind) String() string {
	switch k {
	case BondElided:
		return "elided"
	case BondSingle:
		return "single"
	case BondDouble:
		return "double"
	case BondTriple:
		return "triple"
	case BondQuadruple:
		return "quadruple"
	case BondAromatic:
		return "aromatic"
	case BondUp:
		return "up"
	case BondDown:
		return "down"
	default:
		return "unknown"
	}
}

// Complement returns the bond kind that must appear on a bond's reciprocal
// twin: Up and Down flip into each other (cis/trans is directional per
// traversal side), every other kind is its own complement.
func (k BondKind) Complement() BondKind {
	switch k {
	case BondUp:
		return BondDown
	case BondDown:
		return BondUp
	default:
		return k
	}
}

// Order returns the bond's integer order. Aromatic returns 1 here; the
// Builder's valence accounting (bondOrderSum) does not call Order for
// aromatic bonds and counts each as 1.5 instead. Directional and elided
// bonds count as single.
func (k BondKind) Order() int {
	switch k {
	case BondDouble:
		return 2
	case BondTriple:
		return 3
	case BondQuadruple:
		return 4
	default:
		return 1
	}
}

// Bond is one outgoing edge from an atom to a neighbor by index.
type Bond struct {
	Kind   BondKind
	Target int
}

// NoHCount marks an atom whose hydrogen count was never set explicitly, so
// Builder.Build computes it from valence.
const NoHCount = -1

// Atom is one vertex of an Adjacency list.
type Atom struct {
	Kind AtomKind

	// Symbol is the canonical, modern element symbol ("C", "Cl", "se", ...).
	// For KindAromatic it is lowercase; KindStar carries "*".
	Symbol string

	// Aromatic mirrors Kind == KindAromatic for aliphatic/aromatic atoms,
	// and is set independently for KindBracket atoms carrying the
	// aromaticity flag (e.g. [cH]).
	Aromatic bool

	Isotope  int // 0 = natural abundance / unset
	Parity   Parity
	HCount   int // explicit count, or NoHCount if unset; Build replaces NoHCount with the valence-derived count
	Charge   int
	MapClass int // 0 = unset

	// Bonds is the ordered sequence of outgoing bonds, in textual order of
	// appearance. This order is load-bearing for stereo parity (§9).
	Bonds []Bond
}

// Adjacency is a finalized, immutable (from the core's perspective)
// molecular graph: a sequence of Atom indexed 0..N-1, with every bond's
// reciprocal twin present per the bond-symmetry invariant.
type Adjacency struct {
	Atoms []Atom
}

// Len returns the number of atoms.
func (a *Adjacency) Len() int {
	if a == nil {
		return 0
	}
	return len(a.Atoms)
}
