package smiles

import (
	"strconv"
	"strings"

	"github.com/cx-luo/go-smiles/elements"
)

// Writer is a Visitor that accumulates canonical SMILES text, per §4.H.
// It is single-use: construct one with NewWriter, pass it to Walk once
// (directly or via Writer.Write), then read out the result.
type Writer struct {
	buf strings.Builder

	// lastWasAromaticAtom tracks whether the most recently emitted atom was
	// aromatic-kind, to decide the "-" disambiguation rule for an explicit
	// single bond between two aromatic-kind atoms (§9, resolved: always
	// emit "-" there).
	lastWasAromaticAtom bool
}

// WriterOption configures a Writer at construction time. None are defined
// yet; the type exists so the constructor signature can grow without
// breaking callers, matching the BuilderOption/ReadOption pattern.
type WriterOption func(*Writer)

// NewWriter creates an empty Writer.
func NewWriter(opts ...WriterOption) *Writer {
	w := &Writer{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write walks adjacency and returns the SMILES text it produces. adjacency
// must satisfy the bond-symmetry invariant; Walk reports IncompleteAdjacencyError
// otherwise.
func (w *Writer) Write(adjacency *Adjacency) (string, error) {
	if err := Walk(adjacency, w); err != nil {
		return "", err
	}
	return w.buf.String(), nil
}

// Write is the package-level convenience form of Writer.Write.
func Write(adjacency *Adjacency, opts ...WriterOption) (string, error) {
	return NewWriter(opts...).Write(adjacency)
}

func (w *Writer) Root(_ int, atom Atom) {
	w.writeAtom(atom)
}

func (w *Writer) Extend(_, _ int, atom Atom, bond Bond) {
	w.writeBondSymbol(bond.Kind)
	w.writeAtom(atom)
}

func (w *Writer) BranchOpen()  { w.buf.WriteByte('(') }
func (w *Writer) BranchClose() { w.buf.WriteByte(')') }

func (w *Writer) RingOpen(_, digit int, bond BondKind) {
	w.writeBondSymbol(bond)
	w.writeRingDigit(digit)
}

func (w *Writer) RingClose(_, digit int, bond BondKind) {
	w.writeBondSymbol(bond)
	w.writeRingDigit(digit)
}

func (w *Writer) Disconnect() { w.buf.WriteByte('.') }

func (w *Writer) writeRingDigit(digit int) {
	if digit >= 10 {
		w.buf.WriteByte('%')
		w.buf.WriteString(strconv.Itoa(digit))
		return
	}
	w.buf.WriteByte('0' + byte(digit))
}

// writeBondSymbol emits a bond symbol per §4.H: Elided is always empty. An
// explicit single bond is written as "-" when the atom written just before
// it is aromatic-kind, which covers a single bond between two aromatic-kind
// atoms (§9); an aromatic bond is written as ":" when that atom is not
// aromatic-kind. Only the preceding atom is checked, not the bond's other
// end.
func (w *Writer) writeBondSymbol(kind BondKind) {
	switch kind {
	case BondSingle:
		if w.lastWasAromaticAtom {
			w.buf.WriteByte('-')
		}
	case BondDouble:
		w.buf.WriteByte('=')
	case BondTriple:
		w.buf.WriteByte('#')
	case BondQuadruple:
		w.buf.WriteByte('$')
	case BondAromatic:
		if !w.lastWasAromaticAtom {
			w.buf.WriteByte(':')
		}
	case BondUp:
		w.buf.WriteByte('/')
	case BondDown:
		w.buf.WriteByte('\\')
	}
}

// writeAtom emits one atom's text, bare or bracketed, and records whether
// it was aromatic-kind for the next bond-symbol decision.
func (w *Writer) writeAtom(atom Atom) {
	defer func() { w.lastWasAromaticAtom = atom.Aromatic }()

	if atom.Kind == KindStar {
		w.buf.WriteByte('*')
		return
	}
	if !needsBrackets(atom) {
		w.buf.WriteString(bareSymbol(atom))
		return
	}

	w.buf.WriteByte('[')
	if atom.Isotope > 0 {
		w.buf.WriteString(strconv.Itoa(atom.Isotope))
	}
	w.buf.WriteString(bracketSymbol(atom))
	if atom.Parity.IsSet() {
		w.buf.WriteString(atom.Parity.String())
	}
	if atom.HCount > 0 {
		w.buf.WriteByte('H')
		if atom.HCount > 1 {
			w.buf.WriteString(strconv.Itoa(atom.HCount))
		}
	}
	w.writeCharge(atom.Charge)
	if atom.MapClass > 0 {
		w.buf.WriteByte(':')
		w.buf.WriteString(strconv.Itoa(atom.MapClass))
	}
	w.buf.WriteByte(']')
}

func (w *Writer) writeCharge(charge int) {
	if charge == 0 {
		return
	}
	sign := byte('+')
	n := charge
	if charge < 0 {
		sign = '-'
		n = -charge
	}
	if n <= 2 {
		for i := 0; i < n; i++ {
			w.buf.WriteByte(sign)
		}
		return
	}
	w.buf.WriteByte(sign)
	w.buf.WriteString(strconv.Itoa(n))
}

// needsBrackets reports whether atom must be written in bracket form:
// anything outside the bare organic subset, or an organic-subset atom
// carrying isotope, parity, charge, or a map class (§4.H). An organic-subset
// atom's HCount is the count Build derived from valence, so it does not
// force brackets. A charged aromatic group-16 atom is always bracketed too
// (§9, resolved).
func needsBrackets(atom Atom) bool {
	if atom.Kind == KindBracket {
		return true
	}
	if atom.Isotope != 0 || atom.Parity.IsSet() || atom.MapClass != 0 {
		return true
	}
	if atom.Charge != 0 {
		return true
	}
	return false
}

func bareSymbol(atom Atom) string {
	if atom.Aromatic {
		return strings.ToLower(atom.Symbol)
	}
	return atom.Symbol
}

// bracketSymbol renders a bracket atom's element symbol, normalizing any
// provisional name and lowercasing it when the atom is aromatic.
func bracketSymbol(atom Atom) string {
	symbol := atom.Symbol
	if atom.Aromatic {
		canon := strings.ToUpper(symbol[:1]) + symbol[1:]
		return strings.ToLower(elements.Normalize(canon))
	}
	return elements.Normalize(symbol)
}
