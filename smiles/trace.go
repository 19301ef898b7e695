package smiles

// Span is a half-open byte range [Start, End) into the original input
// string a feature was produced from.
type Span struct {
	Start, End int
}

// Contains reports whether pos falls within the span.
func (s Span) Contains(pos int) bool {
	return pos >= s.Start && pos < s.End
}

// Trace is the optional side channel recording, for every atom, bond, and
// ring-closure event a Builder produced, the cursor span in the original
// input it came from. A nil *Trace is the zero-overhead "don't record"
// path: every record method on a nil Trace is a no-op.
type Trace struct {
	// SessionID correlates a Trace with the Session (if any) that produced
	// it; purely for diagnostics, never consulted by the core.
	SessionID string

	atoms      map[int]Span
	bonds      map[int]map[int]Span
	ringEvents map[int][]Span
}

// NewTrace creates an empty Trace ready to be passed to Read/ReadTraced.
func NewTrace() *Trace {
	return &Trace{
		atoms:      make(map[int]Span),
		bonds:      make(map[int]map[int]Span),
		ringEvents: make(map[int][]Span),
	}
}

func (t *Trace) recordAtom(idx int, span Span) {
	if t == nil {
		return
	}
	t.atoms[idx] = span
}

func (t *Trace) recordBond(atomIdx, bondIdx int, span Span) {
	if t == nil {
		return
	}
	perAtom, ok := t.bonds[atomIdx]
	if !ok {
		perAtom = make(map[int]Span)
		t.bonds[atomIdx] = perAtom
	}
	perAtom[bondIdx] = span
}

func (t *Trace) recordRingEvent(digit int, span Span) {
	if t == nil {
		return
	}
	t.ringEvents[digit] = append(t.ringEvents[digit], span)
}

// Atom returns the span the atom at idx was produced from.
func (t *Trace) Atom(idx int) (Span, bool) {
	if t == nil {
		return Span{}, false
	}
	span, ok := t.atoms[idx]
	return span, ok
}

// Bond returns the span for the bondIdx'th outgoing bond recorded on the
// atom at atomIdx.
func (t *Trace) Bond(atomIdx, bondIdx int) (Span, bool) {
	if t == nil {
		return Span{}, false
	}
	perAtom, ok := t.bonds[atomIdx]
	if !ok {
		return Span{}, false
	}
	span, ok := perAtom[bondIdx]
	return span, ok
}

// RingEvents returns every span recorded against a ring-closure digit, in
// the order they occurred (typically [open, close]).
func (t *Trace) RingEvents(digit int) []Span {
	if t == nil {
		return nil
	}
	return t.ringEvents[digit]
}
