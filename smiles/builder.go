package smiles

import (
	"math"

	"github.com/willf/bitset"
	"go.uber.org/zap"

	"github.com/cx-luo/go-smiles/elements"
)

// ringDigitUniverse bounds the ring-closure digit space (single digit or
// %NN), per §4.D.
const ringDigitUniverse = 100

// ringSlot records what is waiting to be reconciled when a ring digit's
// second occurrence arrives. slot is the index of the placeholder Bond
// already appended to the opener atom, so that once the partner is known
// the ring bond can be filled in at the position it textually occupies
// (right after the opener), rather than appended later out of order.
// This keeps Atom.Bonds in textual order for stereo parity (§9).
type ringSlot struct {
	atom int
	bond BondKind
	pos  int
	slot int
}

// Builder consumes parser events and materializes an Adjacency list. It is
// single-writer, owns all memory until Build transfers it to the caller,
// and is not safe to share across goroutines (§5).
type Builder struct {
	atoms []Atom
	stack []int // open-branch DFS path; top = most recently extended atom

	ringOpen *bitset.BitSet   // which digits 0..99 are currently open
	ringInfo map[int]ringSlot // digit -> opener details, while open

	trace   *Trace
	logger  *zap.Logger
	session Session
}

// BuilderOption configures a Builder at construction time.
type BuilderOption func(*Builder)

// WithTrace attaches a side channel that records a cursor span for every
// atom, bond, and ring event the Builder produces. Passing nil disables
// tracing (the default).
func WithTrace(t *Trace) BuilderOption {
	return func(b *Builder) { b.trace = t }
}

// WithLogger attaches a structured logger for debug-level tracing of
// builder events. The default is a no-op logger.
func WithLogger(l *zap.Logger) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithSession tags this builder's log lines and trace with a correlation
// identifier.
func WithSession(s Session) BuilderOption {
	return func(b *Builder) { b.session = s }
}

// NewBuilder creates an empty Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		ringOpen: bitset.New(ringDigitUniverse),
		ringInfo: make(map[int]ringSlot),
		logger:   defaultLogger,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = withSessionField(b.logger, b.session)
	if b.trace != nil && !b.session.IsZero() {
		b.trace.SessionID = b.session.String()
	}
	return b
}

// AddRoot starts a new connected component at atom, clearing any open
// branch path (called for the very first atom, and after every '.'
// disconnect).
func (b *Builder) AddRoot(atom Atom, span Span) int {
	idx := len(b.atoms)
	b.atoms = append(b.atoms, atom)
	b.stack = []int{idx}
	b.trace.recordAtom(idx, span)
	b.logger.Debug("root", zap.Int("atom", idx))
	return idx
}

// Disconnect ends the current chain; the next atom production must call
// AddRoot rather than Extend.
func (b *Builder) Disconnect() {
	b.stack = nil
}

// HasCurrent reports whether there is a "current" atom (top of the open
// branch stack) that Extend/BranchStart/Ring can act on.
func (b *Builder) HasCurrent() bool {
	return len(b.stack) > 0
}

// Extend appends atom, bonds it to the current atom (top of stack) with
// the given bond kind, and makes the new atom current.
func (b *Builder) Extend(bond BondKind, atom Atom, span Span) int {
	from := b.stack[len(b.stack)-1]
	idx := len(b.atoms)
	b.atoms = append(b.atoms, atom)
	b.installBond(from, idx, bond, span)
	b.stack[len(b.stack)-1] = idx
	b.trace.recordAtom(idx, span)
	b.logger.Debug("extend", zap.Int("from", from), zap.Int("to", idx), zap.String("bond", bond.String()))
	return idx
}

// BranchStart opens a new branch: the opener atom becomes shared between
// the outer chain and the branch, so nested branches all see the same
// current atom until BranchEnd pops back.
func (b *Builder) BranchStart() {
	top := b.stack[len(b.stack)-1]
	b.stack = append(b.stack, top)
}

// BranchEnd closes the innermost open branch, restoring the previous
// current atom. It reports UnclosedBranchError if called with no open
// branch; defensive, since the grammar tracks paren depth itself and
// should never call this in that state.
func (b *Builder) BranchEnd() error {
	if len(b.stack) <= 1 {
		return &UnclosedBranchError{}
	}
	b.stack = b.stack[:len(b.stack)-1]
	return nil
}

// Ring processes a ring-bond digit at the current atom: the first
// occurrence of a digit opens a slot, the second closes it, reconciling
// bond kinds per invariant 2 and installing the closing bonds.
func (b *Builder) Ring(bond BondKind, digit int, span Span) error {
	atom := b.stack[len(b.stack)-1]
	if b.ringOpen.Test(uint(digit)) {
		opener := b.ringInfo[digit]
		kind, err := reconcileRingBond(opener.bond, bond, digit, span.Start)
		if err != nil {
			return err
		}
		b.atoms[opener.atom].Bonds[opener.slot] = Bond{Kind: kind, Target: atom}
		closerSlot := len(b.atoms[atom].Bonds)
		b.atoms[atom].Bonds = append(b.atoms[atom].Bonds, Bond{Kind: kind.Complement(), Target: opener.atom})
		b.trace.recordBond(opener.atom, opener.slot, span)
		b.trace.recordBond(atom, closerSlot, span)
		b.ringOpen.Clear(uint(digit))
		delete(b.ringInfo, digit)
		b.trace.recordRingEvent(digit, span)
		b.logger.Debug("ring-close", zap.Int("digit", digit), zap.Int("atom", atom))
		return nil
	}
	slot := len(b.atoms[atom].Bonds)
	b.atoms[atom].Bonds = append(b.atoms[atom].Bonds, Bond{Kind: bond, Target: -1})
	b.ringOpen.Set(uint(digit))
	b.ringInfo[digit] = ringSlot{atom: atom, bond: bond, pos: span.Start, slot: slot}
	b.trace.recordRingEvent(digit, span)
	b.logger.Debug("ring-open", zap.Int("digit", digit), zap.Int("atom", atom))
	return nil
}

// reconcileRingBond applies invariant 2: an explicit side wins over an
// elided one; two explicit sides must agree.
func reconcileRingBond(opener, closer BondKind, digit, pos int) (BondKind, error) {
	if opener == BondElided {
		return closer, nil
	}
	if closer == BondElided {
		return opener, nil
	}
	if opener != closer {
		return 0, &MismatchError{Pos: pos, Digit: digit, Opener: opener, Closer: closer}
	}
	return opener, nil
}

// installBond records the bond u->v with kind, and its reciprocal twin
// v->u with the complementary kind, per invariant 1.
func (b *Builder) installBond(u, v int, kind BondKind, span Span) {
	uBondIdx := len(b.atoms[u].Bonds)
	b.atoms[u].Bonds = append(b.atoms[u].Bonds, Bond{Kind: kind, Target: v})
	vBondIdx := len(b.atoms[v].Bonds)
	b.atoms[v].Bonds = append(b.atoms[v].Bonds, Bond{Kind: kind.Complement(), Target: u})
	b.trace.recordBond(u, uBondIdx, span)
	b.trace.recordBond(v, vBondIdx, span)
}

// Build finalizes the adjacency list: it fails on any unclosed ring digit,
// unclosed branch, or hypervalent atom, and otherwise computes implicit
// hydrogens for every aliphatic/aromatic/bracket atom that has none set
// explicitly.
func (b *Builder) Build() (*Adjacency, error) {
	if b.ringOpen.Count() > 0 {
		for digit, slot := range b.ringInfo {
			_ = slot
			return nil, &UnclosedRingError{Digit: digit}
		}
	}
	if len(b.stack) > 1 {
		return nil, &UnclosedBranchError{}
	}

	for i := range b.atoms {
		if err := b.finalizeValence(i); err != nil {
			return nil, err
		}
	}

	b.logger.Debug("build", zap.Int("atoms", len(b.atoms)))
	return &Adjacency{Atoms: b.atoms}, nil
}

// bondOrderSum returns the raw (possibly fractional) sum of bond orders
// incident on atom i, counting aromatic bonds as 1.5 per §4.E.
func bondOrderSum(atom Atom) float64 {
	sum := 0.0
	for _, bnd := range atom.Bonds {
		if bnd.Kind == BondAromatic {
			sum += 1.5
		} else {
			sum += float64(bnd.Kind.Order())
		}
	}
	return sum
}

// finalizeValence computes implicit hydrogens (or checks hypervalence) for
// one atom, per invariant 4.
func (b *Builder) finalizeValence(i int) error {
	atom := &b.atoms[i]
	if atom.Kind == KindStar {
		return nil
	}

	number, ok := elements.Lookup(atom.Symbol)
	if !ok {
		return nil
	}
	valences := elements.StandardValences(number)
	if len(valences) == 0 {
		if atom.HCount == NoHCount {
			atom.HCount = 0
		}
		return nil
	}

	raw := bondOrderSum(*atom)
	floored := int(math.Floor(raw))
	maxValence := valences[len(valences)-1]
	if floored > maxValence {
		return &HypervalentError{AtomIndex: i, Computed: floored, Max: maxValence}
	}

	if atom.HCount != NoHCount {
		return nil
	}

	ceiled := int(math.Ceil(raw))
	target := maxValence
	for _, v := range valences {
		if v >= ceiled {
			target = v
			break
		}
	}
	implicit := target - ceiled
	if implicit < 0 {
		implicit = 0
	}
	atom.HCount = implicit
	return nil
}
