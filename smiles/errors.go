package smiles

import "fmt"

// Read-time errors. Every one carries the cursor position in the original
// input string (quotes included), per the error-cursor rule in §4.D.

// CharacterError reports an unexpected character at Pos.
type CharacterError struct {
	Pos  int
	Char byte
}

func (e *CharacterError) Error() string {
	return fmt.Sprintf("smiles: unexpected character %q at %d", e.Char, e.Pos)
}

// EndOfLineError reports input that ended mid-construct.
type EndOfLineError struct {
	Pos int
}

func (e *EndOfLineError) Error() string {
	return fmt.Sprintf("smiles: unexpected end of input at %d", e.Pos)
}

// DigitError reports a missing digit where a ring-bond number or atom-map
// class was expected.
type DigitError struct {
	Pos int
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("smiles: expected digit at %d", e.Pos)
}

// MismatchError reports conflicting ring-closure bond kinds declared on
// the two ends of the same ring digit.
type MismatchError struct {
	Pos    int
	Digit  int
	Opener BondKind
	Closer BondKind
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("smiles: ring bond %d kind mismatch (%s vs %s) at %d", e.Digit, e.Opener, e.Closer, e.Pos)
}

// Build-time errors: reported only at Builder.Build, per the propagation
// policy in §7.

// UnclosedRingError reports a ring-bond digit that was opened but never
// closed.
type UnclosedRingError struct {
	Digit int
}

func (e *UnclosedRingError) Error() string {
	return fmt.Sprintf("smiles: unclosed ring bond %d", e.Digit)
}

// UnclosedBranchError reports a '(' without a matching ')'.
type UnclosedBranchError struct{}

func (e *UnclosedBranchError) Error() string {
	return "smiles: unclosed branch"
}

// HypervalentError reports an atom whose computed bond-order sum exceeds
// its element's maximum standard valence.
type HypervalentError struct {
	AtomIndex int
	Computed  int
	Max       int
}

func (e *HypervalentError) Error() string {
	return fmt.Sprintf("smiles: atom %d is hypervalent (%d > %d)", e.AtomIndex, e.Computed, e.Max)
}

// Walk/write-time errors.

// IncompleteAdjacencyError reports a bond whose target is out of range or
// which lacks its reciprocal twin, violating the bond-symmetry invariant.
type IncompleteAdjacencyError struct {
	AtomIndex int
	Reason    string
}

func (e *IncompleteAdjacencyError) Error() string {
	return fmt.Sprintf("smiles: incomplete adjacency at atom %d: %s", e.AtomIndex, e.Reason)
}
