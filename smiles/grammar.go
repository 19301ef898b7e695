package smiles

import (
	"strings"

	"github.com/cx-luo/go-smiles/elements"
)

// Parse drives sc against b, issuing Builder events for every atom, bond,
// branch, and ring closure it recognizes: smiles -> chain ('.' chain)*,
// chain -> atom (branch | bonded-continuation)*.
func Parse(sc *Scanner, b *Builder) error {
	if sc.AtEOF() {
		return nil
	}
	for {
		if err := parseChain(sc, b, true); err != nil {
			return err
		}
		if !sc.MatchLiteral('.') {
			break
		}
		b.Disconnect()
		if sc.AtEOF() {
			return &EndOfLineError{Pos: sc.Position()}
		}
	}
	if !sc.AtEOF() {
		ch, _ := sc.Peek()
		return &CharacterError{Pos: sc.Position(), Char: ch}
	}
	return nil
}

// parseChain reads one atom (as a fresh root, or bonded onto whatever is
// already current) followed by any number of branches and bonded
// continuations, stopping at '.', ')', or EOF.
func parseChain(sc *Scanner, b *Builder, root bool) error {
	if root {
		if err := parseRootAtom(sc, b); err != nil {
			return err
		}
	} else if err := parseBondedAtom(sc, b); err != nil {
		return err
	}

	for {
		ch, ok := sc.Peek()
		if !ok {
			return nil
		}
		switch ch {
		case '.', ')':
			return nil
		case '(':
			if err := parseBranch(sc, b); err != nil {
				return err
			}
		default:
			matched, err := parseBondedContinuation(sc, b)
			if err != nil {
				return err
			}
			if !matched {
				return &CharacterError{Pos: sc.Position(), Char: ch}
			}
		}
	}
}

// parseBranch consumes '(' continuation ')'. A branch with no closing
// paren (input ran out first) is left open on the Builder's stack; Build
// reports it as UnclosedBranchError.
func parseBranch(sc *Scanner, b *Builder) error {
	start := sc.Position()
	sc.Advance()
	if !b.HasCurrent() {
		return &CharacterError{Pos: start, Char: '('}
	}
	b.BranchStart()
	if err := parseChain(sc, b, false); err != nil {
		return err
	}
	if sc.MatchLiteral(')') {
		return b.BranchEnd()
	}
	return nil
}

// parseRootAtom reads the first atom of a new connected component: no bond
// symbol may precede it.
func parseRootAtom(sc *Scanner, b *Builder) error {
	start := sc.Position()
	ch, ok := sc.Peek()
	if !ok {
		return &EndOfLineError{Pos: start}
	}
	if !isAtomStart(ch) {
		return &CharacterError{Pos: start, Char: ch}
	}
	atom, err := parseAtomToken(sc)
	if err != nil {
		return err
	}
	b.AddRoot(atom, Span{Start: start, End: sc.Position()})
	return nil
}

// parseBondedAtom reads an optional bond symbol followed by an atom,
// extending whatever is current. Used for the first atom inside a branch.
func parseBondedAtom(sc *Scanner, b *Builder) error {
	start := sc.Position()
	bond, _ := parseBondSymbol(sc)
	ch, ok := sc.Peek()
	if !ok {
		return &EndOfLineError{Pos: sc.Position()}
	}
	if !isAtomStart(ch) {
		return &CharacterError{Pos: sc.Position(), Char: ch}
	}
	atom, err := parseAtomToken(sc)
	if err != nil {
		return err
	}
	b.Extend(bond, atom, Span{Start: start, End: sc.Position()})
	return nil
}

// parseBondedContinuation reads one optional-bond-prefixed token that is
// either a ring-closure digit (single digit, or '%' + two digits) or an
// atom. It reports matched=false with a nil error when the current
// character starts none of those and no bond symbol was consumed, leaving
// the caller to decide what that means (usually a syntax error).
func parseBondedContinuation(sc *Scanner, b *Builder) (matched bool, err error) {
	start := sc.Position()
	bond, bondSeen := parseBondSymbol(sc)

	ch, ok := sc.Peek()
	if !ok {
		if bondSeen {
			return false, &EndOfLineError{Pos: sc.Position()}
		}
		return false, nil
	}

	switch {
	case ch >= '0' && ch <= '9':
		digit, _ := sc.TakeDigit()
		if err := b.Ring(bond, digit, Span{Start: start, End: sc.Position()}); err != nil {
			return false, err
		}
		return true, nil

	case ch == '%':
		sc.Advance()
		digit, ok := sc.TakeDigitsN(2)
		if !ok {
			return false, &DigitError{Pos: sc.Position()}
		}
		if err := b.Ring(bond, digit, Span{Start: start, End: sc.Position()}); err != nil {
			return false, err
		}
		return true, nil

	case isAtomStart(ch):
		atom, err := parseAtomToken(sc)
		if err != nil {
			return false, err
		}
		b.Extend(bond, atom, Span{Start: start, End: sc.Position()})
		return true, nil

	case bondSeen:
		return false, &CharacterError{Pos: sc.Position(), Char: ch}

	default:
		return false, nil
	}
}

// parseBondSymbol consumes one bond-symbol character if present.
func parseBondSymbol(sc *Scanner) (BondKind, bool) {
	ch, ok := sc.Peek()
	if !ok {
		return BondElided, false
	}
	var kind BondKind
	switch ch {
	case '-':
		kind = BondSingle
	case '=':
		kind = BondDouble
	case '#':
		kind = BondTriple
	case '$':
		kind = BondQuadruple
	case ':':
		kind = BondAromatic
	case '/':
		kind = BondUp
	case '\\':
		kind = BondDown
	default:
		return BondElided, false
	}
	sc.Advance()
	return kind, true
}

// organicUpper and organicLower are the bare (unbracketed) organic-subset
// symbols, per §4.C: atoms written without brackets that still carry the
// implicit-hydrogen rule.
var organicUpper = map[string]bool{
	"B": true, "C": true, "N": true, "O": true, "P": true, "S": true,
	"F": true, "Cl": true, "Br": true, "I": true,
}
var organicLower = map[string]bool{
	"b": true, "c": true, "n": true, "o": true, "p": true, "s": true,
	"se": true, "as": true,
}

func isAtomStart(ch byte) bool {
	if ch == '*' || ch == '[' {
		return true
	}
	return isLetter(ch)
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// parseAtomToken reads one atom in any of its four textual forms: bracket,
// wildcard, or bare organic-subset (aliphatic/aromatic).
func parseAtomToken(sc *Scanner) (Atom, error) {
	ch, _ := sc.Peek()
	switch {
	case ch == '[':
		return parseBracketAtom(sc)
	case ch == '*':
		sc.Advance()
		return Atom{Kind: KindStar, Symbol: "*", HCount: 0}, nil
	default:
		return parseOrganicAtom(sc)
	}
}

// parseOrganicAtom reads a bare organic-subset symbol: one upper-case
// letter optionally followed by a lower-case letter completing a two-
// letter symbol (Cl, Br), or one of the lower-case aromatic letters
// (optionally se/as).
func parseOrganicAtom(sc *Scanner) (Atom, error) {
	pos := sc.Position()
	first, _ := sc.Advance()

	if first >= 'A' && first <= 'Z' {
		if second, ok := sc.Peek(); ok && second >= 'a' && second <= 'z' {
			two := string([]byte{first, second})
			if organicUpper[two] {
				sc.Advance()
				return Atom{Kind: KindAliphatic, Symbol: two, HCount: NoHCount}, nil
			}
		}
		one := string(first)
		if organicUpper[one] {
			return Atom{Kind: KindAliphatic, Symbol: one, HCount: NoHCount}, nil
		}
		return Atom{}, &CharacterError{Pos: pos, Char: first}
	}

	if second, ok := sc.Peek(); ok {
		two := string([]byte{first, second})
		if organicLower[two] {
			sc.Advance()
			return Atom{Kind: KindAromatic, Symbol: two, Aromatic: true, HCount: NoHCount}, nil
		}
	}
	one := string(first)
	if organicLower[one] {
		return Atom{Kind: KindAromatic, Symbol: one, Aromatic: true, HCount: NoHCount}, nil
	}
	return Atom{}, &CharacterError{Pos: pos, Char: first}
}

// parseBracketAtom reads the full `[ isotope? symbol parity? hcount?
// charge? (:map)? ]` grammar.
func parseBracketAtom(sc *Scanner) (Atom, error) {
	sc.Advance() // '['
	atom := Atom{Kind: KindBracket, HCount: NoHCount}

	if isotope, ok := readIsotope(sc); ok {
		atom.Isotope = isotope
	}

	symbol, aromatic, err := readBracketSymbol(sc)
	if err != nil {
		return Atom{}, err
	}
	atom.Symbol = elements.Normalize(symbol)
	atom.Aromatic = aromatic
	if aromatic {
		atom.Symbol = strings.ToLower(atom.Symbol)
	}

	if parity, ok, err := readParity(sc); err != nil {
		return Atom{}, err
	} else if ok {
		atom.Parity = parity
	}

	if hcount, ok := readHCount(sc); ok {
		atom.HCount = hcount
	}

	if charge, ok, err := readCharge(sc); err != nil {
		return Atom{}, err
	} else if ok {
		atom.Charge = charge
	}

	if sc.MatchLiteral(':') {
		class, ok := readDigits(sc)
		if !ok {
			return Atom{}, &DigitError{Pos: sc.Position()}
		}
		atom.MapClass = class
	}

	if !sc.MatchLiteral(']') {
		pos := sc.Position()
		ch, ok := sc.Peek()
		if !ok {
			return Atom{}, &EndOfLineError{Pos: pos}
		}
		return Atom{}, &CharacterError{Pos: pos, Char: ch}
	}
	return atom, nil
}

func readIsotope(sc *Scanner) (int, bool) {
	value, ok := sc.TakeDigit()
	if !ok {
		return 0, false
	}
	for i := 0; i < 2; i++ {
		d, ok := sc.TakeDigit()
		if !ok {
			break
		}
		value = value*10 + d
	}
	return value, true
}

func peekRun(sc *Scanner, n int) (string, bool) {
	buf := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		ch, ok := sc.PeekAt(i)
		if !ok {
			return "", false
		}
		buf = append(buf, ch)
	}
	return string(buf), true
}

// readBracketSymbol reads an element symbol (or '*') from inside a
// bracket atom, greedily preferring the longest run of letters that names
// a known element, so that e.g. "Sc" is read as scandium rather than "S"
// followed by a stray "c".
func readBracketSymbol(sc *Scanner) (string, bool, error) {
	pos := sc.Position()
	first, ok := sc.Peek()
	if !ok {
		return "", false, &EndOfLineError{Pos: pos}
	}
	if first == '*' {
		sc.Advance()
		return "*", false, nil
	}
	if !isLetter(first) {
		return "", false, &CharacterError{Pos: pos, Char: first}
	}
	aromatic := first >= 'a' && first <= 'z'

	maxLen := 2
	if !aromatic {
		maxLen = 3
	}
	for length := maxLen; length >= 1; length-- {
		run, ok := peekRun(sc, length)
		if !ok {
			continue
		}
		if length > 1 {
			tailOK := true
			for i := 1; i < length; i++ {
				if run[i] < 'a' || run[i] > 'z' {
					tailOK = false
					break
				}
			}
			if !tailOK {
				continue
			}
		}
		candidate := run
		if aromatic {
			candidate = strings.ToUpper(run[:1]) + run[1:]
		}
		if _, known := elements.Lookup(candidate); known {
			for i := 0; i < length; i++ {
				sc.Advance()
			}
			return run, aromatic, nil
		}
	}
	return "", false, &CharacterError{Pos: pos, Char: first}
}

var parityTokens = []struct {
	suffix string
	class  ParityClass
	max    int
}{
	{"TH", ParityTH, 2},
	{"AL", ParityAL, 2},
	{"SP", ParitySP, 3},
	{"TB", ParityTB, 20},
	{"OH", ParityOH, 30},
}

// readParity reads an optional `@`, `@@`, or `@XXn` stereo token.
func readParity(sc *Scanner) (Parity, bool, error) {
	if !sc.MatchLiteral('@') {
		return Parity{}, false, nil
	}
	if sc.MatchLiteral('@') {
		return Parity{Class: ParityTH, Index: 2}, true, nil
	}
	for _, tok := range parityTokens {
		run, ok := peekRun(sc, 2)
		if !ok || run != tok.suffix {
			continue
		}
		sc.Advance()
		sc.Advance()
		n, ok := readDigits(sc)
		if !ok || n < 1 || n > tok.max {
			return Parity{}, false, &DigitError{Pos: sc.Position()}
		}
		return Parity{Class: tok.class, Index: n}, true, nil
	}
	return Parity{Class: ParityTH, Index: 1}, true, nil
}

// readHCount reads an optional `H` or `Hn` implicit-hydrogen count token.
func readHCount(sc *Scanner) (int, bool) {
	if !sc.MatchLiteral('H') {
		return 0, false
	}
	if n, ok := readDigits(sc); ok {
		return n, true
	}
	return 1, true
}

// readCharge reads an optional charge token: a run of '+' or '-' signs
// (each counting as one), or a sign followed by a decimal magnitude.
func readCharge(sc *Scanner) (int, bool, error) {
	ch, ok := sc.Peek()
	if !ok || (ch != '+' && ch != '-') {
		return 0, false, nil
	}
	sign := 1
	if ch == '-' {
		sign = -1
	}
	sc.Advance()

	if n, ok := readDigits(sc); ok {
		return sign * n, true, nil
	}

	count := 1
	for {
		next, ok := sc.Peek()
		if !ok || next != ch {
			break
		}
		sc.Advance()
		count++
	}
	return sign * count, true, nil
}

func readDigits(sc *Scanner) (int, bool) {
	value, ok := sc.TakeDigit()
	if !ok {
		return 0, false
	}
	for {
		d, ok := sc.TakeDigit()
		if !ok {
			break
		}
		value = value*10 + d
	}
	return value, true
}
