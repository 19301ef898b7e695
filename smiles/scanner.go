package smiles

// Scanner is a stateful cursor over SMILES input. Single-quote characters
// are skipped silently (accepted by common toolkits as an ignorable
// no-op), but every position the scanner reports refers to the *original*
// input, quotes included, so errors and Trace spans always point at a
// byte a caller can find in the string they wrote.
//
// Internally the scanner keeps two cursors: a logical cursor (pos) into
// the quote-stripped byte slice that the grammar actually parses against,
// and a parallel table mapping each logical byte back to its original
// offset.
type Scanner struct {
	original string
	filtered []byte
	origPos  []int // origPos[i] is the original-string offset of filtered[i]
	pos      int   // logical cursor, index into filtered
}

// NewScanner creates a Scanner over src.
func NewScanner(src string) *Scanner {
	filtered := make([]byte, 0, len(src))
	origPos := make([]int, 0, len(src))
	for i := 0; i < len(src); i++ {
		if src[i] == '\'' {
			continue
		}
		filtered = append(filtered, src[i])
		origPos = append(origPos, i)
	}
	return &Scanner{original: src, filtered: filtered, origPos: origPos}
}

// Peek returns the current character without consuming it. ok is false at
// EOF.
func (s *Scanner) Peek() (ch byte, ok bool) {
	if s.pos >= len(s.filtered) {
		return 0, false
	}
	return s.filtered[s.pos], true
}

// PeekAt returns the character offset bytes past the cursor, without
// consuming anything. Used for short fixed lookahead (e.g. bracket-atom
// element symbols and @TH-style parity tokens).
func (s *Scanner) PeekAt(offset int) (ch byte, ok bool) {
	i := s.pos + offset
	if i < 0 || i >= len(s.filtered) {
		return 0, false
	}
	return s.filtered[i], true
}

// Advance consumes and returns the current character. ok is false at EOF,
// and the cursor does not move.
func (s *Scanner) Advance() (ch byte, ok bool) {
	ch, ok = s.Peek()
	if ok {
		s.pos++
	}
	return ch, ok
}

// MatchLiteral consumes the current character if it equals c, reporting
// whether it did.
func (s *Scanner) MatchLiteral(c byte) bool {
	ch, ok := s.Peek()
	if ok && ch == c {
		s.pos++
		return true
	}
	return false
}

// AtEOF reports whether the logical cursor has reached the end of input.
func (s *Scanner) AtEOF() bool {
	return s.pos >= len(s.filtered)
}

// Position returns the 0-based byte offset into the *original* input
// (quotes included) that the logical cursor currently corresponds to.
func (s *Scanner) Position() int {
	if s.pos < len(s.origPos) {
		return s.origPos[s.pos]
	}
	return len(s.original)
}

// TakeDigit consumes one ASCII digit and returns its value. ok is false
// (and nothing is consumed) if the current character is not a digit.
func (s *Scanner) TakeDigit() (value int, ok bool) {
	ch, have := s.Peek()
	if !have || ch < '0' || ch > '9' {
		return 0, false
	}
	s.pos++
	return int(ch - '0'), true
}

// TakeDigitsN consumes exactly n ASCII digits and returns their decimal
// value. If fewer than n digits are available, nothing is consumed and ok
// is false.
func (s *Scanner) TakeDigitsN(n int) (value int, ok bool) {
	if s.pos+n > len(s.filtered) {
		return 0, false
	}
	v := 0
	for i := 0; i < n; i++ {
		ch := s.filtered[s.pos+i]
		if ch < '0' || ch > '9' {
			return 0, false
		}
		v = v*10 + int(ch-'0')
	}
	s.pos += n
	return v, true
}
