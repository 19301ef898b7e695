package smiles

import "github.com/google/uuid"

// Session is a correlation identifier threaded through a Builder's log
// lines and Trace, so separate reads can be told apart in shared log
// output.
type Session struct {
	id uuid.UUID
}

// NewSession mints a fresh Session.
func NewSession() Session {
	return Session{id: uuid.New()}
}

// IsZero reports whether this is the unset Session (the default value, and
// what NewBuilder uses when no WithSession option is given).
func (s Session) IsZero() bool {
	return s.id == uuid.Nil
}

func (s Session) String() string {
	if s.IsZero() {
		return ""
	}
	return s.id.String()
}
