package smiles

import "go.uber.org/zap"

// defaultLogger is shared by every component that hasn't been given one of
// its own via a WithLogger option.
var defaultLogger = zap.NewNop()

// withSessionField returns l with the session id attached as a field, or l
// unchanged if the session is unset.
func withSessionField(l *zap.Logger, s Session) *zap.Logger {
	if s.IsZero() {
		return l
	}
	return l.With(zap.String("session", s.String()))
}
