package smiles

import "go.uber.org/zap"

// ReadOptions collects the configuration Read and ReadTraced pass to the
// Builder of one read.
type ReadOptions struct {
	logger  *zap.Logger
	session Session
}

// ReadOption configures a read at call time.
type ReadOption func(*ReadOptions)

// WithReadLogger attaches a structured logger to the Builder backing this
// read.
func WithReadLogger(l *zap.Logger) ReadOption {
	return func(o *ReadOptions) { o.logger = l }
}

// WithReadSession tags this read's log lines and trace with a correlation
// identifier, per §4.L.
func WithReadSession(s Session) ReadOption {
	return func(o *ReadOptions) { o.session = s }
}

func resolveReadOptions(opts []ReadOption) *ReadOptions {
	o := &ReadOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *ReadOptions) builderOptions(trace *Trace) []BuilderOption {
	var bopts []BuilderOption
	if o.logger != nil {
		bopts = append(bopts, WithLogger(o.logger))
	}
	if !o.session.IsZero() {
		bopts = append(bopts, WithSession(o.session))
	}
	if trace != nil {
		bopts = append(bopts, WithTrace(trace))
	}
	return bopts
}

// Read parses input into a finalized Adjacency, running the Scanner,
// grammar, and Builder stages in sequence per §6.
func Read(input string, opts ...ReadOption) (*Adjacency, error) {
	adj, _, err := read(input, nil, opts)
	return adj, err
}

// ReadTraced parses input like Read, additionally returning a Trace mapping
// every atom, bond, and ring event back to its cursor span in input.
func ReadTraced(input string, opts ...ReadOption) (*Adjacency, *Trace, error) {
	trace := NewTrace()
	adj, trace, err := read(input, trace, opts)
	return adj, trace, err
}

func read(input string, trace *Trace, opts []ReadOption) (*Adjacency, *Trace, error) {
	o := resolveReadOptions(opts)
	sc := NewScanner(input)
	b := NewBuilder(o.builderOptions(trace)...)
	if err := Parse(sc, b); err != nil {
		return nil, trace, err
	}
	adj, err := b.Build()
	if err != nil {
		return nil, trace, err
	}
	return adj, trace, nil
}
