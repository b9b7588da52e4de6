package arrays

// DefaultZeroOnMismatch controls whether Dot silently returns 0 for slices
// of different lengths. false ⇒ Dot returns ErrLengthMismatch.
const DefaultZeroOnMismatch = false

// Option mutates Options. Options are applied in order; the last writer wins.
type Option func(*Options)

// Options is the resolved configuration for operations that accept ...Option.
type Options struct {
	zeroOnMismatch bool
}

// WithZeroOnMismatch makes Dot return (0, nil) when lengths differ.
func WithZeroOnMismatch() Option {
	return func(o *Options) { o.zeroOnMismatch = true }
}

// WithErrorOnMismatch restores the default: Dot returns ErrLengthMismatch
// when lengths differ.
func WithErrorOnMismatch() Option {
	return func(o *Options) { o.zeroOnMismatch = false }
}

func gatherOptions(user ...Option) Options {
	o := Options{zeroOnMismatch: DefaultZeroOnMismatch}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
