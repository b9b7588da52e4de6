// Package vector: functional configuration for Format.
//
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors with validation (panic on nonsensical values),
//   - gatherOptions, which applies user options over the defaults.

package vector

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOpen is the opening delimiter used by Render.
	DefaultOpen = "⟨"

	// DefaultClose is the closing delimiter used by Render.
	DefaultClose = "⟩"

	// DefaultSeparator sits between the two rendered components.
	DefaultSeparator = ", "

	// DefaultPrecision means "no fixed precision": components are rendered
	// with their canonical fmt form.
	DefaultPrecision = -1
)

const panicPrecisionInvalid = "vector: WithPrecision: precision must be >= 0"

// Option mutates Options. Options are applied in order; the last writer wins.
type Option func(*Options)

// Options is the resolved rendering configuration. Fields are unexported;
// callers configure Format through Option values only.
type Options struct {
	open      string
	close     string
	separator string
	precision int // DefaultPrecision disables fixed-point rendering
}

// WithPrecision renders float32/float64 components (including named types
// whose underlying kind is a float) with exactly p digits after the decimal
// point. Other component kinds are unaffected.
//
// Panics if p < 0.
func WithPrecision(p int) Option {
	if p < 0 {
		panic(panicPrecisionInvalid)
	}
	return func(o *Options) { o.precision = p }
}

// WithDelimiters replaces the surrounding "⟨" and "⟩".
// Empty strings are allowed and drop the delimiter entirely.
func WithDelimiters(open, close string) Option {
	return func(o *Options) {
		o.open = open
		o.close = close
	}
}

// WithSeparator replaces the ", " placed between components.
func WithSeparator(sep string) Option {
	return func(o *Options) { o.separator = sep }
}

// gatherOptions starts from the documented defaults and applies user options
// in order. Nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := Options{
		open:      DefaultOpen,
		close:     DefaultClose,
		separator: DefaultSeparator,
		precision: DefaultPrecision,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
