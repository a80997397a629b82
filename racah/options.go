package racah

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wigner/numeric"
)

// Method selects the numeric backend used by Evaluate.
type Method int

const (
	// Exact evaluates with big.Rat / big.Float (default).
	Exact Method = iota

	// LogGamma evaluates in log space with compensated float64 summation.
	LogGamma
)

// String returns the lowercase method name used by the CLI.
func (m Method) String() string {
	switch m {
	case Exact:
		return "exact"
	case LogGamma:
		return "loggamma"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// ParseMethod maps "exact" / "loggamma" to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "exact", "":
		return Exact, nil
	case "loggamma", "log-gamma", "lgamma":
		return LogGamma, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// Defaults (single source of truth for zero-value behavior).
const (
	// DefaultEpsilon is the integrality / equality tolerance.
	DefaultEpsilon = numeric.DefaultEpsilon

	// DefaultMethod is the backend used when WithMethod is not given.
	DefaultMethod = Exact
)

const (
	panicEpsilonInvalid = "racah: WithEpsilon: eps must be finite, non-negative"
	panicMethodInvalid  = "racah: WithMethod: unknown method"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the resolved configuration shared by threej and sixj.
type Options struct {
	eps    float64
	method Method
}

// WithEpsilon sets the tolerance used for every integrality check
// (lattice membership, selection rules, factorial arguments).
//
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithMethod selects the evaluation backend. Panics on an unknown Method.
func WithMethod(m Method) Option {
	if m != Exact && m != LogGamma {
		panic(panicMethodInvalid)
	}

	return func(o *Options) { o.method = m }
}

// Resolve applies opts over the defaults. Nil options are skipped.
func Resolve(opts ...Option) Options {
	o := Options{eps: DefaultEpsilon, method: DefaultMethod}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Epsilon returns the effective tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Method returns the effective backend.
func (o Options) Method() Method { return o.method }
