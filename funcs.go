package scalar

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// Variadic is the arity of a function that accepts any number of arguments.
const Variadic = -1

// Func is a pure function from reals to a real.
type Func interface {
	// Arity returns the number of arguments the function requires, or
	// Variadic if it accepts any number.
	Arity() int

	// Call evaluates the function. Callers must pass exactly Arity arguments
	// unless Arity is Variadic; the wrappers in this package index args
	// without checking its length. The evaluator checks the length before
	// calling. Call must not retain or modify args.
	Call(args []float64) (float64, error)
}

var defaultfuncs = map[string]Func{
	"+": Dyadic(func(a, b float64) float64 { return a + b }),
	"-": Dyadic(func(a, b float64) float64 { return a - b }),
	"*": Dyadic(func(a, b float64) float64 { return a * b }),
	"/": Dyadic(func(a, b float64) float64 { return a / b }),

	// The conversion prevents fusing into a multiply-add.
	"sassy": Dyadic(func(a, b float64) float64 { return float64(a*b) + 1 }),
}

// DefaultFuncs returns a copy of the functions available in a context that
// has no function options.
func DefaultFuncs() map[string]Func {
	m := make(map[string]Func, len(defaultfuncs))
	for k, v := range defaultfuncs {
		m[k] = v
	}
	return m
}

type niladic struct {
	f func() float64
}

func (niladic) Arity() int { return 0 }

func (n niladic) Call(args []float64) (float64, error) {
	return n.f(), nil
}

// Niladic wraps a function of zero variables, generally a function which
// computes a constant, into a Func.
func Niladic(f func() float64) Func {
	return niladic{f}
}

type monadic struct {
	f func(x float64) float64
}

func (monadic) Arity() int { return 1 }

func (m monadic) Call(args []float64) (float64, error) {
	return m.f(args[0]), nil
}

// Monadic wraps a function of one variable into a Func.
func Monadic(f func(x float64) float64) Func {
	return monadic{f}
}

type dyadic struct {
	f func(a, b float64) float64
}

func (dyadic) Arity() int { return 2 }

func (d dyadic) Call(args []float64) (float64, error) {
	return d.f(args[0], args[1]), nil
}

// Dyadic wraps a function of two variables into a Func.
func Dyadic(f func(a, b float64) float64) Func {
	return dyadic{f}
}

type fallible struct {
	n int
	f func(args []float64) (float64, error)
}

func (f fallible) Arity() int { return f.n }

func (f fallible) Call(args []float64) (float64, error) {
	return f.f(args)
}

// NewFunc creates a Func with the given arity from a function which may fail.
// Use Variadic as the arity to accept any number of arguments.
func NewFunc(arity int, f func(args []float64) (float64, error)) Func {
	if arity < Variadic {
		panic("scalar: invalid arity")
	}
	return fallible{arity, f}
}

// ExtPrec is the precision in bits to which ExtendedFuncs compute their
// results before rounding to float64.
const ExtPrec = 128

// ExtendedFuncs returns a library of functions beyond the defaults. Results
// are computed to ExtPrec bits and then rounded, so they are correctly rounded
// in all but pathological cases. None of these are available unless added to
// a context with SetFuncs.
func ExtendedFuncs() map[string]Func {
	return map[string]Func{
		"neg":  Monadic(func(x float64) float64 { return -x }),
		"sqrt": NewFunc(1, extsqrt),
		"exp":  Monadic(extexp),
		"ln":   NewFunc(1, func(args []float64) (float64, error) { return extlog(args[0], "ln", false) }),
		"log":  NewFunc(1, func(args []float64) (float64, error) { return extlog(args[0], "log", true) }),
		"pow":  NewFunc(2, extpow),
		"pi":   Niladic(func() float64 { return round(bigfloat.Pi(newbig())) }),
		"e": Niladic(func() float64 {
			one := newbig().SetInt64(1)
			return round(bigfloat.Exp(newbig(), one))
		}),
	}
}

func newbig() *big.Float {
	return new(big.Float).SetPrec(ExtPrec)
}

func round(x *big.Float) float64 {
	r, _ := x.Float64()
	return r
}

func finite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

func extsqrt(args []float64) (float64, error) {
	x := args[0]
	switch {
	case math.IsNaN(x):
		return x, nil
	case x < 0:
		return 0, &DomainError{X: x, Arg: 1, Func: "sqrt"}
	case x == 0, math.IsInf(x, 1):
		return x, nil
	}
	in := newbig().SetFloat64(x)
	return round(newbig().Sqrt(in)), nil
}

// expLimit bounds the magnitude of arguments computed with arbitrary
// precision. Beyond it, every float64 result is 0 or +Inf anyway.
const expLimit = 1000

func extexp(x float64) float64 {
	if !finite(x) || math.Abs(x) > expLimit {
		return math.Exp(x)
	}
	in := newbig().SetFloat64(x)
	return round(bigfloat.Exp(newbig(), in))
}

func extlog(x float64, name string, ten bool) (float64, error) {
	switch {
	case math.IsNaN(x):
		return x, nil
	case x < 0:
		return 0, &DomainError{X: x, Arg: 1, Func: name}
	case x == 0:
		return math.Inf(-1), nil
	case math.IsInf(x, 1):
		return x, nil
	}
	out := bigfloat.Log(newbig(), newbig().SetFloat64(x))
	if ten {
		d := bigfloat.Log(newbig(), newbig().SetInt64(10))
		out.Quo(out, d)
	}
	return round(out), nil
}

func extpow(args []float64) (float64, error) {
	x, y := args[0], args[1]
	if !finite(x) || !finite(y) || x == 0 || y == 0 {
		return math.Pow(x, y), nil
	}
	neg := false
	if x < 0 {
		// A negative base has a real power only for integer exponents.
		if y != math.Trunc(y) {
			return 0, &DomainError{X: x, Arg: 1, Func: "pow"}
		}
		neg = math.Mod(y, 2) != 0
		x = -x
	}
	if math.Abs(y*math.Log(x)) > expLimit {
		r := math.Pow(x, y)
		if neg {
			r = -r
		}
		return r, nil
	}
	// Pow may return a new value instead of setting its first argument.
	out := bigfloat.Pow(newbig(), newbig().SetFloat64(x), newbig().SetFloat64(y))
	if neg {
		out.Neg(out)
	}
	return round(out), nil
}
