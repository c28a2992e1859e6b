package scalar

import (
	"errors"
	"strconv"
	"strings"
)

// Context is a context for evaluating expressions. It holds the functions
// that applications may name and any limits on evaluation. A Context is never
// modified after creation, so it is safe to use concurrently.
type Context struct {
	funcs map[string]Func
	depth int
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	funcopt struct {
		name string
		fn   Func
	}
	funcsopt map[string]Func
	nodefopt struct{}
	depthopt int
)

func (funcopt) ctxOption()  {}
func (funcsopt) ctxOption() {}
func (nodefopt) ctxOption() {}
func (depthopt) ctxOption() {}

// SetFunc sets a function in the context. A nil fn removes the function.
func SetFunc(name string, fn Func) ContextOption {
	return funcopt{name, fn}
}

// SetFuncs sets any number of functions in the context. Nil entries remove
// the corresponding functions.
func SetFuncs(fns map[string]Func) ContextOption {
	return funcsopt(fns)
}

// DisableDefaultFuncs removes every function from the context, including
// functions set by options earlier in the same list.
func DisableDefaultFuncs() ContextOption {
	return nodefopt{}
}

// MaxDepth limits the nesting depth of evaluated expressions. A literal has
// depth 1, and an application is one deeper than its deepest argument. A
// limit of 0 or less means no limit.
func MaxDepth(n int) ContextOption {
	return depthopt(n)
}

// NewContext creates a new evaluation context with the default functions.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{funcs: defaultfuncs}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		funcs: make(map[string]Func, len(ctx.funcs)),
		depth: ctx.depth,
	}
	for k, v := range ctx.funcs {
		n.funcs[k] = v
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case funcopt:
			n.set(opt.name, opt.fn)
		case funcsopt:
			for k, v := range opt {
				n.set(k, v)
			}
		case nodefopt:
			n.funcs = make(map[string]Func)
		case depthopt:
			n.depth = int(opt)
		default:
			panic("scalar: unknown option type")
		}
	}
	return &n
}

func (ctx *Context) set(name string, fn Func) {
	if fn == nil {
		delete(ctx.funcs, name)
		return
	}
	ctx.funcs[name] = fn
}

// Func returns the function the context uses for name, or nil if there is
// none.
func (ctx *Context) Func(name string) Func {
	return ctx.funcs[name]
}

// MaxDepth returns the context's depth limit, or 0 if it has none.
func (ctx *Context) MaxDepth() int {
	if ctx.depth < 0 {
		return 0
	}
	return ctx.depth
}

// Eval evaluates an expression and returns the result. Arguments of
// applications are evaluated left to right, and the first error encountered
// ends evaluation. Errors from the context are one of *LiteralError,
// *OperatorError, *KindError, *CallError, or *DepthError; errors returned by
// functions are passed through unchanged.
func (ctx *Context) Eval(e Expr) (float64, error) {
	return ctx.eval(e, 1)
}

func (ctx *Context) eval(e Expr, depth int) (float64, error) {
	if ctx.depth > 0 && depth > ctx.depth {
		return 0, &DepthError{Max: ctx.depth}
	}
	switch e := e.(type) {
	case *Call:
		if e == nil {
			return 0, &KindError{Kind: KindNone}
		}
		return ctx.call(e, depth)
	case IntLit:
		return float64(e.v), nil
	case RealLit:
		return num(e)
	case VarRef:
		return 0, &KindError{Node: e, Kind: KindVar}
	case StrLit:
		return 0, &KindError{Node: e, Kind: KindStr}
	case nil:
		return 0, &KindError{Kind: KindNone}
	default:
		// Expr is sealed, so this is only reachable through embedding.
		return 0, &KindError{Node: e, Kind: e.Kind()}
	}
}

// call evaluates every argument of c, then applies the named function.
func (ctx *Context) call(c *Call, depth int) (float64, error) {
	var args []float64
	if len(c.args) > 0 {
		args = make([]float64, len(c.args))
	}
	for i, a := range c.args {
		v, err := ctx.eval(a, depth+1)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	f := ctx.funcs[c.name]
	if f == nil {
		return 0, &OperatorError{Node: c, Name: c.name}
	}
	if n := f.Arity(); n != Variadic && n != len(args) {
		return 0, &CallError{Node: c, Func: c.name, Want: n, Got: len(args)}
	}
	return f.Call(args)
}

// num parses the text of a real literal. Only decimal forms are accepted.
// Values too large in magnitude become infinities, and values too small
// become zeros.
func num(n RealLit) (float64, error) {
	if !decimal(n.text) {
		err := &strconv.NumError{Func: "ParseFloat", Num: n.text, Err: strconv.ErrSyntax}
		return 0, &LiteralError{Node: n, Text: n.text, Err: err}
	}
	r, err := strconv.ParseFloat(n.text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &LiteralError{Node: n, Text: n.text, Err: err}
	}
	return r, nil
}

// decimal reports whether s avoids the hexadecimal and underscore forms that
// strconv.ParseFloat accepts beyond plain decimal notation.
func decimal(s string) bool {
	if strings.ContainsRune(s, '_') {
		return false
	}
	s = strings.TrimLeft(s, "+-")
	return !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X")
}

// Eval is a shortcut to evaluate an expression in a new context.
func Eval(e Expr, opts ...ContextOption) (float64, error) {
	return NewContext(opts...).Eval(e)
}
