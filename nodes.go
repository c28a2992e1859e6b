package scalar

import (
	"strconv"
	"strings"
)

// Expr is a node in the abstract syntax tree of an expression. The set of
// node types is closed: *Call, IntLit, RealLit, VarRef, and StrLit. Exprs are
// immutable once constructed.
type Expr interface {
	// Kind reports which variant the node is.
	Kind() Kind
	// String formats the tree rooted at the node.
	String() string

	fmt(b *strings.Builder, square bool)
}

// Kind identifies the variant of an Expr.
type Kind int8

const (
	// KindNone is the kind of a nil Expr.
	KindNone Kind = iota

	KindCall // function application
	KindInt  // integer literal
	KindReal // real literal, kept as text
	KindVar  // variable reference
	KindStr  // string literal
)

var kindNames = [...]string{
	KindNone: "None",
	KindCall: "Call",
	KindInt:  "Int",
	KindReal: "Real",
	KindVar:  "Var",
	KindStr:  "Str",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Call is an application of a named function to an ordered list of
// arguments. The number of arguments is not checked until evaluation.
type Call struct {
	name string
	args []Expr
}

// Apply creates a function application node. The argument list is copied, so
// later changes to args do not affect the node.
func Apply(name string, args ...Expr) *Call {
	var v []Expr
	if len(args) > 0 {
		v = make([]Expr, len(args))
		copy(v, args)
	}
	return &Call{name: name, args: v}
}

// Kind returns KindCall.
func (*Call) Kind() Kind { return KindCall }

// Name returns the name of the applied function.
func (c *Call) Name() string { return c.name }

// Len returns the number of arguments.
func (c *Call) Len() int { return len(c.args) }

// Arg returns the i'th argument. Panics if i is out of range.
func (c *Call) Arg(i int) Expr { return c.args[i] }

// Args returns a copy of the argument list.
func (c *Call) Args() []Expr {
	if len(c.args) == 0 {
		return nil
	}
	v := make([]Expr, len(c.args))
	copy(v, c.args)
	return v
}

// IntLit is an integer literal.
type IntLit struct {
	v int32
}

// Int creates an integer literal.
func Int(v int32) IntLit { return IntLit{v} }

// Kind returns KindInt.
func (IntLit) Kind() Kind { return KindInt }

// Value returns the literal's value.
func (n IntLit) Value() int32 { return n.v }

// RealLit is a real number literal. Its text is not checked until the literal
// is evaluated.
type RealLit struct {
	text string
}

// Real creates a real literal from its decimal text.
func Real(text string) RealLit { return RealLit{text} }

// Kind returns KindReal.
func (RealLit) Kind() Kind { return KindReal }

// Text returns the literal's source text.
func (n RealLit) Text() string { return n.text }

// VarRef is a reference to a variable. Variables are part of the tree model
// but cannot be evaluated.
type VarRef struct {
	name string
}

// Var creates a variable reference.
func Var(name string) VarRef { return VarRef{name} }

// Kind returns KindVar.
func (VarRef) Kind() Kind { return KindVar }

// Name returns the variable name.
func (n VarRef) Name() string { return n.name }

// StrLit is a string literal. Like variables, strings cannot be evaluated.
type StrLit struct {
	text string
}

// Str creates a string literal.
func Str(text string) StrLit { return StrLit{text} }

// Kind returns KindStr.
func (StrLit) Kind() Kind { return KindStr }

// Text returns the string's contents.
func (n StrLit) Text() string { return n.text }

// KindOf returns the kind of e, or KindNone if e is nil.
func KindOf(e Expr) Kind {
	if e == nil {
		return KindNone
	}
	return e.Kind()
}

func (c *Call) String() string   { return format(c) }
func (n IntLit) String() string  { return format(n) }
func (n RealLit) String() string { return format(n) }
func (n VarRef) String() string  { return format(n) }
func (n StrLit) String() string  { return format(n) }

func format(e Expr) string {
	var b strings.Builder
	e.fmt(&b, false)
	return b.String()
}

func brackets(square bool) (byte, byte) {
	if square {
		return '[', ']'
	}
	return '(', ')'
}

func (c *Call) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	defer b.WriteByte(r)
	b.WriteString(c.name)
	// The argument list uses the opposite bracket style from the call.
	l, r = brackets(!square)
	b.WriteByte(l)
	for i, arg := range c.args {
		if i > 0 {
			b.WriteString(", ")
		}
		if arg == nil {
			// Nil nodes use invalid characters.
			b.WriteString("$nil$")
			continue
		}
		arg.fmt(b, square)
	}
	b.WriteByte(r)
}

func (n IntLit) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	b.WriteString(strconv.FormatInt(int64(n.v), 10))
	b.WriteByte(r)
}

func (n RealLit) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	b.WriteString(n.text)
	b.WriteByte(r)
}

func (n VarRef) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	b.WriteString(n.name)
	b.WriteByte(r)
}

func (n StrLit) fmt(b *strings.Builder, square bool) {
	l, r := brackets(square)
	b.WriteByte(l)
	b.WriteString(strconv.Quote(n.text))
	b.WriteByte(r)
}
