package scalar

import (
	"strconv"
)

// LiteralError is an error indicating a real literal whose text is not a
// valid floating-point number. It implements NodeError.
type LiteralError struct {
	// Node is the literal that failed to evaluate.
	Node RealLit
	// Text is the literal's text.
	Text string
	// Err is the error from parsing the text.
	Err error
}

func (err *LiteralError) Error() string {
	return "malformed real literal " + strconv.Quote(err.Text)
}

func (err *LiteralError) Unwrap() error {
	return err.Err
}

func (err *LiteralError) Expr() Expr {
	return err.Node
}

// OperatorError is an error indicating an application of a function which is
// not defined in the evaluation context. It implements NodeError.
type OperatorError struct {
	// Node is the call naming the function.
	Node *Call
	// Name is the name that was not found.
	Name string
}

func (err *OperatorError) Error() string {
	return "unsupported operator " + strconv.Quote(err.Name)
}

func (err *OperatorError) Expr() Expr {
	return err.Node
}

// KindError is an error indicating a node of a kind that cannot be evaluated,
// such as a variable reference. It implements NodeError.
type KindError struct {
	// Node is the node that could not be evaluated. It is nil if the error
	// was caused by a nil Expr.
	Node Expr
	// Kind is the kind of Node.
	Kind Kind
}

func (err *KindError) Error() string {
	if err.Node == nil {
		return "unsupported node kind " + err.Kind.String()
	}
	return "unsupported node kind " + err.Kind.String() + ": " + err.Node.String()
}

func (err *KindError) Expr() Expr {
	return err.Node
}

// CallError is an error indicating a function application with the wrong
// number of arguments. It implements NodeError.
type CallError struct {
	// Node is the offending call.
	Node *Call
	// Func is the function name that was called.
	Func string
	// Want is the number of arguments the function requires.
	Want int
	// Got is the number of arguments the call supplied.
	Got int
}

func (err *CallError) Error() string {
	return "cannot call " + strconv.Quote(err.Func) + " with " + strconv.Itoa(err.Got) + " arguments (want " + strconv.Itoa(err.Want) + ")"
}

func (err *CallError) Expr() Expr {
	return err.Node
}

// DepthError is an error indicating an expression nested more deeply than
// the evaluation context allows.
type DepthError struct {
	// Max is the context's depth limit.
	Max int
}

func (err *DepthError) Error() string {
	return "expression exceeds maximum depth " + strconv.Itoa(err.Max)
}

// DomainError is an error returned when a function is called on arguments
// outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Arg is the 1-based index of the argument.
	Arg int
	// Func is a name identifying the function.
	Func string
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}

// NodeError is an error attributed to a particular node of the evaluated
// tree.
type NodeError interface {
	error
	// Expr returns the node that caused the error.
	Expr() Expr
}

var (
	_ NodeError = (*LiteralError)(nil)
	_ NodeError = (*OperatorError)(nil)
	_ NodeError = (*KindError)(nil)
	_ NodeError = (*CallError)(nil)
)
