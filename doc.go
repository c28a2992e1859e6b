// Package scalar evaluates arithmetic expression trees to float64 values.
//
// An expression is a tree of Expr nodes: integer and real literals, and
// applications of named functions to any number of arguments. Building the
// tree is the caller's job; this package only reduces one to a number.
//
//	e := scalar.Apply("*", scalar.Apply("+", scalar.Int(1), scalar.Int(2)), scalar.Int(4))
//	v, err := scalar.Eval(e) // 12, nil
//
// The functions available to applications come from a Context. The default
// context knows "+", "-", "*", "/", and "sassy" (a*b + 1), each taking
// exactly two arguments. Options to NewContext add, replace, or remove
// functions, so a host can extend the set without touching the evaluator.
//
// Evaluation never panics on bad input. Malformed real literals, unknown
// function names, wrong argument counts, and nodes that have no numeric value
// such as variables are all reported as errors.
package scalar
