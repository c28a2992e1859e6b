package scalar_test

import (
	"testing"

	"github.com/zephyrtronium/scalar"
)

func TestString(t *testing.T) {
	i, r, app := scalar.Int, scalar.Real, scalar.Apply
	cases := []struct {
		name string
		expr scalar.Expr
		want string
	}{
		{"int", i(-3), "(-3)"},
		{"real", r("2.50"), "(2.50)"},
		{"var", scalar.Var("x"), "(x)"},
		{"str", scalar.Str(`a"b`), `("a\"b")`},
		{"niladic", app("pi"), "(pi[])"},
		{"call", app("+", i(1), r("2")), "(+[(1), (2)])"},
		{"nested", app("*", app("+", i(1), i(2)), i(4)), "(*[(+[(1), (2)]), (4)])"},
		{"nil-arg", app("f", nil), "(f[$nil$])"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.expr.String(); got != c.want {
				t.Errorf("wrong string: want %q, got %q", c.want, got)
			}
		})
	}
}

func TestKind(t *testing.T) {
	cases := []struct {
		expr scalar.Expr
		kind scalar.Kind
		name string
	}{
		{nil, scalar.KindNone, "None"},
		{scalar.Apply("f"), scalar.KindCall, "Call"},
		{scalar.Int(0), scalar.KindInt, "Int"},
		{scalar.Real("0"), scalar.KindReal, "Real"},
		{scalar.Var("v"), scalar.KindVar, "Var"},
		{scalar.Str("s"), scalar.KindStr, "Str"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if k := scalar.KindOf(c.expr); k != c.kind {
				t.Errorf("wrong kind: want %v, got %v", c.kind, k)
			}
			if s := c.kind.String(); s != c.name {
				t.Errorf("wrong kind name: want %q, got %q", c.name, s)
			}
		})
	}
	if s := scalar.Kind(99).String(); s != "Kind(99)" {
		t.Errorf("wrong name for invalid kind: %q", s)
	}
}

func TestApplyCopiesArgs(t *testing.T) {
	args := []scalar.Expr{scalar.Int(1), scalar.Int(2)}
	c := scalar.Apply("+", args...)
	args[0] = scalar.Var("x")
	if c.Arg(0) != scalar.Int(1) {
		t.Errorf("Apply kept a reference to its argument slice: %v", c)
	}
	got := c.Args()
	got[1] = scalar.Var("y")
	if c.Arg(1) != scalar.Int(2) {
		t.Errorf("Args returned the node's own slice: %v", c)
	}
	if c.Name() != "+" || c.Len() != 2 {
		t.Errorf("wrong call contents: %q with %d args", c.Name(), c.Len())
	}
	if v, err := scalar.Eval(c); err != nil || v != 3 {
		t.Errorf("evaluating %v gave %g, %v", c, v, err)
	}
}

func TestAccessors(t *testing.T) {
	if v := scalar.Int(-9).Value(); v != -9 {
		t.Errorf("Int value: %d", v)
	}
	if s := scalar.Real("1e3").Text(); s != "1e3" {
		t.Errorf("Real text: %q", s)
	}
	if s := scalar.Var("n").Name(); s != "n" {
		t.Errorf("Var name: %q", s)
	}
	if s := scalar.Str("abc").Text(); s != "abc" {
		t.Errorf("Str text: %q", s)
	}
	if a := scalar.Apply("f").Args(); a != nil {
		t.Errorf("niladic Args: %v", a)
	}
}
