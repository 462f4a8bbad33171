package region

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestApprox(t *testing.T) {
	var tts = []struct {
		a, b Value
		eps  float64
		ok   bool
	}{
		{Num(1.0), Num(1.0 + 1e-10), 1e-9, true},
		{Num(1.0), Num(1.0 + 1e-8), 1e-9, false},
		{Num(1.0), Num(1.0), 0.0, true},
		{Undef(), Undef(), 0.0, true},
		{Bool(true), Bool(true), 1e-9, true},
		{Bool(true), Bool(false), 1e-9, false},
		{Str("foo"), Str("foo"), 1e-9, true},
		{Str("foo"), Str("bar"), 1e-9, false},

		// mismatched kinds and shapes
		{Num(1.0), Str("1"), 1e-9, false},
		{Undef(), Num(0.0), 1e9, false},
		{Nums(1.0, 2.0), Nums(1.0), 1e-9, false},
		{Nums(1.0, 2.0), Num(1.0), 1e-9, false},

		// nested structures
		{List(Nums(1.0, 2.0), Str("x")), List(Nums(1.0+1e-10, 2.0), Str("x")), 1e-9, true},
		{List(Nums(1.0, 2.0), Str("x")), List(Nums(1.0, 2.0), Str("y")), 1e-9, false},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.a, "~", tt.b), func(t *testing.T) {
			test.T(t, Approx(tt.a, tt.b, tt.eps), tt.ok)
			test.T(t, Approx(tt.b, tt.a, tt.eps), tt.ok)
		})
	}
}

func TestApproxReflexive(t *testing.T) {
	for _, v := range []Value{Undef(), Bool(false), Num(-1e100), Str(""), Nums(1.0, 2.0, 3.0), List(List(Undef()))} {
		test.That(t, Approx(v, v, 0.0), "approx is reflexive for ", v)
	}
}

func TestEqualWithin(t *testing.T) {
	test.T(t, EqualWithin(1.0, 1.5, 0.5), true)
	test.T(t, EqualWithin(1.0, 1.6, 0.5), false)
	test.T(t, EqualWithin(-1.0, 1.0, 0.5), false)
}
