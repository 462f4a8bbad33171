package region

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestCompare(t *testing.T) {
	var tts = []struct {
		a, b Value
		cmp  int
	}{
		// type precedence: undefined < bool < number < string < list
		{Undef(), Num(0.0), -1},
		{Num(0.0), Str("foo"), -1},
		{Undef(), Bool(false), -1},
		{Bool(true), Num(-1e10), -1},
		{Str("zzz"), List(), -1},
		{Undef(), Undef(), 0},

		{Bool(false), Bool(true), -1},
		{Bool(true), Bool(true), 0},

		{Num(1.0), Num(2.0), -1},
		{Num(-0.5), Num(-1.5), 1},
		{Num(3.0), Num(3.0), 0},

		{Str("abc"), Str("abd"), -1},
		{Str("abc"), Str("ab"), 1},
		{Str(""), Str("a"), -1},
		{Str("a"), Str("a"), 0},

		{Nums(1.0, 2.0), Nums(1.0, 3.0), -1},
		{Nums(1.0, 2.0), Nums(1.0, 2.0, 0.0), -1}, // strict prefix sorts first
		{Nums(2.0), Nums(1.0, 9.0, 9.0), 1},
		{Nums(), Nums(1.0), -1},
		{Nums(1.0, 2.0), Nums(1.0, 2.0), 0},

		// mixed-type sequences compare element-wise by precedence
		{List(Undef(), Num(5.0)), List(Bool(false), Num(0.0)), -1},
		{List(Num(1.0), Str("a")), List(Num(1.0), Num(99.0)), 1},
		{List(Nums(1.0, 2.0)), List(Nums(1.0, 2.0)), 0},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.a, "<>", tt.b), func(t *testing.T) {
			test.T(t, Compare(tt.a, tt.b), tt.cmp)
			test.T(t, Compare(tt.b, tt.a), -tt.cmp)
		})
	}
}

func TestCompareTotalOrder(t *testing.T) {
	// chain across all kinds, must be strictly increasing and transitive
	chain := []Value{
		Undef(),
		Bool(false), Bool(true),
		Num(-1e100), Num(0.0), Num(1e-300), Num(1e100),
		Str(""), Str("A"), Str("a"), Str("ab"),
		Nums(), Nums(-1.0), Nums(-1.0, 0.0), Nums(0.0),
		List(Str("x")), List(List()),
	}
	for i := range chain {
		for j := range chain {
			cmp := Compare(chain[i], chain[j])
			if i < j {
				test.T(t, cmp, -1)
			} else if j < i {
				test.T(t, cmp, 1)
			} else {
				test.T(t, cmp, 0)
			}
		}
	}
}

func TestValueAccessors(t *testing.T) {
	test.T(t, Bool(true).Bool(), true)
	test.T(t, Num(3.5).Num(), 3.5)
	test.T(t, Str("foo").Str(), "foo")
	test.T(t, len(Nums(1.0, 2.0).List()), 2)
	test.T(t, Num(3.5).Str(), "")
	test.T(t, Str("foo").Num(), 0.0)
	test.T(t, Undef().Kind(), UndefinedKind)
	test.String(t, List(Undef(), Bool(true), Num(2.0), Str("x")).String(), `[undef,true,2,"x"]`)
	test.String(t, ListKind.String(), "list")
}
