package region

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestContoursEqual(t *testing.T) {
	c := square(0, 0, 10, 10)
	rotated := Contour{{10, 10}, {0, 10}, {0, 0}, {10, 0}}
	jittered := Contour{{0, 1e-10}, {10, 0}, {10, 10}, {0, 10}}

	test.That(t, ContoursEqual(c, c, Eps))
	test.That(t, ContoursEqual(c, rotated, Eps))
	test.That(t, ContoursEqual(c, jittered, Eps))
	test.That(t, !ContoursEqual(c, c.Reverse(), Eps))
	test.That(t, !ContoursEqual(c, square(0, 0, 10, 11), Eps))
	test.That(t, !ContoursEqual(c, Contour{{0, 0}, {10, 0}, {10, 10}}, Eps))

	// consecutive duplicates are normalized away before matching
	dup := Contour{{0, 0}, {10, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
	test.That(t, ContoursEqual(c, dup, Eps))
}

func TestRegionsEqual(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(20, 0, 8, 8)

	test.That(t, RegionsEqual(Region{a, b}, Region{b, a}, false, Eps)) // order free
	test.That(t, !RegionsEqual(Region{a, b}, Region{a}, false, Eps))
	test.That(t, !RegionsEqual(Region{a, a}, Region{a, b}, false, Eps)) // multiset, not set

	// winding only matches when allowed
	test.That(t, !RegionsEqual(Region{a, b}, Region{a.Reverse(), b}, false, Eps))
	test.That(t, RegionsEqual(Region{a, b}, Region{a.Reverse(), b}, true, Eps))
}
