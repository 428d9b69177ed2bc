package check

import (
	"cmp"
	"fmt"
	"math"
)

// Equal checks x == y
func Equal[T comparable](c *Checker, x, y T) bool {
	if x == y {
		return c.pass("Equal")
	}
	return c.fail(failure{check: "Equal", first: 1, op: "==", values: []any{x, y}})
}

// EqualThresh checks |x-y| <= eps
func EqualThresh[T Number](c *Checker, x, y, eps T) bool {
	diff, ok := absDiff(x, y)
	if ok && diff <= eps {
		return c.pass("EqualThresh")
	}
	text := fmt.Sprint(diff)
	if !ok {
		text = formatDiff[T](math.Abs(float64(x) - float64(y)))
	}
	return c.fail(failure{
		check:  "EqualThresh",
		first:  1,
		op:     "==",
		values: []any{x, y},
		diff:   text,
	})
}

// EqualApprox checks x and y agree within a relative tolerance of 0.001
func EqualApprox[T Number](c *Checker, x, y T) bool {
	if ApproxEqual(x, y) {
		return c.pass("EqualApprox")
	}
	return c.fail(failure{
		check:  "EqualApprox",
		first:  1,
		op:     "==",
		values: []any{x, y},
		diff:   formatDiff[T](float64(x) - float64(y)),
	})
}

// NE checks x != y
func NE[T comparable](c *Checker, x, y T) bool {
	if x != y {
		return c.pass("NE")
	}
	return c.fail(failure{check: "NE", first: 1, op: "!=", values: []any{x, y}})
}

// LT checks x < y
func LT[T cmp.Ordered](c *Checker, x, y T) bool {
	if x < y {
		return c.pass("LT")
	}
	return c.fail(failure{check: "LT", first: 1, op: "<", values: []any{x, y}})
}

// GT checks x > y
func GT[T cmp.Ordered](c *Checker, x, y T) bool {
	if x > y {
		return c.pass("GT")
	}
	return c.fail(failure{check: "GT", first: 1, op: ">", values: []any{x, y}})
}

// LE checks x <= y
func LE[T cmp.Ordered](c *Checker, x, y T) bool {
	if x <= y {
		return c.pass("LE")
	}
	return c.fail(failure{check: "LE", first: 1, op: "<=", values: []any{x, y}})
}

// GE checks x >= y
func GE[T cmp.Ordered](c *Checker, x, y T) bool {
	if x >= y {
		return c.pass("GE")
	}
	return c.fail(failure{check: "GE", first: 1, op: ">=", values: []any{x, y}})
}

// SIMDEqual checks that x and y have the same length and every element
// pair is equal.
func SIMDEqual[T comparable](c *Checker, x, y []T) bool {
	if allPairs(x, y, func(a, b T) bool { return a == b }) {
		return c.pass("SIMDEqual")
	}
	return c.fail(failure{check: "SIMDEqual", first: 1, op: "==", values: []any{x, y}})
}

// SIMDEqualThresh checks that x and y have the same length and every
// element pair differs by strictly less than eps.
func SIMDEqualThresh[T Number](c *Checker, x, y []T, eps T) bool {
	within := func(a, b T) bool {
		d, ok := absDiff(a, b)
		return ok && d < eps
	}
	if allPairs(x, y, within) {
		return c.pass("SIMDEqualThresh")
	}
	return c.fail(failure{check: "SIMDEqualThresh", first: 1, op: "==", values: []any{x, y}})
}

// SIMDEqualApprox is EqualApprox applied to every element pair
func SIMDEqualApprox[T Number](c *Checker, x, y []T) bool {
	if ApproxEqualAll(x, y) {
		return c.pass("SIMDEqualApprox")
	}
	return c.fail(failure{check: "SIMDEqualApprox", first: 1, op: "==", values: []any{x, y}})
}

func allPairs[T any](x, y []T, ok func(a, b T) bool) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !ok(x[i], y[i]) {
			return false
		}
	}
	return true
}
