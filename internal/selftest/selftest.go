// Package selftest holds the built-in batteries run by cmd/unitcheck.
package selftest

import (
	"math"

	"unitcheck/internal/check"
)

// Run evaluates one passing check of every kind plus the boundary cases
// that must hold for the library to be trusted.
func Run(c *check.Checker) {
	c.Assert(check.ApproxEqual(0.0, 0.0))
	check.Equal(c, 5, 5)
	check.Equal(c, check.FormatSeq([]int{1, 2, 3}), "{1,2,3}")
	check.NE(c, "pass", "fail")
	check.LT(c, -1, 0)
	check.GT(c, math.Pi, 3.0)
	check.LE(c, 2, 2)
	check.GE(c, uint8(255), uint8(254))

	// thresholds are inclusive for scalars, strict for elementwise checks
	check.EqualThresh(c, 10, 12, 2)
	check.EqualThresh(c, 0.25, 0.75, 0.5)
	check.SIMDEqualThresh(c, []int{1, 2, 3}, []int{2, 3, 4}, 2)

	check.EqualApprox(c, 1.0, 1.0009)
	check.EqualApprox(c, -2000.0, -2001.5)
	check.SIMDEqual(c, []string{"r", "g", "b"}, []string{"r", "g", "b"})
	check.SIMDEqualApprox(c, []float32{0, 1, 1000}, []float32{0, 1.0005, 1000.5})

	c.Assert(!check.ApproxEqual(1.0, 1.002))
	c.Assert(!check.ApproxEqual(math.NaN(), math.NaN()))
}

// RunFailures evaluates ten checks of which three fail, showing the
// diagnostic format and the exit code contract.
func RunFailures(c *check.Checker) {
	got, want := 5, 6
	check.Equal(c, got, want)
	check.Equal(c, got, 5)
	check.EqualApprox(c, 1.0, 1.002)
	check.EqualApprox(c, 1.0, 1.0009)
	check.SIMDEqual(c, []int{1, 2, 3}, []int{1, 2, 4})
	check.SIMDEqual(c, []int{1, 2, 3}, []int{1, 2, 3})
	check.LT(c, 1, 2)
	check.GE(c, 3, 3)
	check.NE(c, got, want)
	c.Assert(got < want)
}
