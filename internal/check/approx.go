package check

import (
	"fmt"
	"math"
	"reflect"
)

// Number is any built-in integer or floating point type
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// ApproxTolerance is the relative tolerance used by ApproxEqual
const ApproxTolerance = 0.001

// ApproxEqual reports whether |x-y| <= 0.001 * max(|x|, |y|). Two zeros
// are equal; NaN never is.
func ApproxEqual[T Number](x, y T) bool {
	fx, fy := float64(x), float64(y)
	return math.Abs(fx-fy) <= ApproxTolerance*math.Max(math.Abs(fx), math.Abs(fy))
}

// ApproxEqualAll applies ApproxEqual elementwise. Slices of different
// length are never equal.
func ApproxEqualAll[T Number](x, y []T) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !ApproxEqual(x[i], y[i]) {
			return false
		}
	}
	return true
}

// absDiff returns |x-y|. ok is false when the difference does not fit in
// T, which happens for signed operands of opposite sign far apart, or
// when either operand is NaN.
func absDiff[T Number](x, y T) (d T, ok bool) {
	if x > y {
		d = x - y
	} else {
		d = y - x
	}
	return d, d >= 0
}

// formatDiff renders a difference computed in float64 at the precision
// of T, so float32 operands do not show widening noise.
func formatDiff[T Number](d float64) string {
	if reflect.TypeOf((*T)(nil)).Elem().Kind() == reflect.Float32 {
		return fmt.Sprint(float32(d))
	}
	return fmt.Sprint(d)
}
