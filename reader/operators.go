package reader

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number groups the primitive numeric types accepted by the arithmetic
// combinators.
type Number interface {
	constraints.Integer | constraints.Float
}

// Add evaluates both Readers under the same environment and adds the results.
func Add[E any, T Number](ra Reader[E, T], rb Reader[E, T]) Reader[E, T] {
	return Map2(ra, rb, func(a T, b T) T { return a + b })
}

// Sub subtracts rb's value from ra's pointwise.
func Sub[E any, T Number](ra Reader[E, T], rb Reader[E, T]) Reader[E, T] {
	return Map2(ra, rb, func(a T, b T) T { return a - b })
}

// Mul multiplies the produced values pointwise.
func Mul[E any, T Number](ra Reader[E, T], rb Reader[E, T]) Reader[E, T] {
	return Map2(ra, rb, func(a T, b T) T { return a * b })
}

// Div divides ra's value by rb's pointwise. Integer division truncates and
// panics on a zero divisor, exactly as the plain operator does; the panic
// surfaces at Run.
func Div[E any, T Number](ra Reader[E, T], rb Reader[E, T]) Reader[E, T] {
	return Map2(ra, rb, func(a T, b T) T { return a / b })
}

// Mod produces the remainder of ra's value divided by rb's pointwise.
func Mod[E any, T constraints.Integer](ra Reader[E, T], rb Reader[E, T]) Reader[E, T] {
	return Map2(ra, rb, func(a T, b T) T { return a % b })
}

// Pow raises ra's value to rb's pointwise via math.Pow.
func Pow[E any, T constraints.Float](ra Reader[E, T], rb Reader[E, T]) Reader[E, T] {
	return Map2(ra, rb, func(a T, b T) T { return T(math.Pow(float64(a), float64(b))) })
}

// Neg negates the produced value.
func Neg[E any, T Number](r Reader[E, T]) Reader[E, T] {
	return Map(r, func(v T) T { return -v })
}

// BitAnd produces the bitwise conjunction of the produced integers pointwise.
func BitAnd[E any, T constraints.Integer](ra Reader[E, T], rb Reader[E, T]) Reader[E, T] {
	return Map2(ra, rb, func(a T, b T) T { return a & b })
}

// BitOr produces the bitwise disjunction of the produced integers pointwise.
func BitOr[E any, T constraints.Integer](ra Reader[E, T], rb Reader[E, T]) Reader[E, T] {
	return Map2(ra, rb, func(a T, b T) T { return a | b })
}

// BitXor produces the bitwise exclusive disjunction of the produced integers
// pointwise.
func BitXor[E any, T constraints.Integer](ra Reader[E, T], rb Reader[E, T]) Reader[E, T] {
	return Map2(ra, rb, func(a T, b T) T { return a ^ b })
}

// BitNot inverts every bit of the produced integer.
func BitNot[E any, T constraints.Integer](r Reader[E, T]) Reader[E, T] {
	return Map(r, func(v T) T { return ^v })
}

// Lt reports pointwise whether ra's value is less than rb's.
func Lt[E any, T constraints.Ordered](ra Reader[E, T], rb Reader[E, T]) Reader[E, bool] {
	return Map2(ra, rb, func(a T, b T) bool { return a < b })
}

// Lte reports pointwise whether ra's value is at most rb's.
func Lte[E any, T constraints.Ordered](ra Reader[E, T], rb Reader[E, T]) Reader[E, bool] {
	return Map2(ra, rb, func(a T, b T) bool { return a <= b })
}

// Gt reports pointwise whether ra's value is greater than rb's.
func Gt[E any, T constraints.Ordered](ra Reader[E, T], rb Reader[E, T]) Reader[E, bool] {
	return Map2(ra, rb, func(a T, b T) bool { return a > b })
}

// Gte reports pointwise whether ra's value is at least rb's.
func Gte[E any, T constraints.Ordered](ra Reader[E, T], rb Reader[E, T]) Reader[E, bool] {
	return Map2(ra, rb, func(a T, b T) bool { return a >= b })
}

// Eq reports pointwise whether both Readers produce equal values.
func Eq[E any, T comparable](ra Reader[E, T], rb Reader[E, T]) Reader[E, bool] {
	return Map2(ra, rb, func(a T, b T) bool { return a == b })
}

// Neq reports pointwise whether the produced values differ.
func Neq[E any, T comparable](ra Reader[E, T], rb Reader[E, T]) Reader[E, bool] {
	return Map2(ra, rb, func(a T, b T) bool { return a != b })
}

// And produces the conjunction of both boolean Readers. Both sides are
// evaluated.
func And[E any](ra Reader[E, bool], rb Reader[E, bool]) Reader[E, bool] {
	return Map2(ra, rb, func(a bool, b bool) bool { return a && b })
}

// Or produces the disjunction of both boolean Readers. Both sides are
// evaluated.
func Or[E any](ra Reader[E, bool], rb Reader[E, bool]) Reader[E, bool] {
	return Map2(ra, rb, func(a bool, b bool) bool { return a || b })
}

// Xor produces the exclusive disjunction of both boolean Readers.
func Xor[E any](ra Reader[E, bool], rb Reader[E, bool]) Reader[E, bool] {
	return Map2(ra, rb, func(a bool, b bool) bool { return a != b })
}

// Not inverts the produced boolean.
func Not[E any](r Reader[E, bool]) Reader[E, bool] {
	return Map(r, func(v bool) bool { return !v })
}
