package reader

import (
	"slices"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
)

// All folds boolean Readers into their pointwise conjunction. An empty input
// yields a Reader that is always true. Evaluation stops at the first false.
// The input slice is copied, so later mutations do not affect the result.
func All[E any](readers []Reader[E, bool]) Reader[E, bool] {
	rs := slices.Clone(readers)
	return func(env E) bool {
		return lo.EveryBy(rs, func(r Reader[E, bool]) bool { return r(env) })
	}
}

// Any folds boolean Readers into their pointwise disjunction. An empty input
// yields a Reader that is always false. Evaluation stops at the first true.
func Any[E any](readers []Reader[E, bool]) Reader[E, bool] {
	rs := slices.Clone(readers)
	return func(env E) bool {
		return lo.SomeBy(rs, func(r Reader[E, bool]) bool { return r(env) })
	}
}

// Sum folds numeric Readers into their pointwise sum. An empty input yields
// Pure(0), the additive identity.
func Sum[E any, T Number](readers []Reader[E, T]) Reader[E, T] {
	rs := slices.Clone(readers)
	return func(env E) T {
		return lo.SumBy(rs, func(r Reader[E, T]) T { return r(env) })
	}
}

// Prod folds numeric Readers into their pointwise product. An empty input
// yields Pure(1), the multiplicative identity.
func Prod[E any, T Number](readers []Reader[E, T]) Reader[E, T] {
	// lo.ProductBy yields 0 for nil input, so the empty case is answered here.
	if len(readers) == 0 {
		return Pure[E, T](1)
	}
	rs := slices.Clone(readers)
	return func(env E) T {
		return lo.ProductBy(rs, func(r Reader[E, T]) T { return r(env) })
	}
}

// Fold reduces Readers pointwise from left to right, starting the accumulator
// at init.
//
// Example:
//
//	longest := Fold(names, "", func(acc string, name string) string {
//		if len(name) > len(acc) {
//			return name
//		}
//		return acc
//	})
func Fold[E any, A any, B any](readers []Reader[E, A], init B, fn func(B, A) B) Reader[E, B] {
	rs := slices.Clone(readers)
	return func(env E) B {
		return lo.Reduce(rs, func(acc B, r Reader[E, A], _ int) B {
			return fn(acc, r(env))
		}, init)
	}
}

// Reduce folds Readers pointwise with fn, seeding the accumulator with the
// first Reader's value. It returns false when the input is empty, since no
// initial value exists.
func Reduce[E any, A any](readers []Reader[E, A], fn func(A, A) A) (Reader[E, A], bool) {
	if len(readers) == 0 {
		return nil, false
	}
	head := readers[0]
	rest := slices.Clone(readers[1:])
	return func(env E) A {
		return lo.Reduce(rest, func(acc A, r Reader[E, A], _ int) A {
			return fn(acc, r(env))
		}, head(env))
	}, true
}

// Min folds ordered Readers into their pointwise minimum, returning false
// when the input is empty.
func Min[E any, T constraints.Ordered](readers []Reader[E, T]) (Reader[E, T], bool) {
	return Reduce(readers, func(a T, b T) T { return min(a, b) })
}

// Max folds ordered Readers into their pointwise maximum, returning false
// when the input is empty.
func Max[E any, T constraints.Ordered](readers []Reader[E, T]) (Reader[E, T], bool) {
	return Reduce(readers, func(a T, b T) T { return max(a, b) })
}
