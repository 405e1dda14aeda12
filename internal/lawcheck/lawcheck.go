// Package lawcheck hosts internal helpers shared by the law-checking tests.
//
// The algebraic laws are stated extensionally: two environment-reading
// functions are considered equal when they produce the same output for every
// probed environment.
//
// Example:
//
//	ok := lawcheck.SameOutputs(lawcheck.IntEnvs(), left.Run, right.Run)
package lawcheck

import "github.com/samber/lo"

// SameOutputs reports whether f and g agree on every environment in envs.
//
// Example:
//
//	same := SameOutputs([]int{0, 1, -1}, f, g)
func SameOutputs[E any, A comparable](envs []E, f func(E) A, g func(E) A) bool {
	return lo.EveryBy(envs, func(env E) bool {
		return f(env) == g(env)
	})
}

// IntEnvs returns the standard pool of integer environments the laws are
// probed against. The slice is freshly allocated on each call so tests can
// mutate it safely.
func IntEnvs() []int {
	return []int{0, 1, -1, 2, 3, 5, 7, 10, -10, 42, 100, -1000}
}

// IntFuncs returns the standard pool of integer transformations used to
// sample random functions in property tests.
func IntFuncs() []func(int) int {
	return []func(int) int{
		func(v int) int { return v },
		func(v int) int { return v + 1 },
		func(v int) int { return v * 2 },
		func(v int) int { return v * v },
		func(v int) int { return -v },
		func(v int) int { return v - 3 },
	}
}
