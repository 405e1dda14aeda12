package reader

// KleisliCompose sequences two Reader-producing functions into one: fn runs
// on the argument first, next on fn's value, and both resulting Readers see
// the same environment. Pure is its two-sided identity.
//
// Example:
//
//	lookup := func(name string) Reader[Env, UserID] { ... }
//	load := func(id UserID) Reader[Env, User] { ... }
//	loadByName := KleisliCompose(lookup, load)
func KleisliCompose[E any, A any, B any, C any](fn func(A) Reader[E, B], next func(B) Reader[E, C]) func(A) Reader[E, C] {
	return func(a A) Reader[E, C] {
		return FlatMap(fn(a), next)
	}
}

// Kleisli is an environment-aware step from A back to A. Steps compose
// associatively with Pure as the neutral element, which makes Kleisli a
// Composable instance and Reader a functor over its value type in the
// categorical sense.
//
// Example:
//
//	var clamp Kleisli[Limits, int] = func(v int) Reader[Limits, int] {
//		return From(func(l Limits) int { return min(v, l.Max) })
//	}
type Kleisli[E any, A any] func(A) Reader[E, A]

// Identity returns the neutral step, lifting its argument with Pure. The
// receiver is ignored, so Identity works on the zero value.
func (Kleisli[E, A]) Identity() Kleisli[E, A] {
	return Pure[E, A]
}

// Compose returns the step that applies other first and the receiver to its
// value, following the same mathematical order as the rest of the library.
func (f Kleisli[E, A]) Compose(other Kleisli[E, A]) Kleisli[E, A] {
	return func(a A) Reader[E, A] {
		return FlatMap[E, A, A](other(a), f)
	}
}
