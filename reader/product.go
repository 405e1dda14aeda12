package reader

// Tuple2 represents a pair of values.
//
// Example:
//
//	p := reader.Tuple2[int, string]{First: 1, Second: "a"}
type Tuple2[A any, B any] struct {
	First  A
	Second B
}

// Tuple3 represents three values.
//
// Example:
//
//	t := reader.Tuple3[int, string, bool]{First: 1, Second: "a", Third: true}
type Tuple3[A any, B any, C any] struct {
	First  A
	Second B
	Third  C
}

// Zip2 combines two Readers into one that produces both values, evaluated
// under the same environment.
//
// Example:
//
//	pair := Zip2(host, port)
func Zip2[E any, A any, B any](ra Reader[E, A], rb Reader[E, B]) Reader[E, Tuple2[A, B]] {
	return func(env E) Tuple2[A, B] {
		return Tuple2[A, B]{First: ra(env), Second: rb(env)}
	}
}

// Zip3 combines three Readers into one that produces all three values under
// the same environment.
func Zip3[E any, A any, B any, C any](ra Reader[E, A], rb Reader[E, B], rc Reader[E, C]) Reader[E, Tuple3[A, B, C]] {
	return func(env E) Tuple3[A, B, C] {
		return Tuple3[A, B, C]{First: ra(env), Second: rb(env), Third: rc(env)}
	}
}

// Map2 combines two Readers pointwise with fn; both observe the same
// environment.
//
// Example:
//
//	addr := Map2(host, port, func(h string, p int) string {
//		return fmt.Sprintf("%s:%d", h, p)
//	})
func Map2[E any, A any, B any, C any](ra Reader[E, A], rb Reader[E, B], fn func(A, B) C) Reader[E, C] {
	return func(env E) C {
		return fn(ra(env), rb(env))
	}
}

// Map3 combines three Readers pointwise with fn under a shared environment.
func Map3[E any, A any, B any, C any, D any](ra Reader[E, A], rb Reader[E, B], rc Reader[E, C], fn func(A, B, C) D) Reader[E, D] {
	return func(env E) D {
		return fn(ra(env), rb(env), rc(env))
	}
}
