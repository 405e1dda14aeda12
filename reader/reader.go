// Package reader implements the Reader functor: a deferred computation that
// produces a value by reading a shared environment.
//
// A Reader wraps a plain function from an environment to a value. Combinators
// only ever compose functions, so nothing evaluates until Run receives a
// concrete environment. This makes Readers a simple way to thread read-only
// configuration or dependency bundles through a computation without ambient
// globals.
//
// Example:
//
//	port := reader.From(func(cfg Config) int { return cfg.Port })
//	addr := reader.Map(port, func(p int) string { return fmt.Sprintf(":%d", p) })
//	fmt.Println(addr.Run(Config{Port: 8080}))
package reader

// Reader represents a computation that reads a value of type A out of an
// environment of type E.
//
// The held function must be pure: total, free of side effects and of reads
// from anything but its argument. The library cannot enforce this; the
// algebraic guarantees of the combinators hold only under that contract.
// Readers are immutable once built and hold no shared state, so distinct
// goroutines may Run the same Reader concurrently as long as the held
// function is itself reentrant.
//
// Example:
//
//	var port Reader[Config, int] = func(cfg Config) int { return cfg.Port }
type Reader[E any, A any] func(E) A

// From wraps an arbitrary environment-reading function into a Reader. No
// validation is performed; wrapping a nil function yields a Reader that
// panics at Run, which is the caller's bug surfacing verbatim.
//
// Example:
//
//	host := From(func(cfg Config) string { return cfg.Host })
func From[E any, A any](fn func(E) A) Reader[E, A] {
	return Reader[E, A](fn)
}

// Pure lifts a plain value into a Reader that ignores its environment and
// always produces that value.
//
// Example:
//
//	fallback := Pure[Config]("localhost")
func Pure[E any, A any](value A) Reader[E, A] {
	return func(E) A {
		return value
	}
}

// Ask returns the Reader that yields the environment itself, the identity
// arrow on E.
//
// Example:
//
//	cfg := Ask[Config]()
func Ask[E any]() Reader[E, E] {
	return func(env E) E {
		return env
	}
}

// Run evaluates the held function against env and returns its value. The call
// is synchronous and performs no recovery: whatever the held function panics
// with crosses Run unchanged.
//
// Example:
//
//	value := addr.Run(Config{Port: 8080})
func (r Reader[E, A]) Run(env E) A {
	return r(env)
}

// Map transforms the eventual value of r with fn, post-composing fn onto the
// held function. Nothing evaluates until Run.
//
// Example:
//
//	banner := Map(host, func(h string) string { return "host=" + h })
func Map[E any, A any, B any](r Reader[E, A], fn func(A) B) Reader[E, B] {
	return func(env E) B {
		return fn(r(env))
	}
}

// Ap applies a wrapped function to a wrapped value, evaluating both under the
// same environment.
//
// Example:
//
//	scale := From(func(cfg Config) func(int) int {
//		return func(v int) int { return v * cfg.Factor }
//	})
//	scaled := Ap(scale, port)
func Ap[E any, A any, B any](rf Reader[E, func(A) B], ra Reader[E, A]) Reader[E, B] {
	return func(env E) B {
		return rf(env)(ra(env))
	}
}

// FlatMap sequences two computations: it evaluates r under the environment,
// feeds the value to fn, and evaluates the resulting Reader under the same
// environment.
//
// Example:
//
//	addr := FlatMap(port, func(p int) Reader[Config, string] {
//		return From(func(cfg Config) string {
//			return fmt.Sprintf("%s:%d", cfg.Host, p)
//		})
//	})
func FlatMap[E any, A any, B any](r Reader[E, A], fn func(A) Reader[E, B]) Reader[E, B] {
	return func(env E) B {
		return fn(r(env))(env)
	}
}

// Local adapts a Reader to a different environment type by pre-composing
// transform onto the held function. It is the contravariant counterpart of
// Map: Map rewrites the output side, Local the input side.
//
// Example:
//
//	wide := Local(func(app AppEnv) Config { return app.Config }, addr)
func Local[EIn any, EOut any, A any](transform func(EIn) EOut, r Reader[EOut, A]) Reader[EIn, A] {
	return func(env EIn) A {
		return r(transform(env))
	}
}

// Compose treats Readers as arrows and composes them in mathematical order:
// inner runs against the environment and outer against inner's value. Ask is
// its two-sided identity.
//
// Example:
//
//	label := Compose(describe, port)
func Compose[E any, A any, B any](outer Reader[A, B], inner Reader[E, A]) Reader[E, B] {
	return func(env E) B {
		return outer(inner(env))
	}
}

// Map is the method form of the package-level Map, restricted to
// transformations that keep the value type. It makes same-type chains fluent
// and satisfies the Functor contract.
//
// Example:
//
//	next := port.Map(func(p int) int { return p + 1 })
func (r Reader[E, A]) Map(fn func(A) A) Reader[E, A] {
	return Map(r, fn)
}

// Ap is the method form of the package-level Ap for wrapped functions that
// keep the value type. It satisfies the Applicative contract.
//
// The parameter is the literal function shape rather than Reader[E, func(A) A]
// and the composition is spelled out rather than delegated: either form would
// instantiate a generic declaration with a type derived from the receiver's own
// type parameter, which Go's type checker rejects as an instantiation cycle.
// Reader[E, func(A) A] values are assignable to the literal shape, so call
// sites are unaffected.
func (r Reader[E, A]) Ap(rf func(E) func(A) A) Reader[E, A] {
	return func(env E) A {
		return rf(env)(r(env))
	}
}

// FlatMap is the method form of the package-level FlatMap for continuations
// that keep the value type. It satisfies the Monad contract.
//
// Example:
//
//	clamped := port.FlatMap(func(p int) Reader[Config, int] {
//		return From(func(cfg Config) int { return min(p, cfg.MaxPort) })
//	})
func (r Reader[E, A]) FlatMap(fn func(A) Reader[E, A]) Reader[E, A] {
	return FlatMap(r, fn)
}

// Local is the method form of the package-level Local for transformations
// that keep the environment type.
func (r Reader[E, A]) Local(transform func(E) E) Reader[E, A] {
	return Local(transform, r)
}
