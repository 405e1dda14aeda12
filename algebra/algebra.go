// Package algebra defines the structural contracts shared by the library's
// wrapper types: Composable, Functor, Applicative and Monad.
//
// Go methods cannot introduce new type parameters, so the interfaces here
// capture the shape-preserving core of each abstraction: Map takes func(A) A,
// FlatMap takes func(A) F, and so on. The full type-changing forms live as
// package-level functions next to each instance (reader.Map, reader.FlatMap).
// Instances satisfy these interfaces structurally; nothing in this package
// needs to change when a new instance is added.
//
// The contracts are F-bounded: an instance type F declares itself as the first
// type argument, as in Functor[F, A]. That keeps every method return concrete
// so chains stay fluent and no type assertions are needed.
package algebra

import "github.com/samber/lo"

// Composable describes arrow-like values that compose associatively around a
// neutral element.
//
// Identity must not read its receiver: it is the identity element of the
// structure, reachable even from the zero value. Compose follows mathematical
// order, applying other first and the receiver to its outcome. Implementations
// must satisfy, extensionally:
//
//	f.Compose(f.Identity()) ~ f
//	f.Identity().Compose(f) ~ f
//	f.Compose(g).Compose(h) ~ f.Compose(g.Compose(h))
type Composable[C any] interface {
	Identity() C
	Compose(other C) C
}

// Functor describes wrappers whose contents can be transformed in place
// without changing the wrapper's structure.
//
// Laws, extensionally:
//
//	v.Map(identity) ~ v
//	v.Map(f).Map(g) ~ v.Map(compose(g, f))
type Functor[F any, A any] interface {
	Map(fn func(A) A) F
}

// Applicative extends Functor with Ap, which applies a wrapped function to the
// wrapped value. FF is the instance type carrying func(A) A.
//
// The unit operation cannot be an interface method because it takes no
// receiver; each instance exposes it as a package-level constructor instead
// (reader.Pure). Writing pure for that constructor, implementations must
// satisfy, extensionally:
//
//	v.Ap(pure(identity)) ~ v
//	pure(a).Ap(pure(f)) ~ pure(f(a))
//
// The interchange and composition laws involve wrappers of higher-order
// functions, which this endomorphic signature cannot mention; they hold for
// each instance's package-level Ap and are checked there.
type Applicative[F any, FF any, A any] interface {
	Functor[F, A]
	Ap(ff FF) F
}

// Monad extends Applicative with FlatMap, which sequences a second wrapped
// computation built from the first one's value.
//
// Laws, extensionally, with pure as the instance's package-level constructor:
//
//	pure(a).FlatMap(f) ~ f(a)
//	m.FlatMap(pure) ~ m
//	m.FlatMap(f).FlatMap(g) ~ m.FlatMap(func(a) { return f(a).FlatMap(g) })
type Monad[F any, FF any, A any] interface {
	Applicative[F, FF, A]
	FlatMap(fn func(A) F) F
}

// Endo is an ordinary transformation of a single type, the canonical
// Composable instance under function composition.
//
// Example:
//
//	trim := algebra.Endo[string](strings.TrimSpace)
//	upper := algebra.Endo[string](strings.ToUpper)
//	fmt.Println(upper.Compose(trim)("  go  "))
type Endo[A any] func(A) A

// Identity returns the transformation that leaves its argument untouched. The
// receiver is ignored, so Identity works on the zero value.
func (Endo[A]) Identity() Endo[A] {
	return func(a A) A {
		return a
	}
}

// Compose returns the transformation that applies other first and the
// receiver to its result, matching mathematical order.
func (f Endo[A]) Compose(other Endo[A]) Endo[A] {
	return func(a A) A {
		return f(other(a))
	}
}

// ComposeAll folds any number of arrows into one, composing right-to-left so
// the last arrow runs first. With no arguments it returns the identity arrow.
//
// Example:
//
//	normalize := algebra.ComposeAll(upper, trim)
func ComposeAll[C Composable[C]](arrows ...C) C {
	var zero C
	return lo.Reduce(arrows, func(acc C, arrow C, _ int) C {
		return acc.Compose(arrow)
	}, zero.Identity())
}
