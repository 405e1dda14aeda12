// Package fp provides lightweight functional composition helpers for Go.
//
// Example:
//
//	value := fp.Pipe("go",
//		func(s string) string { return strings.ToUpper(s) },
//		func(s string) string { return s + "!" },
//	)
package fp

// Identity returns the supplied value unchanged. As a function value it is the
// two-sided neutral element of Compose, Compose2 and Compose3.
//
// Example:
//
//	value := Identity(42)
func Identity[T any](v T) T {
	return v
}

// Constant returns a function that always returns v.
//
// Example:
//
//	getDefault := Constant(time.Minute)
//	fmt.Println(getDefault())
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Const returns a one-argument function that ignores its argument and always
// returns v. The first type parameter names the ignored argument type, so it
// usually has to be supplied explicitly.
//
// Example:
//
//	statusOf := Const[string](200)
//	code := statusOf("anything")
func Const[B any, A any](v A) func(B) A {
	return func(B) A {
		return v
	}
}

// Pipe applies a sequence of functions to value. All functions must accept and
// return the same type.
//
// Example:
//
//	result := Pipe(2,
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 1 },
//	)
func Pipe[T any](value T, fns ...func(T) T) T {
	result := value
	for _, fn := range fns {
		result = fn(result)
	}
	return result
}

// Compose composes functions in right-to-left order: the last function runs
// first, matching mathematical notation.
//
// Example:
//
//	fn := Compose(
//		func(n int) int { return n * 2 },
//		func(n int) int { return n + 3 },
//	)
//	value := fn(5)
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		result := value
		for i := len(fns) - 1; i >= 0; i-- {
			result = fns[i](result)
		}
		return result
	}
}

// Compose2 composes two functions of possibly different types in right-to-left
// order. Compose2(g, f) applies f first and g to its output, so it reads like
// g after f.
//
// Example:
//
//	length := func(s string) int { return len(s) }
//	double := func(n int) int { return n * 2 }
//	fn := Compose2(double, length)
//	value := fn("gopher")
func Compose2[A any, B any, C any](g func(B) C, f func(A) B) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Compose3 composes three functions in right-to-left order, applying f, then
// g, then h.
//
// Example:
//
//	fn := Compose3(
//		func(n int) string { return strconv.Itoa(n) },
//		func(n int) int { return n + 1 },
//		func(s string) int { return len(s) },
//	)
//	value := fn("gopher")
func Compose3[A any, B any, C any, D any](h func(C) D, g func(B) C, f func(A) B) func(A) D {
	return func(a A) D {
		return h(g(f(a)))
	}
}

// Curry converts a binary function into its curried form.
//
// Example:
//
//	add := func(a, b int) int { return a + b }
//	curried := Curry(add)
//	addFive := curried(5)
//	result := addFive(3)
func Curry[A any, B any, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}

// Uncurry converts a curried function back into its binary form. It is the
// inverse of Curry.
//
// Example:
//
//	add := Uncurry(func(a int) func(int) int {
//		return func(b int) int { return a + b }
//	})
//	result := add(2, 3)
func Uncurry[A any, B any, C any](fn func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return fn(a)(b)
	}
}

// Flip swaps the arguments of a binary function.
//
// Example:
//
//	div := func(a, b float64) float64 { return a / b }
//	divInto := Flip(div)
//	half := divInto(2, 1)
func Flip[A any, B any, C any](fn func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return fn(a, b)
	}
}
