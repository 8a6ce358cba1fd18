// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// Typed adapters over the erased value plane.
//
// The engine moves Erased values through a container's primitives while
// user code stays typed. These helpers wrap typed functions into erased
// ones and recover typed values at the boundary. A wrapped function panics
// when fed a value of the wrong dynamic type; that indicates a mismatched
// container instantiation, not a recoverable condition.

// Fn wraps a typed unary function for use with Map, Lift1 and Apply.
func Fn[A, B any](f func(A) B) func(Erased) Erased {
	return func(a Erased) Erased { return f(a.(A)) }
}

// Fn2 wraps a typed binary function for use with Lift2.
func Fn2[A, B, C any](f func(A, B) C) func(Erased, Erased) Erased {
	return func(a, b Erased) Erased { return f(a.(A), b.(B)) }
}

// Fn3 wraps a typed ternary function for use with Lift3.
func Fn3[A, B, C, D any](f func(A, B, C) D) func(Erased, Erased, Erased) Erased {
	return func(a, b, c Erased) Erased { return f(a.(A), b.(B), c.(C)) }
}

// Fn4 wraps a typed 4-ary function for use with Lift4.
func Fn4[A, B, C, D, E any](f func(A, B, C, D) E) func(Erased, Erased, Erased, Erased) Erased {
	return func(a, b, c, d Erased) Erased { return f(a.(A), b.(B), c.(C), d.(D)) }
}

// Fn5 wraps a typed 5-ary function for use with Lift5.
func Fn5[A, B, C, D, E, F any](f func(A, B, C, D, E) F) func(Erased, Erased, Erased, Erased, Erased) Erased {
	return func(a, b, c, d, e Erased) Erased { return f(a.(A), b.(B), c.(C), d.(D), e.(E)) }
}

// Pred wraps a typed predicate for use with KeepIf.
func Pred[A any](p func(A) bool) func(Erased) bool {
	return func(a Erased) bool { return p(a.(A)) }
}

// Arr wraps a typed Kleisli arrow for use with Bind and Kleisli.
func Arr[M, A any](f func(A) M) func(Erased) M {
	return func(a Erased) M { return f(a.(A)) }
}

// Value recovers a typed value from the erased plane.
// Panics if the dynamic type of a is not A.
func Value[A any](a Erased) A { return a.(A) }
