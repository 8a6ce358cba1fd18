// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// Kleisli composition of container-returning functions.

// Kleisli composes two Kleisli arrows left to right. (>=>)
//
//	Kleisli(f, g) = func(a) Bind(f(a), g)
//
// Composition is associative: Kleisli(Kleisli(f, g), h) behaves
// identically to Kleisli(f, Kleisli(g, h)).
func (b Basic[M]) Kleisli(f, g func(Erased) M) func(Erased) M {
	return func(a Erased) M {
		return b.Bind(f(a), g)
	}
}

// KleisliFlip composes two Kleisli arrows right to left. (<=<)
// KleisliFlip(g, f) is Kleisli(f, g): the same resulting function with
// the arguments flipped.
func (b Basic[M]) KleisliFlip(g, f func(Erased) M) func(Erased) M {
	return b.Kleisli(f, g)
}
