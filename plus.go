// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// MonadPlus extends the Basic algebra with a neutral element and an
// associative combination operator.
//
// Trusted laws, never checked:
//
//	Combine(Empty(), m)       ≡ m
//	Combine(m, Empty())       ≡ m
//	Combine(Combine(x, y), z) ≡ Combine(x, Combine(y, z))
type MonadPlus[M any] struct {
	Basic[M]

	// Empty is the neutral element. (mzero)
	Empty func() M
	// Combine merges two containers. (mplus, the infix combination form)
	Combine func(m, n M) M
}

// ExtendPlus layers the Plus contract over an already-derived Basic
// algebra. The Plus primitive is independent of the basic operations, so
// the two can come from the same concrete type or from separate ones.
func ExtendPlus[M any](b Basic[M], p Plus[M]) MonadPlus[M] {
	return MonadPlus[M]{Basic: b, Empty: p.Empty, Combine: p.Combine}
}

// KeepIf returns Return(a) when the predicate holds for a, and exactly
// Empty() otherwise. It is the building block for filtering binding
// chains:
//
//	p.Bind(m, func(x Erased) M { return p.KeepIf(pred, x) })
//
// keeps the elements of m that satisfy pred.
func (p MonadPlus[M]) KeepIf(pred func(Erased) bool, a Erased) M {
	if pred(a) {
		return p.Return(a)
	}
	return p.Empty()
}
