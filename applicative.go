// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// Applicative and sequencing operations derived from the Basic algebra.
// Each is defined purely in terms of the four primitives, so a container's
// own semantics (failure, nondeterminism, suspension) propagate unchanged.
// Container arguments are always consumed left to right.
//
// The operator symbols in the doc comments name the conventional infix
// forms; they are aliases, not distinct semantics.

// Apply sequences a container of functions with a container of
// arguments. (<*>)
//
// The elements of mf must have dynamic type func(Erased) Erased (see [Fn]).
// The function value is extracted first, then the argument.
func (b Basic[M]) Apply(mf, ma M) M {
	return b.Bind(mf, func(f Erased) M {
		fn := f.(func(Erased) Erased)
		return b.Bind(ma, func(a Erased) M {
			return b.Return(fn(a))
		})
	})
}

// ApplyTo is Apply with the parameters flipped. (<**> as reversed apply)
// The function container is still consumed first.
func (b Basic[M]) ApplyTo(ma, mf M) M {
	return b.Apply(mf, ma)
}

// Replace substitutes a constant for every element of mb, keeping its
// shape and effects. (<$)
func (b Basic[M]) Replace(a Erased, mb M) M {
	return b.Map(func(Erased) Erased { return a }, mb)
}

// Then sequences two containers, discarding the first result. (*>)
func (b Basic[M]) Then(m1, m2 M) M {
	return b.Bind(m1, func(Erased) M { return m2 })
}

// First sequences two containers, keeping the first result. (<*)
// Both containers are consumed, in order; only the second result is
// dropped.
func (b Basic[M]) First(m1, m2 M) M {
	return b.Bind(m1, func(a Erased) M {
		return b.Bind(m2, func(Erased) M {
			return b.Return(a)
		})
	})
}

// Void discards the value, retaining the container's shape and effects.
// The result element is the erased unit value struct{}{}.
func (b Basic[M]) Void(m M) M {
	return b.Map(func(Erased) Erased { return struct{}{} }, m)
}
