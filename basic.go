// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// Basic algebra normalization.
//
// Minimal definition: either {Return, Bind} or {Return, Map, Join} is
// necessary and sufficient. The adapters below fill in the missing
// operations with the canonical law-preserving definitions, so that the
// exposed quadruple is identical whichever contract the container entered
// through.

// Basic is the normalized algebra: Return, Bind, Join and Map, all present
// regardless of which minimal contract was supplied.
//
// The four operations are mutually coherent:
//
//	Bind(m, f) ≡ Join(Map(f, m))
//	Join(mm)   ≡ Bind(mm, identity)
//
// Basic is a plain value, not an interface: derivers return it fully
// populated, and every further operation (Apply, Then, Lift2, ...) is a
// method on it defined purely in terms of these four fields.
type Basic[M any] struct {
	// Return lifts a pure value into the container. (return)
	Return func(a Erased) M
	// Bind sequences the container with a function producing the next one. (>>=)
	Bind func(m M, f func(Erased) M) M
	// Join collapses one level of nesting. (join)
	Join func(mm M) M
	// Map applies a pure function to every element. (fmap)
	Map func(f func(Erased) Erased, m M) M
}

// joinArrow is the identity Kleisli arrow used to derive Join from Bind.
// Named generic function produces a static funcval per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
func joinArrow[M any](x Erased) M { return x.(M) }

// FromSequencing normalizes a bind-style contract into the Basic algebra.
//
// Derived operations:
//
//	Map(f, m) = Bind(m, func(x) Return(f(x)))
//	Join(mm)  = Bind(mm, identity)
func FromSequencing[M any](s Sequencing[M]) Basic[M] {
	return Basic[M]{
		Return: s.Return,
		Bind:   s.Bind,
		Join: func(mm M) M {
			return s.Bind(mm, joinArrow[M])
		},
		Map: func(f func(Erased) Erased, m M) M {
			return s.Bind(m, func(x Erased) M {
				return s.Return(f(x))
			})
		},
	}
}

// FromFlattening normalizes a join-style contract into the Basic algebra.
//
// Derived operation:
//
//	Bind(m, f) = Join(Map(f, m))
func FromFlattening[M any](fl Flattening[M]) Basic[M] {
	return Basic[M]{
		Return: fl.Return,
		Join:   fl.Join,
		Map:    fl.Map,
		Bind: func(m M, f func(Erased) M) M {
			return fl.Join(fl.Map(func(x Erased) Erased { return f(x) }, m))
		},
	}
}
