// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// Minimal-interface contracts.
//
// A concrete container type joins the derivation by implementing exactly
// one of the two capability interfaces below. Either one is necessary and
// sufficient: the engine derives the full operation set from whichever is
// supplied.

// Erased marks type-erased element values flowing through derived
// operations. Concrete types are recovered via type assertions at the API
// boundary (see [Fn], [Pred], [Arr], [Value]).
type Erased = any

// Sequencing is the bind-style minimal contract.
//
// Implementations must satisfy the monad laws, for all a, m, f, g:
//
//	Bind(Return(a), f)  ≡ f(a)                               left identity
//	Bind(m, Return)     ≡ m                                  right identity
//	Bind(Bind(m, f), g) ≡ Bind(m, func(x) Bind(f(x), g))     associativity
//
// The laws are trusted preconditions. The engine never checks them; a
// violating implementation degrades every derived operation silently.
type Sequencing[M any] interface {
	// Return lifts a pure value into the container. (return)
	Return(a Erased) M
	// Bind sequences the container with a function producing the next one. (>>=)
	Bind(m M, f func(Erased) M) M
}

// Flattening is the join-style minimal contract.
//
// The same monad laws apply, stated through the equivalence
// Bind(m, f) = Join(Map(f, m)). Map must additionally be functorial:
//
//	Map(id, m)        ≡ m
//	Map(g, Map(f, m)) ≡ Map(g∘f, m)
type Flattening[M any] interface {
	// Return lifts a pure value into the container. (return)
	Return(a Erased) M
	// Map applies a pure function to every element. (fmap)
	Map(f func(Erased) Erased, m M) M
	// Join collapses one level of nesting. The elements of mm must
	// themselves be M values; Join is the only operation that assumes so.
	Join(mm M) M
}

// Plus is the optional monoid-like extension contract, independent of the
// basic algebra.
//
// Trusted laws: Combine is associative and Empty is its two-sided identity.
type Plus[M any] interface {
	// Empty is the neutral element. (mzero)
	Empty() M
	// Combine merges two containers. (mplus)
	Combine(m, n M) M
}
