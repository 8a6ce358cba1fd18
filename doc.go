// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package monad derives the full monadic operation algebra from a minimal
// container contract.
//
// A concrete container type supplies one of two minimal contracts, and the
// engine mechanically produces everything else: functorial mapping,
// applicative sequencing, Kleisli composition, n-ary lifting and an
// optional monoid-like plus extension. The derived surface is identical
// whichever contract the container entered through; that uniformity is the
// compatibility guarantee callers may rely on.
//
// # Contracts
//
// A container picks exactly one entry point:
//
//   - [Sequencing]: Return and Bind (the bind-style contract)
//   - [Flattening]: Return, Map and Join (the join-style contract)
//
// Both carry the monad laws as trusted preconditions (left identity, right
// identity, associativity of Bind). The engine never verifies them at
// runtime; a law-violating primitive degrades every derived operation
// silently.
//
// A container may additionally implement [Plus] (Empty and Combine) to
// enable the plus extension.
//
// # Erased Value Plane
//
// Go type parameters cannot range over the container constructor itself,
// so the engine is generic in the instantiated container type M only, and
// element values travel as [Erased] (an alias of any). Typed user code
// crosses the boundary through the adapters [Fn] through [Fn5], [Pred],
// [Arr] and [Value], which recover concrete types by assertion.
//
// # Normalization
//
// Either contract is normalized into the [Basic] algebra, a struct holding
// the canonical quadruple Return, Bind, Join, Map:
//
//   - [FromSequencing]: Map(f, m) = Bind(m, func(x) Return(f(x))),
//     Join(mm) = Bind(mm, identity)
//   - [FromFlattening]: Bind(m, f) = Join(Map(f, m))
//   - [Derive]: probes the contracts by type assertion, Sequencing first;
//     panics when neither is implemented
//   - [TryDerive]: non-panicking variant of Derive
//
// A type implementing both contracts is normalized through the Sequencing
// path only, so there is exactly one canonical derivation per type.
//
// # Derived Operations
//
// All further operations are methods on [Basic], defined purely in terms
// of the four primitives. Multi-argument operations consume their
// container arguments strictly left to right. Operator symbols in the doc
// comments name the conventional infix forms; the Go surface is named
// methods only.
//
//   - [Basic.Apply]: applicative sequencing (<*>), function side first
//   - [Basic.ApplyTo]: reversed apply, parameters flipped
//   - [Basic.Replace]: substitute a constant, keep shape and effects (<$)
//   - [Basic.Then]: sequence, discard the first result (*>)
//   - [Basic.First]: sequence, keep the first result (<*)
//   - [Basic.Void]: discard the value, keep shape and effects
//   - [Basic.Kleisli]: left-to-right Kleisli composition (>=>)
//   - [Basic.KleisliFlip]: right-to-left Kleisli composition (<=<)
//
// # Lifting
//
// [Basic.Lift1] through [Basic.Lift5] promote ordinary n-ary functions to
// operate over containers. Arguments are bound in order 1..N and the
// function is applied once, after all values are available.
//
// # Plus Extension
//
// [ExtendPlus] layers a [Plus] primitive over a derived [Basic] to obtain
// [MonadPlus], adding the neutral element, the combination operator and
// [MonadPlus.KeepIf], the building block for filtering binding chains.
// KeepIf returns Return(a) when the predicate holds and exactly Empty()
// otherwise.
//
// # Errors
//
// Every derived operation is total; failure semantics, if any, live inside
// the concrete container's primitives and propagate unchanged. The one
// panic in this package is [Derive] on a value implementing neither
// contract, a programmer error with [TryDerive] as the checked variant.
//
// # Example
//
//	type option struct {
//		ok  bool
//		val monad.Erased
//	}
//
//	type optionMonad struct{}
//
//	func (optionMonad) Return(a monad.Erased) option { return option{ok: true, val: a} }
//	func (optionMonad) Bind(m option, f func(monad.Erased) option) option {
//		if !m.ok {
//			return option{}
//		}
//		return f(m.val)
//	}
//
//	alg := monad.Derive[option](optionMonad{})
//	sum := alg.Lift2(monad.Fn2(func(x, y int) int { return x + y }),
//		optionMonad{}.Return(2), optionMonad{}.Return(3))
//	// sum == option{ok: true, val: 5}
package monad
