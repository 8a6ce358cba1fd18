// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

import "fmt"

// Derive normalizes an arbitrary contract implementation into the Basic
// algebra. Capabilities are probed by type assertion in a fixed order:
// Sequencing first, then Flattening. A type that implements both contracts
// is normalized through the Sequencing path only; its Map and Join methods
// are never consulted. The fixed probe order guarantees a single canonical
// derivation for such types instead of two divergent ones.
//
// Derive panics if impl satisfies neither contract. Use TryDerive for the
// non-panicking variant.
func Derive[M any](impl any) Basic[M] {
	b, ok := TryDerive[M](impl)
	if !ok {
		panic(fmt.Sprintf("monad: %T implements neither Sequencing nor Flattening", impl))
	}
	return b
}

// TryDerive attempts to normalize impl into the Basic algebra.
// Returns (zero, false) if impl satisfies neither minimal contract.
func TryDerive[M any](impl any) (Basic[M], bool) {
	if s, ok := impl.(Sequencing[M]); ok {
		return FromSequencing(s), true
	}
	if fl, ok := impl.(Flattening[M]); ok {
		return FromFlattening(fl), true
	}
	var zero Basic[M]
	return zero, false
}
