// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad_test

import (
	"code.hybscloud.com/monad"
)

// Concrete containers used as instantiations across the tests.
// The engine itself ships none; each container here exists to exercise one
// derivation path or one observable behavior.

// option is an optional value, the bind-style instantiation.
type option struct {
	ok  bool
	val monad.Erased
}

func some(a monad.Erased) option { return option{ok: true, val: a} }

var none = option{}

// optionMonad implements Sequencing and Plus for option.
type optionMonad struct{}

func (optionMonad) Return(a monad.Erased) option { return some(a) }

func (optionMonad) Bind(m option, f func(monad.Erased) option) option {
	if !m.ok {
		return none
	}
	return f(m.val)
}

func (optionMonad) Empty() option { return none }

// Combine is left-biased: the first present value wins.
func (optionMonad) Combine(m, n option) option {
	if m.ok {
		return m
	}
	return n
}

// list is a nondeterminism container, the join-style instantiation.
type list []monad.Erased

// listMonad implements Flattening and Plus for list.
type listMonad struct{}

func (listMonad) Return(a monad.Erased) list { return list{a} }

func (listMonad) Map(f func(monad.Erased) monad.Erased, m list) list {
	if m == nil {
		return nil
	}
	out := make(list, len(m))
	for i, x := range m {
		out[i] = f(x)
	}
	return out
}

func (listMonad) Join(mm list) list {
	var out list
	for _, x := range mm {
		out = append(out, x.(list)...)
	}
	return out
}

func (listMonad) Empty() list { return nil }

func (listMonad) Combine(m, n list) list {
	if len(m) == 0 {
		return n
	}
	if len(n) == 0 {
		return m
	}
	out := make(list, 0, len(m)+len(n))
	out = append(out, m...)
	return append(out, n...)
}

// listSeq implements Sequencing for list, so the same container can enter
// the engine through either path.
type listSeq struct{}

func (listSeq) Return(a monad.Erased) list { return list{a} }

func (listSeq) Bind(m list, f func(monad.Erased) list) list {
	var out list
	for _, x := range m {
		out = append(out, f(x)...)
	}
	return out
}

// dualList implements both contracts at once. Its Flattening methods flip
// the flag, making the Sequencing-first tie-break of Derive observable.
type dualList struct {
	flatteningUsed *bool
}

func (dualList) Return(a monad.Erased) list { return list{a} }

func (dualList) Bind(m list, f func(monad.Erased) list) list {
	return listSeq{}.Bind(m, f)
}

func (d dualList) Map(f func(monad.Erased) monad.Erased, m list) list {
	*d.flatteningUsed = true
	return listMonad{}.Map(f, m)
}

func (d dualList) Join(mm list) list {
	*d.flatteningUsed = true
	return listMonad{}.Join(mm)
}

// traced pairs a value with an ordered effect log, for observing the
// left-to-right evaluation order of derived operations.
type traced struct {
	val monad.Erased
	log []string
}

// emit is a traced value carrying a single log entry.
func emit(a monad.Erased, entry string) traced {
	return traced{val: a, log: []string{entry}}
}

// mergeLogs concatenates two logs, preserving nil when both are empty.
func mergeLogs(a, b []string) []string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// traceMonad implements Sequencing for traced.
type traceMonad struct{}

func (traceMonad) Return(a monad.Erased) traced { return traced{val: a} }

func (traceMonad) Bind(m traced, f func(monad.Erased) traced) traced {
	next := f(m.val)
	return traced{val: next.val, log: mergeLogs(m.log, next.log)}
}

// Shared derived algebras. Every test file works from these.
var (
	optAlg   = monad.Derive[option](optionMonad{})
	optPlus  = monad.ExtendPlus[option](optAlg, optionMonad{})
	listAlg  = monad.Derive[list](listMonad{})
	listPlus = monad.ExtendPlus[list](listAlg, listMonad{})
	traceAlg = monad.Derive[traced](traceMonad{})
)

// sameList compares lists elementwise, treating nil and empty as equal.
func sameList(a, b list) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
