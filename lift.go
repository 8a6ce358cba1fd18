// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// N-ary lifting. LiftN promotes an ordinary N-ary function to operate
// over N containers: the containers are bound strictly left to right, the
// function is applied once all N values are available, and the result is
// wrapped with Return. Effects observable through the container therefore
// occur in argument order 1..N.
//
// Every LiftN is expressed through Bind and Return alone; no independent
// primitive is involved.

// Lift1 promotes a unary function. (liftM)
// Observationally equivalent to Map.
func (b Basic[M]) Lift1(f func(Erased) Erased, m1 M) M {
	return b.Bind(m1, func(a1 Erased) M {
		return b.Return(f(a1))
	})
}

// Lift2 promotes a binary function. (liftM2)
func (b Basic[M]) Lift2(f func(Erased, Erased) Erased, m1, m2 M) M {
	return b.Bind(m1, func(a1 Erased) M {
		return b.Bind(m2, func(a2 Erased) M {
			return b.Return(f(a1, a2))
		})
	})
}

// Lift3 promotes a ternary function. (liftM3)
func (b Basic[M]) Lift3(f func(Erased, Erased, Erased) Erased, m1, m2, m3 M) M {
	return b.Bind(m1, func(a1 Erased) M {
		return b.Bind(m2, func(a2 Erased) M {
			return b.Bind(m3, func(a3 Erased) M {
				return b.Return(f(a1, a2, a3))
			})
		})
	})
}

// Lift4 promotes a 4-ary function. (liftM4)
func (b Basic[M]) Lift4(f func(Erased, Erased, Erased, Erased) Erased, m1, m2, m3, m4 M) M {
	return b.Bind(m1, func(a1 Erased) M {
		return b.Bind(m2, func(a2 Erased) M {
			return b.Bind(m3, func(a3 Erased) M {
				return b.Bind(m4, func(a4 Erased) M {
					return b.Return(f(a1, a2, a3, a4))
				})
			})
		})
	})
}

// Lift5 promotes a 5-ary function. (liftM5)
func (b Basic[M]) Lift5(f func(Erased, Erased, Erased, Erased, Erased) Erased, m1, m2, m3, m4, m5 M) M {
	return b.Bind(m1, func(a1 Erased) M {
		return b.Bind(m2, func(a2 Erased) M {
			return b.Bind(m3, func(a3 Erased) M {
				return b.Bind(m4, func(a4 Erased) M {
					return b.Bind(m5, func(a5 Erased) M {
						return b.Return(f(a1, a2, a3, a4, a5))
					})
				})
			})
		})
	})
}
