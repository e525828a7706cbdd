// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

// Monad operations for suspended computations.
//
// Minimal definition: Pure (unit) and Bind are necessary and sufficient.
// Map and Then are derived operations kept as optimizations to avoid
// intermediate Pure wrappers.

// Bind sequences two computations (monadic bind).
// When m is done, f runs immediately on its value and Bind returns f's
// result. When m is suspended, f is composed into the continuation, so the
// suspension surfaces first and f runs once a handler resumes it.
func Bind[A, B any](m Pend[A], f func(A) Pend[B]) Pend[B] {
	if m.sus == nil {
		return f(m.value)
	}
	s := m.sus
	return suspended(s.tag, s.input, func(v Erased) Pend[B] {
		return Bind(s.k(v), f)
	})
}

// Map applies a pure function to the result of a computation.
//
// Map is equivalent to Bind(m, compose(Pure, f)) but skips the intermediate
// Pure, making it the preferred choice when the transformation itself
// produces no effects.
func Map[A, B any](m Pend[A], f func(A) B) Pend[B] {
	if m.sus == nil {
		return Pure(f(m.value))
	}
	s := m.sus
	return suspended(s.tag, s.input, func(v Erased) Pend[B] {
		return Map(s.k(v), f)
	})
}

// Then sequences two computations, discarding the first value.
// More direct than Bind when the second computation does not depend on the
// first result.
func Then[A, B any](m Pend[A], n Pend[B]) Pend[B] {
	if m.sus == nil {
		return n
	}
	s := m.sus
	return suspended(s.tag, s.input, func(v Erased) Pend[B] {
		return Then(s.k(v), n)
	})
}
