// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

// Contextual read effect.
// Ask[R] suspends until an enclosing env handler provides a [TypeMap] that
// can answer the request; the value itself is pulled out of the map by the
// suspension's continuation. Handlers discharge only the requests their map
// satisfies and rotate past the rest, so partial provision nests: the
// innermost handler answers what it can and outer handlers answer the rest.

// EnvEffect is the effect family of contextual reads, parameterized by the
// requested type.
type EnvEffect struct{}

// EnvTag returns the contextual-read channel tag for requested type R.
func EnvTag[R any]() Tag { return ParamTag[EnvEffect, R]() }

// Read is the payload of a contextual-read suspension. The requested type is
// the parameter of the suspension's tag.
type Read struct{}

var envFamily = ParamTag[EnvEffect, Never]()

// Ask suspends on a contextual read for R. The handler resumes with its full
// TypeMap and the continuation extracts the R binding, so one provided value
// can answer any number of asks.
func Ask[R any]() Pend[R] {
	return Map(Suspend[TypeMap](EnvTag[R](), Read{}), GetAs[R])
}

// Use runs f on the contextual R value.
func Use[R, A any](f func(R) Pend[A]) Pend[A] {
	return Bind(Ask[R](), f)
}

// RunEnv discharges contextual reads of c that a single R binding satisfies.
func RunEnv[R, A any](value R, c Pend[A]) Pend[A] {
	return RunEnvMap(TypeMapOf(value), c)
}

// RunEnvMap discharges the contextual reads of c that m satisfies, resuming
// each with m. Satisfiability uses the map's subtype-aware lookup: a map
// holding a concrete binding answers asks for an interface it implements.
// Requests m cannot answer stay pending for enclosing env handlers.
func RunEnvMap[A any](m TypeMap, c Pend[A]) Pend[A] {
	return handleMatch(func(t Tag) bool {
		if !sameFamily(t, envFamily) {
			return false
		}
		p, _ := t.Param()
		return m.Has(p)
	}, func(_ Erased, resume func(Erased) Pend[A]) Pend[A] {
		return resume(m)
	}, c)
}
