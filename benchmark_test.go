// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend_test

import (
	"testing"

	"code.hybscloud.com/pend"
)

// BenchmarkPure measures pure construction and evaluation (baseline).
func BenchmarkPure(b *testing.B) {
	m := pend.Pure(42)
	for i := 0; i < b.N; i++ {
		_ = pend.Eval(m)
	}
}

// BenchmarkMap measures Map allocation.
func BenchmarkMap(b *testing.B) {
	m := pend.Map(pend.Pure(42), func(x int) int { return x * 2 })
	for i := 0; i < b.N; i++ {
		_ = pend.Eval(m)
	}
}

// BenchmarkBindChain measures allocation for Bind chain composition.
func BenchmarkBindChain(b *testing.B) {
	inc := func(x int) pend.Pend[int] {
		return pend.Pure(x + 1)
	}

	// Chain of 10 binds
	chain := pend.Bind(pend.Pure(0), func(x int) pend.Pend[int] {
		return pend.Bind(inc(x), func(x int) pend.Pend[int] {
			return pend.Bind(inc(x), func(x int) pend.Pend[int] {
				return pend.Bind(inc(x), func(x int) pend.Pend[int] {
					return pend.Bind(inc(x), func(x int) pend.Pend[int] {
						return pend.Bind(inc(x), func(x int) pend.Pend[int] {
							return pend.Bind(inc(x), func(x int) pend.Pend[int] {
								return pend.Bind(inc(x), func(x int) pend.Pend[int] {
									return pend.Bind(inc(x), func(x int) pend.Pend[int] {
										return inc(x)
									})
								})
							})
						})
					})
				})
			})
		})
	})

	for i := 0; i < b.N; i++ {
		_ = pend.Eval(chain)
	}
}

// BenchmarkThenChain measures allocation for Then chain composition.
// Then avoids the transformation function closure capture that Bind requires.
func BenchmarkThenChain(b *testing.B) {
	unit := pend.Pure(struct{}{})

	// Chain of 10 thens (no value passing, just sequencing)
	chain := pend.Then(unit, pend.Then(unit, pend.Then(unit, pend.Then(unit, pend.Then(unit,
		pend.Then(unit, pend.Then(unit, pend.Then(unit, pend.Then(unit,
			pend.Pure(42))))))))))

	for i := 0; i < b.N; i++ {
		_ = pend.Eval(chain)
	}
}

// BenchmarkVarGet measures a single cell read under the state handler.
func BenchmarkVarGet(b *testing.B) {
	m := pend.GetVar[int]()
	for i := 0; i < b.N; i++ {
		_ = pend.Eval(pend.EvalVar(0, m))
	}
}

// BenchmarkVarGetSet measures a get/set cycle under the state handler.
func BenchmarkVarGetSet(b *testing.B) {
	computation := pend.Bind(pend.GetVar[int](), func(x int) pend.Pend[int] {
		return pend.SetVar(x + 1)
	})

	for i := 0; i < b.N; i++ {
		_ = pend.Eval(pend.RunVarPair(0, computation))
	}
}

// BenchmarkVarMixed measures a mixed read/write/update sequence under the
// state handler.
func BenchmarkVarMixed(b *testing.B) {
	computation := pend.Bind(pend.GetVar[int](), func(x int) pend.Pend[int] {
		return pend.Bind(pend.SetVar(x+1), func(y int) pend.Pend[int] {
			return pend.Then(pend.UpdateVar(func(s int) int { return s * 2 }), pend.GetVar[int]())
		})
	})

	for i := 0; i < b.N; i++ {
		_ = pend.Eval(pend.RunVarPair(0, computation))
	}
}

// BenchmarkEnvAsk measures contextual reads answered by a single binding.
func BenchmarkEnvAsk(b *testing.B) {
	computation := pend.Bind(pend.Ask[int](), func(x int) pend.Pend[int] {
		return pend.Map(pend.Ask[int](), func(y int) int { return x + y })
	})

	for i := 0; i < b.N; i++ {
		_ = pend.Eval(pend.RunEnv(21, computation))
	}
}

// BenchmarkEmitCollect measures an emission chain under the collecting handler.
func BenchmarkEmitCollect(b *testing.B) {
	computation := pend.Then(pend.Emit(1), pend.Then(pend.Emit(2), pend.Emit(3)))

	for i := 0; i < b.N; i++ {
		_ = pend.Eval(pend.RunEmit[int](computation))
	}
}

// BenchmarkEmitForeach measures an emission chain under the per-value handler.
func BenchmarkEmitForeach(b *testing.B) {
	computation := pend.Then(pend.Emit(1), pend.Then(pend.Emit(2), pend.Emit(3)))
	sink := 0

	for i := 0; i < b.N; i++ {
		_ = pend.Eval(pend.RunForeach(computation, func(v int) pend.Pend[struct{}] {
			sink += v
			return pend.Pure(struct{}{})
		}))
	}
}

// BenchmarkRunFailSuccess measures the failure handler on the success path.
func BenchmarkRunFailSuccess(b *testing.B) {
	computation := pend.Pure(42)
	for i := 0; i < b.N; i++ {
		_ = pend.Eval(pend.RunFail[string](computation))
	}
}

// BenchmarkFailCatch measures aborting a computation and catching the error.
// The catch reifies at construction, so the chain is built inside the loop.
func BenchmarkFailCatch(b *testing.B) {
	for i := 0; i < b.N; i++ {
		c := pend.CatchFail(pend.Fail[int]("err"), func(string) pend.Pend[int] {
			return pend.Pure(0)
		})
		_ = pend.Eval(c)
	}
}

// BenchmarkRunSync measures the terminal runner over a single deferred thunk.
func BenchmarkRunSync(b *testing.B) {
	computation := pend.Delay(func() int { return 42 })
	for i := 0; i < b.N; i++ {
		_ = pend.RunSync(computation)
	}
}

// BenchmarkIsolateDiscard measures a discarding isolation round trip.
func BenchmarkIsolateDiscard(b *testing.B) {
	computation := pend.RunIsolate(pend.VarDiscard[int](), pend.SetVar(1))

	for i := 0; i < b.N; i++ {
		_ = pend.Eval(pend.RunVar(0, computation))
	}
}

// BenchmarkBracket measures the resource acquisition pattern on the success
// path. Bracket reifies at construction, so the chain is built inside the loop.
func BenchmarkBracket(b *testing.B) {
	release := func(int) pend.Pend[struct{}] {
		return pend.Pure(struct{}{})
	}
	use := func(r int) pend.Pend[int] {
		return pend.Pure(r * 2)
	}

	for i := 0; i < b.N; i++ {
		_ = pend.Eval(pend.Bracket[string](pend.Pure(42), release, use))
	}
}
