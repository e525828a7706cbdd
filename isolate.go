// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

// State isolation.
// An Isolate runs a computation against a private copy of some ambient state
// and decides afterwards what the outside world gets to see. The protocol has
// three phases: capture reads the ambient state, isolate runs the computation
// under a private handler seeded with that state, and restore propagates the
// verdict back to the ambient handler. Strategies differ only in the verdict:
// commit the last value, discard everything, or commit conditionally on how
// the computation failed.
//
// Phases pass values as [Erased]: capture feeds an erased state to its body,
// isolate turns an erased computation into an erased transformed computation,
// and restore unwraps the transform again. Strategies compose by pairing.

// Isolate is a three-phase isolation strategy. Strategies are immutable and
// freely reusable; [RunIsolate] applies one to a computation.
type Isolate struct {
	capture func(f func(state Erased) Pend[Erased]) Pend[Erased]
	isolate func(state Erased, v Pend[Erased]) Pend[Erased]
	restore func(v Pend[Erased]) Pend[Erased]
}

// NewIsolate assembles a strategy from its three phases. capture reads the
// ambient state and feeds it to the given body; isolate runs an erased
// computation against a private copy seeded with that state, returning the
// transformed computation; restore consumes the transform and re-raises or
// commits what the outside should observe.
func NewIsolate(
	capture func(f func(state Erased) Pend[Erased]) Pend[Erased],
	isolate func(state Erased, v Pend[Erased]) Pend[Erased],
	restore func(v Pend[Erased]) Pend[Erased],
) Isolate {
	return Isolate{capture: capture, isolate: isolate, restore: restore}
}

// RunIsolate runs c under the strategy: the ambient state is captured, c runs
// isolated from it, and the strategy's verdict is restored to the ambient
// handlers. Effects the strategy does not isolate flow through unchanged.
func RunIsolate[A any](iso Isolate, c Pend[A]) Pend[A] {
	erased := Map(c, asErased[A])
	r := iso.capture(func(state Erased) Pend[Erased] {
		return iso.restore(iso.isolate(state, erased))
	})
	return Map(r, func(v Erased) A { return v.(A) })
}

// AndThen composes two strategies. The combined capture pairs both states
// (first outside, second inside), isolation nests second inside first, and
// restore unwraps first then second, so each phase sees exactly the layer it
// captured.
func (first Isolate) AndThen(second Isolate) Isolate {
	return Isolate{
		capture: func(f func(Erased) Pend[Erased]) Pend[Erased] {
			return first.capture(func(s1 Erased) Pend[Erased] {
				return second.capture(func(s2 Erased) Pend[Erased] {
					return f(Pair[Erased, Erased]{Fst: s1, Snd: s2})
				})
			})
		},
		isolate: func(state Erased, v Pend[Erased]) Pend[Erased] {
			p := state.(Pair[Erased, Erased])
			return first.isolate(p.Fst, second.isolate(p.Snd, v))
		},
		restore: func(v Pend[Erased]) Pend[Erased] {
			return second.restore(first.restore(v))
		},
	}
}

// IdentityIsolate is the neutral strategy: no state is captured and the
// computation passes through untouched. It is a two-sided identity for
// [Isolate.AndThen].
func IdentityIsolate() Isolate {
	return Isolate{
		capture: func(f func(Erased) Pend[Erased]) Pend[Erased] { return f(unit) },
		isolate: func(_ Erased, v Pend[Erased]) Pend[Erased] { return v },
		restore: func(v Pend[Erased]) Pend[Erased] { return v },
	}
}

// VarLastUpdate isolates the S cell and commits its final value: the
// computation runs against a private cell seeded with the ambient value, and
// whatever the cell holds at the end is written back. Equivalent to running
// in place when the computation succeeds, but intermediate writes are never
// observable outside.
func VarLastUpdate[S any]() Isolate {
	return Isolate{
		capture: captureVar[S],
		isolate: func(state Erased, v Pend[Erased]) Pend[Erased] {
			private := Bind(v, func(a Erased) Pend[Pair[S, Erased]] {
				return Map(GetVar[S](), func(fin S) Pair[S, Erased] {
					return Pair[S, Erased]{Fst: fin, Snd: a}
				})
			})
			return Map(RunVar(state.(S), private), asErased[Pair[S, Erased]])
		},
		restore: func(v Pend[Erased]) Pend[Erased] {
			return Bind(v, func(t Erased) Pend[Erased] {
				p := t.(Pair[S, Erased])
				return Then(SetVar(p.Fst), Pure(p.Snd))
			})
		},
	}
}

// VarDiscard isolates the S cell and discards every write: the computation
// sees a private cell seeded with the ambient value, and the ambient cell is
// left exactly as captured.
func VarDiscard[S any]() Isolate {
	return Isolate{
		capture: captureVar[S],
		isolate: func(state Erased, v Pend[Erased]) Pend[Erased] {
			return RunVar(state.(S), v)
		},
		restore: func(v Pend[Erased]) Pend[Erased] { return v },
	}
}

// VarConditionalUpdate isolates the S cell and lets typed failures of type E
// decide the verdict: on success the final cell value commits; on a failure
// whose error satisfies pred the writes are rolled back and the failure
// re-raises; on a failure that does not satisfy pred, and on panics, the
// final value commits and the outcome still re-raises. Isolation settles the
// cell before the failure continues propagating outward.
func VarConditionalUpdate[S, E any](pred func(E) bool) Isolate {
	return Isolate{
		capture: captureVar[S],
		isolate: func(state Erased, v Pend[Erased]) Pend[Erased] {
			private := Bind(RunFail[E](v), func(r Result[E, Erased]) Pend[Pair[S, Result[E, Erased]]] {
				return Map(GetVar[S](), func(fin S) Pair[S, Result[E, Erased]] {
					return Pair[S, Result[E, Erased]]{Fst: fin, Snd: r}
				})
			})
			return Map(RunVar(state.(S), private), asErased[Pair[S, Result[E, Erased]]])
		},
		restore: func(v Pend[Erased]) Pend[Erased] {
			return Bind(v, func(t Erased) Pend[Erased] {
				p := t.(Pair[S, Result[E, Erased]])
				if e, ok := p.Snd.GetFailure(); ok && pred(e) {
					return Fail[Erased](e)
				}
				return Then(SetVar(p.Fst), FromResult(p.Snd))
			})
		},
	}
}

// captureVar reads the ambient S cell as the captured state.
func captureVar[S any](f func(Erased) Pend[Erased]) Pend[Erased] {
	return Bind(GetVar[S](), func(s S) Pend[Erased] { return f(s) })
}

func asErased[A any](a A) Erased { return a }
