// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package demo holds small reference programs wiring the pend effects
// together. Each program discharges its own domain effects and leaves only
// deferred side effects and failures for the driver's terminal runner.
package demo

import (
	"fmt"
	"strings"

	"code.hybscloud.com/pend"

	"code.hybscloud.com/pend/internal/driver"
)

// Programs returns the reference programs in menu order.
func Programs() []driver.Program {
	return []driver.Program{
		{Name: "counter", Description: "count to three with a mutable cell, emitting each step", Build: Counter},
		{Name: "greeting", Description: "greet using two contextual bindings", Build: Greeting},
		{Name: "ledger", Description: "post ledger entries, rolling back overdrafts", Build: Ledger},
		{Name: "pipeline", Description: "re-emit a token stream upper-cased and collect it", Build: Pipeline},
		{Name: "flaky", Description: "panic inside a deferred thunk, stopping a drain", Build: Flaky},
	}
}

// Counter increments a mutable cell three times, emits each count, and
// formats the collected counts in a deferred thunk.
func Counter() pend.Pend[string] {
	step := pend.Bind(pend.UpdateVar(func(n int) int { return n + 1 }), func(n int) pend.Pend[struct{}] {
		return pend.Emit(n)
	})
	body := pend.Then(step, pend.Then(step, step))
	counted := pend.RunVar(0, pend.RunEmit[int](body))
	return pend.Bind(counted, func(p pend.Pair[[]int, struct{}]) pend.Pend[string] {
		return pend.Delay(func() string { return fmt.Sprintf("counted %v", p.Fst) })
	})
}

// locale selects the greeting language. A named type keeps its contextual
// channel apart from the plain string holding the name.
type locale string

// Greeting reads a locale and a name from the context and greets accordingly.
func Greeting() pend.Pend[string] {
	body := pend.Use(func(loc locale) pend.Pend[string] {
		return pend.Map(pend.Ask[string](), func(name string) string {
			switch loc {
			case "ja":
				return "こんにちは、" + name
			default:
				return "hello, " + name
			}
		})
	})
	return pend.RunEnvMap(pend.TypeMapOf2(locale("en"), "world"), body)
}

type insufficientFunds struct {
	Balance, Delta int
}

func (e insufficientFunds) Error() string {
	return fmt.Sprintf("insufficient funds: balance %d, delta %d", e.Balance, e.Delta)
}

// Ledger posts a series of entries against a balance cell. Each entry runs
// under a conditional isolation: an entry that would overdraw rolls back and
// its failure is caught and emitted as a rejection note instead of aborting
// the whole program.
func Ledger() pend.Pend[string] {
	post := func(delta int) pend.Pend[struct{}] {
		entry := pend.Bind(pend.GetVar[int](), func(bal int) pend.Pend[int] {
			if bal+delta < 0 {
				return pend.Fail[int](insufficientFunds{Balance: bal, Delta: delta})
			}
			return pend.SetVar(bal + delta)
		})
		guarded := pend.RunIsolate(
			pend.VarConditionalUpdate[int, insufficientFunds](func(insufficientFunds) bool { return true }),
			entry,
		)
		posted := pend.Map(guarded, func(int) struct{} { return struct{}{} })
		return pend.CatchFail(posted, func(e insufficientFunds) pend.Pend[struct{}] {
			return pend.Emit(e.Error())
		})
	}
	body := pend.Then(post(40), pend.Then(post(-200), pend.Then(post(-30), pend.GetVar[int]())))
	run := pend.RunVar(100, pend.RunEmit[string](body))
	return pend.Map(run, func(p pend.Pair[[]string, int]) string {
		if len(p.Fst) == 0 {
			return fmt.Sprintf("balance %d, no entries rejected", p.Snd)
		}
		return fmt.Sprintf("balance %d, rejected: %s", p.Snd, strings.Join(p.Fst, "; "))
	})
}

// processed marks tokens that went through the pipeline stage, so the staged
// emissions travel their own channel.
type processed string

// Pipeline re-emits a token stream upper-cased on a second channel and
// collects the staged tokens.
func Pipeline() pend.Pend[string] {
	source := pend.Then(pend.Emit("alpha"), pend.Then(pend.Emit("beta"), pend.Emit("gamma")))
	staged := pend.RunForeach(source, func(w string) pend.Pend[struct{}] {
		return pend.Emit(processed(strings.ToUpper(w)))
	})
	collected := pend.RunEmit[processed](staged)
	return pend.Map(collected, func(p pend.Pair[[]processed, struct{}]) string {
		parts := make([]string, len(p.Fst))
		for i, w := range p.Fst {
			parts[i] = string(w)
		}
		return strings.Join(parts, " ")
	})
}

// Flaky panics inside a deferred thunk. The panic surfaces as a Panicked
// outcome, which stops a driver drain.
func Flaky() pend.Pend[string] {
	return pend.Delay(func() string {
		panic("flaky hardware: bus disconnected")
	})
}
