// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend_test

import (
	"strconv"
	"strings"
	"testing"

	"code.hybscloud.com/pend"
)

func emitAll[V any](vs ...V) pend.Pend[struct{}] {
	c := pend.Pure(struct{}{})
	for i := len(vs) - 1; i >= 0; i-- {
		c = pend.Then(pend.Emit(vs[i]), c)
	}
	return c
}

func TestRunForeachInOrder(t *testing.T) {
	var got []int
	c := pend.RunForeach(emitAll(1, 2, 3), func(v int) pend.Pend[struct{}] {
		got = append(got, v)
		return pend.Pure(struct{}{})
	})
	pend.Eval(c)
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("got %v, want [1 2 3]", got)
	}
}

func TestRunForeachFoldsHandlerEffects(t *testing.T) {
	// The handler's own computation sequences before the emitter resumes:
	// a deferred side effect per emission interleaves with the program's
	// deferred effects in program order.
	var log []string
	note := func(s string) pend.Pend[struct{}] {
		return pend.Delay(func() struct{} {
			log = append(log, s)
			return struct{}{}
		})
	}
	program := pend.Then(note("start"),
		pend.Then(pend.Emit(1),
			pend.Then(note("middle"),
				pend.Then(pend.Emit(2),
					note("end")))))
	handled := pend.RunForeach(program, func(v int) pend.Pend[struct{}] {
		return note("emit:" + strconv.Itoa(v))
	})
	pend.Eval(pend.RunDefer(handled))
	want := "start,emit:1,middle,emit:2,end"
	if got := strings.Join(log, ","); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRunDiscard(t *testing.T) {
	c := pend.Then(emitAll("x", "y"), pend.Pure(9))
	if v := pend.Eval(pend.RunDiscard[string](c)); v != 9 {
		t.Fatalf("got %d, want 9", v)
	}
}

func TestRunEmitCollects(t *testing.T) {
	c := pend.Then(emitAll(10, 20, 30), pend.Pure("done"))
	p := pend.Eval(pend.RunEmit[int](c))
	if len(p.Fst) != 3 || p.Fst[0] != 10 || p.Fst[1] != 20 || p.Fst[2] != 30 {
		t.Fatalf("got %v, want [10 20 30]", p.Fst)
	}
	if p.Snd != "done" {
		t.Fatalf("got %q, want %q", p.Snd, "done")
	}
}

func TestRunEmitNoEmissions(t *testing.T) {
	p := pend.Eval(pend.RunEmit[int](pend.Pure("quiet")))
	if len(p.Fst) != 0 {
		t.Fatalf("got %v, want no emissions", p.Fst)
	}
	if p.Snd != "quiet" {
		t.Fatalf("got %q, want %q", p.Snd, "quiet")
	}
}

func TestEmitChannelsByType(t *testing.T) {
	// Emissions of distinct types travel distinct channels.
	c := pend.Then(pend.Emit(1),
		pend.Then(pend.Emit("a"),
			pend.Then(pend.Emit(2), pend.Pure(struct{}{}))))
	ints := pend.RunEmit[int](c)
	p := pend.Eval(pend.RunEmit[string](ints))
	if len(p.Fst) != 1 || p.Fst[0] != "a" {
		t.Fatalf("got strings %v, want [a]", p.Fst)
	}
	if ip := p.Snd; len(ip.Fst) != 2 || ip.Fst[0] != 1 || ip.Fst[1] != 2 {
		t.Fatalf("got ints %v, want [1 2]", ip.Fst)
	}
}

func TestRunEmitDeepChain(t *testing.T) {
	// Collecting a long run of emissions is iterative.
	var chain func(n int) pend.Pend[int]
	chain = func(n int) pend.Pend[int] {
		if n == 0 {
			return pend.Pure(0)
		}
		return pend.Bind(pend.Emit(n), func(struct{}) pend.Pend[int] {
			return chain(n - 1)
		})
	}
	p := pend.Eval(pend.RunEmit[int](chain(100000)))
	if len(p.Fst) != 100000 {
		t.Fatalf("got %d emissions, want 100000", len(p.Fst))
	}
	if p.Fst[0] != 100000 || p.Fst[99999] != 1 {
		t.Fatalf("got ends (%d, %d), want (100000, 1)", p.Fst[0], p.Fst[99999])
	}
}

func TestRunEmitSnapshotAcrossRotation(t *testing.T) {
	// A foreign suspension resumed twice replays collection from its own
	// snapshot: neither branch sees the other's emissions.
	program := pend.Then(pend.Emit("a"),
		pend.Then(pend.Suspend[int](tickTag, tick{}),
			pend.Then(pend.Emit("b"), pend.Pure(0))))
	collected := pend.RunEmit[string](program)
	s := collected.Suspended()
	if s == nil || s.Tag() != tickTag {
		t.Fatal("tick should surface through the collector")
	}
	p1 := pend.Eval(s.Resume(0))
	p2 := pend.Eval(s.Resume(0))
	for _, p := range []pend.Pair[[]string, int]{p1, p2} {
		if got := strings.Join(p.Fst, ","); got != "a,b" {
			t.Fatalf("got %q, want %q", got, "a,b")
		}
	}
}
