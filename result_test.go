// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/pend"
)

func TestResultSuccess(t *testing.T) {
	r := pend.Success[string](42)
	if !r.IsSuccess() || r.IsFailure() || r.IsPanic() || r.IsError() {
		t.Fatal("wrong predicates for Success")
	}
	v, ok := r.Get()
	if !ok || v != 42 {
		t.Fatalf("got (%d, %v), want (42, true)", v, ok)
	}
	if _, ok := r.GetFailure(); ok {
		t.Fatal("Success should have no failure")
	}
	if _, ok := r.GetPanic(); ok {
		t.Fatal("Success should have no panic")
	}
}

func TestResultFailure(t *testing.T) {
	r := pend.Failure[int]("busted")
	if r.IsSuccess() || !r.IsFailure() || r.IsPanic() || !r.IsError() {
		t.Fatal("wrong predicates for Failure")
	}
	e, ok := r.GetFailure()
	if !ok || e != "busted" {
		t.Fatalf("got (%q, %v), want (busted, true)", e, ok)
	}
	if _, ok := r.Get(); ok {
		t.Fatal("Failure should have no value")
	}
}

func TestResultPanicked(t *testing.T) {
	cause := errors.New("oops")
	r := pend.Panicked[string, int](cause)
	if r.IsSuccess() || r.IsFailure() || !r.IsPanic() || !r.IsError() {
		t.Fatal("wrong predicates for Panicked")
	}
	c, ok := r.GetPanic()
	if !ok || c != cause {
		t.Fatalf("got (%v, %v), want (%v, true)", c, ok, cause)
	}
}

func TestResultAsError(t *testing.T) {
	cause := errors.New("boom")
	if err, ok := pend.Panicked[string, int](cause).AsError(); !ok || err != cause {
		t.Fatalf("got (%v, %v), want (%v, true)", err, ok, cause)
	}
	typed := errors.New("typed")
	if err, ok := pend.Failure[int](typed).AsError(); !ok || err != typed {
		t.Fatalf("got (%v, %v), want (%v, true)", err, ok, typed)
	}
	if _, ok := pend.Failure[int]("not an error").AsError(); ok {
		t.Fatal("non-error failure type should not fold to error")
	}
	if _, ok := pend.Success[error](1).AsError(); ok {
		t.Fatal("Success should not fold to error")
	}
}

func TestMatchResult(t *testing.T) {
	onSuccess := func(v int) string { return "ok" }
	onFailure := func(e string) string { return "fail:" + e }
	onPanic := func(err error) string { return "panic:" + err.Error() }

	if got := pend.MatchResult(pend.Success[string](1), onSuccess, onFailure, onPanic); got != "ok" {
		t.Fatalf("got %q, want %q", got, "ok")
	}
	if got := pend.MatchResult(pend.Failure[int]("x"), onSuccess, onFailure, onPanic); got != "fail:x" {
		t.Fatalf("got %q, want %q", got, "fail:x")
	}
	r := pend.Panicked[string, int](errors.New("y"))
	if got := pend.MatchResult(r, onSuccess, onFailure, onPanic); got != "panic:y" {
		t.Fatalf("got %q, want %q", got, "panic:y")
	}
}

func TestMapResult(t *testing.T) {
	double := func(v int) int { return v * 2 }
	if v, _ := pend.MapResult(pend.Success[string](21), double).Get(); v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
	r := pend.MapResult(pend.Failure[int]("e"), double)
	if e, ok := r.GetFailure(); !ok || e != "e" {
		t.Fatal("failure should pass through MapResult")
	}
	p := pend.MapResult(pend.Panicked[string, int](errors.New("z")), double)
	if !p.IsPanic() {
		t.Fatal("panic should pass through MapResult")
	}
}

func TestFlatMapResult(t *testing.T) {
	half := func(v int) pend.Result[string, int] {
		if v%2 != 0 {
			return pend.Failure[int]("odd")
		}
		return pend.Success[string](v / 2)
	}
	if v, _ := pend.FlatMapResult(pend.Success[string](10), half).Get(); v != 5 {
		t.Fatalf("got %d, want 5", v)
	}
	if e, _ := pend.FlatMapResult(pend.Success[string](3), half).GetFailure(); e != "odd" {
		t.Fatalf("got %q, want %q", e, "odd")
	}
	if !pend.FlatMapResult(pend.Failure[int]("prior"), half).IsFailure() {
		t.Fatal("prior failure should pass through")
	}
}

func TestMapFailure(t *testing.T) {
	r := pend.MapFailure(pend.Failure[int]("short"), func(e string) int { return len(e) })
	if e, ok := r.GetFailure(); !ok || e != 5 {
		t.Fatalf("got (%d, %v), want (5, true)", e, ok)
	}
	s := pend.MapFailure(pend.Success[string](7), func(e string) int { return 0 })
	if v, _ := s.Get(); v != 7 {
		t.Fatalf("got %d, want 7", v)
	}
}

func TestResultString(t *testing.T) {
	if got := pend.Success[string](42).String(); got != "Success(42)" {
		t.Fatalf("got %q, want %q", got, "Success(42)")
	}
	if got := pend.Failure[int]("e").String(); got != "Failure(e)" {
		t.Fatalf("got %q, want %q", got, "Failure(e)")
	}
	if got := pend.Panicked[string, int](errors.New("c")).String(); got != "Panicked(c)" {
		t.Fatalf("got %q, want %q", got, "Panicked(c)")
	}
}
