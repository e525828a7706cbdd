// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

import "fmt"

type resultKind uint8

const (
	successKind resultKind = iota
	failureKind
	panicKind
)

// Result represents the outcome of a computation whose typed failures have
// been handled: Success carries a value of type A, Failure carries an
// expected error of type E, and Panicked carries an unexpected cause.
// Failure and Panicked together form the error side of the outcome.
type Result[E, A any] struct {
	kind  resultKind
	value A
	err   E
	cause error
}

// Success creates a successful outcome.
func Success[E, A any](a A) Result[E, A] {
	return Result[E, A]{kind: successKind, value: a}
}

// Failure creates a typed-failure outcome. The type parameters are ordered
// so that Failure[A](e) infers E from the argument.
func Failure[A, E any](e E) Result[E, A] {
	return Result[E, A]{kind: failureKind, err: e}
}

// Panicked creates an unexpected-failure outcome from a cause.
func Panicked[E, A any](cause error) Result[E, A] {
	return Result[E, A]{kind: panicKind, cause: cause}
}

// IsSuccess returns true if this is a Success outcome.
func (r Result[E, A]) IsSuccess() bool { return r.kind == successKind }

// IsFailure returns true if this is a typed Failure outcome.
func (r Result[E, A]) IsFailure() bool { return r.kind == failureKind }

// IsPanic returns true if this is a Panicked outcome.
func (r Result[E, A]) IsPanic() bool { return r.kind == panicKind }

// IsError returns true for Failure and Panicked outcomes alike.
func (r Result[E, A]) IsError() bool { return r.kind != successKind }

// Get returns the success value and true, or zero and false.
func (r Result[E, A]) Get() (A, bool) {
	if r.kind == successKind {
		return r.value, true
	}
	var zero A
	return zero, false
}

// GetFailure returns the typed error and true, or zero and false.
func (r Result[E, A]) GetFailure() (E, bool) {
	if r.kind == failureKind {
		return r.err, true
	}
	var zero E
	return zero, false
}

// GetPanic returns the panic cause and true, or nil and false.
func (r Result[E, A]) GetPanic() (error, bool) {
	if r.kind == panicKind {
		return r.cause, true
	}
	return nil, false
}

// AsError folds both error arms into Go's error: a Panicked outcome yields
// its cause, a Failure yields its typed error when E happens to be an error.
// ok is false for Success and for failures whose E is not an error.
func (r Result[E, A]) AsError() (error, bool) {
	switch r.kind {
	case panicKind:
		return r.cause, true
	case failureKind:
		if err, ok := any(r.err).(error); ok {
			return err, true
		}
		return nil, false
	default:
		return nil, false
	}
}

// String renders the outcome for logs and tests.
func (r Result[E, A]) String() string {
	switch r.kind {
	case failureKind:
		return fmt.Sprintf("Failure(%v)", r.err)
	case panicKind:
		return fmt.Sprintf("Panicked(%v)", r.cause)
	default:
		return fmt.Sprintf("Success(%v)", r.value)
	}
}

// MatchResult pattern matches on the outcome, calling exactly one branch.
func MatchResult[E, A, T any](r Result[E, A], onSuccess func(A) T, onFailure func(E) T, onPanic func(error) T) T {
	switch r.kind {
	case failureKind:
		return onFailure(r.err)
	case panicKind:
		return onPanic(r.cause)
	default:
		return onSuccess(r.value)
	}
}

// MapResult applies f to the success value, passing errors through.
func MapResult[E, A, B any](r Result[E, A], f func(A) B) Result[E, B] {
	switch r.kind {
	case failureKind:
		return Failure[B](r.err)
	case panicKind:
		return Panicked[E, B](r.cause)
	default:
		return Success[E](f(r.value))
	}
}

// FlatMapResult chains a fallible step onto a success, passing errors through.
func FlatMapResult[E, A, B any](r Result[E, A], f func(A) Result[E, B]) Result[E, B] {
	switch r.kind {
	case failureKind:
		return Failure[B](r.err)
	case panicKind:
		return Panicked[E, B](r.cause)
	default:
		return f(r.value)
	}
}

// MapFailure applies f to the typed error, passing other outcomes through.
func MapFailure[E, F, A any](r Result[E, A], f func(E) F) Result[F, A] {
	switch r.kind {
	case failureKind:
		return Failure[A](f(r.err))
	case panicKind:
		return Panicked[F, A](r.cause)
	default:
		return Success[F](r.value)
	}
}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}
