// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

// Typed failure effect.
// Fail[A, E] aborts the surrounding computation with an error of type E;
// RunFail[E] reifies the abort into a [Result] without unwinding the stack.
// Failure channels of unrelated error types do not interact: each RunFail
// discharges only its own declared subtypes and rotates past the rest.

// AbortEffect is the effect family of typed failures. Its tag at parameter E
// is the channel for errors of type E; the channel at [Never] carries
// unrecoverable panics and is matched by every RunFail.
type AbortEffect struct{}

// AbortTag returns the failure channel tag for error type E.
func AbortTag[E any]() Tag { return ParamTag[AbortEffect, E]() }

// Aborted is the payload of a failure suspension. Exactly one of Err and
// Cause is set: Err holds the typed error of the channel's parameter type,
// Cause holds the cause of an unrecoverable panic.
type Aborted struct {
	Err     Erased
	Cause   error
	IsPanic bool
}

// Fail aborts the computation with a typed error. The suspension's
// continuation is unreachable: no handler resumes an abort.
func Fail[A, E any](e E) Pend[A] {
	return suspended(AbortTag[E](), Aborted{Err: e}, unreachableResume[A])
}

// Panic aborts the computation with an unrecoverable cause. It travels the
// [Never] channel, so the first RunFail of any error type reifies it as
// [Panicked].
func Panic[A any](cause error) Pend[A] {
	return suspended(AbortTag[Never](), Aborted{Cause: cause, IsPanic: true}, unreachableResume[A])
}

func unreachableResume[A any](Erased) Pend[A] {
	panic("pend: resumed an aborted computation")
}

// RunFail reifies the E failure channel of c into a [Result]. A done
// computation becomes Success; an abort on a channel whose error type is a
// declared subtype of E becomes Failure (or Panicked for the [Never]
// channel); any other suspension stays pending, with its continuation
// re-entering this handler.
func RunFail[E, A any](c Pend[A]) Pend[Result[E, A]] {
	s := c.sus
	if s == nil {
		return Pure(Success[E](c.value))
	}
	if s.tag.SubtypeOf(AbortTag[E]()) {
		ab := s.input.(Aborted)
		if ab.IsPanic {
			return Pure(Panicked[E, A](ab.Cause))
		}
		return Pure(Failure[A](assignAs[E](ab.Err)))
	}
	return suspended(s.tag, s.input, func(v Erased) Pend[Result[E, A]] {
		return RunFail[E, A](s.k(v))
	})
}

// CatchFail runs c and, when it fails with a typed error of channel E, runs
// the handler on that error instead. Success and foreign effects pass
// through; panics re-raise.
func CatchFail[E, A any](c Pend[A], handler func(E) Pend[A]) Pend[A] {
	return Bind(RunFail[E](c), func(r Result[E, A]) Pend[A] {
		if e, ok := r.GetFailure(); ok {
			return handler(e)
		}
		return FromResult(r)
	})
}

// FromResult re-raises a reified outcome: Success resumes as a done
// computation, Failure aborts the E channel again, Panicked re-panics.
func FromResult[E, A any](r Result[E, A]) Pend[A] {
	switch {
	case r.IsFailure():
		return Fail[A](r.err)
	case r.IsPanic():
		return Panic[A](r.cause)
	default:
		return Pure(r.value)
	}
}
