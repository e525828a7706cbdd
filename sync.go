// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

// RunSync drives a computation whose remaining effects are deferred side
// effects and untyped failures: delayed thunks run in order, and the outcome
// is Success, Failure for aborts on an error channel, or Panicked for
// unrecoverable causes (including panics recovered inside thunks).
//
// RunSync is the usual terminal runner. Typed failure channels whose error
// types are not errors, and any other effect, must be discharged first;
// RunSync panics like [Eval] when one remains.
func RunSync[A any](c Pend[A]) Result[error, A] {
	return Eval(RunFail[error](RunDefer(c)))
}

// Attempt lifts Go's (value, error) convention into a computation: the thunk
// is deferred, and a non-nil error aborts the error channel.
func Attempt[A any](thunk func() (A, error)) Pend[A] {
	return DelayPend(func() Pend[A] {
		a, err := thunk()
		if err != nil {
			return Fail[A](err)
		}
		return Pure(a)
	})
}
