// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

import "fmt"

// Deferred side effect.
// Delay wraps a thunk without running it; the thunk runs when an enclosing
// [RunDefer] (usually via [RunSync]) resumes the suspension. This keeps
// computation values pure: building and combining them never touches the
// outside world, and a value containing delays can be re-run to repeat them.

// DeferEffect is the effect type of deferred side effects. It is not
// parameterized: every delayed thunk travels one channel.
type DeferEffect struct{}

var deferTag = TagOf[DeferEffect]()

// DeferTag returns the deferred-effect channel tag.
func DeferTag() Tag { return deferTag }

// Deferred is the payload of a deferred-effect suspension.
type Deferred struct{}

// Delay suspends a side-effecting thunk. The thunk runs only when a defer
// handler resumes the suspension; a native panic inside the thunk is
// recovered and re-raised as [Panic], so it travels the failure channel
// instead of unwinding the handler stack.
func Delay[A any](thunk func() A) Pend[A] {
	return suspended(deferTag, Deferred{}, func(Erased) Pend[A] {
		return guarded(func() Pend[A] { return Pure(thunk()) })
	})
}

// DelayPend suspends a thunk that itself produces a computation, for side
// effects that need to continue with further effects.
func DelayPend[A any](f func() Pend[A]) Pend[A] {
	return suspended(deferTag, Deferred{}, func(Erased) Pend[A] {
		return guarded(f)
	})
}

// RunDefer discharges the deferred-effect channel of c, running each delayed
// thunk at its position in the computation.
func RunDefer[A any](c Pend[A]) Pend[A] {
	return Handle(deferTag, func(_ Erased, resume func(Erased) Pend[A]) Pend[A] {
		return resume(unit)
	}, c)
}

// guarded evaluates f, converting a native panic into a Panic abort.
func guarded[A any](f func() Pend[A]) (out Pend[A]) {
	defer func() {
		if r := recover(); r != nil {
			out = Panic[A](recoveredCause(r))
		}
	}()
	return f()
}

func recoveredCause(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("pend: recovered panic: %v", r)
}
