// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

// Resource safety primitives built on the failure channel.

// Bracket provides failure-safe resource acquisition and release, following
// the bracket pattern: acquire, use, release, where release runs whether or
// not use aborts. The use outcome is reified so the release step always
// sequences after it; the caller receives it as a [Result].
func Bracket[E, R, A any](
	acquire Pend[R],
	release func(R) Pend[struct{}],
	use func(R) Pend[A],
) Pend[Result[E, A]] {
	return Bind(acquire, func(resource R) Pend[Result[E, A]] {
		return Bind(RunFail[E](use(resource)), func(r Result[E, A]) Pend[Result[E, A]] {
			return Then(release(resource), Pure(r))
		})
	})
}

// OnFailure runs cleanup only when body aborts with a typed E error, then
// re-raises the same error. Success passes through untouched; panics skip
// the cleanup and re-raise.
func OnFailure[E, A any](
	body Pend[A],
	cleanup func(E) Pend[struct{}],
) Pend[A] {
	return CatchFail(body, func(e E) Pend[A] {
		return Then(cleanup(e), Fail[A](e))
	})
}
