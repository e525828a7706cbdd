// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

// HandlerFunc discharges one effect operation. input is the operation payload
// of a matched suspension and resume is its continuation; the handler may
// resume zero, one, or several times, and whatever it returns becomes the
// handled computation. A handler that returns without resuming discards the
// rest of the computation, which is how failure short-circuits.
type HandlerFunc[A any] func(input Erased, resume func(Erased) Pend[A]) Pend[A]

// Handle discharges every suspension of c whose tag is a declared subtype of
// tag, walking the computation iteratively. Suspensions of other tags are
// left pending for enclosing handlers: the foreign suspension is rebuilt so
// that resuming it re-enters this same handling pass, which preserves both
// the operation order and this handler's authority over the remainder.
//
// Handle is the extension point for user-defined effects: pair a [Suspend]
// constructor with a Handle call and the built-in machinery does the rest.
//
// Example:
//
//	ticks := pend.TagOf[Tick]()
//	n := pend.Eval(pend.Handle(ticks, func(_ pend.Erased, resume func(pend.Erased) pend.Pend[int]) pend.Pend[int] {
//	    return resume(42)
//	}, program))
func Handle[A any](tag Tag, h HandlerFunc[A], c Pend[A]) Pend[A] {
	return handleMatch(func(t Tag) bool { return t.SubtypeOf(tag) }, h, c)
}

// handleMatch is the discharge loop shared by [Handle] and the stateless
// built-in runners. It never recurses while discharging: matched suspensions
// are handled and the loop continues on the handler's result. Only a foreign
// suspension returns, carrying a continuation that re-enters the loop.
func handleMatch[A any](match func(Tag) bool, h HandlerFunc[A], c Pend[A]) Pend[A] {
	for {
		s := c.sus
		if s == nil {
			return c
		}
		if match(s.tag) {
			c = h(s.input, s.k)
			continue
		}
		return suspended(s.tag, s.input, func(v Erased) Pend[A] {
			return handleMatch(match, h, s.k(v))
		})
	}
}

// Eval returns the value of a fully handled computation.
// It panics when a suspension remains: reaching a terminal run point with a
// pending effect means some handler is missing, which is a defect in the
// program's composition rather than a runtime condition to recover from.
func Eval[A any](c Pend[A]) A {
	if s := c.sus; s != nil {
		panic("pend: unhandled effect " + s.tag.String() + " - handle it before Eval")
	}
	return c.value
}
