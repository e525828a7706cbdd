// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

// Erased represents a type-erased value crossing an effect boundary.
// Operation payloads and handler outputs travel as Erased through a
// homogeneous dispatch pipeline. Concrete types are recovered via type
// assertions at suspension boundaries.
type Erased = any

// Pend represents a computation that pends on effects. Pend[A] is either
// done, carrying a value of type A, or suspended on one effect operation
// that some enclosing handler must discharge before the value exists.
//
// Pend values are immutable descriptions: constructing or combining them
// executes nothing, and one value may be driven to completion any number of
// times by independent handlers.
type Pend[A any] struct {
	value A
	sus   *Suspension[A]
}

// Suspension is one pending effect operation: the tag identifying the effect,
// the operation payload, and the continuation from the effect's output to the
// remainder of the computation.
type Suspension[A any] struct {
	tag   Tag
	input Erased
	k     func(Erased) Pend[A]
}

// Tag returns the effect tag the suspension is waiting on.
func (s *Suspension[A]) Tag() Tag { return s.tag }

// Input returns the operation payload, to be asserted by the handler that
// recognizes the tag.
func (s *Suspension[A]) Input() Erased { return s.input }

// Resume feeds the effect's output to the continuation and returns the
// remainder of the computation. A continuation may be resumed more than once;
// each resumption proceeds independently.
func (s *Suspension[A]) Resume(v Erased) Pend[A] { return s.k(v) }

// Pure lifts a value into a done computation.
func Pure[A any](a A) Pend[A] {
	return Pend[A]{value: a}
}

// Suspend builds a computation suspended on tag with the given operation
// payload. The suspension's continuation is the identity: the handler's
// output, asserted to O, becomes the computation's value.
func Suspend[O any](tag Tag, input Erased) Pend[O] {
	return suspended(tag, input, completeWith[O])
}

func completeWith[O any](v Erased) Pend[O] {
	return Pure(v.(O))
}

func suspended[A any](tag Tag, input Erased, k func(Erased) Pend[A]) Pend[A] {
	return Pend[A]{sus: &Suspension[A]{tag: tag, input: input, k: k}}
}

// Done returns the computation's value and true when it is done, or zero and
// false while an effect is still pending.
func (p Pend[A]) Done() (A, bool) {
	if p.sus != nil {
		var zero A
		return zero, false
	}
	return p.value, true
}

// Suspended returns the pending suspension, or nil when the computation is done.
func (p Pend[A]) Suspended() *Suspension[A] { return p.sus }

// unit is the output fed to continuations of effects that produce nothing.
var unit struct{}
