// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

// Signal emission effect.
// Emit[V] raises one value of type V to the nearest enclosing emit handler
// and resumes with nothing. Handlers decide what emission means: collect,
// forward into another computation, or drop.

// EmitEffect is the effect family of signal emission, parameterized by the
// emitted value type.
type EmitEffect struct{}

// EmitTag returns the emission channel tag for value type V.
func EmitTag[V any]() Tag { return ParamTag[EmitEffect, V]() }

// Signal is the payload of an emission suspension. The value is erased; its
// static type is the parameter of the suspension's tag.
type Signal struct {
	Value Erased
}

// Emit raises v on the V emission channel and resumes with nothing once a
// handler acknowledges it.
func Emit[V any](v V) Pend[struct{}] {
	return Suspend[struct{}](EmitTag[V](), Signal{Value: v})
}

// RunForeach discharges the V emission channel of c by running f on each
// emitted value in emission order, sequencing f's own effects before the
// emitter resumes.
func RunForeach[V, A any](c Pend[A], f func(V) Pend[struct{}]) Pend[A] {
	return Handle(EmitTag[V](), func(input Erased, resume func(Erased) Pend[A]) Pend[A] {
		v := assignAs[V](input.(Signal).Value)
		return Bind(f(v), func(struct{}) Pend[A] {
			return resume(unit)
		})
	}, c)
}

// RunDiscard discharges the V emission channel of c, dropping every value.
func RunDiscard[V, A any](c Pend[A]) Pend[A] {
	return Handle(EmitTag[V](), func(_ Erased, resume func(Erased) Pend[A]) Pend[A] {
		return resume(unit)
	}, c)
}

// RunEmit discharges the V emission channel of c, collecting the emitted
// values in order next to the computation's own result.
func RunEmit[V, A any](c Pend[A]) Pend[Pair[[]V, A]] {
	return collectEmit[V](nil, c)
}

// collectEmit threads the collected prefix through rotation, so a foreign
// suspension resumed twice replays from its own snapshot. The capped append
// keeps replays from sharing one backing array.
func collectEmit[V, A any](acc []V, c Pend[A]) Pend[Pair[[]V, A]] {
	target := EmitTag[V]()
	for {
		s := c.sus
		if s == nil {
			return Pure(Pair[[]V, A]{Fst: acc, Snd: c.value})
		}
		if s.tag.SubtypeOf(target) {
			v := assignAs[V](s.input.(Signal).Value)
			acc = append(acc[:len(acc):len(acc)], v)
			c = s.k(unit)
			continue
		}
		sus, snapshot := s, acc
		return suspended(s.tag, s.input, func(v Erased) Pend[Pair[[]V, A]] {
			return collectEmit(snapshot, sus.k(v))
		})
	}
}
