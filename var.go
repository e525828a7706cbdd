// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pend

import "fmt"

// Mutable cell effect.
// A computation under RunVar[S] sees one mutable cell of type S. Every
// operation resumes with the cell's resulting value, so a set answers the
// value just written and an update answers the value just computed. The
// handler holds the cell as a loop accumulator: each discharge re-enters the
// loop with the new value, and a foreign suspension snapshots the value it
// was rotated past with, keeping independent re-runs independent.

// VarEffect is the effect family of the mutable cell, parameterized by the
// cell's value type. Cells of different types are unrelated channels.
type VarEffect struct{}

// VarTag returns the mutable-cell channel tag for cell type S.
func VarTag[S any]() Tag { return ParamTag[VarEffect, S]() }

// Get is the cell operation that reads the current value.
type Get[S any] struct{}

// Set is the cell operation that replaces the value.
type Set[S any] struct{ Value S }

// Update is the cell operation that applies a function to the value.
type Update[S any] struct{ F func(S) S }

// GetVar reads the S cell.
func GetVar[S any]() Pend[S] {
	return Suspend[S](VarTag[S](), Get[S]{})
}

// SetVar replaces the S cell's value, resuming with the value just written.
func SetVar[S any](v S) Pend[S] {
	return Suspend[S](VarTag[S](), Set[S]{Value: v})
}

// UpdateVar applies f to the S cell, resuming with the value f returned.
func UpdateVar[S any](f func(S) S) Pend[S] {
	return Suspend[S](VarTag[S](), Update[S]{F: f})
}

// RunVar runs c with an S cell starting at initial and returns c's result.
func RunVar[S, A any](initial S, c Pend[A]) Pend[A] {
	return Map(runVar(initial, c), func(p Pair[S, A]) A { return p.Snd })
}

// RunVarPair runs c with an S cell starting at initial and returns the final
// cell value next to c's result.
func RunVarPair[S, A any](initial S, c Pend[A]) Pend[Pair[S, A]] {
	return runVar(initial, c)
}

// EvalVar runs c with an S cell starting at initial and returns the final
// cell value, discarding c's result.
func EvalVar[S, A any](initial S, c Pend[A]) Pend[S] {
	return Map(runVar(initial, c), func(p Pair[S, A]) S { return p.Fst })
}

func runVar[S, A any](cur S, c Pend[A]) Pend[Pair[S, A]] {
	target := VarTag[S]()
	for {
		s := c.sus
		if s == nil {
			return Pure(Pair[S, A]{Fst: cur, Snd: c.value})
		}
		if s.tag == target {
			switch op := s.input.(type) {
			case Get[S]:
			case Set[S]:
				cur = op.Value
			case Update[S]:
				cur = op.F(cur)
			default:
				panic(fmt.Sprintf("pend: unknown cell operation %T", s.input))
			}
			c = s.k(cur)
			continue
		}
		sus, snapshot := s, cur
		return suspended(s.tag, s.input, func(v Erased) Pend[Pair[S, A]] {
			return runVar(snapshot, sus.k(v))
		})
	}
}
