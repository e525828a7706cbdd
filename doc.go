// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pend provides suspended computations and algebraic effects in Go.
//
// The core type [Pend] represents a computation that is either finished with
// a value or suspended on an effect operation. A suspension carries a [Tag]
// naming the effect, an opaque operation payload, and a continuation from the
// effect's output to the rest of the computation. Handlers walk a computation,
// discharge the suspensions they recognize, and leave the rest for enclosing
// handlers.
//
// # Design Philosophy
//
// pend provides:
//   - A single suspension encoding shared by every effect and every handler
//   - Runtime [Tag] identity with declared-subtype matching for effect dispatch
//   - Iterative handler loops; handling never recurses per discharged operation
//
// # Core Operations
//
// Minimal monad operations:
//
//   - [Pure]: lift a value into a finished computation
//   - [Bind]: sequence two computations
//
// Derived operations:
//
//   - [Map]: apply a function to a computation's value
//   - [Then]: sequence two computations, discarding the first value
//   - [Suspend]: build a computation suspended on an effect tag
//   - [Handle]: discharge one effect tag with a caller-supplied handler
//   - [Eval]: extract the value of a fully handled computation
//
// # Built-in Effects
//
// Five effects cover the usual suspects:
//
//   - [Fail] / [RunFail]: typed failure, reified into a [Result]
//   - [Emit] / [RunEmit] / [RunForeach]: signal emission
//   - [Ask] / [RunEnv] / [RunEnvMap]: contextual read from a [TypeMap]
//   - [Delay] / [RunDefer]: deferred side effects, run only when handled
//   - [GetVar] / [SetVar] / [UpdateVar] / [RunVar]: a single mutable cell
//
// [RunSync] discharges deferred effects and untyped failures in one step and
// is the usual terminal runner: it yields a Result[error, A] with panics from
// deferred thunks captured as [Panicked].
//
// # Isolation
//
// [RunIsolate] runs a computation under an [Isolate] strategy that captures
// ambient state, runs the computation against a private copy, and decides
// afterwards what to propagate. [VarLastUpdate], [VarDiscard] and
// [VarConditionalUpdate] cover the mutable cell; strategies compose with
// [Isolate.AndThen] and [IdentityIsolate] is the neutral element.
//
// # Purity
//
// Building a computation never executes effects. A Pend value may be shared
// and driven to completion any number of times; each run is independent.
// Side effects live exclusively inside [Delay] thunks and run only when a
// handler resumes them.
package pend
