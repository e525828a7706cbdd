// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package driver runs queues of effectful programs at the edge of the world.
//
// A program is a named computation of type pend.Pend[string] whose remaining
// effects are deferred side effects and failures; the driver discharges them
// with [pend.RunSync] and turns the outcome into logs and exit decisions. A
// typed failure is an expected, per-program event: it is logged and the queue
// keeps draining. A panic means the world is broken: the drain stops. A
// program that suspends on any other effect has not been fully handled, which
// is a programmer error; the resulting runtime panic is not recovered here.
package driver

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"code.hybscloud.com/pend"
)

// Program is a named, re-runnable effectful computation. Build returns a
// fresh computation value per run; computations are immutable, so a single
// value would also do, but a builder keeps construction lazy.
type Program struct {
	Name        string
	Description string
	Build       func() pend.Pend[string]
}

// Outcome records one program run.
type Outcome struct {
	RunID    string
	Program  string
	Output   string
	Err      error
	Panicked bool
	Duration time.Duration
}

// Driver owns the program registry and drains run queues sequentially.
type Driver struct {
	logger   *slog.Logger
	programs map[string]Program
	order    []string
}

// New creates a driver. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		logger:   logger,
		programs: make(map[string]Program),
	}
}

// Register adds a program to the registry.
func (d *Driver) Register(p Program) error {
	if p.Name == "" {
		return fmt.Errorf("register: program name is empty")
	}
	if p.Build == nil {
		return fmt.Errorf("register %s: %w", p.Name, ErrNilBuild)
	}
	if _, ok := d.programs[p.Name]; ok {
		return fmt.Errorf("register %s: %w", p.Name, ErrDuplicateProgram)
	}
	d.programs[p.Name] = p
	d.order = append(d.order, p.Name)
	return nil
}

// Programs returns the registered programs in registration order.
func (d *Driver) Programs() []Program {
	out := make([]Program, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, d.programs[name])
	}
	return out
}

// Run executes one registered program to completion and reports its outcome.
// The returned error is non-nil only when the name is not registered; a
// program that fails or panics reports that through the Outcome.
func (d *Driver) Run(name string) (Outcome, error) {
	p, ok := d.programs[name]
	if !ok {
		return Outcome{}, fmt.Errorf("run %s: %w", name, ErrUnknownProgram)
	}

	out := Outcome{RunID: uuid.NewString(), Program: name}
	d.logger.Info("program started",
		slog.String("program", name),
		slog.String("run_id", out.RunID),
	)

	start := time.Now()
	r := pend.RunSync(p.Build())
	out.Duration = time.Since(start)

	switch {
	case r.IsPanic():
		out.Err, _ = r.GetPanic()
		out.Panicked = true
		d.logger.Error("program panicked",
			slog.String("program", name),
			slog.String("run_id", out.RunID),
			slog.Any("cause", out.Err),
			slog.Duration("duration", out.Duration),
		)
	case r.IsFailure():
		out.Err, _ = r.GetFailure()
		d.logger.Warn("program failed",
			slog.String("program", name),
			slog.String("run_id", out.RunID),
			slog.Any("error", out.Err),
			slog.Duration("duration", out.Duration),
		)
	default:
		out.Output, _ = r.Get()
		d.logger.Info("program completed",
			slog.String("program", name),
			slog.String("run_id", out.RunID),
			slog.Duration("duration", out.Duration),
		)
	}
	return out, nil
}

// Drain runs the queued programs in order. Typed failures are recorded and
// the drain continues; a panic outcome stops the drain and surfaces its cause
// as the returned error, alongside the outcomes gathered so far. An unknown
// name stops the drain before running anything further.
func (d *Driver) Drain(queue []string) ([]Outcome, error) {
	d.logger.Info("drain started", slog.Int("queued", len(queue)))
	outcomes := make([]Outcome, 0, len(queue))
	for _, name := range queue {
		out, err := d.Run(name)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, out)
		if out.Panicked {
			return outcomes, fmt.Errorf("draining %s: %w", name, out.Err)
		}
	}
	d.logger.Info("drain completed", slog.Int("ran", len(outcomes)))
	return outcomes, nil
}
