// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	slogmulti "github.com/samber/slog-multi"

	"code.hybscloud.com/pend/internal/driver"
)

var level = new(slog.LevelVar)

// newLogger builds the process logger: human-readable text on a terminal,
// JSON otherwise, with an optional JSON duplicate into the configured file.
func newLogger(cfg driver.LogConfig) (*slog.Logger, error) {
	level.Set(cfg.SlogLevel())

	var console slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		console = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		console = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	handlers := []slog.Handler{console}

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file %s: %w", cfg.File, err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(slogmulti.Fanout(handlers...)), nil
}
