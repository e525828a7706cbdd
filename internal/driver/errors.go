// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package driver

import "errors"

// Sentinel errors for driver operations.
var (
	// ErrUnknownProgram is returned when a queued name has no registration.
	ErrUnknownProgram = errors.New("unknown program")

	// ErrDuplicateProgram is returned when a name is registered twice.
	ErrDuplicateProgram = errors.New("program already registered")

	// ErrNilBuild is returned when a program is registered without a builder.
	ErrNilBuild = errors.New("program has no build function")
)
