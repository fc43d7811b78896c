// SPDX-License-Identifier: MIT
// Package: capsphere/engine
//
// errors.go: sentinel errors.

package engine

import "errors"

var (
	// ErrInvalidStyle indicates a Style with an out-of-range field.
	ErrInvalidStyle = errors.New("engine: invalid style")

	// ErrInvalidCacheSize indicates WithCacheSize(n) with n < 1.
	ErrInvalidCacheSize = errors.New("engine: cache size must be positive")
)

// Method tags used as error context prefixes.
const (
	methodNew      = "New"
	methodCompute  = "Compute"
	methodValidate = "Style.Validate"
)
