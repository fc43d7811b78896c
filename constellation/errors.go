// SPDX-License-Identifier: MIT
// Package: capsphere/constellation
//
// errors.go: sentinel errors for Set mutations.

package constellation

import "errors"

var (
	// ErrEmptyID indicates an empty capability identifier.
	ErrEmptyID = errors.New("constellation: capability ID is empty")

	// ErrDuplicateID indicates AddWithID was called with an ID already present.
	ErrDuplicateID = errors.New("constellation: duplicate capability ID")

	// ErrNotFound indicates an operation referenced an unknown capability.
	ErrNotFound = errors.New("constellation: capability not found")
)

// Method tags used as error context prefixes.
const (
	methodAddWithID    = "AddWithID"
	methodRemove       = "Remove"
	methodSetMagnitude = "SetMagnitude"
)
