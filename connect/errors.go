// SPDX-License-Identifier: MIT
// Package: capsphere/connect
//
// errors.go: sentinel errors for the connect package.
//
// Error policy:
//   • Build/Hull/Nearest never fail: degenerate input yields a smaller graph.
//   • Only name parsing (ParseMode/ParseCurve) can fail; callers branch with
//     errors.Is against the sentinels below.
//   • Graph queries (Path/Within) wrap the bfs sentinels with a method tag.
//   • Option constructors panic on meaningless values instead (WithEpsilon(<0)).

package connect

import "errors"

// ErrUnknownMode indicates a connection mode name that ParseMode does not know.
var ErrUnknownMode = errors.New("connect: unknown connection mode")

// ErrUnknownCurve indicates a curve style name that ParseCurve does not know.
var ErrUnknownCurve = errors.New("connect: unknown curve style")

// Method tags used as error context prefixes.
const (
	methodParseMode  = "ParseMode"
	methodParseCurve = "ParseCurve"
	methodPath       = "Path"
	methodWithin     = "Within"
)
