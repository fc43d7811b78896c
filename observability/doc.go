// SPDX-License-Identifier: MIT

// Package observability builds the process-wide zap logger.
//
// Console output goes to stderr (stdout carries command results). When a log
// file is configured, a second JSON core writes to it through lumberjack
// rotation.
package observability
