// SPDX-License-Identifier: MIT

// Package config loads capsphere settings from a file, the environment and
// built-in defaults, in that order of precedence (environment wins).
//
// Environment variables use the CAPSPHERE_ prefix with dots replaced by
// underscores, e.g. CAPSPHERE_STYLE_MODE=knn or CAPSPHERE_LOGGER_LEVEL=debug.
package config
