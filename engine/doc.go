// SPDX-License-Identifier: MIT

// Package engine runs the full scene pipeline over a snapshot of nodes:
//
//	nodes → connect.Build (edges + faces) → surface.Tessellate (vertex buffer)
//
// Results are memoized by a 64-bit fingerprint of the inputs (xxhash over
// node IDs, positions, colors, magnitudes and every Style field). An
// unchanged fingerprint returns the cached Scene; any change recomputes it.
// The cache is a bounded LRU.
//
// Engine is safe for concurrent use. Compute never mutates its inputs, and
// a returned *Scene is shared between callers and must be treated as
// read-only.
//
// Observability:
//   - cache hits and misses are logged at Debug on the configured zap logger;
//   - capsphere_engine_cache_hits_total, capsphere_engine_cache_misses_total
//     and capsphere_engine_compute_seconds are registered on the configured
//     prometheus.Registerer (none by default).
package engine
