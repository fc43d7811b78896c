// SPDX-License-Identifier: MIT

// Package constellation keeps the live set of capabilities and their
// positions on the sphere.
//
// A Set owns the layout policy:
//   - adding or removing a capability changes the count, so every node is
//     laid out again (angles depend on n);
//   - changing a magnitude keeps the node's angles and only moves its tip
//     along the same ray.
//
// Layout order is insertion order. Nodes returns tip positions ready for
// connect.Build; Surfaces returns where each bar leaves the core sphere.
//
// All methods are safe for concurrent use.
package constellation
