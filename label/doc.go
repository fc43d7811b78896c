// SPDX-License-Identifier: MIT

// Package label computes distance-compensated font sizes for node labels.
//
// A label rendered at font size f, seen from distance d, appears on screen
// with size f·(DistanceConstant/d). FontSize returns the smallest f that keeps
// this at or above a minimum on-screen size, never smaller than the base size
// and never larger than Ceiling.
package label
