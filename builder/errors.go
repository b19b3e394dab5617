// SPDX-License-Identifier: MIT
// Package: tourgraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context using %w at the failure site.
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrGraphNotEmpty indicates that Demo was asked to fill a graph that
// already holds spots (deleted ones included).
var ErrGraphNotEmpty = errors.New("builder: graph is not empty")

// ErrTooManyEdges indicates that more distinct paths were requested than
// the spot set admits (N·(N-1)/2).
var ErrTooManyEdges = errors.New("builder: too many edges for spot count")

// ErrTooFewSpots indicates that paths were requested with fewer than two spots.
var ErrTooFewSpots = errors.New("builder: too few spots")

// ErrBadRange indicates an empty or non-positive weight range.
var ErrBadRange = errors.New("builder: invalid weight range")
