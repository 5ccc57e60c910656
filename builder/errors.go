// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Context is attached with %w at the failure site.
//   • Generators never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooSmall indicates a grid dimension below the minimum.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a probability > 0 was configured without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")
