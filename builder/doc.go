// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// Package builder generates synthetic road networks as []segment.Segment:
// a lon/lat street grid whose blocks carry the irregularities real road data
// has (one-way streets, duplicated and reversed duplicate segments, per-direction
// cost overrides). Fixtures built here drive tests, benchmarks of the engines,
// and the `lvroute generate` command.
//
// Determinism:
//   • Randomness comes only from WithSeed/WithRand; without them every block
//     is a plain two-way segment at the minimum cost.
//   • Segment order is row-major: for each (r,c) the east street, then the
//     north street, each followed by its generated duplicates.
//   • Segment IDs are "r,c/e" and "r,c/n"; duplicates append "+k".
//
// Complexity: O(rows*cols) time and output.
package builder
