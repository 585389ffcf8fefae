// Package point provides a generic two-dimensional point used for grid and
// coordinate arithmetic across the puzzle packages.
//
// What:
//
//   - Point[T] holds two coordinates of the same numeric type T.
//   - Add/Sub return a new point with component-wise results.
//   - Points are comparable values and can be used directly as map keys.
//   - Manhattan returns |dx| + |dy| in T, without underflow for unsigned T.
//   - Step moves a point by at most one unit per axis toward another point.
//
// Why:
//
//   - Grid puzzles need the same handful of vector operations at different
//     precisions: int for free-form walks, int32 for rope and sand coordinates
//     that go negative, uint8 or float64 where the input calls for it.
//
// Complexity:
//
//   - Every operation is O(1) and allocation-free.
//
// Value semantics: a Point is copied, never shared. None of the methods
// mutate the receiver.
package point
