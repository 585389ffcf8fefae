package point

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the capability set required by Point: ordered, addable,
// subtractable and printable. It admits every integer and float type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Point is a two-dimensional coordinate over a numeric type.
type Point[T Number] struct {
	X, Y T
}

// New builds a Point from its two coordinates.
func New[T Number](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Up returns the unit step (0, 1); the Y axis grows upward.
func Up[T constraints.Signed]() Point[T] { return Point[T]{X: 0, Y: 1} }

// Down returns the unit step (0, -1).
func Down[T constraints.Signed]() Point[T] { return Point[T]{X: 0, Y: -1} }

// Left returns the unit step (-1, 0).
func Left[T constraints.Signed]() Point[T] { return Point[T]{X: -1, Y: 0} }

// Right returns the unit step (1, 0).
func Right[T constraints.Signed]() Point[T] { return Point[T]{X: 1, Y: 0} }

// Add returns p + q.
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Eq reports whether both coordinates match exactly.
func (p Point[T]) Eq(q Point[T]) bool {
	return p == q
}

// Manhattan returns the sum of absolute per-axis differences between p and q.
// The difference is taken larger-minus-smaller so unsigned types never wrap.
func (p Point[T]) Manhattan(q Point[T]) T {
	return absDiff(p.X, q.X) + absDiff(p.Y, q.Y)
}

// Chebyshev returns the larger of the two per-axis differences.
func (p Point[T]) Chebyshev(q Point[T]) T {
	return max(absDiff(p.X, q.X), absDiff(p.Y, q.Y))
}

// Touches reports whether q is p itself or one of its eight neighbours.
func (p Point[T]) Touches(q Point[T]) bool {
	return p.Chebyshev(q) <= 1
}

// Step returns p moved by at most one unit on each axis toward target.
// If p already equals target it is returned unchanged.
func (p Point[T]) Step(target Point[T]) Point[T] {
	switch {
	case target.X > p.X:
		p.X++
	case target.X < p.X:
		p.X--
	}
	switch {
	case target.Y > p.Y:
		p.Y++
	case target.Y < p.Y:
		p.Y--
	}
	return p
}

// Neighbours4 returns the orthogonal neighbours of p in the order
// right, down, left, up (screen coordinates: Y grows downward).
func (p Point[T]) Neighbours4() [4]Point[T] {
	return [4]Point[T]{
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y},
		{X: p.X, Y: p.Y - 1},
	}
}

// String renders p as "(x, y)".
func (p Point[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

func absDiff[T Number](a, b T) T {
	if a > b {
		return a - b
	}
	return b - a
}
