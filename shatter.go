package shatter

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'shatter'
func tracer() tracing.Trace {
	return tracing.Select("shatter")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// IntersectionEpsilon is the smallest determinant magnitude for which two
// segments are considered non-parallel.
var IntersectionEpsilon float64 = 1e-9

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// === Point Data Type =======================================================

// Point is a 2D-point. Points are values and never change once created.
type Point complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a point from floats.
func P(x, y float64) Point {
	return Point(complex(x, y))
}

// C2P returns a Point from a complex number.
func C2P(c complex128) Point {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created point for complex.NaN")
		return Origin
	}
	return P(real(c), imag(c))
}

// Pretty Stringer for points.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Point as a complex number.
func (p Point) C() complex128 {
	return complex128(p)
}

// X is the x-part of a point.
func (p Point) X() float64 {
	return real(p)
}

// Y is the y-part of a point.
func (p Point) Y() float64 {
	return imag(p)
}

// IsValid is false if either coordinate is NaN or infinite.
func (p Point) IsValid() bool {
	return !cmplx.IsNaN(p.C()) && !cmplx.IsInf(p.C())
}

// Equal compares two points, allowing for differences below Epsilon.
func (p Point) Equal(p2 Point) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Scaled returns a new point scaled by factor a.
func (p Point) Scaled(a float64) Point {
	return P(p.X()*a, p.Y()*a)
}

// Shifted returns a new point translated by v.
func (p Point) Shifted(v Point) Point {
	return p + v
}

// === Chords ================================================================

// Chord is a line segment used to split polygons. For the side test it is
// extended to an infinite line, for intersections the bounded segment is used.
type Chord struct {
	P1, P2 Point
}

// Shifted returns the chord translated by v.
func (c Chord) Shifted(v Point) Chord {
	return Chord{P1: c.P1.Shifted(v), P2: c.P2.Shifted(v)}
}

func (c Chord) String() string {
	return fmt.Sprintf("%v--%v", c.P1, c.P2)
}

// === Bounding Square =======================================================

// ErrSquare is returned for squares with non-positive or invalid extent.
var ErrSquare = errors.New("square must have a finite, positive side length")

// Square is the axis-aligned bounding square of a shattering.
type Square struct {
	Offset Point   // upper left corner
	Side   float64 // side length
}

// SquareFor places a square of side min(width,height)·ratio in the center of a
// viewport of the given dimensions.
func SquareFor(width, height, ratio float64) Square {
	side := math.Min(width, height) * ratio
	return Square{
		Offset: P((width-side)/2, (height-side)/2),
		Side:   side,
	}
}

// Validate checks that sq spans a positive, finite area.
func (sq Square) Validate() error {
	if !sq.Offset.IsValid() || math.IsNaN(sq.Side) || math.IsInf(sq.Side, 0) || sq.Side <= 0 {
		return fmt.Errorf("%w: offset %v, side %g", ErrSquare, sq.Offset, sq.Side)
	}
	return nil
}

// Corners returns the four corners of sq in clockwise screen order,
// starting at the offset.
func (sq Square) Corners() []Point {
	x, y, s := sq.Offset.X(), sq.Offset.Y(), sq.Side
	return []Point{P(x, y), P(x+s, y), P(x+s, y+s), P(x, y+s)}
}

// Center is the pivot point of the square.
func (sq Square) Center() Point {
	return sq.Offset + P(sq.Side/2, sq.Side/2)
}

func (sq Square) String() string {
	return fmt.Sprintf("square[%v,%g]", sq.Offset, sq.Side)
}

// === Orientation and Intersection ==========================================

// Orientation returns the cross product (p2-p1) × (p0-p1).
// Values ≥ 0 put p0 on side A of the line through p1 and p2, values ≤ 0 on
// side B. Points exactly on the line belong to both sides.
func Orientation(p1, p2, p0 Point) float64 {
	return (p2.X()-p1.X())*(p0.Y()-p1.Y()) - (p2.Y()-p1.Y())*(p0.X()-p1.X())
}

// SegmentIntersection intersects segment p1–p2 with segment p3–p4.
// It reports false for (near) parallel segments, including collinear overlaps,
// and if the crossing lies outside either segment. Crossings exactly at a
// segment end count as intersections.
func SegmentIntersection(p1, p2, p3, p4 Point) (Point, bool) {
	d21 := p2 - p1
	d43 := p4 - p3
	d13 := p1 - p3
	denom := d43.Y()*d21.X() - d43.X()*d21.Y()
	if math.Abs(denom) < IntersectionEpsilon {
		return Origin, false
	}
	ua := (d43.X()*d13.Y() - d43.Y()*d13.X()) / denom
	ub := (d21.X()*d13.Y() - d21.Y()*d13.X()) / denom
	if ua < 0 || ua > 1 || ub < 0 || ub > 1 {
		return Origin, false
	}
	return p1 + d21.Scaled(ua), true
}
