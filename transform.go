package shatter

import "fmt"

// === Affine Transformations ================================================

// AT is an affine transform, a matrix type used for transforming points.
type AT []float64 // a 3x3 matrix, flattened by rows

// Internal constructor. Clients implicitely use this as a starting point for
// transform combinations.
func newAT() AT {
	m := make([]float64, 9)
	return m
}

func (m AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m AT) row(row int) []float64 {
	return m[row*3 : (row+1)*3]
}

func (m AT) col(col int) []float64 {
	c := make([]float64, 3)
	c[0] = m[col]
	c[1] = m[3+col]
	c[2] = m[6+col]
	return c
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	m := newAT()
	m.set(0, 0, 1.0)
	m.set(1, 1, 1.0)
	m.set(2, 2, 1.0)
	return m
}

// Translation transform. Translate a point by (dx,dy).
func Translation(p Point) AT {
	m := Identity()
	m.set(0, 2, p.X())
	m.set(1, 2, p.Y())
	return m
}

// Scaling transform. Scales a point by s, relative to the origin.
func Scaling(s float64) AT {
	m := Identity()
	m.set(0, 0, s)
	m.set(1, 1, s)
	return m
}

// ScalingAround scales points by s, relative to pivot.
//
//	pivot + s·(p − pivot)
func ScalingAround(pivot Point, s float64) AT {
	return Translation(-pivot).Combine(Scaling(s)).Combine(Translation(pivot))
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	s := fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
	return s
}

// v1 × v2, v.n = [a,b,c]
func dotProd(vec1, vec2 []float64) float64 {
	return vec1[0]*vec2[0] + vec1[1]*vec2[1] + vec1[2]*vec2[2]
}

// Combine 2 affine transformations to a new one: first m, then n.
// Returns a new transformation without changing the argument(s).
func (m AT) Combine(n AT) AT {
	o := newAT()
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			o.set(row, col, dotProd(n.row(row), m.col(col)))
		}
	}
	return o
}

func (m AT) multiplyVector(v []float64) []float64 {
	c := make([]float64, 3)
	c[0] = dotProd(m.row(0), v)
	c[1] = dotProd(m.row(1), v)
	c[2] = dotProd(m.row(2), v)
	return c
}

// Transform a 2D-point. The argument is unchanged and a new point is returned.
func (m AT) Transform(p Point) Point {
	c := []float64{p.X(), p.Y(), 1.0}
	c = m.multiplyVector(c)
	return P(c[0], c[1])
}
