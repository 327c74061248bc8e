// Package polygon implements closed polygons, their area and centroid, and
// the splitting of a polygon along a chord.
package polygon

import (
	"bytes"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/shatter"
)

// L traces to the polygon tracer.
func L() tracing.Trace {
	return tracing.Select("shatter.polygon")
}

// Polygon is an ordered ring of points. There is an implicit edge from the
// last point back to the first one. Polygons are not changed after they have
// been built; operations return new polygons.
type Polygon struct {
	pts []shatter.Point
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls:
//
//	pg := NullPolygon().Knot(shatter.P(0,0)).Knot(shatter.P(1,3)).Knot(shatter.P(3,0)).Cycle()
func NullPolygon() *Polygon {
	return &Polygon{}
}

// FromPoints creates a polygon from a sequence of points. The points are copied.
func FromPoints(pts ...shatter.Point) *Polygon {
	pg := &Polygon{pts: make([]shatter.Point, len(pts))}
	copy(pg.pts, pts)
	return pg
}

// Box creates a rectangle from two opposite corners.
func Box(a, b shatter.Point) *Polygon {
	minx, maxx := math.Min(a.X(), b.X()), math.Max(a.X(), b.X())
	miny, maxy := math.Min(a.Y(), b.Y()), math.Max(a.Y(), b.Y())
	return NullPolygon().Knot(shatter.P(minx, miny)).Knot(shatter.P(maxx, miny)).
		Knot(shatter.P(maxx, maxy)).Knot(shatter.P(minx, maxy)).Cycle()
}

// FromSquare creates the polygon of the four corners of sq.
func FromSquare(sq shatter.Square) *Polygon {
	return FromPoints(sq.Corners()...)
}

// Knot appends a point. Part of builder functionality.
func (pg *Polygon) Knot(p shatter.Point) *Polygon {
	pg.pts = append(pg.pts, p)
	return pg
}

// Cycle ends a builder chain. Polygons are always closed, the edge from the
// last knot to the first one is implicit.
func (pg *Polygon) Cycle() *Polygon {
	return pg
}

// N returns the number of vertices.
func (pg *Polygon) N() int {
	if pg == nil {
		return 0
	}
	return len(pg.pts)
}

// Z returns the vertex at position (i mod N).
func (pg *Polygon) Z(i int) shatter.Point {
	n := pg.N()
	i %= n
	if i < 0 {
		i += n
	}
	return pg.pts[i]
}

// Points returns a copy of the vertices.
func (pg *Polygon) Points() []shatter.Point {
	pts := make([]shatter.Point, pg.N())
	copy(pts, pg.pts)
	return pts
}

// Compact returns a polygon without consecutive coincident vertices,
// including a last vertex coinciding with the first one.
func Compact(pg *Polygon) *Polygon {
	c := &Polygon{pts: make([]shatter.Point, 0, pg.N())}
	for _, p := range pg.pts {
		if len(c.pts) > 0 && c.pts[len(c.pts)-1].Equal(p) {
			continue
		}
		c.pts = append(c.pts, p)
	}
	for len(c.pts) > 1 && c.pts[len(c.pts)-1].Equal(c.pts[0]) {
		c.pts = c.pts[:len(c.pts)-1]
	}
	return c
}

// Area returns the unsigned area of pg (shoelace formula). The result does
// not depend on the orientation of pg.
func Area(pg *Polygon) float64 {
	var area float64
	n := pg.N()
	for i := 0; i < n; i++ {
		p, q := pg.pts[i], pg.Z(i+1)
		area += p.X()*q.Y() - q.X()*p.Y()
	}
	return math.Abs(area) / 2
}

// Centroid returns the arithmetic mean of the vertices of pg. This is not the
// center of mass, which would weight by area.
func Centroid(pg *Polygon) shatter.Point {
	if pg.N() == 0 {
		L().Errorf("centroid of empty polygon")
		return shatter.Origin
	}
	var sum shatter.Point
	for _, p := range pg.pts {
		sum += p
	}
	return sum.Scaled(1 / float64(pg.N()))
}

// AsString returns a readable representation of pg.
func AsString(pg *Polygon) string {
	var buf bytes.Buffer
	for _, p := range pg.pts {
		buf.WriteString(p.String())
		buf.WriteString(" -- ")
	}
	buf.WriteString("cycle")
	return buf.String()
}
