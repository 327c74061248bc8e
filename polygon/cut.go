package polygon

import "github.com/npillmayer/shatter"

// Cut splits pg along the line through chord c.
//
// Vertices on side A of the line (Orientation ≥ 0) go to the first result,
// vertices on side B (Orientation ≤ 0) to the second one; vertices on the line
// go to both. Wherever an edge of pg crosses the chord segment, the crossing
// is inserted into both results. If either side stays empty, pg is returned
// as the only result. A chord of zero length does not define a line and
// leaves pg unsplit as well.
//
// Coincident or collinear points are kept; slivers are left for the caller
// to filter.
func Cut(pg *Polygon, c shatter.Chord) []*Polygon {
	if c.P1.Equal(c.P2) {
		return []*Polygon{pg}
	}
	a, b := NullPolygon(), NullPolygon()
	n := pg.N()
	for i := 0; i < n; i++ {
		current, next := pg.pts[i], pg.Z(i+1)
		side := shatter.Orientation(c.P1, c.P2, current)
		if side >= 0 {
			a.Knot(current)
		}
		if side <= 0 {
			b.Knot(current)
		}
		if x, ok := shatter.SegmentIntersection(current, next, c.P1, c.P2); ok {
			a.Knot(x)
			b.Knot(x)
		}
	}
	if a.N() == 0 || b.N() == 0 {
		return []*Polygon{pg}
	}
	L().Debugf("cut %d-gon by %v into %d-gon and %d-gon", n, c, a.N(), b.N())
	return []*Polygon{a, b}
}

// CutAll cuts every polygon of pgs by c and concatenates the results,
// keeping the order of pgs. The second return value is the number of
// polygons which have been split.
func CutAll(pgs []*Polygon, c shatter.Chord) ([]*Polygon, int) {
	result := make([]*Polygon, 0, len(pgs)+1)
	splits := 0
	for _, pg := range pgs {
		parts := Cut(pg, c)
		if len(parts) > 1 {
			splits++
		}
		result = append(result, parts...)
	}
	return result, splits
}
