// Package subdiv shatters a square into fragments by cutting it with a
// sequence of chords.
//
// Chords are applied one at a time, each to every polygon produced so far,
// so later chords split fragments created by earlier ones. The surviving
// polygons, minus slivers, are annotated with centroid, local vertex offsets
// and a color and become Fragments.
package subdiv

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/shatter"
	"github.com/npillmayer/shatter/gen"
	"github.com/npillmayer/shatter/polygon"
)

// tracer writes to trace with key 'shatter.subdiv'
func tracer() tracing.Trace {
	return tracing.Select("shatter.subdiv")
}

// Fragment is a piece of a shattered square. Fragments are created once per
// subdivision and never modified afterwards.
type Fragment struct {
	Vertices *polygon.Polygon
	Centroid shatter.Point   // mean of the vertices
	Offsets  []shatter.Point // Vertices[i] − Centroid
	Color    gen.RGB
}

// NewFragment annotates a polygon with its centroid and vertex offsets.
// Consecutive coincident vertices, as left by cutting through corners, are
// merged first.
func NewFragment(pg *polygon.Polygon, color gen.RGB) Fragment {
	pg = polygon.Compact(pg)
	c := polygon.Centroid(pg)
	offsets := make([]shatter.Point, pg.N())
	for i, v := range pg.Points() {
		offsets[i] = v - c
	}
	return Fragment{
		Vertices: pg,
		Centroid: c,
		Offsets:  offsets,
		Color:    color,
	}
}

// Area is the area of the fragment.
func (f Fragment) Area() float64 {
	return polygon.Area(f.Vertices)
}

// Subdivide cuts the polygon by each chord in turn. Every chord is applied
// to all polygons produced so far. It returns the resulting polygons in cut
// order and the number of splits which took place.
func Subdivide(pg *polygon.Polygon, chords []shatter.Chord) ([]*polygon.Polygon, int) {
	pgs := []*polygon.Polygon{pg}
	splits := 0
	for _, c := range chords {
		var n int
		pgs, n = polygon.CutAll(pgs, c)
		splits += n
	}
	tracer().Debugf("%d chords produced %d polygons in %d splits", len(chords), len(pgs), splits)
	return pgs, splits
}

// IsSliver is true for polygons with less than 3 distinct vertices or with an
// area not exceeding threshold.
func IsSliver(pg *polygon.Polygon, threshold float64) bool {
	return polygon.Compact(pg).N() < 3 || polygon.Area(pg) <= threshold
}

// Fragments drops slivers from pgs and turns the rest into fragments,
// colored by calling color once per fragment.
func Fragments(pgs []*polygon.Polygon, threshold float64, color func() gen.RGB) []Fragment {
	frags := make([]Fragment, 0, len(pgs))
	for _, pg := range pgs {
		if IsSliver(pg, threshold) {
			tracer().Debugf("dropping sliver %s", polygon.AsString(pg))
			continue
		}
		frags = append(frags, NewFragment(pg, color()))
	}
	return frags
}
