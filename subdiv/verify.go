package subdiv

import (
	"errors"
	"fmt"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/shatter"
)

var (
	// ErrPivotOutside indicates a fragment whose centroid is not inside of it.
	ErrPivotOutside = errors.New("fragment centroid outside of fragment")
	// ErrOverlap indicates two fragments covering the same point.
	ErrOverlap = errors.New("fragments overlap")
	// ErrAreaExcess indicates fragments covering more than the square.
	ErrAreaExcess = errors.New("fragments cover more area than the square")
)

func contour(f Fragment) polyclip.Contour {
	c := make(polyclip.Contour, 0, f.Vertices.N())
	for _, p := range f.Vertices.Points() {
		c = append(c, polyclip.Point{X: p.X(), Y: p.Y()})
	}
	return c
}

func inBox(r polyclip.Rectangle, p polyclip.Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Verify checks that frags form a partial tiling of sq: the total area does
// not exceed the area of sq, and the centroid of every fragment lies inside
// this fragment and inside no other one. Fragments are convex, which puts
// their centroid strictly into their interior.
func Verify(frags []Fragment, sq shatter.Square) error {
	var total float64
	contours := make([]polyclip.Contour, len(frags))
	boxes := make([]polyclip.Rectangle, len(frags))
	for i, f := range frags {
		contours[i] = contour(f)
		boxes[i] = contours[i].BoundingBox()
		total += f.Area()
	}
	if limit := sq.Side * sq.Side; total > limit*(1+1e-9) {
		return fmt.Errorf("%w: %g > %g", ErrAreaExcess, total, limit)
	}
	for i, f := range frags {
		pivot := polyclip.Point{X: f.Centroid.X(), Y: f.Centroid.Y()}
		if !contours[i].Contains(pivot) {
			return fmt.Errorf("%w: fragment %d, centroid %v", ErrPivotOutside, i, f.Centroid)
		}
		for j := range frags {
			if j == i || !inBox(boxes[j], pivot) {
				continue
			}
			if contours[j].Contains(pivot) {
				return fmt.Errorf("%w: centroid of fragment %d inside fragment %d", ErrOverlap, i, j)
			}
		}
	}
	tracer().Debugf("verified %d fragments, total area %g", len(frags), total)
	return nil
}
