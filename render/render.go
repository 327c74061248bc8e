// Package render draws shattered squares as SVG frames and reads such frames
// back.
//
// During the animation every fragment moves away from a pivot in proportion
// to a scale factor s, while its own shape stays rigid. Vertex i of fragment f
// is drawn at
//
//	pivot + s·(f.Centroid − pivot) + f.Offsets[i]
package render

import (
	"bufio"
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/shatter"
	"github.com/npillmayer/shatter/subdiv"
)

// tracer writes to trace with key 'shatter.render'
func tracer() tracing.Trace {
	return tracing.Select("shatter.render")
}

// Resolution is the number of SVG user units per pixel. svgo writes integer
// coordinates only, so frames are drawn on a finer grid and scaled down by
// the view box.
const Resolution = 10

// Style is the stroke style shared by all fragments.
type Style struct {
	Stroke    string  // stroke color
	LineWidth float64 // in pixels
}

// StyleFrom extracts the stroke style from a configuration.
func StyleFrom(conf shatter.Config) Style {
	return Style{Stroke: conf.StrokeStyle, LineWidth: conf.LineWidth}
}

// Place returns the positions of the vertices of f at animation scale s,
// scaling the position of the centroid around pivot.
func Place(f subdiv.Fragment, s float64, pivot shatter.Point) []shatter.Point {
	c := shatter.ScalingAround(pivot, s).Transform(f.Centroid)
	pts := make([]shatter.Point, len(f.Offsets))
	for i, off := range f.Offsets {
		pts[i] = c + off
	}
	return pts
}

func grid(v float64) int {
	return int(math.Round(v * Resolution))
}

// Frame writes an SVG image of size width×height, showing frags at scale s
// around pivot.
func Frame(w io.Writer, width, height int, frags []subdiv.Fragment, s float64, pivot shatter.Point, style Style) error {
	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Startview(width, height, 0, 0, width*Resolution, height*Resolution)
	canvas.Rect(0, 0, width*Resolution, height*Resolution, "fill:white")
	canvas.Gstyle(fmt.Sprintf("stroke:%s;stroke-width:%d;stroke-linejoin:round",
		style.Stroke, grid(style.LineWidth)))
	for _, f := range frags {
		pts := Place(f, s, pivot)
		xs, ys := make([]int, len(pts)), make([]int, len(pts))
		for i, p := range pts {
			xs[i], ys[i] = grid(p.X()), grid(p.Y())
		}
		canvas.Polygon(xs, ys, "fill:"+f.Color.String())
	}
	canvas.Gend()
	canvas.End()
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	tracer().Debugf("frame with %d fragments at scale %.3f", len(frags), s)
	return nil
}
