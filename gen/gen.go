// Package gen draws the random ingredients of a shattering: chords anchored
// on the boundary of a square, chord counts and fill colors.
//
// Randomness is injected as a Source. A *math/rand.Rand satisfies Source;
// tests may use a seeded or a scripted one to get reproducible results.
package gen

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/shatter"
)

// tracer writes to trace with key 'shatter.gen'
func tracer() tracing.Trace {
	return tracing.Select("shatter.gen")
}

// Source is a source of uniformly distributed random numbers.
type Source interface {
	Float64() float64 // in [0,1)
	Intn(n int) int   // in [0,n)
}

// NewSource returns a deterministic Source for a seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// Generator draws chords, chord counts and colors from a Source.
// Generators carry no state apart from their source.
type Generator struct {
	src Source
}

// New creates a generator drawing from src. If src is nil, a source seeded
// from the system clock is used.
func New(src Source) *Generator {
	if src == nil {
		src = NewSource(time.Now().UnixNano())
	}
	return &Generator{src: src}
}

// Sides of the square, clockwise in screen coordinates.
const (
	top = iota
	right
	bottom
	left
)

// BoundaryPoint returns a random point on the boundary of the square
// [0,size]×[0,size]. Each side is chosen with probability 1/4, then a
// position along it is drawn uniformly.
func (g *Generator) BoundaryPoint(size float64) shatter.Point {
	side := g.src.Intn(4)
	pos := g.src.Float64() * size
	switch side {
	case top:
		return shatter.P(pos, 0)
	case right:
		return shatter.P(size, pos)
	case bottom:
		return shatter.P(pos, size)
	}
	return shatter.P(0, pos)
}

// Lines draws count chords between independent boundary points of the square
// [0,size]×[0,size]. Chords are neither deduplicated nor checked for length.
func (g *Generator) Lines(count int, size float64) []shatter.Chord {
	if count < 0 {
		count = 0
	}
	chords := make([]shatter.Chord, count)
	for i := range chords {
		p1 := g.BoundaryPoint(size)
		p2 := g.BoundaryPoint(size)
		chords[i] = shatter.Chord{P1: p1, P2: p2}
	}
	return chords
}

// LineCount draws a chord count uniformly from [min,max], inclusive.
func (g *Generator) LineCount(min, max int) int {
	if max < min {
		tracer().Errorf("invalid line count range [%d,%d]", min, max)
		return min
	}
	return min + g.src.Intn(max-min+1)
}

// Color draws a color with each channel independently and uniformly taken
// from [min,max).
func (g *Generator) Color(min, max int) RGB {
	span := float64(max - min)
	channel := func() uint8 {
		return uint8(math.Floor(float64(min) + g.src.Float64()*span))
	}
	r := channel()
	gr := channel()
	b := channel()
	return RGB{R: r, G: gr, B: b}
}

// --- Colors ----------------------------------------------------------------

// ErrNotRGB is returned when parsing a string not of the form rgb(r, g, b).
var ErrNotRGB = errors.New("not an rgb color")

// RGB is a fill color.
type RGB struct {
	R, G, B uint8
}

// String returns c in CSS notation, e.g. "rgb(120, 200, 131)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// ParseRGB parses the CSS notation written by RGB.String.
func ParseRGB(s string) (RGB, error) {
	var r, g, b int
	if _, err := fmt.Sscanf(s, "rgb(%d, %d, %d)", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrNotRGB, s)
	}
	if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
		return RGB{}, fmt.Errorf("%w: channel out of range in %q", ErrNotRGB, s)
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}
