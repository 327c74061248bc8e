package subdiv

import (
	"github.com/npillmayer/shatter"
	"github.com/npillmayer/shatter/gen"
	"github.com/npillmayer/shatter/polygon"
)

// Engine shatters squares with random chords.
type Engine struct {
	conf shatter.Config
	gen  *gen.Generator
}

// NewEngine creates an engine for a configuration, drawing randomness
// from g. If g is nil, a clock-seeded generator is used.
func NewEngine(conf shatter.Config, g *gen.Generator) *Engine {
	if g == nil {
		g = gen.New(nil)
	}
	return &Engine{conf: conf, gen: g}
}

// Config returns the configuration of the engine.
func (e *Engine) Config() shatter.Config {
	return e.conf
}

// Shatter draws a chord count from [MinLines,MaxLines] and as many chords
// between random boundary points of sq, then subdivides sq with them.
func (e *Engine) Shatter(sq shatter.Square) []Fragment {
	count := e.gen.LineCount(e.conf.MinLines, e.conf.MaxLines)
	chords := e.gen.Lines(count, sq.Side)
	return e.ShatterWith(sq, chords)
}

// ShatterWith subdivides sq with chords given in square-local coordinates,
// i.e. relative to the offset of sq. Without chords the result is the square
// itself as a single fragment, provided it is no sliver.
func (e *Engine) ShatterWith(sq shatter.Square, chords []shatter.Chord) []Fragment {
	if err := sq.Validate(); err != nil {
		tracer().Errorf("shatter: %v", err)
	}
	placed := make([]shatter.Chord, len(chords))
	for i, c := range chords {
		placed[i] = c.Shifted(sq.Offset)
	}
	pgs, splits := Subdivide(polygon.FromSquare(sq), placed)
	frags := Fragments(pgs, e.conf.AreaThreshold, func() gen.RGB {
		return e.gen.Color(e.conf.MinRGB, e.conf.MaxRGB)
	})
	tracer().Infof("shattered %v with %d chords: %d splits, %d fragments, %d slivers",
		sq, len(chords), splits, len(frags), len(pgs)-len(frags))
	return frags
}
