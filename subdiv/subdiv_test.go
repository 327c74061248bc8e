package subdiv

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/shatter"
	"github.com/npillmayer/shatter/gen"
	"github.com/npillmayer/shatter/polygon"
	"github.com/stretchr/testify/assert"
)

var grey = func() gen.RGB { return gen.RGB{R: 128, G: 128, B: 128} }

func square100() shatter.Square {
	return shatter.Square{Offset: shatter.Origin, Side: 100}
}

func TestDiagonalMakesTwoTriangles(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := NewEngine(shatter.DefaultConfig(), gen.New(gen.NewSource(1)))
	frags := e.ShatterWith(square100(), []shatter.Chord{{P1: shatter.P(0, 0), P2: shatter.P(100, 100)}})
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(frags))
	}
	for _, f := range frags {
		assert.Equal(t, 3, f.Vertices.N(), "fragment %s", polygon.AsString(f.Vertices))
		assert.InDelta(t, 5000.0, f.Area(), 1e-9)
		pts := f.Vertices.Points()
		mean := (pts[0] + pts[1] + pts[2]).Scaled(1.0 / 3)
		assert.True(t, f.Centroid.Equal(mean), "centroid %v, mean %v", f.Centroid, mean)
		for i, p := range pts {
			assert.True(t, (f.Centroid + f.Offsets[i]).Equal(p))
		}
	}
	assert.True(t, frags[0].Centroid.Equal(shatter.P(100.0/3, 200.0/3)), "got %v", frags[0].Centroid)
	assert.NoError(t, Verify(frags, square100()))
}

func TestNoChordsGiveTheSquare(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := NewEngine(shatter.DefaultConfig(), gen.New(gen.NewSource(1)))
	sq := shatter.Square{Offset: shatter.P(10, 20), Side: 50}
	frags := e.ShatterWith(sq, nil)
	if len(frags) != 1 {
		t.Fatalf("expected a single fragment, got %d", len(frags))
	}
	assert.Equal(t, sq.Corners(), frags[0].Vertices.Points())
	assert.True(t, frags[0].Centroid.Equal(sq.Center()))
	// a square not exceeding the sliver threshold vanishes
	tiny := shatter.Square{Side: 1}
	assert.Empty(t, e.ShatterWith(tiny, nil))
}

func TestChordsAreShiftedToTheSquare(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := NewEngine(shatter.DefaultConfig(), gen.New(gen.NewSource(1)))
	sq := shatter.Square{Offset: shatter.P(300, 200), Side: 100}
	frags := e.ShatterWith(sq, []shatter.Chord{{P1: shatter.P(50, 0), P2: shatter.P(50, 100)}})
	if len(frags) != 2 {
		t.Fatalf("expected 2 fragments, got %d", len(frags))
	}
	assert.True(t, frags[0].Centroid.Equal(shatter.P(325, 250)), "got %v", frags[0].Centroid)
	assert.True(t, frags[1].Centroid.Equal(shatter.P(375, 250)), "got %v", frags[1].Centroid)
}

func TestSubdivideAppliesChordsToAllPolygons(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sq := polygon.FromSquare(square100())
	vertical := shatter.Chord{P1: shatter.P(50, 0), P2: shatter.P(50, 100)}
	horizontal := shatter.Chord{P1: shatter.P(0, 50), P2: shatter.P(100, 50)}
	pgs, splits := Subdivide(sq, []shatter.Chord{vertical, horizontal})
	assert.Len(t, pgs, 4)
	assert.Equal(t, 3, splits)
	// repeating a chord leaves degenerate pieces only, which are slivers
	pgs, splits = Subdivide(sq, []shatter.Chord{vertical, vertical})
	assert.Equal(t, splits+1, len(pgs))
	assert.Len(t, Fragments(pgs, 3, grey), 2)
}

// A chord ending inside the square still uses its infinite line for the side
// test. Polygons it touches without crossing lose the region between.
func TestShortChordExtendsAsLine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sq := polygon.FromSquare(square100())
	vertical := shatter.Chord{P1: shatter.P(50, 0), P2: shatter.P(50, 100)}
	short := shatter.Chord{P1: shatter.P(0, 50), P2: shatter.P(50, 50)}
	pgs, splits := Subdivide(sq, []shatter.Chord{vertical, short})
	assert.Len(t, pgs, 4)
	assert.Equal(t, 3, splits)
	var total float64
	for _, pg := range pgs {
		total += polygon.Area(pg)
	}
	assert.InDelta(t, 7500.0, total, 1e-9)
}

func TestSlivers(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	thin := polygon.FromPoints(shatter.P(0, 0), shatter.P(100, 0), shatter.P(100, 0.02), shatter.P(0, 0.02))
	twoPoints := polygon.FromPoints(shatter.P(0, 0), shatter.P(0, 0), shatter.P(100, 100))
	fat := polygon.Box(shatter.P(0, 0), shatter.P(10, 10))
	assert.True(t, IsSliver(thin, 3))
	assert.True(t, IsSliver(twoPoints, 0))
	assert.False(t, IsSliver(fat, 3))
	frags := Fragments([]*polygon.Polygon{thin, fat, twoPoints}, 3, grey)
	assert.Len(t, frags, 1)
	assert.Equal(t, 100.0, frags[0].Area())
}

// Random shatterings keep the fragment invariants and tile the square.
func TestRandomShatterings(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	conf := shatter.DefaultConfig()
	g := gen.New(gen.NewSource(2024))
	e := NewEngine(conf, g)
	sq := shatter.Square{Offset: shatter.P(40, 60), Side: 200}
	for round := 0; round < 25; round++ {
		chords := g.Lines(g.LineCount(conf.MinLines, conf.MaxLines), sq.Side)
		placed := make([]shatter.Chord, len(chords))
		for i, c := range chords {
			placed[i] = c.Shifted(sq.Offset)
		}
		pgs, splits := Subdivide(polygon.FromSquare(sq), placed)
		assert.Equal(t, splits+1, len(pgs), "every split adds exactly one polygon")
		var all float64
		for _, pg := range pgs {
			all += polygon.Area(pg)
		}
		assert.InDelta(t, sq.Side*sq.Side, all, 1e-6, "cutting must conserve area")

		frags := e.ShatterWith(sq, chords)
		assert.LessOrEqual(t, len(frags), splits+1)
		var total float64
		for _, f := range frags {
			assert.GreaterOrEqual(t, f.Vertices.N(), 3)
			assert.Greater(t, f.Area(), conf.AreaThreshold)
			assert.True(t, f.Centroid.Equal(polygon.Centroid(f.Vertices)))
			assert.Len(t, f.Offsets, f.Vertices.N())
			total += f.Area()
		}
		assert.LessOrEqual(t, total, sq.Side*sq.Side+1e-6)
		assert.Greater(t, total, sq.Side*sq.Side-float64(len(pgs))*conf.AreaThreshold-1e-6,
			"only slivers may get lost")
		assert.NoError(t, Verify(frags, sq), "round %d", round)
	}
}

func TestShatterDrawsFromConfiguredRange(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	conf := shatter.DefaultConfig()
	conf.MinLines, conf.MaxLines = 1, 1
	e := NewEngine(conf, gen.New(gen.NewSource(5)))
	sq := shatter.Square{Side: 100}
	for i := 0; i < 20; i++ {
		frags := e.Shatter(sq)
		assert.True(t, len(frags) >= 1 && len(frags) <= 2, "one chord yields one or two fragments, got %d", len(frags))
		for _, f := range frags {
			for _, ch := range []uint8{f.Color.R, f.Color.G, f.Color.B} {
				assert.True(t, int(ch) >= conf.MinRGB && int(ch) < conf.MaxRGB)
			}
		}
	}
	assert.Equal(t, conf, e.Config())
}

func TestVerifyDetectsOverlap(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sq := square100()
	a := NewFragment(polygon.Box(shatter.P(0, 0), shatter.P(60, 60)), grey())
	b := NewFragment(polygon.Box(shatter.P(20, 20), shatter.P(70, 70)), grey())
	assert.True(t, errors.Is(Verify([]Fragment{a, b}, sq), ErrOverlap))
	whole := NewFragment(polygon.FromSquare(sq), grey())
	assert.True(t, errors.Is(Verify([]Fragment{whole, a}, sq), ErrAreaExcess))
	assert.NoError(t, Verify([]Fragment{whole}, sq))
	assert.NoError(t, Verify(nil, sq))
}

func TestCensus(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	e := NewEngine(shatter.DefaultConfig(), nil)
	frags := e.ShatterWith(square100(), []shatter.Chord{
		{P1: shatter.P(0, 0), P2: shatter.P(100, 100)},
		{P1: shatter.P(50, 0), P2: shatter.P(50, 100)},
	})
	census := Census(frags)
	assert.Equal(t, 2, census.Size())
	assert.Equal(t, "3-gons:2 4-gons:2", CensusString(census))
	assert.Equal(t, "", CensusString(Census(nil)))
}
