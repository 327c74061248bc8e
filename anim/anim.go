// Package anim drives the shatter animation: fragments fly apart from the
// center of the square until a maximum scale is reached, come back together,
// and the square shatters anew.
package anim

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/shatter"
	"github.com/npillmayer/shatter/subdiv"
)

// tracer writes to trace with key 'shatter.anim'
func tracer() tracing.Trace {
	return tracing.Select("shatter.anim")
}

// Phase is the direction of the scale change.
type Phase int

// Animation phases
const (
	Growing Phase = iota
	Shrinking
)

func (ph Phase) String() string {
	switch ph {
	case Growing:
		return "growing"
	case Shrinking:
		return "shrinking"
	}
	return fmt.Sprintf("phase(%d)", int(ph))
}

// State is the animation state between two ticks.
type State struct {
	Scale float64
	Phase Phase
}

// Start is the initial state: assembled and about to grow.
func Start() State {
	return State{Scale: 1.0, Phase: Growing}
}

// Next advances s by one tick of size speed. Scales are clamped to
// [1,maxScale]; reaching maxScale turns growing into shrinking, reaching 1
// turns shrinking into growing. The second return value is true for the
// latter transition only, which is when the square re-shatters.
func Next(s State, speed, maxScale float64) (State, bool) {
	switch s.Phase {
	case Growing:
		s.Scale += speed
		if s.Scale >= maxScale {
			s.Scale = maxScale
			s.Phase = Shrinking
		}
	case Shrinking:
		s.Scale -= speed
		if s.Scale <= 1.0 {
			s.Scale = 1.0
			s.Phase = Growing
			return s, true
		}
	}
	return s, false
}

// Player owns the fragments of the current shattering and replaces them
// whenever the animation re-assembles or the square changes.
// Fragment lists handed out by a player are stale after the next shattering.
type Player struct {
	engine   *subdiv.Engine
	square   shatter.Square
	state    State
	frags    []subdiv.Fragment
	shatters int
}

// NewPlayer creates a player for square sq and shatters it for the first time.
func NewPlayer(e *subdiv.Engine, sq shatter.Square) *Player {
	p := &Player{engine: e, state: Start()}
	p.Resize(sq)
	return p
}

func (p *Player) shatter() {
	p.frags = p.engine.Shatter(p.square)
	p.shatters++
	tracer().Infof("shattering #%d: %d fragments", p.shatters, len(p.frags))
}

// Tick advances the animation by one step and returns the new state.
func (p *Player) Tick() State {
	conf := p.engine.Config()
	var reassembled bool
	p.state, reassembled = Next(p.state, conf.Speed, conf.MaxScale)
	if reassembled {
		p.shatter()
	}
	return p.state
}

// Resize moves the animation to a new square, which is shattered immediately.
func (p *Player) Resize(sq shatter.Square) {
	p.square = sq
	p.shatter()
}

// Fragments returns the current fragments.
func (p *Player) Fragments() []subdiv.Fragment {
	return p.frags
}

// State returns the current animation state.
func (p *Player) State() State {
	return p.state
}

// Square returns the square being animated.
func (p *Player) Square() shatter.Square {
	return p.square
}

// Shatters returns how often the square has been shattered so far.
func (p *Player) Shatters() int {
	return p.shatters
}
