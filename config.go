package shatter

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrLineRange indicates an empty or non-positive chord count range.
	ErrLineRange = errors.New("chord count range must satisfy 1 <= min_lines <= max_lines")
	// ErrColorRange indicates a color channel range outside 0..255 or inverted.
	ErrColorRange = errors.New("color range must satisfy 0 <= min_rgb <= max_rgb <= 255")
	// ErrAreaThreshold indicates a negative sliver threshold.
	ErrAreaThreshold = errors.New("area threshold must not be negative")
	// ErrScale indicates a maximum scale below 1.
	ErrScale = errors.New("max scale must be at least 1.0")
	// ErrSpeed indicates a non-positive animation step.
	ErrSpeed = errors.New("speed must be positive")
)

// Config collects the tunables of shattering, animation and rendering.
type Config struct {
	// Animation
	Speed    float64 `json:"speed"`     // scale change per animation tick
	MaxScale float64 `json:"max_scale"` // scale at which fragments turn back

	// Geometry
	AreaThreshold float64 `json:"area_threshold"` // fragments must be larger than this
	MinLines      int     `json:"min_lines"`      // chords per subdivision, lower bound
	MaxLines      int     `json:"max_lines"`      // chords per subdivision, upper bound (inclusive)
	SquareRatio   float64 `json:"square_ratio"`   // square side relative to the smaller viewport side

	// Colors
	MinRGB int `json:"min_rgb"`
	MaxRGB int `json:"max_rgb"`

	// Style
	StrokeStyle string  `json:"stroke_style"`
	LineWidth   float64 `json:"line_width"`
}

// DefaultConfig returns the configuration used when nothing else is specified.
func DefaultConfig() Config {
	return Config{
		Speed:         0.03,
		MaxScale:      4.0,
		AreaThreshold: 3,
		MinLines:      3,
		MaxLines:      50,
		SquareRatio:   0.25,
		MinRGB:        100,
		MaxRGB:        255,
		StrokeStyle:   "#000",
		LineWidth:     1,
	}
}

// LoadConfig reads a JSON configuration. Keys missing from the input keep
// their default values.
func LoadConfig(r io.Reader) (Config, error) {
	conf := DefaultConfig()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&conf); err != nil && err != io.EOF {
		return conf, fmt.Errorf("reading configuration: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return conf, err
	}
	tracer().Debugf("configuration loaded: %+v", conf)
	return conf, nil
}

// Validate checks the configuration for values the animation cannot work with.
func (conf Config) Validate() error {
	if conf.MinLines < 1 || conf.MaxLines < conf.MinLines {
		return fmt.Errorf("%w: [%d,%d]", ErrLineRange, conf.MinLines, conf.MaxLines)
	}
	if conf.MinRGB < 0 || conf.MaxRGB > 255 || conf.MaxRGB < conf.MinRGB {
		return fmt.Errorf("%w: [%d,%d]", ErrColorRange, conf.MinRGB, conf.MaxRGB)
	}
	if conf.AreaThreshold < 0 {
		return fmt.Errorf("%w: %g", ErrAreaThreshold, conf.AreaThreshold)
	}
	if conf.MaxScale < 1.0 {
		return fmt.Errorf("%w: %g", ErrScale, conf.MaxScale)
	}
	if conf.Speed <= 0 {
		return fmt.Errorf("%w: %g", ErrSpeed, conf.Speed)
	}
	return nil
}
