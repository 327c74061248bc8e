package render

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/npillmayer/shatter"
	"github.com/npillmayer/shatter/gen"
	"golang.org/x/net/html/charset"
)

// ErrMalformedFrame is returned for SVG input not structured like a frame.
var ErrMalformedFrame = errors.New("malformed frame")

// Shape is a filled polygon as found in a frame, in pixel coordinates.
type Shape struct {
	Points []shatter.Point
	Fill   gen.RGB
}

// Image is the content of a frame.
type Image struct {
	Width, Height float64
	Shapes        []Shape
}

// ReadFrame parses an SVG frame as written by Frame. Only polygons are
// extracted; everything else is skipped.
func ReadFrame(r io.Reader) (*Image, error) {
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	decoder := xml.NewDecoder(bytes.NewReader(raw))
	decoder.CharsetReader = charset.NewReaderLabel
	elt, err := svgparser.DecodeFirst(decoder)
	if err != nil {
		return nil, err
	}
	if err := elt.Decode(decoder); err != nil && err != io.EOF {
		return nil, err
	}
	img := &Image{}
	unit, err := parseBounds(img, elt)
	if err != nil {
		return nil, err
	}
	if err := parseShapes(img, unit, elt); err != nil {
		return nil, err
	}
	return img, nil
}

// parseBounds reads width and height and returns the size of a view box unit
// in pixels.
func parseBounds(img *Image, e *svgparser.Element) (float64, error) {
	if e.Name != "svg" {
		return 0, fmt.Errorf("%w: root element is %q", ErrMalformedFrame, e.Name)
	}
	var err error
	if img.Width, err = strconv.ParseFloat(e.Attributes["width"], 64); err != nil {
		return 0, fmt.Errorf("%w: width: %v", ErrMalformedFrame, err)
	}
	if img.Height, err = strconv.ParseFloat(e.Attributes["height"], 64); err != nil {
		return 0, fmt.Errorf("%w: height: %v", ErrMalformedFrame, err)
	}
	vb := strings.Fields(e.Attributes["viewBox"])
	if len(vb) != 4 {
		return 1, nil
	}
	vw, err := strconv.ParseFloat(vb[2], 64)
	if err != nil || vw <= 0 {
		return 0, fmt.Errorf("%w: view box %q", ErrMalformedFrame, e.Attributes["viewBox"])
	}
	return img.Width / vw, nil
}

func parseShapes(img *Image, unit float64, e *svgparser.Element) error {
	for _, c := range e.Children {
		switch c.Name {
		case "g":
			if err := parseShapes(img, unit, c); err != nil {
				return err
			}
		case "polygon":
			shape, err := parsePolygon(unit, c)
			if err != nil {
				return err
			}
			img.Shapes = append(img.Shapes, shape)
		default:
			tracer().Debugf("skipping %q element", c.Name)
		}
	}
	return nil
}

func parsePolygon(unit float64, e *svgparser.Element) (Shape, error) {
	var shape Shape
	for _, xy := range strings.Fields(e.Attributes["points"]) {
		parts := strings.Split(xy, ",")
		if len(parts) != 2 {
			return shape, fmt.Errorf("%w: point %q", ErrMalformedFrame, xy)
		}
		x, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return shape, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
		}
		y, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return shape, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
		}
		shape.Points = append(shape.Points, shatter.P(x*unit, y*unit))
	}
	for _, decl := range strings.Split(e.Attributes["style"], ";") {
		kv := strings.SplitN(decl, ":", 2)
		if len(kv) != 2 || strings.TrimSpace(kv[0]) != "fill" {
			continue
		}
		fill, err := gen.ParseRGB(strings.TrimSpace(kv[1]))
		if err != nil {
			return shape, err
		}
		shape.Fill = fill
	}
	return shape, nil
}
