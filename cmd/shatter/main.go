// Command shatter writes the shatter animation as a sequence of SVG frames.
//
//	shatter -out frames -frames 400 -size 800,600 -seed 7 -resize 200:1024,768
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/shatter"
	"github.com/npillmayer/shatter/anim"
	"github.com/npillmayer/shatter/gen"
	"github.com/npillmayer/shatter/render"
	"github.com/npillmayer/shatter/subdiv"
)

type flagSizeValue struct {
	X, Y float64
}

func (fs *flagSizeValue) String() string {
	return fmt.Sprintf("%g,%g", fs.X, fs.Y)
}

func (fs *flagSizeValue) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return fmt.Errorf("can't parse %q as size", s)
	}
	var err error
	if fs.X, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64); err != nil {
		return err
	}
	if fs.Y, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64); err != nil {
		return err
	}
	if fs.X <= 0 || fs.Y <= 0 {
		return fmt.Errorf("size %q must be positive", s)
	}
	return nil
}

// resizeEvent changes the viewport before a given frame.
type resizeEvent struct {
	Frame int
	Size  flagSizeValue
}

type flagResizeValue []resizeEvent

func (fr *flagResizeValue) String() string {
	var parts []string
	for _, r := range *fr {
		parts = append(parts, fmt.Sprintf("%d:%s", r.Frame, &r.Size))
	}
	return strings.Join(parts, " ")
}

func (fr *flagResizeValue) Set(s string) error {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return fmt.Errorf("can't parse %q as frame:width,height", s)
	}
	var r resizeEvent
	var err error
	if r.Frame, err = strconv.Atoi(parts[0]); err != nil {
		return err
	}
	if err = r.Size.Set(parts[1]); err != nil {
		return err
	}
	*fr = append(*fr, r)
	return nil
}

// flags
var (
	flagConfig string
	flagOut    string
	flagFrames int
	flagEvery  int
	flagSeed   int64
	flagTrace  string
	flagVerify bool
	flagSize   = flagSizeValue{800, 600}
	flagResize flagResizeValue
)

func init() {
	flag.StringVar(&flagConfig, "config", "", "JSON configuration file")
	flag.StringVar(&flagOut, "out", "frames", "output directory for SVG frames")
	flag.IntVar(&flagFrames, "frames", 300, "number of animation ticks")
	flag.IntVar(&flagEvery, "every", 1, "write every n-th frame only")
	flag.Int64Var(&flagSeed, "seed", 0, "random seed (0 seeds from the clock)")
	flag.StringVar(&flagTrace, "trace", "error", "trace level: error, info or debug")
	flag.BoolVar(&flagVerify, "verify", false, "check every shattering for overlapping fragments")
	flag.Var(&flagSize, "size", "viewport size in pixels (width,height)")
	flag.Var(&flagResize, "resize", "resize viewport before a frame (frame:width,height), repeatable")
}

func loadConfig(name string) (shatter.Config, error) {
	if name == "" {
		return shatter.DefaultConfig(), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return shatter.Config{}, err
	}
	defer f.Close()
	return shatter.LoadConfig(f)
}

func setTraceLevel(level string) {
	l := tracing.TraceLevelFromString(level)
	for _, key := range []string{"shatter", "shatter.polygon", "shatter.gen",
		"shatter.subdiv", "shatter.anim", "shatter.render"} {
		tracing.Select(key).SetTraceLevel(l)
	}
}

func writeFrame(name string, size flagSizeValue, p *anim.Player, style render.Style) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	sq := p.Square()
	err = render.Frame(f, int(size.X), int(size.Y), p.Fragments(), p.State().Scale, sq.Center(), style)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func main() {
	fail := func(s string, args ...interface{}) {
		fmt.Fprintf(os.Stderr, s+"\n", args...)
		os.Exit(2)
	}

	flag.Parse()
	setTraceLevel(flagTrace)
	conf, err := loadConfig(flagConfig)
	if err != nil {
		fail("failed to load configuration: %v", err)
	}
	if flagEvery < 1 {
		fail("-every must be at least 1")
	}
	if err := os.MkdirAll(flagOut, 0o755); err != nil {
		fail("failed to create output directory: %v", err)
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	engine := subdiv.NewEngine(conf, gen.New(gen.NewSource(seed)))
	size := flagSize
	player := anim.NewPlayer(engine, shatter.SquareFor(size.X, size.Y, conf.SquareRatio))
	style := render.StyleFrom(conf)
	shatters := 0
	report := func() {
		if shatters == player.Shatters() {
			return
		}
		shatters = player.Shatters()
		fmt.Printf("shattering %d: %s\n", shatters, subdiv.CensusString(subdiv.Census(player.Fragments())))
		if flagVerify {
			if err := subdiv.Verify(player.Fragments(), player.Square()); err != nil {
				fail("shattering %d: %v", shatters, err)
			}
		}
	}
	report()
	for frame := 0; frame < flagFrames; frame++ {
		for _, r := range flagResize {
			if r.Frame == frame {
				size = r.Size
				player.Resize(shatter.SquareFor(size.X, size.Y, conf.SquareRatio))
			}
		}
		player.Tick()
		report()
		if frame%flagEvery != 0 {
			continue
		}
		name := filepath.Join(flagOut, fmt.Sprintf("frame_%05d.svg", frame))
		if err := writeFrame(name, size, player, style); err != nil {
			fail("failed to write %s: %v", name, err)
		}
	}
	fmt.Printf("wrote %d frames to %s (seed %d)\n", (flagFrames+flagEvery-1)/flagEvery, flagOut, seed)
}
