package main

import (
	"fmt"
	"github.com/celskeggs/waveview/ctrl/util"
	"github.com/celskeggs/waveview/wave/chart"
	"github.com/celskeggs/waveview/wave/datastore"
	"github.com/celskeggs/waveview/wave/model"
	"github.com/celskeggs/waveview/wave/scene"
	"github.com/pkg/errors"
	"log"
	"os"
)

type options struct {
	output        string
	file          string
	width, height int
	dpi           float64
	start, end    float64
	hasStart      bool
	hasEnd        bool
	cursor        float64
	hasCursor     bool
	trace         bool
}

func parseOptions() (opts options, err error) {
	if len(os.Args) < 2 || os.Args[1] == "" || os.Args[1][0] == '-' {
		return opts, errors.New("missing output path")
	}
	opts.output = os.Args[1]
	opts.file, _ = util.ArgValue("--file")
	if opts.width, err = util.ArgInt("--width", 1024); err != nil {
		return opts, err
	}
	if opts.height, err = util.ArgInt("--height", 768); err != nil {
		return opts, err
	}
	if opts.dpi, err = util.ArgFloat("--dpi", 96); err != nil {
		return opts, err
	}
	_, opts.hasStart = util.ArgValue("--start")
	if opts.start, err = util.ArgFloat("--start", 0); err != nil {
		return opts, err
	}
	_, opts.hasEnd = util.ArgValue("--end")
	if opts.end, err = util.ArgFloat("--end", 0); err != nil {
		return opts, err
	}
	_, opts.hasCursor = util.ArgValue("--cursor")
	if opts.cursor, err = util.ArgFloat("--cursor", 0); err != nil {
		return opts, err
	}
	opts.trace = util.HasArg("--trace")
	if opts.width <= 0 || opts.height <= 0 || !(opts.dpi > 0) {
		return opts, errors.Errorf("invalid image size %dx%d at %v dpi", opts.width, opts.height, opts.dpi)
	}
	return opts, nil
}

// window picks the visible range from the flags, defaulting to the whole of
// the data.
func (opts options) window(full model.TimeRange) model.TimeRange {
	rng := full
	if opts.hasStart {
		rng.Start = opts.start
	}
	if opts.hasEnd {
		rng.End = opts.end
	}
	rng = rng.ClampInto(full)
	if rng.Degenerate() {
		log.Printf("Window %v is empty; showing %v", rng, full)
		return full
	}
	return rng
}

func main() {
	if util.HasArg("--help") {
		fmt.Printf("Usage: render <output.{png,jpg,tiff,svg,pdf,eps}> [--file <wave-file>] [--width N] [--height N] [--dpi N] [--start T] [--end T] [--cursor T]\n")
		return
	}
	opts, err := parseOptions()
	if err != nil {
		log.Fatal(err)
	}

	store := datastore.NewTest()
	if opts.file != "" {
		if err := store.Load(opts.file); err != nil {
			log.Printf("Rendering synthetic signals instead: %v", err)
		}
	}

	c := chart.New()
	c.Trace = opts.trace
	c.SetMaxRange(store.TimeRange())
	c.SetRange(opts.window(store.TimeRange()), c.Scale())
	if opts.hasCursor {
		c.SetCursor(opts.cursor)
	}

	sc := scene.NewScene()
	c.Render(sc, store, chart.Viewport{Width: float64(opts.width), Height: float64(opts.height)})
	if err := scene.Save(sc, opts.width, opts.height, opts.dpi, opts.output); err != nil {
		log.Fatal(err)
	}
	log.Printf("Rendered %d signals over %v to %s", store.NumSignals(), c.Range(), opts.output)
}
