// Command dlview loads a YAML scene, paints it to a PNG through the tiled
// rasterizer and optionally dumps the display list or hit tests points.
//
//	dlview -config render.toml -o page.png -hit 40,30 scene.yaml
//
// With -backend the page is painted in one pass through a backend from the
// recording registry; -backend recording also lists the recorded commands.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"github.com/muesli/termenv"

	"github.com/gogpu/dlist"
	"github.com/gogpu/dlist/geom"
	"github.com/gogpu/dlist/raster"
	"github.com/gogpu/dlist/recording"
	"github.com/gogpu/dlist/scenefile"
	"github.com/gogpu/dlist/tile"
)

type hitFlags []geom.Point

func (h *hitFlags) String() string {
	parts := make([]string, len(*h))
	for i, p := range *h {
		x, y := geom.PointF(p)
		parts[i] = fmt.Sprintf("%g,%g", x, y)
	}
	return strings.Join(parts, " ")
}

func (h *hitFlags) Set(s string) error {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return fmt.Errorf("want x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 32)
	if err != nil {
		return err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 32)
	if err != nil {
		return err
	}
	*h = append(*h, geom.PointFromF(float32(x), float32(y)))
	return nil
}

func main() {
	var (
		configPath = flag.String("config", "", "TOML render config")
		output     = flag.String("o", "", "output PNG (overrides config)")
		scale      = flag.Float64("scale", 0, "device pixels per CSS pixel (overrides config)")
		tileSize   = flag.Int("tile", 0, "tile size in pixels (overrides config)")
		workers    = flag.Int("workers", 0, "paint workers, 0 for GOMAXPROCS (overrides config)")
		dump       = flag.Bool("dump", false, "print the display list tree")
		dumpOpt    = flag.Bool("dump-optimized", false, "print each optimized display list while painting")
		noPaint    = flag.Bool("n", false, "skip painting")
		backend    = flag.String("backend", "", "paint in one pass through a registered backend ("+
			strings.Join(recording.Backends(), ", ")+") instead of the tiled painter")
		verbose    = flag.Bool("v", false, "debug logging")
		hits       hitFlags
	)
	flag.Var(&hits, "hit", "hit test the point x,y (repeatable)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: dlview [flags] scene.yaml")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg := scenefile.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = scenefile.LoadConfig(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output = *output
		case "scale":
			cfg.Scale = float32(*scale)
		case "tile":
			cfg.Tiles.Size = *tileSize
		case "workers":
			cfg.Tiles.Workers = *workers
		case "dump":
			cfg.Debug.Dump = *dump
		case "dump-optimized":
			cfg.Debug.DumpOptimized = *dumpOpt
		case "v":
			if *verbose {
				cfg.LogLevel = "debug"
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	level, _ := cfg.Level()
	dlist.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	scene, err := scenefile.Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	out := termenv.NewOutput(os.Stdout)
	if cfg.Debug.Dump {
		dumpTree(out, scene.Root)
	}
	if len(hits) > 0 {
		printHits(out, scene.Root, hits)
	}
	if *noPaint {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	if *backend != "" {
		err = renderWith(*backend, cfg, scene, out)
	} else {
		err = render(ctx, cfg, scene, out)
	}
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	log.Printf("Scene saved to %s (%dx%d at %gx) in %v\n",
		cfg.Output, scene.Width, scene.Height, cfg.Scale, time.Since(start).Round(time.Millisecond))
}

func render(ctx context.Context, cfg scenefile.Config, scene *scenefile.Scene, out *termenv.Output) error {
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return err
	}
	opts := []tile.Option{
		tile.WithScale(cfg.Scale),
		tile.WithTileSize(cfg.Tiles.Size),
		tile.WithWorkers(cfg.Tiles.Workers),
	}
	if bg != nil {
		opts = append(opts, tile.WithBackground(bg))
	}
	if cfg.Debug.DumpOptimized {
		// Dumps from concurrent tiles would interleave.
		heading(out, "Optimized display lists")
		opts = append(opts, tile.WithWorkers(1), tile.WithPaintOptions(dlist.WithDumpOptimized(out)))
	}

	w, h := deviceSize(cfg, scene)
	img, err := tile.NewPainter(opts...).Paint(ctx, scene.Root, w, h)
	if err != nil {
		return err
	}
	return writePNG(cfg.Output, img)
}

// renderWith paints the whole page in one pass into a backend picked by
// name. A recording is summarized, then played back into a raster canvas
// for the PNG.
func renderWith(name string, cfg scenefile.Config, scene *scenefile.Scene, out *termenv.Output) error {
	w, h := deviceSize(cfg, scene)
	b, err := recording.NewBackend(name, w, h)
	if err != nil {
		return err
	}

	var paintOpts []dlist.PaintOption
	if cfg.Debug.DumpOptimized {
		heading(out, "Optimized display lists")
		paintOpts = append(paintOpts, dlist.WithDumpOptimized(out))
	}
	scene.Root.Paint(dlist.NewPaintContext(b, paintOpts...), scene.PageRect(),
		geom.Scaling(cfg.Scale, cfg.Scale), nil)

	bg, err := cfg.BackgroundColor()
	if err != nil {
		return err
	}
	switch b := b.(type) {
	case *raster.Canvas:
		return writePNG(cfg.Output, flatten(b.Image(), bg))
	case *recording.Recorder:
		r := b.FinishRecording()
		printCommands(out, r)
		c := raster.New(w, h)
		r.Playback(c)
		return writePNG(cfg.Output, flatten(c.Image(), bg))
	default:
		return fmt.Errorf("backend %q has no image output", name)
	}
}

// flatten composites img over bg. A nil bg leaves img as is.
func flatten(img *image.RGBA, bg color.Color) *image.RGBA {
	if bg == nil {
		return img
	}
	dst := image.NewRGBA(img.Rect)
	draw.Draw(dst, dst.Rect, image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Rect, img, img.Rect.Min, draw.Over)
	return dst
}

func deviceSize(cfg scenefile.Config, scene *scenefile.Scene) (int, int) {
	return int(float32(scene.Width)*cfg.Scale + 0.5), int(float32(scene.Height)*cfg.Scale + 0.5)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printCommands(out *termenv.Output, r *recording.Recording) {
	heading(out, "Recorded commands")
	counts := make(map[recording.CommandType]int)
	var order []recording.CommandType
	for _, cmd := range r.Commands() {
		if counts[cmd.Type()] == 0 {
			order = append(order, cmd.Type())
		}
		counts[cmd.Type()]++
	}
	for _, t := range order {
		fmt.Fprintf(out, "  %-24s %d\n", t, counts[t])
	}
}

func heading(out *termenv.Output, title string) {
	fmt.Fprintln(out, out.String("== "+title+" ==").Bold().Foreground(out.Color("12")))
}

func dumpTree(out *termenv.Output, root *dlist.StackingContext) {
	var walk func(w io.Writer, sc *dlist.StackingContext, depth int)
	walk = func(w io.Writer, sc *dlist.StackingContext, depth int) {
		indent := strings.Repeat("  ", depth)
		label := fmt.Sprintf("%sstacking context z=%d bounds=%s", indent, sc.ZIndex, geom.FormatRect(sc.Bounds))
		if len(sc.Filters) > 0 {
			label += " filters=" + sc.Filters.String()
		}
		if sc.Layer != nil {
			label += fmt.Sprintf(" layer=%d", sc.Layer.ID)
		}
		fmt.Fprintln(w, out.String(label).Foreground(out.Color("10")))
		for _, item := range sc.DisplayList.AllDisplayItems() {
			dlist.DebugWithLevel(w, item, depth+1)
		}
		for kid := range sc.DisplayList.Children.All() {
			walk(w, kid, depth+1)
		}
	}
	heading(out, "Display list")
	walk(out, root, 0)
}

func printHits(out *termenv.Output, root *dlist.StackingContext, points []geom.Point) {
	heading(out, "Hit test")
	for _, p := range points {
		x, y := geom.PointF(p)
		result := root.HitTest(p, nil, false)
		if len(result) == 0 {
			fmt.Fprintf(out, "(%g, %g): nothing\n", x, y)
			continue
		}
		fmt.Fprintf(out, "(%g, %g):\n", x, y)
		for _, m := range result {
			fmt.Fprintf(out, "  node %d cursor %s\n", m.Node.ID(), m.Pointing)
		}
	}
}
