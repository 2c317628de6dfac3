// Command drawdemo records a small map-like scene and renders it to PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/drawlib"
	"github.com/gogpu/drawlib/recording"
	"github.com/gogpu/drawlib/recording/backends/raster"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML configuration file")
		width      = flag.Int("width", 0, "image width (overrides config)")
		height     = flag.Int("height", 0, "image height (overrides config)")
		output     = flag.String("output", "drawdemo.png", "output file")
		texture    = flag.String("texture", "", "image used as a tiled fill")
		verbose    = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		drawlib.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := drawlib.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = drawlib.LoadConfig(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *width > 0 {
		cfg.Raster.Width = *width
	}
	if *height > 0 {
		cfg.Raster.Height = *height
	}
	if cfg.Raster.Background == "" {
		cfg.Raster.Background = "#1a2633"
	}

	backend, err := raster.NewBackendFromConfig(&cfg)
	if err != nil {
		log.Fatalf("Failed to create backend: %v", err)
	}

	rec := recording.NewRecorder(recording.WithRenderer(backend), recording.WithContinueOnError())
	w, h := float64(cfg.Raster.Width), float64(cfg.Raster.Height)

	recordLand(rec, w, h, *texture)
	recordRoads(rec, w, h)
	recordLabels(rec, w, h, cfg.Curve.Fitter())

	drawlib.Logger().Info("drawdemo: replay", "commands", rec.Len())
	if err := rec.Draw(); err != nil {
		log.Printf("Replay finished with errors: %v", err)
	}

	if err := backend.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, cfg.Raster.Width, cfg.Raster.Height)
}

// recordLand adds an island with two lakes. With a texture the island is
// filled with it; otherwise a solid green is used.
func recordLand(rec *recording.Recorder, w, h float64, texture string) {
	island := drawlib.Polygon{
		Outer: ellipse(w*0.5, h*0.5, w*0.42, h*0.38, 48),
		Holes: []drawlib.Contour{
			ellipse(w*0.35, h*0.42, w*0.08, h*0.06, 24),
			ellipse(w*0.62, h*0.6, w*0.06, h*0.09, 24),
		},
	}
	props := drawlib.NewShapeProperties(0.3, 0.6, 0.3)
	if texture != "" {
		rec.AddLoadImageResources(map[string]string{"land": texture})
		props.ImageID = "land"
	}
	rec.AddDrawPolygons([]drawlib.Polygon{island}, props)
	if texture != "" {
		rec.AddUnloadImageResources([]string{"land"})
	}
}

func recordRoads(rec *recording.Recorder, w, h float64) {
	casing := drawlib.NewLineProperties(0.2, 0.2, 0.2, 9)
	casing.Cap = drawlib.CapRound
	casing.Join = drawlib.JoinRound
	fill := drawlib.NewLineProperties(1, 0.85, 0.4, 6)
	fill.Cap = drawlib.CapRound
	fill.Join = drawlib.JoinRound

	roads := []drawlib.Contour{
		{{X: w * 0.15, Y: h * 0.7}, {X: w * 0.4, Y: h * 0.62}, {X: w * 0.55, Y: h * 0.35}, {X: w * 0.85, Y: h * 0.3}},
		{{X: w * 0.45, Y: h * 0.85}, {X: w * 0.5, Y: h * 0.5}},
	}
	rec.AddDrawLines(roads, casing)
	rec.AddDrawLines(roads, fill)

	ring := drawlib.NewLineProperties(1, 1, 1, 2)
	ring.ClosedLoop = true
	ring.Join = drawlib.JoinBevel
	rec.AddDrawLines([]drawlib.Contour{ellipse(w*0.5, h*0.5, w*0.44, h*0.4, 48)}, ring)
}

func recordLabels(rec *recording.Recorder, w, h float64, fitter drawlib.CurveFitter) {
	title := drawlib.NewTextProperties(1, 1, 1)
	title.FontSize = h / 16
	title.HAlign, title.VAlign = 0.5, 0
	title.Outline = true
	title.LR, title.LG, title.LB = 0, 0, 0
	title.LineWidth = 2
	rec.AddDrawText([]drawlib.TextLabel{{Text: "Drawlib Island", X: w / 2, Y: h * 0.03}}, title)

	lake := drawlib.NewTextProperties(0.7, 0.85, 1)
	lake.Font = "Serif"
	lake.FontSize = h / 40
	lake.HAlign, lake.VAlign = 0.5, 0.5
	rec.AddDrawText([]drawlib.TextLabel{
		{Text: "North Lake", X: w * 0.35, Y: h * 0.42},
		{Text: "South Lake", X: w * 0.62, Y: h * 0.6, Angle: -math.Pi / 2},
	}, lake)

	road := drawlib.NewTextProperties(0.1, 0.1, 0.1)
	road.FontSize = h / 45
	road.HAlign = 0.5
	baseline := drawlib.Contour{{X: w * 0.15, Y: h * 0.685}, {X: w * 0.4, Y: h * 0.605}, {X: w * 0.55, Y: h * 0.335}, {X: w * 0.85, Y: h * 0.285}}
	rec.AddDrawTwistedText([]drawlib.TwistedTextLabel{{Text: "Coast Road", Path: fitter.Fit(baseline)}}, road)
}

func ellipse(cx, cy, rx, ry float64, n int) drawlib.Contour {
	c := make(drawlib.Contour, n)
	for i := range c {
		a := 2 * math.Pi * float64(i) / float64(n)
		c[i] = drawlib.Pt(cx+rx*math.Cos(a), cy+ry*math.Sin(a))
	}
	return c
}
