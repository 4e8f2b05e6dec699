package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/comalice/tickloop"
	"github.com/comalice/tickloop/video"
	"github.com/comalice/tickloop/video/raylib"
)

// Windowed demo: bouncing square, ESC to quit. Pass -config to drive the
// builder from a YAML file instead of the defaults.

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	verbose := flag.Bool("v", false, "enable driver debug logging")
	flag.Parse()

	if *verbose {
		video.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	b := tickloop.New().
		Title("tickloop demo").
		Size(800, 450).
		EnableVideo()

	if *configPath != "" {
		cfg, err := tickloop.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		b = tickloop.New().FromConfig(cfg)
	}

	rt, err := b.Driver(raylib.New(raylib.WithTargetFPS(60))).Build()
	if err != nil {
		log.Fatal(err)
	}
	defer rt.Close()

	var (
		x, y   int32 = 100, 100
		dx, dy int32 = 4, 3
	)

	err = rt.RunWith(func(rt *tickloop.Runtime) error {
		d := rt.Driver()

		if d.IsKeyPressed(video.KeyEscape) {
			rt.Shutdown()
			return nil
		}

		x += dx
		y += dy
		if x < 0 || x > 760 {
			dx = -dx
		}
		if y < 0 || y > 410 {
			dy = -dy
		}

		d.ClearBackground(video.RayWhite)
		d.DrawRectangle(x, y, 40, 40, video.Maroon)
		d.DrawText("ESC to quit", 10, 10, 20, video.DarkGray)
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("bye")
}
