// Command textoverlay rasterizes a text overlay description into a PNG.
//
// Usage:
//
//	textoverlay -in overlay.yaml -out text.png [-config textoverlay.yaml] [-v]
//
// The overlay document sets the text, anchor quadrant, canvas size, and
// style. Only the text bitmap is written; the computed anchor position and
// display scale are printed so a compositor can place it.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/photoedit"
)

func main() {
	var (
		input   = flag.String("in", "overlay.yaml", "overlay document")
		output  = flag.String("out", "text.png", "output PNG file")
		cfgPath = flag.String("config", os.Getenv("PHOTOEDIT_CONFIG"), "config file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if err := run(*input, *output, *cfgPath, *verbose); err != nil {
		log.Fatal(err)
	}
}

func run(input, output, cfgPath string, verbose bool) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level := new(slog.LevelVar)
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	if verbose {
		level.Set(slog.LevelDebug)
	}
	photoedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	doc, err := readOverlayFile(input)
	if err != nil {
		return fmt.Errorf("read overlay: %w", err)
	}

	loader := photoedit.NewAssetFontLoader(os.DirFS(cfg.Assets.Dir))
	defer func() {
		_ = loader.Close()
	}()

	obj, err := doc.build(cfg, loader)
	if err != nil {
		return fmt.Errorf("build text object: %w", err)
	}

	if err := obj.Bitmap().SavePNG(output); err != nil {
		return fmt.Errorf("save %s: %w", output, err)
	}

	fmt.Printf("%s %dx%d at (%d,%d) scale %.2f\n",
		output, obj.Bitmap().Width(), obj.Bitmap().Height(), obj.X(), obj.Y(), obj.Scale())
	return nil
}
