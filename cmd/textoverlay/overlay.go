package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/photoedit"
)

// overlay is the YAML description of one text object.
type overlay struct {
	Text     string       `yaml:"text"`
	Quadrant string       `yaml:"quadrant,omitempty"`
	Canvas   canvasSize   `yaml:"canvas,omitempty"`
	Style    overlayStyle `yaml:"style,omitempty"`
	Scale    float64      `yaml:"scale,omitempty"`
	Handles  handleSizes  `yaml:"handles,omitempty"`
}

// handleSizes are the editor's rotate and delete handle sizes as "WxH".
// Corner placements are inset by them.
type handleSizes struct {
	Rotate string `yaml:"rotate,omitempty"`
	Delete string `yaml:"delete,omitempty"`
}

type canvasSize struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

type overlayStyle struct {
	Size            int    `yaml:"size,omitempty"`
	MaxSize         int    `yaml:"max_size,omitempty"`
	Color           string `yaml:"color,omitempty"`
	Typeface        string `yaml:"typeface,omitempty"`
	Bold            bool   `yaml:"bold,omitempty"`
	Italic          bool   `yaml:"italic,omitempty"`
	DebugBackground bool   `yaml:"debug_background,omitempty"`
}

// readOverlay decodes an overlay document. Unknown keys are rejected.
func readOverlay(r io.Reader) (overlay, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return overlay{}, fmt.Errorf("read overlay: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc overlay
	if err := dec.Decode(&doc); err != nil {
		return overlay{}, fmt.Errorf("parse overlay: %w", err)
	}
	return doc, nil
}

// readOverlayFile decodes the overlay document at path.
func readOverlayFile(path string) (overlay, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return overlay{}, err
	}
	defer func() {
		_ = f.Close()
	}()
	return readOverlay(f)
}

// build creates the text object described by doc. Canvas dimensions
// missing from doc come from cfg.
func (doc overlay) build(cfg Config, loader photoedit.FontLoader) (*photoedit.TextObject, error) {
	q := photoedit.Center
	if doc.Quadrant != "" {
		var err error
		if q, err = photoedit.ParseQuadrant(doc.Quadrant); err != nil {
			return nil, err
		}
	}

	width, height := doc.Canvas.Width, doc.Canvas.Height
	if width <= 0 {
		width = cfg.Canvas.Width
	}
	if height <= 0 {
		height = cfg.Canvas.Height
	}

	opts := []photoedit.TextObjectOption{
		photoedit.WithFontLoader(loader),
		photoedit.WithTypeface(doc.Style.Typeface),
		photoedit.WithBold(doc.Style.Bold),
		photoedit.WithItalic(doc.Style.Italic),
	}
	if doc.Style.Size > 0 {
		opts = append(opts, photoedit.WithTextSize(doc.Style.Size))
	}
	if doc.Style.MaxSize > 0 {
		opts = append(opts, photoedit.WithMaxTextSize(doc.Style.MaxSize))
	}
	if doc.Style.Color != "" {
		c, err := photoedit.ParseHex(doc.Style.Color)
		if err != nil {
			return nil, err
		}
		opts = append(opts, photoedit.WithColor(c))
	}
	if doc.Style.DebugBackground {
		opts = append(opts, photoedit.WithBackground(photoedit.DebugBackground))
	}
	if doc.Scale != 0 {
		opts = append(opts, photoedit.WithInitialScale(doc.Scale))
	}

	rotateBm, err := handleBitmap(doc.Handles.Rotate)
	if err != nil {
		return nil, fmt.Errorf("rotate handle: %w", err)
	}
	deleteBm, err := handleBitmap(doc.Handles.Delete)
	if err != nil {
		return nil, fmt.Errorf("delete handle: %w", err)
	}

	return photoedit.NewTextObject(doc.Text, q, width, height, rotateBm, deleteBm, opts...)
}

// handleBitmap returns a blank bitmap of the "WxH" size, or nil for "".
func handleBitmap(size string) (*photoedit.Bitmap, error) {
	if size == "" {
		return nil, nil
	}
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(size)), "x")
	if !ok {
		return nil, fmt.Errorf("size %q: want WxH", size)
	}
	w, err := strconv.Atoi(strings.TrimSpace(ws))
	if err != nil {
		return nil, fmt.Errorf("size %q: %w", size, err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(hs))
	if err != nil {
		return nil, fmt.Errorf("size %q: %w", size, err)
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("size %q: dimensions must be positive", size)
	}
	return photoedit.NewBitmap(w, h), nil
}
