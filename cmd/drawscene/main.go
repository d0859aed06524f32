// seehuhn.de/go/canvas - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command drawscene renders a YAML scene file to an image.
//
// Usage:
//
//	drawscene [-o out.png] [-scale n] [-watch] [-v] scene.yaml
//
// The output format is chosen by the file name extension of the output
// file: .png, .tif/.tiff or .bmp. With -watch, the image is rendered again
// whenever the scene file changes.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/tiff"

	"seehuhn.de/go/canvas"
	"seehuhn.de/go/canvas/scene"
)

func main() {
	out := flag.String("o", "", "output file (default: scene name with .png)")
	scale := flag.Int("scale", 1, "integer upscaling factor for the output")
	watch := flag.Bool("watch", false, "render again when the scene file changes")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] scene.yaml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	canvas.SetLogger(logger)

	in := flag.Arg(0)
	if *out == "" {
		*out = strings.TrimSuffix(in, filepath.Ext(in)) + ".png"
	}
	if *scale < 1 {
		logger.Error("invalid scale", "scale", *scale)
		os.Exit(2)
	}

	err := render(in, *out, *scale)
	if err == nil {
		logger.Info("image written", "file", *out)
	}
	if *watch {
		if err != nil {
			logger.Error("render failed", "error", err)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = watchScene(ctx, logger, in, func() error {
			return render(in, *out, *scale)
		})
	}
	if err != nil {
		logger.Error("drawscene failed", "error", err)
		os.Exit(1)
	}
}

func render(in, out string, scale int) error {
	s, err := scene.Load(in)
	if err != nil {
		return err
	}
	bm, err := s.Render()
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}

	var img image.Image = bm.NRGBA()
	if scale > 1 {
		img = upscale(img, scale)
	}
	return writeImage(out, img)
}

// upscale enlarges img by an integer factor without smoothing, so that
// individual pixels stay visible.
func upscale(img image.Image, scale int) image.Image {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	s := float64(scale)
	m := f64.Aff3{
		s, 0, -s * float64(b.Min.X),
		0, s, -s * float64(b.Min.Y),
	}
	draw.NearestNeighbor.Transform(dst, m, img, b, draw.Src, nil)
	return dst
}

func writeImage(fname string, img image.Image) error {
	var encode func(io.Writer, image.Image) error
	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".png":
		encode = png.Encode
	case ".tif", ".tiff":
		encode = func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}
	case ".bmp":
		encode = bmp.Encode
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", fname, err)
	}
	return f.Close()
}

// watchScene calls update every time the scene file is written, until ctx
// is cancelled. The directory is watched rather than the file itself,
// since many editors replace files on save.
func watchScene(ctx context.Context, logger *slog.Logger, fname string, update func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	abs, err := filepath.Abs(fname)
	if err != nil {
		return err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", fname, err)
	}
	logger.Info("watching for changes", "file", fname)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return errors.New("watcher closed")
			}
			if filepath.Clean(ev.Name) != abs || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			if err := update(); err != nil {
				logger.Error("render failed", "error", err)
			} else {
				logger.Info("image updated", "file", fname)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return errors.New("watcher closed")
			}
			logger.Warn("watch error", "error", err)
		}
	}
}
