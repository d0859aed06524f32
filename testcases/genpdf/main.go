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

// Command genpdf generates reference images for the canvas test cases.
// Each test case is written as a one-page PDF file, which Ghostscript
// then renders to a grayscale PNG without anti-aliasing. The canvas tests
// compare their output to these images whenever they are present.
//
// Usage:
//
//	go run ./testcases/genpdf [-o dir] [-category name] [-keep-pdf] [-force]
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/schollz/progressbar/v3"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/canvas/testcases"
)

type options struct {
	outDir   string
	category string
	keepPDF  bool
	force    bool
}

func main() {
	var opt options
	flag.StringVar(&opt.outDir, "o", filepath.Join("testdata", "reference"), "output directory")
	flag.StringVar(&opt.category, "category", "", "only generate images for this category")
	flag.BoolVar(&opt.keepPDF, "keep-pdf", false, "keep the intermediate PDF files")
	flag.BoolVar(&opt.force, "force", false, "regenerate existing images")
	flag.Parse()

	if err := run(opt); err != nil {
		slog.Error("reference generation failed", "error", err)
		os.Exit(1)
	}
}

func run(opt options) error {
	if _, err := exec.LookPath("gs"); err != nil {
		return fmt.Errorf("ghostscript not found: %w", err)
	}

	categories := slices.Sorted(maps.Keys(testcases.All))
	if opt.category != "" {
		if _, ok := testcases.All[opt.category]; !ok {
			return fmt.Errorf("unknown category %q", opt.category)
		}
		categories = []string{opt.category}
	}

	if err := os.MkdirAll(opt.outDir, 0o755); err != nil {
		return err
	}

	total := 0
	for _, category := range categories {
		total += len(testcases.All[category])
	}
	pb := progressbar.Default(int64(total), "ghostscript")
	defer pb.Close()

	written, skipped := 0, 0
	for _, category := range categories {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			done, err := generate(opt, name, tc)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if done {
				written++
			} else {
				skipped++
			}
			pb.Add(1)
		}
	}
	slog.Info("reference images ready", "dir", opt.outDir, "written", written, "skipped", skipped)
	return nil
}

// generate writes the reference image for one test case. It returns
// false if the image exists already and opt.force is not set.
func generate(opt options, name string, tc testcases.TestCase) (bool, error) {
	pngPath := filepath.Join(opt.outDir, name+".png")
	if !opt.force {
		if _, err := os.Stat(pngPath); err == nil {
			return false, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return false, err
		}
	}

	pdfPath := filepath.Join(opt.outDir, name+".pdf")
	if err := writePDF(tc, pdfPath); err != nil {
		return false, err
	}
	if !opt.keepPDF {
		defer os.Remove(pdfPath)
	}
	if err := rasterize(pdfPath, pngPath); err != nil {
		return false, err
	}
	return true, nil
}

// writePDF draws the test case in black on a white page of tc.Width by
// tc.Height points.
func writePDF(tc testcases.TestCase, fname string) error {
	paper := &pdf.Rectangle{URx: float64(tc.Width), URy: float64(tc.Height)}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// The canvas has its origin at the top left, with y pointing down.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
	if ctm := tc.Transform(); ctm != matrix.Identity {
		page.Transform(ctm)
	}

	page.SetFillColor(color.DeviceGray(0))
	page.SetStrokeColor(color.DeviceGray(0))

	stroke, isStroke := tc.Op.(testcases.Stroke)
	if isStroke {
		// Stroke parameters must be set before the path is constructed.
		page.SetLineWidth(stroke.Width)
		page.SetLineCap(stroke.Cap)
		page.SetLineJoin(stroke.Join)
		page.SetMiterLimit(stroke.MiterLimit)
		if len(stroke.Dash) > 0 {
			page.SetLineDash(stroke.Dash, stroke.DashPhase)
		}
	}

	for cmd, pts := range tc.Path.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}

	switch {
	case isStroke:
		page.Stroke()
	case tc.Op.(testcases.Fill).Rule == testcases.EvenOdd:
		page.FillEvenOdd()
	default:
		page.Fill()
	}

	return page.Close()
}

// rasterize renders the first page of a PDF file into an 8-bit gray PNG
// at one pixel per point, with anti-aliasing switched off.
func rasterize(pdfPath, pngPath string) error {
	cmd := exec.Command("gs", "-q", "-dSAFER", "-dBATCH", "-dNOPAUSE",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=1",
		"-dTextAlphaBits=1",
		"-o", pngPath,
		pdfPath,
	)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("gs: %w: %s", err, out)
	}
	return nil
}
