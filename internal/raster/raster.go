package raster

import (
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// Rasterize draws the wrapped, centered caption onto a white canvas and
// writes it as a PNG frame. A missing or unreadable preferred font falls
// back to the bundled default face rather than failing the frame.
func (r *implRasterizer) Rasterize(text, outPath string) error {
	dc := gg.NewContext(r.width, r.height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	if err := r.setFont(dc); err != nil {
		return err
	}
	dc.SetRGB(0, 0, 0)

	lines := Wrap(text, r.wrapWidth)

	_, lh := dc.MeasureString("Mg")
	lineHeight := lh * 1.5
	total := lineHeight * float64(len(lines))
	y := (float64(r.height)-total)/2 + lineHeight/2

	for _, line := range lines {
		dc.DrawStringAnchored(line, float64(r.width)/2, y, 0.5, 0.5)
		y += lineHeight
	}

	if err := dc.SavePNG(outPath); err != nil {
		return fmt.Errorf("save frame: %w", err)
	}
	return nil
}

func (r *implRasterizer) setFont(dc *gg.Context) error {
	if r.fontPath != "" {
		if err := dc.LoadFontFace(r.fontPath, float64(r.fontSize)); err == nil {
			return nil
		}
	}

	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parse default typeface: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: float64(r.fontSize)}))
	return nil
}
