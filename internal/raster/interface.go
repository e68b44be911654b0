package raster

// Rasterizer renders a caption into a single PNG frame: fixed-size canvas,
// text wrapped at a column width and drawn as centered lines.
type Rasterizer interface {
	Rasterize(text, outPath string) error
}
