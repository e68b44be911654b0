package raster

type implRasterizer struct {
	width     int
	height    int
	fontSize  int
	fontPath  string
	wrapWidth int
}

// New creates a Rasterizer for a fixed canvas size. fontPath may be empty,
// in which case the built-in default typeface is used.
func New(width, height, fontSize, wrapWidth int, fontPath string) Rasterizer {
	return &implRasterizer{
		width:     width,
		height:    height,
		fontSize:  fontSize,
		fontPath:  fontPath,
		wrapWidth: wrapWidth,
	}
}
