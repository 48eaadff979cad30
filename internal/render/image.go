package render

// RgbImage is a rectangular grid of RGB pixels, row-major, three bytes per
// pixel. It is the single explicit image value every rasterizer,
// compositor, and post-processing step produces and consumes — no
// image.Image/RGBA conversions hide inside these functions.
type RgbImage struct {
	Width, Height int
	Pix           []byte
}

// NewRgbImage allocates a width x height image filled with fill.
func NewRgbImage(width, height int, fill RGB) RgbImage {
	img := RgbImage{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}
	img.Fill(fill)
	return img
}

// Fill overwrites every pixel with c.
func (img RgbImage) Fill(c RGB) {
	for i := 0; i < len(img.Pix); i += 3 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
	}
}

// Set writes one pixel. Out-of-bounds coordinates are silently ignored so
// rasterizers never need bounds checks at every call site.
func (img RgbImage) Set(x, y int, c RGB) {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return
	}
	off := (y*img.Width + x) * 3
	img.Pix[off] = c.R
	img.Pix[off+1] = c.G
	img.Pix[off+2] = c.B
}

// At reads one pixel. Out-of-bounds coordinates return the zero RGB value.
func (img RgbImage) At(x, y int) RGB {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return RGB{}
	}
	off := (y*img.Width + x) * 3
	return RGB{img.Pix[off], img.Pix[off+1], img.Pix[off+2]}
}

// Upscale nearest-neighbor enlarges img by a positive integer factor.
// factor <= 1 returns img unchanged (no copy).
func (img RgbImage) Upscale(factor int) RgbImage {
	if factor <= 1 {
		return img
	}
	out := NewRgbImage(img.Width*factor, img.Height*factor, RGB{})
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			for dy := 0; dy < factor; dy++ {
				for dx := 0; dx < factor; dx++ {
					out.Set(x*factor+dx, y*factor+dy, c)
				}
			}
		}
	}
	return out
}
