package render

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/climbr-dev/c64shot/internal/vicstate"
)

const borderInset = 32

// ApplyBlanking implements spec.md §4.9 step 1: an 8-pixel strip of border
// color replaces the row/column the chip would hide when RSEL/CSEL select
// the smaller display area.
func ApplyBlanking(img RgbImage, s vicstate.State) {
	border := At(s.BorderColor)
	if !s.RSEL {
		y0 := 0
		if s.YScroll >= 4 {
			y0 = img.Height - cellPx
		}
		fillRect(img, 0, y0, img.Width, cellPx, border)
	}
	if !s.CSEL {
		x0 := 0
		if s.XScroll >= 4 {
			x0 = img.Width - cellPx
		}
		fillRect(img, x0, 0, cellPx, img.Height, border)
	}
}

func fillRect(img RgbImage, x0, y0, w, h int, c RGB) {
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			img.Set(x, y, c)
		}
	}
}

// AddBorder surrounds img with a borderInset-pixel band of the border
// color (spec.md §4.9 step 2).
func AddBorder(img RgbImage, borderColor uint8) RgbImage {
	out := NewRgbImage(img.Width+2*borderInset, img.Height+2*borderInset, At(borderColor))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			out.Set(x+borderInset, y+borderInset, img.At(x, y))
		}
	}
	return out
}

// EncodeToFile writes img to w in the format implied by filename's
// extension: .png (default), .jpg/.jpeg, .bmp, .gif, .tiff.
func EncodeToFile(w io.Writer, img RgbImage, filename string) error {
	bw := bufio.NewWriter(w)
	goImg := toGoImage(img)
	ext := strings.ToLower(filepath.Ext(filename))
	var err error
	switch ext {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(bw, goImg, &jpeg.Options{Quality: 95})
	case ".bmp":
		err = bmp.Encode(bw, goImg)
	case ".gif":
		err = gif.Encode(bw, goImg, nil)
	case ".tiff", ".tif":
		err = tiff.Encode(bw, goImg, nil)
	case ".png", "":
		err = png.Encode(bw, goImg)
	default:
		return fmt.Errorf("render: unsupported output extension %q", ext)
	}
	if err != nil {
		return err
	}
	return bw.Flush()
}

func toGoImage(img RgbImage) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			out.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
		}
	}
	return out
}
