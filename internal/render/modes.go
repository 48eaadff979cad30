package render

import "github.com/climbr-dev/c64shot/internal/vicstate"

const (
	textCols, textRows = 40, 25
	cellPx             = 8
	frameWidth         = 320
	frameHeight        = 200
	mcBitmapWidth      = 160
)

func byteAt(data []byte, i int) byte {
	if i < 0 || i >= len(data) {
		return 0
	}
	return data[i]
}

// RenderStdText draws the Standard Text mode (spec.md §4.7): one of 1000
// 8x8 glyphs per cell, foreground from color RAM's low nibble, background
// from the single shared background color.
func RenderStdText(s vicstate.State, screen, colorRAM, charROM []byte) RgbImage {
	img := NewRgbImage(frameWidth, frameHeight, At(s.BgColor0))
	bg := At(s.BgColor0)
	for row := 0; row < textRows; row++ {
		for col := 0; col < textCols; col++ {
			cell := row*textCols + col
			code := byteAt(screen, cell)
			fg := At(byteAt(colorRAM, cell) & 0x0F)
			drawGlyphRow(img, charROM, int(code), col*cellPx, row*cellPx, fg, bg)
		}
	}
	return img
}

func drawGlyphRow(img RgbImage, charROM []byte, code, x0, y0 int, fg, bg RGB) {
	for y := 0; y < cellPx; y++ {
		rowByte := byteAt(charROM, code*8+y)
		for bit := 0; bit < 8; bit++ {
			on := rowByte&(0x80>>uint(bit)) != 0
			c := bg
			if on {
				c = fg
			}
			img.Set(x0+bit, y0+y, c)
		}
	}
}

// RenderMCText draws Multicolor Text mode. Cells with color-RAM bit 3 clear
// render exactly as StdText with the low 3 bits as the color index;
// otherwise each 2-bit pixel pair selects background, background1,
// background2, or the low-3-bit color from color RAM.
func RenderMCText(s vicstate.State, screen, colorRAM, charROM []byte) RgbImage {
	img := NewRgbImage(frameWidth, frameHeight, At(s.BgColor0))
	bg := At(s.BgColor0)
	for row := 0; row < textRows; row++ {
		for col := 0; col < textCols; col++ {
			cell := row*textCols + col
			code := byteAt(screen, cell)
			colorByte := byteAt(colorRAM, cell)
			x0, y0 := col*cellPx, row*cellPx
			if colorByte&0x08 == 0 {
				drawGlyphRow(img, charROM, int(code), x0, y0, At(colorByte&0x0F), bg)
				continue
			}
			colors := [4]RGB{bg, At(s.BgColor1), At(s.BgColor2), At(colorByte & 0x07)}
			for y := 0; y < cellPx; y++ {
				rowByte := byteAt(charROM, int(code)*8+y)
				for pair := 0; pair < 4; pair++ {
					g := (rowByte >> uint(6-2*pair)) & 0x03
					c := colors[g]
					img.Set(x0+pair*2, y0+y, c)
					img.Set(x0+pair*2+1, y0+y, c)
				}
			}
		}
	}
	return img
}

// RenderECM draws Extended Background Color mode: the low 6 bits of the
// screen byte select the glyph, the high 2 bits select one of four
// background colors for the whole cell.
func RenderECM(s vicstate.State, screen, colorRAM, charROM []byte) RgbImage {
	img := NewRgbImage(frameWidth, frameHeight, At(s.BgColor0))
	backgrounds := [4]uint8{s.BgColor0, s.BgColor1, s.BgColor2, s.BgColor3}
	for row := 0; row < textRows; row++ {
		for col := 0; col < textCols; col++ {
			cell := row*textCols + col
			raw := byteAt(screen, cell)
			code := raw & 0x3F
			bgSel := raw >> 6
			fg := At(byteAt(colorRAM, cell) & 0x0F)
			bg := At(backgrounds[bgSel])
			drawGlyphRow(img, charROM, int(code), col*cellPx, row*cellPx, fg, bg)
		}
	}
	return img
}

// RenderHiResBitmap draws Hi-Res Bitmap mode: screen matrix carries
// per-cell foreground (high nibble) / background (low nibble), bitmap
// window supplies the 8x8 pixel pattern in VIC raster order.
func RenderHiResBitmap(s vicstate.State, screen, bitmap []byte) RgbImage {
	img := NewRgbImage(frameWidth, frameHeight, At(s.BgColor0))
	for charRow := 0; charRow < textRows; charRow++ {
		for charCol := 0; charCol < textCols; charCol++ {
			cell := charRow*textCols + charCol
			raw := byteAt(screen, cell)
			fg := At(raw >> 4)
			bg := At(raw & 0x0F)
			x0, y0 := charCol*cellPx, charRow*cellPx
			for y := 0; y < cellPx; y++ {
				rowByte := byteAt(bitmap, charRow*40*8+charCol*8+y)
				for bit := 0; bit < 8; bit++ {
					c := bg
					if rowByte&(0x80>>uint(bit)) != 0 {
						c = fg
					}
					img.Set(x0+bit, y0+y, c)
				}
			}
		}
	}
	return img
}

// RenderMCBitmap draws Multicolor Bitmap mode at its native 160x200
// resolution; Render widens it to 320x200 by doubling each pixel
// horizontally.
// Per-cell color1 = screen byte high nibble, color2 = low nibble,
// color3 = color RAM low nibble; each 2-bit pixel pair selects
// background, color1, color2, or color3.
func RenderMCBitmap(s vicstate.State, screen, colorRAM, bitmap []byte) RgbImage {
	img := NewRgbImage(mcBitmapWidth, frameHeight, At(s.BgColor0))
	bg := At(s.BgColor0)
	for charRow := 0; charRow < textRows; charRow++ {
		for charCol := 0; charCol < textCols; charCol++ {
			cell := charRow*textCols + charCol
			raw := byteAt(screen, cell)
			colors := [4]RGB{bg, At(raw >> 4), At(raw & 0x0F), At(byteAt(colorRAM, cell) & 0x0F)}
			x0, y0 := charCol*4, charRow*cellPx
			for y := 0; y < cellPx; y++ {
				rowByte := byteAt(bitmap, charRow*40*8+charCol*8+y)
				for pair := 0; pair < 4; pair++ {
					g := (rowByte >> uint(6-2*pair)) & 0x03
					img.Set(x0+pair, y0+y, colors[g])
				}
			}
		}
	}
	return img
}

// RenderInvalid produces an all-background frame for a (ECM,BMM,MCM)
// combination the chip never documents.
func RenderInvalid(s vicstate.State) RgbImage {
	return NewRgbImage(frameWidth, frameHeight, At(s.BgColor0))
}

// Render dispatches to the rasterizer matching s.Mode. Bitmap modes read
// from bitmap; text/ECM modes read from charROM. Callers resolve charROM
// to either a DMA-read window or the embedded fallback (§4.1) before
// calling in.
func Render(s vicstate.State, screen, colorRAM, charROM, bitmap []byte) RgbImage {
	switch s.Mode {
	case vicstate.StdText:
		return RenderStdText(s, screen, colorRAM, charROM)
	case vicstate.MCText:
		return RenderMCText(s, screen, colorRAM, charROM)
	case vicstate.ECM:
		return RenderECM(s, screen, colorRAM, charROM)
	case vicstate.HiResBitmap:
		return RenderHiResBitmap(s, screen, bitmap)
	case vicstate.MCBitmap:
		half := RenderMCBitmap(s, screen, colorRAM, bitmap)
		img := NewRgbImage(frameWidth, frameHeight, RGB{})
		for y := 0; y < half.Height; y++ {
			for x := 0; x < half.Width; x++ {
				c := half.At(x, y)
				img.Set(2*x, y, c)
				img.Set(2*x+1, y, c)
			}
		}
		return img
	default:
		return RenderInvalid(s)
	}
}
