package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/climbr-dev/c64shot/internal/vicstate"
)

// TestPaletteBijection implements testable property §8.2: every one of the
// 16 color indices maps to a distinct RGB triple and At() masks stray bits.
func TestPaletteBijection(t *testing.T) {
	seen := make(map[RGB]uint8)
	for i := uint8(0); i < 16; i++ {
		c := At(i)
		if prev, ok := seen[c]; ok {
			t.Fatalf("color %d collides with color %d", i, prev)
		}
		seen[c] = i
	}
	require.Equal(t, At(0x05), At(0xF5), "At must mask to the low nibble")
}

// TestRenderStdTextGlyph covers scenario S1: a StdText frame built from a
// single 'A' screen code (code 1) renders foreground pixels bit-exact to
// the embedded charset pattern and background everywhere else.
func TestRenderStdTextGlyph(t *testing.T) {
	charROM := EmbeddedCharROM()
	screen := make([]byte, vicstate.ScreenSize)
	colorRAM := make([]byte, vicstate.ColorRAMSize)
	screen[0] = 1 // screen code 1, the embedded set's 'A' glyph
	colorRAM[0] = 14 // light blue foreground

	var s vicstate.State
	s.BgColor0 = 6 // blue background

	img := RenderStdText(s, screen, colorRAM, charROM)
	require.Equal(t, frameWidth, img.Width)
	require.Equal(t, frameHeight, img.Height)

	fg := At(14)
	bg := At(6)
	pattern := [8]byte{0x18, 0x3C, 0x66, 0x7E, 0x66, 0x66, 0x66, 0x00}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := bg
			if pattern[y]&(0x80>>uint(x)) != 0 {
				want = fg
			}
			require.Equal(t, want, img.At(x, y), "pixel (%d,%d)", x, y)
		}
	}
	// the next cell holds screen code 0, whose first row (0x3C) leaves the
	// leftmost pixel clear, so that pixel shows the background.
	require.Equal(t, bg, img.At(8, 0))
}

// TestRenderECMBackgroundSelection covers scenario S5: the top two bits of
// each screen byte choose one of four background colors for the cell.
func TestRenderECMBackgroundSelection(t *testing.T) {
	charROM := EmbeddedCharROM()
	screen := make([]byte, vicstate.ScreenSize)
	colorRAM := make([]byte, vicstate.ColorRAMSize)
	// four adjacent cells, glyph 0, one per background selector; glyph 0's
	// top-left pixel is clear, so each cell's (0,0) pixel shows its
	// background.
	screen[0] = 0x00
	screen[1] = 0x40
	screen[2] = 0x80
	screen[3] = 0xC0

	var s vicstate.State
	s.BgColor0, s.BgColor1, s.BgColor2, s.BgColor3 = 0, 1, 2, 3

	img := RenderECM(s, screen, colorRAM, charROM)
	require.Equal(t, At(0), img.At(0, 0))
	require.Equal(t, At(1), img.At(8, 0))
	require.Equal(t, At(2), img.At(16, 0))
	require.Equal(t, At(3), img.At(24, 0))
}

// TestRenderMCBitmapPattern covers scenario S3: pattern byte 0xE4
// (11 10 01 00) selects color3, color2, color1, background across a cell's
// four 2-bit pixel pairs, and the renderer's native resolution is 160x200
// before the caller upscales.
func TestRenderMCBitmapPattern(t *testing.T) {
	screen := make([]byte, vicstate.ScreenSize)
	colorRAM := make([]byte, vicstate.ColorRAMSize)
	bitmap := make([]byte, vicstate.BitmapSize)

	screen[0] = 0x12   // color1=1, color2=2
	colorRAM[0] = 0x03 // color3=3
	bitmap[0] = 0xE4

	var s vicstate.State
	s.BgColor0 = 0

	img := RenderMCBitmap(s, screen, colorRAM, bitmap)
	require.Equal(t, mcBitmapWidth, img.Width)
	require.Equal(t, frameHeight, img.Height)

	require.Equal(t, At(3), img.At(0, 0))
	require.Equal(t, At(2), img.At(1, 0))
	require.Equal(t, At(1), img.At(2, 0))
	require.Equal(t, At(0), img.At(3, 0))
}

// TestRenderDispatchesByMode covers §8.3's round-trip requirement that
// Render picks the rasterizer matching s.Mode, including the upscale of
// MCBitmap back to full frame size and the all-background Invalid path.
func TestRenderDispatchesByMode(t *testing.T) {
	charROM := EmbeddedCharROM()
	screen := make([]byte, vicstate.ScreenSize)
	colorRAM := make([]byte, vicstate.ColorRAMSize)
	bitmap := make([]byte, vicstate.BitmapSize)

	for _, mode := range []vicstate.Mode{vicstate.StdText, vicstate.MCText, vicstate.ECM, vicstate.HiResBitmap, vicstate.MCBitmap} {
		s := vicstate.State{Mode: mode}
		img := Render(s, screen, colorRAM, charROM, bitmap)
		require.Equal(t, frameWidth, img.Width, "mode %v", mode)
		require.Equal(t, frameHeight, img.Height, "mode %v", mode)
	}

	s := vicstate.State{Mode: vicstate.Invalid, BgColor0: 6}
	img := Render(s, screen, colorRAM, charROM, bitmap)
	require.Equal(t, At(6), img.At(0, 0))
	require.Equal(t, At(6), img.At(frameWidth-1, frameHeight-1))
}
