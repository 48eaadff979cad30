package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/climbr-dev/c64shot/internal/vicstate"
)

// TestUpscaleLaw implements testable property §8.4: upscaling by factor f
// produces an f*w x f*h image where every f x f block is a solid color
// matching the corresponding source pixel.
func TestUpscaleLaw(t *testing.T) {
	src := NewRgbImage(2, 2, RGB{})
	src.Set(0, 0, RGB{1, 1, 1})
	src.Set(1, 0, RGB{2, 2, 2})
	src.Set(0, 1, RGB{3, 3, 3})
	src.Set(1, 1, RGB{4, 4, 4})

	out := src.Upscale(3)
	require.Equal(t, 6, out.Width)
	require.Equal(t, 6, out.Height)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			want := src.At(x/3, y/3)
			require.Equal(t, want, out.At(x, y), "(%d,%d)", x, y)
		}
	}
}

func TestUpscaleFactorOneIsNoop(t *testing.T) {
	src := NewRgbImage(4, 4, RGB{5, 5, 5})
	require.Equal(t, src, src.Upscale(1))
	require.Equal(t, src, src.Upscale(0))
}

// TestApplyBlankingRSELCSEL covers scenario S6 / testable property §8.6:
// RSEL/CSEL clear blanks an 8px strip deterministically based on scroll.
func TestApplyBlankingRSELCSEL(t *testing.T) {
	img := NewRgbImage(frameWidth, frameHeight, RGB{1, 1, 1})
	s := vicstate.State{RSEL: false, CSEL: false, YScroll: 0, XScroll: 0, BorderColor: 2}

	ApplyBlanking(img, s)

	border := At(2)
	require.Equal(t, border, img.At(10, 0), "RSEL clear blanks the top strip when YScroll<4")
	require.Equal(t, RGB{1, 1, 1}, img.At(10, frameHeight-1), "bottom untouched for low YScroll")
	require.Equal(t, border, img.At(0, 100), "CSEL clear blanks the left strip when XScroll<4")
	require.Equal(t, RGB{1, 1, 1}, img.At(frameWidth-1, 100), "right untouched for low XScroll")
}

func TestApplyBlankingHighScrollMovesStripToFarEdge(t *testing.T) {
	img := NewRgbImage(frameWidth, frameHeight, RGB{1, 1, 1})
	s := vicstate.State{RSEL: false, CSEL: false, YScroll: 5, XScroll: 5, BorderColor: 0}

	ApplyBlanking(img, s)

	border := At(0)
	require.Equal(t, border, img.At(10, frameHeight-1))
	require.Equal(t, border, img.At(frameWidth-1, 100))
}

func TestApplyBlankingNoopWhenSelected(t *testing.T) {
	img := NewRgbImage(frameWidth, frameHeight, RGB{1, 1, 1})
	s := vicstate.State{RSEL: true, CSEL: true}
	ApplyBlanking(img, s)
	require.Equal(t, RGB{1, 1, 1}, img.At(0, 0))
}

func TestAddBorderInsetsAndPreservesContent(t *testing.T) {
	img := NewRgbImage(4, 4, RGB{1, 1, 1})
	out := AddBorder(img, 3)
	require.Equal(t, 4+2*borderInset, out.Width)
	require.Equal(t, 4+2*borderInset, out.Height)
	require.Equal(t, At(3), out.At(0, 0))
	require.Equal(t, RGB{1, 1, 1}, out.At(borderInset, borderInset))
}

func TestEncodeToFileDispatchesByExtension(t *testing.T) {
	img := NewRgbImage(2, 2, RGB{10, 20, 30})

	var buf bytes.Buffer
	require.NoError(t, EncodeToFile(&buf, img, "shot.png"))
	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 2, decoded.Bounds().Dx())

	var jpgBuf bytes.Buffer
	require.NoError(t, EncodeToFile(&jpgBuf, img, "shot.jpg"))
	require.NotEmpty(t, jpgBuf.Bytes())

	var bmpBuf bytes.Buffer
	require.NoError(t, EncodeToFile(&bmpBuf, img, "shot.bmp"))
	require.NotEmpty(t, bmpBuf.Bytes())

	var unsupported bytes.Buffer
	require.Error(t, EncodeToFile(&unsupported, img, "shot.webp"))
}
