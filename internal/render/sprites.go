package render

import "github.com/climbr-dev/c64shot/internal/vicstate"

const (
	spriteBaseW, spriteBaseH = 24, 21
	spriteOriginXOffset      = 24
	spriteOriginYOffset      = 50
)

// CompositeSprites draws all enabled sprites over img in descending index
// order (7..0) so sprite 0 ends up topmost, per spec.md §4.8. dataByNum
// supplies the 63-byte sprite bitmap for each enabled sprite; a missing or
// short entry is treated as all-transparent rather than causing a panic.
func CompositeSprites(img RgbImage, s vicstate.State, dataByNum [8][]byte) {
	for n := 7; n >= 0; n-- {
		sp := s.Sprites[n]
		if !sp.Enabled {
			continue
		}
		drawSprite(img, s, sp, dataByNum[n])
	}
}

func drawSprite(img RgbImage, s vicstate.State, sp vicstate.Sprite, data []byte) {
	originX := sp.X - spriteOriginXOffset
	originY := sp.Y - spriteOriginYOffset
	xScale, yScale := 1, 1
	if sp.XExpand {
		xScale = 2
	}
	if sp.YExpand {
		yScale = 2
	}

	if sp.Multicolor {
		mcolors := [4]RGB{{}, At(s.SpriteMulti0), At(sp.Color), At(s.SpriteMulti1)}
		for row := 0; row < spriteBaseH; row++ {
			rowBytes := spriteRowBytes(data, row)
			for pair := 0; pair < 12; pair++ {
				byteIdx := pair / 4
				shift := 6 - 2*(pair%4)
				g := (rowBytes[byteIdx] >> uint(shift)) & 0x03
				if g == 0 {
					continue
				}
				c := mcolors[g]
				plotBlock(img, originX+pair*2*xScale, originY+row*yScale, 2*xScale, yScale, c)
			}
		}
		return
	}

	fg := At(sp.Color)
	for row := 0; row < spriteBaseH; row++ {
		rowBytes := spriteRowBytes(data, row)
		for bit := 0; bit < spriteBaseW; bit++ {
			byteIdx := bit / 8
			shift := 7 - bit%8
			if rowBytes[byteIdx]&(1<<uint(shift)) == 0 {
				continue
			}
			plotBlock(img, originX+bit*xScale, originY+row*yScale, xScale, yScale, fg)
		}
	}
}

func spriteRowBytes(data []byte, row int) [3]byte {
	var b [3]byte
	for i := 0; i < 3; i++ {
		b[i] = byteAt(data, row*3+i)
	}
	return b
}

func plotBlock(img RgbImage, x0, y0, w, h int, c RGB) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			img.Set(x0+dx, y0+dy, c)
		}
	}
}
