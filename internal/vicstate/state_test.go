package vicstate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeModeSelection(t *testing.T) {
	cases := []struct {
		name          string
		ecm, bmm, mcm bool
		want          Mode
	}{
		{"std text", false, false, false, StdText},
		{"mc text", false, false, true, MCText},
		{"ecm", true, false, false, ECM},
		{"hires bitmap", false, true, false, HiResBitmap},
		{"mc bitmap", false, true, true, MCBitmap},
		{"invalid ecm+bmm", true, true, false, Invalid},
		{"invalid ecm+mcm", true, false, true, Invalid},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, selectMode(c.ecm, c.bmm, c.mcm))
		})
	}
}

func TestDecodeVICBankAndAddressing(t *testing.T) {
	var regs [VICRegsCount]byte
	regs[RegScreenControl1] = 0x1B // DEN|RSEL, YSCROLL=3
	regs[RegScreenControl2] = 0x08 // CSEL, XSCROLL=0
	regs[RegMemPointers] = 0x12    // screen offset 1 -> $0400, char offset 1 -> $0800

	s := Decode(regs, 0x00) // cia2PortA low bits = 00 -> bank 3 ($C000)
	require.Equal(t, uint16(0xC000), s.VICBank)
	require.Equal(t, uint16(0xC400), s.ScreenMemAddr)
	require.Equal(t, uint16(0xC800), s.CharMemAddr)
	require.True(t, s.DEN)
	require.True(t, s.RSEL)
	require.True(t, s.CSEL)
	require.Equal(t, uint8(3), s.YScroll)
}

func TestDecodeSpritesXMSB(t *testing.T) {
	var regs [VICRegsCount]byte
	regs[RegSprite0X] = 0x10   // sprite 0 X low byte
	regs[RegSpriteXMSB] = 0x01 // sprite 0 X bit 8 set
	regs[RegSprite0X+1] = 50   // sprite 0 Y
	regs[RegSpriteEnable] = 0x01
	regs[RegSprite0Color] = 0x07

	s := Decode(regs, 0x03)
	sp := s.Sprites[0]
	require.True(t, sp.Enabled)
	require.Equal(t, 0x10+256, sp.X)
	require.Equal(t, 50, sp.Y)
	require.Equal(t, uint8(7), sp.Color)
}

func TestFillPointers(t *testing.T) {
	var regs [VICRegsCount]byte
	s := Decode(regs, 0x03) // bank 0
	screen := make([]byte, ScreenSize)
	screen[SpritePtrOff+2] = 0x05
	s.FillPointers(screen)
	require.Equal(t, uint8(0x05), s.Sprites[2].Pointer)
	require.Equal(t, uint16(0x05*64), s.Sprites[2].DataAddr)
}
