package vicstate

// Mode identifies one of the five valid VIC-II display modes, or Invalid
// for a (ECM,BMM,MCM) combination the chip never documents.
type Mode int

const (
	StdText Mode = iota
	MCText
	ECM
	HiResBitmap
	MCBitmap
	Invalid
)

// Sprite is the decoded per-instance state of one of the eight hardware
// sprites.
type Sprite struct {
	Num        int
	X          int // 0..511
	Y          int // 0..255
	Enabled    bool
	YExpand    bool
	Priority   bool // true = sprite drawn behind screen content
	Multicolor bool
	XExpand    bool
	Color      uint8 // 4-bit index
	Pointer    uint8 // sprite pointer byte ($3F8+n)
	DataAddr   uint16
}

// State is the immutable per-capture VIC-II frame descriptor derived from
// the 48 register bytes and the CIA2 port byte.
type State struct {
	ECM, BMM, MCM, DEN, RSEL, CSEL bool
	XScroll, YScroll               uint8

	VICBank       uint16
	ScreenMemAddr uint16
	CharMemAddr   uint16
	BitmapMemAddr uint16

	BorderColor   uint8
	BgColor0      uint8
	BgColor1      uint8
	BgColor2      uint8
	BgColor3      uint8
	SpriteMulti0  uint8
	SpriteMulti1  uint8

	Mode Mode

	Sprites [8]Sprite
}

// Decode turns the raw register block ($D000-$D02F, 0x30 bytes) and the
// CIA2 data-port-A byte ($DD00) into a State. Pure function: no I/O, no
// dependency on anything but its inputs.
func Decode(regs [VICRegsCount]byte, cia2PortA byte) State {
	var s State

	d011 := regs[RegScreenControl1]
	s.YScroll = d011 & SC1YScroll
	s.RSEL = d011&SC1RSEL != 0
	s.DEN = d011&SC1DEN != 0
	s.BMM = d011&SC1BMM != 0
	s.ECM = d011&SC1ECM != 0

	d016 := regs[RegScreenControl2]
	s.XScroll = d016 & SC2XScroll
	s.CSEL = d016&SC2CSEL != 0
	s.MCM = d016&SC2MCM != 0

	d018 := regs[RegMemPointers]
	s.VICBank = uint16(3-(cia2PortA&0x03)) * 0x4000
	s.ScreenMemAddr = s.VICBank + uint16((d018>>MemPtrScrShift)&0x0F)*0x400
	s.CharMemAddr = s.VICBank + uint16((d018>>MemPtrCharShift)&0x07)*0x800
	s.BitmapMemAddr = s.VICBank + uint16(d018&MemPtrBitmapBit>>3)*0x2000

	s.BorderColor = regs[RegBorderColor] & 0x0F
	s.BgColor0 = regs[RegBgColor0] & 0x0F
	s.BgColor1 = regs[RegBgColor1] & 0x0F
	s.BgColor2 = regs[RegBgColor2] & 0x0F
	s.BgColor3 = regs[RegBgColor3] & 0x0F
	s.SpriteMulti0 = regs[RegSpriteMulti0] & 0x0F
	s.SpriteMulti1 = regs[RegSpriteMulti1] & 0x0F

	s.Mode = selectMode(s.ECM, s.BMM, s.MCM)

	decodeSprites(&s, regs)

	return s
}

// selectMode implements the mode table of spec.md §4.3.
func selectMode(ecm, bmm, mcm bool) Mode {
	switch {
	case !ecm && !bmm && !mcm:
		return StdText
	case !ecm && !bmm && mcm:
		return MCText
	case ecm && !bmm && !mcm:
		return ECM
	case !ecm && bmm && !mcm:
		return HiResBitmap
	case !ecm && bmm && mcm:
		return MCBitmap
	default:
		return Invalid
	}
}

// decodeSprites fills in the eight sprite descriptors from the register
// block. Sprite pointer bytes and data addresses depend on the screen
// matrix and VIC bank, so DataAddr requires the caller to have already
// read the sprite pointer table; FillPointers does that once the screen
// matrix bytes are available.
func decodeSprites(s *State, regs [VICRegsCount]byte) {
	for n := 0; n < 8; n++ {
		xLow := regs[RegSprite0X+n*2]
		xMSB := (regs[RegSpriteXMSB] >> uint(n)) & 1
		sp := Sprite{
			Num:        n,
			X:          int(xLow) + int(xMSB)*256,
			Y:          int(regs[RegSprite0X+n*2+1]),
			Enabled:    (regs[RegSpriteEnable]>>uint(n))&1 != 0,
			YExpand:    (regs[RegSpriteYExpand]>>uint(n))&1 != 0,
			Priority:   (regs[RegSpritePriority]>>uint(n))&1 != 0,
			Multicolor: (regs[RegSpriteMColor]>>uint(n))&1 != 0,
			XExpand:    (regs[RegSpriteXExpand]>>uint(n))&1 != 0,
			Color:      regs[RegSprite0Color+n] & 0x0F,
		}
		s.Sprites[n] = sp
	}
}

// FillPointers resolves each sprite's pointer byte and data address once
// the screen matrix has been read (the pointer table lives at
// screen_mem_addr + $3F8).
func (s *State) FillPointers(screenMatrix []byte) {
	for n := 0; n < 8; n++ {
		var ptr uint8
		if SpritePtrOff+n < len(screenMatrix) {
			ptr = screenMatrix[SpritePtrOff+n]
		}
		s.Sprites[n].Pointer = ptr
		s.Sprites[n].DataAddr = s.VICBank + uint16(ptr)*64
	}
}
