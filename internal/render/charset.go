package render

// charset128 holds the 8-byte bitmap for each of the first 128 screen codes
// (uppercase/graphics character set). Bytes 1024..2047 mirror bytes 0..1023:
// the embedded set has no separate reverse-video bank.
var charset128 = [128][8]byte{
	0: {0x3C, 0x66, 0x6E, 0x6E, 0x60, 0x62, 0x3C, 0x00}, // screen code 0
	1: {0x18, 0x3C, 0x66, 0x7E, 0x66, 0x66, 0x66, 0x00}, // screen code 1
	2: {0x7C, 0x66, 0x66, 0x7C, 0x66, 0x66, 0x7C, 0x00}, // screen code 2
	3: {0x3C, 0x66, 0x60, 0x60, 0x60, 0x66, 0x3C, 0x00}, // screen code 3
	4: {0x78, 0x6C, 0x66, 0x66, 0x66, 0x6C, 0x78, 0x00}, // screen code 4
	5: {0x7E, 0x60, 0x60, 0x78, 0x60, 0x60, 0x7E, 0x00}, // screen code 5
	6: {0x7E, 0x60, 0x60, 0x78, 0x60, 0x60, 0x60, 0x00}, // screen code 6
	7: {0x3C, 0x66, 0x60, 0x6E, 0x66, 0x66, 0x3C, 0x00}, // screen code 7
	8: {0x66, 0x66, 0x66, 0x7E, 0x66, 0x66, 0x66, 0x00}, // screen code 8
	9: {0x3C, 0x18, 0x18, 0x18, 0x18, 0x18, 0x3C, 0x00}, // screen code 9
	10: {0x1E, 0x0C, 0x0C, 0x0C, 0x0C, 0x6C, 0x38, 0x00}, // screen code 10
	11: {0x66, 0x6C, 0x78, 0x70, 0x78, 0x6C, 0x66, 0x00}, // screen code 11
	12: {0x60, 0x60, 0x60, 0x60, 0x60, 0x60, 0x7E, 0x00}, // screen code 12
	13: {0x63, 0x77, 0x7F, 0x6B, 0x63, 0x63, 0x63, 0x00}, // screen code 13
	14: {0x66, 0x76, 0x7E, 0x7E, 0x6E, 0x66, 0x66, 0x00}, // screen code 14
	15: {0x3C, 0x66, 0x66, 0x66, 0x66, 0x66, 0x3C, 0x00}, // screen code 15
	16: {0x7C, 0x66, 0x66, 0x7C, 0x60, 0x60, 0x60, 0x00}, // screen code 16
	17: {0x3C, 0x66, 0x66, 0x66, 0x66, 0x3C, 0x0E, 0x00}, // screen code 17
	18: {0x7C, 0x66, 0x66, 0x7C, 0x78, 0x6C, 0x66, 0x00}, // screen code 18
	19: {0x3C, 0x66, 0x60, 0x3C, 0x06, 0x66, 0x3C, 0x00}, // screen code 19
	20: {0x7E, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x00}, // screen code 20
	21: {0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x3C, 0x00}, // screen code 21
	22: {0x66, 0x66, 0x66, 0x66, 0x66, 0x3C, 0x18, 0x00}, // screen code 22
	23: {0x63, 0x63, 0x63, 0x6B, 0x7F, 0x77, 0x63, 0x00}, // screen code 23
	24: {0x66, 0x66, 0x3C, 0x18, 0x3C, 0x66, 0x66, 0x00}, // screen code 24
	25: {0x66, 0x66, 0x66, 0x3C, 0x18, 0x18, 0x18, 0x00}, // screen code 25
	26: {0x7E, 0x06, 0x0C, 0x18, 0x30, 0x60, 0x7E, 0x00}, // screen code 26
	27: {0x3C, 0x30, 0x30, 0x30, 0x30, 0x30, 0x3C, 0x00}, // screen code 27
	28: {0x0C, 0x12, 0x30, 0x7C, 0x30, 0x62, 0xFC, 0x00}, // screen code 28
	29: {0x3C, 0x0C, 0x0C, 0x0C, 0x0C, 0x0C, 0x3C, 0x00}, // screen code 29
	30: {0x00, 0x08, 0x1C, 0x3E, 0x08, 0x08, 0x00, 0x00}, // screen code 30
	31: {0x00, 0x10, 0x30, 0x7F, 0x30, 0x10, 0x00, 0x00}, // screen code 31
	32: {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // screen code 32
	33: {0x18, 0x18, 0x18, 0x18, 0x00, 0x00, 0x18, 0x00}, // screen code 33
	34: {0x66, 0x66, 0x66, 0x00, 0x00, 0x00, 0x00, 0x00}, // screen code 34
	35: {0x66, 0x66, 0xFF, 0x66, 0xFF, 0x66, 0x66, 0x00}, // screen code 35
	36: {0x18, 0x3E, 0x60, 0x3C, 0x06, 0x7C, 0x18, 0x00}, // screen code 36
	37: {0x62, 0x66, 0x0C, 0x18, 0x30, 0x66, 0x46, 0x00}, // screen code 37
	38: {0x3C, 0x66, 0x3C, 0x38, 0x67, 0x66, 0x3F, 0x00}, // screen code 38
	39: {0x06, 0x0C, 0x18, 0x00, 0x00, 0x00, 0x00, 0x00}, // screen code 39
	40: {0x0C, 0x18, 0x30, 0x30, 0x30, 0x18, 0x0C, 0x00}, // screen code 40
	41: {0x30, 0x18, 0x0C, 0x0C, 0x0C, 0x18, 0x30, 0x00}, // screen code 41
	42: {0x00, 0x66, 0x3C, 0xFF, 0x3C, 0x66, 0x00, 0x00}, // screen code 42
	43: {0x00, 0x18, 0x18, 0x7E, 0x18, 0x18, 0x00, 0x00}, // screen code 43
	44: {0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x30}, // screen code 44
	45: {0x00, 0x00, 0x00, 0x7E, 0x00, 0x00, 0x00, 0x00}, // screen code 45
	46: {0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x00}, // screen code 46
	47: {0x00, 0x03, 0x06, 0x0C, 0x18, 0x30, 0x60, 0x00}, // screen code 47
	48: {0x3C, 0x66, 0x6E, 0x76, 0x66, 0x66, 0x3C, 0x00}, // screen code 48
	49: {0x18, 0x18, 0x38, 0x18, 0x18, 0x18, 0x7E, 0x00}, // screen code 49
	50: {0x3C, 0x66, 0x06, 0x0C, 0x30, 0x60, 0x7E, 0x00}, // screen code 50
	51: {0x3C, 0x66, 0x06, 0x1C, 0x06, 0x66, 0x3C, 0x00}, // screen code 51
	52: {0x06, 0x0E, 0x1E, 0x66, 0x7F, 0x06, 0x06, 0x00}, // screen code 52
	53: {0x7E, 0x60, 0x7C, 0x06, 0x06, 0x66, 0x3C, 0x00}, // screen code 53
	54: {0x3C, 0x66, 0x60, 0x7C, 0x66, 0x66, 0x3C, 0x00}, // screen code 54
	55: {0x7E, 0x66, 0x0C, 0x18, 0x18, 0x18, 0x18, 0x00}, // screen code 55
	56: {0x3C, 0x66, 0x66, 0x3C, 0x66, 0x66, 0x3C, 0x00}, // screen code 56
	57: {0x3C, 0x66, 0x66, 0x3E, 0x06, 0x66, 0x3C, 0x00}, // screen code 57
	58: {0x00, 0x00, 0x18, 0x00, 0x00, 0x18, 0x00, 0x00}, // screen code 58
	59: {0x00, 0x00, 0x18, 0x00, 0x00, 0x18, 0x18, 0x30}, // screen code 59
	60: {0x0E, 0x18, 0x30, 0x60, 0x30, 0x18, 0x0E, 0x00}, // screen code 60
	61: {0x00, 0x00, 0x7E, 0x00, 0x7E, 0x00, 0x00, 0x00}, // screen code 61
	62: {0x70, 0x18, 0x0C, 0x06, 0x0C, 0x18, 0x70, 0x00}, // screen code 62
	63: {0x3C, 0x66, 0x06, 0x0C, 0x18, 0x00, 0x18, 0x00}, // screen code 63
	64: {0x00, 0x00, 0x00, 0xFF, 0xFF, 0x00, 0x00, 0x00}, // screen code 64
	65: {0x08, 0x1C, 0x3E, 0x7F, 0x7F, 0x1C, 0x3E, 0x00}, // screen code 65
	66: {0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18, 0x18}, // screen code 66
	67: {0x00, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}, // screen code 67
	68: {0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00}, // screen code 68
	69: {0xF0, 0xF0, 0xF0, 0xF0, 0xF0, 0xF0, 0xF0, 0xF0}, // screen code 69
	70: {0x55, 0xAA, 0x55, 0xAA, 0x55, 0xAA, 0x55, 0xAA}, // screen code 70
	71: {0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F, 0x0F}, // screen code 71
	72: {0x00, 0x00, 0x00, 0x00, 0xAA, 0x55, 0xAA, 0x55}, // screen code 72
	73: {0x0F, 0x07, 0x03, 0x01, 0x00, 0x00, 0x00, 0x00}, // screen code 73
	74: {0x55, 0xAA, 0x55, 0xAA, 0x00, 0x00, 0x00, 0x00}, // screen code 74
	75: {0x00, 0x00, 0x00, 0x00, 0x01, 0x03, 0x07, 0x0F}, // screen code 75
	76: {0x00, 0x00, 0x00, 0x00, 0x80, 0xC0, 0xE0, 0xF0}, // screen code 76
	77: {0xF0, 0xE0, 0xC0, 0x80, 0x00, 0x00, 0x00, 0x00}, // screen code 77
	78: {0x01, 0x03, 0x07, 0x0F, 0x1F, 0x3F, 0x7F, 0xFF}, // screen code 78
	79: {0x80, 0xC0, 0xE0, 0xF0, 0xF8, 0xFC, 0xFE, 0xFF}, // screen code 79
	80: {0xFF, 0xFE, 0xFC, 0xF8, 0xF0, 0xE0, 0xC0, 0x80}, // screen code 80
	81: {0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, // screen code 81
	82: {0xFF, 0x7F, 0x3F, 0x1F, 0x0F, 0x07, 0x03, 0x01}, // screen code 82
	83: {0x3C, 0x7E, 0xFF, 0xFF, 0xFF, 0xFF, 0x7E, 0x3C}, // screen code 83
	84: {0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0, 0xC0}, // screen code 84
	85: {0x18, 0x18, 0x7E, 0xFF, 0xFF, 0x18, 0x3C, 0x00}, // screen code 85
	86: {0x00, 0x00, 0x00, 0x00, 0xF0, 0xF0, 0xF0, 0xF0}, // screen code 86
	87: {0x0F, 0x0F, 0x0F, 0x0F, 0x00, 0x00, 0x00, 0x00}, // screen code 87
	88: {0x00, 0x00, 0x00, 0x00, 0x0F, 0x0F, 0x0F, 0x0F}, // screen code 88
	89: {0xF8, 0xF0, 0xE0, 0xC0, 0x80, 0x00, 0x00, 0x00}, // screen code 89
	90: {0xF0, 0xF0, 0xF0, 0xF0, 0x00, 0x00, 0x00, 0x00}, // screen code 90
	91: {0x00, 0x66, 0xFF, 0xFF, 0xFF, 0x7E, 0x3C, 0x18}, // screen code 91
	92: {0x00, 0x00, 0x00, 0x80, 0xC0, 0xE0, 0xF0, 0xF8}, // screen code 92
	93: {0x18, 0x18, 0x18, 0xFF, 0xFF, 0x18, 0x18, 0x18}, // screen code 93
	94: {0x00, 0x3C, 0x42, 0x42, 0x42, 0x42, 0x3C, 0x00}, // screen code 94
	95: {0x18, 0x3C, 0x7E, 0xFF, 0x7E, 0x3C, 0x18, 0x00}, // screen code 95
	96: {0x00, 0x00, 0x00, 0x01, 0x03, 0x07, 0x0F, 0x1F}, // screen code 96
	97: {0x1F, 0x0F, 0x07, 0x03, 0x01, 0x00, 0x00, 0x00}, // screen code 97
	98: {0x00, 0x00, 0x7F, 0x36, 0x36, 0x36, 0x63, 0x00}, // screen code 98
	99: {0xFF, 0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}, // screen code 99
	100: {0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0x03, 0x03}, // screen code 100
	101: {0xC0, 0x60, 0x30, 0x18, 0x0C, 0x06, 0x03, 0x01}, // screen code 101
	102: {0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA, 0xAA}, // screen code 102
	103: {0x01, 0x03, 0x06, 0x0C, 0x18, 0x30, 0x60, 0xC0}, // screen code 103
	104: {0x00, 0x00, 0x00, 0x00, 0xC0, 0xC0, 0xC0, 0xC0}, // screen code 104
	105: {0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00}, // screen code 105
	106: {0x00, 0x00, 0x00, 0x00, 0x03, 0x03, 0x03, 0x03}, // screen code 106
	107: {0xC0, 0xC0, 0xC0, 0xC0, 0x00, 0x00, 0x00, 0x00}, // screen code 107
	108: {0x03, 0x03, 0x03, 0x03, 0x00, 0x00, 0x00, 0x00}, // screen code 108
	109: {0x00, 0x00, 0x00, 0xFF, 0xFF, 0x18, 0x18, 0x18}, // screen code 109
	110: {0x18, 0x18, 0x18, 0xFF, 0xFF, 0x00, 0x00, 0x00}, // screen code 110
	111: {0x18, 0x18, 0x18, 0x1F, 0x1F, 0x18, 0x18, 0x18}, // screen code 111
	112: {0x18, 0x18, 0x18, 0xF8, 0xF8, 0x00, 0x00, 0x00}, // screen code 112
	113: {0x00, 0x00, 0x00, 0xF8, 0xF8, 0x18, 0x18, 0x18}, // screen code 113
	114: {0x00, 0x00, 0x00, 0x1F, 0x1F, 0x18, 0x18, 0x18}, // screen code 114
	115: {0x18, 0x18, 0x18, 0x1F, 0x1F, 0x00, 0x00, 0x00}, // screen code 115
	116: {0x18, 0x18, 0x18, 0xF8, 0xF8, 0x18, 0x18, 0x18}, // screen code 116
	117: {0x18, 0x18, 0x18, 0xFF, 0xFF, 0x18, 0x18, 0x18}, // screen code 117
	118: {0x3C, 0x3C, 0x3C, 0x3C, 0x3C, 0x3C, 0x3C, 0x3C}, // screen code 118
	119: {0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00}, // screen code 119
	120: {0x00, 0x00, 0x00, 0x00, 0x3C, 0x3C, 0x3C, 0x3C}, // screen code 120
	121: {0x3C, 0x3C, 0x3C, 0x3C, 0x00, 0x00, 0x00, 0x00}, // screen code 121
	122: {0x00, 0x00, 0x00, 0x00, 0x3C, 0x3C, 0x3C, 0x3C}, // screen code 122
	123: {0x3C, 0x3C, 0x3C, 0x3C, 0x00, 0x00, 0x00, 0x00}, // screen code 123
	124: {0x00, 0x00, 0xFC, 0xFC, 0x3C, 0x3C, 0x3C, 0x3C}, // screen code 124
	125: {0x3C, 0x3C, 0x3C, 0x3C, 0x3F, 0x3F, 0x00, 0x00}, // screen code 125
	126: {0x00, 0x7E, 0x66, 0x66, 0x66, 0x66, 0x00, 0x00}, // screen code 126
	127: {0x08, 0x1C, 0x3E, 0x7F, 0x3E, 0x1C, 0x08, 0x00}, // screen code 127
}

// EmbeddedCharROM reconstructs the 2 KiB character ROM fallback used when
// the VIC-II is pointed at a character generator address the DMA read
// facility cannot see (character ROM shadow, spec §4.6/§4.10).
func EmbeddedCharROM() []byte {
	rom := make([]byte, 2048)
	for code, pattern := range charset128 {
		copy(rom[code*8:code*8+8], pattern[:])
	}
	copy(rom[1024:2048], rom[0:1024])
	return rom
}
