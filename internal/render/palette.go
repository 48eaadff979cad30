// Package render turns a decoded VIC-II state and its memory windows into
// an RGB frame: the five mode rasterizers, sprite compositor, and
// RSEL/CSEL/border/upscale post-processing.
package render

// RGB is one 8-bit-per-channel color, referenced everywhere by a 4-bit
// palette index rather than carried around directly.
type RGB struct {
	R, G, B uint8
}

// Palette is the 16-entry VICE default C64 palette, indexed by the 4-bit
// color codes VIC-II registers and color RAM use.
var Palette = [16]RGB{
	{0x00, 0x00, 0x00}, // 0 Black
	{0xFF, 0xFF, 0xFF}, // 1 White
	{0x68, 0x37, 0x2B}, // 2 Red
	{0x70, 0xA4, 0xB2}, // 3 Cyan
	{0x6F, 0x3D, 0x86}, // 4 Purple
	{0x58, 0x8D, 0x43}, // 5 Green
	{0x35, 0x28, 0x79}, // 6 Blue
	{0xB8, 0xC7, 0x6F}, // 7 Yellow
	{0x6F, 0x4F, 0x25}, // 8 Orange
	{0x43, 0x39, 0x00}, // 9 Brown
	{0x9A, 0x67, 0x59}, // 10 Light Red
	{0x44, 0x44, 0x44}, // 11 Dark Grey
	{0x6C, 0x6C, 0x6C}, // 12 Grey
	{0x9A, 0xD2, 0x84}, // 13 Light Green
	{0x6C, 0x5E, 0xB5}, // 14 Light Blue
	{0x95, 0x95, 0x95}, // 15 Light Grey
}

// At indexes the palette by a 4-bit nibble, masking off any stray high
// bits the way color-RAM/register reads always carry.
func At(nibble uint8) RGB {
	return Palette[nibble&0x0F]
}
