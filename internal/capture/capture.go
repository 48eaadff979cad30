// Package capture drives the end-to-end sequence of spec.md §4.10: freeze,
// read registers, resolve each data source (direct or ROM-bypass), build a
// VIC state, rasterize, composite sprites, post-process, and resume.
package capture

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/climbr-dev/c64shot/internal/bypass"
	"github.com/climbr-dev/c64shot/internal/remote"
	"github.com/climbr-dev/c64shot/internal/render"
	"github.com/climbr-dev/c64shot/internal/rom"
	"github.com/climbr-dev/c64shot/internal/vicstate"
)

// Error kinds per spec.md §7. Wrapped with fmt.Errorf so errors.Is works at
// call sites.
var (
	ErrTransport              = errors.New("capture: remote transport failure")
	ErrROMBypassMarkerMissing = errors.New("capture: ROM-bypass sentinel not observed")
	ErrBadFormat              = errors.New("capture: unsupported output format")
)

// charROMShadowLow/High are the VIC bank char-memory offset window
// ($1000-$1FFF) invisible to DMA reads when the VIC is pointed at banks 0
// or 2 (spec.md §4.10 step 5, glossary "Character ROM shadow").
const (
	charROMShadowLow  = 0x1000
	charROMShadowHigh = 0x2000
)

// Options configures one capture. Border/Sprites/Upscale/NoROMBypass mirror
// the CLI surface of spec.md §6; WriteDumps and Progress are Go-native
// additions recovered from original_source (SPEC_FULL.md §4.12).
type Options struct {
	Border      bool
	Sprites     bool
	Upscale     int
	NoROMBypass bool
	WriteDumps  bool
	DumpDir     string
	Progress    func(stage string)
}

func (o Options) progress(stage string) {
	if o.Progress != nil {
		o.Progress(stage)
	}
}

// Capture runs one full capture against c and returns the finished image.
// The machine is resumed on every exit path, success or failure.
func Capture(ctx context.Context, c *remote.Client, opts Options) (render.RgbImage, error) {
	opts.progress("pausing machine")
	c.Pause(ctx)
	defer c.Resume(ctx)

	opts.progress("reading VIC-II registers")
	regsRaw, err := c.Read(ctx, vicstate.VICRegsBase, vicstate.VICRegsCount)
	if err != nil {
		return render.RgbImage{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	cia2Raw, err := c.Read(ctx, vicstate.CIA2PortA, 1)
	if err != nil {
		return render.RgbImage{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	var regs [vicstate.VICRegsCount]byte
	copy(regs[:], regsRaw)
	state := vicstate.Decode(regs, cia2Raw[0])

	opts.progress("reading color RAM")
	colorRAM, err := c.Read(ctx, vicstate.ColorRAMBase, vicstate.ColorRAMSize)
	if err != nil {
		return render.RgbImage{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	opts.progress("reading screen matrix")
	screen, err := readWindow(ctx, c, opts, uint32(state.ScreenMemAddr), vicstate.ScreenSize, "screen_mem")
	if err != nil {
		return render.RgbImage{}, err
	}
	state.FillPointers(screen)

	var bitmap, charMem []byte
	switch state.Mode {
	case vicstate.HiResBitmap, vicstate.MCBitmap:
		opts.progress("reading bitmap memory")
		bitmap, err = readWindow(ctx, c, opts, uint32(state.BitmapMemAddr), vicstate.BitmapSize, "bitmap_mem")
		if err != nil {
			return render.RgbImage{}, err
		}
	case vicstate.StdText, vicstate.MCText, vicstate.ECM:
		charMemOffset := state.CharMemAddr - state.VICBank
		if (state.VICBank == 0x0000 || state.VICBank == 0x8000) &&
			charMemOffset >= charROMShadowLow && charMemOffset < charROMShadowHigh {
			opts.progress("using embedded character ROM (shadowed)")
			charMem = render.EmbeddedCharROM()
		} else {
			opts.progress("reading character memory")
			charMem, err = readWindow(ctx, c, opts, uint32(state.CharMemAddr), vicstate.CharSize, "char_mem")
			if err != nil {
				return render.RgbImage{}, err
			}
		}
	}

	opts.progress("rasterizing")
	img := render.Render(state, screen, colorRAM, charMem, bitmap)

	if opts.Sprites {
		opts.progress("reading sprite data")
		var spriteData [8][]byte
		for n := 0; n < 8; n++ {
			sp := state.Sprites[n]
			if !sp.Enabled {
				continue
			}
			data, err := c.Read(ctx, uint32(sp.DataAddr), 63)
			if err != nil {
				continue // a failed read leaves this sprite transparent; sprite data is always read directly, without the ROM bypass
			}
			spriteData[n] = data
			if opts.WriteDumps {
				writeDump(opts.DumpDir, fmt.Sprintf("sprite%d_data.bin", n), data)
			}
		}
		render.CompositeSprites(img, state, spriteData)
	}

	opts.progress("post-processing")
	render.ApplyBlanking(img, state)
	if opts.Border {
		img = render.AddBorder(img, state.BorderColor)
	}
	if opts.Upscale > 1 {
		img = img.Upscale(opts.Upscale)
	}

	if opts.WriteDumps {
		writeDump(opts.DumpDir, "vic_regs.bin", regsRaw)
		writeDump(opts.DumpDir, "color_mem.bin", colorRAM)
	}

	return img, nil
}

// readWindow reads length bytes at addr, taking the ROM-bypass path when
// the range overlaps KERNAL/BASIC (unless bypass is disabled), and
// optionally dumps the raw window to opts.DumpDir.
func readWindow(ctx context.Context, c *remote.Client, opts Options, addr uint32, length int, dumpName string) ([]byte, error) {
	var data []byte
	var err error
	if !opts.NoROMBypass && rom.Overlap(addr, length) != rom.None {
		data, err = bypass.Read(ctx, c, addr, length)
	} else {
		data, err = c.Read(ctx, addr, length)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if opts.WriteDumps {
		writeDump(opts.DumpDir, dumpName+".bin", data)
	}
	return data, nil
}

func writeDump(dir, name string, data []byte) {
	if dir == "" {
		dir = "."
	}
	_ = os.WriteFile(filepath.Join(dir, name), data, 0o644)
}
