// Package bypass drives the ROM-shadow memory bypass: it relocates
// VIC-II-visible RAM that the Ultimate 64's DMA read cannot see (because a
// ROM occupies the same CPU address range) into a window DMA can read, then
// restores every byte and register it touched.
package bypass

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/climbr-dev/c64shot/internal/remote"
	"github.com/climbr-dev/c64shot/internal/stub"
)

// Fixed layout (spec.md §4.6).
const (
	CopyBuffer     = 0x4000
	CopyBufferCap  = 0x2000 // 8 KiB, enough for any single VIC-II data region
	StubAddr       = 0x0340
	StubAreaLen    = 128
	ZeroPageLo     = 0x00FB
	ZeroPageLen    = 4
	SentinelAddr   = 0x0002
	SentinelValue  = 0x42
	NMIVectorAddr  = 0x0318
	CIA2ICR        = 0xDD0D
	CIA2TimerALo   = 0xDD04
	CIA2TimerAHi   = 0xDD05
	CIA2TimerACtrl = 0xDD0E
	// cia2TimerBackupLen covers $DD04-$DD06 per spec.md §4.6 step 1; the
	// backup window does not reach the control register at $DD0E.
	cia2TimerBackupLen = 3

	enableTimerANMI     = 0x81
	startForceLoad      = 0x11
	disableTimerANMI    = 0x01
	timerALatchNearZero = 2

	// waitForStub is the interval the machine runs free while the injected
	// stub executes under NMI. 500ms is the safe floor noted in spec.md
	// §4.6 step 5 for an 8 KiB copy at 1 MHz.
	waitForStub = 500 * time.Millisecond
)

// restoreGuard accumulates restore closures in setup order and runs them in
// reverse during cleanup, so a panic or early return during setup only
// undoes the steps that actually completed (spec.md §9's "scoped cleanup").
type restoreGuard struct {
	steps []func()
}

func (g *restoreGuard) push(step func()) {
	g.steps = append(g.steps, step)
}

func (g *restoreGuard) runAll() {
	for i := len(g.steps) - 1; i >= 0; i-- {
		g.steps[i]()
	}
}

// Read relocates length bytes starting at addr into CopyBuffer using the
// injected copy stub, then reads them back, restoring all machine state
// regardless of outcome. The machine must already be paused; Read leaves it
// paused on return.
func Read(ctx context.Context, c *remote.Client, addr uint32, length int) ([]byte, error) {
	if length <= 0 || length > CopyBufferCap {
		return nil, fmt.Errorf("bypass: length %d out of range 1..%d", length, CopyBufferCap)
	}
	bufLen := ((length + 255) / 256) * 256

	guard := &restoreGuard{}
	defer guard.runAll()

	stubBackup, err := c.Read(ctx, StubAddr, StubAreaLen)
	if err != nil {
		return nil, fmt.Errorf("bypass: backup stub area: %w", err)
	}
	guard.push(func() {
		if err := c.Write(ctx, StubAddr, stubBackup); err != nil {
			log.Printf("bypass: restore stub area: %v", err)
		}
	})

	bufBackup, err := c.Read(ctx, CopyBuffer, bufLen)
	if err != nil {
		return nil, fmt.Errorf("bypass: backup copy buffer: %w", err)
	}
	guard.push(func() {
		if err := c.Write(ctx, CopyBuffer, bufBackup); err != nil {
			log.Printf("bypass: restore copy buffer: %v", err)
		}
	})

	zpBackup, err := c.Read(ctx, ZeroPageLo, ZeroPageLen)
	if err != nil {
		return nil, fmt.Errorf("bypass: backup zero page: %w", err)
	}
	guard.push(func() {
		if err := c.Write(ctx, ZeroPageLo, zpBackup); err != nil {
			log.Printf("bypass: restore zero page: %v", err)
		}
	})

	sentinelBackup, err := c.Read(ctx, SentinelAddr, 1)
	if err != nil {
		return nil, fmt.Errorf("bypass: backup sentinel: %w", err)
	}
	guard.push(func() {
		if err := c.Write(ctx, SentinelAddr, sentinelBackup); err != nil {
			log.Printf("bypass: restore sentinel: %v", err)
		}
	})

	nmiVectorBackup, err := c.Read(ctx, NMIVectorAddr, 2)
	if err != nil {
		return nil, fmt.Errorf("bypass: backup NMI vector: %w", err)
	}
	guard.push(func() {
		if err := c.Write(ctx, NMIVectorAddr, nmiVectorBackup); err != nil {
			log.Printf("bypass: restore NMI vector: %v", err)
		}
	})

	icrBackup, err := c.Read(ctx, CIA2ICR, 1)
	if err != nil {
		return nil, fmt.Errorf("bypass: backup CIA2 ICR: %w", err)
	}

	timerBackup, err := c.Read(ctx, CIA2TimerALo, cia2TimerBackupLen)
	if err != nil {
		return nil, fmt.Errorf("bypass: backup CIA2 timer A: %w", err)
	}
	guard.push(func() {
		if err := c.Write(ctx, CIA2TimerALo, timerBackup); err != nil {
			log.Printf("bypass: restore CIA2 timer A: %v", err)
		}
		if err := c.Write(ctx, CIA2ICR, []byte{disableTimerANMI}); err != nil {
			log.Printf("bypass: disable CIA2 timer A NMI: %v", err)
		}
	})
	_ = icrBackup // acknowledged but not restored verbatim: writing ICR reads-to-clear on real hardware

	continuation := uint16(nmiVectorBackup[0]) | uint16(nmiVectorBackup[1])<<8

	stubBytes, err := stub.GenerateCopyStub(StubAddr, uint16(addr), CopyBuffer, length, continuation)
	if err != nil {
		return nil, fmt.Errorf("bypass: generate copy stub: %w", err)
	}
	if err := c.Write(ctx, StubAddr, stubBytes); err != nil {
		return nil, fmt.Errorf("bypass: inject stub: %w", err)
	}
	if err := c.Write(ctx, NMIVectorAddr, []byte{byte(StubAddr & 0xFF), byte(StubAddr >> 8)}); err != nil {
		return nil, fmt.Errorf("bypass: redirect NMI vector: %w", err)
	}
	if err := c.Write(ctx, SentinelAddr, []byte{0x00}); err != nil {
		return nil, fmt.Errorf("bypass: clear sentinel: %w", err)
	}

	if _, err := c.Read(ctx, CIA2ICR, 1); err != nil {
		return nil, fmt.Errorf("bypass: acknowledge CIA2 ICR: %w", err)
	}
	if err := c.Write(ctx, CIA2TimerALo, []byte{timerALatchNearZero, 0x00}); err != nil {
		return nil, fmt.Errorf("bypass: set timer A latch: %w", err)
	}
	if err := c.Write(ctx, CIA2ICR, []byte{enableTimerANMI}); err != nil {
		return nil, fmt.Errorf("bypass: enable timer A NMI: %w", err)
	}
	if err := c.Write(ctx, CIA2TimerACtrl, []byte{startForceLoad}); err != nil {
		return nil, fmt.Errorf("bypass: start timer A: %w", err)
	}

	if !c.Resume(ctx) {
		return nil, fmt.Errorf("bypass: resume failed before stub execution")
	}
	time.Sleep(waitForStub)
	c.Pause(ctx)

	sentinel, err := c.Read(ctx, SentinelAddr, 1)
	if err != nil {
		return nil, fmt.Errorf("bypass: verify sentinel: %w", err)
	}
	if sentinel[0] != SentinelValue {
		log.Printf("bypass: sentinel mismatch (got $%02X, want $%02X); reading buffer anyway", sentinel[0], SentinelValue)
	}

	data, err := c.Read(ctx, CopyBuffer, length)
	if err != nil {
		return nil, fmt.Errorf("bypass: read relocated window: %w", err)
	}
	return data, nil
}
