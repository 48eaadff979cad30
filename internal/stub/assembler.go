// Package stub assembles the small position-dependent 6502 machine-code
// routine the ROM-bypass orchestrator injects to relocate ROM-shadowed
// RAM into a window the Ultimate 64's DMA read can see (spec.md §4.5).
package stub

import "fmt"

// Zero-page scratch pointers the copy loop uses for indirect-Y addressing:
// $FB/$FC = source pointer, $FD/$FE = destination pointer.
const (
	srcPtrLo = 0xFB
	srcPtrHi = 0xFC
	dstPtrLo = 0xFD
	dstPtrHi = 0xFE
)

// ProcessorPort and its "bank out everything, I/O stays visible" value.
const (
	ProcessorPort     = 0x01
	BankOutAllROMs    = 0x34
	CompletionMarker  = 0x02
	CompletionValue   = 0x42
)

// builder emits bytes for a position-dependent routine starting at a known
// origin, resolving backward branch targets from recorded label offsets
// (every branch this stub emits targets a label already seen, so a single
// forward pass with immediate backpatching suffices — no two-pass
// assembler is needed the way as/assembler/asm.go needs one for
// general source text).
type builder struct {
	origin uint16
	code   []byte
}

func newBuilder(origin uint16) *builder {
	return &builder{origin: origin}
}

func (b *builder) pc() uint16 {
	return b.origin + uint16(len(b.code))
}

func (b *builder) op(mnemonic string) {
	inst := lookup(mnemonic, Implicit)
	b.code = append(b.code, inst.Opcode)
}

func (b *builder) opImm(mnemonic string, value byte) {
	inst := lookup(mnemonic, Immediate)
	b.code = append(b.code, inst.Opcode, value)
}

func (b *builder) opZP(mnemonic string, addr byte) {
	inst := lookup(mnemonic, ZeroPage)
	b.code = append(b.code, inst.Opcode, addr)
}

func (b *builder) opIndirectY(mnemonic string, zpAddr byte) {
	inst := lookup(mnemonic, IndirectY)
	b.code = append(b.code, inst.Opcode, zpAddr)
}

func (b *builder) opAbs(mnemonic string, addr uint16) {
	inst := lookup(mnemonic, Absolute)
	b.code = append(b.code, inst.Opcode, byte(addr), byte(addr>>8))
}

// branchTo emits a BNE/BPL/etc relative branch back to a previously
// recorded program-counter value.
func (b *builder) branchTo(mnemonic string, target uint16) error {
	inst := lookup(mnemonic, Relative)
	nextPC := b.pc() + uint16(inst.Size)
	offset := int(target) - int(nextPC)
	if offset < -128 || offset > 127 {
		return fmt.Errorf("stub: branch from $%04X to $%04X out of range (%d)", b.pc(), target, offset)
	}
	b.code = append(b.code, inst.Opcode, byte(int8(offset)))
	return nil
}

func (b *builder) bytes() []byte {
	return b.code
}

// GenerateCopyStub assembles the routine of spec.md §4.5: save
// A/X/Y/$01, bank out all ROMs, block-copy length bytes from srcAddr to
// dstAddr via zero-page indirect-Y addressing, restore $01, write the
// completion marker, restore Y/X/A, then jump to continuation (or, if
// continuation is zero, tight-loop at the jump instruction itself so the
// machine waits to be re-frozen).
//
// length is rounded up to a whole number of pages; the caller must size
// dstAddr's backing window to ceil(length/256)*256 bytes.
func GenerateCopyStub(origin uint16, srcAddr, dstAddr uint16, length int, continuation uint16) ([]byte, error) {
	b := newBuilder(origin)

	// Save registers and the banking register.
	b.op("PHA")          // save A
	b.op("TXA")
	b.op("PHA")          // save X
	b.op("TYA")
	b.op("PHA")          // save Y
	b.opZP("LDA", ProcessorPort)
	b.op("PHA")          // save $01

	// Bank out KERNAL, BASIC, and character ROM; I/O stays visible.
	b.opImm("LDA", BankOutAllROMs)
	b.opZP("STA", ProcessorPort)

	// Set up the copy pointers.
	b.opImm("LDA", byte(srcAddr))
	b.opZP("STA", srcPtrLo)
	b.opImm("LDA", byte(srcAddr>>8))
	b.opZP("STA", srcPtrHi)
	b.opImm("LDA", byte(dstAddr))
	b.opZP("STA", dstPtrLo)
	b.opImm("LDA", byte(dstAddr>>8))
	b.opZP("STA", dstPtrHi)

	numPages := (length + 255) / 256
	if numPages == 0 || numPages > 255 {
		return nil, fmt.Errorf("stub: length %d produces %d pages, must be 1..255", length, numPages)
	}
	b.opImm("LDX", byte(numPages))

	outerLoop := b.pc()
	b.opImm("LDY", 0x00)
	innerLoop := b.pc()
	b.opIndirectY("LDA", srcPtrLo)
	b.opIndirectY("STA", dstPtrLo)
	b.op("INY")
	if err := b.branchTo("BNE", innerLoop); err != nil {
		return nil, err
	}
	b.opZP("INC", srcPtrHi)
	b.opZP("INC", dstPtrHi)
	b.op("DEX")
	if err := b.branchTo("BNE", outerLoop); err != nil {
		return nil, err
	}

	// Restore $01, write the completion marker.
	b.op("PLA")
	b.opZP("STA", ProcessorPort)
	b.opImm("LDA", CompletionValue)
	b.opZP("STA", CompletionMarker)

	// Restore Y, X, A.
	b.op("PLA")
	b.op("TAY")
	b.op("PLA")
	b.op("TAX")
	b.op("PLA")

	// Jump to the continuation, or tight-loop at this instruction if none
	// was supplied.
	jmpAddr := b.pc()
	target := continuation
	if target == 0 {
		target = jmpAddr
	}
	b.opAbs("JMP", target)

	return b.bytes(), nil
}
