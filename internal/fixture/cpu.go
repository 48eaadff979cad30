package fixture

import "fmt"

// CPU is a flat-memory 6502 interpreter covering only the opcodes
// internal/stub emits (load/store/transfer/stack/inc/dec/branch/jmp) plus
// RTI, so a test NMI handler can return control cleanly.
type CPU struct {
	A, X, Y, SP uint8
	PC          uint16
	P           uint8
	Mem         *Memory
}

// Status flag bits, grounded on cpu/cpu.go's FlagC..FlagN set.
const (
	flagZ uint8 = 0x02
	flagN uint8 = 0x80
)

// NewCPU returns a CPU with its program counter at entry and the stack
// pointer at its power-on value.
func NewCPU(mem *Memory, entry uint16) *CPU {
	return &CPU{Mem: mem, PC: entry, SP: 0xFF}
}

func (c *CPU) push(v uint8) {
	c.Mem.Write(0x0100+uint16(c.SP), v)
	c.SP--
}

func (c *CPU) pop() uint8 {
	c.SP++
	return c.Mem.Read(0x0100 + uint16(c.SP))
}

func (c *CPU) setZN(v uint8) {
	if v == 0 {
		c.P |= flagZ
	} else {
		c.P &^= flagZ
	}
	if v&0x80 != 0 {
		c.P |= flagN
	} else {
		c.P &^= flagN
	}
}

// TriggerNMI pushes PC and P and jumps through the vector at $0318-$0319 —
// the software NMI vector the ROM-bypass orchestrator redirects. Real
// hardware reaches that vector via an indirect JMP inside the KERNAL's
// fixed NMI entry at $FFFA; this fixture jumps straight to it, which is
// behaviorally equivalent for every test this package drives.
func (c *CPU) TriggerNMI() {
	c.push(uint8(c.PC >> 8))
	c.push(uint8(c.PC))
	c.push(c.P)
	lo := c.Mem.Read(0x0318)
	hi := c.Mem.Read(0x0319)
	c.PC = uint16(lo) | uint16(hi)<<8
}

// Step decodes and executes one instruction, returning an error for any
// opcode outside the subset this fixture supports.
func (c *CPU) Step() error {
	opcode := c.Mem.Read(c.PC)
	c.PC++
	switch opcode {
	case 0x00: // uninitialized RAM / idle park: stay put until an NMI redirects us
		c.PC--
	case 0x48: // PHA
		c.push(c.A)
	case 0x68: // PLA
		c.A = c.pop()
		c.setZN(c.A)
	case 0x8A: // TXA
		c.A = c.X
		c.setZN(c.A)
	case 0xAA: // TAX
		c.X = c.A
		c.setZN(c.X)
	case 0x98: // TYA
		c.A = c.Y
		c.setZN(c.A)
	case 0xA8: // TAY
		c.Y = c.A
		c.setZN(c.Y)
	case 0xC8: // INY
		c.Y++
		c.setZN(c.Y)
	case 0xCA: // DEX
		c.X--
		c.setZN(c.X)
	case 0xA9: // LDA #imm
		c.A = c.fetch()
		c.setZN(c.A)
	case 0xA5: // LDA zp
		c.A = c.Mem.Read(uint16(c.fetch()))
		c.setZN(c.A)
	case 0xB1: // LDA (zp),Y
		c.A = c.Mem.Read(c.indirectY())
		c.setZN(c.A)
	case 0xA2: // LDX #imm
		c.X = c.fetch()
		c.setZN(c.X)
	case 0xA0: // LDY #imm
		c.Y = c.fetch()
		c.setZN(c.Y)
	case 0x85: // STA zp
		c.Mem.Write(uint16(c.fetch()), c.A)
	case 0x91: // STA (zp),Y
		c.Mem.Write(c.indirectY(), c.A)
	case 0xE6: // INC zp
		addr := uint16(c.fetch())
		v := c.Mem.Read(addr) + 1
		c.Mem.Write(addr, v)
		c.setZN(v)
	case 0xD0: // BNE
		offset := int8(c.fetch())
		if c.P&flagZ == 0 {
			c.PC = uint16(int32(c.PC) + int32(offset))
		}
	case 0x4C: // JMP abs
		c.PC = c.fetchWord()
	case 0x40: // RTI
		c.P = c.pop()
		lo := c.pop()
		hi := c.pop()
		c.PC = uint16(lo) | uint16(hi)<<8
	default:
		return fmt.Errorf("fixture: unsupported opcode $%02X at $%04X", opcode, c.PC-1)
	}
	return nil
}

func (c *CPU) fetch() uint8 {
	v := c.Mem.Read(c.PC)
	c.PC++
	return v
}

func (c *CPU) fetchWord() uint16 {
	lo := c.fetch()
	hi := c.fetch()
	return uint16(lo) | uint16(hi)<<8
}

func (c *CPU) indirectY() uint16 {
	zp := c.fetch()
	lo := c.Mem.Read(uint16(zp))
	hi := c.Mem.Read(uint16(zp) + 1)
	base := uint16(lo) | uint16(hi)<<8
	return base + uint16(c.Y)
}

// Run steps the CPU until it detects a tight loop (PC about to re-execute
// the same JMP it just took — the stub's "no continuation supplied"
// fallback) or maxSteps is reached, whichever comes first.
func (c *CPU) Run(maxSteps int) error {
	for i := 0; i < maxSteps; i++ {
		pcBefore := c.PC
		if err := c.Step(); err != nil {
			return err
		}
		if c.PC == pcBefore {
			return nil
		}
	}
	return nil
}
