package disasm

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/climbr-dev/c64shot/internal/stub"
)

// TestStubCorrectness implements testable property §8.7: the emitted stub,
// disassembled, saves then restores A/X/Y and $01, writes $34 to $01
// exactly once, ends with a single JMP to the continuation, and writes
// $42 to $02.
func TestStubCorrectness(t *testing.T) {
	continuation := uint16(0xFE47)
	code, err := stub.GenerateCopyStub(0x0340, 0xE000, 0x4000, 200, continuation)
	require.NoError(t, err)

	locs, err := Decode(code)
	require.NoError(t, err)
	require.NotEmpty(t, locs)

	var phaCount, plaCount, bankOutWrites int
	var sentinelWrite bool
	for i, loc := range locs {
		if loc.Inst.Mnemonic == "PHA" {
			phaCount++
		}
		if loc.Inst.Mnemonic == "PLA" {
			plaCount++
		}
		if loc.Inst.Mnemonic == "LDA" && loc.Inst.Mode == Immediate && loc.OperandValue() == 0x34 {
			// must be followed by STA $01
			require.Less(t, i+1, len(locs))
			next := locs[i+1]
			require.Equal(t, "STA", next.Inst.Mnemonic)
			require.Equal(t, uint16(0x01), next.OperandValue())
			bankOutWrites++
		}
		if loc.Inst.Mnemonic == "LDA" && loc.Inst.Mode == Immediate && loc.OperandValue() == 0x42 {
			require.Less(t, i+1, len(locs))
			next := locs[i+1]
			require.Equal(t, "STA", next.Inst.Mnemonic)
			require.Equal(t, uint16(0x02), next.OperandValue())
			sentinelWrite = true
		}
	}

	require.Equal(t, 4, phaCount, "must save A, X (via TXA/PHA), Y (via TYA/PHA), and $01")
	require.Equal(t, 4, plaCount, "must restore $01, Y, X, A")
	require.Equal(t, 1, bankOutWrites, "must bank out ROMs exactly once")
	require.True(t, sentinelWrite, "must write the completion marker $42 to $02")

	last := locs[len(locs)-1]
	require.Equal(t, "JMP", last.Inst.Mnemonic)
	require.Equal(t, continuation, last.OperandValue())
}

func TestDecodeRejectsUnknownOpcode(t *testing.T) {
	_, err := Decode([]byte{0xFF})
	require.Error(t, err)
}
