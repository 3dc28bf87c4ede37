// package oracle answers length queries with the full x86 disassembler in
// golang.org/x/arch, for cross-checking the table-driven length decoder.
//
// Some encodings supported by the length decoder in the lde package are not
// supported by the instruction-decoder in the x86asm package (3DNow!, XOP,
// EVEX); callers are expected to skip what the oracle cannot decode.
package oracle

import (
	"golang.org/x/arch/x86/x86asm"

	"github.com/x86lde/lde"
)

// Bits converts a MachineMode to the bit width x86asm.Decode expects.
func Bits(mode lde.MachineMode) int {
	switch mode {
	case lde.Virtual8086:
		return 16
	case lde.LongCompatibilityMode:
		return 32
	default:
		return 64
	}
}

// Inst decodes the first instruction in code with the oracle.
func Inst(code []byte, mode lde.MachineMode) (x86asm.Inst, error) {
	return x86asm.Decode(code, Bits(mode))
}

// Len returns the oracle's length answer for the first instruction in code.
func Len(code []byte, mode lde.MachineMode) (int, error) {
	inst, err := Inst(code, mode)
	if err != nil {
		return 0, err
	}
	return inst.Len, nil
}
