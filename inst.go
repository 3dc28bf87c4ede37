package lde

import "errors"

// MachineMode selects the CPU execution mode the byte-stream is decoded for.
type MachineMode uint8

const (
	// Virtual8086 is 16-bit 8086/real mode. The opcode tables are generated
	// for the two protected modes; 16-bit coverage is best-effort.
	Virtual8086 MachineMode = iota
	// LongCompatibilityMode is classic 32-bit protected mode.
	LongCompatibilityMode
	// LongMode is 64-bit mode.
	LongMode
)

// MaxLength is the default upper bound on the number of bytes examined per
// instruction.
const MaxLength = 255

// Opcode maps. Maps 5..31 are the raw mmmmm map selector of a VEX, XOP, or
// EVEX prefix and carry no dedicated names.
const (
	MapLegacy uint8 = 0 // one-byte opcodes
	Map0F     uint8 = 1 // 0F xx
	Map0F38   uint8 = 2 // 0F 38 xx
	Map0F3A   uint8 = 3 // 0F 3A xx
	Map3DNow  uint8 = 4 // 0F 0F .. xx, opcode byte trails the operands
)

var (
	// ErrNoMoreData is returned when the byte-stream ends before the
	// instruction does, either because the buffer is truncated or because
	// the caller-supplied bound is too small.
	ErrNoMoreData = errors.New("Instruction byte-stream ended prematurely")

	// ErrUnknownInstruction is returned when the opcode is not covered by
	// the opcode tables. Invalid encodings can slip past this: the tables
	// are optimized for recognition, not validation, and may assign such
	// encodings an incorrect length instead of an error.
	ErrUnknownInstruction = errors.New("Instruction was not found in the opcode tables")
)

// Inst describes the structure of a single decoded instruction. It carries
// no operand semantics; only what is needed to delimit the encoding.
type Inst struct {
	// Total length of the encoding in bytes. Equals the number of bytes
	// consumed from the buffer.
	Len uint8

	// The opcode table the primary opcode lives in: one of the Map*
	// constants, or the raw map selector for VEX/XOP/EVEX encodings.
	OpcodeMap uint8
	// The primary opcode byte.
	Opcode byte

	// Effective address width in bits: 16, 32, or 64.
	AddrBits uint8
	// Effective operand width in bits: 16, 32, or 64.
	OperandBits uint8

	// A literal 0x66 prefix was observed. A VEX-implied 0x66 does not set
	// this.
	OpsizePrefix bool
	// A literal 0x67 prefix was observed.
	AddrsizePrefix bool

	// The W bit is set, via a REX, VEX, XOP, or EVEX prefix.
	RexW bool

	// The encoding uses the VEX, XOP, or EVEX prefix family.
	VEX bool
	// The instruction is a 3DNow! instruction; its opcode byte follows the
	// operand bytes. Mutually exclusive with VEX.
	TDNow bool
}
