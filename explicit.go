package lde

// decodeExplicit covers opcodes whose trailing bytes the general tables
// cannot express: immediates gated on the ModR/M reg field, mode-sized
// absolute offsets and relative branches, and the register-only MOV CR/DR
// forms. It runs after opcode fetch and before table lookup and reports
// whether it claimed the opcode.
func decodeExplicit(c *byteCursor, inst *Inst, mode MachineMode) (bool, error) {
	addr16 := inst.AddrBits == 16

	switch {
	case inst.OpcodeMap == MapLegacy && (inst.Opcode == 0xF6 || inst.Opcode == 0xF7):
		// Group 3: only the TEST sub-ops (reg 000/001) carry an immediate.
		m, disp, err := parseModRM(c, addr16)
		if err != nil {
			return false, err
		}
		if !c.consume(disp) {
			return false, ErrNoMoreData
		}
		if m.reg == 0b000 || m.reg == 0b001 {
			n := 1
			if inst.Opcode == 0xF7 {
				n = immOperandBytes(inst.OperandBits)
			}
			if !c.consume(n) {
				return false, ErrNoMoreData
			}
		}
		return true, nil

	case inst.OpcodeMap == MapLegacy && inst.Opcode == 0xA1:
		// MOV eAX, moffs takes a mode-sized absolute address and ignores
		// the operand-size prefixes.
		var n int
		switch mode {
		case Virtual8086:
			n = 2
		case LongCompatibilityMode:
			n = 4
		default:
			n = 8
		}
		if !c.consume(n) {
			return false, ErrNoMoreData
		}
		return true, nil

	case inst.OpcodeMap == Map0F && inst.Opcode == 0x78 && !inst.VEX:
		// VMREAD or EXTRQ or INSERTQ: two trailing 1-byte immediates.
		// TODO VMREAD carries no immediates; telling it apart needs the
		// mandatory-prefix state, which is not tracked here.
		_, disp, err := parseModRM(c, addr16)
		if err != nil {
			return false, err
		}
		if !c.consume(disp) {
			return false, ErrNoMoreData
		}
		if !c.consume(2) {
			return false, ErrNoMoreData
		}
		return true, nil

	case inst.OpcodeMap == MapLegacy && (inst.Opcode == 0xE8 || inst.Opcode == 0xE9):
		// Near CALL/JMP with a relative offset. 64-bit mode forces a
		// 32-bit offset regardless of the operand size.
		var n int
		switch mode {
		case Virtual8086:
			n = 2
		case LongCompatibilityMode:
			n = int(inst.OperandBits) / 8
		default:
			n = 4
		}
		if !c.consume(n) {
			return false, ErrNoMoreData
		}
		return true, nil

	case inst.OpcodeMap == Map0F && (inst.Opcode == 0x20 || inst.Opcode == 0x21):
		// MOV CR/DR: the operand is always a register, so the ModR/M byte
		// never implies a displacement whatever its mod field says.
		if _, ok := c.next(); !ok {
			return false, ErrNoMoreData
		}
		return true, nil
	}

	return false, nil
}
