package lde

// Decode determines the byte length and structural attributes of the first
// instruction encoded in code, reading at most MaxLength bytes.
func Decode(code []byte, mode MachineMode) (Inst, error) {
	return DecodeMax(code, mode, MaxLength)
}

// DecodeMax is Decode with an explicit upper bound on the number of bytes
// the decoder may examine. The decoder is a pure function: it retains no
// reference to code after returning and may run concurrently with other
// decodes.
func DecodeMax(code []byte, mode MachineMode, max uint8) (Inst, error) {
	c := newByteCursor(code, int(max))

	var inst Inst

	scanPrefixes(&c, &inst, mode == LongMode)
	if c.empty() {
		return Inst{}, ErrNoMoreData
	}

	if kind := classifyVex(&c, mode); kind != vexNone {
		inst.VEX = true
		parseVex(&c, kind, &inst)
		op, ok := c.next()
		if !ok {
			return Inst{}, ErrNoMoreData
		}
		inst.Opcode = op
	}

	inst.AddrBits = addrBits(mode, inst.AddrsizePrefix)
	inst.OperandBits = operandBits(mode, inst.RexW, inst.OpsizePrefix)

	if !inst.VEX {
		if is3DNow(&c) {
			inst.TDNow = true
			if err := decode3DNow(&c, &inst); err != nil {
				return Inst{}, err
			}
			inst.Len = uint8(c.offset())
			return inst, nil
		}
		if err := fetchOpcode(&c, &inst); err != nil {
			return Inst{}, err
		}
	}

	handled, err := decodeExplicit(&c, &inst, mode)
	if err != nil {
		return Inst{}, err
	}
	if handled {
		inst.Len = uint8(c.offset())
		return inst, nil
	}

	info, ok := lookupOpcode(inst.OpcodeMap, inst.Opcode)
	if !ok {
		return Inst{}, ErrUnknownInstruction
	}

	disp := 0
	if info.modrm {
		_, disp, err = parseModRM(&c, inst.AddrBits == 16)
		if err != nil {
			return Inst{}, err
		}
	}
	if info.dispAsz && !c.consume(int(inst.AddrBits)/8) {
		return Inst{}, ErrNoMoreData
	}
	if info.dispOsz && !c.consume(immOperandBytes(inst.OperandBits)) {
		return Inst{}, ErrNoMoreData
	}
	if !c.consume(disp) {
		return Inst{}, ErrNoMoreData
	}
	if !c.consume(int(info.fixed)) {
		return Inst{}, ErrNoMoreData
	}
	if info.immOsz && !c.consume(immOperandBytes(inst.OperandBits)) {
		return Inst{}, ErrNoMoreData
	}
	if info.uimmOsz && !c.consume(int(inst.OperandBits)/8) {
		return Inst{}, ErrNoMoreData
	}

	inst.Len = uint8(c.offset())
	return inst, nil
}

// fetchOpcode reads 1, 2, or 3 legacy opcode bytes, honoring the 0F, 0F 38,
// and 0F 3A escape sequences.
func fetchOpcode(c *byteCursor, inst *Inst) error {
	first, ok := c.next()
	if !ok {
		return ErrNoMoreData
	}
	if first != 0x0F {
		inst.Opcode, inst.OpcodeMap = first, MapLegacy
		return nil
	}

	second, ok := c.next()
	if !ok {
		return ErrNoMoreData
	}
	if second != 0x38 && second != 0x3A {
		inst.Opcode, inst.OpcodeMap = second, Map0F
		return nil
	}

	third, ok := c.next()
	if !ok {
		return ErrNoMoreData
	}
	inst.Opcode = third
	if second == 0x38 {
		inst.OpcodeMap = Map0F38
	} else {
		inst.OpcodeMap = Map0F3A
	}
	return nil
}
