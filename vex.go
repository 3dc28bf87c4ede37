package lde

// vexKind distinguishes the members of the VEX prefix family.
type vexKind uint8

const (
	vexNone vexKind = iota
	vexTwoByte
	vexThreeByte
	vexXOP // AMD's greatest invention since 3DNow!
	vexEVEX
)

// classifyVex decides whether the bytes under the cursor introduce a
// VEX-family prefix. The lead bytes 0x62, 0x8F, 0xC4, and 0xC5 double as the
// legacy opcodes BOUND, POP, LES, and LDS; classification never consumes
// anything, so an inconclusive answer falls through to legacy decoding.
func classifyVex(c *byteCursor, mode MachineMode) vexKind {
	if !c.has(1) {
		// Even the shortest form (two-byte VEX) is two bytes long.
		return vexNone
	}
	b0, _ := c.peek(0)
	b1, _ := c.peek(1)

	if mode == LongCompatibilityMode {
		// In 32-bit mode only 8 registers exist, so the inverted R and X
		// bits of a real VEX payload are always 1. Intel suggests using
		// them to tell VEX from BOUND/LES/LDS; checking R alone is not
		// sufficient, so X is checked as well.
		if (b1>>7)&1 == 0 || (b1>>6)&1 == 0 {
			return vexNone
		}
	}

	switch b0 {
	case 0xC4:
		if c.has(2) {
			return vexThreeByte
		}
	case 0xC5:
		return vexTwoByte
	case 0x8F:
		// A map selector below 8 would collide with POP r/m; the AMD manual
		// requires XOP map_select >= 8 for exactly this reason.
		if b1&0b11111 >= 8 {
			return vexXOP
		}
	case 0x62:
		if c.has(3) {
			return vexEVEX
		}
	}
	return vexNone
}

// parseVex consumes the prefix bytes of a classified VEX-family encoding and
// extracts the opcode map selector and the W bit. The opcode byte itself is
// left under the cursor. A truncated prefix reads as zero bytes here and
// surfaces as a failed opcode read in the driver.
func parseVex(c *byteCursor, kind vexKind, inst *Inst) {
	switch kind {
	case vexTwoByte: // C5 ..
		c.consume(2)
		inst.OpcodeMap = Map0F // implied by the short form
	case vexThreeByte, vexXOP: // C4 .. .. / 8F .. ..
		c.next()
		b, _ := c.next()
		inst.OpcodeMap = b & 0b11111
		b, _ = c.next()
		inst.RexW = (b>>7)&1 == 1 // VEX.W
	case vexEVEX: // 62 .. .. ..
		c.next()
		b, _ := c.next()
		inst.OpcodeMap = b & 0b111
		b, _ = c.next()
		inst.RexW = (b>>7)&1 == 1 // EVEX.W
		c.next()
	}
}

// is3DNow reports whether the stream continues with the 0F 0F escape. All
// 3DNow! instructions place their opcode byte after the operand bytes.
func is3DNow(c *byteCursor) bool {
	b0, ok0 := c.peek(0)
	b1, ok1 := c.peek(1)
	return ok0 && ok1 && b0 == 0x0F && b1 == 0x0F
}

// decode3DNow consumes the 0F 0F escape, the ModR/M form with its
// displacement, and the trailing opcode byte.
func decode3DNow(c *byteCursor, inst *Inst) error {
	c.consume(2)

	_, disp, err := parseModRM(c, inst.AddrBits == 16)
	if err != nil {
		return err
	}
	if !c.consume(disp) {
		return ErrNoMoreData
	}

	op, ok := c.next()
	if !ok {
		return ErrNoMoreData
	}
	inst.OpcodeMap = Map3DNow
	inst.Opcode = op
	return nil
}
