package lde

// Legacy prefix bytes (groups 1-4). Scanning is greedy and unordered, so the
// grouping here is purely documentary.
var legacyPrefixes = [...]byte{
	0xF0, 0xF2, 0xF3, // LOCK, REPNE, REP

	0x2E, 0x36, 0x3E, 0x26, 0x64, 0x65, // segment overrides

	0x66, // operand-size override

	0x67, // address-size override
}

func isLegacyPrefix(b byte) bool {
	for _, p := range legacyPrefixes {
		if b == p {
			return true
		}
	}
	return false
}

// REX prefixes follow the pattern 0b0100WRXB.
func isRexPrefix(b byte) bool { return b&0xF0 == 0x40 }

// scanPrefixes consumes legacy prefixes, and REX prefixes when rex is set
// (64-bit mode only), recording the override flags on inst. It stops at the
// first non-prefix byte or at the end of the stream.
//
// Multiple REX prefixes are undefined; the last one counts. A legacy prefix
// after a REX prefix invalidates the REX, which is why RexW is cleared on
// every legacy-prefix consumption.
func scanPrefixes(c *byteCursor, inst *Inst, rex bool) {
	for {
		b, ok := c.peek(0)
		if !ok {
			return
		}
		switch {
		case isLegacyPrefix(b):
			if b == 0x66 {
				inst.OpsizePrefix = true
			}
			if b == 0x67 {
				inst.AddrsizePrefix = true
			}
			inst.RexW = false
		case rex && isRexPrefix(b):
			inst.RexW = (b>>3)&1 == 1 // REX.W
		default:
			return
		}
		c.next()
	}
}
