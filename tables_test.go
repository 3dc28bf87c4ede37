package lde

import "testing"

// The generator emits ordered, non-overlapping ranges; lookup correctness
// depends on it.
func TestTableWellFormed(t *testing.T) {
	for m, ranges := range opcodeTables {
		prev := -1
		for i, r := range ranges {
			if r.from > r.to {
				t.Fatalf("map %d range %d: from %#x > to %#x", m, i, r.from, r.to)
			}
			if int(r.from) <= prev {
				t.Fatalf("map %d range %d: overlaps or is out of order at %#x", m, i, r.from)
			}
			prev = int(r.to)
			if r.info.fixed > 7 {
				t.Fatalf("map %d range %d: fixed %d exceeds the 3-bit field", m, i, r.info.fixed)
			}
		}
	}
}

func TestLookupOpcode(t *testing.T) {
	for _, tt := range []struct {
		map_   uint8
		opcode byte
		hit    bool
		info   opcodeInfo
	}{
		{MapLegacy, 0x90, true, opcodeInfo{}},
		{MapLegacy, 0x89, true, opcodeInfo{modrm: true}},
		{MapLegacy, 0xA0, true, opcodeInfo{dispAsz: true}},
		{MapLegacy, 0xB8, true, opcodeInfo{uimmOsz: true}},
		{MapLegacy, 0xC8, true, opcodeInfo{fixed: 3}},
		{Map0F, 0x1F, true, opcodeInfo{modrm: true}},
		{Map0F, 0x84, true, opcodeInfo{dispOsz: true}},
		{Map0F, 0x77, true, opcodeInfo{}},
		{Map0F3A, 0x0F, true, opcodeInfo{modrm: true, fixed: 1}},
		{10, 0x01, true, opcodeInfo{modrm: true, fixed: 4}},

		// Holes: explicitly handled opcodes and escape/prefix bytes.
		{MapLegacy, 0x0F, false, opcodeInfo{}},
		{MapLegacy, 0x66, false, opcodeInfo{}},
		{MapLegacy, 0xF7, false, opcodeInfo{}},
		{MapLegacy, 0xA1, false, opcodeInfo{}},
		{MapLegacy, 0xE8, false, opcodeInfo{}},
		{Map0F, 0x20, false, opcodeInfo{}},
		{Map0F, 0x22, false, opcodeInfo{}},

		// Maps without tables.
		{7, 0x00, false, opcodeInfo{}},
		{31, 0x00, false, opcodeInfo{}},
	} {
		info, ok := lookupOpcode(tt.map_, tt.opcode)
		if ok != tt.hit {
			t.Fatalf("lookupOpcode(%d, %#x) hit = %v, want %v", tt.map_, tt.opcode, ok, tt.hit)
		}
		if ok && info != tt.info {
			t.Fatalf("lookupOpcode(%d, %#x) = %+v, want %+v", tt.map_, tt.opcode, info, tt.info)
		}
	}
}
