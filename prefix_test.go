package lde

import "testing"

func TestPrefixScan(t *testing.T) {
	for _, tt := range []struct {
		name     string
		code     []byte
		rex      bool
		skip     int
		opsize   bool
		addrsize bool
		rexW     bool
	}{
		{name: "none", code: []byte{0x90}, rex: true},
		{name: "overrides", code: []byte{0x66, 0x67, 0xF0, 0x90}, rex: true, skip: 3, opsize: true, addrsize: true},
		{name: "segments", code: []byte{0x2E, 0x65, 0x90}, rex: true, skip: 2},
		{name: "rex w", code: []byte{0x48, 0x89}, rex: true, skip: 1, rexW: true},
		{name: "rex without w", code: []byte{0x41, 0x89}, rex: true, skip: 1},
		{name: "last rex counts", code: []byte{0x48, 0x40, 0x90}, rex: true, skip: 2},
		{name: "legacy invalidates rex", code: []byte{0x48, 0x66, 0x90}, rex: true, skip: 2, opsize: true},
		{name: "rex only in long mode", code: []byte{0x48, 0x90}, rex: false},
		{name: "empty", code: nil, rex: true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c := newByteCursor(tt.code, MaxLength)
			var inst Inst
			scanPrefixes(&c, &inst, tt.rex)
			if c.offset() != tt.skip {
				t.Fatalf("consumed %d prefix bytes, want %d", c.offset(), tt.skip)
			}
			if inst.OpsizePrefix != tt.opsize || inst.AddrsizePrefix != tt.addrsize || inst.RexW != tt.rexW {
				t.Fatalf("flags = %v/%v/%v, want %v/%v/%v",
					inst.OpsizePrefix, inst.AddrsizePrefix, inst.RexW,
					tt.opsize, tt.addrsize, tt.rexW)
			}
		})
	}
}
