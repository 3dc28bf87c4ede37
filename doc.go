// package lde provides an x86/x86-64 instruction-length disassembler in Go
//
// The decoder determines the byte length of the first encoded instruction in
// a buffer without interpreting its operation, along with a small set of
// structural attributes (opcode map, primary opcode byte, effective operand
// and address widths, observed prefixes).
//
// usage example:
//
// 	package example
//
// 	import (
// 		"fmt"
//
// 		"github.com/x86lde/lde"
// 	)
//
// 	func InstOffsets(code []byte) ([]int, error) {
// 		var offsets []int
// 		pos := 0
// 		for pos < len(code) {
// 			inst, err := lde.Decode(code[pos:], lde.LongMode)
// 			if err != nil {
// 				return offsets, fmt.Errorf("decode at offset %d: %w", pos, err)
// 			}
// 			offsets = append(offsets, pos)
// 			pos += int(inst.Len)
// 		}
// 		return offsets, nil
// 	}
package lde
