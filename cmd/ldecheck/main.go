// ldecheck reads hex-encoded instructions from standard input, one per line,
// and compares the length decoder's answer with the oracle disassembler's.
// Lines the oracle cannot decode are skipped. The exit code is the number of
// disagreements, saturated to 255.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"log"
	"os"

	"github.com/x86lde/lde"
	"github.com/x86lde/lde/oracle"
)

func machineMode(bits int) lde.MachineMode {
	switch bits {
	case 16:
		return lde.Virtual8086
	case 32:
		return lde.LongCompatibilityMode
	case 64:
		return lde.LongMode
	}
	log.Fatalf("expected -mode 16, 32, or 64, got %d", bits)
	panic("unreachable")
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("ldecheck: ")

	bits := flag.Int("mode", 64, "machine mode (16, 32, or 64)")
	flag.Parse()
	mode := machineMode(*bits)

	failed := 0
	fail := func(format string, args ...interface{}) {
		log.Printf(format, args...)
		if failed < 255 {
			failed++
		}
	}

	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := sc.Text()
		code, err := hex.DecodeString(line)
		if err != nil {
			fail("bad hex line %q: %v", line, err)
			continue
		}

		want, err := oracle.Len(code, mode)
		if err != nil {
			// The oracle rejects it; nothing to compare against.
			continue
		}

		inst, err := lde.Decode(code, mode)
		if err != nil {
			fail("disassembly of %q failed: %v", line, err)
			continue
		}
		if int(inst.Len) != want {
			fail("length mismatch for %q: got %d, oracle says %d", line, inst.Len, want)
		}
	}
	if err := sc.Err(); err != nil {
		log.Fatalf("read stdin: %v", err)
	}

	os.Exit(failed)
}
