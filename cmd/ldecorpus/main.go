// ldecorpus walks a binary file and emits one hex line per distinct
// instruction encoding it finds, for seeding length-decoder test corpora.
//
// Each 32-byte window is decoded with the oracle disassembler; decode
// failures skip a single byte. The PC-relative bytes of every instruction
// are canonicalized to 0x41 so that branches to different targets collapse
// into one corpus entry, and entries are deduplicated by hash.
package main

import (
	"bufio"
	"encoding/hex"
	"flag"
	"hash/fnv"
	"io"
	"log"
	"os"

	"github.com/klauspost/compress/zstd"
	"golang.org/x/sys/unix"

	"github.com/x86lde/lde"
	"github.com/x86lde/lde/oracle"
)

const window = 32

// canonicalByte overwrites operand bytes whose value is irrelevant to the
// encoding's length.
const canonicalByte = 0x41

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

// mapFile maps path read-only, falling back to a plain read when the
// platform or filesystem refuses the mapping.
func mapFile(path string) ([]byte, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(st.Size()), unix.PROT_READ, unix.MAP_PRIVATE)
	if err == nil {
		return data, func() { _ = unix.Munmap(data) }, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, func() {}, nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("ldecorpus: ")

	bits := flag.Int("mode", 64, "machine mode (16, 32, or 64)")
	compress := flag.Bool("zst", false, "write zstd-compressed output")
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: ldecorpus [-mode 16|32|64] [-zst] <binary>")
	}
	mode := machineMode(*bits)

	data, done, err := mapFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("open %s: %v", flag.Arg(0), err)
	}
	defer done()

	bw := bufio.NewWriter(os.Stdout)
	var out io.Writer = bw
	flush := func() error { return bw.Flush() }
	if *compress {
		zw, err := zstd.NewWriter(bw)
		if err != nil {
			log.Fatalf("zstd: %v", err)
		}
		out = zw
		flush = func() error {
			if err := zw.Close(); err != nil {
				return err
			}
			return bw.Flush()
		}
	}

	seen := make(map[uint64]bool)
	var buf [window]byte

	for pos := 0; pos+window <= len(data); {
		copy(buf[:], data[pos:pos+window])

		inst, err := oracle.Inst(buf[:], mode)
		if err != nil {
			pos++
			continue
		}
		pos += inst.Len

		// Branch targets differ per call site but never change the length;
		// canonicalize them so each branch form appears once.
		if inst.PCRel > 0 {
			for i := inst.PCRelOff; i < inst.PCRelOff+inst.PCRel; i++ {
				buf[i] = canonicalByte
			}
		}

		line := hex.EncodeToString(buf[:inst.Len])
		h := fnv.New64a()
		_, _ = h.Write([]byte(line))
		sum := h.Sum64()
		if seen[sum] {
			continue
		}
		seen[sum] = true

		if _, err := io.WriteString(out, line+"\n"); err != nil {
			log.Fatalf("write: %v", err)
		}
	}

	if err := flush(); err != nil {
		log.Fatalf("flush: %v", err)
	}
}
