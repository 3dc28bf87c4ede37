package main

// go build -o gen gen.go && ./gen -config gen.toml > ../tables.generated.go

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
)

// config names the inputs of a generation run.
type config struct {
	// Dataset is the path to the instruction dataset, a JSON export of the
	// per-form encoding patterns of the full instruction set.
	Dataset string `toml:"dataset"`
	// Maps is the number of opcode tables to emit (indexed 0..Maps-1).
	Maps int `toml:"maps"`
}

// record is one instruction form of the dataset.
type record struct {
	Map           int    `json:"map"`
	OpcodeHex     string `json:"opcode_hex"`
	OpcodeMask    string `json:"opcode"`
	Pattern       string `json:"pattern"`
	IClass        string `json:"iclass"`
	HasModRM      bool   `json:"has_modrm"`
	HasImm8       bool   `json:"has_imm8"`
	HasImm8Second bool   `json:"has_imm8_2"`
	HasImm16      bool   `json:"has_imm16"`
	HasImm32      bool   `json:"has_imm32"`
	PartialOpcode bool   `json:"partial_opcode"`
}

type dataset struct {
	Instructions []record `json:"Instructions"`
}

// info mirrors the opcodeInfo descriptor of the decoder.
type info struct {
	ModRM bool
	Fixed uint8

	DispAsz bool
	DispOsz bool
	ImmOsz  bool
	UimmOsz bool

	clonedFrom int // -1 unless replicated from a partial opcode
}

func (a info) equal(b info) bool {
	return a.ModRM == b.ModRM && a.Fixed == b.Fixed &&
		a.DispAsz == b.DispAsz && a.DispOsz == b.DispOsz &&
		a.ImmOsz == b.ImmOsz && a.UimmOsz == b.UimmOsz
}

// Opcodes whose trailing bytes depend on more than the opcode. The decoder
// handles these in code; the tables leave them as holes.
var explicitlyHandled = map[[2]int]bool{
	{0, 0xF7}: true,
	{0, 0xF6}: true,
	{0, 0xA1}: true,
	{0, 0xE8}: true,
	{0, 0xE9}: true,
	// mov cr/dr
	{1, 0x20}: true,
	{1, 0x21}: true,
	{1, 0x22}: true,
	{1, 0x23}: true,
}

func parseRecord(r record) (byte, info, error) {
	opcode, err := strconv.ParseUint(r.OpcodeHex, 16, 8)
	if err != nil {
		return 0, info{}, fmt.Errorf("bad opcode_hex %q: %w", r.OpcodeHex, err)
	}

	parts := strings.Fields(r.Pattern)
	hasPart := func(p string) bool {
		for _, s := range parts {
			if s == p {
				return true
			}
		}
		return false
	}

	var fixedDisp uint8
	switch {
	case hasPart("BRDISP8()"):
		fixedDisp = 1
	case hasPart("BRDISP32()"):
		fixedDisp = 4
	case hasPart("BRDISP64()"):
		fixedDisp = 8
	}
	switch {
	case hasPart("MEMDISP32()"), hasPart("MEMDISP()"):
		fixedDisp = 4
	case hasPart("MEMDISP16()"):
		fixedDisp = 2
	case hasPart("MEMDISP8()"):
		fixedDisp = 1
	}

	out := info{
		ModRM:      r.HasModRM,
		DispAsz:    hasPart("MEMDISPv()"),
		DispOsz:    hasPart("BRDISPz()"),
		ImmOsz:     hasPart("SIMMz()"),
		UimmOsz:    hasPart("UIMMv()"),
		clonedFrom: -1,
	}

	var imm uint8
	if r.HasImm16 {
		imm += 2
	}
	if r.HasImm32 {
		imm += 4
	}
	if r.HasImm8 {
		imm++
	}
	if r.HasImm8Second {
		imm++
	}
	if hasPart("SE_IMM8()") {
		imm++
	}

	if r.Map == 0 && opcode >= 0xD0 && opcode <= 0xD3 {
		// The rotate group's pattern names ONE() without encoding it.
		imm = 0
	}

	if r.Map == 1 && opcode >= 0x80 && opcode <= 0x8F && !hasPart("MODE!=2") {
		// Conditional jumps: 2/4-byte offsets in 16/32-bit, forced to 4 in
		// 64-bit; folded to an operand-sized displacement.
		fixedDisp = 0
		out.DispOsz = true
	}

	if imm != 0 && fixedDisp != 0 {
		return 0, info{}, fmt.Errorf("%s: immediate and fixed displacement cannot share the fixed field", r.IClass)
	}
	out.Fixed = imm | fixedDisp

	return byte(opcode), out, nil
}

// dominant picks the most frequent info among the forms of one opcode.
// Replicated partial-opcode entries only count when nothing else does.
func dominant(forms []info) (info, bool) {
	counts := make(map[info]int)
	for _, f := range forms {
		if f.clonedFrom >= 0 {
			continue
		}
		key := f
		key.clonedFrom = -1
		counts[key]++
	}
	if len(counts) == 0 {
		best := forms[0]
		for _, f := range forms[1:] {
			if f.clonedFrom > best.clonedFrom {
				best = f
			}
		}
		return best, false
	}
	var best info
	bestN := -1
	for f, n := range counts {
		if n > bestN {
			best, bestN = f, n
		}
	}
	return best, len(counts) > 1
}

type tableRange struct {
	From byte
	To   byte
	Info info
}

// thin collapses a 256-entry table into ordered, non-overlapping ranges.
func thin(opcodes []*info) []tableRange {
	var ranges []tableRange
	for i := 0; i < 256; i++ {
		if opcodes[i] == nil {
			continue
		}
		j := i
		for j+1 < 256 && opcodes[j+1] != nil && opcodes[j+1].equal(*opcodes[i]) {
			j++
		}
		ranges = append(ranges, tableRange{From: byte(i), To: byte(j), Info: *opcodes[i]})
		i = j
	}
	return ranges
}

var mapLabels = map[int]string{
	0:  "one-byte opcodes",
	1:  "0F xx",
	2:  "0F 38 xx",
	3:  "0F 3A xx",
	4:  "3DNow (shape only; the decoder answers 3DNow before lookup)",
	5:  "EVEX map 5",
	6:  "EVEX map 6",
	7:  "unused",
	8:  "XOP map 8",
	9:  "XOP map 9",
	10: "XOP map 10",
}

var tmpl = template.Must(template.New("tables").Funcs(template.FuncMap{
	"label": func(m int) string {
		if s, ok := mapLabels[m]; ok {
			return ": " + s
		}
		return ""
	},
	"fields": func(in info) string {
		var fs []string
		if in.ModRM {
			fs = append(fs, "modrm: true")
		}
		if in.Fixed != 0 {
			fs = append(fs, fmt.Sprintf("fixed: %d", in.Fixed))
		}
		if in.DispAsz {
			fs = append(fs, "dispAsz: true")
		}
		if in.DispOsz {
			fs = append(fs, "dispOsz: true")
		}
		if in.ImmOsz {
			fs = append(fs, "immOsz: true")
		}
		if in.UimmOsz {
			fs = append(fs, "uimmOsz: true")
		}
		return strings.Join(fs, ", ")
	},
}).Parse(`// Code generated by gen. DO NOT EDIT.

package lde

// opcodeTables is indexed by opcode map. Ranges are ordered and
// non-overlapping; opcodes handled explicitly by the decoder and byte values
// that can never reach lookup (prefixes, escape bytes) are left as holes.
var opcodeTables = [...][]opcodeRange{
{{- range $map, $ranges := .}}
	// map {{$map}}{{label $map}}
	{
{{- range $ranges}}
		{{"{"}}{{printf "0x%02X, 0x%02X" .From .To}}, opcodeInfo{{"{"}}{{fields .Info}}{{"}}"}},
{{- end}}
	},
{{- end}}
}
`))

func main() {
	configPath := flag.String("config", "gen.toml", "generator config")
	flag.Parse()

	var cfg config
	if _, err := toml.DecodeFile(*configPath, &cfg); err != nil {
		log.Fatalf("read config: %v", err)
	}

	raw, err := os.ReadFile(cfg.Dataset)
	if err != nil {
		log.Fatalf("read dataset: %v", err)
	}
	var ds dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		log.Fatalf("parse dataset: %v", err)
	}

	forms := make([][][]info, cfg.Maps)
	for i := range forms {
		forms[i] = make([][]info, 256)
	}

	for _, r := range ds.Instructions {
		if r.Map >= cfg.Maps {
			continue
		}
		opcode, in, err := parseRecord(r)
		if err != nil {
			log.Fatalf("parse record: %v", err)
		}
		if explicitlyHandled[[2]int{r.Map, int(opcode)}] {
			continue
		}

		if r.PartialOpcode {
			// The low nibble encodes a register; replicate the info across
			// the masked range.
			mask := strings.TrimPrefix(r.OpcodeMask, "0b")
			mask, _, _ = strings.Cut(mask, "_")
			hi, err := strconv.ParseUint(mask, 2, 8)
			if err != nil {
				log.Fatalf("bad partial opcode mask %q: %v", r.OpcodeMask, err)
			}
			for x := byte(0); x <= 0b1111; x++ {
				cloned := byte(hi)<<4 + x
				if cloned < opcode {
					continue
				}
				in := in
				in.clonedFrom = int(opcode)
				forms[r.Map][cloned] = append(forms[r.Map][cloned], in)
			}
			continue
		}
		forms[r.Map][opcode] = append(forms[r.Map][opcode], in)
	}

	tables := make([][]tableRange, cfg.Maps)
	for m := range forms {
		opcodes := make([]*info, 256)
		for op, fs := range forms[m] {
			if len(fs) == 0 {
				continue
			}
			d, conflicting := dominant(fs)
			if conflicting {
				log.Printf("map %d opcode %#x has conflicting forms, keeping the dominant one", m, op)
			}
			opcodes[op] = &d
		}
		tables[m] = thin(opcodes)
	}

	if err := tmpl.Execute(os.Stdout, tables); err != nil {
		log.Fatalf("emit tables: %v", err)
	}
}
