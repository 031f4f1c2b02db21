package riscv

import (
	"encoding/binary"
	"testing"
)

func enc32(w uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], w)
	return b[:]
}

func enc16(h uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], h)
	return b[:]
}

func TestDecodeGolden(t *testing.T) {
	tests := []struct {
		name string
		isa  ISA
		pc   uint64
		code []byte
		want string
		n    int
	}{
		{"nop", RV64, 0, enc32(0x00000013), "nop", 4},
		{"mv", RV64, 0, enc32(0x00058513), "mv\ta0,a1", 4},
		{"addi", RV64, 0, enc32(0x02050513), "addi\ta0,a0,32", 4},
		{"lui", RV64, 0, enc32(0x10000537), "lui\ta0,268435456", 4},
		{"auipc", RV64, 0x1000, enc32(0x00001517), "auipc\ta0,4096 # 0x2000", 4},
		{"jal", RV64, 0, enc32(0x008000ef), "jal\tra,8 # 0x8", 4},
		{"j", RV64, 0, enc32(0x0080006f), "j\t8 # 0x8", 4},
		{"jr", RV64, 0, enc32(0x00008067), "jr\tra", 4},
		{"beqz", RV64, 0, enc32(0x00050863), "beqz\ta0,16 # 0x10", 4},
		{"bnez backward", RV64, 0x10, enc32(0xfe059ee3), "bnez\ta1,-4 # 0xc", 4},
		{"blez", RV64, 0, enc32(0x00a05463), "blez\ta0,8 # 0x8", 4},
		{"lw", RV64, 0, enc32(0x00852503), "lw\ta0,8(a0)", 4},
		{"sd", RV64, 0, enc32(0x00b53423), "sd\ta1,8(a0)", 4},
		{"slli", RV64, 0, enc32(0x00359513), "slli\ta0,a1,3", 4},
		{"srai", RV64, 0, enc32(0x4035d513), "srai\ta0,a1,3", 4},
		{"sraiw", RV64, 0, enc32(0x4035d51b), "sraiw\ta0,a1,3", 4},
		{"seqz", RV64, 0, enc32(0x0015b513), "seqz\ta0,a1", 4},
		{"not", RV64, 0, enc32(0xfff5c513), "not\ta0,a1", 4},
		{"neg", RV64, 0, enc32(0x40b00533), "neg\ta0,a1", 4},
		{"snez", RV64, 0, enc32(0x00b03533), "snez\ta0,a1", 4},
		{"sext.w", RV64, 0, enc32(0x0005851b), "sext.w\ta0,a1", 4},
		{"mul", RV64, 0, enc32(0x02c58533), "mul\ta0,a1,a2", 4},
		{"fence", RV64, 0, enc32(0x0ff0000f), "fence\tiorw,iorw", 4},
		{"fence rw,o", RV64, 0, enc32(0x0340000f), "fence\trw,o", 4},
		{"fence.i", RV64, 0, enc32(0x0000100f), "fence.i", 4},
		{"ecall", RV64, 0, enc32(0x00000073), "ecall", 4},
		{"ebreak", RV64, 0, enc32(0x00100073), "ebreak", 4},
		{"mret", RV64, 0, enc32(0x30200073), "mret", 4},
		{"wfi", RV64, 0, enc32(0x10500073), "wfi", 4},
		{"dret", RV64, 0, enc32(0x7b200073), "dret", 4},
		{"sfence.vma", RV64, 0, enc32(0x12b50073), "sfence.vma\ta0,a1", 4},
		{"rdcycle", RV64, 0, enc32(0xc0002573), "rdcycle\ta0", 4},
		{"csrrw unnamed", RV64, 0, enc32(0x80059573), "csrrw\ta0,0x800,a1", 4},
		{"csrrsi", RV64, 0, enc32(0x30026573), "csrrsi\ta0,mstatus,4", 4},
		{"fsrmi", RV64, 0, enc32(0x0022d573), "fsrmi\ta0,5", 4},
		{"flw", RV64, 0, enc32(0x00852507), "flw\tfa0,8(a0)", 4},
		{"fmv.s", RV64, 0, enc32(0x20b58553), "fmv.s\tfa0,fa1", 4},
		{"fmadd.s", RV64, 0, enc32(0x68c58543), "fmadd.s\trne,fa0,fa1,fa2,fa3", 4},
		{"fcvt.w.s", RV64, 0, enc32(0xc0051553), "fcvt.w.s\trtz,a0,fa0", 4},
		{"fsqrt.s", RV64, 0, enc32(0x5805f553), "fsqrt.s\tdyn,fa0,fa1", 4},
		{"fclass.s", RV64, 0, enc32(0xe0051553), "fclass.s\ta0,fa0", 4},
		{"fmv.x.d", RV64, 0, enc32(0xe2050553), "fmv.x.d\ta0,fa0", 4},
		{"flt.d", RV64, 0, enc32(0xa2c59553), "flt.d\ta0,fa1,fa2", 4},
		{"lr.w", RV64, 0, enc32(0x100522af), "lr.w\tt0,(a0)", 4},
		{"sc.w.rl", RV64, 0, enc32(0x1ab6252f), "sc.w.rl\ta0,a1,(a2)", 4},
		{"amoadd.w.aq", RV64, 0, enc32(0x04b6252f), "amoadd.w.aq\ta0,a1,(a2)", 4},
		{"amomaxu.d.aqrl", RV64, 0, enc32(0xe6b6352f), "amomaxu.d.aqrl\ta0,a1,(a2)", 4},
		{"c.nop", RV64, 0, enc16(0x0001), "nop", 2},
		{"c.addi", RV64, 0, enc16(0x0511), "addi\ta0,a0,4", 2},
		{"c.addi4spn", RV64, 0, enc16(0x0028), "addi\ta0,sp,8", 2},
		{"c.addi16sp", RV64, 0, enc16(0x6141), "addi\tsp,sp,16", 2},
		{"c.li", RV64, 0, enc16(0x557d), "addi\ta0,zero,-1", 2},
		{"c.lui", RV64, 0, enc16(0x6505), "lui\ta0,4096", 2},
		{"c.mv", RV64, 0, enc16(0x852e), "mv\ta0,a1", 2},
		{"c.jr", RV64, 0, enc16(0x8082), "jr\tra", 2},
		{"c.lwsp", RV64, 0, enc16(0x4512), "lw\ta0,4(sp)", 2},
		{"c.swsp", RV64, 0, enc16(0xc22a), "sw\ta0,4(sp)", 2},
		{"c.sdsp", RV64, 0, enc16(0xe42e), "sd\ta1,8(sp)", 2},
		{"c.beqz", RV64, 0, enc16(0xc501), "beqz\ta0,8 # 0x8", 2},
		{"c.j", RV64, 0, enc16(0xa021), "j\t8 # 0x8", 2},
		{"c.andi", RV64, 0, enc16(0x8911), "andi\ta0,a0,4", 2},
		{"c.sub", RV64, 0, enc16(0x8d0d), "sub\ta0,a0,a1", 2},
		{"c.addw", RV64, 0, enc16(0x9d2d), "addw\ta0,a0,a1", 2},
		{"c.ld", RV64, 0, enc16(0x6588), "ld\ta0,8(a1)", 2},
		{"c.fld", RV64, 0, enc16(0x250c), "fld\tfa1,8(a0)", 2},
		{"c.ebreak", RV64, 0, enc16(0x9002), "ebreak", 2},
		{"addid", RV128, 0, enc32(0x0105855b), "addid\ta0,a1,16", 4},
		{"sraid", RV128, 0, enc32(0x4035d55b), "sraid\ta0,a1,3", 4},
		{"lq", RV128, 0, enc32(0x0105a50f), "lq\ta0,16(a1)", 4},
		{"ldu", RV128, 0, enc32(0x0105f503), "ldu\ta0,16(a1)", 4},
		{"sq", RV128, 0, enc32(0x00b54823), "sq\ta1,16(a0)", 4},
		{"addd", RV128, 0, enc32(0x00c5857b), "addd\ta0,a1,a2", 4},
		{"muld", RV128, 0, enc32(0x02c5857b), "muld\ta0,a1,a2", 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in, n := Decode(tc.isa, tc.pc, tc.code)
			if n != tc.n {
				t.Fatalf("Decode(%s, % x) length = %d, want %d", tc.isa, tc.code, n, tc.n)
			}
			if got := in.String(); got != tc.want {
				t.Errorf("Decode(%s, % x) = %q, want %q", tc.isa, tc.code, got, tc.want)
			}
		})
	}
}

// jalr x0, 0(ra) spells jr ra. The ret spelling requires the immediate,
// not rs1, to equal the return-address register number, so a plain
// return sequence lifts to jr.
func TestJalrSpellings(t *testing.T) {
	tests := []struct {
		code uint32
		want string
	}{
		{0x00008067, "jr\tra"},
		{0x00108067, "ret"},
		{0x00050067, "jr\ta0"},
		{0x000080e7, "jalr\tra,ra,0"},
		{0x00850567, "jalr\ta0,a0,8"},
	}
	for _, tc := range tests {
		if got := Disassemble(RV64, 0, enc32(tc.code)); got != tc.want {
			t.Errorf("Disassemble(%#08x) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

// A compressed instruction and its full-width spelling render the same.
func TestCompressedMatchesFullWidth(t *testing.T) {
	tests := []struct {
		name string
		c    uint16
		full uint32
	}{
		{"nop", 0x0001, 0x00000013},
		{"mv", 0x852e, 0x00058513},
		{"jr", 0x8082, 0x00008067},
		{"ebreak", 0x9002, 0x00100073},
	}
	for _, tc := range tests {
		cText := Disassemble(RV64, 0, enc16(tc.c))
		fullText := Disassemble(RV64, 0, enc32(tc.full))
		if cText != fullText {
			t.Errorf("%s: compressed %q, full-width %q", tc.name, cText, fullText)
		}
	}
}

// The same halfword decodes differently per width where the compressed
// opcode space is shared.
func TestWidthAliasing(t *testing.T) {
	tests := []struct {
		name string
		code []byte
		isa  ISA
		want string
	}{
		{"fsw/sd rv32", enc16(0xe42e), RV32, "fsw\tfa1,8(sp)"},
		{"fsw/sd rv64", enc16(0xe42e), RV64, "sd\ta1,8(sp)"},
		{"jal/addiw rv32", enc16(0x2505), RV32, "jal\tra,1568 # 0x620"},
		{"jal/addiw rv64", enc16(0x2505), RV64, "addiw\ta0,a0,1"},
		{"fld/lq rv32", enc16(0x250c), RV32, "fld\tfa1,8(a0)"},
		{"fld/lq rv64", enc16(0x250c), RV64, "fld\tfa1,8(a0)"},
		{"fld/lq rv128", enc16(0x250c), RV128, "lq\ta1,256(a0)"},
		{"flw/ld rv32", enc16(0x6588), RV32, "flw\tfa0,8(a1)"},
		{"flw/ld rv64", enc16(0x6588), RV64, "ld\ta0,8(a1)"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Disassemble(tc.isa, 0, tc.code); got != tc.want {
				t.Errorf("Disassemble(%s, % x) = %q, want %q", tc.isa, tc.code, got, tc.want)
			}
		})
	}
}

// Compressed encodings that require a nonzero immediate decode to the
// illegal instruction when it is zero. The all-zero halfword is the
// canonical case.
func TestNonzeroImmediateRequired(t *testing.T) {
	tests := []struct {
		name string
		code uint16
	}{
		{"zero word", 0x0000},
		{"c.addi zero imm", 0x0501},
		{"c.slli zero shamt", 0x0502},
	}
	for _, tc := range tests {
		in, n := Decode(RV64, 0, enc16(tc.code))
		if n != 2 {
			t.Fatalf("%s: length = %d, want 2", tc.name, n)
		}
		if in.Op != OpIllegal {
			t.Errorf("%s: op = %v, want illegal", tc.name, in.Op)
		}
		if got := in.String(); got != "illegal" {
			t.Errorf("%s: rendered %q, want %q", tc.name, got, "illegal")
		}
	}
}

func TestInstLength(t *testing.T) {
	tests := []struct {
		half uint16
		want int
	}{
		{0x0001, 2},
		{0x8082, 2},
		{0x0013, 4},
		{0x0073, 4},
		{0x001f, 6},
		{0x101f, 6},
		{0x003f, 8},
		{0x403f, 8},
		{0x007f, 0},
		{0xffff, 0},
	}
	for _, tc := range tests {
		if got := instLength(tc.half); got != tc.want {
			t.Errorf("instLength(%#04x) = %d, want %d", tc.half, got, tc.want)
		}
	}
}

func TestFetch(t *testing.T) {
	code := []byte{0x13, 0x00, 0x00, 0x00, 0x01, 0x00}

	word, n := Fetch(code, 0)
	if word != 0x13 || n != 4 {
		t.Errorf("Fetch at 0 = %#x, %d, want 0x13, 4", word, n)
	}
	word, n = Fetch(code, 4)
	if word != 0x0001 || n != 2 {
		t.Errorf("Fetch at 4 = %#x, %d, want 0x1, 2", word, n)
	}

	// Out of range offsets fetch nothing.
	if _, n := Fetch(code, -2); n != 0 {
		t.Errorf("Fetch at -2 consumed %d bytes", n)
	}
	if _, n := Fetch(code, 5); n != 0 {
		t.Errorf("Fetch at 5 consumed %d bytes", n)
	}
	if _, n := Fetch(code, 6); n != 0 {
		t.Errorf("Fetch at 6 consumed %d bytes", n)
	}

	// A 32-bit header with only 2 bytes present returns the partial
	// halfword with length 0.
	word, n = Fetch([]byte{0x13, 0x20}, 0)
	if n != 0 {
		t.Errorf("truncated fetch consumed %d bytes", n)
	}
	if word != 0x2013 {
		t.Errorf("truncated fetch word = %#x, want 0x2013", word)
	}
}

func TestFetchWideLengths(t *testing.T) {
	// 48- and 64-bit length headers are recognized even though no such
	// encodings are assigned; the reserved pattern fetches nothing.
	code6 := []byte{0x1f, 0x00, 0x00, 0x00, 0x00, 0x00}
	if _, n := Fetch(code6, 0); n != 6 {
		t.Errorf("48-bit fetch consumed %d bytes, want 6", n)
	}
	code8 := []byte{0x3f, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}
	if _, n := Fetch(code8, 0); n != 8 {
		t.Errorf("64-bit fetch consumed %d bytes, want 8", n)
	}
	if _, n := Fetch([]byte{0x7f, 0x00}, 0); n != 0 {
		t.Errorf("reserved-length fetch consumed %d bytes, want 0", n)
	}

	// Decoded wide words render as illegal but still consume their
	// full length.
	in, n := Decode(RV64, 0, code6)
	if n != 6 || in.Op != OpIllegal {
		t.Errorf("48-bit decode = %v, %d, want illegal, 6", in.Op, n)
	}
	in, n = Decode(RV64, 0, code8)
	if n != 8 || in.Op != OpIllegal {
		t.Errorf("64-bit decode = %v, %d, want illegal, 8", in.Op, n)
	}
}

func TestDecodeEmptyAndTruncated(t *testing.T) {
	for _, code := range [][]byte{nil, {}, {0x13}, {0x13, 0x00}, {0x13, 0x00, 0x00}} {
		in, n := Decode(RV64, 0, code)
		if n != 0 {
			t.Errorf("Decode(% x) consumed %d bytes, want 0", code, n)
		}
		if got := in.String(); got != "illegal" {
			t.Errorf("Decode(% x) rendered %q, want %q", code, got, "illegal")
		}
	}
}

func TestDecodeIsPure(t *testing.T) {
	code := enc32(0xc0002573)
	a, _ := Decode(RV64, 0x100, code)
	b, _ := Decode(RV64, 0x100, code)
	if a != b {
		t.Errorf("repeated decode differs: %+v vs %+v", a, b)
	}
	if a.String() != b.String() {
		t.Errorf("repeated render differs: %q vs %q", a.String(), b.String())
	}
}

func TestScanner(t *testing.T) {
	var code []byte
	code = append(code, enc32(0x00000013)...) // nop
	code = append(code, enc16(0x0001)...)     // c.nop
	code = append(code, enc32(0x00100073)...) // ebreak

	s := NewScanner(RV64, 0x80000000, code)
	want := []struct {
		pc   uint64
		text string
		n    int
	}{
		{0x80000000, "nop", 4},
		{0x80000004, "nop", 2},
		{0x80000006, "ebreak", 4},
	}
	for i, w := range want {
		if !s.Scan() {
			t.Fatalf("Scan stopped at step %d", i)
		}
		in := s.Inst()
		if in.PC != w.pc {
			t.Errorf("step %d: pc = %#x, want %#x", i, in.PC, w.pc)
		}
		if got := in.String(); got != w.text {
			t.Errorf("step %d: text = %q, want %q", i, got, w.text)
		}
		if len(s.Bytes()) != w.n {
			t.Errorf("step %d: consumed %d bytes, want %d", i, len(s.Bytes()), w.n)
		}
	}
	if s.Scan() {
		t.Error("Scan continued past end of code")
	}
}

func TestScannerResync(t *testing.T) {
	// A reserved length pattern consumes two bytes and scanning
	// continues at the next halfword.
	var code []byte
	code = append(code, 0x7f, 0x00)
	code = append(code, enc32(0x00000013)...)

	s := NewScanner(RV64, 0, code)
	if !s.Scan() {
		t.Fatal("Scan failed on reserved pattern")
	}
	if in := s.Inst(); in.Op != OpIllegal || in.Raw != 0x7f {
		t.Errorf("reserved pattern decoded to %v raw %#x", in.Op, in.Raw)
	}
	if len(s.Bytes()) != 2 {
		t.Errorf("reserved pattern consumed %d bytes, want 2", len(s.Bytes()))
	}
	if !s.Scan() {
		t.Fatal("Scan failed after resync")
	}
	if got := s.Inst().String(); got != "nop" {
		t.Errorf("after resync decoded %q, want %q", got, "nop")
	}
	if s.Inst().PC != 2 {
		t.Errorf("after resync pc = %#x, want 2", s.Inst().PC)
	}
}

func TestScannerTrailingByte(t *testing.T) {
	s := NewScanner(RV64, 0, []byte{0x13})
	if !s.Scan() {
		t.Fatal("Scan failed on trailing byte")
	}
	if len(s.Bytes()) != 1 {
		t.Errorf("trailing byte consumed %d bytes, want 1", len(s.Bytes()))
	}
	if got := s.Inst().String(); got != "illegal" {
		t.Errorf("trailing byte rendered %q, want %q", got, "illegal")
	}
	if s.Scan() {
		t.Error("Scan continued past trailing byte")
	}
}

func TestDisassemble(t *testing.T) {
	if got := Disassemble(RV64, 0, enc32(0x02c58533)); got != "mul\ta0,a1,a2" {
		t.Errorf("Disassemble = %q", got)
	}
	if got := Disassemble(RV64, 0, nil); got != "illegal" {
		t.Errorf("Disassemble(nil) = %q", got)
	}
}
