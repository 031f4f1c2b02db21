package riscv

import "testing"

// TestDecompressExpansion drives compressed encodings through the full
// decoder and checks the op and operands they expand to at each width.
func TestDecompressExpansion(t *testing.T) {
	tests := []struct {
		name string
		isa  ISA
		half uint16
		op   Op
		text string
	}{
		{"c.addi4spn", RV64, 0x0028, OpAddi, "addi\ta0,sp,8"},
		{"c.addi", RV64, 0x0511, OpAddi, "addi\ta0,a0,4"},
		{"c.addi16sp", RV64, 0x6141, OpAddi, "addi\tsp,sp,16"},
		{"c.li", RV64, 0x557d, OpAddi, "addi\ta0,zero,-1"},
		{"c.lui", RV64, 0x6505, OpLui, "lui\ta0,4096"},
		{"c.lw", RV64, 0x4188, OpLw, "lw\ta0,0(a1)"},
		{"c.lwsp", RV64, 0x4512, OpLw, "lw\ta0,4(sp)"},
		{"c.swsp", RV64, 0xc22a, OpSw, "sw\ta0,4(sp)"},
		{"c.fld rv32", RV32, 0x250c, OpFld, "fld\tfa1,8(a0)"},
		{"c.fld rv64", RV64, 0x250c, OpFld, "fld\tfa1,8(a0)"},
		{"c.lq rv128", RV128, 0x250c, OpLq, "lq\ta1,256(a0)"},
		{"c.flw rv32", RV32, 0x6588, OpFlw, "flw\tfa0,8(a1)"},
		{"c.ld rv64", RV64, 0x6588, OpLd, "ld\ta0,8(a1)"},
		{"c.ld rv128", RV128, 0x6588, OpLd, "ld\ta0,8(a1)"},
		{"c.fldsp rv64", RV64, 0x2502, OpFld, "fld\tfa0,0(sp)"},
		{"c.lqsp rv128", RV128, 0x2502, OpLq, "lq\ta0,0(sp)"},
		{"c.ldsp rv64", RV64, 0x6502, OpLd, "ld\ta0,0(sp)"},
		{"c.flwsp rv32", RV32, 0x6502, OpFlw, "flw\tfa0,0(sp)"},
		{"c.fsdsp rv64", RV64, 0xa42e, OpFsd, "fsd\tfa1,8(sp)"},
		{"c.sqsp rv128", RV128, 0xa42e, OpSq, "sq\ta1,512(sp)"},
		{"c.fswsp rv32", RV32, 0xe42e, OpFsw, "fsw\tfa1,8(sp)"},
		{"c.sdsp rv64", RV64, 0xe42e, OpSd, "sd\ta1,8(sp)"},
		{"c.jal rv32", RV32, 0x2505, OpJal, "jal\tra,1568 # 0x620"},
		{"c.addiw rv64", RV64, 0x2505, OpAddiw, "addiw\ta0,a0,1"},
		{"c.srli", RV64, 0x8111, OpSrli, "srli\ta0,a0,4"},
		{"c.srai", RV64, 0x8511, OpSrai, "srai\ta0,a0,4"},
		{"c.andi", RV64, 0x8911, OpAndi, "andi\ta0,a0,4"},
		{"c.slli", RV64, 0x050e, OpSlli, "slli\ta0,a0,3"},
		{"c.sub", RV64, 0x8d0d, OpSub, "sub\ta0,a0,a1"},
		{"c.xor", RV64, 0x8d2d, OpXor, "xor\ta0,a0,a1"},
		{"c.or", RV64, 0x8d4d, OpOr, "or\ta0,a0,a1"},
		{"c.and", RV64, 0x8d6d, OpAnd, "and\ta0,a0,a1"},
		{"c.subw", RV64, 0x9d0d, OpSubw, "subw\ta0,a0,a1"},
		{"c.addw", RV64, 0x9d2d, OpAddw, "addw\ta0,a0,a1"},
		{"c.add", RV64, 0x952e, OpAdd, "add\ta0,a0,a1"},
		{"c.ebreak", RV64, 0x9002, OpEbreak, "ebreak"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in, n := Decode(tc.isa, 0, enc16(tc.half))
			if n != 2 {
				t.Fatalf("Decode(%s, %#04x): consumed %d bytes, want 2", tc.isa, tc.half, n)
			}
			if in.Op != tc.op {
				t.Fatalf("Decode(%s, %#04x): op %s, want %s", tc.isa, tc.half, in.Op, tc.op)
			}
			if got := in.String(); got != tc.text {
				t.Errorf("Decode(%s, %#04x): rendered %q, want %q", tc.isa, tc.half, got, tc.text)
			}
		})
	}
}

// Compressed ops with no expansion at the decoding width pass through
// untouched, and nonzero-immediate forms collapse to illegal when the
// immediate is zero.
func TestDecompressEdges(t *testing.T) {
	t.Run("pass through without target", func(t *testing.T) {
		in := Inst{Op: OpCFlw, Codec: CodecCLLw, Imm: 8}
		decompress(&in, RV64)
		if in.Op != OpCFlw || in.Codec != CodecCLLw {
			t.Errorf("decompress(c.flw, rv64) = %s/%s, want untouched", in.Op, in.Codec)
		}
	})
	t.Run("nonzero immediate required", func(t *testing.T) {
		in := Inst{Op: OpCAddi, Codec: CodecCI, Imm: 0}
		decompress(&in, RV64)
		if in.Op != OpIllegal {
			t.Errorf("decompress(c.addi, imm=0) = %s, want %s", in.Op, OpIllegal)
		}
	})
	t.Run("nonzero immediate satisfied", func(t *testing.T) {
		in := Inst{Op: OpCAddi, Codec: CodecCI, Imm: 4}
		decompress(&in, RV64)
		if in.Op != OpAddi || in.Codec != CodecI {
			t.Errorf("decompress(c.addi, imm=4) = %s/%s, want %s/%s", in.Op, in.Codec, OpAddi, CodecI)
		}
	})
	t.Run("c.nop allows zero immediate", func(t *testing.T) {
		in := Inst{Op: OpCNop, Codec: CodecCINone, Imm: 0}
		decompress(&in, RV64)
		if in.Op != OpAddi {
			t.Errorf("decompress(c.nop) = %s, want %s", in.Op, OpAddi)
		}
	})
}

// Every compressed op must expand somewhere, every expansion target
// must be a full-width hardware op, and full-width rows must not carry
// expansion data.
func TestDecompressTableShape(t *testing.T) {
	for op := Op(1); op < opCount; op++ {
		data := &opData[op]
		if !op.Compressed() {
			if data.decomp != [3]Op{} || data.decompNZ {
				t.Errorf("%s: expansion data on a full-width op", op)
			}
			continue
		}
		targets := 0
		for isa := RV32; isa <= RV128; isa++ {
			target := data.decomp[isa]
			if target == OpIllegal {
				continue
			}
			targets++
			if target.Compressed() {
				t.Errorf("%s: %s target %s is itself compressed", op, isa, target)
			}
			if target.Pseudo() {
				t.Errorf("%s: %s target %s is a pseudo spelling", op, isa, target)
			}
		}
		if targets == 0 {
			t.Errorf("%s: no expansion at any width", op)
		}
	}
}

// TestDecodeNeverReturnsCompressed sweeps the whole halfword space at
// every width. Decoding always finishes the pipeline, so a compressed
// op must never escape into the result.
func TestDecodeNeverReturnsCompressed(t *testing.T) {
	for isa := RV32; isa <= RV128; isa++ {
		for h := 0; h <= 0xffff; h++ {
			half := uint16(h)
			if half&3 == 3 {
				continue
			}
			in, n := Decode(isa, 0, enc16(half))
			if n != 2 {
				t.Fatalf("Decode(%s, %#04x): consumed %d bytes, want 2", isa, half, n)
			}
			if in.Op.Compressed() {
				t.Fatalf("Decode(%s, %#04x): compressed op %s in result", isa, half, in.Op)
			}
			if in.String() == "" {
				t.Fatalf("Decode(%s, %#04x): empty rendering", isa, half)
			}
		}
	}
}
