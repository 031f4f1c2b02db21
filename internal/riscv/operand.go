package riscv

// 32-bit instruction field extraction.

func rdField(w uint32) uint8  { return uint8((w >> 7) & 0x1f) }
func rs1Field(w uint32) uint8 { return uint8((w >> 15) & 0x1f) }
func rs2Field(w uint32) uint8 { return uint8((w >> 20) & 0x1f) }
func rs3Field(w uint32) uint8 { return uint8((w >> 27) & 0x1f) }
func rmField(w uint32) uint8  { return uint8((w >> 12) & 0x7) }

// fence fields: pred = insn[27:24], succ = insn[23:20]
func predField(w uint32) uint8 { return uint8((w >> 24) & 0xf) }
func succField(w uint32) uint8 { return uint8((w >> 20) & 0xf) }

// atomic ordering bits: aq = insn[26], rl = insn[25]
func aqBit(w uint32) bool { return (w>>26)&1 != 0 }
func rlBit(w uint32) bool { return (w>>25)&1 != 0 }

// imm[11:0] = insn[31:20]
func immI(w uint32) int32 { return signExtend32((w>>20)&0xfff, 12) }

// imm[11:5|4:0] = insn[31:25|11:7]
func immS(w uint32) int32 {
	return signExtend32(((w>>25)&0x7f)<<5|(w>>7)&0x1f, 12)
}

// imm[12|10:5|4:1|11] = insn[31|30:25|11:8|7]
func immB(w uint32) int32 {
	return signExtend32((w>>31)<<12|((w>>7)&1)<<11|((w>>25)&0x3f)<<5|((w>>8)&0xf)<<1, 13)
}

// imm[31:12] = insn[31:12]
func immU(w uint32) int32 { return int32(w & 0xfffff000) }

// imm[20|10:1|11|19:12] = insn[31|30:21|20|19:12]
func immJ(w uint32) int32 {
	return signExtend32((w>>31)<<20|((w>>12)&0xff)<<12|((w>>20)&1)<<11|((w>>21)&0x3ff)<<1, 21)
}

// csr[11:0] = insn[31:20], zero-extended
func csrField(w uint32) int32 { return int32((w >> 20) & 0xfff) }

func shamt5(w uint32) int32 { return int32((w >> 20) & 0x1f) }
func shamt6(w uint32) int32 { return int32((w >> 20) & 0x3f) }
func shamt7(w uint32) int32 { return int32((w >> 20) & 0x7f) }

// Compressed instruction field extraction.

// rd'/rs2' = insn[4:2] + 8, rs1'/rd' = insn[9:7] + 8
func crdq(w uint32) uint8  { return uint8((w>>2)&0x7) + 8 }
func crs1q(w uint32) uint8 { return uint8((w>>7)&0x7) + 8 }
func crs2q(w uint32) uint8 { return uint8((w>>2)&0x7) + 8 }

// full-width compressed register fields
func crd(w uint32) uint8  { return uint8((w >> 7) & 0x1f) }
func crs2(w uint32) uint8 { return uint8((w >> 2) & 0x1f) }

// imm[5|4:0] = insn[12|6:2]
func cimmI(w uint32) int32 {
	return signExtend32(((w>>12)&1)<<5|(w>>2)&0x1f, 6)
}

// imm[17|16:12] = insn[12|6:2]
func cimmUI(w uint32) int32 {
	return signExtend32((((w>>12)&1)<<5|(w>>2)&0x1f)<<12, 18)
}

// shamt[4:0] = insn[6:2]
func cimmSh5(w uint32) int32 { return int32((w >> 2) & 0x1f) }

// shamt[5|4:0] = insn[12|6:2]
func cimmSh6(w uint32) int32 {
	return int32(((w>>12)&1)<<5 | (w>>2)&0x1f)
}

// uimm[5|4:2|7:6] = insn[12|6:4|3:2]
func cimmLwsp(w uint32) int32 {
	return int32(((w>>12)&1)<<5 | ((w>>4)&0x7)<<2 | ((w>>2)&0x3)<<6)
}

// uimm[5|4:3|8:6] = insn[12|6:5|4:2]
func cimmLdsp(w uint32) int32 {
	return int32(((w>>12)&1)<<5 | ((w>>5)&0x3)<<3 | ((w>>2)&0x7)<<6)
}

// uimm[5|4|9:6] = insn[12|6|5:2]
func cimmLqsp(w uint32) int32 {
	return int32(((w>>12)&1)<<5 | ((w>>6)&0x1)<<4 | ((w>>2)&0xf)<<6)
}

// nzimm[9|4|6|8:7|5] = insn[12|6|5|4:3|2]
func cimm16sp(w uint32) int32 {
	return signExtend32(((w>>12)&1)<<9|((w>>6)&1)<<4|((w>>5)&1)<<6|
		((w>>3)&0x3)<<7|((w>>2)&1)<<5, 10)
}

// imm[11|4|9:8|10|6|7|3:1|5] = insn[12|11|10:9|8|7|6|5:3|2]
func cimmJ(w uint32) int32 {
	return signExtend32(((w>>12)&1)<<11|((w>>11)&1)<<4|((w>>9)&0x3)<<8|
		((w>>8)&1)<<10|((w>>7)&1)<<6|((w>>6)&1)<<7|
		((w>>3)&0x7)<<1|((w>>2)&1)<<5, 12)
}

// imm[8|4:3|7:6|2:1|5] = insn[12|11:10|6:5|4:3|2]
func cimmB(w uint32) int32 {
	return signExtend32(((w>>12)&1)<<8|((w>>10)&0x3)<<3|((w>>5)&0x3)<<6|
		((w>>3)&0x3)<<1|((w>>2)&1)<<5, 9)
}

// uimm[5:2|7:6] = insn[12:9|8:7]
func cimmSwsp(w uint32) int32 {
	return int32(((w>>9)&0xf)<<2 | ((w>>7)&0x3)<<6)
}

// uimm[5:3|8:6] = insn[12:10|9:7]
func cimmSdsp(w uint32) int32 {
	return int32(((w>>10)&0x7)<<3 | ((w>>7)&0x7)<<6)
}

// uimm[5:4|9:6] = insn[12:11|10:7]
func cimmSqsp(w uint32) int32 {
	return int32(((w>>11)&0x3)<<4 | ((w>>7)&0xf)<<6)
}

// nzuimm[5:4|9:6|2|3] = insn[12:11|10:7|6|5]
func cimm4spn(w uint32) int32 {
	return int32(((w>>11)&0x3)<<4 | ((w>>7)&0xf)<<6 | ((w>>6)&1)<<2 | ((w>>5)&1)<<3)
}

// uimm[5:3|2|6] = insn[12:10|6|5]
func cimmW(w uint32) int32 {
	return int32(((w>>10)&0x7)<<3 | ((w>>6)&1)<<2 | ((w>>5)&1)<<6)
}

// uimm[5:3|7:6] = insn[12:10|6:5]
func cimmD(w uint32) int32 {
	return int32(((w>>10)&0x7)<<3 | ((w>>5)&0x3)<<6)
}

// uimm[5:4|8|7:6] = insn[12:11|10|6:5]
func cimmQ(w uint32) int32 {
	return int32(((w>>11)&0x3)<<4 | ((w>>10)&1)<<8 | ((w>>5)&0x3)<<6)
}

// Per-codec operand extraction. Each entry fills only the fields its
// encoding carries; extract clears every operand slot first so the
// unused ones are zero.
var codecExtract = [codecCount]func(in *Inst, w uint32){
	CodecNone: func(in *Inst, w uint32) {},
	CodecU: func(in *Inst, w uint32) {
		in.Rd, in.Imm = rdField(w), immU(w)
	},
	CodecUJ: func(in *Inst, w uint32) {
		in.Rd, in.Imm = rdField(w), immJ(w)
	},
	CodecI: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Imm = rdField(w), rs1Field(w), immI(w)
	},
	CodecISh5: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Imm = rdField(w), rs1Field(w), shamt5(w)
	},
	CodecISh6: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Imm = rdField(w), rs1Field(w), shamt6(w)
	},
	CodecISh7: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Imm = rdField(w), rs1Field(w), shamt7(w)
	},
	CodecICsr: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Imm = rdField(w), rs1Field(w), csrField(w)
	},
	CodecS: func(in *Inst, w uint32) {
		in.Rs1, in.Rs2, in.Imm = rs1Field(w), rs2Field(w), immS(w)
	},
	CodecSB: func(in *Inst, w uint32) {
		in.Rs1, in.Rs2, in.Imm = rs1Field(w), rs2Field(w), immB(w)
	},
	CodecR: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Rs2 = rdField(w), rs1Field(w), rs2Field(w)
	},
	CodecRM: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Rs2, in.RM = rdField(w), rs1Field(w), rs2Field(w), rmField(w)
	},
	CodecR4M: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Rs2, in.Rs3 = rdField(w), rs1Field(w), rs2Field(w), rs3Field(w)
		in.RM = rmField(w)
	},
	CodecRA: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Rs2 = rdField(w), rs1Field(w), rs2Field(w)
		in.Aq, in.Rl = aqBit(w), rlBit(w)
	},
	CodecRL: func(in *Inst, w uint32) {
		in.Rd, in.Rs1 = rdField(w), rs1Field(w)
		in.Aq, in.Rl = aqBit(w), rlBit(w)
	},
	CodecRF: func(in *Inst, w uint32) {
		in.Pred, in.Succ = predField(w), succField(w)
	},
	CodecCB: func(in *Inst, w uint32) {
		in.Rs1, in.Imm = crs1q(w), cimmB(w)
	},
	CodecCBImm: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Imm = crs1q(w), crs1q(w), cimmI(w)
	},
	CodecCBSh5: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Imm = crs1q(w), crs1q(w), cimmSh5(w)
	},
	CodecCBSh6: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Imm = crs1q(w), crs1q(w), cimmSh6(w)
	},
	CodecCI: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Imm = crd(w), crd(w), cimmI(w)
	},
	CodecCISh5: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Imm = crd(w), crd(w), cimmSh5(w)
	},
	CodecCISh6: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Imm = crd(w), crd(w), cimmSh6(w)
	},
	CodecCI16sp: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Imm = regSP, regSP, cimm16sp(w)
	},
	CodecCILwsp: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Imm = crd(w), regSP, cimmLwsp(w)
	},
	CodecCILdsp: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Imm = crd(w), regSP, cimmLdsp(w)
	},
	CodecCILqsp: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Imm = crd(w), regSP, cimmLqsp(w)
	},
	CodecCILi: func(in *Inst, w uint32) {
		in.Rd, in.Imm = crd(w), cimmI(w)
	},
	CodecCILui: func(in *Inst, w uint32) {
		in.Rd, in.Imm = crd(w), cimmUI(w)
	},
	CodecCINone: func(in *Inst, w uint32) {},
	CodecCIW4spn: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Imm = crdq(w), regSP, cimm4spn(w)
	},
	CodecCJ: func(in *Inst, w uint32) {
		in.Imm = cimmJ(w)
	},
	CodecCJJal: func(in *Inst, w uint32) {
		in.Rd, in.Imm = regRA, cimmJ(w)
	},
	CodecCLLw: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Imm = crdq(w), crs1q(w), cimmW(w)
	},
	CodecCLLd: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Imm = crdq(w), crs1q(w), cimmD(w)
	},
	CodecCLLq: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Imm = crdq(w), crs1q(w), cimmQ(w)
	},
	CodecCR: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Rs2 = crd(w), crd(w), crs2(w)
	},
	CodecCRMv: func(in *Inst, w uint32) {
		// mv decompresses to addi rd, rs2, 0, so the source lands in rs1
		in.Rd, in.Rs1 = crd(w), crs2(w)
	},
	CodecCRJalr: func(in *Inst, w uint32) {
		in.Rd, in.Rs1 = regRA, crd(w)
	},
	CodecCRJr: func(in *Inst, w uint32) {
		in.Rs1 = crd(w)
	},
	CodecCS: func(in *Inst, w uint32) {
		in.Rd, in.Rs1, in.Rs2 = crs1q(w), crs1q(w), crs2q(w)
	},
	CodecCSSw: func(in *Inst, w uint32) {
		in.Rs1, in.Rs2, in.Imm = crs1q(w), crs2q(w), cimmW(w)
	},
	CodecCSSd: func(in *Inst, w uint32) {
		in.Rs1, in.Rs2, in.Imm = crs1q(w), crs2q(w), cimmD(w)
	},
	CodecCSSq: func(in *Inst, w uint32) {
		in.Rs1, in.Rs2, in.Imm = crs1q(w), crs2q(w), cimmQ(w)
	},
	CodecCSSSwsp: func(in *Inst, w uint32) {
		in.Rs1, in.Rs2, in.Imm = regSP, crs2(w), cimmSwsp(w)
	},
	CodecCSSSdsp: func(in *Inst, w uint32) {
		in.Rs1, in.Rs2, in.Imm = regSP, crs2(w), cimmSdsp(w)
	},
	CodecCSSSqsp: func(in *Inst, w uint32) {
		in.Rs1, in.Rs2, in.Imm = regSP, crs2(w), cimmSqsp(w)
	},
}

// extract fills the operand fields of in from its raw word according
// to the codec of its op. Slots the codec does not carry are zeroed.
func extract(in *Inst) {
	in.Rd, in.Rs1, in.Rs2, in.Rs3 = 0, 0, 0, 0
	in.Imm = 0
	in.RM = 0
	in.Pred, in.Succ = 0, 0
	in.Aq, in.Rl = false, false

	in.Codec = opData[in.Op].codec
	if fn := codecExtract[in.Codec]; fn != nil {
		fn(in, uint32(in.Raw))
	}
}
