package riscv

func funct3(w uint32) uint32  { return (w >> 12) & 0x7 }
func funct7(w uint32) uint32  { return (w >> 25) & 0x7f }
func funct2(w uint32) uint32  { return (w >> 25) & 0x3 }
func cFunct3(w uint32) uint32 { return (w >> 13) & 0x7 }

// classify determines the operation encoded by the raw word. Encodings
// with no assigned operation classify as OpIllegal; classification
// never fails.
func classify(raw uint64, isa ISA) Op {
	w := uint32(raw)
	switch w & 0x3 {
	case 0:
		return classifyQ0(w, isa)
	case 1:
		return classifyQ1(w, isa)
	case 2:
		return classifyQ2(w, isa)
	}
	return classify32(w)
}

// classifyQ0 decodes compressed quadrant 0 (memory ops off rs1').
func classifyQ0(w uint32, isa ISA) Op {
	switch cFunct3(w) {
	case 0:
		return OpCAddi4spn
	case 1:
		if isa == RV128 {
			return OpCLq
		}
		return OpCFld
	case 2:
		return OpCLw
	case 3:
		if isa == RV32 {
			return OpCFlw
		}
		return OpCLd
	case 5:
		if isa == RV128 {
			return OpCSq
		}
		return OpCFsd
	case 6:
		return OpCSw
	case 7:
		if isa == RV32 {
			return OpCFsw
		}
		return OpCSd
	}
	return OpIllegal
}

// classifyQ1 decodes compressed quadrant 1 (immediate arithmetic,
// control flow).
func classifyQ1(w uint32, isa ISA) Op {
	switch cFunct3(w) {
	case 0:
		if (w>>2)&0x7ff == 0 {
			return OpCNop
		}
		return OpCAddi
	case 1:
		if isa == RV32 {
			return OpCJal
		}
		return OpCAddiw
	case 2:
		return OpCLi
	case 3:
		if crd(w) == regSP {
			return OpCAddi16sp
		}
		return OpCLui
	case 4:
		switch (w >> 10) & 0x3 {
		case 0:
			return OpCSrli
		case 1:
			return OpCSrai
		case 2:
			return OpCAndi
		case 3:
			// funct = insn[12|6:5]
			switch ((w>>12)&1)<<2 | (w>>5)&0x3 {
			case 0:
				return OpCSub
			case 1:
				return OpCXor
			case 2:
				return OpCOr
			case 3:
				return OpCAnd
			case 4:
				return OpCSubw
			case 5:
				return OpCAddw
			}
		}
		return OpIllegal
	case 5:
		return OpCJ
	case 6:
		return OpCBeqz
	case 7:
		return OpCBnez
	}
	return OpIllegal
}

// classifyQ2 decodes compressed quadrant 2 (stack-relative memory,
// register moves).
func classifyQ2(w uint32, isa ISA) Op {
	switch cFunct3(w) {
	case 0:
		return OpCSlli
	case 1:
		if isa == RV128 {
			return OpCLqsp
		}
		return OpCFldsp
	case 2:
		return OpCLwsp
	case 3:
		if isa == RV32 {
			return OpCFlwsp
		}
		return OpCLdsp
	case 4:
		if (w>>12)&1 == 0 {
			if crs2(w) == 0 {
				return OpCJr
			}
			return OpCMv
		}
		if crs2(w) == 0 {
			if crd(w) == 0 {
				return OpCEbreak
			}
			return OpCJalr
		}
		return OpCAdd
	case 5:
		if isa == RV128 {
			return OpCSqsp
		}
		return OpCFsdsp
	case 6:
		return OpCSwsp
	case 7:
		if isa == RV32 {
			return OpCFswsp
		}
		return OpCSdsp
	}
	return OpIllegal
}

// amoOps maps funct5 to the {.w, .d, .q} atomic variants selected by
// funct3. Unassigned rows stay OpIllegal.
var amoOps = [32][3]Op{
	0x00: {OpAmoaddW, OpAmoaddD, OpAmoaddQ},
	0x01: {OpAmoswapW, OpAmoswapD, OpAmoswapQ},
	0x02: {OpLrW, OpLrD, OpLrQ},
	0x03: {OpScW, OpScD, OpScQ},
	0x04: {OpAmoxorW, OpAmoxorD, OpAmoxorQ},
	0x08: {OpAmoorW, OpAmoorD, OpAmoorQ},
	0x0c: {OpAmoandW, OpAmoandD, OpAmoandQ},
	0x10: {OpAmominW, OpAmominD, OpAmominQ},
	0x14: {OpAmomaxW, OpAmomaxD, OpAmomaxQ},
	0x18: {OpAmominuW, OpAmominuD, OpAmominuQ},
	0x1c: {OpAmomaxuW, OpAmomaxuD, OpAmomaxuQ},
}

func classifyAMO(w uint32) Op {
	f3 := funct3(w)
	if f3 < 2 || f3 > 4 {
		return OpIllegal
	}
	f5 := (w >> 27) & 0x1f
	if f5 == 0x02 && rs2Field(w) != 0 {
		return OpIllegal // lr carries no rs2
	}
	return amoOps[f5][f3-2]
}

// classifySystem0 decodes the funct3=0 corner of SYSTEM, where the
// fields outside the opcode select whole operations.
func classifySystem0(w uint32) Op {
	if rdField(w) != 0 {
		return OpIllegal
	}
	rs1, rs2 := rs1Field(w), rs2Field(w)
	switch funct7(w) {
	case 0x00:
		if rs1 != 0 {
			return OpIllegal
		}
		switch rs2 {
		case 0:
			return OpEcall
		case 1:
			return OpEbreak
		case 2:
			return OpUret
		}
	case 0x08:
		switch rs2 {
		case 2:
			if rs1 == 0 {
				return OpSret
			}
		case 4:
			return OpSfenceVM
		case 5:
			if rs1 == 0 {
				return OpWfi
			}
		}
	case 0x09:
		return OpSfenceVMA
	case 0x10:
		if rs1 == 0 && rs2 == 2 {
			return OpHret
		}
	case 0x18:
		if rs1 == 0 && rs2 == 2 {
			return OpMret
		}
	case 0x3d:
		if rs1 == 0 && rs2 == 18 {
			return OpDret
		}
	}
	return OpIllegal
}

func classifyFP(w uint32) Op {
	f3 := funct3(w)
	switch funct7(w) {
	case 0x00:
		return OpFaddS
	case 0x01:
		return OpFaddD
	case 0x03:
		return OpFaddQ
	case 0x04:
		return OpFsubS
	case 0x05:
		return OpFsubD
	case 0x07:
		return OpFsubQ
	case 0x08:
		return OpFmulS
	case 0x09:
		return OpFmulD
	case 0x0b:
		return OpFmulQ
	case 0x0c:
		return OpFdivS
	case 0x0d:
		return OpFdivD
	case 0x0f:
		return OpFdivQ
	case 0x10:
		return [8]Op{OpFsgnjS, OpFsgnjnS, OpFsgnjxS}[f3]
	case 0x11:
		return [8]Op{OpFsgnjD, OpFsgnjnD, OpFsgnjxD}[f3]
	case 0x13:
		return [8]Op{OpFsgnjQ, OpFsgnjnQ, OpFsgnjxQ}[f3]
	case 0x14:
		return [8]Op{OpFminS, OpFmaxS}[f3]
	case 0x15:
		return [8]Op{OpFminD, OpFmaxD}[f3]
	case 0x17:
		return [8]Op{OpFminQ, OpFmaxQ}[f3]
	case 0x20:
		switch rs2Field(w) {
		case 1:
			return OpFcvtSD
		case 3:
			return OpFcvtSQ
		}
	case 0x21:
		switch rs2Field(w) {
		case 0:
			return OpFcvtDS
		case 3:
			return OpFcvtDQ
		}
	case 0x23:
		switch rs2Field(w) {
		case 0:
			return OpFcvtQS
		case 1:
			return OpFcvtQD
		}
	case 0x2c:
		if rs2Field(w) == 0 {
			return OpFsqrtS
		}
	case 0x2d:
		if rs2Field(w) == 0 {
			return OpFsqrtD
		}
	case 0x2f:
		if rs2Field(w) == 0 {
			return OpFsqrtQ
		}
	case 0x50:
		return [8]Op{OpFleS, OpFltS, OpFeqS}[f3]
	case 0x51:
		return [8]Op{OpFleD, OpFltD, OpFeqD}[f3]
	case 0x53:
		return [8]Op{OpFleQ, OpFltQ, OpFeqQ}[f3]
	case 0x60:
		switch rs2Field(w) {
		case 0:
			return OpFcvtWS
		case 1:
			return OpFcvtWuS
		case 2:
			return OpFcvtLS
		case 3:
			return OpFcvtLuS
		}
	case 0x61:
		switch rs2Field(w) {
		case 0:
			return OpFcvtWD
		case 1:
			return OpFcvtWuD
		case 2:
			return OpFcvtLD
		case 3:
			return OpFcvtLuD
		}
	case 0x63:
		switch rs2Field(w) {
		case 0:
			return OpFcvtWQ
		case 1:
			return OpFcvtWuQ
		case 2:
			return OpFcvtLQ
		case 3:
			return OpFcvtLuQ
		}
	case 0x68:
		switch rs2Field(w) {
		case 0:
			return OpFcvtSW
		case 1:
			return OpFcvtSWu
		case 2:
			return OpFcvtSL
		case 3:
			return OpFcvtSLu
		}
	case 0x69:
		switch rs2Field(w) {
		case 0:
			return OpFcvtDW
		case 1:
			return OpFcvtDWu
		case 2:
			return OpFcvtDL
		case 3:
			return OpFcvtDLu
		}
	case 0x6b:
		switch rs2Field(w) {
		case 0:
			return OpFcvtQW
		case 1:
			return OpFcvtQWu
		case 2:
			return OpFcvtQL
		case 3:
			return OpFcvtQLu
		}
	case 0x70:
		if rs2Field(w) == 0 {
			return [8]Op{OpFmvXS, OpFclassS}[f3]
		}
	case 0x71:
		if rs2Field(w) == 0 {
			return [8]Op{OpFmvXD, OpFclassD}[f3]
		}
	case 0x73:
		if rs2Field(w) == 0 {
			return [8]Op{OpFmvXQ, OpFclassQ}[f3]
		}
	case 0x78:
		if rs2Field(w) == 0 && f3 == 0 {
			return OpFmvSX
		}
	case 0x79:
		if rs2Field(w) == 0 && f3 == 0 {
			return OpFmvDX
		}
	case 0x7b:
		if rs2Field(w) == 0 && f3 == 0 {
			return OpFmvQX
		}
	}
	return OpIllegal
}

// classify32 decodes quadrant 3. Encodings wider than 32 bits land
// here too; none are assigned, so they come back OpIllegal.
func classify32(w uint32) Op {
	f3 := funct3(w)
	switch (w >> 2) & 0x1f {
	case 0x00: // LOAD
		return [8]Op{OpLb, OpLh, OpLw, OpLd, OpLbu, OpLhu, OpLwu, OpLdu}[f3]
	case 0x01: // LOAD-FP
		return [8]Op{2: OpFlw, 3: OpFld, 4: OpFlq}[f3]
	case 0x03: // MISC-MEM
		return [8]Op{OpFence, OpFenceI, OpLq}[f3]
	case 0x04: // OP-IMM
		switch f3 {
		case 0:
			return OpAddi
		case 1:
			if (w>>27)&0x1f == 0 {
				return OpSlli
			}
		case 2:
			return OpSlti
		case 3:
			return OpSltiu
		case 4:
			return OpXori
		case 5:
			switch (w >> 27) & 0x1f {
			case 0x00:
				return OpSrli
			case 0x08:
				return OpSrai
			}
		case 6:
			return OpOri
		case 7:
			return OpAndi
		}
		return OpIllegal
	case 0x05:
		return OpAuipc
	case 0x06: // OP-IMM-32
		switch f3 {
		case 0:
			return OpAddiw
		case 1:
			if funct7(w) == 0 {
				return OpSlliw
			}
		case 5:
			switch funct7(w) {
			case 0x00:
				return OpSrliw
			case 0x20:
				return OpSraiw
			}
		}
		return OpIllegal
	case 0x08: // STORE
		return [8]Op{OpSb, OpSh, OpSw, OpSd, OpSq}[f3]
	case 0x09: // STORE-FP
		return [8]Op{2: OpFsw, 3: OpFsd, 4: OpFsq}[f3]
	case 0x0b: // AMO
		return classifyAMO(w)
	case 0x0c: // OP
		switch funct7(w) {
		case 0x00:
			return [8]Op{OpAdd, OpSll, OpSlt, OpSltu, OpXor, OpSrl, OpOr, OpAnd}[f3]
		case 0x01:
			return [8]Op{OpMul, OpMulh, OpMulhsu, OpMulhu, OpDiv, OpDivu, OpRem, OpRemu}[f3]
		case 0x20:
			return [8]Op{OpSub, 5: OpSra}[f3]
		}
		return OpIllegal
	case 0x0d:
		return OpLui
	case 0x0e: // OP-32
		switch funct7(w) {
		case 0x00:
			return [8]Op{OpAddw, OpSllw, 5: OpSrlw}[f3]
		case 0x01:
			return [8]Op{OpMulw, 4: OpDivw, 5: OpDivuw, 6: OpRemw, 7: OpRemuw}[f3]
		case 0x20:
			return [8]Op{OpSubw, 5: OpSraw}[f3]
		}
		return OpIllegal
	case 0x10: // MADD
		return [4]Op{OpFmaddS, OpFmaddD, 3: OpFmaddQ}[funct2(w)]
	case 0x11: // MSUB
		return [4]Op{OpFmsubS, OpFmsubD, 3: OpFmsubQ}[funct2(w)]
	case 0x12: // NMSUB
		return [4]Op{OpFnmsubS, OpFnmsubD, 3: OpFnmsubQ}[funct2(w)]
	case 0x13: // NMADD
		return [4]Op{OpFnmaddS, OpFnmaddD, 3: OpFnmaddQ}[funct2(w)]
	case 0x14: // OP-FP
		return classifyFP(w)
	case 0x16: // OP-IMM-64
		switch f3 {
		case 0:
			return OpAddid
		case 1:
			if (w>>26)&0x3f == 0 {
				return OpSllid
			}
		case 5:
			switch (w >> 26) & 0x3f {
			case 0x00:
				return OpSrlid
			case 0x10:
				return OpSraid
			}
		}
		return OpIllegal
	case 0x18: // BRANCH
		return [8]Op{OpBeq, OpBne, 4: OpBlt, 5: OpBge, 6: OpBltu, 7: OpBgeu}[f3]
	case 0x19:
		if f3 == 0 {
			return OpJalr
		}
		return OpIllegal
	case 0x1b:
		return OpJal
	case 0x1c: // SYSTEM
		switch f3 {
		case 0:
			return classifySystem0(w)
		case 1:
			return OpCsrrw
		case 2:
			return OpCsrrs
		case 3:
			return OpCsrrc
		case 5:
			return OpCsrrwi
		case 6:
			return OpCsrrsi
		case 7:
			return OpCsrrci
		}
		return OpIllegal
	case 0x1e: // OP-64
		switch funct7(w) {
		case 0x00:
			return [8]Op{OpAddd, OpSlld, 5: OpSrld}[f3]
		case 0x01:
			return [8]Op{OpMuld, 4: OpDivd, 5: OpDivud, 6: OpRemd, 7: OpRemud}[f3]
		case 0x20:
			return [8]Op{OpSubd, 5: OpSrad}[f3]
		}
		return OpIllegal
	}
	return OpIllegal
}
