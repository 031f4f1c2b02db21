package riscv

// Op identifies one operation. The zero value is OpIllegal, so a
// freshly zeroed record is already a renderable illegal instruction.
type Op uint16

const (
	OpIllegal Op = iota

	// RV32I
	OpLui
	OpAuipc
	OpJal
	OpJalr
	OpBeq
	OpBne
	OpBlt
	OpBge
	OpBltu
	OpBgeu
	OpLb
	OpLh
	OpLw
	OpLbu
	OpLhu
	OpSb
	OpSh
	OpSw
	OpAddi
	OpSlti
	OpSltiu
	OpXori
	OpOri
	OpAndi
	OpSlli
	OpSrli
	OpSrai
	OpAdd
	OpSub
	OpSll
	OpSlt
	OpSltu
	OpXor
	OpSrl
	OpSra
	OpOr
	OpAnd
	OpFence
	OpFenceI

	// RV64I
	OpLwu
	OpLd
	OpSd
	OpAddiw
	OpSlliw
	OpSrliw
	OpSraiw
	OpAddw
	OpSubw
	OpSllw
	OpSrlw
	OpSraw

	// RV128I (experimental; the "d" suffix means double-word here,
	// distinct from the float D extension)
	OpLdu
	OpLq
	OpSq
	OpAddid
	OpSllid
	OpSrlid
	OpSraid
	OpAddd
	OpSubd
	OpSlld
	OpSrld
	OpSrad

	// RV32M/RV64M/RV128M
	OpMul
	OpMulh
	OpMulhsu
	OpMulhu
	OpDiv
	OpDivu
	OpRem
	OpRemu
	OpMulw
	OpDivw
	OpDivuw
	OpRemw
	OpRemuw
	OpMuld
	OpDivd
	OpDivud
	OpRemd
	OpRemud

	// RV32A/RV64A/RV128A
	OpLrW
	OpScW
	OpAmoswapW
	OpAmoaddW
	OpAmoxorW
	OpAmoorW
	OpAmoandW
	OpAmominW
	OpAmomaxW
	OpAmominuW
	OpAmomaxuW
	OpLrD
	OpScD
	OpAmoswapD
	OpAmoaddD
	OpAmoxorD
	OpAmoorD
	OpAmoandD
	OpAmominD
	OpAmomaxD
	OpAmominuD
	OpAmomaxuD
	OpLrQ
	OpScQ
	OpAmoswapQ
	OpAmoaddQ
	OpAmoxorQ
	OpAmoorQ
	OpAmoandQ
	OpAmominQ
	OpAmomaxQ
	OpAmominuQ
	OpAmomaxuQ

	// Privileged and CSR
	OpEcall
	OpEbreak
	OpUret
	OpSret
	OpHret
	OpMret
	OpDret
	OpSfenceVM
	OpSfenceVMA
	OpWfi
	OpCsrrw
	OpCsrrs
	OpCsrrc
	OpCsrrwi
	OpCsrrsi
	OpCsrrci

	// RV32F/RV64F
	OpFlw
	OpFsw
	OpFmaddS
	OpFmsubS
	OpFnmsubS
	OpFnmaddS
	OpFaddS
	OpFsubS
	OpFmulS
	OpFdivS
	OpFsgnjS
	OpFsgnjnS
	OpFsgnjxS
	OpFminS
	OpFmaxS
	OpFsqrtS
	OpFleS
	OpFltS
	OpFeqS
	OpFcvtWS
	OpFcvtWuS
	OpFcvtSW
	OpFcvtSWu
	OpFmvXS
	OpFclassS
	OpFmvSX
	OpFcvtLS
	OpFcvtLuS
	OpFcvtSL
	OpFcvtSLu

	// RV32D/RV64D
	OpFld
	OpFsd
	OpFmaddD
	OpFmsubD
	OpFnmsubD
	OpFnmaddD
	OpFaddD
	OpFsubD
	OpFmulD
	OpFdivD
	OpFsgnjD
	OpFsgnjnD
	OpFsgnjxD
	OpFminD
	OpFmaxD
	OpFcvtSD
	OpFcvtDS
	OpFsqrtD
	OpFleD
	OpFltD
	OpFeqD
	OpFcvtWD
	OpFcvtWuD
	OpFcvtDW
	OpFcvtDWu
	OpFclassD
	OpFcvtLD
	OpFcvtLuD
	OpFmvXD
	OpFcvtDL
	OpFcvtDLu
	OpFmvDX

	// RV32Q/RV64Q
	OpFlq
	OpFsq
	OpFmaddQ
	OpFmsubQ
	OpFnmsubQ
	OpFnmaddQ
	OpFaddQ
	OpFsubQ
	OpFmulQ
	OpFdivQ
	OpFsgnjQ
	OpFsgnjnQ
	OpFsgnjxQ
	OpFminQ
	OpFmaxQ
	OpFcvtSQ
	OpFcvtQS
	OpFcvtDQ
	OpFcvtQD
	OpFsqrtQ
	OpFleQ
	OpFltQ
	OpFeqQ
	OpFcvtWQ
	OpFcvtWuQ
	OpFcvtQW
	OpFcvtQWu
	OpFclassQ
	OpFcvtLQ
	OpFcvtLuQ
	OpFcvtQL
	OpFcvtQLu
	OpFmvXQ
	OpFmvQX

	// RVC
	OpCAddi4spn
	OpCFld
	OpCLw
	OpCFlw
	OpCLd
	OpCFsd
	OpCSw
	OpCFsw
	OpCSd
	OpCNop
	OpCAddi
	OpCJal
	OpCAddiw
	OpCLi
	OpCAddi16sp
	OpCLui
	OpCSrli
	OpCSrai
	OpCAndi
	OpCSub
	OpCXor
	OpCOr
	OpCAnd
	OpCSubw
	OpCAddw
	OpCJ
	OpCBeqz
	OpCBnez
	OpCSlli
	OpCFldsp
	OpCLwsp
	OpCFlwsp
	OpCLdsp
	OpCJr
	OpCMv
	OpCEbreak
	OpCJalr
	OpCAdd
	OpCFsdsp
	OpCSwsp
	OpCFswsp
	OpCSdsp
	OpCLq
	OpCSq
	OpCLqsp
	OpCSqsp

	// Pseudo-instructions. These never come out of classification;
	// liftPseudo promotes a base op when its operands match.
	OpNop
	OpMv
	OpNot
	OpNeg
	OpNegw
	OpSextW
	OpSeqz
	OpSnez
	OpSltz
	OpSgtz
	OpFmvS
	OpFabsS
	OpFnegS
	OpFmvD
	OpFabsD
	OpFnegD
	OpFmvQ
	OpFabsQ
	OpFnegQ
	OpBeqz
	OpBnez
	OpBlez
	OpBgez
	OpBltz
	OpBgtz
	OpBle
	OpBleu
	OpBgt
	OpBgtu
	OpJ
	OpRet
	OpJr
	OpRdcycle
	OpRdtime
	OpRdinstret
	OpRdcycleh
	OpRdtimeh
	OpRdinstreth
	OpFrcsr
	OpFrrm
	OpFrflags
	OpFscsr
	OpFsrm
	OpFsflags
	OpFsrmi
	OpFsflagsi

	opCount
)

// String returns the mnemonic spelling of the op.
func (op Op) String() string {
	if op >= opCount {
		return "illegal"
	}
	return opData[op].name
}

// Compressed reports whether op is an RVC encoding that decompression
// rewrites to a base op.
func (op Op) Compressed() bool {
	return op >= OpCAddi4spn && op <= OpCSqsp
}

// Pseudo reports whether op is a pseudo-instruction spelling produced
// by lifting rather than by classification.
func (op Op) Pseudo() bool {
	return op >= OpNop && op < opCount
}
