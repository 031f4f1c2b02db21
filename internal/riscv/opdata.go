package riscv

// constraint is one operand predicate checked during pseudo lifting.
type constraint uint8

const (
	rdEqX0 constraint = iota
	rdEqRA
	rs1EqX0
	rs1EqRA
	rs2EqX0
	rs2EqRs1
	immEqZero
	immEqN1
	immEqP1
	immEqRA
	csrEqFflags
	csrEqFrm
	csrEqFcsr
	csrEqCycle
	csrEqTime
	csrEqInstret
	csrEqCycleh
	csrEqTimeh
	csrEqInstreth
)

// match reports whether every constraint holds on the decoded operands.
func (in *Inst) match(cs []constraint) bool {
	for _, c := range cs {
		var ok bool
		switch c {
		case rdEqX0:
			ok = in.Rd == regZero
		case rdEqRA:
			ok = in.Rd == regRA
		case rs1EqX0:
			ok = in.Rs1 == regZero
		case rs1EqRA:
			ok = in.Rs1 == regRA
		case rs2EqX0:
			ok = in.Rs2 == regZero
		case rs2EqRs1:
			ok = in.Rs2 == in.Rs1
		case immEqZero:
			ok = in.Imm == 0
		case immEqN1:
			ok = in.Imm == -1
		case immEqP1:
			ok = in.Imm == 1
		case immEqRA:
			ok = in.Imm == regRA
		case csrEqFflags:
			ok = in.Imm == 0x001
		case csrEqFrm:
			ok = in.Imm == 0x002
		case csrEqFcsr:
			ok = in.Imm == 0x003
		case csrEqCycle:
			ok = in.Imm == 0xc00
		case csrEqTime:
			ok = in.Imm == 0xc01
		case csrEqInstret:
			ok = in.Imm == 0xc02
		case csrEqCycleh:
			ok = in.Imm == 0xc80
		case csrEqTimeh:
			ok = in.Imm == 0xc81
		case csrEqInstreth:
			ok = in.Imm == 0xc82
		}
		if !ok {
			return false
		}
	}
	return true
}

// pseudoCandidate pairs a pseudo spelling with the constraints that
// must all hold for the lift to apply.
type pseudoCandidate struct {
	op   Op
	when []constraint
}

// Lift candidate lists, checked in order; the first full match wins.
var (
	liftJal = []pseudoCandidate{
		{OpJ, []constraint{rdEqX0}},
	}
	liftJalr = []pseudoCandidate{
		{OpRet, []constraint{rdEqX0, immEqRA}},
		{OpJr, []constraint{rdEqX0, immEqZero}},
	}
	liftBeq = []pseudoCandidate{
		{OpBeqz, []constraint{rs2EqX0}},
	}
	liftBne = []pseudoCandidate{
		{OpBnez, []constraint{rs2EqX0}},
	}
	liftBlt = []pseudoCandidate{
		{OpBltz, []constraint{rs2EqX0}},
		{OpBgtz, []constraint{rs1EqX0}},
	}
	liftBge = []pseudoCandidate{
		{OpBlez, []constraint{rs1EqX0}},
		{OpBgez, []constraint{rs2EqX0}},
	}
	liftAddi = []pseudoCandidate{
		{OpNop, []constraint{rdEqX0, rs1EqX0, immEqZero}},
		{OpMv, []constraint{immEqZero}},
	}
	liftSltiu = []pseudoCandidate{
		{OpSeqz, []constraint{immEqP1}},
	}
	liftXori = []pseudoCandidate{
		{OpNot, []constraint{immEqN1}},
	}
	liftSub = []pseudoCandidate{
		{OpNeg, []constraint{rs1EqX0}},
	}
	liftSubw = []pseudoCandidate{
		{OpNegw, []constraint{rs1EqX0}},
	}
	liftAddiw = []pseudoCandidate{
		{OpSextW, []constraint{immEqZero}},
	}
	liftSlt = []pseudoCandidate{
		{OpSltz, []constraint{rs2EqX0}},
		{OpSgtz, []constraint{rs1EqX0}},
	}
	liftSltu = []pseudoCandidate{
		{OpSnez, []constraint{rs1EqX0}},
	}
	liftCsrrw = []pseudoCandidate{
		{OpFscsr, []constraint{csrEqFcsr}},
		{OpFsrm, []constraint{csrEqFrm}},
		{OpFsflags, []constraint{csrEqFflags}},
	}
	liftCsrrs = []pseudoCandidate{
		{OpRdcycle, []constraint{rs1EqX0, csrEqCycle}},
		{OpRdtime, []constraint{rs1EqX0, csrEqTime}},
		{OpRdinstret, []constraint{rs1EqX0, csrEqInstret}},
		{OpRdcycleh, []constraint{rs1EqX0, csrEqCycleh}},
		{OpRdtimeh, []constraint{rs1EqX0, csrEqTimeh}},
		{OpRdinstreth, []constraint{rs1EqX0, csrEqInstreth}},
		{OpFrcsr, []constraint{rs1EqX0, csrEqFcsr}},
		{OpFrrm, []constraint{rs1EqX0, csrEqFrm}},
		{OpFrflags, []constraint{rs1EqX0, csrEqFflags}},
	}
	liftCsrrwi = []pseudoCandidate{
		{OpFsrmi, []constraint{csrEqFrm}},
		{OpFsflagsi, []constraint{csrEqFflags}},
	}
	liftFsgnjS = []pseudoCandidate{
		{OpFmvS, []constraint{rs2EqRs1}},
	}
	liftFsgnjnS = []pseudoCandidate{
		{OpFnegS, []constraint{rs2EqRs1}},
	}
	liftFsgnjxS = []pseudoCandidate{
		{OpFabsS, []constraint{rs2EqRs1}},
	}
	liftFsgnjD = []pseudoCandidate{
		{OpFmvD, []constraint{rs2EqRs1}},
	}
	liftFsgnjnD = []pseudoCandidate{
		{OpFnegD, []constraint{rs2EqRs1}},
	}
	liftFsgnjxD = []pseudoCandidate{
		{OpFabsD, []constraint{rs2EqRs1}},
	}
	liftFsgnjQ = []pseudoCandidate{
		{OpFmvQ, []constraint{rs2EqRs1}},
	}
	liftFsgnjnQ = []pseudoCandidate{
		{OpFnegQ, []constraint{rs2EqRs1}},
	}
	liftFsgnjxQ = []pseudoCandidate{
		{OpFabsQ, []constraint{rs2EqRs1}},
	}
)

// opInfo is one row of the operation table: mnemonic, operand codec,
// render template, lift candidates and decompression targets.
type opInfo struct {
	name   string
	codec  Codec
	format string
	pseudo []pseudoCandidate

	// decomp holds the decompression target per ISA width, indexed
	// by ISA; OpIllegal means the encoding does not exist there.
	decomp [3]Op
	// decompNZ marks encodings whose immediate must be nonzero.
	decompNZ bool
}

var opData = [opCount]opInfo{
	OpIllegal: {name: "illegal", codec: CodecIllegal, format: fmtNone},

	// RV32I
	OpLui:    {name: "lui", codec: CodecU, format: fmtRdImm},
	OpAuipc:  {name: "auipc", codec: CodecU, format: fmtRdOffset},
	OpJal:    {name: "jal", codec: CodecUJ, format: fmtRdOffset, pseudo: liftJal},
	OpJalr:   {name: "jalr", codec: CodecI, format: fmtRdRs1Imm, pseudo: liftJalr},
	OpBeq:    {name: "beq", codec: CodecSB, format: fmtRs1Rs2Offset, pseudo: liftBeq},
	OpBne:    {name: "bne", codec: CodecSB, format: fmtRs1Rs2Offset, pseudo: liftBne},
	OpBlt:    {name: "blt", codec: CodecSB, format: fmtRs1Rs2Offset, pseudo: liftBlt},
	OpBge:    {name: "bge", codec: CodecSB, format: fmtRs1Rs2Offset, pseudo: liftBge},
	OpBltu:   {name: "bltu", codec: CodecSB, format: fmtRs1Rs2Offset},
	OpBgeu:   {name: "bgeu", codec: CodecSB, format: fmtRs1Rs2Offset},
	OpLb:     {name: "lb", codec: CodecI, format: fmtRdOffsetRs1},
	OpLh:     {name: "lh", codec: CodecI, format: fmtRdOffsetRs1},
	OpLw:     {name: "lw", codec: CodecI, format: fmtRdOffsetRs1},
	OpLbu:    {name: "lbu", codec: CodecI, format: fmtRdOffsetRs1},
	OpLhu:    {name: "lhu", codec: CodecI, format: fmtRdOffsetRs1},
	OpSb:     {name: "sb", codec: CodecS, format: fmtRs2OffsetRs1},
	OpSh:     {name: "sh", codec: CodecS, format: fmtRs2OffsetRs1},
	OpSw:     {name: "sw", codec: CodecS, format: fmtRs2OffsetRs1},
	OpAddi:   {name: "addi", codec: CodecI, format: fmtRdRs1Imm, pseudo: liftAddi},
	OpSlti:   {name: "slti", codec: CodecI, format: fmtRdRs1Imm},
	OpSltiu:  {name: "sltiu", codec: CodecI, format: fmtRdRs1Imm, pseudo: liftSltiu},
	OpXori:   {name: "xori", codec: CodecI, format: fmtRdRs1Imm, pseudo: liftXori},
	OpOri:    {name: "ori", codec: CodecI, format: fmtRdRs1Imm},
	OpAndi:   {name: "andi", codec: CodecI, format: fmtRdRs1Imm},
	OpSlli:   {name: "slli", codec: CodecISh7, format: fmtRdRs1Imm},
	OpSrli:   {name: "srli", codec: CodecISh7, format: fmtRdRs1Imm},
	OpSrai:   {name: "srai", codec: CodecISh7, format: fmtRdRs1Imm},
	OpAdd:    {name: "add", codec: CodecR, format: fmtRdRs1Rs2},
	OpSub:    {name: "sub", codec: CodecR, format: fmtRdRs1Rs2, pseudo: liftSub},
	OpSll:    {name: "sll", codec: CodecR, format: fmtRdRs1Rs2},
	OpSlt:    {name: "slt", codec: CodecR, format: fmtRdRs1Rs2, pseudo: liftSlt},
	OpSltu:   {name: "sltu", codec: CodecR, format: fmtRdRs1Rs2, pseudo: liftSltu},
	OpXor:    {name: "xor", codec: CodecR, format: fmtRdRs1Rs2},
	OpSrl:    {name: "srl", codec: CodecR, format: fmtRdRs1Rs2},
	OpSra:    {name: "sra", codec: CodecR, format: fmtRdRs1Rs2},
	OpOr:     {name: "or", codec: CodecR, format: fmtRdRs1Rs2},
	OpAnd:    {name: "and", codec: CodecR, format: fmtRdRs1Rs2},
	OpFence:  {name: "fence", codec: CodecRF, format: fmtPredSucc},
	OpFenceI: {name: "fence.i", codec: CodecNone, format: fmtNone},

	// RV64I
	OpLwu:   {name: "lwu", codec: CodecI, format: fmtRdOffsetRs1},
	OpLd:    {name: "ld", codec: CodecI, format: fmtRdOffsetRs1},
	OpSd:    {name: "sd", codec: CodecS, format: fmtRs2OffsetRs1},
	OpAddiw: {name: "addiw", codec: CodecI, format: fmtRdRs1Imm, pseudo: liftAddiw},
	OpSlliw: {name: "slliw", codec: CodecISh5, format: fmtRdRs1Imm},
	OpSrliw: {name: "srliw", codec: CodecISh5, format: fmtRdRs1Imm},
	OpSraiw: {name: "sraiw", codec: CodecISh5, format: fmtRdRs1Imm},
	OpAddw:  {name: "addw", codec: CodecR, format: fmtRdRs1Rs2},
	OpSubw:  {name: "subw", codec: CodecR, format: fmtRdRs1Rs2, pseudo: liftSubw},
	OpSllw:  {name: "sllw", codec: CodecR, format: fmtRdRs1Rs2},
	OpSrlw:  {name: "srlw", codec: CodecR, format: fmtRdRs1Rs2},
	OpSraw:  {name: "sraw", codec: CodecR, format: fmtRdRs1Rs2},

	// RV128I
	OpLdu:   {name: "ldu", codec: CodecI, format: fmtRdOffsetRs1},
	OpLq:    {name: "lq", codec: CodecI, format: fmtRdOffsetRs1},
	OpSq:    {name: "sq", codec: CodecS, format: fmtRs2OffsetRs1},
	OpAddid: {name: "addid", codec: CodecI, format: fmtRdRs1Imm},
	OpSllid: {name: "sllid", codec: CodecISh6, format: fmtRdRs1Imm},
	OpSrlid: {name: "srlid", codec: CodecISh6, format: fmtRdRs1Imm},
	OpSraid: {name: "sraid", codec: CodecISh6, format: fmtRdRs1Imm},
	OpAddd:  {name: "addd", codec: CodecR, format: fmtRdRs1Rs2},
	OpSubd:  {name: "subd", codec: CodecR, format: fmtRdRs1Rs2},
	OpSlld:  {name: "slld", codec: CodecR, format: fmtRdRs1Rs2},
	OpSrld:  {name: "srld", codec: CodecR, format: fmtRdRs1Rs2},
	OpSrad:  {name: "srad", codec: CodecR, format: fmtRdRs1Rs2},

	// M
	OpMul:    {name: "mul", codec: CodecR, format: fmtRdRs1Rs2},
	OpMulh:   {name: "mulh", codec: CodecR, format: fmtRdRs1Rs2},
	OpMulhsu: {name: "mulhsu", codec: CodecR, format: fmtRdRs1Rs2},
	OpMulhu:  {name: "mulhu", codec: CodecR, format: fmtRdRs1Rs2},
	OpDiv:    {name: "div", codec: CodecR, format: fmtRdRs1Rs2},
	OpDivu:   {name: "divu", codec: CodecR, format: fmtRdRs1Rs2},
	OpRem:    {name: "rem", codec: CodecR, format: fmtRdRs1Rs2},
	OpRemu:   {name: "remu", codec: CodecR, format: fmtRdRs1Rs2},
	OpMulw:   {name: "mulw", codec: CodecR, format: fmtRdRs1Rs2},
	OpDivw:   {name: "divw", codec: CodecR, format: fmtRdRs1Rs2},
	OpDivuw:  {name: "divuw", codec: CodecR, format: fmtRdRs1Rs2},
	OpRemw:   {name: "remw", codec: CodecR, format: fmtRdRs1Rs2},
	OpRemuw:  {name: "remuw", codec: CodecR, format: fmtRdRs1Rs2},
	OpMuld:   {name: "muld", codec: CodecR, format: fmtRdRs1Rs2},
	OpDivd:   {name: "divd", codec: CodecR, format: fmtRdRs1Rs2},
	OpDivud:  {name: "divud", codec: CodecR, format: fmtRdRs1Rs2},
	OpRemd:   {name: "remd", codec: CodecR, format: fmtRdRs1Rs2},
	OpRemud:  {name: "remud", codec: CodecR, format: fmtRdRs1Rs2},

	// A
	OpLrW:      {name: "lr.w", codec: CodecRL, format: fmtAqrlRdRs1},
	OpScW:      {name: "sc.w", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmoswapW: {name: "amoswap.w", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmoaddW:  {name: "amoadd.w", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmoxorW:  {name: "amoxor.w", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmoorW:   {name: "amoor.w", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmoandW:  {name: "amoand.w", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmominW:  {name: "amomin.w", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmomaxW:  {name: "amomax.w", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmominuW: {name: "amominu.w", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmomaxuW: {name: "amomaxu.w", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpLrD:      {name: "lr.d", codec: CodecRL, format: fmtAqrlRdRs1},
	OpScD:      {name: "sc.d", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmoswapD: {name: "amoswap.d", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmoaddD:  {name: "amoadd.d", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmoxorD:  {name: "amoxor.d", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmoorD:   {name: "amoor.d", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmoandD:  {name: "amoand.d", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmominD:  {name: "amomin.d", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmomaxD:  {name: "amomax.d", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmominuD: {name: "amominu.d", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmomaxuD: {name: "amomaxu.d", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpLrQ:      {name: "lr.q", codec: CodecRL, format: fmtAqrlRdRs1},
	OpScQ:      {name: "sc.q", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmoswapQ: {name: "amoswap.q", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmoaddQ:  {name: "amoadd.q", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmoxorQ:  {name: "amoxor.q", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmoorQ:   {name: "amoor.q", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmoandQ:  {name: "amoand.q", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmominQ:  {name: "amomin.q", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmomaxQ:  {name: "amomax.q", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmominuQ: {name: "amominu.q", codec: CodecRA, format: fmtAqrlRdRs2Rs1},
	OpAmomaxuQ: {name: "amomaxu.q", codec: CodecRA, format: fmtAqrlRdRs2Rs1},

	// Privileged and CSR
	OpEcall:     {name: "ecall", codec: CodecNone, format: fmtNone},
	OpEbreak:    {name: "ebreak", codec: CodecNone, format: fmtNone},
	OpUret:      {name: "uret", codec: CodecNone, format: fmtNone},
	OpSret:      {name: "sret", codec: CodecNone, format: fmtNone},
	OpHret:      {name: "hret", codec: CodecNone, format: fmtNone},
	OpMret:      {name: "mret", codec: CodecNone, format: fmtNone},
	OpDret:      {name: "dret", codec: CodecNone, format: fmtNone},
	OpSfenceVM:  {name: "sfence.vm", codec: CodecR, format: fmtRs1},
	OpSfenceVMA: {name: "sfence.vma", codec: CodecR, format: fmtRs1Rs2},
	OpWfi:       {name: "wfi", codec: CodecNone, format: fmtNone},
	OpCsrrw:     {name: "csrrw", codec: CodecICsr, format: fmtRdCsrRs1, pseudo: liftCsrrw},
	OpCsrrs:     {name: "csrrs", codec: CodecICsr, format: fmtRdCsrRs1, pseudo: liftCsrrs},
	OpCsrrc:     {name: "csrrc", codec: CodecICsr, format: fmtRdCsrRs1},
	OpCsrrwi:    {name: "csrrwi", codec: CodecICsr, format: fmtRdCsrZimm, pseudo: liftCsrrwi},
	OpCsrrsi:    {name: "csrrsi", codec: CodecICsr, format: fmtRdCsrZimm},
	OpCsrrci:    {name: "csrrci", codec: CodecICsr, format: fmtRdCsrZimm},

	// F
	OpFlw:     {name: "flw", codec: CodecI, format: fmtFrdOffsetRs1},
	OpFsw:     {name: "fsw", codec: CodecS, format: fmtFrs2OffsetRs1},
	OpFmaddS:  {name: "fmadd.s", codec: CodecR4M, format: fmtRmFrdFrs1Frs2Frs3},
	OpFmsubS:  {name: "fmsub.s", codec: CodecR4M, format: fmtRmFrdFrs1Frs2Frs3},
	OpFnmsubS: {name: "fnmsub.s", codec: CodecR4M, format: fmtRmFrdFrs1Frs2Frs3},
	OpFnmaddS: {name: "fnmadd.s", codec: CodecR4M, format: fmtRmFrdFrs1Frs2Frs3},
	OpFaddS:   {name: "fadd.s", codec: CodecRM, format: fmtRmFrdFrs1Frs2},
	OpFsubS:   {name: "fsub.s", codec: CodecRM, format: fmtRmFrdFrs1Frs2},
	OpFmulS:   {name: "fmul.s", codec: CodecRM, format: fmtRmFrdFrs1Frs2},
	OpFdivS:   {name: "fdiv.s", codec: CodecRM, format: fmtRmFrdFrs1Frs2},
	OpFsgnjS:  {name: "fsgnj.s", codec: CodecR, format: fmtFrdFrs1Frs2, pseudo: liftFsgnjS},
	OpFsgnjnS: {name: "fsgnjn.s", codec: CodecR, format: fmtFrdFrs1Frs2, pseudo: liftFsgnjnS},
	OpFsgnjxS: {name: "fsgnjx.s", codec: CodecR, format: fmtFrdFrs1Frs2, pseudo: liftFsgnjxS},
	OpFminS:   {name: "fmin.s", codec: CodecR, format: fmtFrdFrs1Frs2},
	OpFmaxS:   {name: "fmax.s", codec: CodecR, format: fmtFrdFrs1Frs2},
	OpFsqrtS:  {name: "fsqrt.s", codec: CodecRM, format: fmtRmFrdFrs1},
	OpFleS:    {name: "fle.s", codec: CodecR, format: fmtRdFrs1Frs2},
	OpFltS:    {name: "flt.s", codec: CodecR, format: fmtRdFrs1Frs2},
	OpFeqS:    {name: "feq.s", codec: CodecR, format: fmtRdFrs1Frs2},
	OpFcvtWS:  {name: "fcvt.w.s", codec: CodecRM, format: fmtRmRdFrs1},
	OpFcvtWuS: {name: "fcvt.wu.s", codec: CodecRM, format: fmtRmRdFrs1},
	OpFcvtSW:  {name: "fcvt.s.w", codec: CodecRM, format: fmtRmFrdRs1},
	OpFcvtSWu: {name: "fcvt.s.wu", codec: CodecRM, format: fmtRmFrdRs1},
	OpFmvXS:   {name: "fmv.x.s", codec: CodecR, format: fmtRdFrs1},
	OpFclassS: {name: "fclass.s", codec: CodecR, format: fmtRdFrs1},
	OpFmvSX:   {name: "fmv.s.x", codec: CodecR, format: fmtFrdRs1},
	OpFcvtLS:  {name: "fcvt.l.s", codec: CodecRM, format: fmtRmRdFrs1},
	OpFcvtLuS: {name: "fcvt.lu.s", codec: CodecRM, format: fmtRmRdFrs1},
	OpFcvtSL:  {name: "fcvt.s.l", codec: CodecRM, format: fmtRmFrdRs1},
	OpFcvtSLu: {name: "fcvt.s.lu", codec: CodecRM, format: fmtRmFrdRs1},

	// D
	OpFld:     {name: "fld", codec: CodecI, format: fmtFrdOffsetRs1},
	OpFsd:     {name: "fsd", codec: CodecS, format: fmtFrs2OffsetRs1},
	OpFmaddD:  {name: "fmadd.d", codec: CodecR4M, format: fmtRmFrdFrs1Frs2Frs3},
	OpFmsubD:  {name: "fmsub.d", codec: CodecR4M, format: fmtRmFrdFrs1Frs2Frs3},
	OpFnmsubD: {name: "fnmsub.d", codec: CodecR4M, format: fmtRmFrdFrs1Frs2Frs3},
	OpFnmaddD: {name: "fnmadd.d", codec: CodecR4M, format: fmtRmFrdFrs1Frs2Frs3},
	OpFaddD:   {name: "fadd.d", codec: CodecRM, format: fmtRmFrdFrs1Frs2},
	OpFsubD:   {name: "fsub.d", codec: CodecRM, format: fmtRmFrdFrs1Frs2},
	OpFmulD:   {name: "fmul.d", codec: CodecRM, format: fmtRmFrdFrs1Frs2},
	OpFdivD:   {name: "fdiv.d", codec: CodecRM, format: fmtRmFrdFrs1Frs2},
	OpFsgnjD:  {name: "fsgnj.d", codec: CodecR, format: fmtFrdFrs1Frs2, pseudo: liftFsgnjD},
	OpFsgnjnD: {name: "fsgnjn.d", codec: CodecR, format: fmtFrdFrs1Frs2, pseudo: liftFsgnjnD},
	OpFsgnjxD: {name: "fsgnjx.d", codec: CodecR, format: fmtFrdFrs1Frs2, pseudo: liftFsgnjxD},
	OpFminD:   {name: "fmin.d", codec: CodecR, format: fmtFrdFrs1Frs2},
	OpFmaxD:   {name: "fmax.d", codec: CodecR, format: fmtFrdFrs1Frs2},
	OpFcvtSD:  {name: "fcvt.s.d", codec: CodecRM, format: fmtRmFrdFrs1},
	OpFcvtDS:  {name: "fcvt.d.s", codec: CodecRM, format: fmtRmFrdFrs1},
	OpFsqrtD:  {name: "fsqrt.d", codec: CodecRM, format: fmtRmFrdFrs1},
	OpFleD:    {name: "fle.d", codec: CodecR, format: fmtRdFrs1Frs2},
	OpFltD:    {name: "flt.d", codec: CodecR, format: fmtRdFrs1Frs2},
	OpFeqD:    {name: "feq.d", codec: CodecR, format: fmtRdFrs1Frs2},
	OpFcvtWD:  {name: "fcvt.w.d", codec: CodecRM, format: fmtRmRdFrs1},
	OpFcvtWuD: {name: "fcvt.wu.d", codec: CodecRM, format: fmtRmRdFrs1},
	OpFcvtDW:  {name: "fcvt.d.w", codec: CodecRM, format: fmtRmFrdRs1},
	OpFcvtDWu: {name: "fcvt.d.wu", codec: CodecRM, format: fmtRmFrdRs1},
	OpFclassD: {name: "fclass.d", codec: CodecR, format: fmtRdFrs1},
	OpFcvtLD:  {name: "fcvt.l.d", codec: CodecRM, format: fmtRmRdFrs1},
	OpFcvtLuD: {name: "fcvt.lu.d", codec: CodecRM, format: fmtRmRdFrs1},
	OpFmvXD:   {name: "fmv.x.d", codec: CodecR, format: fmtRdFrs1},
	OpFcvtDL:  {name: "fcvt.d.l", codec: CodecRM, format: fmtRmFrdRs1},
	OpFcvtDLu: {name: "fcvt.d.lu", codec: CodecRM, format: fmtRmFrdRs1},
	OpFmvDX:   {name: "fmv.d.x", codec: CodecR, format: fmtFrdRs1},

	// Q
	OpFlq:     {name: "flq", codec: CodecI, format: fmtFrdOffsetRs1},
	OpFsq:     {name: "fsq", codec: CodecS, format: fmtFrs2OffsetRs1},
	OpFmaddQ:  {name: "fmadd.q", codec: CodecR4M, format: fmtRmFrdFrs1Frs2Frs3},
	OpFmsubQ:  {name: "fmsub.q", codec: CodecR4M, format: fmtRmFrdFrs1Frs2Frs3},
	OpFnmsubQ: {name: "fnmsub.q", codec: CodecR4M, format: fmtRmFrdFrs1Frs2Frs3},
	OpFnmaddQ: {name: "fnmadd.q", codec: CodecR4M, format: fmtRmFrdFrs1Frs2Frs3},
	OpFaddQ:   {name: "fadd.q", codec: CodecRM, format: fmtRmFrdFrs1Frs2},
	OpFsubQ:   {name: "fsub.q", codec: CodecRM, format: fmtRmFrdFrs1Frs2},
	OpFmulQ:   {name: "fmul.q", codec: CodecRM, format: fmtRmFrdFrs1Frs2},
	OpFdivQ:   {name: "fdiv.q", codec: CodecRM, format: fmtRmFrdFrs1Frs2},
	OpFsgnjQ:  {name: "fsgnj.q", codec: CodecR, format: fmtFrdFrs1Frs2, pseudo: liftFsgnjQ},
	OpFsgnjnQ: {name: "fsgnjn.q", codec: CodecR, format: fmtFrdFrs1Frs2, pseudo: liftFsgnjnQ},
	OpFsgnjxQ: {name: "fsgnjx.q", codec: CodecR, format: fmtFrdFrs1Frs2, pseudo: liftFsgnjxQ},
	OpFminQ:   {name: "fmin.q", codec: CodecR, format: fmtFrdFrs1Frs2},
	OpFmaxQ:   {name: "fmax.q", codec: CodecR, format: fmtFrdFrs1Frs2},
	OpFcvtSQ:  {name: "fcvt.s.q", codec: CodecRM, format: fmtRmFrdFrs1},
	OpFcvtQS:  {name: "fcvt.q.s", codec: CodecRM, format: fmtRmFrdFrs1},
	OpFcvtDQ:  {name: "fcvt.d.q", codec: CodecRM, format: fmtRmFrdFrs1},
	OpFcvtQD:  {name: "fcvt.q.d", codec: CodecRM, format: fmtRmFrdFrs1},
	OpFsqrtQ:  {name: "fsqrt.q", codec: CodecRM, format: fmtRmFrdFrs1},
	OpFleQ:    {name: "fle.q", codec: CodecR, format: fmtRdFrs1Frs2},
	OpFltQ:    {name: "flt.q", codec: CodecR, format: fmtRdFrs1Frs2},
	OpFeqQ:    {name: "feq.q", codec: CodecR, format: fmtRdFrs1Frs2},
	OpFcvtWQ:  {name: "fcvt.w.q", codec: CodecRM, format: fmtRmRdFrs1},
	OpFcvtWuQ: {name: "fcvt.wu.q", codec: CodecRM, format: fmtRmRdFrs1},
	OpFcvtQW:  {name: "fcvt.q.w", codec: CodecRM, format: fmtRmFrdRs1},
	OpFcvtQWu: {name: "fcvt.q.wu", codec: CodecRM, format: fmtRmFrdRs1},
	OpFclassQ: {name: "fclass.q", codec: CodecR, format: fmtRdFrs1},
	OpFcvtLQ:  {name: "fcvt.l.q", codec: CodecRM, format: fmtRmRdFrs1},
	OpFcvtLuQ: {name: "fcvt.lu.q", codec: CodecRM, format: fmtRmRdFrs1},
	OpFcvtQL:  {name: "fcvt.q.l", codec: CodecRM, format: fmtRmFrdRs1},
	OpFcvtQLu: {name: "fcvt.q.lu", codec: CodecRM, format: fmtRmFrdRs1},
	OpFmvXQ:   {name: "fmv.x.q", codec: CodecR, format: fmtRdFrs1},
	OpFmvQX:   {name: "fmv.q.x", codec: CodecR, format: fmtFrdRs1},

	// RVC
	OpCAddi4spn: {name: "c.addi4spn", codec: CodecCIW4spn, format: fmtRdRs1Imm,
		decomp: [3]Op{OpAddi, OpAddi, OpAddi}, decompNZ: true},
	OpCFld: {name: "c.fld", codec: CodecCLLd, format: fmtFrdOffsetRs1,
		decomp: [3]Op{OpFld, OpFld, OpIllegal}},
	OpCLw: {name: "c.lw", codec: CodecCLLw, format: fmtRdOffsetRs1,
		decomp: [3]Op{OpLw, OpLw, OpLw}},
	OpCFlw: {name: "c.flw", codec: CodecCLLw, format: fmtFrdOffsetRs1,
		decomp: [3]Op{OpFlw, OpIllegal, OpIllegal}},
	OpCLd: {name: "c.ld", codec: CodecCLLd, format: fmtRdOffsetRs1,
		decomp: [3]Op{OpIllegal, OpLd, OpLd}},
	OpCFsd: {name: "c.fsd", codec: CodecCSSd, format: fmtFrs2OffsetRs1,
		decomp: [3]Op{OpFsd, OpFsd, OpIllegal}},
	OpCSw: {name: "c.sw", codec: CodecCSSw, format: fmtRs2OffsetRs1,
		decomp: [3]Op{OpSw, OpSw, OpSw}},
	OpCFsw: {name: "c.fsw", codec: CodecCSSw, format: fmtFrs2OffsetRs1,
		decomp: [3]Op{OpFsw, OpIllegal, OpIllegal}},
	OpCSd: {name: "c.sd", codec: CodecCSSd, format: fmtRs2OffsetRs1,
		decomp: [3]Op{OpIllegal, OpSd, OpSd}},
	OpCNop: {name: "c.nop", codec: CodecCINone, format: fmtNone,
		decomp: [3]Op{OpAddi, OpAddi, OpAddi}},
	OpCAddi: {name: "c.addi", codec: CodecCI, format: fmtRdRs1Imm,
		decomp: [3]Op{OpAddi, OpAddi, OpAddi}, decompNZ: true},
	OpCJal: {name: "c.jal", codec: CodecCJJal, format: fmtRdOffset,
		decomp: [3]Op{OpJal, OpIllegal, OpIllegal}},
	OpCAddiw: {name: "c.addiw", codec: CodecCI, format: fmtRdRs1Imm,
		decomp: [3]Op{OpIllegal, OpAddiw, OpAddiw}},
	OpCLi: {name: "c.li", codec: CodecCILi, format: fmtRdImm,
		decomp: [3]Op{OpAddi, OpAddi, OpAddi}},
	OpCAddi16sp: {name: "c.addi16sp", codec: CodecCI16sp, format: fmtRdRs1Imm,
		decomp: [3]Op{OpAddi, OpAddi, OpAddi}, decompNZ: true},
	OpCLui: {name: "c.lui", codec: CodecCILui, format: fmtRdImm,
		decomp: [3]Op{OpLui, OpLui, OpLui}, decompNZ: true},
	OpCSrli: {name: "c.srli", codec: CodecCBSh6, format: fmtRdRs1Imm,
		decomp: [3]Op{OpSrli, OpSrli, OpSrli}, decompNZ: true},
	OpCSrai: {name: "c.srai", codec: CodecCBSh6, format: fmtRdRs1Imm,
		decomp: [3]Op{OpSrai, OpSrai, OpSrai}, decompNZ: true},
	OpCAndi: {name: "c.andi", codec: CodecCBImm, format: fmtRdRs1Imm,
		decomp: [3]Op{OpAndi, OpAndi, OpAndi}},
	OpCSub: {name: "c.sub", codec: CodecCS, format: fmtRdRs1Rs2,
		decomp: [3]Op{OpSub, OpSub, OpSub}},
	OpCXor: {name: "c.xor", codec: CodecCS, format: fmtRdRs1Rs2,
		decomp: [3]Op{OpXor, OpXor, OpXor}},
	OpCOr: {name: "c.or", codec: CodecCS, format: fmtRdRs1Rs2,
		decomp: [3]Op{OpOr, OpOr, OpOr}},
	OpCAnd: {name: "c.and", codec: CodecCS, format: fmtRdRs1Rs2,
		decomp: [3]Op{OpAnd, OpAnd, OpAnd}},
	OpCSubw: {name: "c.subw", codec: CodecCS, format: fmtRdRs1Rs2,
		decomp: [3]Op{OpSubw, OpSubw, OpSubw}},
	OpCAddw: {name: "c.addw", codec: CodecCS, format: fmtRdRs1Rs2,
		decomp: [3]Op{OpAddw, OpAddw, OpAddw}},
	OpCJ: {name: "c.j", codec: CodecCJ, format: fmtOffset,
		decomp: [3]Op{OpJal, OpJal, OpJal}},
	OpCBeqz: {name: "c.beqz", codec: CodecCB, format: fmtRs1Offset,
		decomp: [3]Op{OpBeq, OpBeq, OpBeq}},
	OpCBnez: {name: "c.bnez", codec: CodecCB, format: fmtRs1Offset,
		decomp: [3]Op{OpBne, OpBne, OpBne}},
	OpCSlli: {name: "c.slli", codec: CodecCISh6, format: fmtRdRs1Imm,
		decomp: [3]Op{OpSlli, OpSlli, OpSlli}, decompNZ: true},
	OpCFldsp: {name: "c.fldsp", codec: CodecCILdsp, format: fmtFrdOffsetRs1,
		decomp: [3]Op{OpFld, OpFld, OpIllegal}},
	OpCLwsp: {name: "c.lwsp", codec: CodecCILwsp, format: fmtRdOffsetRs1,
		decomp: [3]Op{OpLw, OpLw, OpLw}},
	OpCFlwsp: {name: "c.flwsp", codec: CodecCILwsp, format: fmtFrdOffsetRs1,
		decomp: [3]Op{OpFlw, OpIllegal, OpIllegal}},
	OpCLdsp: {name: "c.ldsp", codec: CodecCILdsp, format: fmtRdOffsetRs1,
		decomp: [3]Op{OpIllegal, OpLd, OpLd}},
	OpCJr: {name: "c.jr", codec: CodecCRJr, format: fmtRs1,
		decomp: [3]Op{OpJalr, OpJalr, OpJalr}},
	OpCMv: {name: "c.mv", codec: CodecCRMv, format: fmtRdRs1,
		decomp: [3]Op{OpAddi, OpAddi, OpAddi}},
	OpCEbreak: {name: "c.ebreak", codec: CodecCINone, format: fmtNone,
		decomp: [3]Op{OpEbreak, OpEbreak, OpEbreak}},
	OpCJalr: {name: "c.jalr", codec: CodecCRJalr, format: fmtRs1,
		decomp: [3]Op{OpJalr, OpJalr, OpJalr}},
	OpCAdd: {name: "c.add", codec: CodecCR, format: fmtRdRs1Rs2,
		decomp: [3]Op{OpAdd, OpAdd, OpAdd}},
	OpCFsdsp: {name: "c.fsdsp", codec: CodecCSSSdsp, format: fmtFrs2OffsetRs1,
		decomp: [3]Op{OpFsd, OpFsd, OpIllegal}},
	OpCSwsp: {name: "c.swsp", codec: CodecCSSSwsp, format: fmtRs2OffsetRs1,
		decomp: [3]Op{OpSw, OpSw, OpSw}},
	OpCFswsp: {name: "c.fswsp", codec: CodecCSSSwsp, format: fmtFrs2OffsetRs1,
		decomp: [3]Op{OpFsw, OpIllegal, OpIllegal}},
	OpCSdsp: {name: "c.sdsp", codec: CodecCSSSdsp, format: fmtRs2OffsetRs1,
		decomp: [3]Op{OpIllegal, OpSd, OpSd}},
	OpCLq: {name: "c.lq", codec: CodecCLLq, format: fmtRdOffsetRs1,
		decomp: [3]Op{OpIllegal, OpIllegal, OpLq}},
	OpCSq: {name: "c.sq", codec: CodecCSSq, format: fmtRs2OffsetRs1,
		decomp: [3]Op{OpIllegal, OpIllegal, OpSq}},
	OpCLqsp: {name: "c.lqsp", codec: CodecCILqsp, format: fmtRdOffsetRs1,
		decomp: [3]Op{OpIllegal, OpIllegal, OpLq}},
	OpCSqsp: {name: "c.sqsp", codec: CodecCSSSqsp, format: fmtRs2OffsetRs1,
		decomp: [3]Op{OpIllegal, OpIllegal, OpSq}},

	// Pseudo-instructions
	OpNop:        {name: "nop", codec: CodecI, format: fmtNone},
	OpMv:         {name: "mv", codec: CodecI, format: fmtRdRs1},
	OpNot:        {name: "not", codec: CodecI, format: fmtRdRs1},
	OpNeg:        {name: "neg", codec: CodecR, format: fmtRdRs2},
	OpNegw:       {name: "negw", codec: CodecR, format: fmtRdRs2},
	OpSextW:      {name: "sext.w", codec: CodecI, format: fmtRdRs1},
	OpSeqz:       {name: "seqz", codec: CodecI, format: fmtRdRs1},
	OpSnez:       {name: "snez", codec: CodecR, format: fmtRdRs2},
	OpSltz:       {name: "sltz", codec: CodecR, format: fmtRdRs1},
	OpSgtz:       {name: "sgtz", codec: CodecR, format: fmtRdRs2},
	OpFmvS:       {name: "fmv.s", codec: CodecR, format: fmtFrdFrs1},
	OpFabsS:      {name: "fabs.s", codec: CodecR, format: fmtFrdFrs1},
	OpFnegS:      {name: "fneg.s", codec: CodecR, format: fmtFrdFrs1},
	OpFmvD:       {name: "fmv.d", codec: CodecR, format: fmtFrdFrs1},
	OpFabsD:      {name: "fabs.d", codec: CodecR, format: fmtFrdFrs1},
	OpFnegD:      {name: "fneg.d", codec: CodecR, format: fmtFrdFrs1},
	OpFmvQ:       {name: "fmv.q", codec: CodecR, format: fmtFrdFrs1},
	OpFabsQ:      {name: "fabs.q", codec: CodecR, format: fmtFrdFrs1},
	OpFnegQ:      {name: "fneg.q", codec: CodecR, format: fmtFrdFrs1},
	OpBeqz:       {name: "beqz", codec: CodecSB, format: fmtRs1Offset},
	OpBnez:       {name: "bnez", codec: CodecSB, format: fmtRs1Offset},
	OpBlez:       {name: "blez", codec: CodecSB, format: fmtRs2Offset},
	OpBgez:       {name: "bgez", codec: CodecSB, format: fmtRs1Offset},
	OpBltz:       {name: "bltz", codec: CodecSB, format: fmtRs1Offset},
	OpBgtz:       {name: "bgtz", codec: CodecSB, format: fmtRs2Offset},
	OpBle:        {name: "ble", codec: CodecSB, format: fmtRs2Rs1Offset},
	OpBleu:       {name: "bleu", codec: CodecSB, format: fmtRs2Rs1Offset},
	OpBgt:        {name: "bgt", codec: CodecSB, format: fmtRs2Rs1Offset},
	OpBgtu:       {name: "bgtu", codec: CodecSB, format: fmtRs2Rs1Offset},
	OpJ:          {name: "j", codec: CodecUJ, format: fmtOffset},
	OpRet:        {name: "ret", codec: CodecI, format: fmtNone},
	OpJr:         {name: "jr", codec: CodecI, format: fmtRs1},
	OpRdcycle:    {name: "rdcycle", codec: CodecICsr, format: fmtRd},
	OpRdtime:     {name: "rdtime", codec: CodecICsr, format: fmtRd},
	OpRdinstret:  {name: "rdinstret", codec: CodecICsr, format: fmtRd},
	OpRdcycleh:   {name: "rdcycleh", codec: CodecICsr, format: fmtRd},
	OpRdtimeh:    {name: "rdtimeh", codec: CodecICsr, format: fmtRd},
	OpRdinstreth: {name: "rdinstreth", codec: CodecICsr, format: fmtRd},
	OpFrcsr:      {name: "frcsr", codec: CodecICsr, format: fmtRd},
	OpFrrm:       {name: "frrm", codec: CodecICsr, format: fmtRd},
	OpFrflags:    {name: "frflags", codec: CodecICsr, format: fmtRd},
	OpFscsr:      {name: "fscsr", codec: CodecICsr, format: fmtRdRs1},
	OpFsrm:       {name: "fsrm", codec: CodecICsr, format: fmtRdRs1},
	OpFsflags:    {name: "fsflags", codec: CodecICsr, format: fmtRdRs1},
	OpFsrmi:      {name: "fsrmi", codec: CodecICsr, format: fmtRdZimm},
	OpFsflagsi:   {name: "fsflagsi", codec: CodecICsr, format: fmtRdZimm},
}
