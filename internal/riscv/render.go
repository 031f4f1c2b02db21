package riscv

import (
	"fmt"
	"strconv"
	"strings"
)

// Render templates. 'O' is the mnemonic, '\t' a literal tab and each
// digit one operand: 0/1/2 integer rd/rs1/rs2, 3/4/5/6 float
// rd/rs1/rs2/rs3, 7 the zimm field as a bare number. 'i' is the
// immediate, 'o' the immediate plus a pc-relative target comment, 'c'
// the CSR name, 'r' the rounding mode, 'p'/'s' the fence sets and
// 'A'/'R' the .aq/.rl suffixes. Everything else copies through.
const (
	fmtNone              = "O\t"
	fmtRs1               = "O\t1"
	fmtOffset            = "O\to"
	fmtPredSucc          = "O\tp,s"
	fmtRs1Rs2            = "O\t1,2"
	fmtRd                = "O\t0"
	fmtRdImm             = "O\t0,i"
	fmtRdOffset          = "O\t0,o"
	fmtRdRs1             = "O\t0,1"
	fmtRdRs2             = "O\t0,2"
	fmtRdZimm            = "O\t0,7"
	fmtRdRs1Imm          = "O\t0,1,i"
	fmtRdRs1Rs2          = "O\t0,1,2"
	fmtRdOffsetRs1       = "O\t0,i(1)"
	fmtRdCsrRs1          = "O\t0,c,1"
	fmtRdCsrZimm         = "O\t0,c,7"
	fmtRs2OffsetRs1      = "O\t2,i(1)"
	fmtRs1Offset         = "O\t1,o"
	fmtRs2Offset         = "O\t2,o"
	fmtRs1Rs2Offset      = "O\t1,2,o"
	fmtRs2Rs1Offset      = "O\t2,1,o"
	fmtFrdOffsetRs1      = "O\t3,i(1)"
	fmtFrs2OffsetRs1     = "O\t5,i(1)"
	fmtFrdRs1            = "O\t3,1"
	fmtFrdFrs1           = "O\t3,4"
	fmtRdFrs1            = "O\t0,4"
	fmtRdFrs1Frs2        = "O\t0,4,5"
	fmtFrdFrs1Frs2       = "O\t3,4,5"
	fmtRmFrdFrs1         = "O\tr,3,4"
	fmtRmFrdRs1          = "O\tr,3,1"
	fmtRmRdFrs1          = "O\tr,0,4"
	fmtRmFrdFrs1Frs2     = "O\tr,3,4,5"
	fmtRmFrdFrs1Frs2Frs3 = "O\tr,3,4,5,6"
	fmtAqrlRdRs1         = "OAR\t0,(1)"
	fmtAqrlRdRs2Rs1      = "OAR\t0,2,(1)"
)

// rmName maps the rounding mode field to its mnemonic. Encodings 5
// and 6 are reserved.
var rmName = [8]string{"rne", "rtz", "rdn", "rup", "rmm", "inv", "inv", "dyn"}

// Fence set bits, high to low: input, output, read, write.
const (
	fenceI = 8
	fenceO = 4
	fenceR = 2
	fenceW = 1
)

// fenceFlags spells a fence pred/succ set in canonical iorw order.
func fenceFlags(v uint8) string {
	var b [4]byte
	n := 0
	if v&fenceI != 0 {
		b[n] = 'i'
		n++
	}
	if v&fenceO != 0 {
		b[n] = 'o'
		n++
	}
	if v&fenceR != 0 {
		b[n] = 'r'
		n++
	}
	if v&fenceW != 0 {
		b[n] = 'w'
		n++
	}
	return string(b[:n])
}

// String renders the record as one listing line: mnemonic, a tab,
// comma-separated operands. Rendering is total; any record, including
// the zero value, produces a string.
func (in Inst) String() string {
	op := in.Op
	if op >= opCount {
		op = OpIllegal
	}
	data := &opData[op]
	var b strings.Builder
	for i := 0; i < len(data.format); i++ {
		switch data.format[i] {
		case 'O':
			b.WriteString(data.name)
		case '0':
			b.WriteString(iregName[in.Rd&0x1f])
		case '1':
			b.WriteString(iregName[in.Rs1&0x1f])
		case '2':
			b.WriteString(iregName[in.Rs2&0x1f])
		case '3':
			b.WriteString(fregName[in.Rd&0x1f])
		case '4':
			b.WriteString(fregName[in.Rs1&0x1f])
		case '5':
			b.WriteString(fregName[in.Rs2&0x1f])
		case '6':
			b.WriteString(fregName[in.Rs3&0x1f])
		case '7':
			b.WriteString(strconv.Itoa(int(in.Rs1)))
		case 'i':
			b.WriteString(strconv.Itoa(int(in.Imm)))
		case 'o':
			b.WriteString(strconv.Itoa(int(in.Imm)))
			fmt.Fprintf(&b, " # 0x%x", in.PC+uint64(int64(in.Imm)))
		case 'c':
			if name := csrName(in.Imm); name != "" {
				b.WriteString(name)
			} else {
				fmt.Fprintf(&b, "0x%03x", in.Imm)
			}
		case 'r':
			b.WriteString(rmName[in.RM&0x7])
		case 'p':
			b.WriteString(fenceFlags(in.Pred))
		case 's':
			b.WriteString(fenceFlags(in.Succ))
		case 'A':
			if in.Aq {
				b.WriteString(".aq")
			}
		case 'R':
			if in.Rl {
				b.WriteString(".rl")
			}
		default:
			b.WriteByte(data.format[i])
		}
	}
	return strings.TrimRight(b.String(), "\t ")
}
