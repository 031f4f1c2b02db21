package riscv

// Codec identifies the operand encoding of an operation: which bit
// fields exist in the instruction word and how they scatter into the
// record. The zero value is CodecIllegal, which extracts nothing.
type Codec uint8

const (
	CodecIllegal Codec = iota

	// 32-bit encodings
	CodecNone
	CodecU
	CodecUJ
	CodecI
	CodecISh5
	CodecISh6
	CodecISh7
	CodecICsr
	CodecS
	CodecSB
	CodecR
	CodecRM
	CodecR4M
	CodecRA
	CodecRL
	CodecRF

	// 16-bit encodings
	CodecCB
	CodecCBImm
	CodecCBSh5
	CodecCBSh6
	CodecCI
	CodecCISh5
	CodecCISh6
	CodecCI16sp
	CodecCILwsp
	CodecCILdsp
	CodecCILqsp
	CodecCILi
	CodecCILui
	CodecCINone
	CodecCIW4spn
	CodecCJ
	CodecCJJal
	CodecCLLw
	CodecCLLd
	CodecCLLq
	CodecCR
	CodecCRMv
	CodecCRJalr
	CodecCRJr
	CodecCS
	CodecCSSw
	CodecCSSd
	CodecCSSq
	CodecCSSSwsp
	CodecCSSSdsp
	CodecCSSSqsp

	codecCount
)

var codecName = [codecCount]string{
	CodecIllegal: "illegal",
	CodecNone:    "none",
	CodecU:       "u",
	CodecUJ:      "uj",
	CodecI:       "i",
	CodecISh5:    "i.sh5",
	CodecISh6:    "i.sh6",
	CodecISh7:    "i.sh7",
	CodecICsr:    "i.csr",
	CodecS:       "s",
	CodecSB:      "sb",
	CodecR:       "r",
	CodecRM:      "r.m",
	CodecR4M:     "r4.m",
	CodecRA:      "r.a",
	CodecRL:      "r.l",
	CodecRF:      "r.f",
	CodecCB:      "cb",
	CodecCBImm:   "cb.imm",
	CodecCBSh5:   "cb.sh5",
	CodecCBSh6:   "cb.sh6",
	CodecCI:      "ci",
	CodecCISh5:   "ci.sh5",
	CodecCISh6:   "ci.sh6",
	CodecCI16sp:  "ci.16sp",
	CodecCILwsp:  "ci.lwsp",
	CodecCILdsp:  "ci.ldsp",
	CodecCILqsp:  "ci.lqsp",
	CodecCILi:    "ci.li",
	CodecCILui:   "ci.lui",
	CodecCINone:  "ci.none",
	CodecCIW4spn: "ciw.4spn",
	CodecCJ:      "cj",
	CodecCJJal:   "cj.jal",
	CodecCLLw:    "cl.lw",
	CodecCLLd:    "cl.ld",
	CodecCLLq:    "cl.lq",
	CodecCR:      "cr",
	CodecCRMv:    "cr.mv",
	CodecCRJalr:  "cr.jalr",
	CodecCRJr:    "cr.jr",
	CodecCS:      "cs",
	CodecCSSw:    "cs.sw",
	CodecCSSd:    "cs.sd",
	CodecCSSq:    "cs.sq",
	CodecCSSSwsp: "css.swsp",
	CodecCSSSdsp: "css.sdsp",
	CodecCSSSqsp: "css.sqsp",
}

func (c Codec) String() string {
	if c >= codecCount {
		return "illegal"
	}
	return codecName[c]
}
