package riscv

// Inst is the decode record threaded through the pipeline. Every stage
// reads and rewrites the same fields; once filled, the record renders
// with String and needs no further decoding.
type Inst struct {
	PC  uint64 // address the instruction was fetched from
	Raw uint64 // instruction word, assembled little-endian

	Op    Op
	Codec Codec
	Imm   int32 // sign-extended immediate; zero-extended CSR number

	Rd   uint8
	Rs1  uint8
	Rs2  uint8
	Rs3  uint8
	RM   uint8 // rounding mode field
	Pred uint8 // fence predecessor set
	Succ uint8 // fence successor set
	Aq   bool
	Rl   bool
}

// instLength returns the encoded byte length of the instruction whose
// first halfword is half, or 0 for the reserved wider-than-64-bit
// patterns.
func instLength(half uint16) int {
	switch {
	case half&0b11 != 0b11:
		return 2
	case half&0b11100 != 0b11100:
		return 4
	case half&0b111111 == 0b011111:
		return 6
	case half&0b1111111 == 0b0111111:
		return 8
	}
	return 0
}

// Fetch reads one instruction word from code at offset, assembling it
// little-endian. It returns the word and its byte length. Length 0
// means the bytes do not form a whole instruction, because the length
// pattern is unsupported or code ends too soon; Fetch never reads past
// the end of code. The partial first halfword, if present, is still
// returned so the caller can report it.
func Fetch(code []byte, offset int) (uint64, int) {
	if offset < 0 || offset+2 > len(code) {
		return 0, 0
	}
	half := uint16(code[offset]) | uint16(code[offset+1])<<8
	length := instLength(half)
	if length == 0 || offset+length > len(code) {
		return uint64(half), 0
	}
	var word uint64
	for i := length - 1; i >= 0; i-- {
		word = word<<8 | uint64(code[offset+i])
	}
	return word, length
}

// decompress rewrites a compressed op to its full-width target for the
// ISA. Ops with no target at this width pass through unchanged, and
// encodings that require a nonzero immediate become OpIllegal when it
// is zero. Operands carry over as extracted.
func decompress(in *Inst, isa ISA) {
	data := &opData[in.Op]
	target := data.decomp[isa]
	if target == OpIllegal {
		return
	}
	if data.decompNZ && in.Imm == 0 {
		in.Op = OpIllegal
		return
	}
	in.Op = target
	in.Codec = opData[target].codec
}

// liftPseudo promotes the op to a pseudo spelling when the operands
// match one of its candidates. Candidates are ordered; the first full
// match wins.
func liftPseudo(in *Inst) {
	for _, cand := range opData[in.Op].pseudo {
		if in.match(cand.when) {
			in.Op = cand.op
			in.Codec = opData[cand.op].codec
			return
		}
	}
}

// Decode decodes the instruction at the start of code, which sits at
// address pc. It returns the filled record and the number of bytes
// consumed. A count of 0 means code does not begin with a decodable
// instruction; the returned record still renders.
func Decode(isa ISA, pc uint64, code []byte) (Inst, int) {
	word, length := Fetch(code, 0)
	in := Inst{PC: pc, Raw: word}
	if length == 0 {
		return in, 0
	}
	in.Op = classify(word, isa)
	extract(&in)
	decompress(&in, isa)
	liftPseudo(&in)
	return in, length
}

// Disassemble renders the instruction at the start of code in one call.
func Disassemble(isa ISA, pc uint64, code []byte) string {
	in, _ := Decode(isa, pc, code)
	return in.String()
}

// Scanner walks a byte slice decoding consecutive instructions. Bytes
// that do not decode are consumed in two-byte steps, or one byte at
// the very end, so a scan always terminates.
type Scanner struct {
	isa  ISA
	pc   uint64
	code []byte
	off  int

	inst Inst
	n    int
}

// NewScanner returns a Scanner over code, placing the first byte of
// code at address pc.
func NewScanner(isa ISA, pc uint64, code []byte) *Scanner {
	return &Scanner{isa: isa, pc: pc, code: code}
}

// Scan decodes the next instruction, returning false once code is
// exhausted.
func (s *Scanner) Scan() bool {
	if s.off >= len(s.code) {
		return false
	}
	in, n := Decode(s.isa, s.pc, s.code[s.off:])
	if n == 0 {
		n = 2
		if rest := len(s.code) - s.off; rest < n {
			n = rest
		}
	}
	s.inst, s.n = in, n
	s.off += n
	s.pc += uint64(n)
	return true
}

// Inst returns the record decoded by the last call to Scan.
func (s *Scanner) Inst() Inst { return s.inst }

// Bytes returns the raw bytes consumed by the last call to Scan.
func (s *Scanner) Bytes() []byte { return s.code[s.off-s.n : s.off] }
