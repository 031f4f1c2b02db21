// Package riscv decodes RISC-V machine code into assembly text.
//
// Decoding runs as a fixed pipeline over one record per instruction:
// fetch the variable-length word, classify the operation, extract the
// operands for the operation's codec, decompress 16-bit encodings to
// their base form, lift pseudo-instruction spellings, render. Malformed
// input never fails hard: it decodes to length zero or to OpIllegal,
// both of which render.
package riscv

import "fmt"

// ISA selects the target width. It only matters for the handful of
// compressed encodings that alias between widths (e.g. c.flw on RV32 is
// c.ld on RV64) and for picking the decompression target.
type ISA uint8

const (
	RV32 ISA = iota
	RV64
	RV128
)

func (isa ISA) String() string {
	switch isa {
	case RV32:
		return "rv32"
	case RV64:
		return "rv64"
	case RV128:
		return "rv128"
	}
	return fmt.Sprintf("ISA(%d)", uint8(isa))
}

// ParseISA parses an ISA width name as written on a command line.
func ParseISA(s string) (ISA, error) {
	switch s {
	case "rv32", "RV32", "32":
		return RV32, nil
	case "rv64", "RV64", "64":
		return RV64, nil
	case "rv128", "RV128", "128":
		return RV128, nil
	}
	return 0, fmt.Errorf("riscv: unknown ISA %q (want rv32, rv64 or rv128)", s)
}

// Register indices with dedicated roles in the ABI or in encodings.
const (
	regZero = 0 // x0, hardwired zero
	regRA   = 1 // x1, return address
	regSP   = 2 // x2, stack pointer
)

// iregName maps an integer register index to its ABI name.
var iregName = [32]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// fregName maps a float register index to its ABI name.
var fregName = [32]string{
	"ft0", "ft1", "ft2", "ft3", "ft4", "ft5", "ft6", "ft7",
	"fs0", "fs1", "fa0", "fa1", "fa2", "fa3", "fa4", "fa5",
	"fa6", "fa7", "fs2", "fs3", "fs4", "fs5", "fs6", "fs7",
	"fs8", "fs9", "fs10", "fs11", "ft8", "ft9", "ft10", "ft11",
}

// signExtend32 sign-extends the low bits of val to a signed 32-bit value.
func signExtend32(val uint32, bits int) int32 {
	shift := 32 - bits
	return int32(val<<shift) >> shift
}
