// Package rvdasm decodes and renders RISC-V machine code. It covers
// the RV32, RV64 and RV128 base sets with the M, A, F, D, Q and C
// extensions, expands compressed encodings to their full-width form,
// and spells recognized operand patterns as assembler aliases.
package rvdasm

import (
	"io"
	"log/slog"

	"github.com/betrusted-io/rvdasm/internal/monitor"
	"github.com/betrusted-io/rvdasm/internal/riscv"
)

// -----------------------------------------------------------------------------
// Type Aliases - These re-export types from internal/riscv and internal/monitor
// -----------------------------------------------------------------------------

// ISA selects the register width instructions decode at.
type ISA = riscv.ISA

// Op identifies a decoded operation. The zero value is the illegal op.
type Op = riscv.Op

// Codec identifies the operand encoding of an operation.
type Codec = riscv.Codec

// Inst is one decoded instruction record.
type Inst = riscv.Inst

// Scanner walks a byte slice decoding consecutive instructions.
type Scanner = riscv.Scanner

// Line is one row of a memory listing.
type Line = monitor.Line

// Lister disassembles instructions out of an addressable memory image.
type Lister = monitor.Lister

// Option configures a Lister.
type Option = monitor.Option

// ISA widths.
const (
	RV32  = riscv.RV32
	RV64  = riscv.RV64
	RV128 = riscv.RV128
)

// ErrShortRead reports that no instruction bytes could be read at the
// requested address. Use errors.Is to check for it.
var ErrShortRead = monitor.ErrShortRead

// -----------------------------------------------------------------------------
// Lister Options
// -----------------------------------------------------------------------------

// WithLogger routes a Lister's debug logging to logger.
func WithLogger(logger *slog.Logger) Option {
	return monitor.WithLogger(logger)
}

// WithBytesWidth pads the hex column of listing lines to n instruction
// bytes. The default fits a four-byte word.
func WithBytesWidth(n int) Option {
	return monitor.WithBytesWidth(n)
}

// -----------------------------------------------------------------------------
// Decoding
// -----------------------------------------------------------------------------

// ParseISA parses an ISA width name as written on a command line:
// rv32, rv64 or rv128.
func ParseISA(s string) (ISA, error) {
	return riscv.ParseISA(s)
}

// Decode decodes the instruction at the start of code, which sits at
// address pc. It returns the filled record and the number of bytes
// consumed. A count of 0 means code does not begin with a decodable
// instruction; the returned record still renders.
func Decode(isa ISA, pc uint64, code []byte) (Inst, int) {
	return riscv.Decode(isa, pc, code)
}

// Disassemble renders the instruction at the start of code in one call.
func Disassemble(isa ISA, pc uint64, code []byte) string {
	return riscv.Disassemble(isa, pc, code)
}

// Fetch reads the instruction word at offset in code and reports how
// many bytes it occupies. A count of 0 means the bytes at offset do
// not form a complete instruction.
func Fetch(code []byte, offset int) (uint64, int) {
	return riscv.Fetch(code, offset)
}

// NewScanner returns a Scanner over code, whose first byte sits at
// address pc.
func NewScanner(isa ISA, pc uint64, code []byte) *Scanner {
	return riscv.NewScanner(isa, pc, code)
}

// -----------------------------------------------------------------------------
// Listings
// -----------------------------------------------------------------------------

// NewLister returns a Lister reading code for the given width from mem.
// The addresses passed to its methods double as the pc for target
// glosses, so mem must map absolute addresses.
func NewLister(isa ISA, mem io.ReaderAt, opts ...Option) *Lister {
	return monitor.NewLister(isa, mem, opts...)
}

// Lines decodes up to n instructions from mem starting at addr.
func Lines(isa ISA, mem io.ReaderAt, addr uint64, n int) ([]Line, error) {
	return monitor.Disassemble(isa, mem, addr, n)
}
