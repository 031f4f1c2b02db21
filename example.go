//go:build ignore

// This file demonstrates every public API in the rvdasm package.
// It is excluded from the build and serves as a reference and compile-time check.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	rvdasm "github.com/betrusted-io/rvdasm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// =========================================================================
	// ParseISA - register width selection
	// =========================================================================
	isa, err := rvdasm.ParseISA("rv64")
	if err != nil {
		return fmt.Errorf("parse isa: %w", err)
	}

	// ISA constants
	_ = rvdasm.RV32
	_ = rvdasm.RV64
	_ = rvdasm.RV128

	code := []byte{
		0x13, 0x01, 0x01, 0xff, // addi  sp,sp,-16
		0x23, 0x34, 0x11, 0x00, // sd    ra,8(sp)
		0x05, 0x05, //             c.addi a0,1
		0x67, 0x80, 0x00, 0x00, // jalr  x0,0(ra)
	}

	// =========================================================================
	// Decode - one instruction into a record
	// =========================================================================
	inst, n := rvdasm.Decode(isa, 0x1000, code)
	if n == 0 {
		return errors.New("decode: no instruction at start of code")
	}

	// Inst fields
	_ = inst.PC    // address the instruction was decoded at
	_ = inst.Op    // operation, the zero Op is illegal
	_ = inst.Codec // operand encoding
	_ = inst.Raw   // fetched instruction word
	_ = inst.Rd    // destination register number
	_ = inst.Rs1   // source register numbers
	_ = inst.Rs2
	_ = inst.Rs3
	_ = inst.Imm  // sign-extended immediate, or zero-extended CSR number
	_ = inst.RM   // rounding mode field
	_ = inst.Pred // fence predecessor set
	_ = inst.Succ // fence successor set
	_ = inst.Aq   // atomic acquire bit
	_ = inst.Rl   // atomic release bit

	fmt.Printf("%#x: %s (%d bytes, op %v, codec %v)\n", inst.PC, inst, n, inst.Op, inst.Codec)

	// =========================================================================
	// Disassemble - decode and render in one call
	// =========================================================================
	fmt.Println(rvdasm.Disassemble(isa, 0x1000, code))

	// =========================================================================
	// Fetch - instruction word and length without decoding
	// =========================================================================
	word, n := rvdasm.Fetch(code, 4)
	fmt.Printf("word %#x, %d bytes\n", word, n)

	// =========================================================================
	// Scanner - walk a buffer instruction by instruction
	// =========================================================================
	s := rvdasm.NewScanner(isa, 0x1000, code)
	for s.Scan() {
		in := s.Inst()        // decoded record
		raw := s.Bytes()      // bytes the instruction occupies
		fmt.Printf("%#x: % x  %s\n", in.PC, raw, in)
	}

	// =========================================================================
	// Lister - disassembly listings out of a memory image
	// =========================================================================
	mem := bytes.NewReader(code)

	lister := rvdasm.NewLister(isa, mem,
		rvdasm.WithLogger(slog.Default()), // debug logging destination
		rvdasm.WithBytesWidth(4),          // hex column width in bytes
	)

	// Lines - decoded listing rows
	lines, err := lister.Lines(0, 4)
	if err != nil {
		return fmt.Errorf("lines: %w", err)
	}
	for _, line := range lines {
		// Line fields
		_ = line.Addr   // instruction address
		_ = line.Bytes  // instruction bytes in memory order
		_ = line.Text   // rendered instruction
		_ = line.Length // byte count

		fmt.Println(line.String())
	}

	// List - formatted listing written to w
	if err := lister.List(os.Stdout, 0, 4); err != nil {
		return fmt.Errorf("list: %w", err)
	}

	// Lines - package-level one-shot form
	if _, err := rvdasm.Lines(isa, mem, 0, 4); err != nil {
		return fmt.Errorf("lines: %w", err)
	}

	// ErrShortRead - reported when no bytes can be read at the address
	if _, err := rvdasm.Lines(isa, mem, 0x8000, 1); !errors.Is(err, rvdasm.ErrShortRead) {
		return fmt.Errorf("expected short read, got: %w", err)
	}

	return nil
}
