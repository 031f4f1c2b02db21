package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/logrusorgru/aurora/v4"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	rvdasm "github.com/betrusted-io/rvdasm"
)

// progressThreshold is the input size in bytes above which reading
// shows a progress bar.
const progressThreshold = 1 << 20

func run() error {
	// Flags
	isaName := flag.String("isa", "rv64", "register width: rv32, rv64 or rv128")
	base := flag.Uint64("base", 0, "load address of the image")
	skip := flag.Uint64("skip", 0, "skip N bytes of input before disassembling")
	count := flag.Int("n", 0, "stop after N instructions (0 for all)")
	hexInput := flag.String("x", "", "inline hex bytes instead of a file")
	color := flag.Bool("color", false, "force colored output")
	noColor := flag.Bool("no-color", false, "disable colored output")
	repl := flag.Bool("repl", false, "interactive disassembly loop")
	dumpTable := flag.Bool("dump-table", false, "dump decode records instead of listing lines")
	verbose := flag.Bool("verbose", false, "debug logging on stderr")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `rvdasm - RISC-V disassembler

USAGE:
  rvdasm [flags] <file>
  rvdasm [flags] -x HEX
  rvdasm [flags] -repl

INPUT:
  <file>         Flat binary image ("-" reads stdin)
  -x HEX         Inline hex bytes in memory order (spaces allowed)

FLAGS:
  -isa WIDTH     Register width: rv32, rv64 or rv128 (default rv64)
  -base ADDR     Load address of the image (default 0)
  -skip N        Skip N bytes of input before disassembling
  -n N           Stop after N instructions (default all)
  -color         Force colored output
  -no-color      Disable colored output
  -dump-table    Dump decode records as Go structures instead of listing lines
  -repl          Interactive disassembly loop with dot-commands
  -verbose       Debug logging on stderr

EXAMPLES:
  rvdasm -isa rv32 firmware.bin             Disassemble a flat rv32 image
  rvdasm -base 0x80000000 -n 32 kernel.bin  First 32 instructions at the boot address
  rvdasm -x "13 00 00 00"                   Disassemble inline bytes
  xxd -r -p code.hex | rvdasm -             Disassemble a hex dump from stdin
  rvdasm -repl                              Type bytes interactively
`)
	}
	flag.Parse()

	if *verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(
			os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug},
		)))
	} else {
		slog.SetDefault(slog.New(slog.NewTextHandler(
			os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelInfo},
		)))
	}

	isa, err := rvdasm.ParseISA(*isaName)
	if err != nil {
		return err
	}

	useColor := term.IsTerminal(int(os.Stdout.Fd()))
	if *color {
		useColor = true
	}
	if *noColor {
		useColor = false
	}

	if *repl {
		return runREPL(isa, *base, useColor)
	}

	var code []byte
	switch {
	case *hexInput != "":
		if flag.NArg() > 0 {
			return errors.New("both -x and an input file given")
		}
		code, err = parseHex(*hexInput)
		if err != nil {
			return fmt.Errorf("parse -x: %w", err)
		}
	case flag.NArg() == 1:
		code, err = readInput(flag.Arg(0))
		if err != nil {
			return err
		}
	default:
		flag.Usage()
		os.Exit(1)
	}

	if *skip > uint64(len(code)) {
		return fmt.Errorf("skip %d is past the end of the %d byte input", *skip, len(code))
	}
	if *skip == uint64(len(code)) {
		return nil
	}

	addr := *base + *skip
	n := *count
	if n <= 0 {
		n = len(code)/2 + 1
	}

	if *dumpTable {
		return dumpRecords(isa, addr, code[*skip:], n)
	}
	return list(os.Stdout, isa, &image{base: *base, data: code}, addr, n, useColor)
}

// image serves a flat binary at its load address.
type image struct {
	base uint64
	data []byte
}

func (m *image) ReadAt(p []byte, off int64) (int, error) {
	start := uint64(off) - m.base
	if uint64(off) < m.base || start >= uint64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[start:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// readInput loads the flat binary image. "-" reads stdin.
func readInput(path string) ([]byte, error) {
	if path == "-" {
		code, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return code, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	var r io.Reader = f
	if fi.Size() >= progressThreshold {
		bar := progressbar.DefaultBytes(fi.Size(), fmt.Sprintf("read %s", filepath.Base(path)))
		defer bar.Close()
		progressReader := progressbar.NewReader(f, bar)
		r = &progressReader
	}

	code, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return code, nil
}

// parseHex decodes hex bytes in memory order, ignoring spaces and an
// optional 0x prefix.
func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '_':
			return -1
		}
		return r
	}, s)
	code, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return code, nil
}

// list prints up to n listing lines starting at addr, coloring the
// mnemonic column when enabled.
func list(w io.Writer, isa rvdasm.ISA, mem io.ReaderAt, addr uint64, n int, useColor bool) error {
	lines, err := rvdasm.Lines(isa, mem, addr, n)
	if err != nil {
		return err
	}

	au := aurora.New(aurora.WithColors(useColor))
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		mnemonic, operands, hasOperands := strings.Cut(line.Text, "\t")
		styled := au.Yellow(mnemonic)
		if mnemonic == "illegal" {
			styled = au.Red(mnemonic)
		}
		if hasOperands {
			fmt.Fprintf(bw, "%8x:  %-11s  %s\t%s\n", line.Addr, fmt.Sprintf("% x", line.Bytes), styled, operands)
		} else {
			fmt.Fprintf(bw, "%8x:  %-11s  %s\n", line.Addr, fmt.Sprintf("% x", line.Bytes), styled)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write listing: %w", err)
	}
	return nil
}

// dumpRecords spews the raw decode records for decoder debugging.
func dumpRecords(isa rvdasm.ISA, pc uint64, code []byte, n int) error {
	bw := bufio.NewWriter(os.Stdout)
	s := rvdasm.NewScanner(isa, pc, code)
	for n > 0 && s.Scan() {
		spew.Fdump(bw, s.Inst())
		n--
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write records: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "rvdasm: %v\n", err)
		os.Exit(1)
	}
}
