// Package monitor renders disassembly listings from a memory image.
package monitor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/betrusted-io/rvdasm/internal/riscv"
)

// maxInstBytes is the longest encoding the decoder recognizes.
const maxInstBytes = 8

// ErrShortRead reports that no instruction bytes could be read at the
// requested address.
var ErrShortRead = errors.New("monitor: short read")

// Line is one row of a listing: the instruction address, the bytes it
// occupies in memory order, and the rendered text.
type Line struct {
	Addr   uint64
	Bytes  []byte
	Text   string
	Length int
}

// String formats the line without column padding. Lister.List pads the
// hex column so consecutive lines align.
func (l Line) String() string {
	return fmt.Sprintf("%x:  %s  %s", l.Addr, hexBytes(l.Bytes), l.Text)
}

func hexBytes(b []byte) string {
	var sb strings.Builder
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", c)
	}
	return sb.String()
}

// Lister disassembles instructions out of an addressable memory image.
// The address passed to List doubles as the pc for target glosses, so
// the ReaderAt must map absolute addresses.
type Lister struct {
	isa    riscv.ISA
	mem    io.ReaderAt
	logger *slog.Logger
	width  int
}

// NewLister returns a Lister reading code for the given width from mem.
func NewLister(isa riscv.ISA, mem io.ReaderAt, opts ...Option) *Lister {
	cfg := parseListerOptions(opts)
	return &Lister{
		isa:    isa,
		mem:    mem,
		logger: cfg.logger,
		width:  cfg.width,
	}
}

// Lines decodes up to n instructions starting at addr. A read that
// ends early lists what arrived; bytes that do not decode come back as
// illegal lines so the walk can resynchronize past them.
func (l *Lister) Lines(addr uint64, n int) ([]Line, error) {
	if n <= 0 {
		return nil, nil
	}
	buf := make([]byte, n*maxInstBytes)
	got, err := l.mem.ReadAt(buf, int64(addr))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("monitor: read %#x: %w", addr, err)
	}
	if got == 0 {
		return nil, fmt.Errorf("monitor: read %#x: %w", addr, ErrShortRead)
	}

	l.logger.Debug("listing",
		slog.String("isa", l.isa.String()),
		slog.Uint64("addr", addr),
		slog.Int("count", n))

	lines := make([]Line, 0, n)
	s := riscv.NewScanner(l.isa, addr, buf[:got])
	for len(lines) < n && s.Scan() {
		in := s.Inst()
		raw := s.Bytes()
		lines = append(lines, Line{
			Addr:   in.PC,
			Bytes:  append([]byte(nil), raw...),
			Text:   in.String(),
			Length: len(raw),
		})
	}
	return lines, nil
}

// List writes up to n instructions starting at addr to w, one listing
// line each: address, instruction bytes, text.
func (l *Lister) List(w io.Writer, addr uint64, n int) error {
	lines, err := l.Lines(addr, n)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	pad := l.width*3 - 1
	for _, line := range lines {
		if _, err := fmt.Fprintf(bw, "%8x:  %-*s  %s\n", line.Addr, pad, hexBytes(line.Bytes), line.Text); err != nil {
			return fmt.Errorf("monitor: write listing: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("monitor: write listing: %w", err)
	}
	return nil
}

// Disassemble decodes up to n instructions from mem starting at addr.
func Disassemble(isa riscv.ISA, mem io.ReaderAt, addr uint64, n int) ([]Line, error) {
	return NewLister(isa, mem).Lines(addr, n)
}
