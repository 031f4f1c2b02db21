package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/logrusorgru/aurora/v4"

	rvdasm "github.com/betrusted-io/rvdasm"
)

const replHelpMessage = `
Enter instruction bytes as hex to disassemble them at the current pc.
Commands are prefixed with a dot. Valid commands are:

.isa [WIDTH]  Show or set the register width (rv32, rv64 or rv128)
.pc [ADDR]    Show or set the address the next bytes decode at
.help         Print this help message
.exit         Exit the disassembler

Press ^C to abort the current line, ^D to exit`

const replAssistanceMessage = `Type '.help' for assistance.`

var replSuggestions = []prompt.Suggest{
	{Text: ".isa", Description: "Show or set the register width"},
	{Text: ".pc", Description: "Show or set the decode address"},
	{Text: ".help", Description: "Print the help message"},
	{Text: ".exit", Description: "Exit the disassembler"},
}

// replState carries the register width and decode address between
// input lines.
type replState struct {
	isa rvdasm.ISA
	pc  uint64
	au  *aurora.Aurora
}

func runREPL(isa rvdasm.ISA, pc uint64, useColor bool) error {
	st := &replState{
		isa: isa,
		pc:  pc,
		au:  aurora.New(aurora.WithColors(useColor)),
	}

	fmt.Printf("rvdasm %s interactive disassembler\n%s\n\n", st.isa, replAssistanceMessage)

	suggest := func(d prompt.Document) []prompt.Suggest {
		if len(d.GetWordBeforeCursor()) == 0 {
			return nil
		}
		return prompt.FilterHasPrefix(replSuggestions, d.GetWordBeforeCursor(), true)
	}

	prompt.New(st.execute, suggest, prompt.OptionPrefix("rvdasm> ")).Run()
	return nil
}

// execute handles one input line: a dot-command or hex instruction
// bytes to decode at the current pc.
func (st *replState) execute(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if strings.HasPrefix(line, ".") {
		st.command(line)
		return
	}

	code, err := parseHex(line)
	if err != nil {
		st.errorf("%v", err)
		return
	}

	s := rvdasm.NewScanner(st.isa, st.pc, code)
	consumed := 0
	for s.Scan() {
		in := s.Inst()
		fmt.Printf("%8x:  %-11s  %s\n", in.PC, fmt.Sprintf("% x", s.Bytes()), in)
		consumed += len(s.Bytes())
	}
	if consumed < len(code) {
		st.errorf("%d trailing bytes do not form an instruction", len(code)-consumed)
	}
	st.pc += uint64(consumed)
}

func (st *replState) command(cmd string) {
	name, arg, _ := strings.Cut(cmd, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case ".exit":
		os.Exit(0)
	case ".help":
		fmt.Println(replHelpMessage)
	case ".isa":
		if arg == "" {
			fmt.Println(st.isa)
			return
		}
		isa, err := rvdasm.ParseISA(arg)
		if err != nil {
			st.errorf("%v", err)
			return
		}
		st.isa = isa
	case ".pc":
		if arg == "" {
			fmt.Printf("%#x\n", st.pc)
			return
		}
		pc, err := strconv.ParseUint(arg, 0, 64)
		if err != nil {
			st.errorf("invalid address %q", arg)
			return
		}
		st.pc = pc
	default:
		st.errorf("unknown command %q. %s", name, replAssistanceMessage)
	}
}

func (st *replState) errorf(format string, args ...any) {
	fmt.Println(st.au.Red(fmt.Sprintf(format, args...)))
}
