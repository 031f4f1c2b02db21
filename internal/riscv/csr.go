package riscv

import "fmt"

// csrName returns the conventional name of a control and status
// register, or "" when the number has none. The renderer falls back
// to the hex number for unnamed CSRs.
func csrName(csr int32) string {
	switch {
	case csr >= 0x323 && csr <= 0x33f:
		return fmt.Sprintf("mhpmevent%d", csr-0x320)
	case csr >= 0x3b0 && csr <= 0x3bf:
		return fmt.Sprintf("pmpaddr%d", csr-0x3b0)
	case csr >= 0xb03 && csr <= 0xb1f:
		return fmt.Sprintf("mhpmcounter%d", csr-0xb00)
	case csr >= 0xb83 && csr <= 0xb9f:
		return fmt.Sprintf("mhpmcounter%dh", csr-0xb80)
	case csr >= 0xc03 && csr <= 0xc1f:
		return fmt.Sprintf("hpmcounter%d", csr-0xc00)
	case csr >= 0xc83 && csr <= 0xc9f:
		return fmt.Sprintf("hpmcounter%dh", csr-0xc80)
	}

	switch csr {
	case 0x000:
		return "ustatus"
	case 0x001:
		return "fflags"
	case 0x002:
		return "frm"
	case 0x003:
		return "fcsr"
	case 0x004:
		return "uie"
	case 0x005:
		return "utvec"
	case 0x040:
		return "uscratch"
	case 0x041:
		return "uepc"
	case 0x042:
		return "ucause"
	case 0x043:
		return "utval"
	case 0x044:
		return "uip"
	case 0x100:
		return "sstatus"
	case 0x102:
		return "sedeleg"
	case 0x103:
		return "sideleg"
	case 0x104:
		return "sie"
	case 0x105:
		return "stvec"
	case 0x106:
		return "scounteren"
	case 0x140:
		return "sscratch"
	case 0x141:
		return "sepc"
	case 0x142:
		return "scause"
	case 0x143:
		return "stval"
	case 0x144:
		return "sip"
	case 0x180:
		return "satp"
	case 0x200:
		return "hstatus"
	case 0x202:
		return "hedeleg"
	case 0x203:
		return "hideleg"
	case 0x204:
		return "hie"
	case 0x205:
		return "htvec"
	case 0x240:
		return "hscratch"
	case 0x241:
		return "hepc"
	case 0x242:
		return "hcause"
	case 0x243:
		return "hbadaddr"
	case 0x244:
		return "hip"
	case 0x300:
		return "mstatus"
	case 0x301:
		return "misa"
	case 0x302:
		return "medeleg"
	case 0x303:
		return "mideleg"
	case 0x304:
		return "mie"
	case 0x305:
		return "mtvec"
	case 0x306:
		return "mcounteren"
	case 0x340:
		return "mscratch"
	case 0x341:
		return "mepc"
	case 0x342:
		return "mcause"
	case 0x343:
		return "mtval"
	case 0x344:
		return "mip"
	case 0x380:
		return "mbase"
	case 0x381:
		return "mbound"
	case 0x382:
		return "mibase"
	case 0x383:
		return "mibound"
	case 0x384:
		return "mdbase"
	case 0x385:
		return "mdbound"
	case 0x3a0:
		return "pmpcfg0"
	case 0x3a1:
		return "pmpcfg1"
	case 0x3a2:
		return "pmpcfg2"
	case 0x3a3:
		return "pmpcfg3"
	case 0x7a0:
		return "tselect"
	case 0x7a1:
		return "tdata1"
	case 0x7a2:
		return "tdata2"
	case 0x7a3:
		return "tdata3"
	case 0x7b0:
		return "dcsr"
	case 0x7b1:
		return "dpc"
	case 0x7b2:
		return "dscratch"
	case 0xb00:
		return "mcycle"
	case 0xb02:
		return "minstret"
	case 0xb80:
		return "mcycleh"
	case 0xb82:
		return "minstreth"
	case 0xc00:
		return "cycle"
	case 0xc01:
		return "time"
	case 0xc02:
		return "instret"
	case 0xc80:
		return "cycleh"
	case 0xc81:
		return "timeh"
	case 0xc82:
		return "instreth"
	case 0xf11:
		return "mvendorid"
	case 0xf12:
		return "marchid"
	case 0xf13:
		return "mimpid"
	case 0xf14:
		return "mhartid"
	}
	return ""
}
