package riscv

import "testing"

func FuzzDecode(f *testing.F) {
	seeds := [][]byte{
		{},
		{0x13},
		{0x7f},
		{0x13, 0x00, 0x00, 0x00},
		{0x01, 0x00},
		{0x73, 0x00, 0x10, 0x00},
		{0x67, 0x80, 0x10, 0x00},
		{0x2f, 0x35, 0xb6, 0xe6},
		{0xef, 0x00, 0x80, 0x00, 0x2e, 0x85, 0x82, 0x80},
		{0x1f, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x3f, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0xff, 0xff},
	}
	for _, seed := range seeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, code []byte) {
		// Decoding and rendering arbitrary bytes should not panic, and
		// a scan should account for every byte exactly once.
		for isa := RV32; isa <= RV128; isa++ {
			in, n := Decode(isa, 0x1000, code)
			if n < 0 || n > len(code) {
				t.Fatalf("Decode(%s): consumed %d of %d bytes", isa, n, len(code))
			}
			if n%2 != 0 {
				t.Fatalf("Decode(%s): odd byte count %d", isa, n)
			}
			if in.String() == "" {
				t.Fatalf("Decode(%s): empty rendering", isa)
			}

			s := NewScanner(isa, 0x1000, code)
			total := 0
			for s.Scan() {
				step := len(s.Bytes())
				if step <= 0 {
					t.Fatalf("Scan(%s): empty step at offset %d", isa, total)
				}
				total += step
				if s.Inst().String() == "" {
					t.Fatalf("Scan(%s): empty rendering at offset %d", isa, total)
				}
			}
			if total != len(code) {
				t.Fatalf("Scan(%s): consumed %d of %d bytes", isa, total, len(code))
			}
		}
	})
}
