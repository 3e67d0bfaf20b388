// roundtrip_test.go

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package assembler

import (
	"fmt"
	"testing"
)

// fields splits a machine word along the documented layouts. Only the
// fields relevant to the opcode under test are meaningful.
type fields struct {
	op      int
	r1      int // DR / SR / n z p
	r2      int // SR1 / BaseR
	mode    int // bit 5
	r3      int // SR2
	imm5    int
	off6    int
	off9    int
	off11   int
	trapvec int
	jsrBit  int
}

func decodeFields(w uint16) fields {
	return fields{
		op:      int(w >> 12),
		r1:      int(w>>9) & 7,
		r2:      int(w>>6) & 7,
		mode:    int(w>>5) & 1,
		r3:      int(w) & 7,
		imm5:    SignExtend(w, 5),
		off6:    SignExtend(w, 6),
		off9:    SignExtend(w, 9),
		off11:   SignExtend(w, 11),
		trapvec: int(w) & 0xFF,
		jsrBit:  int(w>>11) & 1,
	}
}

func TestRoundTrip_Operate(t *testing.T) {
	ops := map[string]int{"ADD": 0b0001, "AND": 0b0101}
	for name, opcode := range ops {
		for dr := 0; dr < 8; dr++ {
			for sr := 0; sr < 8; sr += 3 {
				for imm := -16; imm < 16; imm++ {
					w := encodeOne(t, fmt.Sprintf("%s R%d, R%d, #%d", name, dr, sr, imm))
					f := decodeFields(w)
					if f.op != opcode || f.r1 != dr || f.r2 != sr || f.mode != 1 || f.imm5 != imm {
						t.Fatalf("%s R%d,R%d,#%d decoded as %+v", name, dr, sr, imm, f)
					}
				}
				sr2 := (dr + sr) & 7
				w := encodeOne(t, fmt.Sprintf("%s R%d, R%d, R%d", name, dr, sr, sr2))
				f := decodeFields(w)
				if f.op != opcode || f.r1 != dr || f.r2 != sr || f.mode != 0 || f.r3 != sr2 || (w>>3)&3 != 0 {
					t.Fatalf("%s R%d,R%d,R%d decoded as %+v", name, dr, sr, sr2, f)
				}
			}
		}
	}
}

func TestRoundTrip_PCOffset9(t *testing.T) {
	ops := map[string]int{"LD": 0b0010, "LDI": 0b1010, "LEA": 0b1110, "ST": 0b0011, "STI": 0b1011}
	for name, opcode := range ops {
		for _, off := range []int{-256, -255, -2, -1, 0, 1, 2, 100, 255} {
			reg := (off & 7)
			w := encodeOne(t, fmt.Sprintf("%s R%d, #%d", name, reg, off))
			f := decodeFields(w)
			if f.op != opcode || f.r1 != reg || f.off9 != off {
				t.Errorf("%s R%d,#%d decoded as op=%04b r=%d off=%d", name, reg, off, f.op, f.r1, f.off9)
			}
		}
	}
}

func TestRoundTrip_BaseOffset6(t *testing.T) {
	ops := map[string]int{"LDR": 0b0110, "STR": 0b0111}
	for name, opcode := range ops {
		for off := -32; off < 32; off++ {
			reg, base := off&7, (off>>3)&7
			w := encodeOne(t, fmt.Sprintf("%s R%d, R%d, #%d", name, reg, base, off))
			f := decodeFields(w)
			if f.op != opcode || f.r1 != reg || f.r2 != base || f.off6 != off {
				t.Fatalf("%s R%d,R%d,#%d decoded as %+v", name, reg, base, off, f)
			}
		}
	}
}

func TestRoundTrip_Branch(t *testing.T) {
	conds := []string{"", "n", "z", "p", "nz", "np", "zp", "nzp"}
	for _, c := range conds {
		n, z, p := branchFlags("BR" + c)
		for _, off := range []int{-256, -1, 0, 1, 255} {
			w := encodeOne(t, fmt.Sprintf("BR%s #%d", c, off))
			f := decodeFields(w)
			if f.op != 0 || f.r1 != n<<2|z<<1|p || f.off9 != off {
				t.Errorf("BR%s #%d decoded as nzp=%03b off=%d", c, off, f.r1, f.off9)
			}
		}
	}
}

func TestRoundTrip_Jumps(t *testing.T) {
	for r := 0; r < 8; r++ {
		for name, opcode := range map[string]int{"JMP": 0b1100, "JSRR": 0b0100} {
			w := encodeOne(t, fmt.Sprintf("%s R%d", name, r))
			f := decodeFields(w)
			if f.op != opcode || f.r1 != 0 || f.r2 != r || w&0x3F != 0 {
				t.Errorf("%s R%d decoded as %+v", name, r, f)
			}
		}
	}
	for _, off := range []int{-1024, -1, 0, 1, 1023} {
		w := encodeOne(t, fmt.Sprintf("JSR #%d", off))
		f := decodeFields(w)
		if f.op != 0b0100 || f.jsrBit != 1 || f.off11 != off {
			t.Errorf("JSR #%d decoded as %+v", off, f)
		}
	}
}

func TestRoundTrip_NotAndTrap(t *testing.T) {
	for dr := 0; dr < 8; dr++ {
		sr := 7 - dr
		w := encodeOne(t, fmt.Sprintf("NOT R%d, R%d", dr, sr))
		f := decodeFields(w)
		if f.op != 0b1001 || f.r1 != dr || f.r2 != sr || w&0x3F != 0x3F {
			t.Errorf("NOT R%d,R%d decoded as %+v", dr, sr, f)
		}
	}
	for vec := 0; vec < 256; vec++ {
		w := encodeOne(t, fmt.Sprintf("TRAP x%X", vec))
		f := decodeFields(w)
		if f.op != 0b1111 || (w>>8)&0xF != 0 || f.trapvec != vec {
			t.Fatalf("TRAP x%X decoded as %+v", vec, f)
		}
	}
}

func TestRoundTrip_LabelOffsets(t *testing.T) {
	// Every PC-relative reference must land on the label it names:
	// target = address + 1 + offset.
	src := `
	.ORIG x3000
TOP	LD  R1, BOTTOM
	BRnp TOP
	JSR BOTTOM
	LEA R2, TOP
	.BLKW 20
BOTTOM	RET
	.END
`
	prog := assembleString(t, src)
	top, _ := prog.Symbols.Lookup("TOP")
	bottom, _ := prog.Symbols.Lookup("BOTTOM")
	checks := []struct {
		idx    int
		target uint16
		width  int
	}{
		{1, bottom, 9},
		{2, top, 9},
		{3, bottom, 11},
		{4, top, 9},
	}
	for _, c := range checks {
		addr := int(prog.Origin) + c.idx - 1
		off := SignExtend(prog.Words[c.idx], c.width)
		if got := addr + 1 + off; got != int(c.target) {
			t.Errorf("word %d at x%04X reaches x%04X, want x%04X", c.idx, addr, got, c.target)
		}
	}
}
