// encode.go

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

Encoding rules, MSB first:

  ADD/AND   op DR SR1 0 00 SR2  |  op DR SR1 1 imm5
  BR        0000 n z p PCoffset9
  JMP/JSRR  op 000 BaseR 000000
  JSR       0100 1 PCoffset11
  LD/LDI/LEA/ST/STI  op DR|SR PCoffset9
  LDR/STR   op DR|SR BaseR offset6
  NOT       1001 DR SR 111111
  TRAP      1111 0000 trapvect8
*/

package assembler

// encodeOperate handles ADD and AND in register and immediate form.
func encodeOperate(opcode string) encodeFunc {
	return func(a *Assembler, rec *Record) ([]uint16, error) {
		dr, err := a.registerOperand(rec, 0)
		if err != nil {
			return nil, err
		}
		sr1, err := a.registerOperand(rec, 1)
		if err != nil {
			return nil, err
		}
		src2, err := a.operand(rec, 2)
		if err != nil {
			return nil, err
		}
		w := newBitString(opcode)
		w.unsigned(dr, 3)
		w.unsigned(sr1, 3)
		if imm, ok := parseImmediate(src2); ok {
			w.lit("1")
			w.signed(imm, 5)
			return w.words()
		}
		sr2, err := register(src2)
		if err != nil {
			return nil, err
		}
		w.lit("000")
		w.unsigned(sr2, 3)
		return w.words()
	}
}

func encodeBranch(a *Assembler, rec *Record) ([]uint16, error) {
	target, err := a.operand(rec, 0)
	if err != nil {
		return nil, err
	}
	offset, err := a.offset(target)
	if err != nil {
		return nil, err
	}
	n, z, p := branchFlags(rec.Mnemonic)
	w := newBitString("0000")
	w.unsigned(n, 1)
	w.unsigned(z, 1)
	w.unsigned(p, 1)
	w.signed(offset, 9)
	return w.words()
}

// encodeBaseR handles JMP and JSRR.
func encodeBaseR(opcode string) encodeFunc {
	return func(a *Assembler, rec *Record) ([]uint16, error) {
		baseR, err := a.registerOperand(rec, 0)
		if err != nil {
			return nil, err
		}
		w := newBitString(opcode)
		w.lit("000")
		w.unsigned(baseR, 3)
		w.lit("000000")
		return w.words()
	}
}

func encodeJSR(a *Assembler, rec *Record) ([]uint16, error) {
	target, err := a.operand(rec, 0)
	if err != nil {
		return nil, err
	}
	offset, err := a.offset(target)
	if err != nil {
		return nil, err
	}
	w := newBitString("0100")
	w.lit("1")
	w.signed(offset, 11)
	return w.words()
}

// encodePCOffset handles LD, LDI, LEA, ST and STI.
func encodePCOffset(opcode string) encodeFunc {
	return func(a *Assembler, rec *Record) ([]uint16, error) {
		reg, err := a.registerOperand(rec, 0)
		if err != nil {
			return nil, err
		}
		target, err := a.operand(rec, 1)
		if err != nil {
			return nil, err
		}
		offset, err := a.offset(target)
		if err != nil {
			return nil, err
		}
		w := newBitString(opcode)
		w.unsigned(reg, 3)
		w.signed(offset, 9)
		return w.words()
	}
}

// encodeBaseOffset handles LDR and STR. The offset must be a literal.
func encodeBaseOffset(opcode string) encodeFunc {
	return func(a *Assembler, rec *Record) ([]uint16, error) {
		reg, err := a.registerOperand(rec, 0)
		if err != nil {
			return nil, err
		}
		baseR, err := a.registerOperand(rec, 1)
		if err != nil {
			return nil, err
		}
		offset, err := a.immediateOperand(rec, 2)
		if err != nil {
			return nil, err
		}
		w := newBitString(opcode)
		w.unsigned(reg, 3)
		w.unsigned(baseR, 3)
		w.signed(offset, 6)
		return w.words()
	}
}

func encodeNOT(a *Assembler, rec *Record) ([]uint16, error) {
	dr, err := a.registerOperand(rec, 0)
	if err != nil {
		return nil, err
	}
	sr, err := a.registerOperand(rec, 1)
	if err != nil {
		return nil, err
	}
	w := newBitString("1001")
	w.unsigned(dr, 3)
	w.unsigned(sr, 3)
	w.lit("111111")
	return w.words()
}

func encodeTRAP(a *Assembler, rec *Record) ([]uint16, error) {
	vect, err := a.immediateOperand(rec, 0)
	if err != nil {
		return nil, err
	}
	w := newBitString("1111")
	w.lit("0000")
	w.unsigned(vect, 8)
	return w.words()
}

// fixedWord is for instructions without operands.
func fixedWord(bits string) encodeFunc {
	return func(*Assembler, *Record) ([]uint16, error) {
		return newBitString(bits).words()
	}
}

func encodeORIG(a *Assembler, rec *Record) ([]uint16, error) {
	origin, err := a.immediateOperand(rec, 0)
	if err != nil {
		return nil, err
	}
	w := newBitString("")
	w.unsigned(origin, WordBits)
	return w.words()
}

func encodeFILL(a *Assembler, rec *Record) ([]uint16, error) {
	src, err := a.operand(rec, 0)
	if err != nil {
		return nil, err
	}
	value, err := a.address(src)
	if err != nil {
		return nil, err
	}
	w := newBitString("")
	w.unsigned(value, WordBits)
	return w.words()
}

func encodeBLKW(a *Assembler, rec *Record) ([]uint16, error) {
	n, err := a.blockSize(rec)
	if err != nil {
		return nil, err
	}
	return make([]uint16, n), nil
}

func encodeSTRINGZ(a *Assembler, rec *Record) ([]uint16, error) {
	out := make([]uint16, 0, len(rec.Text)+1)
	for _, r := range rec.Text {
		w := newBitString("")
		w.unsigned(int(r), WordBits)
		word, err := w.word()
		if err != nil {
			return nil, err
		}
		out = append(out, word)
	}
	return append(out, 0), nil
}

func encodeEND(*Assembler, *Record) ([]uint16, error) {
	return nil, nil
}
