// resolve.go

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
	"errors"
	"fmt"
)

// operand returns the i'th operand of rec.
func (a *Assembler) operand(rec *Record, i int) (string, error) {
	if i >= len(rec.Operands) {
		return "", fmt.Errorf("%w: %s expects %d operand(s), got %d",
			ErrMissingOperand, rec.Mnemonic, i+1, len(rec.Operands))
	}
	return rec.Operands[i], nil
}

func (a *Assembler) registerOperand(rec *Record, i int) (int, error) {
	word, err := a.operand(rec, i)
	if err != nil {
		return 0, err
	}
	return register(word)
}

func register(word string) (int, error) {
	reg, ok := parseRegister(word)
	if !ok {
		return 0, fmt.Errorf("%w: expect a register but get %q", ErrBadOperand, word)
	}
	return reg, nil
}

func (a *Assembler) immediateOperand(rec *Record, i int) (int, error) {
	word, err := a.operand(rec, i)
	if err != nil {
		return 0, err
	}
	return immediate(word)
}

func immediate(word string) (int, error) {
	v, ok := parseImmediate(word)
	if !ok {
		return 0, fmt.Errorf("%w: expect an immediate value but get %q", ErrBadOperand, word)
	}
	return v, nil
}

// address resolves a label, a label expression or a literal to a value.
func (a *Assembler) address(word string) (int, error) {
	switch tok := Classify(word); tok.Kind {
	case TokenLabel:
		addr, ok := a.symbols.Lookup(word)
		if !ok {
			return 0, fmt.Errorf("%w %q", ErrUndefinedLabel, word)
		}
		return int(addr), nil
	case TokenLabelExpr:
		label, offset, _ := splitLabelExpr(word)
		addr, ok := a.symbols.Lookup(label)
		if !ok {
			return 0, fmt.Errorf("%w %q", ErrUndefinedLabel, word)
		}
		return int(addr) + offset, nil
	}
	return immediate(word)
}

// offset turns a literal or a resolved address into an offset from the
// current program counter.
func (a *Assembler) offset(word string) (int, error) {
	if v, ok := parseImmediate(word); ok {
		return v, nil
	}
	addr, err := a.address(word)
	if err != nil {
		if errors.Is(err, ErrUndefinedLabel) {
			return 0, fmt.Errorf("%w: %q is not a valid label or immediate", ErrUndefinedLabel, word)
		}
		return 0, fmt.Errorf("%w: %q is not a valid label or immediate", ErrBadOperand, word)
	}
	return addr - a.pc, nil
}

// blockSize is the word count of a .BLKW statement.
func (a *Assembler) blockSize(rec *Record) (int, error) {
	n, err := a.immediateOperand(rec, 0)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: .BLKW count %d is negative", ErrBadOperand, n)
	}
	return n, nil
}
