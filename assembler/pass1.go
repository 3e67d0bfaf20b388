// pass1.go

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
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/golang/glog"
)

// addressSpace is one past the highest LC-3 address.
const addressSpace = 1 << WordBits

type pass1State int

const (
	stateExpectOrigin pass1State = iota
	stateInBody
	stateDone
)

// pass1 walks the source once, binding labels to absolute addresses and
// collecting the records pass 2 encodes. It returns as soon as it reaches
// .END; anything after it is never read.
func (a *Assembler) pass1(lines []string) ([]Record, error) {
	state := stateExpectOrigin
	var records []Record
	emitted := 0 // words after the origin word
	lastLine := 0

	for i, raw := range lines {
		lineNo := i + 1
		source := strings.TrimSpace(StripComment(raw))
		words := SplitWords(source)
		if len(words) == 0 {
			continue
		}
		lastLine = lineNo
		addr := a.origin + emitted

		if Classify(words[0]).Kind == TokenLabel {
			if state == stateExpectOrigin {
				return nil, lineError(lineNo, fmt.Errorf("%w: label %q comes first", ErrMissingOrigin, words[0]))
			}
			if addr >= addressSpace {
				return nil, lineError(lineNo, fmt.Errorf("label %q lies past xFFFF: %w",
					words[0], &RangeError{Value: addr, Width: WordBits}))
			}
			if err := a.symbols.Define(words[0], uint16(addr)); err != nil {
				return nil, lineError(lineNo, err)
			}
			glog.V(2).Infof("LINE %d: %s = x%04X", lineNo, strings.ToUpper(words[0]), addr)
			words = words[1:]
			if len(words) == 0 {
				continue
			}
		}

		op, ok := lookupMnemonic(words[0])
		if !ok {
			if state == stateExpectOrigin {
				return nil, lineError(lineNo, fmt.Errorf("%w: got %q", ErrMissingOrigin, words[0]))
			}
			return nil, lineError(lineNo, fmt.Errorf("%w: %q", ErrUnknownOpcode, words[0]))
		}
		rec := Record{
			Line:     lineNo,
			Address:  uint16(addr),
			Op:       op,
			Mnemonic: strings.ToUpper(words[0]),
			Operands: words[1:],
			Source:   source,
		}

		if state == stateExpectOrigin {
			if op != PseudoORIG {
				return nil, lineError(lineNo, fmt.Errorf("%w: got %s", ErrMissingOrigin, rec.Mnemonic))
			}
			origin, err := a.immediateOperand(&rec, 0)
			if err == nil {
				err = checkRange(origin, WordBits, false)
			}
			if err != nil {
				return nil, lineError(lineNo, err)
			}
			a.origin = origin
			rec.Address = uint16(origin)
			a.checkOperandCount(&rec)
			records = append(records, rec)
			state = stateInBody
			continue
		}

		size := 1
		switch op {
		case PseudoORIG:
			return nil, lineError(lineNo, ErrDuplicateOrigin)
		case PseudoEND:
			state = stateDone
		case PseudoBLKW:
			n, err := a.blockSize(&rec)
			if err != nil {
				return nil, lineError(lineNo, err)
			}
			size = n
		case PseudoSTRINGZ:
			lit, err := a.operand(&rec, 0)
			if err != nil {
				return nil, lineError(lineNo, err)
			}
			text, err := parseStringLiteral(lit)
			if err != nil {
				return nil, lineError(lineNo, err)
			}
			rec.Text = text
			size = utf8.RuneCountInString(text) + 1
		}
		if state == stateDone {
			break
		}

		if end := addr + size; end > addressSpace {
			return nil, lineError(lineNo, fmt.Errorf("program runs past xFFFF: %w",
				&RangeError{Value: end - 1, Width: WordBits}))
		}
		a.checkOperandCount(&rec)
		records = append(records, rec)
		emitted += size
	}

	switch state {
	case stateExpectOrigin:
		return nil, lineError(lastLine, ErrMissingOrigin)
	case stateInBody:
		return nil, lineError(lastLine, ErrMissingEnd)
	}
	glog.V(1).Infof("pass 1: origin x%04X, %d records, %d words, %d symbols",
		a.origin, len(records), emitted+1, a.symbols.Len())
	return records, nil
}

// checkOperandCount warns about operands the encoder will never read.
func (a *Assembler) checkOperandCount(rec *Record) {
	want := opcodeTable[rec.Op].operands
	if len(rec.Operands) > want {
		a.addWarning("LINE %d: %s takes %d operand(s), ignoring %s",
			rec.Line, rec.Mnemonic, want, strings.Join(rec.Operands[want:], ", "))
	}
}

// parseStringLiteral decodes a single or double quoted literal. Escapes
// follow the classic LC-3 toolchain, which reads literals with Python rules:
// \ooo takes one to three octal digits, \x, \u and \U take exactly two,
// four and eight hex digits, and an unknown escape keeps its backslash.
func parseStringLiteral(lit string) (string, error) {
	bad := fmt.Errorf("%w: %s", ErrBadString, lit)
	if len(lit) < 2 {
		return "", bad
	}
	quote := lit[0]
	if (quote != '"' && quote != '\'') || lit[len(lit)-1] != quote {
		return "", bad
	}
	body := lit[1 : len(lit)-1]

	var sb strings.Builder
	for i := 0; i < len(body); {
		c := body[i]
		if c == quote {
			return "", bad
		}
		if c != '\\' {
			r, size := utf8.DecodeRuneInString(body[i:])
			sb.WriteRune(r)
			i += size
			continue
		}
		if i+1 == len(body) {
			return "", bad
		}
		e := body[i+1]
		i += 2
		switch e {
		case '\\', '\'', '"':
			sb.WriteByte(e)
		case 'a':
			sb.WriteByte('\a')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case 'v':
			sb.WriteByte('\v')
		case '0', '1', '2', '3', '4', '5', '6', '7':
			v := int(e - '0')
			for n := 1; n < 3 && i < len(body) && body[i] >= '0' && body[i] <= '7'; n++ {
				v = v*8 + int(body[i]-'0')
				i++
			}
			sb.WriteRune(rune(v))
		case 'x', 'u', 'U':
			width := 2
			switch e {
			case 'u':
				width = 4
			case 'U':
				width = 8
			}
			if i+width > len(body) {
				return "", bad
			}
			digits := body[i : i+width]
			for j := 0; j < width; j++ {
				if !isHexDigit(digits[j]) {
					return "", bad
				}
			}
			v, err := strconv.ParseUint(digits, 16, 32)
			if err != nil || v > utf8.MaxRune {
				return "", bad
			}
			sb.WriteRune(rune(v))
			i += width
		default:
			// Unknown escape: the backslash is kept and the next
			// character is read again as an ordinary one.
			sb.WriteByte('\\')
			i--
		}
	}
	return sb.String(), nil
}
