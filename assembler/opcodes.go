// opcodes.go

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
	"strings"
)

// Opcode names every instruction and pseudo-op the assembler accepts.
type Opcode int

const (
	OpInvalid Opcode = iota
	OpADD
	OpAND
	OpBR
	OpJMP
	OpJSR
	OpJSRR
	OpLD
	OpLDI
	OpLDR
	OpLEA
	OpNOT
	OpRET
	OpRTI
	OpST
	OpSTI
	OpSTR
	OpTRAP

	// Trap aliases
	OpGETC
	OpOUT
	OpPUTS
	OpIN
	OpPUTSP
	OpHALT

	// Pseudo-ops
	PseudoORIG
	PseudoFILL
	PseudoBLKW
	PseudoSTRINGZ
	PseudoEND
)

// encodeFunc turns one record into its machine words. The assembler's
// program counter already points past the record's first word.
type encodeFunc func(a *Assembler, rec *Record) ([]uint16, error)

type opcodeInfo struct {
	pseudo   bool
	operands int
	encode   encodeFunc
}

var opcodeTable = [...]opcodeInfo{
	OpADD:  {operands: 3, encode: encodeOperate("0001")},
	OpAND:  {operands: 3, encode: encodeOperate("0101")},
	OpBR:   {operands: 1, encode: encodeBranch},
	OpJMP:  {operands: 1, encode: encodeBaseR("1100")},
	OpJSR:  {operands: 1, encode: encodeJSR},
	OpJSRR: {operands: 1, encode: encodeBaseR("0100")},
	OpLD:   {operands: 2, encode: encodePCOffset("0010")},
	OpLDI:  {operands: 2, encode: encodePCOffset("1010")},
	OpLDR:  {operands: 3, encode: encodeBaseOffset("0110")},
	OpLEA:  {operands: 2, encode: encodePCOffset("1110")},
	OpNOT:  {operands: 2, encode: encodeNOT},
	OpRET:  {encode: fixedWord("1100000111000000")},
	OpRTI:  {encode: fixedWord("1000000000000000")},
	OpST:   {operands: 2, encode: encodePCOffset("0011")},
	OpSTI:  {operands: 2, encode: encodePCOffset("1011")},
	OpSTR:  {operands: 3, encode: encodeBaseOffset("0111")},
	OpTRAP: {operands: 1, encode: encodeTRAP},

	OpGETC:  {encode: fixedWord("1111000000100000")},
	OpOUT:   {encode: fixedWord("1111000000100001")},
	OpPUTS:  {encode: fixedWord("1111000000100010")},
	OpIN:    {encode: fixedWord("1111000000100011")},
	OpPUTSP: {encode: fixedWord("1111000000100100")},
	OpHALT:  {encode: fixedWord("1111000000100101")},

	PseudoORIG:    {pseudo: true, operands: 1, encode: encodeORIG},
	PseudoFILL:    {pseudo: true, operands: 1, encode: encodeFILL},
	PseudoBLKW:    {pseudo: true, operands: 1, encode: encodeBLKW},
	PseudoSTRINGZ: {pseudo: true, operands: 1, encode: encodeSTRINGZ},
	PseudoEND:     {pseudo: true, encode: encodeEND},
}

// opcodeNames holds the mnemonic of every opcode. It is kept apart from
// opcodeTable because the encoders consult it through Classify.
var opcodeNames = [...]string{
	OpADD:  "ADD",
	OpAND:  "AND",
	OpBR:   "BR",
	OpJMP:  "JMP",
	OpJSR:  "JSR",
	OpJSRR: "JSRR",
	OpLD:   "LD",
	OpLDI:  "LDI",
	OpLDR:  "LDR",
	OpLEA:  "LEA",
	OpNOT:  "NOT",
	OpRET:  "RET",
	OpRTI:  "RTI",
	OpST:   "ST",
	OpSTI:  "STI",
	OpSTR:  "STR",
	OpTRAP: "TRAP",

	OpGETC:  "GETC",
	OpOUT:   "OUT",
	OpPUTS:  "PUTS",
	OpIN:    "IN",
	OpPUTSP: "PUTSP",
	OpHALT:  "HALT",

	PseudoORIG:    ".ORIG",
	PseudoFILL:    ".FILL",
	PseudoBLKW:    ".BLKW",
	PseudoSTRINGZ: ".STRINGZ",
	PseudoEND:     ".END",
}

func (op Opcode) String() string {
	if op > OpInvalid && int(op) < len(opcodeNames) {
		return opcodeNames[op]
	}
	return fmt.Sprintf("Opcode(%d)", int(op))
}

// IsPseudo reports whether op is an assembler directive.
func (op Opcode) IsPseudo() bool {
	return op > OpInvalid && int(op) < len(opcodeTable) && opcodeTable[op].pseudo
}

// opcodeByName finds the opcode spelled name, ignoring case.
func opcodeByName(name string) (Opcode, bool) {
	for op, n := range opcodeNames {
		if n != "" && strings.EqualFold(n, name) {
			return Opcode(op), true
		}
	}
	return OpInvalid, false
}

// lookupMnemonic maps the leading word of a statement to its opcode. Branch
// mnemonics with condition letters all map to OpBR.
func lookupMnemonic(word string) (Opcode, bool) {
	if isBranch(word) {
		return OpBR, true
	}
	return opcodeByName(word)
}
