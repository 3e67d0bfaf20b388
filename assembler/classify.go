// classify.go

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
	"math"
	"strconv"
	"strings"
)

// TokenKind is the lexical class of a word.
type TokenKind int

const (
	TokenOther     TokenKind = iota // matches no rule; rejected when encoded
	TokenRegister                   // R0-R7
	TokenImmediate                  // x1F, #-3, 12
	TokenBranch                     // BRn, BRzp, ...
	TokenKeyword                    // opcode or pseudo-op name
	TokenLabelExpr                  // LABEL+2, LABEL-x1
	TokenLabel                      // LOOP
)

var tokenKindNames = [...]string{
	TokenOther:     "other",
	TokenRegister:  "register",
	TokenImmediate: "immediate",
	TokenBranch:    "branch",
	TokenKeyword:   "keyword",
	TokenLabelExpr: "label expression",
	TokenLabel:     "label",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a classified word.
type Token struct {
	Text string
	Kind TokenKind
}

// Classify applies the lexical rules in precedence order: register,
// immediate, branch mnemonic, keyword, label expression, label.
func Classify(text string) Token {
	kind := TokenOther
	switch {
	case isRegister(text):
		kind = TokenRegister
	case isImmediate(text):
		kind = TokenImmediate
	case isBranch(text):
		kind = TokenBranch
	case isKeyword(text):
		kind = TokenKeyword
	case isLabelExpr(text):
		kind = TokenLabelExpr
	case isIdent(text):
		kind = TokenLabel
	}
	return Token{Text: text, Kind: kind}
}

func isRegister(s string) bool {
	return len(s) == 2 && (s[0] == 'R' || s[0] == 'r') && s[1] >= '0' && s[1] <= '7'
}

func parseRegister(s string) (int, bool) {
	if !isRegister(s) {
		return 0, false
	}
	return int(s[1] - '0'), true
}

func isImmediate(s string) bool {
	_, ok := parseImmediate(s)
	return ok
}

// parseImmediate accepts x/X followed by an optionally signed hex number, or
// an optional # followed by an optionally signed decimal number.
func parseImmediate(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	base := 10
	isDigit := isDecDigit
	switch s[0] {
	case 'x', 'X':
		base, isDigit = 16, isHexDigit
		s = s[1:]
	case '#':
		s = s[1:]
	}
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
	}
	v, err := strconv.ParseInt(s, base, 64)
	if err != nil || v > math.MaxInt32 {
		// Far outside every field; keep it out of range rather than wrapping.
		v = math.MaxInt32
	}
	if neg {
		v = -v
	}
	return int(v), true
}

func isDecDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDecDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isIdent is the label shape: a letter, then letters, digits or '_'.
func isIdent(s string) bool {
	if s == "" || !isLetter(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !isLetter(c) && !isDecDigit(c) && c != '_' {
			return false
		}
	}
	return true
}

// isBranch matches BR followed by one to three of n, z, p in any case.
// A bare BR is a keyword, not a branch mnemonic.
func isBranch(s string) bool {
	if len(s) < 3 || len(s) > 5 || !strings.EqualFold(s[:2], "BR") {
		return false
	}
	for i := 2; i < len(s); i++ {
		switch s[i] {
		case 'n', 'z', 'p', 'N', 'Z', 'P':
		default:
			return false
		}
	}
	return true
}

// branchFlags returns the n, z and p condition bits a branch mnemonic
// selects. Unconditional BR selects all three.
func branchFlags(mnemonic string) (n, z, p int) {
	conds := strings.ToUpper(mnemonic[2:])
	if conds == "" {
		return 1, 1, 1
	}
	if strings.ContainsRune(conds, 'N') {
		n = 1
	}
	if strings.ContainsRune(conds, 'Z') {
		z = 1
	}
	if strings.ContainsRune(conds, 'P') {
		p = 1
	}
	return n, z, p
}

func isKeyword(s string) bool {
	_, ok := opcodeByName(s)
	return ok
}

func isLabelExpr(s string) bool {
	_, _, ok := splitLabelExpr(s)
	return ok
}

// splitLabelExpr breaks LABEL+imm / LABEL-imm into the label and the signed
// offset.
func splitLabelExpr(s string) (label string, offset int, ok bool) {
	i := strings.IndexAny(s, "+-")
	if i < 1 {
		return "", 0, false
	}
	label = s[:i]
	if !isIdent(label) {
		return "", 0, false
	}
	offset, ok = parseImmediate(s[i+1:])
	if !ok {
		return "", 0, false
	}
	if s[i] == '-' {
		offset = -offset
	}
	return label, offset, true
}
