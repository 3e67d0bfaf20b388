// tokenizer_test.go

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
	"reflect"
	"strings"
	"testing"
)

func TestStripComment(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ADD R1, R1, #1 ; increment", "ADD R1, R1, #1 "},
		{"; whole line", ""},
		{"HALT", "HALT"},
		{`.STRINGZ "a;b"`, `.STRINGZ "a`},
	}
	for _, tt := range tests {
		if got := StripComment(tt.in); got != tt.want {
			t.Errorf("StripComment(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   \t ", nil},
		{"ADD R1,R1,#1", []string{"ADD", "R1", "R1", "#1"}},
		{"LOOP\tADD  R0 , R0, #-1", []string{"LOOP", "ADD", "R0", "R0", "#-1"}},
		{`.STRINGZ "hello, world"`, []string{".STRINGZ", `"hello, world"`}},
		{`.STRINGZ 'a b'`, []string{".STRINGZ", `'a b'`}},
		{`.STRINGZ "say \"hi\", ok"`, []string{".STRINGZ", `"say \"hi\", ok"`}},
		{`.STRINGZ "open ended`, []string{".STRINGZ", `"open ended`}},
		{`A"b c"`, []string{`A"b`, `c"`}},
		{",,HALT,,", []string{"HALT"}},
	}
	for _, tt := range tests {
		if got := SplitWords(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitWords(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want TokenKind
	}{
		{"R0", TokenRegister},
		{"r7", TokenRegister},
		{"R8", TokenLabel},
		{"R10", TokenLabel},
		{"x3000", TokenImmediate},
		{"X-1F", TokenImmediate},
		{"x+a", TokenImmediate},
		{"#10", TokenImmediate},
		{"#-5", TokenImmediate},
		{"42", TokenImmediate},
		{"-3", TokenImmediate},
		{"x", TokenLabel},
		{"xG", TokenLabel},
		{"xABC", TokenImmediate},
		{"#", TokenOther},
		{"#x10", TokenOther},
		{"BRn", TokenBranch},
		{"brzp", TokenBranch},
		{"BrNzP", TokenBranch},
		{"BRnzpn", TokenLabel},
		{"BRq", TokenLabel},
		{"BR", TokenKeyword},
		{"add", TokenKeyword},
		{"HALT", TokenKeyword},
		{".orig", TokenKeyword},
		{".STRINGZ", TokenKeyword},
		{"LOOP+2", TokenLabelExpr},
		{"loop-x1", TokenLabelExpr},
		{"DATA+#-1", TokenLabelExpr},
		{"LOOP+", TokenOther},
		{"+2", TokenImmediate},
		{"LOOP", TokenLabel},
		{"my_label2", TokenLabel},
		{"_hidden", TokenOther},
		{"2fast", TokenOther},
		{".WORD", TokenOther},
		{`"text"`, TokenOther},
	}
	for _, tt := range tests {
		if got := Classify(tt.in); got.Kind != tt.want || got.Text != tt.in {
			t.Errorf("Classify(%q) = %v, want %v", tt.in, got.Kind, tt.want)
		}
	}
}

func TestParseImmediate(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"x3000", 0x3000},
		{"xffff", 0xFFFF},
		{"x-10", -16},
		{"#-16", -16},
		{"#+7", 7},
		{"15", 15},
		{"#0", 0},
	}
	for _, tt := range tests {
		got, ok := parseImmediate(tt.in)
		if !ok || got != tt.want {
			t.Errorf("parseImmediate(%q) = %d, %v, want %d", tt.in, got, ok, tt.want)
		}
	}
	for _, bad := range []string{"", "x", "#", "#-", "x3000garbage", "3x", "R1", "LOOP"} {
		if _, ok := parseImmediate(bad); ok {
			t.Errorf("parseImmediate(%q) accepted", bad)
		}
	}
}

func TestBranchFlags(t *testing.T) {
	tests := []struct {
		in      string
		n, z, p int
	}{
		{"BR", 1, 1, 1},
		{"BRN", 1, 0, 0},
		{"BRz", 0, 1, 0},
		{"brp", 0, 0, 1},
		{"BRnz", 1, 1, 0},
		{"BRzp", 0, 1, 1},
		{"BRNP", 1, 0, 1},
		{"BRnzp", 1, 1, 1},
	}
	for _, tt := range tests {
		n, z, p := branchFlags(tt.in)
		if n != tt.n || z != tt.z || p != tt.p {
			t.Errorf("branchFlags(%q) = %d%d%d, want %d%d%d", tt.in, n, z, p, tt.n, tt.z, tt.p)
		}
	}
}

func TestLookupMnemonic(t *testing.T) {
	tests := []struct {
		in   string
		want Opcode
	}{
		{"add", OpADD},
		{"BRnz", OpBR},
		{"BR", OpBR},
		{"putsp", OpPUTSP},
		{".fill", PseudoFILL},
		{".End", PseudoEND},
	}
	for _, tt := range tests {
		got, ok := lookupMnemonic(tt.in)
		if !ok || got != tt.want {
			t.Errorf("lookupMnemonic(%q) = %v, %v, want %v", tt.in, got, ok, tt.want)
		}
	}
	if _, ok := lookupMnemonic("MUL"); ok {
		t.Error("MUL accepted")
	}
	if !PseudoBLKW.IsPseudo() || OpADD.IsPseudo() {
		t.Error("IsPseudo wrong")
	}
	if OpJSRR.String() != "JSRR" || Opcode(999).String() != "Opcode(999)" {
		t.Error("Opcode.String wrong")
	}
}

func TestOpcodeTables(t *testing.T) {
	if len(opcodeNames) != len(opcodeTable) {
		t.Fatalf("%d names for %d opcodes", len(opcodeNames), len(opcodeTable))
	}
	for op := OpADD; int(op) < len(opcodeTable); op++ {
		if opcodeTable[op].encode == nil {
			t.Errorf("%v has no encoder", op)
		}
		name := op.String()
		for _, spelling := range []string{name, strings.ToLower(name)} {
			got, ok := opcodeByName(spelling)
			if !ok || got != op {
				t.Errorf("opcodeByName(%q) = %v, %v, want %v", spelling, got, ok, op)
			}
			if !isKeyword(spelling) {
				t.Errorf("%q is not a keyword", spelling)
			}
		}
	}
	if _, ok := opcodeByName(""); ok {
		t.Error("empty name matched an opcode")
	}
}
