// assembler.go

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

LC-3 Assembler - two-pass assembler for the LC-3 16-bit instruction set
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later

Object image: big-endian 16-bit words, no header. The first word is the
origin, the rest are loaded from the origin upwards.

Assembler Syntax (case-insensitive mnemonics, directives and labels):

  Directives:
    .ORIG addr            - load address, must be the first statement
    .FILL value           - one word: literal, LABEL or LABEL+/-n
    .BLKW n               - n zero words
    .STRINGZ "text"       - one word per character plus a zero word
    .END                  - end of program; later lines are ignored

  Literals:
    x3000, x-1            - hex
    #10, #-5, 10          - decimal

  Registers: R0-R7
  Branches:  BR, BRn, BRz, BRp, BRnz, BRnp, BRzp, BRnzp
  Traps:     GETC OUT PUTS IN PUTSP HALT, or TRAP x25

  Comments run from ';' to the end of the line, quotes included.
*/

package assembler

import (
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"
)

// Record is one statement kept by pass 1, in source order.
type Record struct {
	Line     int    // 1-based source line
	Address  uint16 // load address of the first word
	Op       Opcode
	Mnemonic string   // upper-cased leading word, e.g. BRNZ
	Operands []string // raw operand words
	Text     string   // decoded .STRINGZ literal
	Source   string   // statement with the comment stripped
}

// Program is the result of a successful assembly.
type Program struct {
	Origin  uint16
	Words   []uint16 // origin word first
	Symbols *SymbolTable
	Records []Record
}

// Bytes is the object image.
func (p *Program) Bytes() []byte {
	return PackWords(p.Words)
}

// WriteTo writes the object image to w.
func (p *Program) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.Bytes())
	return int64(n), err
}

// Assembler holds the state of one assembly run. Instances share nothing,
// so separate instances may assemble concurrently.
type Assembler struct {
	symbols     *SymbolTable
	origin      int
	pc          int
	listingMode bool
	listing     []string
	warnings    []string
}

// NewAssembler creates a new assembler instance.
func NewAssembler() *Assembler {
	return &Assembler{symbols: NewSymbolTable()}
}

// SetListingMode enables or disables listing output.
func (a *Assembler) SetListingMode(enabled bool) {
	a.listingMode = enabled
}

// GetListing returns the assembly listing lines.
func (a *Assembler) GetListing() []string {
	return a.listing
}

// GetWarnings returns any warnings generated during assembly.
func (a *Assembler) GetWarnings() []string {
	return a.warnings
}

func (a *Assembler) addWarning(format string, args ...interface{}) {
	a.warnings = append(a.warnings, fmt.Sprintf(format, args...))
}

func (a *Assembler) addListing(rec *Record, words []uint16) {
	if !a.listingMode {
		return
	}
	src := fmt.Sprintf("(%4d) %s", rec.Line, rec.Source)
	if len(words) == 0 {
		a.listing = append(a.listing, fmt.Sprintf("%31s%s", "", src))
		return
	}
	for i, w := range words {
		line := fmt.Sprintf("(%04X) %04X  %016b  %s", uint16(int(rec.Address)+i), w, w, src)
		a.listing = append(a.listing, strings.TrimRight(line, " "))
		src = ""
	}
}

// Assemble translates source into an object program. It stops at the first
// error; no partial program is returned.
func (a *Assembler) Assemble(source string) (*Program, error) {
	a.symbols = NewSymbolTable()
	a.origin = 0
	a.pc = 0
	a.listing = nil
	a.warnings = nil

	records, err := a.pass1(sourceLines(source))
	if err != nil {
		return nil, err
	}
	words, err := a.pass2(records)
	if err != nil {
		return nil, err
	}
	if glog.V(1) {
		for _, w := range a.warnings {
			glog.Info(w)
		}
	}
	return &Program{
		Origin:  uint16(a.origin),
		Words:   words,
		Symbols: a.symbols,
		Records: records,
	}, nil
}

// AssembleReader reads all of r and assembles it.
func (a *Assembler) AssembleReader(r io.Reader) (*Program, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}
	return a.Assemble(string(src))
}

// Assemble is a shorthand for NewAssembler().Assemble(source).
func Assemble(source string) (*Program, error) {
	return NewAssembler().Assemble(source)
}
