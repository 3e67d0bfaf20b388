// symbols.go

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
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Symbol is a label bound to an absolute address.
type Symbol struct {
	Name    string
	Address uint16
}

// SymbolTable maps upper-cased label names to absolute addresses. Each
// label may be defined once.
type SymbolTable struct {
	addrs map[string]uint16
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{addrs: make(map[string]uint16)}
}

// Define binds name to addr.
func (s *SymbolTable) Define(name string, addr uint16) error {
	key := strings.ToUpper(name)
	if prev, exists := s.addrs[key]; exists {
		return fmt.Errorf("%w %q (already defined at x%04X)", ErrDuplicateLabel, key, prev)
	}
	s.addrs[key] = addr
	return nil
}

// Lookup finds name regardless of case.
func (s *SymbolTable) Lookup(name string) (uint16, bool) {
	addr, ok := s.addrs[strings.ToUpper(name)]
	return addr, ok
}

func (s *SymbolTable) Len() int {
	return len(s.addrs)
}

// Symbols returns every symbol ordered by address, then name.
func (s *SymbolTable) Symbols() []Symbol {
	out := make([]Symbol, 0, len(s.addrs))
	for name, addr := range s.addrs {
		out = append(out, Symbol{Name: name, Address: addr})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Address != out[j].Address {
			return out[i].Address < out[j].Address
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// WriteTo writes the table in the .sym layout used by the classic LC-3
// tools.
func (s *SymbolTable) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	fmt.Fprintf(bw, "// Symbol table\n")
	fmt.Fprintf(bw, "// Scope level 0:\n")
	fmt.Fprintf(bw, "//\tSymbol Name       Page Address\n")
	fmt.Fprintf(bw, "//\t----------------  ------------\n")
	for _, sym := range s.Symbols() {
		fmt.Fprintf(bw, "//\t%-16s  %04X\n", sym.Name, sym.Address)
	}
	fmt.Fprintln(bw)
	err := bw.Flush()
	return cw.n, err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
