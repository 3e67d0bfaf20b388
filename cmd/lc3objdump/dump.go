package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"

	"github.com/intuitionamiga/lc3as/assembler"
)

type dumpMode int

const (
	modeTable dumpMode = iota // ADDR  HEX  BITS  CHAR
	modeWords                 // one hex word per line
	modeRaw                   // pp structure dump
)

// Image is a decoded object file: the load address and the words placed
// from it onward.
type Image struct {
	Origin uint16
	Words  []uint16
}

// ParseImage decodes a big-endian object image. The first word is the
// origin.
func ParseImage(data []byte) (*Image, error) {
	words, err := assembler.UnpackWords(data)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, errors.New("empty object image")
	}
	return &Image{Origin: words[0], Words: words[1:]}, nil
}

// Dumper prints object images.
type Dumper struct {
	mode dumpMode
}

// NewDumper creates a Dumper that prints the address table.
func NewDumper() *Dumper {
	return &Dumper{mode: modeTable}
}

func (d *Dumper) DumpFileFromPath(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	img, err := ParseImage(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return d.Dump(w, img)
}

func (d *Dumper) Dump(w io.Writer, img *Image) error {
	if d.mode == modeRaw {
		printer := pp.New()
		printer.SetOutput(w)
		printer.SetColoringEnabled(isTerminal(w))
		_, err := printer.Println(img)
		return err
	}

	bw := bufio.NewWriter(w)
	if d.mode == modeWords {
		fmt.Fprintf(bw, "%04X\n", img.Origin)
		for _, word := range img.Words {
			fmt.Fprintf(bw, "%04X\n", word)
		}
		return bw.Flush()
	}

	fmt.Fprintf(bw, "; origin x%04X, %d word(s)\n", img.Origin, len(img.Words))
	for i, word := range img.Words {
		addr := uint16(int(img.Origin) + i)
		fmt.Fprintf(bw, "x%04X  x%04X  %s  %s\n", addr, word, assembler.WordToBinary(word), printable(word))
	}
	return bw.Flush()
}

// printable renders word as a quoted ASCII character, or "." when it is
// not a printable character.
func printable(word uint16) string {
	if word >= 0x20 && word < 0x7F {
		return fmt.Sprintf("'%c'", rune(word))
	}
	return "."
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
