// codec.go

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
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// WordBits is the width of an LC-3 machine word.
const WordBits = 16

// checkRange reports whether value fits a width-bit field.
func checkRange(value, width int, signed bool) error {
	if width < 1 || width > 32 {
		return fmt.Errorf("bad field width %d", width)
	}
	if signed {
		limit := 1 << (width - 1)
		if value < -limit || value >= limit {
			return &RangeError{Value: value, Width: width, Signed: true}
		}
		return nil
	}
	if value < 0 || value >= 1<<width {
		return &RangeError{Value: value, Width: width}
	}
	return nil
}

// IntToBinary renders value as a width-bit two's complement string of '0'
// and '1'. Out of range values are an error, never truncated.
func IntToBinary(value, width int, signed bool) (string, error) {
	if err := checkRange(value, width, signed); err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.Grow(width)
	for i := width - 1; i >= 0; i-- {
		if (value>>uint(i))&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String(), nil
}

// BinaryToWord converts a 16 character bit string back to a machine word.
func BinaryToWord(bits string) (uint16, error) {
	if len(bits) != WordBits {
		return 0, fmt.Errorf("machine word %q is %d bits, want %d", bits, len(bits), WordBits)
	}
	v, err := strconv.ParseUint(bits, 2, WordBits)
	if err != nil {
		return 0, fmt.Errorf("machine word %q: %w", bits, err)
	}
	return uint16(v), nil
}

// WordToBinary is the canonical 16 character form of w.
func WordToBinary(w uint16) string {
	return fmt.Sprintf("%016b", w)
}

// SignExtend interprets the low width bits of v as a signed field.
func SignExtend(v uint16, width int) int {
	shift := 32 - width
	return int(int32(uint32(v)<<shift) >> shift)
}

// PackWords lays words out big-endian, two bytes each.
func PackWords(words []uint16) []byte {
	out := make([]byte, 2*len(words))
	for i, w := range words {
		binary.BigEndian.PutUint16(out[2*i:], w)
	}
	return out
}

// UnpackWords is the inverse of PackWords.
func UnpackWords(data []byte) ([]uint16, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("object image has odd length %d", len(data))
	}
	words := make([]uint16, len(data)/2)
	for i := range words {
		words[i] = binary.BigEndian.Uint16(data[2*i:])
	}
	return words, nil
}

// bitString accumulates the fields of one machine word, MSB first. The first
// failure sticks and is returned by word.
type bitString struct {
	sb  strings.Builder
	err error
}

func newBitString(prefix string) *bitString {
	b := &bitString{}
	b.sb.Grow(WordBits)
	b.sb.WriteString(prefix)
	return b
}

func (b *bitString) lit(bits string) {
	if b.err == nil {
		b.sb.WriteString(bits)
	}
}

func (b *bitString) field(value, width int, signed bool) {
	if b.err != nil {
		return
	}
	bits, err := IntToBinary(value, width, signed)
	if err != nil {
		b.err = err
		return
	}
	b.sb.WriteString(bits)
}

func (b *bitString) signed(value, width int)   { b.field(value, width, true) }
func (b *bitString) unsigned(value, width int) { b.field(value, width, false) }

func (b *bitString) word() (uint16, error) {
	if b.err != nil {
		return 0, b.err
	}
	return BinaryToWord(b.sb.String())
}

// words wraps word for encoders that return a slice.
func (b *bitString) words() ([]uint16, error) {
	w, err := b.word()
	if err != nil {
		return nil, err
	}
	return []uint16{w}, nil
}
