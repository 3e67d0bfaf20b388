// errors.go

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

// ErrorKind groups assembly failures by what went wrong.
type ErrorKind int

const (
	KindStructural ErrorKind = iota // program layout: .ORIG/.END, labels, unknown opcodes
	KindOperand                     // wrong token for a slot, bad string, unresolved label
	KindRange                       // value does not fit its bit field
	KindInternal                    // pass 1 and pass 2 disagree
)

func (k ErrorKind) String() string {
	switch k {
	case KindStructural:
		return "structural"
	case KindOperand:
		return "operand"
	case KindRange:
		return "range"
	case KindInternal:
		return "internal"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

var (
	ErrMissingOrigin   = errors.New("expect .ORIG but not found")
	ErrDuplicateOrigin = errors.New(".ORIG may appear only once")
	ErrMissingEnd      = errors.New("expect .END but not found")
	ErrDuplicateLabel  = errors.New("duplicate label")
	ErrUnknownOpcode   = errors.New("not a valid opcode or pseudo op")
	ErrUndefinedLabel  = errors.New("undefined label")
	ErrBadOperand      = errors.New("invalid operand")
	ErrMissingOperand  = errors.New("missing operand")
	ErrBadString       = errors.New("not a legal string")
	ErrLocation        = errors.New("location counter mismatch")
)

// Error is the single error an assembly run stops on. Line is 1-based.
type Error struct {
	Line int
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("LINE %d: %v", e.Line, e.Err)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// RangeError reports a value that cannot be encoded in a field of Width bits.
type RangeError struct {
	Value  int
	Width  int
	Signed bool
}

func (e *RangeError) Error() string {
	if e.Signed {
		return fmt.Sprintf("%d can't be represented as a signed number in %d bits", e.Value, e.Width)
	}
	return fmt.Sprintf("%d can't be represented as an unsigned number in %d bits", e.Value, e.Width)
}

// lineError attaches a source line to err and picks its kind. An err that
// already carries a line is returned untouched.
func lineError(line int, err error) error {
	var ae *Error
	if errors.As(err, &ae) {
		return err
	}
	return &Error{Line: line, Kind: kindOf(err), Err: err}
}

func kindOf(err error) ErrorKind {
	var re *RangeError
	switch {
	case errors.As(err, &re):
		return KindRange
	case errors.Is(err, ErrLocation):
		return KindInternal
	case errors.Is(err, ErrMissingOrigin),
		errors.Is(err, ErrDuplicateOrigin),
		errors.Is(err, ErrMissingEnd),
		errors.Is(err, ErrDuplicateLabel),
		errors.Is(err, ErrUnknownOpcode):
		return KindStructural
	}
	return KindOperand
}
