package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/intuitionamiga/lc3as/assembler"
)

func assembleImage(t *testing.T, src string) []byte {
	t.Helper()
	prog, err := assembler.Assemble(src)
	if err != nil {
		t.Fatalf("assembly failed: %v", err)
	}
	return prog.Bytes()
}

func TestParseImage(t *testing.T) {
	img, err := ParseImage([]byte{0x30, 0x00, 0x12, 0x61, 0xF0, 0x25})
	if err != nil {
		t.Fatal(err)
	}
	if img.Origin != 0x3000 || len(img.Words) != 2 || img.Words[0] != 0x1261 || img.Words[1] != 0xF025 {
		t.Errorf("ParseImage = %+v", img)
	}

	for _, bad := range [][]byte{nil, {0x30}, {0x30, 0x00, 0x12}} {
		if _, err := ParseImage(bad); err == nil {
			t.Errorf("ParseImage(% X): expected error", bad)
		}
	}
}

func TestDump_Table(t *testing.T) {
	data := assembleImage(t, ".ORIG x3000\nADD R1,R1,#1\n.STRINGZ \"Hi\"\n.END")
	img, err := ParseImage(data)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := NewDumper().Dump(&buf, img); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"; origin x3000, 4 word(s)",
		"x3000  x1261  0001001001100001  .",
		"x3001  x0048  0000000001001000  'H'",
		"x3002  x0069  0000000001101001  'i'",
		"x3003  x0000  0000000000000000  .",
	}
	got := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("dump:\n%s\nwant:\n%s", buf.String(), strings.Join(want, "\n"))
	}
}

func TestDump_Words(t *testing.T) {
	img, err := ParseImage([]byte{0x30, 0x00, 0xF0, 0x25})
	if err != nil {
		t.Fatal(err)
	}
	d := NewDumper()
	d.mode = modeWords
	var buf bytes.Buffer
	if err := d.Dump(&buf, img); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "3000\nF025\n" {
		t.Errorf("words = %q", buf.String())
	}
}

func TestDump_Raw(t *testing.T) {
	img, err := ParseImage([]byte{0x30, 0x00, 0xF0, 0x25})
	if err != nil {
		t.Fatal(err)
	}
	d := NewDumper()
	d.mode = modeRaw
	var buf bytes.Buffer
	if err := d.Dump(&buf, img); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Origin") || !strings.Contains(buf.String(), "Words") {
		t.Errorf("raw dump = %q", buf.String())
	}
}

func TestDumpFileFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.obj")
	if err := os.WriteFile(path, assembleImage(t, ".ORIG x4000\nHALT\n.END"), 0644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := NewDumper().DumpFileFromPath(&buf, path); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "x4000  xF025") {
		t.Errorf("dump = %q", buf.String())
	}

	if err := os.WriteFile(path, []byte{1, 2, 3}, 0644); err != nil {
		t.Fatal(err)
	}
	if err := NewDumper().DumpFileFromPath(&buf, path); err == nil {
		t.Error("odd-length image: expected error")
	}
}
