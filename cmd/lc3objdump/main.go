package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	wordsOnly := flag.Bool("words", false, "Print bare hex words, one per line, origin first")
	raw := flag.Bool("raw", false, "Pretty-print the decoded image structure")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: lc3objdump [options] file.obj\n\nPrints an LC-3 object image word by word.\n\nOptions:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  lc3objdump prog.obj\n")
		fmt.Fprintf(os.Stderr, "  lc3objdump -words prog.obj > prog.hex\n")
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	if *wordsOnly && *raw {
		fmt.Fprintf(os.Stderr, "error: -words and -raw are mutually exclusive\n")
		os.Exit(1)
	}

	d := NewDumper()
	switch {
	case *wordsOnly:
		d.mode = modeWords
	case *raw:
		d.mode = modeRaw
	}

	if err := d.DumpFileFromPath(os.Stdout, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
