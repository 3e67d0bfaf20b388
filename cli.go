// cli.go - lc3as command line

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

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/intuitionamiga/lc3as/assembler"
)

var errTerminal = errors.New("refusing to write a binary image to a terminal (use --force-tty)")

type options struct {
	output   string
	listing  bool
	symbols  bool
	dump     bool
	forceTTY bool
	version  bool
	jobs     int
}

// unit is one input file and everything its assembly produced.
type unit struct {
	input    string
	output   string
	prog     *assembler.Program
	listing  []string
	warnings []string
	err      error
}

func newRootCmd() *cobra.Command {
	opts := &options{jobs: runtime.GOMAXPROCS(0)}

	cmd := &cobra.Command{
		Use:   "lc3as [flags] file.asm...",
		Short: "Assemble LC-3 source files into object images",
		Long: `lc3as translates LC-3 assembly source into big-endian object images.

Each input file.asm is written to file.obj next to it. The first word of
an image is the load address given by .ORIG, followed by one word per
assembled location. Several inputs are assembled concurrently; a file
that fails to assemble leaves no output behind.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file for a single input (\"-\" for stdout)")
	f.BoolVar(&opts.listing, "listing", false, "print an assembly listing")
	f.BoolVar(&opts.symbols, "symbols", false, "write a .sym symbol file next to each object file")
	f.BoolVar(&opts.dump, "dump", false, "pretty-print records and symbols to stderr")
	f.BoolVar(&opts.forceTTY, "force-tty", false, "allow writing the binary image to a terminal")
	f.BoolVar(&opts.version, "version", false, "print version information and exit")
	f.IntVarP(&opts.jobs, "jobs", "j", opts.jobs, "number of files assembled in parallel")
	f.AddGoFlagSet(flag.CommandLine)

	return cmd
}

func (o *options) run(cmd *cobra.Command, args []string) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if o.version {
		boilerPlate(stdout)
		return nil
	}
	if len(args) == 0 {
		return errors.New("no input files")
	}
	if o.output != "" && len(args) > 1 {
		return fmt.Errorf("--output takes a single input file, got %d", len(args))
	}
	if o.output == "-" && !o.forceTTY && isTerminal(stdout) {
		return errTerminal
	}

	units := make([]*unit, len(args))
	for i, input := range args {
		units[i] = &unit{input: input, output: outputPath(input, o.output)}
	}

	var g errgroup.Group
	g.SetLimit(max(o.jobs, 1))
	for _, u := range units {
		u := u
		g.Go(func() error {
			u.err = o.assemble(u)
			return u.err
		})
	}
	if err := g.Wait(); err != nil {
		glog.V(1).Infof("first failure: %v", err)
	}

	// Report in argument order regardless of completion order.
	listingOut := stdout
	if o.output == "-" {
		listingOut = stderr
	}
	failed := 0
	for _, u := range units {
		for _, w := range u.warnings {
			fmt.Fprintf(stderr, "%s: warning: %s\n", u.input, w)
		}
		if u.err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", u.input, u.err)
			failed++
			continue
		}
		if o.listing {
			if len(units) > 1 {
				fmt.Fprintf(listingOut, "; %s\n", u.input)
			}
			for _, line := range u.listing {
				fmt.Fprintln(listingOut, line)
			}
		}
		if o.dump {
			dumpProgram(stderr, u.prog)
		}
		if u.output == "-" {
			if _, err := u.prog.WriteTo(stdout); err != nil {
				return fmt.Errorf("writing image: %w", err)
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed to assemble", failed, len(units))
	}
	return nil
}

// assemble reads, assembles and writes one unit. Images bound for stdout
// are written later by run so that output keeps argument order.
func (o *options) assemble(u *unit) error {
	src, err := os.ReadFile(u.input)
	if err != nil {
		return err
	}

	asm := assembler.NewAssembler()
	asm.SetListingMode(o.listing)
	prog, err := asm.Assemble(string(src))
	u.warnings = asm.GetWarnings()
	if err != nil {
		return err
	}
	u.prog = prog
	u.listing = asm.GetListing()

	if u.output != "-" {
		if err := writeFileAtomic(u.output, prog.WriteTo); err != nil {
			return fmt.Errorf("writing %s: %w", u.output, err)
		}
	}
	if o.symbols {
		path := symbolPath(u.input, u.output)
		if err := writeFileAtomic(path, prog.Symbols.WriteTo); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	glog.V(1).Infof("%s: %d words at x%04X -> %s", u.input, len(prog.Words)-1, prog.Origin, u.output)
	return nil
}

func dumpProgram(w io.Writer, prog *assembler.Program) {
	printer := pp.New()
	printer.SetOutput(w)
	printer.SetColoringEnabled(isTerminal(w))
	printer.Println(prog.Records)
	printer.Println(prog.Symbols.Symbols())
}
