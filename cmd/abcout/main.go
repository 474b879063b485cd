// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ezrec/abcout/asm"
	"github.com/ezrec/abcout/isa"
)

var profileName string
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "abcout",
	Short: "Assembler and interpreter for the abcout machine",
	Long: `Abcout assembles and runs programs for a machine with a single
instruction: abcout A, B, C adds the byte at B into the byte at A and
branches to C when the sum carries.

Sources are plain text with labels, local labels, .equ and .macro
directives. Images are raw memory dumps of the selected profile size.
`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", isa.PROFILE_WIDE.Name,
		"ISA profile ("+strings.Join(isa.Names(), ", ")+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")
}

// profile returns the profile selected on the command line.
func profile() (p *isa.Profile, err error) {
	p, err = isa.Lookup(profileName)
	return
}

// assemble parses and assembles a source file.
func assemble(path string) (prog *asm.Program, err error) {
	p, err := profile()
	if err != nil {
		return
	}

	inf, err := os.Open(path)
	if err != nil {
		err = errors.Wrap(err, "assemble")
		return
	}
	defer inf.Close()

	assembler := &asm.Assembler{
		Verbose: verbose,
		Profile: p,
	}
	prog, err = assembler.Parse(inf)
	if err != nil {
		err = errors.Wrap(err, path)
	}
	return
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		log.Printf("%v: %v", os.Args[0], err)
		stop()
		os.Exit(1)
	}
}
