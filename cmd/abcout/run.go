package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ezrec/abcout/io"
	"github.com/ezrec/abcout/machine"
)

var runPng string
var runTerminal bool
var runBudget int
var runState bool

// runCmd executes a source file or a raw image.
var runCmd = &cobra.Command{
	Use:   "run file",
	Short: "Run a source file or memory image",
	Long: `Run executes a program until it branches to the halt address or
exhausts its step budget. Files ending in .abc are assembled first, any
other file is loaded as a raw memory image.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		p, err := profile()
		if err != nil {
			return
		}

		var screen io.Screen
		var fb *io.Framebuffer
		var term *io.Terminal

		switch {
		case runTerminal:
			term, err = io.NewTerminal(nil)
			if err != nil {
				return
			}
			defer term.Close()
			screen = term
		case len(runPng) != 0:
			fb = io.NewFramebuffer()
			screen = fb
		}

		opts := []machine.Option{
			machine.WithScreen(screen),
			machine.WithVerbose(verbose),
		}
		if runBudget > 0 {
			opts = append(opts, machine.WithStepBudget(runBudget))
		}
		m := machine.NewMachine(p, opts...)

		if strings.HasSuffix(args[0], ".abc") {
			prog, err := assemble(args[0])
			if err != nil {
				return err
			}
			m.Load(prog)
		} else {
			inf, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "run")
			}
			defer inf.Close()

			image, err := io.LoadImage(inf, p)
			if err != nil {
				return errors.Wrap(err, args[0])
			}
			m.LoadImage(image)
		}

		status, err := m.Run(cmd.Context())
		if err != nil {
			return
		}

		if term != nil {
			term.Show()
			waitKey(term.Screen)
		}

		if fb != nil {
			err = writePng(runPng, fb)
			if err != nil {
				return
			}
		}

		if runState {
			fmt.Fprint(cmd.OutOrStdout(), m.String())
		} else if verbose || status != machine.STATUS_HALTED {
			fmt.Fprintf(cmd.ErrOrStderr(), "%v after %d ticks\n", status, m.Ticks)
		}

		return
	},
}

// waitKey blocks until a key is pressed.
func waitKey(screen tcell.Screen) {
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return
		}
	}
}

// writePng saves a framebuffer to a file.
func writePng(path string, fb *io.Framebuffer) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		err = errors.Wrap(err, "png")
		return
	}
	defer ouf.Close()

	err = fb.WritePNG(ouf)
	return
}

func init() {
	runCmd.Flags().StringVar(&runPng, "png", "", "Write the screen to a PNG file")
	runCmd.Flags().BoolVarP(&runTerminal, "terminal", "t", false, "Draw the screen on the terminal")
	runCmd.Flags().IntVarP(&runBudget, "budget", "b", 0, "Step budget (default: profile budget)")
	runCmd.Flags().BoolVarP(&runState, "state", "s", false, "Print the machine state after the run")
	rootCmd.AddCommand(runCmd)
}
