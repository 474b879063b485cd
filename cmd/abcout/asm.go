package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ezrec/abcout/internal"
	"github.com/ezrec/abcout/io"
)

var asmOutput string
var asmDump bool

// asmCmd assembles a source file into a raw image.
var asmCmd = &cobra.Command{
	Use:   "asm sourceFile",
	Short: "Assemble a source file into a memory image",
	Long: `Asm assembles one source file into a raw memory image of the
profile size. The image is written to the output file, or to the source
file name with an .img suffix.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		prog, err := assemble(args[0])
		if err != nil {
			return
		}

		if asmDump {
			dump := pp.New()
			dump.SetColoringEnabled(false)
			for name, addr := range internal.SortedByKey(prog.Labels) {
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %05x\n", name, addr)
			}
			for _, op := range prog.Opcodes {
				fmt.Fprintf(cmd.OutOrStdout(), "%05x %4d: %s\n", op.Addr, op.LineNo, op.Text)
			}
			dump.Fprintln(cmd.OutOrStdout(), prog.Profile)
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d bytes used\n", prog.Used, len(prog.Image))
		}

		output := asmOutput
		if len(output) == 0 {
			output = strings.TrimSuffix(args[0], ".abc") + ".img"
		}

		ouf, err := os.Create(output)
		if err != nil {
			err = errors.Wrap(err, "asm")
			return
		}
		defer ouf.Close()

		err = io.SaveImage(ouf, prog.Image)
		return
	},
}

func init() {
	asmCmd.Flags().StringVarP(&asmOutput, "output", "o", "", "Image file to write")
	asmCmd.Flags().BoolVar(&asmDump, "dump", false, "Dump labels and source map")
	rootCmd.AddCommand(asmCmd)
}
