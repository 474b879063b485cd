package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ezrec/abcout/io"
	"github.com/ezrec/abcout/session"
)

var watchPng string
var watchDelay time.Duration
var watchPoll time.Duration

// watchCmd re-runs a source file whenever it changes.
var watchCmd = &cobra.Command{
	Use:   "watch sourceFile",
	Short: "Assemble and run a source file on every change",
	Long: `Watch polls a source file and, once edits have settled, assembles
and runs it again. Assembly errors are reported and nothing is run until
the next edit.
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		p, err := profile()
		if err != nil {
			return
		}

		path := args[0]
		fb := io.NewFramebuffer()

		s := &session.Session{
			Verbose: verbose,
			Profile: p,
			Source: func() (text string, err error) {
				data, err := os.ReadFile(path)
				text = string(data)
				return
			},
			Screen: fb,
			Delay:  watchDelay,
			Report: func(result session.Result) {
				out := cmd.OutOrStdout()
				if result.Err != nil {
					fmt.Fprintf(out, "%v: %v\n", path, result.Err)
					return
				}
				fmt.Fprintf(out, "%v: %v after %d ticks\n", path, result.Status, result.Machine.Ticks)
				if len(watchPng) != 0 {
					err := writePng(watchPng, fb)
					if err != nil {
						log.Printf("%v: %v", watchPng, err)
					}
				}
			},
		}
		defer s.Close()

		var modified time.Time
		info, err := os.Stat(path)
		if err != nil {
			return
		}
		modified = info.ModTime()

		ctx := cmd.Context()
		s.RunNow(ctx)

		ticker := time.NewTicker(watchPoll)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			info, statErr := os.Stat(path)
			if statErr != nil {
				continue
			}
			if info.ModTime().After(modified) {
				modified = info.ModTime()
				s.Changed()
			}
		}
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchPng, "png", "", "Write the screen to a PNG file after each run")
	watchCmd.Flags().DurationVar(&watchDelay, "delay", session.DEFAULT_DELAY, "Quiet period after an edit")
	watchCmd.Flags().DurationVar(&watchPoll, "poll", 250*time.Millisecond, "File poll interval")
	rootCmd.AddCommand(watchCmd)
}
