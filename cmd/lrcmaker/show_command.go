package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lkho/lrc-maker/internal/lrc"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var paste bool

	cmd := &cobra.Command{
		Use:   "show [file|-]",
		Short: "Display metadata and the line timeline",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := ctx.parseOptions(cmd)
			if err != nil {
				return err
			}
			text, _, err := readLyrics(cmd, args, paste)
			if err != nil {
				return err
			}
			doc := lrc.Parse(text, opts)

			out := cmd.OutOrStdout()
			if doc.Info.Len() > 0 {
				rows := make([][]string, 0, doc.Info.Len())
				for _, e := range doc.Info.Entries() {
					rows = append(rows, []string{e.Key, e.Value})
				}
				fmt.Fprintln(out, renderTable(tableSpec{
					Title:   "Metadata",
					Headers: []string{"Key", "Value"},
					Rows:    rows,
				}))
			}

			rows := make([][]string, 0, len(doc.Lines))
			for n, line := range doc.Lines {
				rows = append(rows, []string{
					strconv.Itoa(n + 1),
					timeCell(line.Time),
					strconv.Itoa(len(line.Words)),
					strings.TrimSpace(line.Text()),
				})
			}
			fmt.Fprintln(out, renderTable(tableSpec{
				Title:   "Timeline",
				Headers: []string{"#", "Time", "Words", "Text"},
				Rows:    rows,
				Aligns:  []columnAlignment{alignRight, alignRight, alignRight, alignLeft},
			}))
			fmt.Fprintf(out, "%d lines, %d timed, duration %s\n",
				len(doc.Lines), doc.Timed(), durationCell(doc.Duration()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&paste, "paste", false, "Read lyrics from the clipboard")
	addTrimFlags(cmd)
	return cmd
}

func timeCell(ts lrc.Timestamp) string {
	seconds, ok := ts.Seconds()
	if !ok {
		return "-"
	}
	return durationCell(seconds)
}

func durationCell(seconds float64) string {
	s, err := lrc.FormatTime(seconds, lrc.PrecisionHundredths)
	if err != nil {
		return "?"
	}
	return s
}
