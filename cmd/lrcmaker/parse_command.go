package main

import (
	"github.com/spf13/cobra"

	"github.com/lkho/lrc-maker/internal/export"
	"github.com/lkho/lrc-maker/internal/logging"
	"github.com/lkho/lrc-maker/internal/lrc"
)

func newParseCommand(ctx *commandContext) *cobra.Command {
	var formatFlag string
	var paste bool

	cmd := &cobra.Command{
		Use:   "parse [file|-]",
		Short: "Parse LRC text and print it as JSON or YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			opts, err := ctx.parseOptions(cmd)
			if err != nil {
				return err
			}
			text, name, err := readLyrics(cmd, args, paste)
			if err != nil {
				return err
			}

			doc := lrc.Parse(text, opts)
			ctx.log().Debug("parsed lyrics",
				logging.String(logging.FieldFile, name),
				logging.Int(logging.FieldLines, len(doc.Lines)),
			)
			return export.Encode(cmd.OutOrStdout(), export.FromDocument(doc), format)
		},
	}

	cmd.Flags().StringVarP(&formatFlag, "format", "f", "json", "Output format (json or yaml)")
	cmd.Flags().BoolVar(&paste, "paste", false, "Read lyrics from the clipboard")
	addTrimFlags(cmd)
	return cmd
}
