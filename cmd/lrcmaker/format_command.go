package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/lkho/lrc-maker/internal/config"
	"github.com/lkho/lrc-maker/internal/fileutil"
	"github.com/lkho/lrc-maker/internal/logging"
	"github.com/lkho/lrc-maker/internal/lrc"
)

func newFormatCommand(ctx *commandContext) *cobra.Command {
	var (
		outputPath string
		copyOut    bool
		paste      bool
	)

	cmd := &cobra.Command{
		Use:   "format [file|-]",
		Short: "Rewrite LRC text with normalized tags and padding",
		Long: `Parse LRC text and render it again. Metadata moves to the top, line
and word tags are re-encoded at the chosen precision and lyric text is padded.
Precision, padding and line terminator default to the stored preferences and
configuration.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parseOpts, err := ctx.parseOptions(cmd)
			if err != nil {
				return err
			}
			renderOpts, err := ctx.stringifyOptions(cmd)
			if err != nil {
				return err
			}
			text, name, err := readLyrics(cmd, args, paste)
			if err != nil {
				return err
			}

			out, err := lrc.Stringify(lrc.Parse(text, parseOpts), renderOpts)
			if err != nil {
				return err
			}

			if copyOut {
				if err := clipboard.WriteAll(out); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
			}
			if strings.TrimSpace(outputPath) != "" {
				target, err := config.ExpandPath(outputPath)
				if err != nil {
					return err
				}
				if err := fileutil.WriteFileAtomic(target, []byte(out), 0o644); err != nil {
					return err
				}
				ctx.log().Info("lyrics written",
					logging.String(logging.FieldFile, target),
				)
				return nil
			}
			if copyOut {
				ctx.log().Info("lyrics copied to clipboard", logging.String(logging.FieldFile, name))
				return nil
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().Int("precision", 0, "Fractional second digits, 0-3 (default from prefs)")
	cmd.Flags().Int("space-start", 0, "Spaces before lyric text on timed lines; -1 keeps it (default from prefs)")
	cmd.Flags().Int("space-end", 0, "Spaces after lyric text on timed lines; -1 keeps it (default from prefs)")
	cmd.Flags().String("eol", "", "Line terminator: crlf, lf or cr (default from config)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the result to the clipboard")
	cmd.Flags().BoolVar(&paste, "paste", false, "Read lyrics from the clipboard")
	addTrimFlags(cmd)
	return cmd
}

// stringifyOptions starts from stored preferences and the configured line
// terminator, then applies any render flags the user set.
func (c *commandContext) stringifyOptions(cmd *cobra.Command) (lrc.StringifyOptions, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return lrc.StringifyOptions{}, err
	}
	store, err := c.prefsStore()
	if err != nil {
		return lrc.StringifyOptions{}, err
	}
	opts := store.Load().StringifyOptions(cfg.LineTerminator())

	flags := cmd.Flags()
	if flags.Changed("precision") {
		n, err := flags.GetInt("precision")
		if err != nil {
			return opts, err
		}
		if opts.Precision, err = lrc.ParsePrecision(strconv.Itoa(n)); err != nil {
			return opts, err
		}
	}
	if flags.Changed("space-start") {
		if opts.SpaceStart, err = flags.GetInt("space-start"); err != nil {
			return opts, err
		}
	}
	if flags.Changed("space-end") {
		if opts.SpaceEnd, err = flags.GetInt("space-end"); err != nil {
			return opts, err
		}
	}
	if flags.Changed("eol") {
		name, err := flags.GetString("eol")
		if err != nil {
			return opts, err
		}
		if opts.LineTerminator, err = lrc.LineTerminatorFromName(name); err != nil {
			return opts, err
		}
	}
	return opts, nil
}
