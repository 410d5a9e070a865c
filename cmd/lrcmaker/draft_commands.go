package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lkho/lrc-maker/internal/config"
	"github.com/lkho/lrc-maker/internal/drafts"
	"github.com/lkho/lrc-maker/internal/fileutil"
	"github.com/lkho/lrc-maker/internal/logging"
	"github.com/lkho/lrc-maker/internal/lrc"
	"github.com/lkho/lrc-maker/internal/textutil"
)

func newDraftCommand(ctx *commandContext) *cobra.Command {
	draftCmd := &cobra.Command{
		Use:   "draft",
		Short: "Manage saved lyric drafts",
	}

	draftCmd.AddCommand(newDraftSaveCommand(ctx))
	draftCmd.AddCommand(newDraftUpdateCommand(ctx))
	draftCmd.AddCommand(newDraftListCommand(ctx))
	draftCmd.AddCommand(newDraftShowCommand(ctx))
	draftCmd.AddCommand(newDraftExportCommand(ctx))
	draftCmd.AddCommand(newDraftDeleteCommand(ctx))

	return draftCmd
}

func newDraftSaveCommand(ctx *commandContext) *cobra.Command {
	var paste bool

	cmd := &cobra.Command{
		Use:   "save NAME [file|-]",
		Short: "Store lyrics as a new draft",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _, err := readLyrics(cmd, args[1:], paste)
			if err != nil {
				return err
			}
			return ctx.withDrafts(func(store *drafts.Store) error {
				d, err := store.Save(cmd.Context(), args[0], text)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved draft %s (%d lines, %d timed)\n", d.ID, d.Lines, d.Timed)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&paste, "paste", false, "Read lyrics from the clipboard")
	return cmd
}

func newDraftUpdateCommand(ctx *commandContext) *cobra.Command {
	var paste bool

	cmd := &cobra.Command{
		Use:   "update ID [file|-]",
		Short: "Replace the text of a draft",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _, err := readLyrics(cmd, args[1:], paste)
			if err != nil {
				return err
			}
			return ctx.withDrafts(func(store *drafts.Store) error {
				d, err := store.Update(cmd.Context(), args[0], text)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated draft %s (%d lines, %d timed)\n", d.ID, d.Lines, d.Timed)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&paste, "paste", false, "Read lyrics from the clipboard")
	return cmd
}

type draftJSON struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Title     string  `json:"title,omitempty"`
	Artist    string  `json:"artist,omitempty"`
	Lines     int     `json:"lines"`
	Timed     int     `json:"timed"`
	Duration  float64 `json:"duration"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func newDraftListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved drafts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withDrafts(func(store *drafts.Store) error {
				list, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				if asJSON {
					out := make([]draftJSON, 0, len(list))
					for _, d := range list {
						out = append(out, draftJSON{
							ID:        d.ID,
							Name:      d.Name,
							Title:     d.Title,
							Artist:    d.Artist,
							Lines:     d.Lines,
							Timed:     d.Timed,
							Duration:  d.Duration,
							CreatedAt: d.CreatedAt.Format(time.RFC3339),
							UpdatedAt: d.UpdatedAt.Format(time.RFC3339),
						})
					}
					return writeJSON(cmd, out)
				}
				if len(list) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No drafts")
					return nil
				}

				rows := make([][]string, 0, len(list))
				for _, d := range list {
					rows = append(rows, []string{
						d.ID,
						d.Name,
						d.Title,
						d.Artist,
						strconv.Itoa(d.Lines),
						strconv.Itoa(d.Timed),
						durationCell(d.Duration),
						d.UpdatedAt.Local().Format("2006-01-02 15:04"),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(tableSpec{
					Headers: []string{"ID", "Name", "Title", "Artist", "Lines", "Timed", "Duration", "Updated"},
					Rows:    rows,
					Aligns:  []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
				}))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newDraftShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Print the stored text of a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withDrafts(func(store *drafts.Store) error {
				d, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprint(out, d.Body)
				if d.Body != "" && !strings.HasSuffix(d.Body, "\n") {
					fmt.Fprintln(out)
				}
				return nil
			})
		},
	}
}

func newDraftExportCommand(ctx *commandContext) *cobra.Command {
	var (
		dir       string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "export ID",
		Short: "Format a draft and write it as an .lrc file",
		Long: `Render a draft with the stored preferences and write it to the export
directory. The file is named "Artist - Title.lrc" from the draft metadata,
falling back to the draft name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			target := cfg.Paths.ExportDir
			if strings.TrimSpace(dir) != "" {
				if target, err = config.ExpandPath(dir); err != nil {
					return err
				}
			}
			renderOpts, err := ctx.stringifyOptions(cmd)
			if err != nil {
				return err
			}

			return ctx.withDrafts(func(store *drafts.Store) error {
				d, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				out, err := lrc.Stringify(d.Document(cfg.ParseOptions()), renderOpts)
				if err != nil {
					return err
				}
				path := filepath.Join(target, textutil.ExportFileName(d.Artist, d.Title, d.Name))
				if err := fileutil.WriteFileExclusive(path, []byte(out), overwrite); err != nil {
					return fmt.Errorf("export draft: %w (use --overwrite to replace it)", err)
				}
				ctx.log().Info("draft exported",
					logging.String(logging.FieldDraftID, d.ID),
					logging.String(logging.FieldFile, path),
				)
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", path)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Destination directory (default from config)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace an existing file")
	return cmd
}

func newDraftDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withDrafts(func(store *drafts.Store) error {
				if err := store.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted draft %s\n", args[0])
				return nil
			})
		},
	}
}
