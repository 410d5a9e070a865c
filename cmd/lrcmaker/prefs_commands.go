package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lkho/lrc-maker/internal/prefs"
)

func newPrefsCommand(ctx *commandContext) *cobra.Command {
	prefsCmd := &cobra.Command{
		Use:   "prefs",
		Short: "Inspect and change stored editor preferences",
	}

	prefsCmd.AddCommand(newPrefsShowCommand(ctx))
	prefsCmd.AddCommand(newPrefsSetCommand(ctx))
	prefsCmd.AddCommand(newPrefsResetCommand(ctx))

	return prefsCmd
}

func newPrefsShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show all preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.prefsStore()
			if err != nil {
				return err
			}
			p := store.Load()
			if asJSON {
				return writeJSON(cmd, p)
			}

			rows := make([][]string, 0, len(prefs.Keys()))
			for _, key := range prefs.Keys() {
				value, err := prefs.Get(p, key)
				if err != nil {
					return err
				}
				rows = append(rows, []string{key, value})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(tableSpec{Headers: []string{"Key", "Value"}, Rows: rows}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func newPrefsSetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Change one preference",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.prefsStore()
			if err != nil {
				return err
			}
			p, err := store.Update(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			value, err := prefs.Get(p, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], value)
			return nil
		},
	}
}

func newPrefsResetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore default preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.prefsStore()
			if err != nil {
				return err
			}
			if err := store.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Preferences reset to defaults")
			return nil
		},
	}
}
