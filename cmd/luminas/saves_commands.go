package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"luminas/internal/savestore"
)

func newSavesCommand(ctx *commandContext) *cobra.Command {
	savesCmd := &cobra.Command{
		Use:   "saves",
		Short: "Inspect and manage save slots",
	}

	savesCmd.AddCommand(newSavesListCommand(ctx))
	savesCmd.AddCommand(newSavesDeleteCommand(ctx))

	return savesCmd
}

func newSavesListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List save slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := savestore.Open(cfg.SaveDBPath())
			if err != nil {
				return err
			}
			defer store.Close()

			slots, err := store.List(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, slots)
			}

			out := cmd.OutOrStdout()
			if len(slots) == 0 {
				fmt.Fprintln(out, "No saves recorded")
				return nil
			}
			rows := make([][]string, 0, len(slots))
			for _, slot := range slots {
				rows = append(rows, []string{
					slot.Name,
					strconv.Itoa(slot.Size),
					slot.UpdatedAt.Local().Format(time.RFC3339),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Slot", "Bytes", "Updated"},
				rows,
				[]columnAlignment{alignLeft, alignRight, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit slot data as JSON")
	return cmd
}

func newSavesDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <slot>",
		Short: "Delete a save slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := savestore.Open(cfg.SaveDBPath())
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted slot %s\n", args[0])
			return nil
		},
	}
}
