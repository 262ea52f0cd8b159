package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grocerly/grocerly/internal/liststate"
)

func newDoneCommand(storePath *string) *cobra.Command {
	var clear bool

	cmd := &cobra.Command{
		Use:   "done",
		Short: "Show completion stats for the shopping list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withListStore(*storePath, func(store *liststate.Store) (bool, error) {
				stats := store.Stats()
				fmt.Fprintf(cmd.OutOrStdout(), "Items:     %d\n", stats.Total)
				fmt.Fprintf(cmd.OutOrStdout(), "Completed: %d\n", stats.Completed)
				fmt.Fprintf(cmd.OutOrStdout(), "Active:    %d\n", stats.Active)
				fmt.Fprintf(cmd.OutOrStdout(), "Spent:     %.2f\n", stats.TotalSpent)

				if clear && stats.Completed > 0 {
					store.ClearCompleted()
					fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d completed items\n", stats.Completed)
					return true, nil
				}
				return false, nil
			})
		},
	}

	cmd.Flags().BoolVar(&clear, "clear", false, "remove completed items after printing stats")

	return cmd
}
