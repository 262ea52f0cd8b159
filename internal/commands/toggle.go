package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grocerly/grocerly/internal/liststate"
)

func newToggleCommand(storePath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle <id-or-name>",
		Short: "Toggle an item between active and completed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := strings.Join(args, " ")
			return withListStore(*storePath, func(store *liststate.Store) (bool, error) {
				id := resolveItem(store, ref)
				if id == "" {
					return false, fmt.Errorf("no item matching %q", ref)
				}
				store.ToggleItem(id)
				for _, item := range store.Items {
					if item.ID == id {
						state := "active"
						if item.IsCompleted {
							state = "completed"
						}
						fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", item.Name, state)
					}
				}
				return true, nil
			})
		},
	}
	return cmd
}

// resolveItem matches ref against item ids first, then id prefixes, then
// case-insensitive names. Returns the full id or "" when nothing matches.
func resolveItem(store *liststate.Store, ref string) string {
	for _, item := range store.Items {
		if item.ID == ref {
			return item.ID
		}
	}
	for _, item := range store.Items {
		if strings.HasPrefix(item.ID, ref) {
			return item.ID
		}
	}
	for _, item := range store.Items {
		if strings.EqualFold(item.Name, ref) {
			return item.ID
		}
	}
	return ""
}
