package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/grocerly/grocerly/internal/liststate"
)

func newListCommand(storePath *string) *cobra.Command {
	var (
		filter    string
		search    string
		sortBy    string
		sortOrder string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show shopping list items",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withListStore(*storePath, func(store *liststate.Store) (bool, error) {
				changed := false
				if cmd.Flags().Changed("filter") {
					store.Filter = liststate.Filter(filter)
					changed = true
				}
				if cmd.Flags().Changed("search") {
					store.SearchQuery = search
					changed = true
				}
				if cmd.Flags().Changed("sort") {
					store.SortBy = liststate.SortField(sortBy)
					changed = true
				}
				if cmd.Flags().Changed("order") {
					store.SortOrder = liststate.SortOrder(sortOrder)
					changed = true
				}

				items := store.FilteredAndSortedItems()
				if len(items) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No items.")
					return changed, nil
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tQTY\tCATEGORY\tPRIORITY\tDONE")
				for _, item := range items {
					done := " "
					if item.IsCompleted {
						done = "x"
					}
					fmt.Fprintf(w, "%s\t%s\t%d %s\t%s\t%s\t[%s]\n",
						shortID(item.ID), item.Name, item.Quantity, item.Unit,
						item.Category, item.Priority, done)
				}
				return changed, w.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&filter, "filter", string(liststate.FilterAll), "filter items: all, active or completed")
	cmd.Flags().StringVar(&search, "search", "", "match items by name, category or notes")
	cmd.Flags().StringVar(&sortBy, "sort", string(liststate.SortByName), "sort field: name, category, priority or createdAt")
	cmd.Flags().StringVar(&sortOrder, "order", string(liststate.OrderAsc), "sort direction: asc or desc")

	return cmd
}

// shortID trims a uuid down to its first block for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
