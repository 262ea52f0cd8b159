package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/grocerly/grocerly/internal/domain"
	"github.com/grocerly/grocerly/internal/liststate"
)

func newAddCommand(storePath *string) *cobra.Command {
	var (
		category string
		quantity int
		unit     string
		price    float64
		priority string
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an item to the shopping list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			if !domain.Priority(priority).Valid() {
				return fmt.Errorf("invalid priority %q: must be low, medium or high", priority)
			}

			item := domain.ShoppingItem{
				Name:     name,
				Category: category,
				Quantity: quantity,
				Unit:     unit,
				Priority: domain.Priority(priority),
				Notes:    notes,
			}
			if cmd.Flags().Changed("price") {
				item.Price = &price
			}

			return withListStore(*storePath, func(store *liststate.Store) (bool, error) {
				added := store.AddItem(item)
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", added.Name, shortID(added.ID))
				return true, nil
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "Other", "item category")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "item quantity")
	cmd.Flags().StringVar(&unit, "unit", "pcs", "item unit")
	cmd.Flags().Float64Var(&price, "price", 0, "expected price")
	cmd.Flags().StringVar(&priority, "priority", string(domain.PriorityMedium), "item priority: low, medium or high")
	cmd.Flags().StringVar(&notes, "notes", "", "free-form notes")

	return cmd
}
