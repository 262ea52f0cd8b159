package commands

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/grocerly/grocerly/internal/budgetstate"
	"github.com/grocerly/grocerly/internal/domain"
)

func newBudgetCommand(storePath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Track the monthly budget",
	}

	cmd.AddCommand(newBudgetShowCommand(storePath))
	cmd.AddCommand(newBudgetSetLimitCommand(storePath))
	cmd.AddCommand(newBudgetAddCommand(storePath))
	cmd.AddCommand(newBudgetSpendCommand(storePath))
	cmd.AddCommand(newBudgetResetCommand(storePath))

	return cmd
}

func newBudgetShowCommand(storePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show budget categories and overall progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBudgetStore(*storePath, func(store *budgetstate.Store) (bool, error) {
				views := store.CategoryViews()
				if len(views) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No budget categories.")
					return false, nil
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tSPENT\tLIMIT\tUSED\tREMAINING")
				for _, v := range views {
					over := ""
					if v.IsOverLimit {
						over = " !"
					}
					fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.0f%%%s\t%.2f\n",
						shortID(v.ID), v.Name, v.Spent, v.Limit, v.Percentage, over, v.Remaining)
				}
				if err := w.Flush(); err != nil {
					return false, err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %.2f / %.2f (%.0f%%)\n",
					store.TotalSpent(), store.TotalLimit(), store.Progress())
				if store.IsOverBudget() {
					fmt.Fprintln(cmd.OutOrStdout(), "Over budget")
				}
				return false, nil
			})
		},
	}
}

func newBudgetSetLimitCommand(storePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "set-limit <amount>",
		Short: "Set the overall monthly limit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, err := strconv.ParseFloat(args[0], 64)
			if err != nil || limit < 0 {
				return fmt.Errorf("invalid amount %q", args[0])
			}
			return withBudgetStore(*storePath, func(store *budgetstate.Store) (bool, error) {
				store.SetMonthlyLimit(limit)
				fmt.Fprintf(cmd.OutOrStdout(), "Monthly limit set to %.2f\n", limit)
				return true, nil
			})
		},
	}
}

func newBudgetAddCommand(storePath *string) *cobra.Command {
	var (
		limit float64
		color string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a budget category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			return withBudgetStore(*storePath, func(store *budgetstate.Store) (bool, error) {
				added := store.AddCategory(domain.BudgetCategory{
					Name:  name,
					Limit: limit,
					Color: color,
				})
				fmt.Fprintf(cmd.OutOrStdout(), "Added category %s (%s)\n", added.Name, shortID(added.ID))
				return true, nil
			})
		},
	}

	cmd.Flags().Float64Var(&limit, "limit", 0, "spending limit for the category")
	cmd.Flags().StringVar(&color, "color", "", "display color, e.g. #4CAF50")

	return cmd
}

func newBudgetSpendCommand(storePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "spend <category> <amount>",
		Short: "Record spending against a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}
			return withBudgetStore(*storePath, func(store *budgetstate.Store) (bool, error) {
				id := resolveCategory(store, args[0])
				if id == "" {
					return false, fmt.Errorf("no category matching %q", args[0])
				}
				store.UpdateSpent(id, amount)
				for _, c := range store.Categories {
					if c.ID == id {
						fmt.Fprintf(cmd.OutOrStdout(), "%s: %.2f / %.2f\n", c.Name, c.Spent, c.Limit)
					}
				}
				return true, nil
			})
		},
	}
}

func newBudgetResetCommand(storePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Zero the spent amount of every category",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withBudgetStore(*storePath, func(store *budgetstate.Store) (bool, error) {
				store.Reset()
				fmt.Fprintln(cmd.OutOrStdout(), "Spent amounts reset")
				return true, nil
			})
		},
	}
}

// resolveCategory matches ref against category ids, id prefixes, then
// case-insensitive names.
func resolveCategory(store *budgetstate.Store, ref string) string {
	for _, c := range store.Categories {
		if c.ID == ref {
			return c.ID
		}
	}
	for _, c := range store.Categories {
		if strings.HasPrefix(c.ID, ref) {
			return c.ID
		}
	}
	for _, c := range store.Categories {
		if strings.EqualFold(c.Name, ref) {
			return c.ID
		}
	}
	return ""
}
