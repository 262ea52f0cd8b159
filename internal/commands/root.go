package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/grocerly/grocerly/internal/budgetstate"
	"github.com/grocerly/grocerly/internal/liststate"
	"github.com/grocerly/grocerly/internal/localstore"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var storePath string

	rootCmd := &cobra.Command{
		Use:   "grocerly",
		Short: "Offline grocery list and budget tracker",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&storePath, "store", defaultStorePath(), "path to the local state database")

	rootCmd.AddCommand(newListCommand(&storePath))
	rootCmd.AddCommand(newAddCommand(&storePath))
	rootCmd.AddCommand(newToggleCommand(&storePath))
	rootCmd.AddCommand(newDoneCommand(&storePath))
	rootCmd.AddCommand(newBudgetCommand(&storePath))
	rootCmd.AddCommand(newThemeCommand(&storePath))

	return rootCmd
}

func defaultStorePath() string {
	if env := os.Getenv("LOCAL_STORE_PATH"); env != "" {
		return env
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".grocerly.db"
	}
	return filepath.Join(home, ".grocerly.db")
}

// withListStore loads the shopping list state, runs fn, and persists the
// state back when fn reports a change.
func withListStore(storePath string, fn func(*liststate.Store) (changed bool, err error)) error {
	kv, err := localstore.Open(storePath)
	if err != nil {
		return err
	}
	defer kv.Close()

	store := liststate.NewStore()
	data, err := kv.Get(localstore.KeyShoppingList)
	if err != nil && !errors.Is(err, localstore.ErrKeyNotFound) {
		return err
	}
	if data != nil {
		if err := store.Restore(data); err != nil {
			return fmt.Errorf("corrupt shopping list state: %w", err)
		}
	}

	changed, err := fn(store)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	snapshot, err := store.Snapshot()
	if err != nil {
		return err
	}
	return kv.Set(localstore.KeyShoppingList, snapshot)
}

// withBudgetStore loads the budget state, runs fn, and persists the
// state back when fn reports a change.
func withBudgetStore(storePath string, fn func(*budgetstate.Store) (changed bool, err error)) error {
	kv, err := localstore.Open(storePath)
	if err != nil {
		return err
	}
	defer kv.Close()

	store := budgetstate.NewStore()
	data, err := kv.Get(localstore.KeyBudget)
	if err != nil && !errors.Is(err, localstore.ErrKeyNotFound) {
		return err
	}
	if data != nil {
		if err := store.Restore(data); err != nil {
			return fmt.Errorf("corrupt budget state: %w", err)
		}
	}

	changed, err := fn(store)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}

	snapshot, err := store.Snapshot()
	if err != nil {
		return err
	}
	return kv.Set(localstore.KeyBudget, snapshot)
}
