package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grocerly/grocerly/internal/localstore"
)

func newThemeCommand(storePath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [light|dark]",
		Short: "Show or set the display theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kv, err := localstore.Open(*storePath)
			if err != nil {
				return err
			}
			defer kv.Close()

			if len(args) == 0 {
				value, err := kv.Get(localstore.KeyTheme)
				if errors.Is(err, localstore.ErrKeyNotFound) {
					fmt.Fprintln(cmd.OutOrStdout(), "light")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(value))
				return nil
			}

			theme := args[0]
			if theme != "light" && theme != "dark" {
				return fmt.Errorf("invalid theme %q: must be light or dark", theme)
			}
			if err := kv.Set(localstore.KeyTheme, []byte(theme)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", theme)
			return nil
		},
	}
}
