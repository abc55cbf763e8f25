package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newFavoriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorite",
		Short: "Manage favorites",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <package> <position>",
			Short: "Add or move a favorite",
			Args:  cobra.ExactArgs(2),
			RunE: run(func(cmd *cobra.Command, args []string, e *env) error {
				pos, err := strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("position %q: %w", args[1], err)
				}
				return e.org.AddFavorite(cmd.Context(), args[0], pos)
			}),
		},
		&cobra.Command{
			Use:   "remove <package>",
			Short: "Remove a favorite",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(cmd *cobra.Command, args []string, e *env) error {
				return e.org.RemoveFavorite(cmd.Context(), args[0])
			}),
		},
		&cobra.Command{
			Use:   "list",
			Short: "List favorites",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, _ []string, e *env) error {
				favs, err := e.org.Favorites.List(cmd.Context())
				if err != nil {
					return err
				}
				for _, f := range favs {
					fmt.Printf("%2d  %s\n", f.Position, f.Package)
				}
				return nil
			}),
		},
	)
	return cmd
}
