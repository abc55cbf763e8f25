package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harmonic/launchkit/internal/taxonomy"
)

func newCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage the category order preference",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "order",
			Short: "Show the category order and which tabs are available",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, _ []string, e *env) error {
				ctx := cmd.Context()
				order, err := e.org.CategoryOrder(ctx)
				if err != nil {
					return err
				}
				apps, err := e.apps.List(ctx)
				if err != nil {
					return err
				}
				avail, err := e.org.AvailableCategories(ctx, apps)
				if err != nil {
					return err
				}
				shown := map[taxonomy.Category]bool{}
				for _, c := range avail {
					shown[c] = true
				}
				for _, c := range order {
					marker := " "
					if shown[c] {
						marker = "*"
					}
					fmt.Printf("%s %-14s %s %s\n", marker, c, c.Glyph(), c.Label())
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "set-order <name>...",
			Short: "Persist a new top-level category order",
			Args:  cobra.MinimumNArgs(1),
			RunE: run(func(cmd *cobra.Command, args []string, e *env) error {
				var order []taxonomy.Category
				for _, name := range args {
					c, ok := taxonomy.Parse(name)
					if !ok {
						return fmt.Errorf("unknown category %q", name)
					}
					if !taxonomy.IsTopLevel(c) {
						return fmt.Errorf("%q is a sub-category; order holds top-level categories", name)
					}
					order = append(order, c)
				}
				return e.org.SetCategoryOrder(cmd.Context(), order)
			}),
		},
	)
	return cmd
}
