package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harmonic/launchkit/internal/database/repository"
	"github.com/harmonic/launchkit/internal/section"
	"github.com/harmonic/launchkit/internal/taxonomy"
)

func newListCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List application records",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string, e *env) error {
			ctx := cmd.Context()
			var apps []repository.App
			var err error
			if category != "" {
				c, ok := taxonomy.Parse(category)
				if !ok {
					return fmt.Errorf("unknown category %q", category)
				}
				apps, err = e.apps.ListByCategory(ctx, c)
			} else {
				apps, err = e.apps.List(ctx)
			}
			if err != nil {
				return err
			}
			printApps(apps)
			return nil
		}),
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "filter by category name")
	return cmd
}

func newSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "Show the alphabetical section listing",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string, e *env) error {
			apps, err := e.apps.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range section.Build(apps, nil) {
				fmt.Printf("%s\n", s.Header)
				for _, a := range s.Apps {
					fmt.Printf("  %-40s %s\n", a.Name, a.Package)
				}
			}
			return nil
		}),
	}
}

func newSearchCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search applications by name",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string, e *env) error {
			apps, err := e.find.Search(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			printApps(apps)
			return nil
		}),
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum results")
	return cmd
}

func newRecentCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "Show recently launched applications",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string, e *env) error {
			apps, err := e.find.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			printApps(apps)
			return nil
		}),
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "maximum results")
	return cmd
}

func newTouchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "touch <package>",
		Short: "Record a launch of the given application",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string, e *env) error {
			return e.apps.Touch(cmd.Context(), args[0], time.Now().UTC().UnixMilli())
		}),
	}
}

func newCategorizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categorize <package> <category>",
		Short: "Override an application's category",
		Long: "Sets the category by hand. The record is marked user-categorized and " +
			"automatic classification will no longer change it.",
		Args: cobra.ExactArgs(2),
		RunE: run(func(cmd *cobra.Command, args []string, e *env) error {
			c, ok := taxonomy.Parse(args[1])
			if !ok {
				return fmt.Errorf("unknown category %q (valid: %s)", args[1], categoryNames())
			}
			return e.apps.SetCategory(cmd.Context(), args[0], c)
		}),
	}
}

func printApps(apps []repository.App) {
	for _, a := range apps {
		marker := " "
		if a.UserCategorized {
			marker = "*"
		}
		fmt.Printf("%s %-40s %-14s %s\n", marker, a.Name, a.Category, a.Package)
	}
}

func categoryNames() string {
	var names []string
	for _, c := range taxonomy.All() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
