package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harmonic/launchkit/internal/database/repository"
)

func newDockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dock",
		Short: "Manage the dock",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show dock slot assignments",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, _ []string, e *env) error {
				slots, err := e.org.Dock.List(cmd.Context())
				if err != nil {
					return err
				}
				bound := map[int]string{}
				for _, s := range slots {
					bound[s.Slot] = s.Package
				}
				for i := 0; i < e.cfg.Dock.Slots; i++ {
					pkg := bound[i]
					if pkg == "" {
						pkg = "-"
					}
					fmt.Printf("%d  %s\n", i, pkg)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "set <slot=package>...",
			Short: "Replace the whole dock assignment",
			Args:  cobra.MinimumNArgs(1),
			RunE: run(func(cmd *cobra.Command, args []string, e *env) error {
				var slots []repository.DockSlot
				for _, arg := range args {
					part := strings.SplitN(arg, "=", 2)
					if len(part) != 2 {
						return fmt.Errorf("want slot=package, got %q", arg)
					}
					n, err := strconv.Atoi(part[0])
					if err != nil {
						return fmt.Errorf("slot %q: %w", part[0], err)
					}
					slots = append(slots, repository.DockSlot{Slot: n, Package: part[1]})
				}
				return e.org.SetDock(cmd.Context(), slots)
			}),
		},
		&cobra.Command{
			Use:   "put <slot> <package>",
			Short: "Assign one dock slot, keeping the rest",
			Args:  cobra.ExactArgs(2),
			RunE: run(func(cmd *cobra.Command, args []string, e *env) error {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("slot %q: %w", args[0], err)
				}
				return e.org.SetDockSlot(cmd.Context(), n, args[1])
			}),
		},
		&cobra.Command{
			Use:   "clear <slot>",
			Short: "Empty one dock slot",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(cmd *cobra.Command, args []string, e *env) error {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("slot %q: %w", args[0], err)
				}
				return e.org.SetDockSlot(cmd.Context(), n, "")
			}),
		},
	)
	return cmd
}
