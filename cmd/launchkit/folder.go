package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFolderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder",
		Short: "Manage folders",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "create <name>",
			Short: "Create an empty folder",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(cmd *cobra.Command, args []string, e *env) error {
				id, err := e.org.CreateFolder(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Println(id)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "rename <id> <name>",
			Short: "Rename a folder",
			Args:  cobra.ExactArgs(2),
			RunE: run(func(cmd *cobra.Command, args []string, e *env) error {
				return e.org.RenameFolder(cmd.Context(), args[0], args[1])
			}),
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a folder and its memberships",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(cmd *cobra.Command, args []string, e *env) error {
				return e.org.DeleteFolder(cmd.Context(), args[0])
			}),
		},
		&cobra.Command{
			Use:   "add <id> <package>",
			Short: "Append an application to a folder",
			Args:  cobra.ExactArgs(2),
			RunE: run(func(cmd *cobra.Command, args []string, e *env) error {
				return e.org.AddApp(cmd.Context(), args[0], args[1])
			}),
		},
		&cobra.Command{
			Use:   "remove <id> <package>",
			Short: "Remove an application from a folder",
			Args:  cobra.ExactArgs(2),
			RunE: run(func(cmd *cobra.Command, args []string, e *env) error {
				return e.org.RemoveApp(cmd.Context(), args[0], args[1])
			}),
		},
		&cobra.Command{
			Use:   "list",
			Short: "List folders and their members",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, _ []string, e *env) error {
				ctx := cmd.Context()
				folders, err := e.org.Folders.List(ctx)
				if err != nil {
					return err
				}
				for _, f := range folders {
					fmt.Printf("%s  %s (pos %d)\n", f.ID, f.Name, f.Position)
					members, err := e.org.Folders.Members(ctx, f.ID)
					if err != nil {
						return err
					}
					for _, m := range members {
						fmt.Printf("  %2d  %s\n", m.Position, m.Package)
					}
				}
				return nil
			}),
		},
	)
	return cmd
}
