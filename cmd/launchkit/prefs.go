package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show and change display preferences",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show current preferences",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, _ []string, e *env) error {
				ctx := cmd.Context()
				mode, err := e.org.DrawerViewMode(ctx)
				if err != nil {
					return err
				}
				size, err := e.org.IconSize(ctx)
				if err != nil {
					return err
				}
				done, err := e.org.OnboardingCompleted(ctx)
				if err != nil {
					return err
				}
				fmt.Printf("drawer-view-mode      %s\n", mode)
				fmt.Printf("icon-size             %s\n", size)
				fmt.Printf("onboarding-completed  %t\n", done)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "set-view-mode <list|grid>",
			Short: "Set the drawer view mode",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(cmd *cobra.Command, args []string, e *env) error {
				return e.org.SetDrawerViewMode(cmd.Context(), args[0])
			}),
		},
		&cobra.Command{
			Use:   "set-icon-size <small|medium|large>",
			Short: "Set the icon size",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(cmd *cobra.Command, args []string, e *env) error {
				return e.org.SetIconSize(cmd.Context(), args[0])
			}),
		},
		&cobra.Command{
			Use:   "complete-onboarding",
			Short: "Mark onboarding as completed",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, _ []string, e *env) error {
				return e.org.SetOnboardingCompleted(cmd.Context())
			}),
		},
	)
	return cmd
}
