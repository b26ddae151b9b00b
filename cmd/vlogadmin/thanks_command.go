package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newThanksCommand(ctx *commandContext) *cobra.Command {
	thanksCmd := &cobra.Command{
		Use:   "thanks",
		Short: "Manage the acknowledgements shown on the Thanks page",
	}

	var (
		name        string
		link        string
		description string
	)

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add an acknowledgement",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.open(); err != nil {
				return err
			}
			defer ctx.close()

			ack, err := ctx.acks.Create(cmd.Context(), name, link, description)
			if err != nil {
				return err
			}

			fmt.Printf("added acknowledgement %s (%s)\n", ack.ID, ack.Name)
			return nil
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "who to thank (required)")
	addCmd.Flags().StringVar(&link, "link", "", "URL for the entry")
	addCmd.Flags().StringVar(&description, "description", "", "what they are thanked for")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List acknowledgements",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.open(); err != nil {
				return err
			}
			defer ctx.close()

			acks, err := ctx.acks.List(cmd.Context())
			if err != nil {
				return err
			}

			for _, a := range acks {
				fmt.Printf("%s  %s  %s\n", a.ID, a.Name, a.Link)
			}
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete an acknowledgement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.open(); err != nil {
				return err
			}
			defer ctx.close()

			if err := ctx.acks.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("deleted acknowledgement %s\n", args[0])
			return nil
		},
	}

	thanksCmd.AddCommand(addCmd, listCmd, rmCmd)
	return thanksCmd
}
