package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCommentCommand(ctx *commandContext) *cobra.Command {
	commentCmd := &cobra.Command{
		Use:   "comment",
		Short: "Moderate visitor comments",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List every comment, hidden and orphaned ones included",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.open(); err != nil {
				return err
			}
			defer ctx.close()

			comments, err := ctx.comments.ListAll(cmd.Context())
			if err != nil {
				return err
			}

			for _, c := range comments {
				visibility := "visible"
				if !c.IsApproved {
					visibility = "hidden"
				}
				videoRef := c.VideoID
				if videoRef == "" {
					videoRef = "(video deleted)"
				}
				fmt.Printf("%s  %-7s  video=%s  %s: %q\n",
					c.ID, visibility, videoRef, c.Author, c.Text)
			}
			return nil
		},
	}

	approveCmd := &cobra.Command{
		Use:   "approve <id>",
		Short: "Make a hidden comment visible again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.open(); err != nil {
				return err
			}
			defer ctx.close()

			if err := ctx.comments.SetApproved(cmd.Context(), args[0], true); err != nil {
				return err
			}

			fmt.Printf("approved comment %s\n", args[0])
			return nil
		},
	}

	hideCmd := &cobra.Command{
		Use:   "hide <id>",
		Short: "Hide a comment from the site without deleting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.open(); err != nil {
				return err
			}
			defer ctx.close()

			if err := ctx.comments.SetApproved(cmd.Context(), args[0], false); err != nil {
				return err
			}

			fmt.Printf("hid comment %s\n", args[0])
			return nil
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a comment permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.open(); err != nil {
				return err
			}
			defer ctx.close()

			if err := ctx.comments.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("deleted comment %s\n", args[0])
			return nil
		},
	}

	commentCmd.AddCommand(listCmd, approveCmd, hideCmd, rmCmd)
	return commentCmd
}
