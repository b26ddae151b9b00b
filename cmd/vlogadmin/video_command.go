package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// publishTimeLayout is the format accepted by --publish flags.
const publishTimeLayout = "2006-01-02 15:04"

func parsePublishTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(publishTimeLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid publish time %q (want %q)", value, publishTimeLayout)
	}
	return t, nil
}

func newVideoCommand(ctx *commandContext) *cobra.Command {
	videoCmd := &cobra.Command{
		Use:   "video",
		Short: "Manage videos",
	}

	var (
		filename   string
		title      string
		authorNote string
		publish    string
	)

	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a video (publishes immediately unless --publish is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.open(); err != nil {
				return err
			}
			defer ctx.close()

			publishAt, err := parsePublishTime(publish)
			if err != nil {
				return err
			}

			video, err := ctx.videos.Create(cmd.Context(), filename, title, authorNote, publishAt)
			if err != nil {
				return err
			}

			fmt.Printf("added video %s (%s), publishes %s\n",
				video.ID, video.Filename, video.PublishAt.Format(publishTimeLayout))
			return nil
		},
	}
	addCmd.Flags().StringVar(&filename, "filename", "", "media asset filename")
	addCmd.Flags().StringVar(&title, "title", "", "display title")
	addCmd.Flags().StringVar(&authorNote, "note", "", "author's note about the video")
	addCmd.Flags().StringVar(&publish, "publish", "", "publish time, e.g. \"2026-09-01 18:00\" (default: now)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all videos, future-dated ones included",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.open(); err != nil {
				return err
			}
			defer ctx.close()

			videos, err := ctx.videos.List(cmd.Context())
			if err != nil {
				return err
			}

			now := time.Now()
			for _, v := range videos {
				state := "published"
				if !v.Published(now) {
					state = "scheduled"
				}
				fmt.Printf("%s  %-9s  %s  %q\n",
					v.ID, state, v.PublishAt.Format(publishTimeLayout), v.Title)
			}
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <id>",
		Short: "Edit a video's fields (flags left unset keep their value)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.open(); err != nil {
				return err
			}
			defer ctx.close()

			publishAt, err := parsePublishTime(publish)
			if err != nil {
				return err
			}

			video, err := ctx.videos.Update(cmd.Context(), args[0], filename, title, authorNote, publishAt)
			if err != nil {
				return err
			}

			fmt.Printf("updated video %s\n", video.ID)
			return nil
		},
	}
	setCmd.Flags().StringVar(&filename, "filename", "", "media asset filename")
	setCmd.Flags().StringVar(&title, "title", "", "display title")
	setCmd.Flags().StringVar(&authorNote, "note", "", "author's note about the video")
	setCmd.Flags().StringVar(&publish, "publish", "", "publish time, e.g. \"2026-09-01 18:00\"")

	rmCmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a video (its comments survive, unlinked)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.open(); err != nil {
				return err
			}
			defer ctx.close()

			if err := ctx.videos.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("deleted video %s\n", args[0])
			return nil
		},
	}

	videoCmd.AddCommand(addCmd, listCmd, setCmd, rmCmd)
	return videoCmd
}
