package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/johnrjervis/juggling-vlog/internal/config"
	"github.com/johnrjervis/juggling-vlog/internal/repository/sqlite"
	"github.com/johnrjervis/juggling-vlog/internal/service"
)

// commandContext carries the lazily opened database and services shared by
// every subcommand.
type commandContext struct {
	configFlag *string

	db       *sqlite.DB
	videos   *service.VideoService
	comments *service.CommentService
	acks     *service.AcknowledgementService
}

// open loads the config and opens the database. Called from each command's
// RunE rather than PersistentPreRunE so `vlogadmin help` never touches the
// database file.
func (c *commandContext) open() error {
	path := *c.configFlag
	if path == "" {
		path = config.Path()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	db, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return err
	}

	// The CLI is interactive; warnings and errors on stderr are enough.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	c.db = db
	c.videos = service.NewVideoService(db.Videos(), logger, nil)
	c.comments = service.NewCommentService(db.Comments(), db.Videos(), logger, nil)
	c.acks = service.NewAcknowledgementService(db.Acknowledgements(), logger)
	return nil
}

func (c *commandContext) close() {
	if c.db != nil {
		c.db.Close()
	}
}

func newRootCommand() *cobra.Command {
	var configFlag string

	ctx := &commandContext{configFlag: &configFlag}

	rootCmd := &cobra.Command{
		Use:           "vlogadmin",
		Short:         "Manage the juggling vlog's videos, comments, and acknowledgements",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newVideoCommand(ctx))
	rootCmd.AddCommand(newCommentCommand(ctx))
	rootCmd.AddCommand(newThanksCommand(ctx))

	return rootCmd
}
