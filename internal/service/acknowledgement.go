package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/johnrjervis/juggling-vlog/internal/apperror"
	"github.com/johnrjervis/juggling-vlog/internal/model"
	"github.com/johnrjervis/juggling-vlog/internal/repository"
)

// AcknowledgementService manages the Thanks-page entries. Reads serve the
// site, writes serve the admin CLI.
type AcknowledgementService struct {
	repo   repository.AcknowledgementRepository
	logger *slog.Logger
}

func NewAcknowledgementService(repo repository.AcknowledgementRepository, logger *slog.Logger) *AcknowledgementService {
	return &AcknowledgementService{
		repo:   repo,
		logger: logger,
	}
}

// List returns all acknowledgements.
func (s *AcknowledgementService) List(ctx context.Context) ([]model.Acknowledgement, error) {
	acks, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list acknowledgements", slog.String("error", err.Error()))
		return nil, fmt.Errorf("listing acknowledgements: %w", err)
	}
	return acks, nil
}

// Create saves a new acknowledgement; the name is the one required field.
func (s *AcknowledgementService) Create(ctx context.Context, name, link, description string) (*model.Acknowledgement, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.ValidationFailed("name", "acknowledgement name is required")
	}

	ack := &model.Acknowledgement{
		Name:        name,
		Link:        strings.TrimSpace(link),
		Description: strings.TrimSpace(description),
	}

	if err := s.repo.Create(ctx, ack); err != nil {
		s.logger.Error("failed to create acknowledgement",
			slog.String("name", name),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("creating acknowledgement: %w", err)
	}

	s.logger.Info("acknowledgement created",
		slog.String("id", ack.ID),
		slog.String("name", ack.Name),
	)
	return ack, nil
}

// Delete removes an acknowledgement.
func (s *AcknowledgementService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("acknowledgement deleted", slog.String("id", id))
	return nil
}
