package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/xid"

	"github.com/johnrjervis/juggling-vlog/internal/apperror"
	"github.com/johnrjervis/juggling-vlog/internal/model"
	"github.com/johnrjervis/juggling-vlog/internal/repository"
)

var _ repository.AcknowledgementRepository = (*AcknowledgementRepo)(nil)

// AcknowledgementRepo implements repository.AcknowledgementRepository.
type AcknowledgementRepo struct {
	conn *sql.DB
}

func (r *AcknowledgementRepo) Create(ctx context.Context, ack *model.Acknowledgement) error {
	ack.ID = xid.New().String()

	_, err := r.conn.ExecContext(ctx,
		`INSERT INTO acknowledgements (id, name, link, description)
		 VALUES (?, ?, ?, ?)`,
		ack.ID, ack.Name, ack.Link, ack.Description,
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating acknowledgement: %w", err)
	}

	return nil
}

// List returns all acknowledgements sorted by name for a stable Thanks page.
func (r *AcknowledgementRepo) List(ctx context.Context) ([]model.Acknowledgement, error) {
	rows, err := r.conn.QueryContext(ctx,
		`SELECT id, name, link, description
		 FROM acknowledgements
		 ORDER BY name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing acknowledgements: %w", err)
	}
	defer rows.Close()

	var acks []model.Acknowledgement
	for rows.Next() {
		var a model.Acknowledgement
		if err := rows.Scan(&a.ID, &a.Name, &a.Link, &a.Description); err != nil {
			return nil, fmt.Errorf("sqlite: scanning acknowledgement row: %w", err)
		}
		acks = append(acks, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating acknowledgements: %w", err)
	}

	return acks, nil
}

func (r *AcknowledgementRepo) Delete(ctx context.Context, id string) error {
	result, err := r.conn.ExecContext(ctx,
		`DELETE FROM acknowledgements WHERE id = ?`,
		id,
	)
	if err != nil {
		return fmt.Errorf("sqlite: deleting acknowledgement %s: %w", id, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperror.NotFound("acknowledgement", id)
	}

	return nil
}
