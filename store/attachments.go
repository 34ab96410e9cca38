package store

import (
	"context"
	"errors"

	"github.com/Kritika0027/IDCC/types"
	"github.com/jackc/pgx/v5"
)

const attachmentColumns = `id, requirement_id, filename, file_path, file_type, file_size,
	mime_type, is_image, extracted_text, processing_status, created_at, updated_at`

func scanAttachment(row pgx.Row) (*types.Attachment, error) {
	att := &types.Attachment{}
	err := row.Scan(
		&att.ID,
		&att.RequirementID,
		&att.Filename,
		&att.FilePath,
		&att.FileType,
		&att.FileSize,
		&att.MimeType,
		&att.IsImage,
		&att.ExtractedText,
		&att.ProcessingStatus,
		&att.CreatedAt,
		&att.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return att, nil
}

func (s *PostgresStore) CreateAttachment(ctx context.Context, att types.Attachment) (*types.Attachment, error) {
	query := `INSERT INTO attachments (requirement_id, filename, file_path, file_type, file_size,
		mime_type, is_image, extracted_text, processing_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + attachmentColumns

	row := s.pool.QueryRow(ctx, query,
		att.RequirementID,
		att.Filename,
		att.FilePath,
		att.FileType,
		att.FileSize,
		att.MimeType,
		att.IsImage,
		att.ExtractedText,
		att.ProcessingStatus,
	)
	return scanAttachment(row)
}

func (s *PostgresStore) ListAttachments(ctx context.Context, requirementID int64) ([]types.Attachment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+attachmentColumns+` FROM attachments WHERE requirement_id = $1 ORDER BY id`,
		requirementID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	atts := []types.Attachment{}
	for rows.Next() {
		att, err := scanAttachment(rows)
		if err != nil {
			return nil, err
		}
		atts = append(atts, *att)
	}
	return atts, rows.Err()
}
