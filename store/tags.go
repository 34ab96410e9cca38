package store

import (
	"context"
	"errors"

	"github.com/Kritika0027/IDCC/types"
	"github.com/jackc/pgx/v5"
)

const tagColumns = `id, name, description, color, created_at`

func scanTag(row pgx.Row) (*types.Tag, error) {
	tag := &types.Tag{}
	err := row.Scan(
		&tag.ID,
		&tag.Name,
		&tag.Description,
		&tag.Color,
		&tag.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return tag, nil
}

func (s *PostgresStore) CreateTag(ctx context.Context, tag types.Tag) (*types.Tag, error) {
	query := `INSERT INTO tags (name, description, color)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO UPDATE SET
			description = EXCLUDED.description,
			color = EXCLUDED.color
		RETURNING ` + tagColumns

	row := s.pool.QueryRow(ctx, query, tag.Name, tag.Description, tag.Color)
	return scanTag(row)
}

func (s *PostgresStore) ListTags(ctx context.Context) ([]types.Tag, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+tagColumns+` FROM tags ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []types.Tag{}
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, rows.Err()
}

func (s *PostgresStore) DeleteTag(ctx context.Context, id int64) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM tags WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PostgresStore) LinkTag(ctx context.Context, requirementID, tagID int64) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO requirement_tags (requirement_id, tag_id) VALUES ($1, $2)
		 ON CONFLICT (requirement_id, tag_id) DO NOTHING`,
		requirementID, tagID)
	return err
}

func (s *PostgresStore) UnlinkTag(ctx context.Context, requirementID, tagID int64) (bool, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM requirement_tags WHERE requirement_id = $1 AND tag_id = $2`,
		requirementID, tagID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PostgresStore) listRequirementTags(ctx context.Context, requirementID int64) ([]types.Tag, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT t.id, t.name, t.description, t.color, t.created_at
		 FROM tags t
		 JOIN requirement_tags rt ON rt.tag_id = t.id
		 WHERE rt.requirement_id = $1
		 ORDER BY t.name`,
		requirementID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []types.Tag{}
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}
	return tags, rows.Err()
}
