package store

import (
	"context"
	"errors"

	"github.com/Kritika0027/IDCC/types"
	"github.com/jackc/pgx/v5"
)

const subRequirementColumns = `id, requirement_id, parent_id, title, description,
	priority, status, sort_order, created_at, updated_at`

func scanSubRequirement(row pgx.Row) (*types.SubRequirement, error) {
	sub := &types.SubRequirement{}
	err := row.Scan(
		&sub.ID,
		&sub.RequirementID,
		&sub.ParentID,
		&sub.Title,
		&sub.Description,
		&sub.Priority,
		&sub.Status,
		&sub.Order,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (s *PostgresStore) CreateSubRequirement(ctx context.Context, sub types.SubRequirement) (*types.SubRequirement, error) {
	query := `INSERT INTO sub_requirements (requirement_id, parent_id, title, description, priority, status, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + subRequirementColumns

	row := s.pool.QueryRow(ctx, query,
		sub.RequirementID,
		sub.ParentID,
		sub.Title,
		sub.Description,
		sub.Priority,
		sub.Status,
		sub.Order,
	)
	return scanSubRequirement(row)
}

func (s *PostgresStore) GetSubRequirement(ctx context.Context, id int64) (*types.SubRequirement, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+subRequirementColumns+` FROM sub_requirements WHERE id = $1`, id)
	return scanSubRequirement(row)
}

func (s *PostgresStore) ListSubRequirements(ctx context.Context, requirementID int64) ([]types.SubRequirement, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+subRequirementColumns+` FROM sub_requirements WHERE requirement_id = $1 ORDER BY sort_order, id`,
		requirementID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []types.SubRequirement{}
	for rows.Next() {
		sub, err := scanSubRequirement(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, *sub)
	}
	return subs, rows.Err()
}

func (s *PostgresStore) UpdateSubRequirement(ctx context.Context, id int64, changes map[string]any) (*types.SubRequirement, error) {
	if len(changes) > 0 {
		query, args := buildUpdateQuery("sub_requirements", id, changes)
		tag, err := s.pool.Exec(ctx, query, args...)
		if err != nil {
			return nil, err
		}
		if tag.RowsAffected() == 0 {
			return nil, ErrNotFound
		}
	}
	return s.GetSubRequirement(ctx, id)
}

func (s *PostgresStore) DeleteSubRequirement(ctx context.Context, id int64) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM sub_requirements WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
