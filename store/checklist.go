package store

import (
	"context"
	"errors"

	"github.com/Kritika0027/IDCC/types"
	"github.com/jackc/pgx/v5"
)

const checklistItemColumns = `id, requirement_id, sub_requirement_id, title, description,
	is_completed, sort_order, created_at, updated_at`

func scanChecklistItem(row pgx.Row) (*types.ChecklistItem, error) {
	item := &types.ChecklistItem{}
	err := row.Scan(
		&item.ID,
		&item.RequirementID,
		&item.SubRequirementID,
		&item.Title,
		&item.Description,
		&item.IsCompleted,
		&item.Order,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *PostgresStore) CreateChecklistItem(ctx context.Context, item types.ChecklistItem) (*types.ChecklistItem, error) {
	query := `INSERT INTO checklist_items (requirement_id, sub_requirement_id, title, description, is_completed, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + checklistItemColumns

	row := s.pool.QueryRow(ctx, query,
		item.RequirementID,
		item.SubRequirementID,
		item.Title,
		item.Description,
		item.IsCompleted,
		item.Order,
	)
	return scanChecklistItem(row)
}

func (s *PostgresStore) GetChecklistItem(ctx context.Context, id int64) (*types.ChecklistItem, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+checklistItemColumns+` FROM checklist_items WHERE id = $1`, id)
	return scanChecklistItem(row)
}

func (s *PostgresStore) ListChecklistByRequirement(ctx context.Context, requirementID int64) ([]types.ChecklistItem, error) {
	return s.listChecklist(ctx,
		`SELECT `+checklistItemColumns+` FROM checklist_items WHERE requirement_id = $1 ORDER BY sort_order, id`,
		requirementID)
}

func (s *PostgresStore) ListChecklistBySubRequirement(ctx context.Context, subRequirementID int64) ([]types.ChecklistItem, error) {
	return s.listChecklist(ctx,
		`SELECT `+checklistItemColumns+` FROM checklist_items WHERE sub_requirement_id = $1 ORDER BY sort_order, id`,
		subRequirementID)
}

func (s *PostgresStore) listChecklist(ctx context.Context, query string, id int64) ([]types.ChecklistItem, error) {
	rows, err := s.pool.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []types.ChecklistItem{}
	for rows.Next() {
		item, err := scanChecklistItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (s *PostgresStore) UpdateChecklistItem(ctx context.Context, id int64, changes map[string]any) (*types.ChecklistItem, error) {
	if len(changes) > 0 {
		query, args := buildUpdateQuery("checklist_items", id, changes)
		tag, err := s.pool.Exec(ctx, query, args...)
		if err != nil {
			return nil, err
		}
		if tag.RowsAffected() == 0 {
			return nil, ErrNotFound
		}
	}
	return s.GetChecklistItem(ctx, id)
}

func (s *PostgresStore) DeleteChecklistItem(ctx context.Context, id int64) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM checklist_items WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
