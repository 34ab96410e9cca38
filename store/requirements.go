package store

import (
	"context"
	"errors"

	"github.com/Kritika0027/IDCC/types"
	"github.com/jackc/pgx/v5"
)

const requirementColumns = `id, project_name, business_owner, business_unit, title, description,
	priority, status, expected_outcome, success_criteria, constraints, dependencies,
	desired_deadline, category, quality_score, created_by, created_at, updated_at`

func scanRequirement(row pgx.Row) (*types.Requirement, error) {
	req := &types.Requirement{}
	err := row.Scan(
		&req.ID,
		&req.ProjectName,
		&req.BusinessOwner,
		&req.BusinessUnit,
		&req.Title,
		&req.Description,
		&req.Priority,
		&req.Status,
		&req.ExpectedOutcome,
		&req.SuccessCriteria,
		&req.Constraints,
		&req.Dependencies,
		&req.DesiredDeadline,
		&req.Category,
		&req.QualityScore,
		&req.CreatedBy,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func (s *PostgresStore) CreateRequirement(ctx context.Context, req types.Requirement) (*types.Requirement, error) {
	query := `INSERT INTO requirements (project_name, business_owner, business_unit, title, description,
		priority, status, expected_outcome, success_criteria, constraints, dependencies,
		desired_deadline, category, quality_score, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + requirementColumns

	row := s.pool.QueryRow(ctx, query,
		req.ProjectName,
		req.BusinessOwner,
		req.BusinessUnit,
		req.Title,
		req.Description,
		req.Priority,
		req.Status,
		req.ExpectedOutcome,
		req.SuccessCriteria,
		req.Constraints,
		req.Dependencies,
		req.DesiredDeadline,
		req.Category,
		req.QualityScore,
		req.CreatedBy,
	)

	created, err := scanRequirement(row)
	if err != nil {
		return nil, err
	}
	created.SubRequirements = []types.SubRequirement{}
	created.ChecklistItems = []types.ChecklistItem{}
	created.Tags = []types.Tag{}
	return created, nil
}

func (s *PostgresStore) GetRequirement(ctx context.Context, id int64) (*types.Requirement, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+requirementColumns+` FROM requirements WHERE id = $1`, id)
	req, err := scanRequirement(row)
	if err != nil {
		return nil, err
	}
	if err := s.loadChildren(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *PostgresStore) ListRequirements(ctx context.Context, skip, limit int) ([]types.Requirement, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+requirementColumns+` FROM requirements ORDER BY created_at DESC OFFSET $1 LIMIT $2`,
		skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reqs := []types.Requirement{}
	for rows.Next() {
		req, err := scanRequirement(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range reqs {
		if err := s.loadChildren(ctx, &reqs[i]); err != nil {
			return nil, err
		}
	}
	return reqs, nil
}

func (s *PostgresStore) UpdateRequirement(ctx context.Context, id int64, changes map[string]any) (*types.Requirement, error) {
	if len(changes) > 0 {
		query, args := buildUpdateQuery("requirements", id, changes)
		tag, err := s.pool.Exec(ctx, query, args...)
		if err != nil {
			return nil, err
		}
		if tag.RowsAffected() == 0 {
			return nil, ErrNotFound
		}
	}
	return s.GetRequirement(ctx, id)
}

func (s *PostgresStore) DeleteRequirement(ctx context.Context, id int64) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM requirements WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PostgresStore) loadChildren(ctx context.Context, req *types.Requirement) error {
	subs, err := s.ListSubRequirements(ctx, req.ID)
	if err != nil {
		return err
	}
	req.SubRequirements = subs

	items, err := s.ListChecklistByRequirement(ctx, req.ID)
	if err != nil {
		return err
	}
	req.ChecklistItems = items

	tags, err := s.listRequirementTags(ctx, req.ID)
	if err != nil {
		return err
	}
	req.Tags = tags
	return nil
}
