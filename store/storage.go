package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"github.com/Kritika0027/IDCC/types"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

type Storer interface {
	CreateRequirement(ctx context.Context, req types.Requirement) (*types.Requirement, error)
	GetRequirement(ctx context.Context, id int64) (*types.Requirement, error)
	ListRequirements(ctx context.Context, skip, limit int) ([]types.Requirement, error)
	UpdateRequirement(ctx context.Context, id int64, changes map[string]any) (*types.Requirement, error)
	DeleteRequirement(ctx context.Context, id int64) (bool, error)

	CreateSubRequirement(ctx context.Context, sub types.SubRequirement) (*types.SubRequirement, error)
	GetSubRequirement(ctx context.Context, id int64) (*types.SubRequirement, error)
	ListSubRequirements(ctx context.Context, requirementID int64) ([]types.SubRequirement, error)
	UpdateSubRequirement(ctx context.Context, id int64, changes map[string]any) (*types.SubRequirement, error)
	DeleteSubRequirement(ctx context.Context, id int64) (bool, error)

	CreateChecklistItem(ctx context.Context, item types.ChecklistItem) (*types.ChecklistItem, error)
	GetChecklistItem(ctx context.Context, id int64) (*types.ChecklistItem, error)
	ListChecklistByRequirement(ctx context.Context, requirementID int64) ([]types.ChecklistItem, error)
	ListChecklistBySubRequirement(ctx context.Context, subRequirementID int64) ([]types.ChecklistItem, error)
	UpdateChecklistItem(ctx context.Context, id int64, changes map[string]any) (*types.ChecklistItem, error)
	DeleteChecklistItem(ctx context.Context, id int64) (bool, error)

	CreateAttachment(ctx context.Context, att types.Attachment) (*types.Attachment, error)
	ListAttachments(ctx context.Context, requirementID int64) ([]types.Attachment, error)

	CreateTag(ctx context.Context, tag types.Tag) (*types.Tag, error)
	ListTags(ctx context.Context) ([]types.Tag, error)
	DeleteTag(ctx context.Context, id int64) (bool, error)
	LinkTag(ctx context.Context, requirementID, tagID int64) error
	UnlinkTag(ctx context.Context, requirementID, tagID int64) (bool, error)
}

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, connStr string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{
		pool: pool,
	}, nil
}

func (s *PostgresStore) Init(ctx context.Context) error {
	return s.createTables(ctx)
}

func (s *PostgresStore) createTables(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS requirements (
		id BIGSERIAL PRIMARY KEY,
		project_name TEXT NOT NULL,
		business_owner TEXT NOT NULL,
		business_unit TEXT NOT NULL DEFAULT '',
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		priority TEXT NOT NULL DEFAULT 'medium',
		status TEXT NOT NULL DEFAULT 'draft',
		expected_outcome TEXT NOT NULL DEFAULT '',
		success_criteria TEXT NOT NULL DEFAULT '',
		constraints TEXT NOT NULL DEFAULT '',
		dependencies TEXT NOT NULL DEFAULT '',
		desired_deadline TIMESTAMP WITH TIME ZONE,
		category TEXT NOT NULL DEFAULT '',
		quality_score INTEGER,
		created_by TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
		updated_at TIMESTAMP WITH TIME ZONE
	);

	CREATE INDEX IF NOT EXISTS idx_requirements_created_at ON requirements(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_requirements_project ON requirements(project_name);

	CREATE TABLE IF NOT EXISTS sub_requirements (
		id BIGSERIAL PRIMARY KEY,
		requirement_id BIGINT NOT NULL REFERENCES requirements(id) ON DELETE CASCADE,
		parent_id BIGINT REFERENCES sub_requirements(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		priority TEXT NOT NULL DEFAULT 'medium',
		status TEXT NOT NULL DEFAULT 'draft',
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
		updated_at TIMESTAMP WITH TIME ZONE
	);

	CREATE INDEX IF NOT EXISTS idx_sub_requirements_requirement ON sub_requirements(requirement_id);

	CREATE TABLE IF NOT EXISTS checklist_items (
		id BIGSERIAL PRIMARY KEY,
		requirement_id BIGINT REFERENCES requirements(id) ON DELETE CASCADE,
		sub_requirement_id BIGINT REFERENCES sub_requirements(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		is_completed BOOLEAN NOT NULL DEFAULT false,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
		updated_at TIMESTAMP WITH TIME ZONE
	);

	CREATE INDEX IF NOT EXISTS idx_checklist_items_requirement ON checklist_items(requirement_id);
	CREATE INDEX IF NOT EXISTS idx_checklist_items_sub_requirement ON checklist_items(sub_requirement_id);

	CREATE TABLE IF NOT EXISTS attachments (
		id BIGSERIAL PRIMARY KEY,
		requirement_id BIGINT NOT NULL REFERENCES requirements(id) ON DELETE CASCADE,
		filename TEXT NOT NULL,
		file_path TEXT NOT NULL,
		file_type TEXT NOT NULL,
		file_size BIGINT NOT NULL,
		mime_type TEXT NOT NULL DEFAULT '',
		is_image BOOLEAN NOT NULL DEFAULT false,
		extracted_text TEXT NOT NULL DEFAULT '',
		processing_status TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
		updated_at TIMESTAMP WITH TIME ZONE
	);

	CREATE INDEX IF NOT EXISTS idx_attachments_requirement ON attachments(requirement_id);

	CREATE TABLE IF NOT EXISTS tags (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT '',
		color TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS requirement_tags (
		id BIGSERIAL PRIMARY KEY,
		requirement_id BIGINT NOT NULL REFERENCES requirements(id) ON DELETE CASCADE,
		tag_id BIGINT NOT NULL REFERENCES tags(id) ON DELETE CASCADE,
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now(),
		UNIQUE (requirement_id, tag_id)
	);
	`
	_, err := s.pool.Exec(ctx, query)
	return err
}

// buildUpdateQuery renders a partial UPDATE for the given table from a
// column -> value map. Columns are sorted so the statement is deterministic.
// updated_at is always touched.
func buildUpdateQuery(table string, id int64, changes map[string]any) (string, []any) {
	cols := make([]string, 0, len(changes))
	for col := range changes {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	query := fmt.Sprintf("UPDATE %s SET updated_at = now()", table)
	args := make([]any, 0, len(cols)+1)
	for i, col := range cols {
		query += fmt.Sprintf(", %s = $%d", col, i+1)
		args = append(args, changes[col])
	}
	query += fmt.Sprintf(" WHERE id = $%d", len(cols)+1)
	args = append(args, id)

	return query, args
}

func (s *PostgresStore) Close() error {
	if s.pool != nil {
		s.pool.Close()
		log.Println("postgres connection pool closed")
	}
	return nil
}
