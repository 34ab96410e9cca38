package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildUpdateQuery_SortsColumns(t *testing.T) {
	query, args := buildUpdateQuery("requirements", 7, map[string]any{
		"title":    "Vendor portal",
		"priority": "high",
	})

	assert.Equal(t, "UPDATE requirements SET updated_at = now(), priority = $1, title = $2 WHERE id = $3", query)
	assert.Equal(t, []any{"high", "Vendor portal", int64(7)}, args)
}

func TestBuildUpdateQuery_NoChangesStillTouchesUpdatedAt(t *testing.T) {
	query, args := buildUpdateQuery("tags", 3, nil)

	assert.Equal(t, "UPDATE tags SET updated_at = now() WHERE id = $1", query)
	assert.Equal(t, []any{int64(3)}, args)
}

func TestBuildUpdateQuery_NilValuesPassThrough(t *testing.T) {
	query, args := buildUpdateQuery("requirements", 1, map[string]any{
		"desired_deadline": nil,
	})

	assert.Equal(t, "UPDATE requirements SET updated_at = now(), desired_deadline = $1 WHERE id = $2", query)
	assert.Equal(t, []any{nil, int64(1)}, args)
}
