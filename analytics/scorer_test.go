package analytics

import (
	"testing"

	"github.com/Kritika0027/IDCC/types"
	"github.com/stretchr/testify/assert"
)

func TestScore_CleanResultsScoreFull(t *testing.T) {
	req := &types.Requirement{}
	results := []Result{{Valid: true}, {Valid: true}, {Valid: true}}
	assert.Equal(t, 100, Score(req, results))
}

func TestScore_Penalties(t *testing.T) {
	req := &types.Requirement{}
	results := []Result{{
		Errors:   []string{"e1", "e2"},
		Warnings: []string{"w1", "w2", "w3"},
	}}
	// 100 - 2*15 - 3*5
	assert.Equal(t, 55, Score(req, results))
}

func TestScore_NeverBelowZero(t *testing.T) {
	req := &types.Requirement{}
	results := []Result{{Errors: make([]string, 10)}}
	assert.Equal(t, 0, Score(req, results))
}

func TestScore_NeverAboveHundred(t *testing.T) {
	req := &types.Requirement{
		SubRequirements: make([]types.SubRequirement, 6),
		ChecklistItems:  make([]types.ChecklistItem, 8),
	}
	assert.Equal(t, 100, Score(req, nil))
}

func TestScore_SubRequirementBonusCapped(t *testing.T) {
	results := []Result{{Errors: []string{"e1", "e2"}}} // base 70

	req := &types.Requirement{SubRequirements: make([]types.SubRequirement, 3)}
	assert.Equal(t, 76, Score(req, results))

	req.SubRequirements = make([]types.SubRequirement, 50)
	assert.Equal(t, 80, Score(req, results))
}

func TestScore_ChecklistBonusCapped(t *testing.T) {
	results := []Result{{Errors: []string{"e1", "e2"}}} // base 70

	req := &types.Requirement{ChecklistItems: make([]types.ChecklistItem, 3)}
	assert.Equal(t, 73, Score(req, results))

	req.ChecklistItems = make([]types.ChecklistItem, 50)
	assert.Equal(t, 75, Score(req, results))
}

func TestScore_Deterministic(t *testing.T) {
	req := &types.Requirement{
		SubRequirements: make([]types.SubRequirement, 2),
		ChecklistItems:  make([]types.ChecklistItem, 2),
	}
	results := []Result{{Warnings: []string{"w1"}}}

	first := Score(req, results)
	for range 10 {
		assert.Equal(t, first, Score(req, results))
	}
}
