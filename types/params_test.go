package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRequirementParams_Validate(t *testing.T) {
	params := CreateRequirementParams{}
	errs := Validate(&params)
	require.Len(t, errs, 4)
	assert.Equal(t, "failed on 'required' tag", errs["ProjectName"])
	assert.Equal(t, "failed on 'required' tag", errs["BusinessOwner"])
	assert.Equal(t, "failed on 'required' tag", errs["Title"])
	assert.Equal(t, "failed on 'required' tag", errs["Description"])
}

func TestCreateRequirementParams_PriorityOneOf(t *testing.T) {
	params := CreateRequirementParams{
		ProjectName:   "Portal",
		BusinessOwner: "Jane Doe",
		Title:         "Vendor portal login",
		Description:   "Deliver the vendor portal with login pages.",
		Priority:      Priority("urgent"),
	}
	errs := Validate(&params)
	require.Len(t, errs, 1)
	assert.Equal(t, "failed on 'oneof' tag", errs["Priority"])

	params.Priority = PriorityHigh
	assert.Empty(t, Validate(&params))
}

func TestCreateRequirementParams_ToRequirementDefaults(t *testing.T) {
	params := CreateRequirementParams{
		ProjectName:   "Portal",
		BusinessOwner: "Jane Doe",
		Title:         "Vendor portal login",
		Description:   "Deliver the vendor portal with login pages.",
	}

	req := params.ToRequirement()
	assert.Equal(t, PriorityMedium, req.Priority)
	assert.Equal(t, StatusDraft, req.Status)
}

func TestUpdateRequirementParams_Changes(t *testing.T) {
	title := "New title"
	score := 85
	deadline := time.Now().Add(24 * time.Hour)
	params := UpdateRequirementParams{
		Title:           &title,
		QualityScore:    &score,
		DesiredDeadline: &deadline,
	}

	changes := params.Changes()
	require.Len(t, changes, 3)
	assert.Equal(t, "New title", changes["title"])
	assert.Equal(t, 85, changes["quality_score"])
	assert.Equal(t, deadline, changes["desired_deadline"])
}

func TestUpdateRequirementParams_EmptyChanges(t *testing.T) {
	params := UpdateRequirementParams{}
	assert.Empty(t, params.Changes())
}

func TestUpdateChecklistItemParams_OrderMapsToSortOrder(t *testing.T) {
	order := 4
	completed := true
	params := UpdateChecklistItemParams{
		Order:       &order,
		IsCompleted: &completed,
	}

	changes := params.Changes()
	assert.Equal(t, 4, changes["sort_order"])
	assert.Equal(t, true, changes["is_completed"])
}
