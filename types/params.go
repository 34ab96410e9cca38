package types

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Validater interface {
	Validate() map[string]string
}

func Validate(v Validater) map[string]string {
	return v.Validate()
}

func validateStruct(s any) map[string]string {
	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		errs := err.(validator.ValidationErrors)
		errors := make(map[string]string)
		for _, e := range errs {
			errors[e.Field()] = fmt.Sprintf("failed on '%s' tag", e.Tag())
		}
		return errors
	}
	return nil
}

type CreateRequirementParams struct {
	ProjectName     string     `json:"project_name" validate:"required"`
	BusinessOwner   string     `json:"business_owner" validate:"required"`
	BusinessUnit    string     `json:"business_unit"`
	Title           string     `json:"title" validate:"required"`
	Description     string     `json:"description" validate:"required"`
	Priority        Priority   `json:"priority" validate:"omitempty,oneof=high medium low"`
	ExpectedOutcome string     `json:"expected_outcome"`
	SuccessCriteria string     `json:"success_criteria"`
	Constraints     string     `json:"constraints"`
	Dependencies    string     `json:"dependencies"`
	DesiredDeadline *time.Time `json:"desired_deadline"`
	Category        string     `json:"category"`
	CreatedBy       string     `json:"created_by"`
}

func (params *CreateRequirementParams) Validate() map[string]string {
	return validateStruct(params)
}

func (params *CreateRequirementParams) ToRequirement() Requirement {
	priority := params.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	return Requirement{
		ProjectName:     params.ProjectName,
		BusinessOwner:   params.BusinessOwner,
		BusinessUnit:    params.BusinessUnit,
		Title:           params.Title,
		Description:     params.Description,
		Priority:        priority,
		Status:          StatusDraft,
		ExpectedOutcome: params.ExpectedOutcome,
		SuccessCriteria: params.SuccessCriteria,
		Constraints:     params.Constraints,
		Dependencies:    params.Dependencies,
		DesiredDeadline: params.DesiredDeadline,
		Category:        params.Category,
		CreatedBy:       params.CreatedBy,
	}
}

type UpdateRequirementParams struct {
	ProjectName     *string    `db:"project_name" json:"project_name,omitempty"`
	BusinessOwner   *string    `db:"business_owner" json:"business_owner,omitempty"`
	BusinessUnit    *string    `db:"business_unit" json:"business_unit,omitempty"`
	Title           *string    `db:"title" json:"title,omitempty"`
	Description     *string    `db:"description" json:"description,omitempty"`
	Priority        *Priority  `db:"priority" json:"priority,omitempty"`
	Status          *Status    `db:"status" json:"status,omitempty"`
	ExpectedOutcome *string    `db:"expected_outcome" json:"expected_outcome,omitempty"`
	SuccessCriteria *string    `db:"success_criteria" json:"success_criteria,omitempty"`
	Constraints     *string    `db:"constraints" json:"constraints,omitempty"`
	Dependencies    *string    `db:"dependencies" json:"dependencies,omitempty"`
	DesiredDeadline *time.Time `db:"desired_deadline" json:"desired_deadline,omitempty"`
	Category        *string    `db:"category" json:"category,omitempty"`
	QualityScore    *int       `db:"quality_score" json:"quality_score,omitempty"`
}

func (params *UpdateRequirementParams) Changes() map[string]any {
	return changedFields(params)
}

type UpdateSubRequirementParams struct {
	Title       *string   `db:"title" json:"title,omitempty"`
	Description *string   `db:"description" json:"description,omitempty"`
	Priority    *Priority `db:"priority" json:"priority,omitempty"`
	Status      *Status   `db:"status" json:"status,omitempty"`
	Order       *int      `db:"sort_order" json:"order,omitempty"`
	ParentID    *int64    `db:"parent_id" json:"parent_id,omitempty"`
}

func (params *UpdateSubRequirementParams) Changes() map[string]any {
	return changedFields(params)
}

type UpdateChecklistItemParams struct {
	Title       *string `db:"title" json:"title,omitempty"`
	Description *string `db:"description" json:"description,omitempty"`
	IsCompleted *bool   `db:"is_completed" json:"is_completed,omitempty"`
	Order       *int    `db:"sort_order" json:"order,omitempty"`
}

func (params *UpdateChecklistItemParams) Changes() map[string]any {
	return changedFields(params)
}

// changedFields collects non-nil pointer fields into a column -> value map
// keyed by the db struct tag. Nil pointers mean "not provided".
func changedFields(params any) map[string]any {
	v := reflect.ValueOf(params).Elem()
	t := v.Type()
	changes := make(map[string]any)
	for i := range v.NumField() {
		dbTag := t.Field(i).Tag.Get("db")
		if dbTag == "" {
			continue
		}
		key := strings.Split(dbTag, ",")[0]
		field := v.Field(i)
		if field.Kind() == reflect.Pointer && !field.IsNil() {
			changes[key] = field.Elem().Interface()
		}
	}
	return changes
}

type CreateSubRequirementParams struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority" validate:"omitempty,oneof=high medium low"`
	Order       int      `json:"order"`
	ParentID    *int64   `json:"parent_id"`
}

func (params *CreateSubRequirementParams) Validate() map[string]string {
	return validateStruct(params)
}

func (params *CreateSubRequirementParams) ToSubRequirement(requirementID int64) SubRequirement {
	priority := params.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	return SubRequirement{
		RequirementID: requirementID,
		ParentID:      params.ParentID,
		Title:         params.Title,
		Description:   params.Description,
		Priority:      priority,
		Status:        StatusDraft,
		Order:         params.Order,
	}
}

type CreateChecklistItemParams struct {
	Title            string `json:"title" validate:"required"`
	Description      string `json:"description"`
	Order            int    `json:"order"`
	SubRequirementID *int64 `json:"sub_requirement_id"`
}

func (params *CreateChecklistItemParams) Validate() map[string]string {
	return validateStruct(params)
}

type CreateTagParams struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func (params *CreateTagParams) Validate() map[string]string {
	return validateStruct(params)
}
