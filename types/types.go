package types

import (
	"time"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

type Status string

const (
	StatusDraft      Status = "draft"
	StatusInReview   Status = "in_review"
	StatusApproved   Status = "approved"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

type Requirement struct {
	ID              int64            `json:"id"`
	ProjectName     string           `json:"project_name"`
	BusinessOwner   string           `json:"business_owner"`
	BusinessUnit    string           `json:"business_unit,omitempty"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Priority        Priority         `json:"priority"`
	Status          Status           `json:"status"`
	ExpectedOutcome string           `json:"expected_outcome,omitempty"`
	SuccessCriteria string           `json:"success_criteria,omitempty"`
	Constraints     string           `json:"constraints,omitempty"`
	Dependencies    string           `json:"dependencies,omitempty"`
	DesiredDeadline *time.Time       `json:"desired_deadline,omitempty"`
	Category        string           `json:"category,omitempty"`
	QualityScore    *int             `json:"quality_score,omitempty"`
	CreatedBy       string           `json:"created_by,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       *time.Time       `json:"updated_at,omitempty"`
	SubRequirements []SubRequirement `json:"sub_requirements"`
	ChecklistItems  []ChecklistItem  `json:"checklist_items"`
	Tags            []Tag            `json:"tags"`
}

type SubRequirement struct {
	ID            int64      `json:"id"`
	RequirementID int64      `json:"requirement_id"`
	ParentID      *int64     `json:"parent_id,omitempty"`
	Title         string     `json:"title"`
	Description   string     `json:"description,omitempty"`
	Priority      Priority   `json:"priority"`
	Status        Status     `json:"status"`
	Order         int        `json:"order"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

type ChecklistItem struct {
	ID               int64      `json:"id"`
	RequirementID    *int64     `json:"requirement_id,omitempty"`
	SubRequirementID *int64     `json:"sub_requirement_id,omitempty"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	IsCompleted      bool       `json:"is_completed"`
	Order            int        `json:"order"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

type Attachment struct {
	ID               int64      `json:"id"`
	RequirementID    int64      `json:"requirement_id"`
	Filename         string     `json:"filename"`
	FilePath         string     `json:"file_path"`
	FileType         string     `json:"file_type"`
	FileSize         int64      `json:"file_size"`
	MimeType         string     `json:"mime_type,omitempty"`
	IsImage          bool       `json:"is_image"`
	ExtractedText    string     `json:"extracted_text,omitempty"`
	ProcessingStatus string     `json:"processing_status,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}

type Tag struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
