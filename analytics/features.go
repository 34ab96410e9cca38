package analytics

import (
	"sync"
	"unicode/utf8"

	"github.com/Kritika0027/IDCC/types"
	"github.com/pkoukk/tiktoken-go"
)

// Features are the model inputs a future success predictor would train on.
type Features struct {
	TitleLength        int  `json:"title_length"`
	DescriptionLength  int  `json:"description_length"`
	TitleTokens        int  `json:"title_tokens"`
	DescriptionTokens  int  `json:"description_tokens"`
	HasSuccessCriteria bool `json:"has_success_criteria"`
	HasDeadline        bool `json:"has_deadline"`
	NumSubRequirements int  `json:"num_sub_requirements"`
	NumChecklistItems  int  `json:"num_checklist_items"`
	PriorityHigh       int  `json:"priority_high"`
	PriorityMedium     int  `json:"priority_medium"`
	PriorityLow        int  `json:"priority_low"`
}

func ExtractFeatures(req *types.Requirement) Features {
	return Features{
		TitleLength:        utf8.RuneCountInString(req.Title),
		DescriptionLength:  utf8.RuneCountInString(req.Description),
		TitleTokens:        countTokens(req.Title),
		DescriptionTokens:  countTokens(req.Description),
		HasSuccessCriteria: req.SuccessCriteria != "",
		HasDeadline:        req.DesiredDeadline != nil,
		NumSubRequirements: len(req.SubRequirements),
		NumChecklistItems:  len(req.ChecklistItems),
		PriorityHigh:       boolToInt(req.Priority == types.PriorityHigh),
		PriorityMedium:     boolToInt(req.Priority == types.PriorityMedium),
		PriorityLow:        boolToInt(req.Priority == types.PriorityLow),
	}
}

var (
	encoderOnce sync.Once
	encoder     *tiktoken.Tiktoken
)

// countTokens counts BPE tokens; 0 when the encoding is unavailable
// (the encoder fetches its vocabulary on first use).
func countTokens(text string) int {
	encoderOnce.Do(func() {
		encoder, _ = tiktoken.EncodingForModel("gpt-3.5-turbo")
	})
	if encoder == nil {
		return 0
	}
	return len(encoder.Encode(text, nil, nil))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
