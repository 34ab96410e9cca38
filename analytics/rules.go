package analytics

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Kritika0027/IDCC/types"
)

// Rule identifies one validation rule. The set is closed: rules are plain
// functions dispatched by tag, not polymorphic objects, and no new rule
// kinds appear at runtime.
type Rule int

const (
	RuleCompleteness Rule = iota
	RuleClarity
	RuleDeadline
)

// Rules lists every rule in execution order. The order fixes how warnings
// and errors interleave in aggregated output.
var Rules = []Rule{RuleCompleteness, RuleClarity, RuleDeadline}

func (r Rule) String() string {
	switch r {
	case RuleCompleteness:
		return "completeness"
	case RuleClarity:
		return "clarity"
	case RuleDeadline:
		return "deadline"
	}
	return "unknown"
}

// Result is the outcome of a single rule. Valid is false only when errors
// are present; warnings never affect validity.
type Result struct {
	Valid    bool     `json:"valid"`
	Warnings []string `json:"warnings"`
	Errors   []string `json:"errors"`
}

// Validate runs the rule against a requirement snapshot. Rules never fail:
// absent fields count as failed presence checks, not as errors of the rule
// itself.
func (r Rule) Validate(req *types.Requirement) Result {
	switch r {
	case RuleCompleteness:
		return validateCompleteness(req)
	case RuleClarity:
		return validateClarity(req)
	case RuleDeadline:
		return validateDeadline(req)
	}
	return Result{Valid: true, Warnings: []string{}, Errors: []string{}}
}

func validateCompleteness(req *types.Requirement) Result {
	warnings := []string{}
	errors := []string{}

	// Minimum lengths count characters, not bytes.
	if utf8.RuneCountInString(strings.TrimSpace(req.Title)) < 5 {
		errors = append(errors, "Title is too short or missing")
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.Description)) < 20 {
		errors = append(errors, "Description is too short (minimum 20 characters)")
	}
	if req.SuccessCriteria == "" {
		warnings = append(warnings, "Success criteria is missing")
	}
	if req.ExpectedOutcome == "" {
		warnings = append(warnings, "Expected outcome is missing")
	}
	if req.DesiredDeadline == nil {
		warnings = append(warnings, "Desired deadline is not specified")
	}
	if req.Constraints == "" {
		warnings = append(warnings, "Constraints are not specified")
	}

	return Result{
		Valid:    len(errors) == 0,
		Warnings: warnings,
		Errors:   errors,
	}
}

// ambiguousPatterns are matched against the lowercased title+description.
// The sources are kept verbatim for the warning text; loosening or
// tightening the boundaries would change which documents get flagged.
var ambiguousPatterns = compileAmbiguous(
	`\basap\b|\bas\s+soon\s+as\s+possible\b`,
	`\bsoon\b`,
	`\bbetter\b`,
	`\bfaster\b`,
	`\bimprove\b`,
	`\boptimize\b`,
	`\bsome\b`,
	`\bfew\b`,
	`\bmany\b`,
)

type ambiguousPattern struct {
	source string
	re     *regexp.Regexp
}

func compileAmbiguous(sources ...string) []ambiguousPattern {
	patterns := make([]ambiguousPattern, len(sources))
	for i, src := range sources {
		patterns[i] = ambiguousPattern{source: src, re: regexp.MustCompile(`(?i)` + src)}
	}
	return patterns
}

func validateClarity(req *types.Requirement) Result {
	warnings := []string{}

	text := strings.ToLower(req.Title + " " + req.Description)

	// One warning per pattern that matches, not per occurrence.
	for _, p := range ambiguousPatterns {
		if p.re.MatchString(text) {
			warnings = append(warnings, fmt.Sprintf("Ambiguous language detected: '%s' - consider being more specific", p.source))
		}
	}

	return Result{
		Valid:    true,
		Warnings: warnings,
		Errors:   []string{},
	}
}

func validateDeadline(req *types.Requirement) Result {
	warnings := []string{}
	errors := []string{}

	if req.DesiredDeadline != nil {
		deadline := *req.DesiredDeadline
		now := time.Now().In(deadline.Location())
		if deadline.Before(now) {
			errors = append(errors, "Desired deadline is in the past")
		} else if deadline.Sub(now) < 7*24*time.Hour {
			warnings = append(warnings, "Deadline is less than 7 days away - ensure it's realistic")
		}
	}

	return Result{
		Valid:    len(errors) == 0,
		Warnings: warnings,
		Errors:   errors,
	}
}
