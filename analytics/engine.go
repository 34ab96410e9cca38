package analytics

import (
	"math"
	"strings"

	"github.com/Kritika0027/IDCC/types"
)

// Report is the aggregate of all rules over one requirement snapshot.
// Warnings and errors are flattened in rule order; the score is computed
// from the per-rule results. The engine never writes storage: the caller
// persists QualityScore when it differs from the stored value.
type Report struct {
	Valid        bool     `json:"valid"`
	Warnings     []string `json:"warnings"`
	Errors       []string `json:"errors"`
	QualityScore int      `json:"quality_score"`
	RuleResults  []Result `json:"rule_results"`
}

type Summary struct {
	TotalRequirements      int            `json:"total_requirements"`
	ByPriority             map[string]int `json:"by_priority"`
	ByStatus               map[string]int `json:"by_status"`
	ByCategory             map[string]int `json:"by_category"`
	AverageSubRequirements float64        `json:"average_sub_requirements"`
	AverageChecklistItems  float64        `json:"average_checklist_items"`
	AverageQualityScore    float64        `json:"average_quality_score"`
}

// Engine orchestrates the rule set and scorer. Stateless: all methods are
// pure over their inputs and safe for concurrent use.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) Validate(req *types.Requirement) Report {
	warnings := []string{}
	errors := []string{}
	results := make([]Result, 0, len(Rules))

	for _, rule := range Rules {
		result := rule.Validate(req)
		results = append(results, result)
		warnings = append(warnings, result.Warnings...)
		errors = append(errors, result.Errors...)
	}

	return Report{
		Valid:        len(errors) == 0,
		Warnings:     warnings,
		Errors:       errors,
		QualityScore: Score(req, results),
		RuleResults:  results,
	}
}

// Suggestions builds improvement suggestions in fixed order: errors,
// warnings, structure, then a score-band message. At most 5 entries.
func (e *Engine) Suggestions(req *types.Requirement) []string {
	report := e.Validate(req)
	suggestions := []string{}

	if len(report.Errors) > 0 {
		suggestions = append(suggestions, "Fix critical errors: "+strings.Join(firstN(report.Errors, 3), "; "))
	}
	if len(report.Warnings) > 0 {
		suggestions = append(suggestions, "Address warnings: "+strings.Join(firstN(report.Warnings, 3), "; "))
	}
	if len(req.SubRequirements) == 0 {
		suggestions = append(suggestions, "Consider breaking down into smaller sub-requirements for better tracking")
	}
	if len(req.ChecklistItems) == 0 {
		suggestions = append(suggestions, "Add checklist items to track progress")
	}

	if report.QualityScore < 50 {
		suggestions = append(suggestions, "Quality score is low - review and complete missing information")
	} else if report.QualityScore < 70 {
		suggestions = append(suggestions, "Quality score is moderate - consider adding more details")
	}

	return suggestions
}

// SummaryStats aggregates corpus-wide counts and averages. The score
// average covers only requirements that have a score; every average is 0
// for an empty corpus.
func (e *Engine) SummaryStats(reqs []types.Requirement) Summary {
	summary := Summary{
		TotalRequirements: len(reqs),
		ByPriority:        map[string]int{},
		ByStatus:          map[string]int{},
		ByCategory:        map[string]int{},
	}
	if len(reqs) == 0 {
		return summary
	}

	totalSubs := 0
	totalItems := 0
	totalScore := 0
	scoredCount := 0

	for _, req := range reqs {
		priority := string(req.Priority)
		if priority == "" {
			priority = "unknown"
		}
		summary.ByPriority[priority]++

		status := string(req.Status)
		if status == "" {
			status = "unknown"
		}
		summary.ByStatus[status]++

		category := req.Category
		if category == "" {
			category = "uncategorized"
		}
		summary.ByCategory[category]++

		totalSubs += len(req.SubRequirements)
		totalItems += len(req.ChecklistItems)
		if req.QualityScore != nil {
			totalScore += *req.QualityScore
			scoredCount++
		}
	}

	summary.AverageSubRequirements = round2(float64(totalSubs) / float64(len(reqs)))
	summary.AverageChecklistItems = round2(float64(totalItems) / float64(len(reqs)))
	if scoredCount > 0 {
		summary.AverageQualityScore = round2(float64(totalScore) / float64(scoredCount))
	}

	return summary
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
