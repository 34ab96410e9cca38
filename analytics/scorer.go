package analytics

import (
	"github.com/Kritika0027/IDCC/types"
)

const (
	errorPenalty   = 15
	warningPenalty = 5

	subRequirementBonus    = 2
	subRequirementBonusCap = 10
	checklistItemBonus     = 1
	checklistItemBonusCap  = 5
)

// Score combines rule results and structural richness into a 0-100 quality
// score. Deterministic and order-independent across results.
func Score(req *types.Requirement, results []Result) int {
	score := 100

	for _, result := range results {
		score -= errorPenalty * len(result.Errors)
		score -= warningPenalty * len(result.Warnings)
	}

	score += min(subRequirementBonus*len(req.SubRequirements), subRequirementBonusCap)
	score += min(checklistItemBonus*len(req.ChecklistItems), checklistItemBonusCap)

	return max(0, min(100, score))
}
