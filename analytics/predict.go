package analytics

import (
	"github.com/Kritika0027/IDCC/types"
)

// PredictSuccessProbability is a deterministic stand-in for a future trained
// model: it maps the quality score to [0,1] and returns 0.5 when no score
// exists. A real model replaces this function behind the same signature; no
// learning happens here.
func PredictSuccessProbability(req *types.Requirement) float64 {
	if req.QualityScore == nil {
		return 0.5
	}
	return float64(*req.QualityScore) / 100.0
}
