package api

import (
	"errors"

	"github.com/Kritika0027/IDCC/analytics"
	"github.com/Kritika0027/IDCC/store"
	"github.com/gofiber/fiber/v2"
)

// summaryFetchLimit bounds how many requirements the summary endpoint pulls
// into one aggregation pass.
const summaryFetchLimit = 10000

type AnalyticsHandler struct {
	store  store.Storer
	engine *analytics.Engine
}

func NewAnalyticsHandler(s store.Storer) *AnalyticsHandler {
	return &AnalyticsHandler{
		store:  s,
		engine: analytics.NewEngine(),
	}
}

func (h *AnalyticsHandler) HandleSummary(c *fiber.Ctx) error {
	reqs, err := h.store.ListRequirements(c.UserContext(), 0, summaryFetchLimit)
	if err != nil {
		return err
	}
	return c.JSON(h.engine.SummaryStats(reqs))
}

// HandleValidate runs all rules against the requirement, persists the
// recomputed quality score and returns the full report.
func (h *AnalyticsHandler) HandleValidate(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return ErrInvalidID()
	}

	req, err := h.store.GetRequirement(c.UserContext(), int64(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound(id, "requirement")
		}
		return err
	}

	report := h.engine.Validate(req)

	if req.QualityScore == nil || *req.QualityScore != report.QualityScore {
		if _, err := h.store.UpdateRequirement(c.UserContext(), req.ID, map[string]any{"quality_score": report.QualityScore}); err != nil {
			return err
		}
	}

	return c.JSON(report)
}

type SuggestionsResponse struct {
	RequirementID      int64              `json:"requirement_id"`
	QualityScore       int                `json:"quality_score"`
	Valid              bool               `json:"valid"`
	Warnings           []string           `json:"warnings"`
	Errors             []string           `json:"errors"`
	Suggestions        []string           `json:"suggestions"`
	SuccessProbability float64            `json:"success_probability"`
	Features           analytics.Features `json:"features"`
}

// HandleSuggestions validates the requirement, persists the score when it
// changed and returns improvement suggestions plus the placeholder success
// prediction.
func (h *AnalyticsHandler) HandleSuggestions(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return ErrInvalidID()
	}

	req, err := h.store.GetRequirement(c.UserContext(), int64(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound(id, "requirement")
		}
		return err
	}

	report := h.engine.Validate(req)

	if req.QualityScore == nil || *req.QualityScore != report.QualityScore {
		if _, err := h.store.UpdateRequirement(c.UserContext(), req.ID, map[string]any{"quality_score": report.QualityScore}); err != nil {
			return err
		}
	}
	// The prediction reads the score off the snapshot; keep it current.
	req.QualityScore = &report.QualityScore

	return c.JSON(SuggestionsResponse{
		RequirementID:      req.ID,
		QualityScore:       report.QualityScore,
		Valid:              report.Valid,
		Warnings:           report.Warnings,
		Errors:             report.Errors,
		Suggestions:        h.engine.Suggestions(req),
		SuccessProbability: analytics.PredictSuccessProbability(req),
		Features:           analytics.ExtractFeatures(req),
	})
}
