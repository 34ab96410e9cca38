package api

import (
	"errors"

	"github.com/Kritika0027/IDCC/store"
	"github.com/Kritika0027/IDCC/types"
	"github.com/gofiber/fiber/v2"
)

type ChecklistHandler struct {
	store store.Storer
}

func NewChecklistHandler(s store.Storer) *ChecklistHandler {
	return &ChecklistHandler{
		store: s,
	}
}

func (h *ChecklistHandler) HandleCreateChecklistItem(c *fiber.Ctx) error {
	requirementID, err := c.ParamsInt("id")
	if err != nil {
		return ErrInvalidID()
	}

	var params types.CreateChecklistItemParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}

	if errors := types.Validate(&params); len(errors) > 0 {
		return NewValidationError(errors)
	}

	if _, err := h.store.GetRequirement(c.UserContext(), int64(requirementID)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound(requirementID, "requirement")
		}
		return err
	}

	reqID := int64(requirementID)
	item := types.ChecklistItem{
		RequirementID:    &reqID,
		SubRequirementID: params.SubRequirementID,
		Title:            params.Title,
		Description:      params.Description,
		Order:            params.Order,
	}

	created, err := h.store.CreateChecklistItem(c.UserContext(), item)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ChecklistHandler) HandleCreateChecklistItemForSubRequirement(c *fiber.Ctx) error {
	subRequirementID, err := c.ParamsInt("id")
	if err != nil {
		return ErrInvalidID()
	}

	var params types.CreateChecklistItemParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}

	if errors := types.Validate(&params); len(errors) > 0 {
		return NewValidationError(errors)
	}

	if _, err := h.store.GetSubRequirement(c.UserContext(), int64(subRequirementID)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound(subRequirementID, "sub-requirement")
		}
		return err
	}

	subID := int64(subRequirementID)
	item := types.ChecklistItem{
		SubRequirementID: &subID,
		Title:            params.Title,
		Description:      params.Description,
		Order:            params.Order,
	}

	created, err := h.store.CreateChecklistItem(c.UserContext(), item)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ChecklistHandler) HandleGetChecklistItems(c *fiber.Ctx) error {
	requirementID, err := c.ParamsInt("id")
	if err != nil {
		return ErrInvalidID()
	}

	items, err := h.store.ListChecklistByRequirement(c.UserContext(), int64(requirementID))
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func (h *ChecklistHandler) HandleGetChecklistItemsForSubRequirement(c *fiber.Ctx) error {
	subRequirementID, err := c.ParamsInt("id")
	if err != nil {
		return ErrInvalidID()
	}

	items, err := h.store.ListChecklistBySubRequirement(c.UserContext(), int64(subRequirementID))
	if err != nil {
		return err
	}
	return c.JSON(items)
}

func (h *ChecklistHandler) HandleUpdateChecklistItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return ErrInvalidID()
	}

	var params types.UpdateChecklistItemParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}

	updated, err := h.store.UpdateChecklistItem(c.UserContext(), int64(id), params.Changes())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound(id, "checklist item")
		}
		return err
	}
	return c.JSON(updated)
}

func (h *ChecklistHandler) HandleDeleteChecklistItem(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return ErrInvalidID()
	}

	deleted, err := h.store.DeleteChecklistItem(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound(id, "checklist item")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
