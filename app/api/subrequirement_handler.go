package api

import (
	"errors"

	"github.com/Kritika0027/IDCC/store"
	"github.com/Kritika0027/IDCC/types"
	"github.com/gofiber/fiber/v2"
)

type SubRequirementHandler struct {
	store store.Storer
}

func NewSubRequirementHandler(s store.Storer) *SubRequirementHandler {
	return &SubRequirementHandler{
		store: s,
	}
}

func (h *SubRequirementHandler) HandleCreateSubRequirement(c *fiber.Ctx) error {
	requirementID, err := c.ParamsInt("id")
	if err != nil {
		return ErrInvalidID()
	}

	var params types.CreateSubRequirementParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}

	if errors := types.Validate(&params); len(errors) > 0 {
		return NewValidationError(errors)
	}

	// The parent must exist before anything is written.
	if _, err := h.store.GetRequirement(c.UserContext(), int64(requirementID)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound(requirementID, "requirement")
		}
		return err
	}

	created, err := h.store.CreateSubRequirement(c.UserContext(), params.ToSubRequirement(int64(requirementID)))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *SubRequirementHandler) HandleGetSubRequirements(c *fiber.Ctx) error {
	requirementID, err := c.ParamsInt("id")
	if err != nil {
		return ErrInvalidID()
	}

	subs, err := h.store.ListSubRequirements(c.UserContext(), int64(requirementID))
	if err != nil {
		return err
	}
	return c.JSON(subs)
}

func (h *SubRequirementHandler) HandleGetSubRequirement(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return ErrInvalidID()
	}

	sub, err := h.store.GetSubRequirement(c.UserContext(), int64(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound(id, "sub-requirement")
		}
		return err
	}
	return c.JSON(sub)
}

func (h *SubRequirementHandler) HandleUpdateSubRequirement(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return ErrInvalidID()
	}

	var params types.UpdateSubRequirementParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}

	updated, err := h.store.UpdateSubRequirement(c.UserContext(), int64(id), params.Changes())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound(id, "sub-requirement")
		}
		return err
	}
	return c.JSON(updated)
}

func (h *SubRequirementHandler) HandleDeleteSubRequirement(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return ErrInvalidID()
	}

	deleted, err := h.store.DeleteSubRequirement(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound(id, "sub-requirement")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
