package api

import (
	"errors"

	"github.com/Kritika0027/IDCC/store"
	"github.com/Kritika0027/IDCC/types"
	"github.com/gofiber/fiber/v2"
)

const defaultListLimit = 100

type RequirementHandler struct {
	store store.Storer
}

func NewRequirementHandler(s store.Storer) *RequirementHandler {
	return &RequirementHandler{
		store: s,
	}
}

func (h *RequirementHandler) HandleCreateRequirement(c *fiber.Ctx) error {
	var params types.CreateRequirementParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}

	if errors := types.Validate(&params); len(errors) > 0 {
		return NewValidationError(errors)
	}

	created, err := h.store.CreateRequirement(c.UserContext(), params.ToRequirement())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *RequirementHandler) HandleGetRequirements(c *fiber.Ctx) error {
	skip := c.QueryInt("skip", 0)
	limit := c.QueryInt("limit", defaultListLimit)

	reqs, err := h.store.ListRequirements(c.UserContext(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(reqs)
}

func (h *RequirementHandler) HandleGetRequirement(c *fiber.Ctx) error {
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
	return c.JSON(req)
}

func (h *RequirementHandler) HandleUpdateRequirement(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return ErrInvalidID()
	}

	var params types.UpdateRequirementParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}

	updated, err := h.store.UpdateRequirement(c.UserContext(), int64(id), params.Changes())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound(id, "requirement")
		}
		return err
	}
	return c.JSON(updated)
}

func (h *RequirementHandler) HandleDeleteRequirement(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return ErrInvalidID()
	}

	deleted, err := h.store.DeleteRequirement(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound(id, "requirement")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
