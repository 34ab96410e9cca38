package api

import (
	"errors"

	"github.com/Kritika0027/IDCC/store"
	"github.com/Kritika0027/IDCC/types"
	"github.com/gofiber/fiber/v2"
)

type TagHandler struct {
	store store.Storer
}

func NewTagHandler(s store.Storer) *TagHandler {
	return &TagHandler{
		store: s,
	}
}

func (h *TagHandler) HandleCreateTag(c *fiber.Ctx) error {
	var params types.CreateTagParams
	if c.BodyParser(&params) != nil {
		return ErrBadRequest()
	}

	if errors := types.Validate(&params); len(errors) > 0 {
		return NewValidationError(errors)
	}

	created, err := h.store.CreateTag(c.UserContext(), types.Tag{
		Name:        params.Name,
		Description: params.Description,
		Color:       params.Color,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *TagHandler) HandleGetTags(c *fiber.Ctx) error {
	tags, err := h.store.ListTags(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(tags)
}

func (h *TagHandler) HandleDeleteTag(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return ErrInvalidID()
	}

	deleted, err := h.store.DeleteTag(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound(id, "tag")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *TagHandler) HandleLinkTag(c *fiber.Ctx) error {
	requirementID, err := c.ParamsInt("id")
	if err != nil {
		return ErrInvalidID()
	}
	tagID, err := c.ParamsInt("tagID")
	if err != nil {
		return ErrInvalidID()
	}

	if _, err := h.store.GetRequirement(c.UserContext(), int64(requirementID)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound(requirementID, "requirement")
		}
		return err
	}

	if err := h.store.LinkTag(c.UserContext(), int64(requirementID), int64(tagID)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *TagHandler) HandleUnlinkTag(c *fiber.Ctx) error {
	requirementID, err := c.ParamsInt("id")
	if err != nil {
		return ErrInvalidID()
	}
	tagID, err := c.ParamsInt("tagID")
	if err != nil {
		return ErrInvalidID()
	}

	removed, err := h.store.UnlinkTag(c.UserContext(), int64(requirementID), int64(tagID))
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotFound(tagID, "tag link")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
