package server

import (
	"agora/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateFeed handles POST /api/feeds
func (s *Server) CreateFeed(c *fiber.Ctx) error {
	var req struct {
		Text     string     `json:"text"`
		ParentID *uuid.UUID `json:"parent_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	feed, err := s.feedService.CreateFeed(c.Context(), currentUserID(c), req.Text, req.ParentID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"feed": feed})
}

// GetFeeds handles GET /api/feeds
func (s *Server) GetFeeds(c *fiber.Ctx) error {
	p := parsePagination(c, 10)

	feeds, err := s.feedService.ListFeeds(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"feeds": feeds})
}

// GetFeed handles GET /api/feeds/:id
func (s *Server) GetFeed(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	feed, err := s.feedService.GetFeed(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"feed": feed})
}

// DeleteFeed handles DELETE /api/feeds/:id
func (s *Server) DeleteFeed(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.feedService.DeleteFeed(c.Context(), currentUserID(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Feed deleted"})
}
