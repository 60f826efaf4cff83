package server

import (
	"agora/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateArticle handles POST /api/articles. New articles start as drafts.
func (s *Server) CreateArticle(c *fiber.Ctx) error {
	var req struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	article, err := s.articleService.CreateArticle(c.Context(), currentUserID(c), req.Title, req.Text)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"article": article})
}

// GetArticles handles GET /api/articles (published only)
func (s *Server) GetArticles(c *fiber.Ctx) error {
	p := parsePagination(c, 10)

	articles, err := s.articleService.ListPublished(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"articles": articles})
}

// GetMyDrafts handles GET /api/me/drafts and GET /api/articles/drafts.
func (s *Server) GetMyDrafts(c *fiber.Ctx) error {
	p := parsePagination(c, 10)

	drafts, err := s.articleService.ListDrafts(c.Context(), currentUserID(c), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"articles": drafts})
}

// GetArticle handles GET /api/articles/:id. Drafts are only visible to
// their author.
func (s *Server) GetArticle(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	viewerID := uuid.Nil
	if userID, ok := s.optionalUserID(c); ok {
		viewerID = userID
	}

	article, err := s.articleService.GetArticle(c.Context(), id, viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"article": article})
}

// UpdateArticle handles PUT /api/articles/:id
func (s *Server) UpdateArticle(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	article, err := s.articleService.UpdateArticle(c.Context(), currentUserID(c), id, req.Title, req.Text)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"article": article})
}

// PublishArticle handles POST /api/articles/:id/publish
func (s *Server) PublishArticle(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	article, err := s.articleService.PublishArticle(c.Context(), currentUserID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"article": article})
}
