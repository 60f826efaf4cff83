package server

import (
	"errors"

	"agora/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreatePoll handles POST /api/polls
func (s *Server) CreatePoll(c *fiber.Ctx) error {
	var req struct {
		Text    string   `json:"text"`
		Choices []string `json:"choices"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	poll, err := s.pollService.CreatePoll(c.Context(), currentUserID(c), req.Text, req.Choices)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"poll": poll})
}

// GetPolls handles GET /api/polls
func (s *Server) GetPolls(c *fiber.Ctx) error {
	p := parsePagination(c, 10)

	polls, err := s.pollService.ListPolls(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"polls": polls})
}

// GetPoll handles GET /api/polls/:id
func (s *Server) GetPoll(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	viewerID := uuid.Nil
	if userID, ok := s.optionalUserID(c); ok {
		viewerID = userID
	}

	poll, hasVoted, err := s.pollService.GetPoll(c.Context(), id, viewerID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"poll":      poll,
		"has_voted": hasVoted,
	})
}

// Vote handles POST /api/polls/:id/vote
//
// Already-voted and invalid-choice conditions are advisory, not failures:
// the response carries the message together with the unchanged poll state
// and a 200 status.
func (s *Server) Vote(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		ChoiceID uuid.UUID `json:"choice_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	userID := currentUserID(c)
	voteErr := s.pollService.Vote(c.Context(), userID, id, req.ChoiceID)

	var message string
	switch {
	case voteErr == nil:
		message = "Vote recorded"
	case errors.Is(voteErr, models.ErrAlreadyVoted), errors.Is(voteErr, models.ErrNoChoice):
		var appErr *models.AppError
		errors.As(voteErr, &appErr)
		message = appErr.Message
	default:
		return respondServiceError(c, voteErr)
	}

	poll, hasVoted, err := s.pollService.GetPoll(c.Context(), id, userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{
		"message":   message,
		"poll":      poll,
		"has_voted": hasVoted,
	})
}
