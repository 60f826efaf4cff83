package service

import (
	"context"
	"strings"

	"agora/internal/models"
	"agora/internal/repository"

	"github.com/google/uuid"
)

// QuestionService provides Q&A business logic.
type QuestionService struct {
	questionRepo repository.QuestionRepository
}

// NewQuestionService returns a new QuestionService.
func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo}
}

// CreateQuestion posts a new question.
func (s *QuestionService) CreateQuestion(ctx context.Context, authorID uuid.UUID, title, description string) (*models.Question, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(title) > 255 {
		return nil, models.NewValidationError("Title too long (max 255 characters)")
	}
	if strings.TrimSpace(description) == "" {
		return nil, models.NewValidationError("Description is required")
	}

	question := &models.Question{Title: title, Description: description, AuthorID: authorID}
	if err := s.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

// GetQuestion returns the question with its answers, newest first.
func (s *QuestionService) GetQuestion(ctx context.Context, id uuid.UUID) (*models.Question, error) {
	return s.questionRepo.GetByID(ctx, id)
}

// ListQuestions returns questions newest first.
func (s *QuestionService) ListQuestions(ctx context.Context, limit, offset int) ([]models.Question, error) {
	return s.questionRepo.List(ctx, clampLimit(limit), clampOffset(offset))
}

// AnswerQuestion posts an answer to the question.
func (s *QuestionService) AnswerQuestion(ctx context.Context, authorID, questionID uuid.UUID, text string) (*models.Answer, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.NewValidationError("Text is required")
	}

	answer := &models.Answer{Text: text, QuestionID: questionID, AuthorID: authorID}
	if err := s.questionRepo.CreateAnswer(ctx, answer); err != nil {
		return nil, err
	}
	return answer, nil
}
