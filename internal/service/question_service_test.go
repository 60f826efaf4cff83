package service

import (
	"context"
	"testing"

	"agora/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionServiceCreateValidation(t *testing.T) {
	repo := &stubQuestionRepo{
		createFn: func(_ context.Context, _ *models.Question) error {
			t.Fatal("Create should not be called on invalid input")
			return nil
		},
	}
	svc := NewQuestionService(repo)

	_, err := svc.CreateQuestion(testCtx, uuid.New(), "", "how do I do the thing?")
	require.Error(t, err)

	_, err = svc.CreateQuestion(testCtx, uuid.New(), "how?", "  ")
	require.Error(t, err)
}

func TestQuestionServiceCreateAndAnswer(t *testing.T) {
	authorID := uuid.New()
	questionID := uuid.New()

	var gotAnswer *models.Answer
	repo := &stubQuestionRepo{
		createFn: func(_ context.Context, _ *models.Question) error {
			return nil
		},
		createAnswerFn: func(_ context.Context, answer *models.Answer) error {
			gotAnswer = answer
			return nil
		},
	}
	svc := NewQuestionService(repo)

	question, err := svc.CreateQuestion(testCtx, authorID, "  how? ", "details")
	require.NoError(t, err)
	assert.Equal(t, "how?", question.Title)

	answer, err := svc.AnswerQuestion(testCtx, authorID, questionID, "like this")
	require.NoError(t, err)
	require.NotNil(t, gotAnswer)
	assert.Equal(t, questionID, answer.QuestionID)
	assert.Equal(t, "like this", answer.Text)
}

func TestQuestionServiceAnswerRequiresText(t *testing.T) {
	repo := &stubQuestionRepo{
		createAnswerFn: func(_ context.Context, _ *models.Answer) error {
			t.Fatal("CreateAnswer should not be called for blank text")
			return nil
		},
	}
	svc := NewQuestionService(repo)

	_, err := svc.AnswerQuestion(testCtx, uuid.New(), uuid.New(), "   ")
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}
