package service

import (
	"context"

	"agora/internal/models"

	"github.com/google/uuid"
)

var testCtx = context.Background()

// Function-field stubs let each test wire exactly the repository behavior
// it needs. Unset fields panic, which surfaces unexpected calls loudly.

type stubUserRepo struct {
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*models.User, error)
	getByEmailFn func(ctx context.Context, email string) (*models.User, error)
	createFn     func(ctx context.Context, user *models.User) error
	updateFn     func(ctx context.Context, user *models.User) error
	deleteFn     func(ctx context.Context, id uuid.UUID) error
	listFn       func(ctx context.Context, limit, offset int) ([]models.User, error)
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}

func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}

func (s *stubUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func (s *stubUserRepo) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

type stubFollowRepo struct {
	createFn    func(ctx context.Context, followerID, followeeID uuid.UUID) error
	deleteFn    func(ctx context.Context, followerID, followeeID uuid.UUID) error
	existsFn    func(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error)
	followersFn func(ctx context.Context, userID uuid.UUID) ([]models.User, error)
	followeesFn func(ctx context.Context, userID uuid.UUID) ([]models.User, error)
}

func (s *stubFollowRepo) Create(ctx context.Context, followerID, followeeID uuid.UUID) error {
	return s.createFn(ctx, followerID, followeeID)
}

func (s *stubFollowRepo) Delete(ctx context.Context, followerID, followeeID uuid.UUID) error {
	return s.deleteFn(ctx, followerID, followeeID)
}

func (s *stubFollowRepo) Exists(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	return s.existsFn(ctx, followerID, followeeID)
}

func (s *stubFollowRepo) Followers(ctx context.Context, userID uuid.UUID) ([]models.User, error) {
	return s.followersFn(ctx, userID)
}

func (s *stubFollowRepo) Followees(ctx context.Context, userID uuid.UUID) ([]models.User, error) {
	return s.followeesFn(ctx, userID)
}

type stubArticleRepo struct {
	createFn        func(ctx context.Context, article *models.Article) error
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*models.Article, error)
	updateFn        func(ctx context.Context, article *models.Article) error
	deleteFn        func(ctx context.Context, id uuid.UUID) error
	listPublishedFn func(ctx context.Context, limit, offset int) ([]models.Article, error)
	listDraftsFn    func(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]models.Article, error)
	publishFn       func(ctx context.Context, id uuid.UUID) (*models.Article, error)
}

func (s *stubArticleRepo) Create(ctx context.Context, article *models.Article) error {
	return s.createFn(ctx, article)
}

func (s *stubArticleRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubArticleRepo) Update(ctx context.Context, article *models.Article) error {
	return s.updateFn(ctx, article)
}

func (s *stubArticleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func (s *stubArticleRepo) ListPublished(ctx context.Context, limit, offset int) ([]models.Article, error) {
	return s.listPublishedFn(ctx, limit, offset)
}

func (s *stubArticleRepo) ListDrafts(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]models.Article, error) {
	return s.listDraftsFn(ctx, authorID, limit, offset)
}

func (s *stubArticleRepo) Publish(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	return s.publishFn(ctx, id)
}

type stubFeedRepo struct {
	createFn  func(ctx context.Context, feed *models.Feed) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*models.Feed, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
	listFn    func(ctx context.Context, limit, offset int) ([]models.Feed, error)
}

func (s *stubFeedRepo) Create(ctx context.Context, feed *models.Feed) error {
	return s.createFn(ctx, feed)
}

func (s *stubFeedRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Feed, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubFeedRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func (s *stubFeedRepo) List(ctx context.Context, limit, offset int) ([]models.Feed, error) {
	return s.listFn(ctx, limit, offset)
}

type stubPollRepo struct {
	createFn   func(ctx context.Context, poll *models.Poll) error
	getByIDFn  func(ctx context.Context, id uuid.UUID) (*models.Poll, error)
	listFn     func(ctx context.Context, limit, offset int) ([]models.Poll, error)
	voteFn     func(ctx context.Context, pollID, choiceID, userID uuid.UUID) error
	hasVotedFn func(ctx context.Context, pollID, userID uuid.UUID) (bool, error)
}

func (s *stubPollRepo) Create(ctx context.Context, poll *models.Poll) error {
	return s.createFn(ctx, poll)
}

func (s *stubPollRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Poll, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubPollRepo) List(ctx context.Context, limit, offset int) ([]models.Poll, error) {
	return s.listFn(ctx, limit, offset)
}

func (s *stubPollRepo) Vote(ctx context.Context, pollID, choiceID, userID uuid.UUID) error {
	return s.voteFn(ctx, pollID, choiceID, userID)
}

func (s *stubPollRepo) HasVoted(ctx context.Context, pollID, userID uuid.UUID) (bool, error) {
	return s.hasVotedFn(ctx, pollID, userID)
}

type stubQuestionRepo struct {
	createFn       func(ctx context.Context, question *models.Question) error
	getByIDFn      func(ctx context.Context, id uuid.UUID) (*models.Question, error)
	listFn         func(ctx context.Context, limit, offset int) ([]models.Question, error)
	createAnswerFn func(ctx context.Context, answer *models.Answer) error
}

func (s *stubQuestionRepo) Create(ctx context.Context, question *models.Question) error {
	return s.createFn(ctx, question)
}

func (s *stubQuestionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Question, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubQuestionRepo) List(ctx context.Context, limit, offset int) ([]models.Question, error) {
	return s.listFn(ctx, limit, offset)
}

func (s *stubQuestionRepo) CreateAnswer(ctx context.Context, answer *models.Answer) error {
	return s.createAnswerFn(ctx, answer)
}

type stubSearchRepo struct {
	findFn func(ctx context.Context, category models.Category, query string, authorID *uuid.UUID, limit, offset int) ([]models.SearchResult, error)
}

func (s *stubSearchRepo) Find(ctx context.Context, category models.Category, query string, authorID *uuid.UUID, limit, offset int) ([]models.SearchResult, error) {
	return s.findFn(ctx, category, query, authorID, limit, offset)
}
