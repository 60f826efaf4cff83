// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"math/rand"
	"strings"
	"time"

	"agora/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db: db,
		r:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateUser constructs and persists a sample user. All seed users share the
// password "password123". Optional override functions may modify the
// generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := &models.User{
		Name:     gofakeit.Name(),
		Email:    strings.ToLower(gofakeit.Email()),
		Password: string(hashed),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateFeed persists a short post for the given author, optionally as a
// reply to parent.
func (f *Factory) CreateFeed(author *models.User, parent *models.Feed) (*models.Feed, error) {
	feed := &models.Feed{
		Text:     truncate(gofakeit.Sentence(f.r.Intn(15)+3), models.FeedTextMaxLen),
		AuthorID: author.ID,
	}
	if parent != nil {
		feed.ParentID = &parent.ID
	}

	if err := f.db.Create(feed).Error; err != nil {
		return nil, err
	}
	return feed, nil
}

// CreateArticle persists an article for the given author. Roughly two in
// three seed articles are published; the rest stay drafts.
func (f *Factory) CreateArticle(author *models.User) (*models.Article, error) {
	article := &models.Article{
		Title:    gofakeit.Sentence(f.r.Intn(5) + 3),
		Text:     gofakeit.Paragraph(2, 4, 8, "\n\n"),
		AuthorID: author.ID,
	}
	if f.r.Intn(3) != 0 {
		publishedAt := time.Now().UTC().Add(-time.Duration(f.r.Intn(90*24)) * time.Hour)
		article.PublishedAt = &publishedAt
	}

	if err := f.db.Create(article).Error; err != nil {
		return nil, err
	}
	return article, nil
}

// CreatePoll persists a poll with between two and four choices.
func (f *Factory) CreatePoll(author *models.User) (*models.Poll, error) {
	poll := &models.Poll{
		Text:     gofakeit.Question(),
		AuthorID: author.ID,
	}
	for i := 0; i < f.r.Intn(3)+2; i++ {
		poll.Choices = append(poll.Choices, models.PollChoice{
			Text: gofakeit.BuzzWord() + " " + gofakeit.NounAbstract(),
		})
	}

	if err := f.db.Create(poll).Error; err != nil {
		return nil, err
	}
	return poll, nil
}

// CreateQuestion persists a question for the given author.
func (f *Factory) CreateQuestion(author *models.User) (*models.Question, error) {
	question := &models.Question{
		Title:       gofakeit.Question(),
		Description: gofakeit.Paragraph(1, 2, 6, "\n"),
		AuthorID:    author.ID,
	}

	if err := f.db.Create(question).Error; err != nil {
		return nil, err
	}
	return question, nil
}

// CreateAnswer persists an answer to the given question.
func (f *Factory) CreateAnswer(author *models.User, question *models.Question) (*models.Answer, error) {
	answer := &models.Answer{
		Text:       gofakeit.Paragraph(1, 1, 8, " "),
		QuestionID: question.ID,
		AuthorID:   author.ID,
	}

	if err := f.db.Create(answer).Error; err != nil {
		return nil, err
	}
	return answer, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
