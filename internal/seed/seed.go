package seed

import (
	"fmt"
	"log"

	"agora/internal/models"

	"gorm.io/gorm"
)

// Options configures a seeding run.
type Options struct {
	NumUsers    int
	NumFeeds    int
	NumArticles int
	NumPolls    int
	NumQs       int
	ShouldClean bool
}

// DefaultOptions returns a seeding profile suitable for local development.
func DefaultOptions() Options {
	return Options{
		NumUsers:    25,
		NumFeeds:    100,
		NumArticles: 30,
		NumPolls:    10,
		NumQs:       15,
		ShouldClean: true,
	}
}

// Seeder populates the database with demo content.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the given DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seeded content. Ordered so foreign keys never dangle.
func (s *Seeder) ClearAll() error {
	log.Println("clearing existing data...")
	tables := []string{
		"poll_ballots", "poll_choices", "polls",
		"answers", "questions",
		"feeds", "articles", "follows", "users",
	}
	for _, table := range tables {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

// Run populates the database according to opts.
func (s *Seeder) Run(opts Options) error {
	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	users, err := s.seedUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}
	log.Printf("created %d users", len(users))

	if err := s.seedFollows(users); err != nil {
		return fmt.Errorf("seeding follows: %w", err)
	}

	feeds, err := s.seedFeeds(users, opts.NumFeeds)
	if err != nil {
		return fmt.Errorf("seeding feeds: %w", err)
	}
	log.Printf("created %d feeds", len(feeds))

	if err := s.seedArticles(users, opts.NumArticles); err != nil {
		return fmt.Errorf("seeding articles: %w", err)
	}

	if err := s.seedPolls(users, opts.NumPolls); err != nil {
		return fmt.Errorf("seeding polls: %w", err)
	}

	if err := s.seedQuestions(users, opts.NumQs); err != nil {
		return fmt.Errorf("seeding questions: %w", err)
	}

	log.Println("seeding complete")
	return nil
}

func (s *Seeder) seedUsers(n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// seedFollows gives every user a handful of followees. Self-follows are
// skipped, mirroring the application rule.
func (s *Seeder) seedFollows(users []*models.User) error {
	if len(users) < 2 {
		return nil
	}
	for _, follower := range users {
		count := s.factory.r.Intn(5) + 1
		for i := 0; i < count; i++ {
			target := users[s.factory.r.Intn(len(users))]
			if target.ID == follower.ID {
				continue
			}
			follow := &models.Follow{FollowerID: follower.ID, FolloweeID: target.ID}
			// duplicate edges hit the unique index; ignore them
			_ = s.db.Create(follow).Error
		}
	}
	return nil
}

func (s *Seeder) seedFeeds(users []*models.User, n int) ([]*models.Feed, error) {
	feeds := make([]*models.Feed, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.factory.r.Intn(len(users))]

		// about a quarter of feeds are replies to an earlier one
		var parent *models.Feed
		if len(feeds) > 0 && s.factory.r.Intn(4) == 0 {
			parent = feeds[s.factory.r.Intn(len(feeds))]
		}

		feed, err := s.factory.CreateFeed(author, parent)
		if err != nil {
			return nil, err
		}
		feeds = append(feeds, feed)
	}
	return feeds, nil
}

func (s *Seeder) seedArticles(users []*models.User, n int) error {
	for i := 0; i < n; i++ {
		author := users[s.factory.r.Intn(len(users))]
		if _, err := s.factory.CreateArticle(author); err != nil {
			return err
		}
	}
	return nil
}

// seedPolls creates polls and casts one ballot per voter through the same
// atomic path the API uses.
func (s *Seeder) seedPolls(users []*models.User, n int) error {
	for i := 0; i < n; i++ {
		author := users[s.factory.r.Intn(len(users))]
		poll, err := s.factory.CreatePoll(author)
		if err != nil {
			return err
		}

		voters := s.factory.r.Intn(len(users))
		for j := 0; j < voters; j++ {
			voter := users[j]
			choice := poll.Choices[s.factory.r.Intn(len(poll.Choices))]
			ballot := &models.PollBallot{PollID: poll.ID, UserID: voter.ID, ChoiceID: choice.ID}
			if err := s.db.Create(ballot).Error; err != nil {
				continue
			}
			if err := s.db.Model(&models.PollChoice{}).
				Where("id = ?", choice.ID).
				UpdateColumn("votes", gorm.Expr("votes + 1")).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Seeder) seedQuestions(users []*models.User, n int) error {
	for i := 0; i < n; i++ {
		author := users[s.factory.r.Intn(len(users))]
		question, err := s.factory.CreateQuestion(author)
		if err != nil {
			return err
		}

		answers := s.factory.r.Intn(4)
		for j := 0; j < answers; j++ {
			responder := users[s.factory.r.Intn(len(users))]
			if _, err := s.factory.CreateAnswer(responder, question); err != nil {
				return err
			}
		}
	}
	return nil
}
