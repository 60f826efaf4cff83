package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category selects which content kind a search or profile filter targets.
type Category string

// Recognized categories.
const (
	CategoryFeeds     Category = "feeds"
	CategoryArticles  Category = "articles"
	CategoryQuestions Category = "questions"
	CategoryAnswers   Category = "answers"
	CategoryPolls     Category = "polls"
	CategoryUsers     Category = "users"
)

// ParseCategory maps a raw category string to a Category. Empty input falls
// back to CategoryFeeds. Unrecognized strings pass through unchanged; they
// miss the dispatch table and callers treat that as an empty result set.
func ParseCategory(raw string) Category {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return CategoryFeeds
	}
	return Category(raw)
}

// SearchResult is the flattened row shape shared by every category branch.
type SearchResult struct {
	Category  Category  `json:"category"`
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	AuthorID  uuid.UUID `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CategorySpec describes one branch of the dispatch table: the backing
// entity set, the text column substring matches run against, the column
// tying a row to its author, and whether only published rows are visible.
type CategorySpec struct {
	NewList       func() any
	TextColumn    string
	AuthorColumn  string
	PublishedOnly bool
	Collect       func(any) []SearchResult
}

// CategorySpecs is the single dispatch table shared by the search endpoint
// and the profile content filter. Both call sites go through it, so the
// published-only policy on articles cannot drift between them.
var CategorySpecs = map[Category]CategorySpec{
	CategoryFeeds: {
		NewList:      func() any { return &[]Feed{} },
		TextColumn:   "text",
		AuthorColumn: "author_id",
		Collect: func(v any) []SearchResult {
			feeds := *v.(*[]Feed)
			out := make([]SearchResult, 0, len(feeds))
			for _, f := range feeds {
				out = append(out, SearchResult{
					Category: CategoryFeeds, ID: f.ID, Text: f.Text,
					AuthorID: f.AuthorID, CreatedAt: f.CreatedAt,
				})
			}
			return out
		},
	},
	CategoryArticles: {
		NewList:       func() any { return &[]Article{} },
		TextColumn:    "title",
		AuthorColumn:  "author_id",
		PublishedOnly: true,
		Collect: func(v any) []SearchResult {
			articles := *v.(*[]Article)
			out := make([]SearchResult, 0, len(articles))
			for _, a := range articles {
				out = append(out, SearchResult{
					Category: CategoryArticles, ID: a.ID, Text: a.Title,
					AuthorID: a.AuthorID, CreatedAt: a.CreatedAt,
				})
			}
			return out
		},
	},
	CategoryQuestions: {
		NewList:      func() any { return &[]Question{} },
		TextColumn:   "title",
		AuthorColumn: "author_id",
		Collect: func(v any) []SearchResult {
			questions := *v.(*[]Question)
			out := make([]SearchResult, 0, len(questions))
			for _, q := range questions {
				out = append(out, SearchResult{
					Category: CategoryQuestions, ID: q.ID, Text: q.Title,
					AuthorID: q.AuthorID, CreatedAt: q.CreatedAt,
				})
			}
			return out
		},
	},
	CategoryAnswers: {
		NewList:      func() any { return &[]Answer{} },
		TextColumn:   "text",
		AuthorColumn: "author_id",
		Collect: func(v any) []SearchResult {
			answers := *v.(*[]Answer)
			out := make([]SearchResult, 0, len(answers))
			for _, a := range answers {
				out = append(out, SearchResult{
					Category: CategoryAnswers, ID: a.ID, Text: a.Text,
					AuthorID: a.AuthorID, CreatedAt: a.CreatedAt,
				})
			}
			return out
		},
	},
	CategoryPolls: {
		NewList:      func() any { return &[]Poll{} },
		TextColumn:   "text",
		AuthorColumn: "author_id",
		Collect: func(v any) []SearchResult {
			polls := *v.(*[]Poll)
			out := make([]SearchResult, 0, len(polls))
			for _, p := range polls {
				out = append(out, SearchResult{
					Category: CategoryPolls, ID: p.ID, Text: p.Text,
					AuthorID: p.AuthorID, CreatedAt: p.CreatedAt,
				})
			}
			return out
		},
	},
	CategoryUsers: {
		NewList: func() any { return &[]User{} },
		// a user "authors" themself for profile-filter purposes
		TextColumn:   "name",
		AuthorColumn: "id",
		Collect: func(v any) []SearchResult {
			users := *v.(*[]User)
			out := make([]SearchResult, 0, len(users))
			for _, u := range users {
				out = append(out, SearchResult{
					Category: CategoryUsers, ID: u.ID, Text: u.Name,
					AuthorID: u.ID, CreatedAt: u.CreatedAt,
				})
			}
			return out
		},
	},
}
