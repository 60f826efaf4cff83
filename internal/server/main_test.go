package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"agora/internal/config"
	"agora/internal/database"
	"agora/internal/middleware"
	"agora/internal/repository"
	"agora/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp builds a Server against an in-memory sqlite database and
// returns a Fiber app with all API routes registered. Prometheus middleware
// is left out so repeated registrations across tests cannot collide.
func newTestApp(t *testing.T) (*fiber.App, *Server) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{JWTSecret: "test_secret", Env: "test"}
	middleware.InitMiddleware(cfg)

	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	feedRepo := repository.NewFeedRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	pollRepo := repository.NewPollRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	searchRepo := repository.NewSearchRepository(db)

	s := &Server{
		config:          cfg,
		db:              db,
		userService:     service.NewUserService(userRepo),
		followService:   service.NewFollowService(followRepo, userRepo),
		feedService:     service.NewFeedService(feedRepo),
		articleService:  service.NewArticleService(articleRepo),
		pollService:     service.NewPollService(pollRepo),
		questionService: service.NewQuestionService(questionRepo),
		searchService:   service.NewSearchService(searchRepo, userRepo),
	}

	app := fiber.New()
	s.SetupRoutes(app)
	return app, s
}

func jsonRequest(t *testing.T, method, target, token string, body any) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	defer func() { _ = resp.Body.Close() }()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// signupUser registers a user through the API and returns its token and ID.
func signupUser(t *testing.T, app *fiber.App, name, email string) (token, id string) {
	t.Helper()

	req := jsonRequest(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "Str0ngpassword",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	token = body["token"].(string)
	user := body["user"].(map[string]any)
	id = user["id"].(string)
	return token, id
}
