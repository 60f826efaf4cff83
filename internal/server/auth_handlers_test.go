package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	app, _ := newTestApp(t)

	token, _ := signupUser(t, app, "Alice", "alice@example.com")
	assert.NotEmpty(t, token)

	// signup with the same address, in different case, hits the unique index
	req := jsonRequest(t, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name":     "Alice Again",
		"email":    "Alice@Example.com",
		"password": "Str0ngpassword",
	})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	req = jsonRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "Str0ngpassword",
	})
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp)
	assert.NotEmpty(t, body["token"])

	req = jsonRequest(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrongpassword1A",
	})
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app, _ := newTestApp(t)

	req := jsonRequest(t, http.MethodPost, "/api/feeds/", "", map[string]string{"text": "hi"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = jsonRequest(t, http.MethodGet, "/api/me/", "", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
