package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ripple/internal/auth"
	"ripple/internal/config"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test_secret"

// newTestServer wires a Server around mock repositories and registers the
// full route table on a fresh Fiber app.
func newTestServer(t *testing.T, userRepo *MockUserRepository, postRepo *MockPostRepository) (*Server, *fiber.App) {
	t.Helper()

	tokens := auth.NewTokenCodec(testJWTSecret)
	s := &Server{
		config:   &config.Config{JWTSecret: testJWTSecret},
		tokens:   tokens,
		userRepo: userRepo,
		postRepo: postRepo,
	}
	s.userService = service.NewUserService(userRepo, tokens)
	s.postService = service.NewPostService(postRepo)

	app := fiber.New()
	s.SetupRoutes(app)
	return s, app
}

// jsonRequest builds a request with a JSON body.
func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withSession attaches a valid session cookie for the given user ID.
func withSession(t *testing.T, s *Server, req *http.Request, userID uint) *http.Request {
	t.Helper()

	token, err := s.tokens.Issue(auth.Identity{ID: userID, Email: "session@example.com"})
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	return req
}

// readBody unmarshals a JSON response body into a map.
func readBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}
