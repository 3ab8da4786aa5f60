package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRedirect(t *testing.T) {
	app := fiber.New()
	app.Use(SessionRedirect("token"))
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendString("page")
	})

	tests := []struct {
		name           string
		path           string
		withCookie     bool
		expectedStatus int
		expectedTarget string
	}{
		{"Login With Session", LoginPage, true, fiber.StatusFound, ProfilePage},
		{"Register With Session", RegisterPage, true, fiber.StatusFound, ProfilePage},
		{"Forget Password With Session", ForgetPasswordPage, true, fiber.StatusFound, ProfilePage},
		{"Login Anonymous", LoginPage, false, fiber.StatusOK, ""},
		{"Profile Anonymous", ProfilePage, false, fiber.StatusFound, LoginPage},
		{"Profile With Session", ProfilePage, true, fiber.StatusOK, ""},
		{"Other Page Anonymous", "/about", false, fiber.StatusOK, ""},
		{"Other Page With Session", "/about", true, fiber.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.withCookie {
				// Presence is all that matters here; validity is checked by
				// the API's session gate.
				req.AddCookie(&http.Cookie{Name: "token", Value: "anything"})
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			if tt.expectedTarget != "" {
				assert.Equal(t, tt.expectedTarget, resp.Header.Get("Location"))
			}
		})
	}
}
