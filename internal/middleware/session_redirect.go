package middleware

import "github.com/gofiber/fiber/v2"

// Page paths handled by SessionRedirect.
const (
	LoginPage          = "/login"
	RegisterPage       = "/register"
	ForgetPasswordPage = "/forget-password"
	ProfilePage        = "/profile"
)

// SessionRedirect steers browsers between the anonymous-only pages and the
// profile page based on the presence of the session cookie. It is advisory
// UX routing only, not a security boundary: handlers enforce authentication
// and ownership independently, so bypassing this filter gains nothing.
func SessionRedirect(cookieName string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()
		hasCookie := c.Cookies(cookieName) != ""

		switch path {
		case LoginPage, RegisterPage, ForgetPasswordPage:
			if hasCookie {
				return c.Redirect(ProfilePage, fiber.StatusFound)
			}
		case ProfilePage:
			if !hasCookie {
				return c.Redirect(LoginPage, fiber.StatusFound)
			}
		}

		return c.Next()
	}
}
