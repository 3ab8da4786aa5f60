package server

import (
	"ripple/internal/auth"
	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/users/register
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Image     string `json:"image"`
	}
	if err := s.decodeBody(c, &req); err != nil {
		return nil
	}

	user, token, err := s.userService.Register(c.Context(), service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Image:     req.Image,
	})
	if err != nil {
		observability.AuthAttempts.WithLabelValues("register", "rejected").Inc()
		return models.RespondError(c, err)
	}
	observability.AuthAttempts.WithLabelValues("register", "accepted").Inc()

	c.Cookie(auth.SessionCookie(token, s.config.IsProduction()))
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registration successful",
		"user":    user.Public(),
	})
}

// Login handles POST /api/users/login
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := s.decodeBody(c, &req); err != nil {
		return nil
	}

	user, token, err := s.userService.Login(c.Context(), service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		observability.AuthAttempts.WithLabelValues("login", "rejected").Inc()
		return models.RespondError(c, err)
	}
	observability.AuthAttempts.WithLabelValues("login", "accepted").Inc()

	c.Cookie(auth.SessionCookie(token, s.config.IsProduction()))
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"user":    user.Public(),
	})
}

// Logout handles POST /api/users/logout
func (s *Server) Logout(c *fiber.Ctx) error {
	c.Cookie(auth.ClearSessionCookie(s.config.IsProduction()))
	return c.JSON(fiber.Map{
		"message": "Logout successful",
	})
}

// ResetPassword handles PUT /api/users/reset-password
func (s *Server) ResetPassword(c *fiber.Ctx) error {
	var req struct {
		Email       string `json:"email"`
		NewPassword string `json:"newPassword"`
	}
	if err := s.decodeBody(c, &req); err != nil {
		return nil
	}

	if err := s.userService.ResetPassword(c.Context(), service.ResetPasswordInput{
		Email:       req.Email,
		NewPassword: req.NewPassword,
	}); err != nil {
		observability.AuthAttempts.WithLabelValues("reset_password", "rejected").Inc()
		return models.RespondError(c, err)
	}
	observability.AuthAttempts.WithLabelValues("reset_password", "accepted").Inc()

	return c.JSON(fiber.Map{
		"message": "Password updated",
	})
}
