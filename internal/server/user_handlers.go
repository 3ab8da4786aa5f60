package server

import (
	"errors"

	"ripple/internal/auth"
	"ripple/internal/models"
	"ripple/internal/observability"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetProfile handles GET /api/users/profile/:id
func (s *Server) GetProfile(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetProfile(c.Context(), s.callerID(c), targetID)
	if err != nil {
		s.countGuardRejection("profile", err)
		return models.RespondError(c, err)
	}

	posts := make([]models.Post, 0, len(user.Posts))
	posts = append(posts, user.Posts...)

	return c.JSON(fiber.Map{
		"user":  user.Public(),
		"posts": posts,
	})
}

// UpdateProfile handles PUT /api/users/profile/:id
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

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

	user, err := s.userService.UpdateProfile(c.Context(), s.callerID(c), targetID, service.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Image:     req.Image,
	})
	if err != nil {
		s.countGuardRejection("profile", err)
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated",
		"user":    user.Public(),
	})
}

// DeleteProfile handles DELETE /api/users/profile/:id
func (s *Server) DeleteProfile(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.DeleteProfile(c.Context(), s.callerID(c), targetID); err != nil {
		s.countGuardRejection("profile", err)
		return models.RespondError(c, err)
	}

	c.Cookie(auth.ClearSessionCookie(s.config.IsProduction()))
	return c.JSON(fiber.Map{
		"message": "Account deleted",
	})
}

// countGuardRejection increments the ownership-rejection counter when the
// error is an authorization failure.
func (s *Server) countGuardRejection(resource string, err error) {
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Code == models.CodeUnauthorized {
		observability.GuardRejections.WithLabelValues(resource).Inc()
	}
}
