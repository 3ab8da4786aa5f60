package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyPosts handles GET /api/posts
func (s *Server) GetMyPosts(c *fiber.Ctx) error {
	posts, err := s.postService.Feed(c.Context(), s.callerID(c))
	if err != nil {
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{
		"posts": posts,
	})
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		TextContent string   `json:"textContent"`
		Files       []string `json:"files"`
	}
	if err := s.decodeBody(c, &req); err != nil {
		return nil
	}

	post, err := s.postService.Create(c.Context(), s.callerID(c), service.PostInput{
		TextContent: req.TextContent,
		Files:       req.Files,
	})
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post created",
		"post":    post,
	})
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.Get(c.Context(), s.callerID(c), postID)
	if err != nil {
		s.countGuardRejection("post", err)
		return models.RespondError(c, err)
	}
	return c.JSON(fiber.Map{
		"post": post,
	})
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		TextContent string   `json:"textContent"`
		Files       []string `json:"files"`
	}
	if err := s.decodeBody(c, &req); err != nil {
		return nil
	}

	post, err := s.postService.Update(c.Context(), s.callerID(c), postID, service.PostInput{
		TextContent: req.TextContent,
		Files:       req.Files,
	})
	if err != nil {
		s.countGuardRejection("post", err)
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Post updated",
		"post":    post,
	})
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.Delete(c.Context(), s.callerID(c), postID); err != nil {
		s.countGuardRejection("post", err)
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Post deleted",
	})
}
