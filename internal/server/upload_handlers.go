package server

import (
	"fmt"

	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UploadImages handles POST /api/uploads. It accepts a multipart form with
// one or more "files" entries and returns the public URL of each upload.
func (s *Server) UploadImages(c *fiber.Ctx) error {
	if s.uploadService == nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(fmt.Errorf("uploader not configured")))
	}

	form, err := c.MultipartForm()
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid multipart form"))
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("At least one file is required"))
	}
	if len(headers) > models.MaxPostAttachments {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError(fmt.Sprintf("A post can have at most %d attachments", models.MaxPostAttachments)))
	}

	files := make([]service.UploadFile, 0, len(headers))
	closers := make([]func() error, 0, len(headers))
	defer func() {
		for _, close := range closers {
			_ = close()
		}
	}()
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Unreadable file in upload"))
		}
		closers = append(closers, f.Close)
		files = append(files, service.UploadFile{Name: h.Filename, Reader: f})
	}

	urls, err := s.uploadService.UploadBatch(c.Context(), files)
	if err != nil {
		return models.RespondError(c, err)
	}

	return c.JSON(fiber.Map{
		"urls": urls,
	})
}
