package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"ripple/internal/models"
)

// Uploader forwards image bytes to the asset host and returns a stable
// public URL for each upload.
type Uploader interface {
	Upload(ctx context.Context, name string, r io.Reader) (string, error)
}

// CloudinaryUploader is the production Uploader backed by Cloudinary.
type CloudinaryUploader struct {
	client *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryUploader builds an Uploader from a CLOUDINARY_URL-style
// connection string.
func NewCloudinaryUploader(cloudinaryURL, folder string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("cloudinary init: %w", err)
	}
	return &CloudinaryUploader{client: cld, folder: folder}, nil
}

// Upload sends one image to Cloudinary and returns its HTTPS delivery URL.
func (u *CloudinaryUploader) Upload(ctx context.Context, name string, r io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	res, err := u.client.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:         u.folder,
		PublicID:       fmt.Sprintf("%s_%d", name, time.Now().UnixNano()),
		Transformation: "c_limit,w_1600,h_1600,q_auto",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	return res.SecureURL, nil
}

// UploadService batches attachment uploads for a post, enforcing the
// per-post attachment cap before any bytes leave the process.
type UploadService struct {
	uploader Uploader
}

func NewUploadService(up Uploader) *UploadService {
	return &UploadService{uploader: up}
}

// UploadFile is one named file to push to the asset host.
type UploadFile struct {
	Name   string
	Reader io.Reader
}

// UploadBatch uploads up to models.MaxPostAttachments files and returns
// their public URLs in input order.
func (s *UploadService) UploadBatch(ctx context.Context, files []UploadFile) ([]string, error) {
	if len(files) == 0 {
		return nil, models.NewValidationError("At least one file is required")
	}
	if len(files) > models.MaxPostAttachments {
		return nil, models.NewValidationError(fmt.Sprintf("A post can have at most %d attachments", models.MaxPostAttachments))
	}

	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := s.uploader.Upload(ctx, f.Name, f.Reader)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}
