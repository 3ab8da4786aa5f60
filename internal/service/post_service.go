package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/validation"
)

// FeedLimit caps how many posts a single feed read returns.
const FeedLimit = 50

// PostService owns post creation, retrieval and the per-post ownership
// rules.
type PostService struct {
	postRepo repository.PostRepository
}

// PostInput is the shape of a create or update request.
type PostInput struct {
	TextContent string
	Files       []string
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// Feed returns the caller's posts, newest first.
func (s *PostService) Feed(ctx context.Context, callerID uint) ([]models.Post, error) {
	return s.postRepo.GetByUserID(ctx, callerID, FeedLimit)
}

// Create validates the content rules (text or at least one attachment, at
// most MaxPostAttachments files) before touching storage.
func (s *PostService) Create(ctx context.Context, callerID uint, in PostInput) (*models.Post, error) {
	if err := validation.ValidatePostContent(in.TextContent, in.Files, models.MaxPostAttachments); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post := &models.Post{
		TextContent: in.TextContent,
		Files:       models.AttachmentList(in.Files),
		UserID:      callerID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Get loads a single post. Posts are private to their author, so a caller
// reading someone else's post is rejected the same way as one holding no
// valid session at all.
func (s *PostService) Get(ctx context.Context, callerID, postID uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != callerID {
		return nil, models.NewUnauthorizedError("Unauthorized")
	}
	return post, nil
}

// Update replaces the post's content after re-running the content rules.
// Only the author may update.
func (s *PostService) Update(ctx context.Context, callerID, postID uint, in PostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != callerID {
		return nil, models.NewUnauthorizedError("Unauthorized")
	}

	if err := validation.ValidatePostContent(in.TextContent, in.Files, models.MaxPostAttachments); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	post.TextContent = in.TextContent
	post.Files = models.AttachmentList(in.Files)
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes a post. Only the author may delete.
func (s *PostService) Delete(ctx context.Context, callerID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != callerID {
		return models.NewUnauthorizedError("Unauthorized")
	}
	return s.postRepo.Delete(ctx, post.ID)
}
