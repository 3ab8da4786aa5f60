// Package service implements the application's business rules on top of the
// repository layer.
package service

import (
	"context"

	"ripple/internal/auth"
	"ripple/internal/models"
	"ripple/internal/repository"
	"ripple/internal/validation"
)

// UserService owns registration, login and profile management rules.
type UserService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenCodec
}

// RegisterInput is the validated shape of a registration request.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Image     string
}

// LoginInput carries login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput carries the optional profile fields to change.
type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Image     string
}

// ResetPasswordInput carries a password-reset request.
type ResetPasswordInput struct {
	Email       string
	NewPassword string
}

// NewUserService builds a UserService around the user repository and the
// session token codec.
func NewUserService(userRepo repository.UserRepository, tokens *auth.TokenCodec) *UserService {
	return &UserService{userRepo: userRepo, tokens: tokens}
}

// Register validates the input, rejects duplicate emails, hashes the
// password and creates the account. On success it returns the created user
// together with a freshly issued session token.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, string, error) {
	if err := validation.ValidateName("First name", in.FirstName); err != nil {
		return nil, "", models.NewValidationError(err.Error())
	}
	if err := validation.ValidateName("Last name", in.LastName); err != nil {
		return nil, "", models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, "", models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, "", models.NewValidationError(err.Error())
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", models.NewDuplicateError("This email already exists")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}

	user := &models.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  hash,
		Image:     in.Image,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(auth.Identity{ID: user.ID, Email: user.Email})
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}

	return user, token, nil
}

// Login authenticates credentials. An unknown email and a wrong password
// are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, in LoginInput) (*models.User, string, error) {
	if in.Email == "" || in.Password == "" {
		return nil, "", models.NewValidationError("Email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !auth.CheckPassword(in.Password, user.Password) {
		return nil, "", models.NewUnauthorizedError("Invalid email or password")
	}

	token, err := s.tokens.Issue(auth.Identity{ID: user.ID, Email: user.Email})
	if err != nil {
		return nil, "", models.NewInternalError(err)
	}

	return user, token, nil
}

// GetProfile loads the target profile with recent posts. Existence is
// checked after authentication (the caller's identity is already verified)
// but before ownership, so an unauthorized caller and a missing profile
// yield distinct errors.
func (s *UserService) GetProfile(ctx context.Context, callerID, targetID uint) (*models.User, error) {
	user, err := s.userRepo.GetByIDWithPosts(ctx, targetID, 20)
	if err != nil {
		return nil, err
	}
	if callerID != user.ID {
		return nil, models.NewUnauthorizedError("Unauthorized")
	}
	return user, nil
}

// UpdateProfile applies the non-empty fields of in to the target profile.
// Only the owner may update; a new password is re-validated and re-hashed.
func (s *UserService) UpdateProfile(ctx context.Context, callerID, targetID uint, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if callerID != user.ID {
		return nil, models.NewUnauthorizedError("Unauthorized")
	}

	if in.FirstName != "" {
		if err := validation.ValidateName("First name", in.FirstName); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		if err := validation.ValidateName("Last name", in.LastName); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.LastName = in.LastName
	}
	if in.Email != "" {
		if err := validation.ValidateEmail(in.Email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Email = in.Email
	}
	if in.Password != "" {
		if err := validation.ValidatePassword(in.Password); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = hash
	}
	if in.Image != "" {
		user.Image = in.Image
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteProfile removes the target account. Only the owner may delete.
func (s *UserService) DeleteProfile(ctx context.Context, callerID, targetID uint) error {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if callerID != user.ID {
		return models.NewUnauthorizedError("Unauthorized")
	}
	return s.userRepo.Delete(ctx, user.ID)
}

// ResetPassword replaces the password for the account registered under the
// given email. Reset tokens and their expiry are out of scope; the endpoint
// matches the original product's direct reset flow.
func (s *UserService) ResetPassword(ctx context.Context, in ResetPasswordInput) error {
	if err := validation.ValidateEmail(in.Email); err != nil {
		return models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.NewPassword); err != nil {
		return models.NewValidationError(err.Error())
	}

	user, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return models.NewValidationError("Invalid user email")
	}

	hash, err := auth.HashPassword(in.NewPassword)
	if err != nil {
		return models.NewInternalError(err)
	}
	user.Password = hash

	return s.userRepo.Update(ctx, user)
}
