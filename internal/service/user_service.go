package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/DraymeM/tiomi/internal/dto"
	"github.com/DraymeM/tiomi/internal/model"
	"github.com/DraymeM/tiomi/internal/repository"
)

// UserService is the credential store facade. Callers get read-only
// projections; the stored hash never crosses this boundary.
type UserService interface {
	// Create hashes the plaintext internally and persists the new user,
	// returning its identifier. The plaintext is never stored.
	Create(ctx context.Context, username, password, email string, superuser bool) (int64, error)
	FindByID(ctx context.Context, id int64) (*dto.UserResponse, error)
	FindByUsername(ctx context.Context, username string) (*dto.UserResponse, error)
	FindByEmail(ctx context.Context, email string) (*dto.UserResponse, error)
	// VerifyPassword compares a candidate against the stored hash. A mismatch
	// is (false, nil), never an error.
	VerifyPassword(ctx context.Context, id int64, candidate string) (bool, error)
	// UpdatePassword recomputes the hash and reports whether exactly one row
	// changed; a nonexistent id yields (false, nil).
	UpdatePassword(ctx context.Context, id int64, newPassword string) (bool, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates the UserService.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

func (s *userService) Create(ctx context.Context, username, password, email string, superuser bool) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hashing password failed", zap.Error(err))
		return 0, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Superuser:    superuser,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, ErrUsernameExists
		}
		s.logger.Error("creating user failed", zap.Error(err))
		return 0, err
	}

	return user.ID, nil
}

func (s *userService) FindByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	return s.project(s.repo.User.GetByID(ctx, id))
}

func (s *userService) FindByUsername(ctx context.Context, username string) (*dto.UserResponse, error) {
	return s.project(s.repo.User.GetByUsername(ctx, username))
}

func (s *userService) FindByEmail(ctx context.Context, email string) (*dto.UserResponse, error) {
	return s.project(s.repo.User.GetByEmail(ctx, email))
}

func (s *userService) VerifyPassword(ctx context.Context, id int64, candidate string) (bool, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(candidate)); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *userService) UpdatePassword(ctx context.Context, id int64, newPassword string) (bool, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hashing password failed", zap.Error(err))
		return false, err
	}

	updated, err := s.repo.User.UpdatePassword(ctx, id, string(hash))
	if err != nil {
		s.logger.Error("updating password failed", zap.Int64("id", id), zap.Error(err))
		return false, err
	}
	return updated, nil
}

func (s *userService) project(user *model.User, err error) (*dto.UserResponse, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("looking up user failed", zap.Error(err))
		return nil, err
	}
	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Superuser: user.Superuser,
	}, nil
}
