package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"rentwise/internal/models/db_models"
	"rentwise/internal/models/request_models"
	"rentwise/internal/repositories"
	"rentwise/pkg/utils"
)

type UserServiceInterface interface {
	// SyncCaller records the caller's profile so their writes can be attributed.
	SyncCaller(ctx context.Context, caller request_models.Caller) error
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{userRepo: userRepo, logger: logger}
}

func (s *UserService) SyncCaller(ctx context.Context, caller request_models.Caller) error {
	if caller.UserID == "" {
		return utils.ErrUnauthorized
	}

	user := &db_models.User{
		ID:              caller.UserID,
		FirstName:       optional(caller.FirstName),
		LastName:        optional(caller.LastName),
		Email:           optional(caller.Email),
		ProfileImageURL: optional(caller.ProfileImageURL),
	}
	if err := s.userRepo.Upsert(ctx, user); err != nil {
		s.logger.Error("sync caller", zap.String("user_id", caller.UserID), zap.Error(err))
		return utils.ErrDatabaseError
	}
	return nil
}

// optional turns blank strings into nil.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// displayName joins first and last name, nil when both are blank.
func displayName(u db_models.User) *string {
	var parts []string
	if u.FirstName != nil {
		parts = append(parts, *u.FirstName)
	}
	if u.LastName != nil {
		parts = append(parts, *u.LastName)
	}
	return optional(strings.Join(parts, " "))
}
