package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "wallxy/internal/errors"
	"wallxy/internal/model"
	"wallxy/internal/repository"
)

// ProfileUpdate carries the mutable profile fields. Nil pointers leave
// the stored value untouched. Email, password and user type are not
// changeable through profile updates.
type ProfileUpdate struct {
	FullName        *string
	AvatarURL       *string
	Bio             *string
	Skills          *model.StringList
	HourlyRate      *decimal.Decimal
	ExperienceLevel *string
	Location        *string
}

// UserService handles public profile reads and self-service updates.
type UserService interface {
	GetProfile(ctx context.Context, id string) (*model.User, error)
	UpdateProfile(ctx context.Context, callerID, id string, update ProfileUpdate) (*model.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetProfile returns a user's public profile.
func (s *userService) GetProfile(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies a partial profile update. Only the profile
// owner may update it.
func (s *userService) UpdateProfile(ctx context.Context, callerID, id string, update ProfileUpdate) (*model.User, error) {
	if callerID != id {
		return nil, apperrors.ErrNotOwner
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if update.FullName != nil {
		user.FullName = *update.FullName
	}
	if update.AvatarURL != nil {
		user.AvatarURL = *update.AvatarURL
	}
	if update.Bio != nil {
		user.Bio = *update.Bio
	}
	if update.Skills != nil {
		user.Skills = *update.Skills
	}
	if update.HourlyRate != nil {
		user.HourlyRate = *update.HourlyRate
	}
	if update.ExperienceLevel != nil {
		user.ExperienceLevel = *update.ExperienceLevel
	}
	if update.Location != nil {
		user.Location = *update.Location
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}
