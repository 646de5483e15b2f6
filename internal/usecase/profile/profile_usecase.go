package profile

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gdugdh24/healthlog-backend/internal/domain"
	"github.com/gdugdh24/healthlog-backend/internal/repository"
)

// NarrativeInvalidator drops a user's cached coaching narrative.
type NarrativeInvalidator interface {
	Invalidate(ctx context.Context, userID int) error
}

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	narratives  NarrativeInvalidator
	logger      *slog.Logger
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	narratives NarrativeInvalidator,
	logger *slog.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		narratives:  narratives,
		logger:      logger,
	}
}

// UpdateProfileRequest represents a partial profile update; nil fields are kept.
type UpdateProfileRequest struct {
	FirstName *string  `json:"first_name" binding:"omitempty,max=150"`
	LastName  *string  `json:"last_name" binding:"omitempty,max=150"`
	Email     *string  `json:"email" binding:"omitempty,email,max=254"`
	Age       *int     `json:"age" binding:"omitempty,min=1,max=120"`
	HeightCm  *float64 `json:"height" binding:"omitempty,gte=50,lte=300"`
	WeightKg  *float64 `json:"weight" binding:"omitempty,gte=2,lte=500"`
}

// ProfileResponse represents profile response with account and BMI info
type ProfileResponse struct {
	Username  string           `json:"username"`
	Email     *string          `json:"email"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Age       int              `json:"age"`
	HeightCm  float64          `json:"height"`
	WeightKg  float64          `json:"weight"`
	BMI       float64          `json:"bmi"`
	BMIStatus domain.BMIStatus `json:"bmi_status"`
}

func newProfileResponse(user *domain.User, profile *domain.Profile) *ProfileResponse {
	return &ProfileResponse{
		Username:  user.Username,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Age:       profile.Age,
		HeightCm:  profile.HeightCm,
		WeightKg:  profile.WeightKg,
		BMI:       profile.BMI(),
		BMIStatus: profile.BMIStatus(),
	}
}

// GetMyProfile returns current user's profile
func (uc *ProfileUseCase) GetMyProfile(ctx context.Context, userID int) (*ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return newProfileResponse(user, profile), nil
}

// UpdateProfile updates account names and body measurements. Existing
// health logs keep the score they were saved with.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID int, req *UpdateProfileRequest) (*ProfileResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	accountChanged := req.FirstName != nil || req.LastName != nil || req.Email != nil
	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		user.Email = domain.NormalizeEmail(*req.Email)
	}
	if req.Age != nil {
		profile.Age = *req.Age
	}
	if req.HeightCm != nil {
		profile.HeightCm = *req.HeightCm
	}
	if req.WeightKg != nil {
		profile.WeightKg = *req.WeightKg
	}

	if accountChanged {
		err = uc.userRepo.UpdateWithProfile(ctx, user, profile)
	} else {
		err = uc.profileRepo.Update(ctx, profile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if err := uc.narratives.Invalidate(ctx, userID); err != nil {
		uc.logger.Warn("failed to invalidate coach narrative", "user_id", userID, "error", err)
	}

	return newProfileResponse(user, profile), nil
}
