package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/peve-dev/peve-backend/internal/domain"
	"github.com/peve-dev/peve-backend/internal/repository"
	"github.com/peve-dev/peve-backend/internal/usecase/badge"
)

// BadgeChecker runs a badge check after an action. It never fails.
type BadgeChecker interface {
	CheckAndAwardBadges(ctx context.Context, userID uuid.UUID, action string, targetID *uuid.UUID) []domain.AwardedBadge
}

// BioGenerator drafts profile bios from what the user filled in.
type BioGenerator interface {
	GenerateBio(ctx context.Context, displayName string, skills, interests []string) (map[string]string, error)
}

type ProfileUseCase struct {
	userRepo     repository.UserRepository
	badges       BadgeChecker
	bioGenerator BioGenerator
}

func NewProfileUseCase(
	userRepo repository.UserRepository,
	badges BadgeChecker,
	bioGenerator BioGenerator,
) *ProfileUseCase {
	return &ProfileUseCase{
		userRepo:     userRepo,
		badges:       badges,
		bioGenerator: bioGenerator,
	}
}

// UpdateProfileRequest represents profile update request
type UpdateProfileRequest struct {
	DisplayName       *string                `json:"display_name" binding:"omitempty,min=2,max=100"`
	Bio               *string                `json:"bio" binding:"omitempty,max=500"`
	AvatarURL         *string                `json:"avatar_url" binding:"omitempty,url"`
	GithubURL         *string                `json:"github_url" binding:"omitempty,url"`
	Skills            *[]string              `json:"skills" binding:"omitempty,max=30,dive,min=1,max=50"`
	PreferredRoles    *[]string              `json:"preferred_roles" binding:"omitempty,max=10,dive,min=1,max=50"`
	Interests         *[]string              `json:"interests" binding:"omitempty,max=20,dive,min=1,max=50"`
	AvailabilityHours *float64               `json:"availability_hours" binding:"omitempty,min=0,max=168"`
	TimeZone          *string                `json:"time_zone" binding:"omitempty,timezone"`
	TeamPreference    *domain.TeamPreference `json:"team_preference" binding:"omitempty,oneof=solo small_team large_team"`
	Pace              *domain.Pace           `json:"pace" binding:"omitempty,oneof=relaxed steady fast"`
	Communication     *domain.Communication  `json:"communication" binding:"omitempty,oneof=async sync mixed"`
	DecisionStyle     *domain.DecisionStyle  `json:"decision_style" binding:"omitempty,oneof=data_driven intuitive collaborative"`
}

// UpdateProfileResponse represents the updated user and any badges the update earned
type UpdateProfileResponse struct {
	User      *domain.User          `json:"user"`
	NewBadges []domain.AwardedBadge `json:"new_badges"`
}

// GetProfile returns a user with its profile fields
func (uc *ProfileUseCase) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// UpdateProfile updates the user's profile and checks for profile badges
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*UpdateProfileResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}
	if req.GithubURL != nil {
		user.GithubURL = req.GithubURL
	}
	if req.Skills != nil {
		user.Skills = cleanList(*req.Skills)
	}
	if req.PreferredRoles != nil {
		user.PreferredRoles = cleanList(*req.PreferredRoles)
	}
	if req.Interests != nil {
		user.Interests = cleanList(*req.Interests)
	}
	if req.AvailabilityHours != nil {
		user.AvailabilityHours = *req.AvailabilityHours
	}
	if req.TimeZone != nil {
		user.TimeZone = *req.TimeZone
	}
	if req.TeamPreference != nil {
		user.WorkStyle.TeamPreference = *req.TeamPreference
	}
	if req.Pace != nil {
		user.WorkStyle.Pace = *req.Pace
	}
	if req.Communication != nil {
		user.WorkStyle.Communication = *req.Communication
	}
	if req.DecisionStyle != nil {
		user.WorkStyle.DecisionStyle = *req.DecisionStyle
	}

	if err := uc.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &UpdateProfileResponse{
		User:      user,
		NewBadges: uc.badges.CheckAndAwardBadges(ctx, userID, badge.ActionProfileUpdate, nil),
	}, nil
}

// GenerateBio drafts bios from the user's stored profile
func (uc *ProfileUseCase) GenerateBio(ctx context.Context, userID uuid.UUID) (map[string]string, error) {
	if uc.bioGenerator == nil {
		return nil, fmt.Errorf("gemini client is not initialized")
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.bioGenerator.GenerateBio(ctx, user.DisplayName, user.Skills, user.Interests)
}

// cleanList trims entries and drops blanks and duplicates, keeping the first occurrence.
func cleanList(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
