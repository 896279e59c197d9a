package usecases

import (
	"context"

	"sitelog/internal/application/auth/dto"
	"sitelog/internal/domain/user"
	"sitelog/internal/shared/errors"
	"sitelog/internal/shared/logger"
)

type GetProfileQuery struct {
	UserID string
}

type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(
	userRepo user.Repository,
	logger logger.Interface,
) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*dto.UserDTO, error) {
	if query.UserID == "" {
		return nil, errors.NewValidationError("user ID is required")
	}

	existing, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		uc.logger.Errorw("failed to find user", "error", err, "user_id", query.UserID)
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	return dto.ToUserDTO(existing), nil
}
