package usecases

import (
	"context"

	"sitelog/internal/application/auth/dto"
	"sitelog/internal/domain/user"
	"sitelog/internal/shared/authorization"
	"sitelog/internal/shared/errors"
	"sitelog/internal/shared/logger"
)

// TokenPair bundles the access and refresh tokens issued on login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// JWTService issues and refreshes token pairs.
type JWTService interface {
	GeneratePair(userID string, role authorization.UserRole) (*TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, error)
	ValidateAccess(token string) (userID string, role authorization.UserRole, err error)
}

// PasswordHasher hashes and verifies credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User         *dto.UserDTO
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginUseCase struct {
	userRepo   user.Repository
	hasher     PasswordHasher
	jwtService JWTService
	logger     logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	existing, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to find user by email", "error", err)
		return nil, err
	}

	// The same message covers an unknown email and a wrong password so
	// account enumeration is not possible.
	if existing == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}
	if !existing.IsActive() {
		return nil, errors.NewUnauthorizedError("account is disabled")
	}
	if err := uc.hasher.Compare(existing.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("failed login attempt", "email", cmd.Email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	tokens, err := uc.jwtService.GeneratePair(existing.ID(), existing.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate token pair", "error", err)
		return nil, err
	}

	existing.RecordLogin()
	if err := uc.userRepo.Update(ctx, existing); err != nil {
		// A failed lastLogin stamp does not block the login.
		uc.logger.Warnw("failed to record login time", "error", err, "user_id", existing.ID())
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID(), "role", existing.Role())

	return &LoginResult{
		User:         dto.ToUserDTO(existing),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
