package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitelog/internal/domain/user"
	"sitelog/internal/shared/authorization"
	apperrors "sitelog/internal/shared/errors"
)

func activeUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewUser("marie.curie@example.com", "$2a$10$hash", "Marie", "Curie", authorization.RoleWrite)
	require.NoError(t, err)
	return u
}

func TestLoginUseCase_Execute(t *testing.T) {
	t.Run("should login and record last login", func(t *testing.T) {
		u := activeUser(t)
		updated := false
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				assert.Equal(t, "marie.curie@example.com", email)
				return u, nil
			},
			UpdateFunc: func(ctx context.Context, saved *user.User) error {
				updated = true
				return nil
			},
		}

		uc := NewLoginUseCase(mockRepo, &mockPasswordHasher{}, &mockJWTService{}, &mockLogger{})

		result, err := uc.Execute(context.Background(), LoginCommand{
			Email:    "marie.curie@example.com",
			Password: "secret",
		})

		require.NoError(t, err)
		assert.Equal(t, "access", result.AccessToken)
		assert.Equal(t, "refresh", result.RefreshToken)
		assert.Equal(t, u.ID(), result.User.ID)
		assert.Equal(t, "Marie Curie", result.User.FullName)
		assert.True(t, updated)
		assert.NotNil(t, u.LastLogin())
	})

	t.Run("should return generic error for unknown email", func(t *testing.T) {
		uc := NewLoginUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockJWTService{}, &mockLogger{})

		result, err := uc.Execute(context.Background(), LoginCommand{
			Email:    "ghost@example.com",
			Password: "secret",
		})

		assert.Nil(t, result)
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 401, appErr.Code)
		assert.Equal(t, "invalid email or password", appErr.Message)
	})

	t.Run("should return same generic error for wrong password", func(t *testing.T) {
		u := activeUser(t)
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return u, nil
			},
		}
		hasher := &mockPasswordHasher{
			CompareFunc: func(hash, password string) error {
				return errors.New("mismatch")
			},
		}

		uc := NewLoginUseCase(mockRepo, hasher, &mockJWTService{}, &mockLogger{})

		result, err := uc.Execute(context.Background(), LoginCommand{
			Email:    "marie.curie@example.com",
			Password: "wrong",
		})

		assert.Nil(t, result)
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "invalid email or password", appErr.Message)
	})

	t.Run("should not fail login when lastLogin update fails", func(t *testing.T) {
		u := activeUser(t)
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return u, nil
			},
			UpdateFunc: func(ctx context.Context, saved *user.User) error {
				return errors.New("database unavailable")
			},
		}

		uc := NewLoginUseCase(mockRepo, &mockPasswordHasher{}, &mockJWTService{}, &mockLogger{})

		result, err := uc.Execute(context.Background(), LoginCommand{
			Email:    "marie.curie@example.com",
			Password: "secret",
		})

		require.NoError(t, err)
		assert.NotNil(t, result)
	})

	t.Run("should reject missing credentials", func(t *testing.T) {
		uc := NewLoginUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockJWTService{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), LoginCommand{Email: "a@b.fr"})

		assert.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}

func TestRefreshTokenUseCase_Execute(t *testing.T) {
	t.Run("should return new pair", func(t *testing.T) {
		uc := NewRefreshTokenUseCase(&mockJWTService{}, &mockLogger{})

		tokens, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "refresh"})

		require.NoError(t, err)
		assert.Equal(t, "access2", tokens.AccessToken)
	})

	t.Run("should map rejection to unauthorized", func(t *testing.T) {
		mockJWT := &mockJWTService{
			RefreshFunc: func(refreshToken string) (*TokenPair, error) {
				return nil, errors.New("token expired")
			},
		}

		uc := NewRefreshTokenUseCase(mockJWT, &mockLogger{})

		tokens, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "stale"})

		assert.Nil(t, tokens)
		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, 401, appErr.Code)
	})
}

func TestGetProfileUseCase_Execute(t *testing.T) {
	t.Run("should return profile", func(t *testing.T) {
		u := activeUser(t)
		mockRepo := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id string) (*user.User, error) {
				return u, nil
			},
		}

		uc := NewGetProfileUseCase(mockRepo, &mockLogger{})

		profile, err := uc.Execute(context.Background(), GetProfileQuery{UserID: u.ID()})

		require.NoError(t, err)
		assert.Equal(t, "marie.curie@example.com", profile.Email)
		assert.Equal(t, "write", profile.Role)
	})

	t.Run("should return not found for unknown user", func(t *testing.T) {
		uc := NewGetProfileUseCase(&mockUserRepository{}, &mockLogger{})

		_, err := uc.Execute(context.Background(), GetProfileQuery{UserID: "missing"})

		assert.Error(t, err)
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}
