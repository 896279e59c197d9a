package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sitelog/internal/application/auth/usecases"
	"sitelog/internal/shared/authorization"
	"sitelog/internal/shared/config"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// Claims carries the identity embedded in issued tokens.
type Claims struct {
	UserID    string `json:"uid"`
	Role      string `json:"role"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// JWTService issues and validates HS256 token pairs.
type JWTService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{
		secret:     []byte(cfg.Secret),
		accessTTL:  time.Duration(cfg.AccessExpMinutes) * time.Minute,
		refreshTTL: time.Duration(cfg.RefreshExpDays) * 24 * time.Hour,
	}
}

func (s *JWTService) GeneratePair(userID string, role authorization.UserRole) (*usecases.TokenPair, error) {
	access, err := s.sign(userID, role, tokenTypeAccess, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refresh, err := s.sign(userID, role, tokenTypeRefresh, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &usecases.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessTTL.Seconds()),
	}, nil
}

// Refresh validates a refresh token and issues a fresh pair. The role is
// re-read from the token; a role change takes effect at the next login.
func (s *JWTService) Refresh(refreshToken string) (*usecases.TokenPair, error) {
	claims, err := s.parse(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != tokenTypeRefresh {
		return nil, fmt.Errorf("token is not a refresh token")
	}

	return s.GeneratePair(claims.UserID, authorization.ParseUserRole(claims.Role))
}

func (s *JWTService) ValidateAccess(token string) (string, authorization.UserRole, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", "", err
	}
	if claims.TokenType != tokenTypeAccess {
		return "", "", fmt.Errorf("token is not an access token")
	}

	return claims.UserID, authorization.ParseUserRole(claims.Role), nil
}

func (s *JWTService) sign(userID string, role authorization.UserRole, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		Role:      role.String(),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *JWTService) parse(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
