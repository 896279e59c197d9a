package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitelog/internal/shared/authorization"
	"sitelog/internal/shared/config"
)

func testJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:           "test-secret",
		AccessExpMinutes: 15,
		RefreshExpDays:   7,
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := testJWTService()

	pair, err := svc.GeneratePair("user-1", authorization.RoleWrite)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(900), pair.ExpiresIn)

	userID, role, err := svc.ValidateAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, authorization.RoleWrite, role)
}

func TestJWTService_RejectsRefreshAsAccess(t *testing.T) {
	svc := testJWTService()

	pair, err := svc.GeneratePair("user-1", authorization.RoleAdmin)
	require.NoError(t, err)

	_, _, err = svc.ValidateAccess(pair.RefreshToken)
	assert.Error(t, err)
}

func TestJWTService_Refresh(t *testing.T) {
	svc := testJWTService()

	pair, err := svc.GeneratePair("user-1", authorization.RoleAdmin)
	require.NoError(t, err)

	fresh, err := svc.Refresh(pair.RefreshToken)
	require.NoError(t, err)

	userID, role, err := svc.ValidateAccess(fresh.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, authorization.RoleAdmin, role)
}

func TestJWTService_RejectsAccessAsRefresh(t *testing.T) {
	svc := testJWTService()

	pair, err := svc.GeneratePair("user-1", authorization.RoleRead)
	require.NoError(t, err)

	_, err = svc.Refresh(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	svc := testJWTService()
	other := NewJWTService(config.JWTConfig{Secret: "other-secret", AccessExpMinutes: 15, RefreshExpDays: 7})

	pair, err := other.GeneratePair("user-1", authorization.RoleRead)
	require.NoError(t, err)

	_, _, err = svc.ValidateAccess(pair.AccessToken)
	assert.Error(t, err)
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", hash)

	assert.NoError(t, h.Compare(hash, "secret"))
	assert.Error(t, h.Compare(hash, "wrong"))

	_, err = h.Hash("")
	assert.Error(t, err)
}
