package jwt

import (
	"testing"
	"time"

	"github.com/plateful/plateful-backend/domain"
	gojwt "github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTService() *jwtService {
	return &jwtService{secretKey: "test-secret", issuer: "PLATEFUL"}
}

func TestGenerateAndParseToken(t *testing.T) {
	svc := testJWTService()

	token := svc.GenerateTokenUser("user-123", domain.RoleUser, "user@example.com")
	require.NotEmpty(t, token)

	userID, role, email, err := svc.GetClaimsByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, domain.RoleUser, role)
	assert.Equal(t, "user@example.com", email)
}

func TestGetClaimsByTokenInvalid(t *testing.T) {
	svc := testJWTService()

	_, _, _, err := svc.GetClaimsByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetClaimsByTokenWrongSecret(t *testing.T) {
	other := &jwtService{secretKey: "other-secret", issuer: "PLATEFUL"}
	token := other.GenerateTokenUser("user-123", domain.RoleUser, "")

	_, _, _, err := testJWTService().GetClaimsByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetClaimsByTokenExpired(t *testing.T) {
	svc := testJWTService()

	claims := jwtUserClaim{
		UserID: "user-123",
		Role:   domain.RoleUser,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(-time.Hour)),
			Issuer:    "PLATEFUL",
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, _, _, err = svc.GetClaimsByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
