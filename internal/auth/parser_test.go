package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distribution-service/internal/model"
)

func signed(t *testing.T, secret string, method jwt.SigningMethod, key interface{}, expiresAt time.Time) string {
	t.Helper()
	claims := &Claims{
		UserID:   uuid.New(),
		Username: "tester",
		Role:     model.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	if key == nil {
		key = []byte(secret)
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestParse_ValidToken(t *testing.T) {
	parser := NewParser("secret")
	token := signed(t, "secret", jwt.SigningMethodHS256, nil, time.Now().Add(time.Hour))

	claims, err := parser.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "tester", claims.Username)
	assert.Equal(t, model.RoleAdmin, claims.Role)
	assert.NotEqual(t, uuid.Nil, claims.UserID)
}

func TestParse_WrongSecret(t *testing.T) {
	parser := NewParser("secret")
	token := signed(t, "other-secret", jwt.SigningMethodHS256, nil, time.Now().Add(time.Hour))

	_, err := parser.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_ExpiredToken(t *testing.T) {
	parser := NewParser("secret")
	token := signed(t, "secret", jwt.SigningMethodHS256, nil, time.Now().Add(-time.Hour))

	_, err := parser.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_RejectsNonHMAC(t *testing.T) {
	parser := NewParser("secret")
	token := signed(t, "", jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, time.Now().Add(time.Hour))

	_, err := parser.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_Garbage(t *testing.T) {
	parser := NewParser("secret")

	_, err := parser.Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
