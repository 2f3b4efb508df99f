package jwt

import (
	"testing"
	"time"

	"github.com/engr-abdul-wahab/ridehive-backend-sub001/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 60,
		Issuer:     "ridehive",
	}

	tokenString, expiresAt, err := GenerateToken("driver-1", "driver", cfg)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, time.Now().Unix())

	claims, err := ValidateToken(tokenString, cfg.Secret)
	assert.NoError(t, err)
	assert.Equal(t, "driver-1", claims.SubjectID)
	assert.Equal(t, "driver", claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "ridehive"}

	tokenString, _, err := GenerateToken("user-1", "user", cfg)
	assert.NoError(t, err)

	_, err = ValidateToken(tokenString, "other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "test-secret")
	assert.Error(t, err)
}
