package middleware_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veilart/market-ledger/internal/api/middleware"
	"github.com/veilart/market-ledger/internal/logger"
)

var (
	signingKey *rsa.PrivateKey
	authCfg    middleware.AuthConfig
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		panic(err)
	}
	signingKey = key

	publicDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		panic(err)
	}
	authCfg = middleware.AuthConfig{
		JWTPublicKey: string(pem.EncodeToMemory(&pem.Block{
			Type:  "PUBLIC KEY",
			Bytes: publicDER,
		})),
		APIKeys: []string{"valid-key"},
	}

	m.Run()
}

func signToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(signingKey)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	t.Run("ValidBearerToken", func(t *testing.T) {
		token := signToken(t, jwt.RegisteredClaims{
			Subject:   "0x52908400098527886e0f7030069857d2e4169ee7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})

		result := middleware.Authenticate("Bearer "+token, authCfg)
		assert.True(t, result.Success)
		assert.Equal(t, "jwt", result.AuthType)
		assert.Equal(t, "0x52908400098527886e0f7030069857d2e4169ee7", result.AuthSubject)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		token := signToken(t, jwt.RegisteredClaims{
			Subject:   "0x52908400098527886e0f7030069857d2e4169ee7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		})

		result := middleware.Authenticate("Bearer "+token, authCfg)
		assert.False(t, result.Success)
		assert.Error(t, result.Error)
	})

	t.Run("NotYetValidToken", func(t *testing.T) {
		token := signToken(t, jwt.RegisteredClaims{
			Subject:   "0x52908400098527886e0f7030069857d2e4169ee7",
			NotBefore: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(2 * time.Hour)),
		})

		result := middleware.Authenticate("Bearer "+token, authCfg)
		assert.False(t, result.Success)
	})

	t.Run("TamperedToken", func(t *testing.T) {
		token := signToken(t, jwt.RegisteredClaims{
			Subject:   "0x52908400098527886e0f7030069857d2e4169ee7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})

		result := middleware.Authenticate("Bearer "+token+"x", authCfg)
		assert.False(t, result.Success)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		result := middleware.Authenticate("", authCfg)
		assert.False(t, result.Success)
		assert.Error(t, result.Error)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		result := middleware.Authenticate("Bearer", authCfg)
		assert.False(t, result.Success)
	})

	t.Run("UnsupportedType", func(t *testing.T) {
		result := middleware.Authenticate("Basic dXNlcjpwYXNz", authCfg)
		assert.False(t, result.Success)
	})

	t.Run("ValidAPIKey", func(t *testing.T) {
		result := middleware.Authenticate("APIKey valid-key", authCfg)
		assert.True(t, result.Success)
		assert.Equal(t, "apikey", result.AuthType)
		assert.Empty(t, result.AuthSubject)
	})

	t.Run("InvalidAPIKey", func(t *testing.T) {
		result := middleware.Authenticate("APIKey wrong-key", authCfg)
		assert.False(t, result.Success)
	})

	t.Run("NoPublicKeyConfigured", func(t *testing.T) {
		token := signToken(t, jwt.RegisteredClaims{
			Subject:   "0x52908400098527886e0f7030069857d2e4169ee7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})

		result := middleware.Authenticate("Bearer "+token, middleware.AuthConfig{})
		assert.False(t, result.Success)
	})
}
