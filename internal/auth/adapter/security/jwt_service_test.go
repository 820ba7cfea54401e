package security_test

import (
	"context"
	"testing"
	"time"

	"yogic-backend/internal/auth/adapter/security"
	"yogic-backend/internal/auth/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type JWTTestSuite struct {
	suite.Suite
	config  *config.Config
	service *security.JWTokenService
}

func (suite *JWTTestSuite) SetupTest() {
	suite.config = &config.Config{
		JWTSecretKey:   "test-secret-key-32-characters-long-12345",
		JWTIssuer:      "test-issuer",
		AccessTokenTTL: 15 * time.Minute,
	}

	service, err := security.NewJWTokenService(suite.config)
	require.NoError(suite.T(), err)
	suite.service = service
}

func (suite *JWTTestSuite) TestNewJWTokenService_ValidationErrors() {
	testCases := []struct {
		name         string
		modifyConfig func(*config.Config)
		expectedErr  string
	}{
		{
			name: "empty secret key",
			modifyConfig: func(cfg *config.Config) {
				cfg.JWTSecretKey = ""
			},
			expectedErr: "jwt secret key cannot be empty",
		},
		{
			name: "empty issuer",
			modifyConfig: func(cfg *config.Config) {
				cfg.JWTIssuer = ""
			},
			expectedErr: "jwt issuer cannot be empty",
		},
		{
			name: "zero TTL",
			modifyConfig: func(cfg *config.Config) {
				cfg.AccessTokenTTL = 0
			},
			expectedErr: "jwt access token TTL must be positive",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			cfg := &config.Config{
				JWTSecretKey:   suite.config.JWTSecretKey,
				JWTIssuer:      suite.config.JWTIssuer,
				AccessTokenTTL: suite.config.AccessTokenTTL,
			}
			tc.modifyConfig(cfg)

			service, err := security.NewJWTokenService(cfg)
			assert.Nil(suite.T(), service)
			assert.EqualError(suite.T(), err, tc.expectedErr)
		})
	}
}

func (suite *JWTTestSuite) TestGenerateAndValidateToken() {
	ctx := context.Background()

	token, err := suite.service.GenerateToken(ctx, "admin-1", "admin")
	require.NoError(suite.T(), err)
	require.NotEmpty(suite.T(), token)

	claims, err := suite.service.ValidateToken(ctx, token)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "admin-1", claims.AdminID)
	assert.Equal(suite.T(), "admin", claims.Username)
	assert.Equal(suite.T(), "test-issuer", claims.Issuer)
	assert.True(suite.T(), claims.ExpiresAt.After(time.Now()))
}

func (suite *JWTTestSuite) TestValidateToken_Empty() {
	_, err := suite.service.ValidateToken(context.Background(), "")
	assert.ErrorIs(suite.T(), err, security.ErrTokenInvalid)
}

func (suite *JWTTestSuite) TestValidateToken_Malformed() {
	_, err := suite.service.ValidateToken(context.Background(), "not-a-jwt")
	assert.ErrorIs(suite.T(), err, security.ErrTokenInvalid)
}

func (suite *JWTTestSuite) TestValidateToken_Expired() {
	cfg := &config.Config{
		JWTSecretKey:   suite.config.JWTSecretKey,
		JWTIssuer:      suite.config.JWTIssuer,
		AccessTokenTTL: 1 * time.Nanosecond,
	}
	service, err := security.NewJWTokenService(cfg)
	require.NoError(suite.T(), err)

	token, err := service.GenerateToken(context.Background(), "admin-1", "admin")
	require.NoError(suite.T(), err)

	time.Sleep(5 * time.Millisecond)

	_, err = service.ValidateToken(context.Background(), token)
	assert.ErrorIs(suite.T(), err, security.ErrTokenExpired)
}

func (suite *JWTTestSuite) TestValidateToken_WrongSecret() {
	otherCfg := &config.Config{
		JWTSecretKey:   "another-secret-key-32-characters-long!",
		JWTIssuer:      suite.config.JWTIssuer,
		AccessTokenTTL: suite.config.AccessTokenTTL,
	}
	other, err := security.NewJWTokenService(otherCfg)
	require.NoError(suite.T(), err)

	token, err := other.GenerateToken(context.Background(), "admin-1", "admin")
	require.NoError(suite.T(), err)

	_, err = suite.service.ValidateToken(context.Background(), token)
	assert.ErrorIs(suite.T(), err, security.ErrTokenSignatureInvalid)
}

func TestJWTTestSuite(t *testing.T) {
	suite.Run(t, new(JWTTestSuite))
}
