package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	goJWT "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"okshouse/config"
	"okshouse/infras/jwt"
	jwtMocks "okshouse/infras/jwt/mocks"
	"okshouse/infras/otel/mocks"
	adminModel "okshouse/internal/domains/admin/model"
	adminMocks "okshouse/internal/domains/admin/service/mocks"
	sessionMocks "okshouse/internal/domains/auth/mocks"
	"okshouse/internal/domains/auth/model/dto"
	"okshouse/internal/domains/auth/service"
	"okshouse/shared/constant"
	"okshouse/shared/failure"
	"okshouse/shared/password"
	"okshouse/shared/timezone"
)

type authFixture struct {
	admins   *adminMocks.MockAdmin
	sessions *sessionMocks.MockStore
	jwt      *jwtMocks.MockJWT
	cfg      *config.Config
	svc      service.Auth
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.JWT.AccessExpireMin = 5
	cfg.JWT.RefreshExpireMin = 525600
	cfg.JWT.RenewThresholdHours = 24
	cfg.Crypto.Scheme = password.SchemeBcrypt

	codec, err := password.New(cfg)
	require.NoError(t, err)

	f := &authFixture{
		admins:   adminMocks.NewMockAdmin(ctrl),
		sessions: sessionMocks.NewMockStore(ctrl),
		jwt:      jwtMocks.NewMockJWT(ctrl),
		cfg:      cfg,
	}

	f.svc = service.New(f.admins, f.sessions, f.jwt, codec, cfg, mocks.NewOtel())

	return f
}

func refreshClaims(adminID string, remaining time.Duration) *jwt.Claims {
	return &jwt.Claims{
		AdminID:   adminID,
		AdminName: "Ana",
		TokenID:   "token-1",
		Type:      jwt.RefreshToken,
		RegisteredClaims: goJWT.RegisteredClaims{
			ExpiresAt: goJWT.NewNumericDate(timezone.Now().Add(remaining)),
		},
	}
}

func TestAuthService_VerifyPhone(t *testing.T) {
	admin := adminModel.Admin{
		AdminID: "admin-1",
		Name:    "Ana",
		Phone:   sql.NullString{String: "08123456789", Valid: true},
	}

	t.Run("registered phone gets a token pair and session", func(t *testing.T) {
		f := newAuthFixture(t)

		f.admins.EXPECT().GetByPhone(gomock.Any(), "08123456789").Return(admin, nil)
		f.jwt.EXPECT().GenerateTokenPair("admin-1", "Ana").Return(&jwt.TokenPair{
			AccessToken:  "access-token",
			RefreshToken: "refresh-token",
			TokenType:    "Bearer",
			ExpiresIn:    300,
		}, nil)
		f.sessions.EXPECT().Activate(gomock.Any(), "admin-1", f.cfg.JWT.RefreshExpireMin*60).Return(nil)

		res, err := f.svc.VerifyPhone(context.Background(), dto.VerifyPhoneRequest{Phone: "08123456789"})

		assert.NoError(t, err)
		assert.Equal(t, "access-token", res.AccessToken)
		assert.Equal(t, "refresh-token", res.RefreshToken)
		assert.Equal(t, "admin-1", res.Admin.AdminID)
	})

	t.Run("unknown phone is rejected", func(t *testing.T) {
		f := newAuthFixture(t)

		f.admins.EXPECT().GetByPhone(gomock.Any(), "0000").Return(adminModel.Admin{}, nil)

		_, err := f.svc.VerifyPhone(context.Background(), dto.VerifyPhoneRequest{Phone: "0000"})

		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_Refresh(t *testing.T) {
	admin := adminModel.Admin{AdminID: "admin-1", Name: "Ana"}

	t.Run("invalid refresh token", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().ValidateToken("bad", jwt.RefreshToken).Return(nil, jwt.ErrInvalidToken)

		_, err := f.svc.Refresh(context.Background(), "bad")

		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("revoked session", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().ValidateToken("refresh-token", jwt.RefreshToken).Return(refreshClaims("admin-1", 48*time.Hour), nil)
		f.sessions.EXPECT().IsActive(gomock.Any(), "admin-1").Return(false, nil)

		_, err := f.svc.Refresh(context.Background(), "refresh-token")

		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("deleted admin", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().ValidateToken("refresh-token", jwt.RefreshToken).Return(refreshClaims("admin-1", 48*time.Hour), nil)
		f.sessions.EXPECT().IsActive(gomock.Any(), "admin-1").Return(true, nil)
		f.admins.EXPECT().GetByID(gomock.Any(), "admin-1").Return(adminModel.Admin{}, nil)

		_, err := f.svc.Refresh(context.Background(), "refresh-token")

		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("plenty of lifetime left keeps the refresh token", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().ValidateToken("refresh-token", jwt.RefreshToken).Return(refreshClaims("admin-1", 48*time.Hour), nil)
		f.sessions.EXPECT().IsActive(gomock.Any(), "admin-1").Return(true, nil)
		f.admins.EXPECT().GetByID(gomock.Any(), "admin-1").Return(admin, nil)
		f.jwt.EXPECT().GenerateToken("admin-1", "Ana", jwt.AccessToken).Return("new-access", nil)

		res, err := f.svc.Refresh(context.Background(), "refresh-token")

		assert.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
		assert.False(t, res.RefreshRenewed)
		assert.Empty(t, res.RefreshToken)
		assert.InDelta(t, (48 * time.Hour).Seconds(), float64(res.RefreshExpiresIn), 5)
	})

	t.Run("nearly expired refresh token is renewed", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().ValidateToken("refresh-token", jwt.RefreshToken).Return(refreshClaims("admin-1", time.Hour), nil)
		f.sessions.EXPECT().IsActive(gomock.Any(), "admin-1").Return(true, nil)
		f.admins.EXPECT().GetByID(gomock.Any(), "admin-1").Return(admin, nil)
		f.jwt.EXPECT().GenerateToken("admin-1", "Ana", jwt.AccessToken).Return("new-access", nil)
		f.jwt.EXPECT().GenerateToken("admin-1", "Ana", jwt.RefreshToken).Return("new-refresh", nil)
		f.sessions.EXPECT().Activate(gomock.Any(), "admin-1", f.cfg.JWT.RefreshExpireMin*60).Return(nil)

		res, err := f.svc.Refresh(context.Background(), "refresh-token")

		assert.NoError(t, err)
		assert.True(t, res.RefreshRenewed)
		assert.Equal(t, "new-refresh", res.RefreshToken)
		assert.Equal(t, int64(f.cfg.JWT.RefreshExpireMin)*60, res.RefreshExpiresIn)
	})
}

func TestAuthService_ValidateAccess(t *testing.T) {
	claims := &jwt.Claims{AdminID: "admin-1", AdminName: "Ana", Type: jwt.AccessToken}

	t.Run("valid token with active session", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().ValidateToken("access-token", jwt.AccessToken).Return(claims, nil)
		f.sessions.EXPECT().IsActive(gomock.Any(), "admin-1").Return(true, nil)

		got, err := f.svc.ValidateAccess(context.Background(), "access-token")

		assert.NoError(t, err)
		assert.Equal(t, "admin-1", got.AdminID)
	})

	t.Run("valid token with revoked session is rejected", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().ValidateToken("access-token", jwt.AccessToken).Return(claims, nil)
		f.sessions.EXPECT().IsActive(gomock.Any(), "admin-1").Return(false, nil)

		_, err := f.svc.ValidateAccess(context.Background(), "access-token")

		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("broken token", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().ValidateToken("garbage", jwt.AccessToken).Return(nil, jwt.ErrInvalidToken)

		_, err := f.svc.ValidateAccess(context.Background(), "garbage")

		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_CurrentAdmin(t *testing.T) {
	t.Run("resolves the admin from context", func(t *testing.T) {
		f := newAuthFixture(t)

		f.admins.EXPECT().
			GetByID(gomock.Any(), "admin-1").
			Return(adminModel.Admin{AdminID: "admin-1", Name: "Ana"}, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyAdminID, "admin-1")

		res, err := f.svc.CurrentAdmin(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "Ana", res.Admin.Name)
	})

	t.Run("missing context value", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.svc.CurrentAdmin(context.Background())

		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("drops the session", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().
			ValidateToken("access-token", jwt.AccessToken).
			Return(&jwt.Claims{AdminID: "admin-1", Type: jwt.AccessToken}, nil)
		f.sessions.EXPECT().Deactivate(gomock.Any(), "admin-1").Return(nil)

		assert.NoError(t, f.svc.Logout(context.Background(), "access-token"))
	})

	t.Run("unusable token still succeeds", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().ValidateToken("garbage", jwt.AccessToken).Return(nil, jwt.ErrInvalidToken)

		assert.NoError(t, f.svc.Logout(context.Background(), "garbage"))
	})

	t.Run("session store failure is swallowed", func(t *testing.T) {
		f := newAuthFixture(t)

		f.jwt.EXPECT().
			ValidateToken("access-token", jwt.AccessToken).
			Return(&jwt.Claims{AdminID: "admin-1", Type: jwt.AccessToken}, nil)
		f.sessions.EXPECT().Deactivate(gomock.Any(), "admin-1").Return(errors.New("redis down"))

		assert.NoError(t, f.svc.Logout(context.Background(), "access-token"))
	})
}

func TestAuthService_LoginWithKey(t *testing.T) {
	t.Run("key on the allowlist is authorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		cfg := &config.Config{}
		cfg.Crypto.AESKey = "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY="
		cfg.Crypto.AESIV = "MDEyMzQ1Njc4OWFiY2RlZg=="

		codec, err := password.New(cfg)
		require.NoError(t, err)

		stored, err := codec.Encrypt("house-key")
		require.NoError(t, err)

		cfg.App.LoginKeys = []string{stored}

		svc := service.New(
			adminMocks.NewMockAdmin(ctrl),
			sessionMocks.NewMockStore(ctrl),
			jwtMocks.NewMockJWT(ctrl),
			codec,
			cfg,
			mocks.NewOtel(),
		)

		res, err := svc.LoginWithKey(context.Background(), dto.LoginKeyRequest{Password: "house-key"})

		assert.NoError(t, err)
		assert.True(t, res.Authorized)
	})

	t.Run("bcrypt keys cannot be matched by re-encryption", func(t *testing.T) {
		// The allowlist check re-encrypts the candidate and compares
		// ciphertexts, which only works with the deterministic AES
		// scheme. Under bcrypt every transform yields a fresh hash, so
		// even the right password is rejected.
		f := newAuthFixture(t)
		f.cfg.App.LoginKeys = []string{"$2a$10$abcdefghijklmnopqrstuv"}

		_, err := f.svc.LoginWithKey(context.Background(), dto.LoginKeyRequest{Password: "house-key"})

		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("empty allowlist rejects everything", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.svc.LoginWithKey(context.Background(), dto.LoginKeyRequest{Password: "anything"})

		assert.Equal(t, 401, failure.GetCode(err))
	})
}
