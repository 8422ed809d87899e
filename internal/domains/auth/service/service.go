package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"okshouse/config"
	"okshouse/infras/jwt"
	"okshouse/infras/otel"
	adminService "okshouse/internal/domains/admin/service"
	"okshouse/internal/domains/auth/model/dto"
	"okshouse/internal/domains/auth/session"
	"okshouse/shared/constant"
	"okshouse/shared/failure"
	"okshouse/shared/password"

	"github.com/rs/zerolog/log"
)

// unauthorizedMessage is the single externally visible message for
// every authentication failure. The distinct causes only show up in
// the logs.
const unauthorizedMessage = "invalid or expired credentials"

type Auth interface {
	VerifyPhone(ctx context.Context, req dto.VerifyPhoneRequest) (dto.VerifyPhoneResponse, error)
	Refresh(ctx context.Context, refreshToken string) (dto.RefreshResponse, error)
	ValidateAccess(ctx context.Context, accessToken string) (*jwt.Claims, error)
	CurrentAdmin(ctx context.Context) (dto.MeResponse, error)
	Logout(ctx context.Context, accessToken string) error
	LoginWithKey(ctx context.Context, req dto.LoginKeyRequest) (dto.LoginKeyResponse, error)
}

type serviceImpl struct {
	admins     adminService.Admin
	sessions   session.Store
	jwtService jwt.JWT
	codec      password.Codec
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	admins adminService.Admin,
	sessions session.Store,
	jwtService jwt.JWT,
	codec password.Codec,
	cfg *config.Config,
	otel otel.Otel,
) Auth {
	return &serviceImpl{
		admins:     admins,
		sessions:   sessions,
		jwtService: jwtService,
		codec:      codec,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) sessionTTLSeconds() int {
	return s.cfg.JWT.RefreshExpireMin * 60
}

func (s *serviceImpl) VerifyPhone(ctx context.Context, req dto.VerifyPhoneRequest) (res dto.VerifyPhoneResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyPhone")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, err := s.admins.GetByPhone(ctx, req.Phone)
	if err != nil {
		return res, err
	}

	if admin.AdminID == "" {
		log.Warn().Str("phone", req.Phone).Msg("phone verification attempt for unknown phone")

		return res, failure.Unauthorized(unauthorizedMessage) //nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(admin.AdminID, admin.Name)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	if err = s.sessions.Activate(ctx, admin.AdminID, s.sessionTTLSeconds()); err != nil {
		log.Error().Err(err).Msg("failed to activate session")

		return res, fmt.Errorf("failed to activate session: %w", err)
	}

	res.FromTokenPair(tokenPair)
	res.Admin.FromModel(admin)

	return res, nil
}

func (s *serviceImpl) Refresh(ctx context.Context, refreshToken string) (res dto.RefreshResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Refresh")
	defer scope.End()
	defer scope.TraceIfError(err)

	claims, err := s.jwtService.ValidateToken(refreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("refresh attempt with invalid token")

		return res, failure.Unauthorized(unauthorizedMessage) //nolint:wrapcheck
	}

	active, err := s.sessions.IsActive(ctx, claims.AdminID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check session")

		return res, fmt.Errorf("failed to check session: %w", err)
	}

	if !active {
		log.Warn().Str("adminID", claims.AdminID).Msg("refresh attempt for revoked session")

		return res, failure.Unauthorized(unauthorizedMessage) //nolint:wrapcheck
	}

	admin, err := s.admins.GetByID(ctx, claims.AdminID)
	if err != nil {
		return res, err
	}

	if admin.AdminID == "" {
		log.Warn().Str("adminID", claims.AdminID).Msg("refresh attempt for deleted admin")

		return res, failure.Unauthorized(unauthorizedMessage) //nolint:wrapcheck
	}

	accessToken, err := s.jwtService.GenerateToken(admin.AdminID, admin.Name, jwt.AccessToken)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate access token")

		return res, fmt.Errorf("failed to generate access token: %w", err)
	}

	res.AccessToken = accessToken
	res.TokenType = "Bearer"
	res.ExpiresIn = int64(s.cfg.JWT.AccessExpireMin * 60)

	remaining := claims.Remaining()
	renewThreshold := time.Duration(s.cfg.JWT.RenewThresholdHours) * time.Hour

	if remaining <= renewThreshold {
		// The refresh token is about to run out, issue a fresh one and
		// stretch the session to match.
		newRefresh, err := s.jwtService.GenerateToken(admin.AdminID, admin.Name, jwt.RefreshToken)
		if err != nil {
			log.Error().Err(err).Msg("failed to renew refresh token")

			return res, fmt.Errorf("failed to renew refresh token: %w", err)
		}

		if err = s.sessions.Activate(ctx, admin.AdminID, s.sessionTTLSeconds()); err != nil {
			log.Error().Err(err).Msg("failed to extend session")

			return res, fmt.Errorf("failed to extend session: %w", err)
		}

		res.RefreshToken = newRefresh
		res.RefreshRenewed = true
		res.RefreshExpiresIn = int64(s.cfg.JWT.RefreshExpireMin) * 60
	} else {
		res.RefreshRenewed = false
		res.RefreshExpiresIn = int64(remaining.Seconds())
	}

	return res, nil
}

// ValidateAccess checks the token signature, type, and that the admin
// still holds an active session. A cryptographically valid token for a
// revoked session is rejected the same way an expired one is.
func (s *serviceImpl) ValidateAccess(ctx context.Context, accessToken string) (claims *jwt.Claims, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ValidateAccess")
	defer scope.End()
	defer scope.TraceIfError(err)

	claims, err = s.jwtService.ValidateToken(accessToken, jwt.AccessToken)
	if err != nil {
		log.Warn().Err(err).Msg("access token validation failed")

		return nil, failure.Unauthorized(unauthorizedMessage) //nolint:wrapcheck
	}

	active, err := s.sessions.IsActive(ctx, claims.AdminID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check session")

		return nil, fmt.Errorf("failed to check session: %w", err)
	}

	if !active {
		log.Warn().Str("adminID", claims.AdminID).Msg("access attempt for revoked session")

		return nil, failure.Unauthorized(unauthorizedMessage) //nolint:wrapcheck
	}

	return claims, nil
}

func (s *serviceImpl) CurrentAdmin(ctx context.Context) (res dto.MeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CurrentAdmin")
	defer scope.End()
	defer scope.TraceIfError(err)

	adminID, ok := ctx.Value(constant.ContextKeyAdminID).(string)
	if !ok || adminID == "" {
		return res, failure.Unauthorized(unauthorizedMessage) //nolint:wrapcheck
	}

	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		return res, err
	}

	if admin.AdminID == "" {
		return res, failure.Unauthorized(unauthorizedMessage) //nolint:wrapcheck
	}

	res.Admin.FromModel(admin)

	return res, nil
}

// Logout always succeeds so a client can never get stuck holding a
// session it cannot drop. Internal failures are logged and swallowed.
func (s *serviceImpl) Logout(ctx context.Context, accessToken string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()

	claims, err := s.jwtService.ValidateToken(accessToken, jwt.AccessToken)
	if err != nil {
		log.Warn().Err(err).Msg("logout with unusable access token")

		return nil
	}

	if err := s.sessions.Deactivate(ctx, claims.AdminID); err != nil {
		log.Error().Err(err).Str("adminID", claims.AdminID).Msg("failed to deactivate session")
	}

	return nil
}

// LoginWithKey checks the given password against the configured
// allowlist of encrypted login keys. The check is not tied to any
// particular user.
func (s *serviceImpl) LoginWithKey(ctx context.Context, req dto.LoginKeyRequest) (res dto.LoginKeyResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LoginWithKey")
	defer scope.End()
	defer scope.TraceIfError(err)

	encrypted, err := s.codec.Encrypt(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to transform login key")

		return res, fmt.Errorf("failed to transform login key: %w", err)
	}

	for _, key := range s.cfg.App.LoginKeys {
		if subtle.ConstantTimeCompare([]byte(encrypted), []byte(key)) == 1 {
			return dto.LoginKeyResponse{Authorized: true}, nil
		}
	}

	log.Warn().Msg("login attempt with unknown key")

	return res, failure.Unauthorized(unauthorizedMessage) //nolint:wrapcheck
}
