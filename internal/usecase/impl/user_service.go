// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"lifeline/config"
	deliverycontext "lifeline/internal/delivery/context"
	"lifeline/internal/domain/constants"
	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/domain/service"
	"lifeline/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo          repository.UserRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	passwordStrength  *config.PasswordStrengthConfig
	maxActiveSessions int
	logger            *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(
	userRepo repository.UserRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.UserUsecase {
	maxActiveSessions := 0
	var passwordStrength *config.PasswordStrengthConfig
	if cfg != nil {
		passwordStrength = cfg.PasswordStrength
		if cfg.Auth != nil {
			maxActiveSessions = cfg.Auth.MaxActiveSessions
		}
	}

	return &userService{
		userRepo:          userRepo,
		refreshTokenRepo:  refreshTokenRepo,
		hasher:            hasher,
		tokenService:      tokenService,
		passwordStrength:  passwordStrength,
		maxActiveSessions: maxActiveSessions,
		logger:            logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account with a hashed password.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if err := srv.validatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}

	user := &entity.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: hashed,
		Phone:        strings.TrimSpace(input.Phone),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.NewEmailAlreadyExistsError()
		}

		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	srv.log(ctx).Info("user registered",
		slog.String("user_id", user.ID),
	)

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies credentials and issues a token pair.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NewInvalidCredentialsError()
		}

		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	if err := srv.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		return nil, domainerrors.NewInvalidCredentialsError()
	}

	pair, err := srv.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("user logged in",
		slog.String("user_id", user.ID),
	)

	return &usecase.AuthOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}, nil
}

// Refresh exchanges a valid refresh token for a new pair, rotating the
// stored token.
func (srv *userService) Refresh(ctx context.Context, input usecase.RefreshInput) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.VerifyRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, domainerrors.NewInvalidTokenError()
	}

	stored, err := srv.refreshTokenRepo.FindByTokenHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.NewInvalidTokenError()
		}

		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	if !stored.IsActive(time.Now()) {
		return nil, domainerrors.NewInvalidTokenError()
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.NewInvalidTokenError()
		}

		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	// Rotate: revoke the used token before issuing a fresh pair.
	if err := srv.refreshTokenRepo.Revoke(ctx, stored.ID); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	pair, err := srv.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &usecase.AuthOutput{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}, nil
}

// Logout revokes the presented refresh token.
func (srv *userService) Logout(ctx context.Context, input usecase.LogoutInput) error {
	stored, err := srv.refreshTokenRepo.FindByTokenHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			// Logging out an unknown token is not an error.
			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err.Error())
	}

	if err := srv.refreshTokenRepo.Revoke(ctx, stored.ID); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil
		}

		return domainerrors.NewDatabaseExecuteError(err.Error())
	}

	return nil
}

func (srv *userService) issueTokens(ctx context.Context, user *entity.User) (*entity.TokenPair, error) {
	pair, err := srv.tokenService.IssuePair(user)
	if err != nil {
		return nil, errors.Wrap(err, "issue token pair")
	}

	record := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(pair.RefreshToken),
		ExpiresAt: time.Now().Add(constants.RefreshTokenTTL),
	}
	if err := srv.refreshTokenRepo.Create(ctx, record); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err.Error())
	}

	// Keep at most maxActiveSessions concurrent sessions per user.
	if srv.maxActiveSessions > 0 {
		if err := srv.refreshTokenRepo.RevokeOldestForUser(ctx, user.ID, srv.maxActiveSessions); err != nil {
			srv.log(ctx).Warn("failed to trim active sessions",
				slog.String("user_id", user.ID),
				slog.String("error", err.Error()),
			)
		}
	}

	return pair, nil
}

func (srv *userService) validatePasswordStrength(password string) error {
	cfg := srv.passwordStrength
	if cfg == nil {
		return nil
	}

	var problems []string
	if cfg.MinLength > 0 && len(password) < cfg.MinLength {
		problems = append(problems, "too short")
	}
	if cfg.MaxLength > 0 && len(password) > cfg.MaxLength {
		problems = append(problems, "too long")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasNumber = true
		default:
			hasSpecial = true
		}
	}

	if cfg.RequireUppercase && !hasUpper {
		problems = append(problems, "missing uppercase letter")
	}
	if cfg.RequireLowercase && !hasLower {
		problems = append(problems, "missing lowercase letter")
	}
	if cfg.RequireNumbers && !hasNumber {
		problems = append(problems, "missing number")
	}
	if cfg.RequireSpecial && !hasSpecial {
		problems = append(problems, "missing special character")
	}

	if len(problems) > 0 {
		return domainerrors.NewWeakPasswordError(problems)
	}

	return nil
}
