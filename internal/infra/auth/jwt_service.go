package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"lifeline/config"
	"lifeline/internal/domain/constants"
	"lifeline/internal/domain/entity"
	"lifeline/internal/domain/service"
	"lifeline/internal/errors"
)

type tokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	issuer        string
}

// NewJWTService creates a TokenService signing HS256 tokens with the
// configured secrets.
func NewJWTService(cfg *config.Config) service.TokenService {
	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		issuer:        cfg.Env.ServiceName,
	}
}

func (s *jwtService) IssuePair(user *entity.User) (*entity.TokenPair, error) {
	now := time.Now()
	accessExpiry := now.Add(constants.AccessTokenTTL)

	accessToken, err := s.sign(user, s.accessSecret, now, accessExpiry)
	if err != nil {
		return nil, errors.Wrap(err, "sign access token")
	}

	refreshToken, err := s.sign(user, s.refreshSecret, now, now.Add(constants.RefreshTokenTTL))
	if err != nil {
		return nil, errors.Wrap(err, "sign refresh token")
	}

	return &entity.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    accessExpiry,
	}, nil
}

func (s *jwtService) sign(user *entity.User, secret []byte, issuedAt, expiresAt time.Time) (string, error) {
	claims := tokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			ID:        uuid.NewString(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func (s *jwtService) VerifyAccessToken(token string) (*service.TokenClaims, error) {
	return s.verify(token, s.accessSecret)
}

func (s *jwtService) VerifyRefreshToken(token string) (*service.TokenClaims, error) {
	return s.verify(token, s.refreshSecret)
}

func (s *jwtService) verify(tokenString string, secret []byte) (*service.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "jwt.ParseWithClaims")
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}

	return &service.TokenClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
	}, nil
}

func (s *jwtService) HashToken(token string) string {
	digest := sha256.Sum256([]byte(token))

	return hex.EncodeToString(digest[:])
}
