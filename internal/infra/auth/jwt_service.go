// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"staffhub/config"
	"staffhub/internal/domain/entity"
	domainerrors "staffhub/internal/domain/errors"
	"staffhub/internal/domain/service"
)

// jwtService implements service.TokenService with HS256-signed JWTs.
// The signing secret is read once at construction and never mutated.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    cfg.Auth.TokenTTL,
		now:    time.Now,
	}, nil
}

// Issue signs a token carrying the principal's identity claims.
func (s *jwtService) Issue(principal entity.Principal) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := jwt.MapClaims{
		"user_id":   principal.UserID,
		"user_name": principal.UserName,
		"role":      principal.Role.String(),
		"iat":       issuedAt.Unix(),
		"exp":       expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return token, expiresAt, nil
}

// Verify parses and checks the token. Malformed input, a bad signature and
// an elapsed expiry all collapse into ErrTokenInvalid; callers map them to
// one HTTP outcome and must not distinguish the cases.
func (s *jwtService) Verify(tokenString string) (*entity.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domainerrors.ErrTokenInvalid
	}

	// Numeric claims round-trip through JSON as float64.
	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, domainerrors.ErrTokenInvalid
	}
	userName, ok := claims["user_name"].(string)
	if !ok {
		return nil, domainerrors.ErrTokenInvalid
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return nil, domainerrors.ErrTokenInvalid
	}

	role := entity.Role(roleStr)
	if !role.IsValid() {
		return nil, domainerrors.ErrTokenInvalid
	}

	return &entity.Principal{
		UserID:   int64(userID),
		UserName: userName,
		Role:     role,
	}, nil
}
