package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/fdg312/thali/internal/config"
	"github.com/fdg312/thali/internal/session"
	"github.com/golang-jwt/jwt/v5"
)

const DevUserID = "dev-user"

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidUserID = errors.New("invalid user id")
)

var userIDPattern = regexp.MustCompile(`^[A-Za-z0-9_.@-]{1,64}$`)

// Service: сервис авторизации. Вход и выход открывают и закрывают сессию пользователя.
type Service struct {
	config   *config.Config
	sessions *session.Manager
	now      func() time.Time
}

func NewService(cfg *config.Config, sessions *session.Manager) *Service {
	return &Service{
		config:   cfg,
		sessions: sessions,
		now:      time.Now,
	}
}

// SignInDev: dev-авторизация: выдаёт JWT и сбрасывает loginAt
func (s *Service) SignInDev(ctx context.Context, userID string) (*DevAuthResponse, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		userID = DevUserID
	}
	if !userIDPattern.MatchString(userID) {
		return nil, ErrInvalidUserID
	}

	ttl := time.Duration(s.config.JWTTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}

	accessToken, err := s.generateJWTWithTTL(userID, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to generate dev JWT: %w", err)
	}

	sess, err := s.sessions.SignIn(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to open session: %w", err)
	}

	return &DevAuthResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ttl.Seconds()),
		UserID:      userID,
		LoginAt:     sess.LoginAt(),
	}, nil
}

// SignOut clears loginAt and tears the session down. Logged meals and the
// saved plan stay in storage.
func (s *Service) SignOut(ctx context.Context, userID string) error {
	return s.sessions.SignOut(ctx, userID)
}

func (s *Service) generateJWTWithTTL(userID string, ttl time.Duration) (string, error) {
	now := s.now()

	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    s.config.JWTIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// VerifyJWT: проверка JWT токена, возвращает user id
func (s *Service) VerifyJWT(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.JWTSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.config.JWTIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
