package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationShowcase/internal/domain"
	"github.com/m04kA/SMC-ReservationShowcase/internal/service/auth/models"
)

const tokenType = "Bearer"

// Claims данные токена админки
type Claims struct {
	BusinessType string `json:"business_type"`
	jwt.RegisteredClaims
}

// Service выдает и проверяет токены демо-админки
// Логин и пароль фиксированы в конфигурации и общие для всех бизнесов
type Service struct {
	catalog      Catalog
	username     string
	password     string
	secret       []byte
	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(catalog Catalog, username, password, secret string, ttl time.Duration, logger Logger) *Service {
	return &Service{
		catalog:      catalog,
		username:     username,
		password:     password,
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Login проверяет демо-учетные данные и выдает HS256 токен для бизнеса
func (s *Service) Login(businessType string, req *models.LoginRequest) (*models.LoginResponse, error) {
	if _, err := s.catalog.Get(domain.BusinessType(businessType)); err != nil {
		s.logger.Warn("Login: business=%s not found", businessType)
		return nil, ErrBusinessNotFound
	}

	if !equal(req.Username, s.username) || !equal(req.Password, s.password) {
		s.logger.Warn("Login: invalid credentials for business=%s, username=%s", businessType, req.Username)
		return nil, ErrInvalidCredentials
	}

	now := s.timeProvider.Now()
	expiresAt := now.Add(s.ttl)
	claims := &Claims{
		BusinessType: businessType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   req.Username,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.logger.Error("Login: failed to sign token: %v", err)
		return nil, fmt.Errorf("%w: failed to sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: issued token for business=%s, expires=%s", businessType, expiresAt.Format(time.RFC3339))
	return &models.LoginResponse{
		Token:        token,
		TokenType:    tokenType,
		BusinessType: businessType,
		ExpiresAt:    expiresAt,
	}, nil
}

// ValidateToken проверяет подпись, срок действия и бизнес токена
func (s *Service) ValidateToken(tokenString, businessType string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.timeProvider.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: token expired", ErrInvalidToken)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.BusinessType != businessType {
		return nil, ErrForbidden
	}

	return claims, nil
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
