package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"maharaja-dine-service/config"
	"maharaja-dine-service/models"
)

// SessionTokenService signs and verifies the persisted session record. A
// record that fails verification is treated as absent, so a tampered or
// truncated blob can never restore a session.
type SessionTokenService struct {
	secretKey string
	issuer    string
}

// SessionClaims is the signed content of a persisted session record. It
// deliberately carries no credential material.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// NewSessionTokenService creates a new session token service
func NewSessionTokenService(cfg *config.Config) *SessionTokenService {
	return &SessionTokenService{
		secretKey: cfg.SessionSecret,
		issuer:    "maharaja-dine-service",
	}
}

// Encode signs a session record for the given user. Sessions do not expire;
// they live until logout, matching the client's remember-me behavior.
func (s *SessionTokenService) Encode(user models.User) (string, error) {
	claims := &SessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			Issuer:   s.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// Decode verifies a persisted session record and returns the user it names.
func (s *SessionTokenService) Decode(tokenString string) (*models.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token")
	}

	return &models.User{
		ID:    claims.UserID,
		Email: claims.Email,
		Name:  claims.Name,
		Role:  claims.Role,
	}, nil
}
