// Package services: AuthService: access token doğrulama.
//
// Token üretimi (login/register/refresh) auth servisinin işidir.
// Bu servis sadece aynı HS256 secret ile imzalanmış token'ları doğrular
// ve içindeki kullanıcı kimliğini çıkarır.
package services

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/akinalp/mqvi-directory/models"
	"github.com/akinalp/mqvi-directory/pkg"
)

// AuthService, token doğrulama interface'i.
type AuthService interface {
	// ValidateAccessToken, JWT access token'ı doğrular ve claims'i döner.
	// Geçersiz veya süresi dolmuş token → pkg.ErrUnauthorized.
	ValidateAccessToken(tokenString string) (*models.TokenClaims, error)
}

type authService struct {
	jwtSecret []byte
}

// NewAuthService, constructor.
func NewAuthService(jwtSecret string) AuthService {
	return &authService{jwtSecret: []byte(jwtSecret)}
}

func (s *authService) ValidateAccessToken(tokenString string) (*models.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, func(token *jwt.Token) (any, error) {
		// "alg: none" veya RS256 ile gelen token'ı HMAC secret'la doğrulamaya çalışma
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("%w: invalid token", pkg.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, fmt.Errorf("%w: invalid token claims", pkg.ErrUnauthorized)
	}

	return claims, nil
}
