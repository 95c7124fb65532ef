// Package services, business logic katmanını barındırır.
//
// Service ASLA http.Request/Response bilmez; sadece domain modelleri alır/verir.
// Service ASLA doğrudan SQL çalıştırmaz, Repository interface'i kullanır.
package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/akinalp/friendgraph/models"
	"github.com/akinalp/friendgraph/pkg"
)

// tokenIssuer, imzalanan token'ların "iss" claim'i.
const tokenIssuer = "friendgraph"

// AuthService, access token doğrulama / üretme.
//
// Login ve oturum yönetimi bu servisin dışındadır; buradaki tek iş
// imzalı token'dan çağıranın kullanıcı ID'sini güvenle çıkarmaktır.
type AuthService interface {
	ValidateAccessToken(tokenString string) (*models.TokenClaims, error)
	IssueAccessToken(userID int64) (string, error)
}

type authService struct {
	jwtSecret []byte
	accessExp time.Duration
}

// NewAuthService, constructor. accessExpMinutes token ömrüdür.
func NewAuthService(jwtSecret string, accessExpMinutes int) AuthService {
	return &authService{
		jwtSecret: []byte(jwtSecret),
		accessExp: time.Duration(accessExpMinutes) * time.Minute,
	}
}

func (s *authService) ValidateAccessToken(tokenString string) (*models.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.TokenClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithIssuer(tokenIssuer))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token", pkg.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*models.TokenClaims)
	if !ok || !token.Valid || claims.UserID <= 0 {
		return nil, fmt.Errorf("%w: invalid token claims", pkg.ErrUnauthorized)
	}

	return claims, nil
}

func (s *authService) IssueAccessToken(userID int64) (string, error) {
	now := time.Now()
	claims := &models.TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessExp)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}
