package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims, access token'ın payload'ı.
// Oturum yönetimi bu servisin dışında yapılır; burada sadece
// imzalı token'dan çağıranın kimliği okunur.
type TokenClaims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}
