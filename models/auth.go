package models

import "github.com/golang-jwt/jwt/v4"

// JwtClaims are the claims embedded in issued session tokens.
type JwtClaims struct {
	UserID   string `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}
