package model

import "github.com/golang-jwt/jwt/v5"

// AdminClaims are the JWT claims for the catalog admin.
type AdminClaims struct {
	AdminID string `json:"adminId"`
	jwt.RegisteredClaims
}

// LoginRequest is the admin login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token.
type LoginResponse struct {
	Token   string `json:"token"`
	AdminID string `json:"adminId"`
}
