package models

import "time"

// LoginRequest запрос демо-входа в админку
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse выданный токен админки
type LoginResponse struct {
	Token        string    `json:"token"`
	TokenType    string    `json:"tokenType"`
	BusinessType string    `json:"businessType"`
	ExpiresAt    time.Time `json:"expiresAt"`
}
