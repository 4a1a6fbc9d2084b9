package model

import "time"

type RegisterRequest struct {
	Name     string `json:"nombre" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

const TokenTypeBearer = "Bearer"

type AuthResponse struct {
	Token string `json:"token"`
	Type  string `json:"type"`
	ID    int64  `json:"id"`
	Name  string `json:"nombre"`
	Email string `json:"email"`
	Role  Role   `json:"rol"`
}

type RevokedToken struct {
	ID        int64     `db:"id"`
	JTI       string    `db:"jti"`
	ExpiresAt time.Time `db:"expires_at"`
	RevokedAt time.Time `db:"revoked_at"`
}

type Avatar struct {
	Data        []byte
	ContentType string
	FileName    string
}
