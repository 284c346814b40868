package dto

import "github.com/google/uuid"

type RegisterRequest struct {
	FirstName string `json:"first_name" form:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" form:"last_name" validate:"required,max=100"`
	Email     string `json:"email" form:"email" validate:"required,email,max=255"`
	Username  string `json:"username" form:"username" validate:"required,min=3,max=50,alphanum"`
	Password  string `json:"password" form:"password" validate:"required,min=8,max=72"`
}

// LoginRequest accepts a JSON body or an OAuth2 password-style form.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" form:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int64        `json:"expires_in"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
}

type MeResponse struct {
	User    UserResponse `json:"user"`
	Message string       `json:"message"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
	GameCount int    `json:"game_count"`
}
