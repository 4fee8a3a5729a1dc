package dto

import "github.com/hanifradityo/auth-service/internal/auth/domain"

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthOutput struct {
	User *domain.SanitizedUser `json:"user"`
	TokenPair
}
