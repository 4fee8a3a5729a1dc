package dto

type RefreshInput struct {
	RefreshToken string `json:"refresh_token"`
}

type SignoutInput struct {
	RefreshToken string `json:"refresh_token,omitempty"`
	AccessToken  string `json:"access_token,omitempty"`
}
