package models

type AccessTokenRequest struct {
	ApiLogin string `json:"apiLogin"`
}

type AccessTokenResponse struct {
	Token string `json:"token"`
}
