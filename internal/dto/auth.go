package dto

// CredentialsDTO is the body of both register and login.
type CredentialsDTO struct {
	Login    string `json:"login" example:"alice"`
	Password string `json:"password" example:"correct horse"`
}

// TokenResponseDTO carries the bearer token also set in the Authorization header.
type TokenResponseDTO struct {
	Message string `json:"message" example:"User successfully authenticated"`
	Token   string `json:"token"`
	Role    string `json:"role" example:"user"`
}
