package dto

type SignupRequest struct {
	Username              string `json:"username"`
	Password              string `json:"password"`
	Role                  string `json:"role"`
	LinkedElderlyUsername string `json:"linked_elderly_username,omitempty"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}
