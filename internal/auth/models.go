package auth

import "time"

// DevAuthRequest: запрос на dev-авторизацию; пустой userId означает dev-user
type DevAuthRequest struct {
	UserID string `json:"userId"`
}

// DevAuthResponse: ответ на dev-авторизацию
type DevAuthResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresIn   int64     `json:"expiresIn"`
	UserID      string    `json:"userId"`
	LoginAt     time.Time `json:"loginAt"`
}

// ErrorResponse: формат ошибки
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
