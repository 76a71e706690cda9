package model

// AuthData Результат регистрации или входа
type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
