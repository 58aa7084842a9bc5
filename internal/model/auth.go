package model

// SignupData - данные для регистрации нового пользователя
type SignupData struct {
	Name       string
	Email      string
	Password   string
	DeviceName string
	UserAgent  string
	IP         string
}

// SigninData - данные для входа
type SigninData struct {
	Email      string
	Password   string
	DeviceName string
	UserAgent  string
	IP         string
}

// AuthData - результат регистрации или входа
type AuthData struct {
	User    *User
	Session *Session
}
