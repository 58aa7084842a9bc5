package token

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateSessionToken - генерирует непрозрачный токен сессии.
// Токен хранится в БД как есть и попадает клиенту только через httpOnly cookie
func GenerateSessionToken() (string, error) {
	b := make([]byte, 32) // 256 бит
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
