package model

import "errors"

// Классы ошибок сервисного слоя. Хендлеры мапят их на статус коды через resp.WriteError
var (
	// ErrValidation - некорректные данные запроса (400)
	ErrValidation = errors.New("validation failed")
	// ErrUnauthenticated - сессия отсутствует, неизвестна или истекла (401)
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrNotFound - ресурс не найден или принадлежит другому пользователю (404)
	ErrNotFound = errors.New("not found")
)
