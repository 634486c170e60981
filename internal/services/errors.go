package services

import "errors"

// ErrValidation — базовая ошибка валидации формы: запрос до репозитория
// не доходит, наружу уходит 400 с текстом.
var ErrValidation = errors.New("ошибка валидации")

// ErrForbidden — нарушение правила авторизации: мутация не выполняется.
var ErrForbidden = errors.New("недостаточно прав для этого действия")
