package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// ErrNotFound — типизированное "не найдено". Сервисы отличают его от прочих
// ошибок БД и отдают наружу отдельное сообщение вместо разбора текста ошибки.
var ErrNotFound = errors.New("запись не найдена")

func wrapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
