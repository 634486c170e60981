package models

import "time"

// Image — файл в блоб-хранилище. Путь отдаётся клиенту, байты лежат в БД.
// Активный сценарий публикации обложек — inline base64 в тексте статьи,
// этот путь оставлен для внешних ссылок на загруженные файлы.
type Image struct {
	ID        int       `db:"id"         json:"id"`
	Path      string    `db:"path"       json:"path"`
	Mime      string    `db:"mime"       json:"mime"`
	Data      []byte    `db:"data"       json:"-"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
