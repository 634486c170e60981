// Package content — чистые функции над контентом статей: слаги, теги,
// обложка внутри markdown-текста. Ничего не знает про БД и HTTP.
package content

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxSlugLen = 100

// Slugify превращает заголовок в URL-безопасный идентификатор:
// нижний регистр, диакритика снимается (NFD + выброс combining marks),
// любые пробеги не-буквенно-цифровых символов схлопываются в один дефис,
// краевые дефисы обрезаются, длина ограничена 100 символами.
// Пустой вход даёт пустой выход. Коллизии слагов — забота вызывающего.
func Slugify(title string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	ascii, _, err := transform.String(t, title)
	if err != nil {
		ascii = title
	}

	var b strings.Builder
	b.Grow(len(ascii))
	prevHyphen := false
	for _, r := range strings.ToLower(ascii) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen && b.Len() > 0 {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}

	slug := strings.Trim(b.String(), "-")
	if len(slug) > maxSlugLen {
		slug = strings.Trim(slug[:maxSlugLen], "-")
	}
	return slug
}
