package content

import (
	"regexp"
	"strings"
)

// Обложка хранится прямо в тексте статьи первой строкой в виде
// markdown-картинки с data-URI: ![title](data:image/png;base64,...).
// Распознаём маркер ТОЛЬКО в начале контента — картинка дальше по тексту
// остаётся обычным содержимым.
var coverRe = regexp.MustCompile(`^!\[.*?\]\((data:image/[^)]+)\)\n?\n?`)

// EmbedCover приклеивает обложку к началу текста.
func EmbedCover(title, dataURI, body string) string {
	return "![" + title + "](" + dataURI + ")\n\n" + body
}

// ExtractCover возвращает data-URI обложки и текст без строки-маркера.
// Если обложки в начале нет — пустая строка и контент как есть.
func ExtractCover(c string) (dataURI, rest string) {
	m := coverRe.FindStringSubmatch(c)
	if m == nil {
		return "", c
	}
	return m[1], strings.TrimSpace(strings.TrimPrefix(c, m[0]))
}

// StripCoverLines выбрасывает все строки, начинающиеся с маркера картинки.
// Используется перед заменой обложки и при её удалении без замены, чтобы
// старые маркеры не накапливались в тексте.
func StripCoverLines(c string) string {
	lines := strings.Split(c, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "![") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
