package content

import "testing"

const dataURI = "data:image/png;base64,iVBORw0KGgo="

func TestCoverRoundTrip(t *testing.T) {
	body := "Первый абзац.\n\nВторой абзац."
	c := EmbedCover("Заголовок", dataURI, body)

	uri, rest := ExtractCover(c)
	if uri != dataURI {
		t.Errorf("ExtractCover: uri = %q, ожидалось %q", uri, dataURI)
	}
	if rest != body {
		t.Errorf("ExtractCover: rest = %q, ожидалось %q", rest, body)
	}
}

func TestExtractCoverAbsent(t *testing.T) {
	body := "Просто текст без обложки."
	uri, rest := ExtractCover(body)
	if uri != "" || rest != body {
		t.Errorf("ExtractCover(%q) = (%q, %q)", body, uri, rest)
	}
}

// Маркер не в начале — обычный контент, обложкой не считается.
func TestExtractCoverAnchoredToStart(t *testing.T) {
	body := "Текст.\n\n![иллюстрация](" + dataURI + ")\n\nЕщё текст."
	uri, rest := ExtractCover(body)
	if uri != "" {
		t.Errorf("картинка в середине текста распознана как обложка: %q", uri)
	}
	if rest != body {
		t.Errorf("контент изменён: %q", rest)
	}
}

// Маркер с обычным URL (не data:image) обложкой не является.
func TestExtractCoverIgnoresHTTPImages(t *testing.T) {
	body := "![img](https://example.com/a.png)\n\nТекст."
	uri, rest := ExtractCover(body)
	if uri != "" || rest != body {
		t.Errorf("ExtractCover = (%q, %q)", uri, rest)
	}
}

func TestStripCoverLines(t *testing.T) {
	c := EmbedCover("t", dataURI, "Тело статьи.")
	if got := StripCoverLines(c); got != "Тело статьи." {
		t.Errorf("StripCoverLines = %q", got)
	}
}

// Замена обложки не должна плодить маркеры: сначала вычищаем старые строки,
// потом приклеиваем новую.
func TestReplaceCover(t *testing.T) {
	old := EmbedCover("t", dataURI, "Тело.")
	next := "data:image/jpeg;base64,AAAA"
	replaced := EmbedCover("t", next, StripCoverLines(old))

	uri, rest := ExtractCover(replaced)
	if uri != next {
		t.Errorf("после замены обложка = %q, ожидалось %q", uri, next)
	}
	if rest != "Тело." {
		t.Errorf("после замены тело = %q", rest)
	}
}
