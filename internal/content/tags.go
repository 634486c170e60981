package content

import "strings"

// NormalizeTags чистит список тегов: пробелы обрезаются, пустые выбрасываются,
// дубликаты удаляются без учёта регистра. Порядок сохраняется, остаётся
// написание первого вхождения ("Go" выигрывает у "go ").
func NormalizeTags(in []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(in))
	for _, t := range in {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}
