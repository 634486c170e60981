package content

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World!", "hello-world"},
		{"Café Été", "cafe-ete"},
		{"  --déjà   vu--  ", "deja-vu"},
		{"Introduction à Next.js", "introduction-a-next-js"},
		{"", ""},
		{"!!!", ""},
		{"2025 — план", "2025"},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, ожидалось %q", c.in, got, c.want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	for _, s := range []string{"hello-world", "cafe-ete", "a1-b2-c3"} {
		if got := Slugify(s); got != s {
			t.Errorf("Slugify не идемпотентен: %q -> %q", s, got)
		}
	}
}

func TestSlugifyLength(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "abcdefghij "
	}
	got := Slugify(long)
	if len(got) > 100 {
		t.Errorf("слаг длиннее 100 символов: %d", len(got))
	}
	if got[len(got)-1] == '-' {
		t.Errorf("слаг заканчивается дефисом: %q", got)
	}
}
