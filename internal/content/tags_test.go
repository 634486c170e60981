package content

import (
	"reflect"
	"testing"
)

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{"Go", "go ", " GO", "Rust"})
	want := []string{"Go", "Rust"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeTags = %v, ожидалось %v", got, want)
	}
}

func TestNormalizeTagsDropsEmpty(t *testing.T) {
	got := NormalizeTags([]string{"", "  ", "X"})
	want := []string{"X"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeTags = %v, ожидалось %v", got, want)
	}
}

func TestNormalizeTagsKeepsOrder(t *testing.T) {
	got := NormalizeTags([]string{"b", "a", "B", "c", "A"})
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeTags = %v, ожидалось %v", got, want)
	}
}

func TestNormalizeTagsNil(t *testing.T) {
	if got := NormalizeTags(nil); len(got) != 0 {
		t.Errorf("NormalizeTags(nil) = %v, ожидался пустой список", got)
	}
}
