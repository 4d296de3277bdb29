package ai

import (
	"testing"
)

func TestStrip(t *testing.T) {
	clean := `{"destination": "Lisbon"}`

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already clean", clean, clean},
		{"json fence", "```json\n" + clean + "\n```", clean},
		{"bare fence", "```\n" + clean + "\n```", clean},
		{"surrounding whitespace", "  \n" + clean + "\n  ", clean},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Strip(tt.in); got != tt.want {
				t.Errorf("Strip(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripIdempotent(t *testing.T) {
	in := "```json\n[1, 2, 3]\n```"
	once := Strip(in)
	if twice := Strip(once); twice != once {
		t.Errorf("Strip(Strip(x)) = %q, want %q", twice, once)
	}
}

func TestDecodeObject(t *testing.T) {
	var dst map[string]any
	if !DecodeObject("```json\n{\"a\": 1}\n```", &dst) {
		t.Fatal("DecodeObject() = false for fenced JSON")
	}
	if dst["a"] != float64(1) {
		t.Errorf("dst = %v", dst)
	}

	if DecodeObject("not json", &dst) {
		t.Error("DecodeObject() = true for prose")
	}
}

func TestDecodeList(t *testing.T) {
	items, ok := DecodeList[int]("```\n[1, 2, 3]\n```")
	if !ok || len(items) != 3 {
		t.Fatalf("DecodeList() = %v, %v", items, ok)
	}

	if _, ok := DecodeList[int]("oops"); ok {
		t.Error("DecodeList() = true for prose")
	}
}
