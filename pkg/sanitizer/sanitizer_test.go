package sanitizer

import (
	"strings"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "trim spaces",
			input: "  Ulaanbaatar  ",
			want:  "Ulaanbaatar",
		},
		{
			name:  "multiple spaces between words",
			input: "Blue    Sky   Hotel",
			want:  "Blue Sky Hotel",
		},
		{
			name:  "tabs and newlines",
			input: "Khan\t\nPalace",
			want:  "Khan Palace",
		},
		{
			name:  "control characters dropped",
			input: "Terelj\x00 Resort\x07",
			want:  "Terelj Resort",
		},
		{
			name:  "cyrillic kept",
			input: " Улаанбаатар  зочид буудал ",
			want:  "Улаанбаатар зочид буудал",
		},
		{
			name:  "only whitespace",
			input: "   \t\n  ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTrimAndNormalize_LongInput(t *testing.T) {
	in := strings.Repeat("a  ", 10000)
	out := TrimAndNormalize(in)
	if strings.Contains(out, "  ") {
		t.Errorf("double spaces survived normalization")
	}
	if len(out) != 10000*2-1 {
		t.Errorf("unexpected length %d", len(out))
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Guest@Example.COM "); got != "guest@example.com" {
		t.Errorf("NormalizeEmail = %q", got)
	}
}

func TestNormalizeStringSlice(t *testing.T) {
	got := NormalizeStringSlice([]string{" 12", "12", "", "  ", "7 "}, TrimAndNormalize)
	want := []string{"12", "7"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	if out := NormalizeStringSlice(nil, TrimAndNormalize); out == nil || len(out) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", out)
	}
}
