package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "national mongolian mobile",
			input: "99112233",
			want:  "+97699112233",
		},
		{
			name:  "national with spaces",
			input: " 9911 2233 ",
			want:  "+97699112233",
		},
		{
			name:  "already E.164",
			input: "+97688001122",
			want:  "+97688001122",
		},
		{
			name:  "foreign number with dashes",
			input: "+972-54-123-4567",
			want:  "+972541234567",
		},
		{
			name:  "foreign number with parentheses",
			input: "+1 (650) 253-0000",
			want:  "+16502530000",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   ",
			want:  "",
		},
		{
			name:  "letters only",
			input: "call me",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePhone(tt.input)
			if got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	for _, in := range []string{"99112233", "+972 54 123 4567"} {
		once := NormalizePhone(in)
		if twice := NormalizePhone(once); twice != once {
			t.Errorf("NormalizePhone not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}
