package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "basic trim",
			input: "  Иванов Иван  ",
			want:  "Иванов Иван",
		},
		{
			name:  "multiple spaces between words",
			input: "Иванов    Иван",
			want:  "Иванов Иван",
		},
		{
			name:  "tabs and newlines",
			input: "Иванов\t\nИван",
			want:  "Иванов Иван",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   \t\n  ",
			want:  "",
		},
		{
			name:  "preserve special characters",
			input: " Студия «Морская» №2 ",
			want:  "Студия «Морская» №2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Ivanov@Example.COM "); got != "ivanov@example.com" {
		t.Errorf("NormalizeEmail() = %q", got)
	}
}
