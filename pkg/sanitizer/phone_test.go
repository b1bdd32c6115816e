package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "russian e164 stays e164",
			input: "+79991234567",
			want:  "+79991234567",
		},
		{
			name:  "russian national with formatting",
			input: "8 (999) 123-45-67",
			want:  "+79991234567",
		},
		{
			name:  "trims whitespace",
			input: "  +79991234567  ",
			want:  "+79991234567",
		},
		{
			name:  "empty stays empty",
			input: "",
			want:  "",
		},
		{
			name:  "garbage returned trimmed",
			input: " not a phone ",
			want:  "not a phone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.input); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDigitCount(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"+7 (999) 123-45-67", 11},
		{"1234567890", 10},
		{"", 0},
		{"+-() ", 0},
	}

	for _, tt := range tests {
		if got := DigitCount(tt.input); got != tt.want {
			t.Errorf("DigitCount(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
