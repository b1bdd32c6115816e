package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var supportedRegions = []string{
	"RU",
	"US",
}

// NormalizePhone formats a phone number to E.164 when it parses for one
// of the supported regions. Input that does not parse is returned
// trimmed, unchanged: client phones are a snapshot of what the operator
// typed, and the validator applies its own looser rules.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return ""
	}

	for _, region := range supportedRegions {
		parsed, err := phonenumbers.Parse(phone, region)
		if err != nil {
			continue
		}
		if phonenumbers.IsValidNumber(parsed) {
			return phonenumbers.Format(parsed, phonenumbers.E164)
		}
	}
	return phone
}

// DigitCount counts the decimal digits after stripping formatting
// characters.
func DigitCount(phone string) int {
	count := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count
}
