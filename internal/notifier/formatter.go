package notifier

import (
	"fmt"
	"strconv"
	"strings"

	"staybook/pkg/dateutil"
)

const notSpecified = "Not specified"

// FormatBookingMessage renders the Telegram text for a confirmed
// booking. Markdown markup, one field per line.
func FormatBookingMessage(event *BookingConfirmedEvent) string {
	var b strings.Builder

	b.WriteString("*New booking*\n\n")
	fmt.Fprintf(&b, "*Property:* %s\n", orFallback(event.PropertyName))
	fmt.Fprintf(&b, "*Client:* %s\n", orFallback(event.Client.FullName))
	fmt.Fprintf(&b, "*Phone:* %s\n", orFallback(event.Client.Phone))
	if event.Client.Email != "" {
		fmt.Fprintf(&b, "*Email:* %s\n", event.Client.Email)
	}
	fmt.Fprintf(&b, "*Dates:* %s\n", formatDates(event.Dates))
	fmt.Fprintf(&b, "*Nights:* %d\n", len(event.Dates))
	fmt.Fprintf(&b, "*Total:* %s %s", formatAmount(float64(len(event.Dates))*event.NightlyPrice), event.Currency)
	if event.Client.Notes != "" {
		fmt.Fprintf(&b, "\n*Notes:* %s", event.Client.Notes)
	}

	return b.String()
}

func formatDates(dates []string) string {
	if len(dates) == 0 {
		return notSpecified
	}
	formatted := make([]string, len(dates))
	for i, d := range dates {
		formatted[i] = dateutil.HumanDay(d)
	}
	return strings.Join(formatted, ", ")
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func orFallback(s string) string {
	if s == "" {
		return notSpecified
	}
	return s
}
