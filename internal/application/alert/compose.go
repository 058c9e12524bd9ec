package alert

import (
	"strconv"
	"strings"

	"github.com/sheisstarwithoutmoon/SafeLink/internal/domain"
)

// ComposeMessage builds the final SMS body from a validated request.
// Pure and deterministic: the base message, then one line per optional
// field that was provided, in fixed order. The location line requires both
// coordinates; a provided zero intensity still composes; an empty timestamp
// does not.
func ComposeMessage(req domain.AlertRequest) string {
	var b strings.Builder
	b.WriteString(req.Message)

	if req.Location != nil && req.Location.Latitude != nil && req.Location.Longitude != nil {
		b.WriteString("\n\nLocation: https://maps.google.com/?q=")
		b.WriteString(formatCoord(*req.Location.Latitude))
		b.WriteString(",")
		b.WriteString(formatCoord(*req.Location.Longitude))
	}
	if req.Intensity != nil {
		b.WriteString("\nIntensity: ")
		b.WriteString(formatCoord(*req.Intensity))
	}
	if req.Timestamp != "" {
		b.WriteString("\nTime: ")
		b.WriteString(req.Timestamp)
	}

	return b.String()
}

// formatCoord renders a number without a trailing ".0" (1.0 -> "1").
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
