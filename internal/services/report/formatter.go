// Package report renders the regime summary sent to operators.
package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"ChainPulse/internal/domain/models"
	"ChainPulse/internal/services/regime"
)

const billion = 1e9

// Format renders the report for obs. Output depends only on its inputs.
func Format(obs models.Observation, cls models.Classifications, alerts []models.AlertNotice, messages regime.Messages) string {
	var sb strings.Builder
	sb.WriteString("📅 Date: " + obs.Date + "\n\n")
	for _, m := range models.TrackedMetrics() {
		label := cls[m]
		fmt.Fprintf(&sb, "🔹 %s: %.2f (%s) - %s\n\n", m.DisplayName(), obs.Value(m), label, messages[m][label])
	}
	sb.WriteString("🔹 Realized Cap: $" + FormatBillions(obs.RealizedCap) + "B\n\n")

	if len(alerts) > 0 {
		lines := make([]string, 0, len(alerts))
		for _, a := range alerts {
			lines = append(lines, "⚠️ "+a.String())
		}
		sb.WriteString("ALERTS:\n" + strings.Join(lines, "\n"))
	}
	return sb.String()
}

// FormatBillions renders v divided by one billion with two decimals and
// thousands separators, e.g. 52_340_000_000 -> "52.34".
func FormatBillions(v float64) string {
	return message.NewPrinter(language.English).Sprintf("%.2f", v/billion)
}
