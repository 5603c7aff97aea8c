package detection

import (
	"fmt"
	"strings"
)

const (
	// NoArtifactsSummary is the fixed sentence for a clean result, regardless
	// of whatever reasoning the model supplied.
	NoArtifactsSummary = "No AI copy-paste artifacts detected."

	maxSummaryReasoning = 150
)

// FormatSummary renders a Result as a short human-readable paragraph for the
// extension's notification UI.
func FormatSummary(r *Result) string {
	if !r.AIFlag {
		return NoArtifactsSummary
	}

	var b strings.Builder
	fmt.Fprintf(&b, "AI copy-paste artifacts detected with %s confidence.", r.Confidence)

	if len(r.CategoriesFound) > 0 {
		fmt.Fprintf(&b, " Categories: %s.", strings.Join(r.CategoriesFound, ", "))
	}

	if n := len(r.Indicators); n == 1 {
		b.WriteString(" 1 indicator found.")
	} else if n > 1 {
		fmt.Fprintf(&b, " %d indicators found.", n)
	}

	if r.Reasoning != DefaultReasoning {
		reasoning := r.Reasoning
		if runes := []rune(reasoning); len(runes) > maxSummaryReasoning {
			reasoning = string(runes[:maxSummaryReasoning]) + "..."
		}
		b.WriteString(" ")
		b.WriteString(reasoning)
	}

	return b.String()
}
