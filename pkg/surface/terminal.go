package surface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/herpmatch/herpmatch/pkg/scoring"
)

// TerminalRenderer renders a Recommendation as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func scoreColor(score float64) string {
	if noColor() {
		return ""
	}
	switch {
	case score >= 80:
		return colorGreen
	case score >= 50:
		return colorYellow
	default:
		return colorRed
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, rec *scoring.Recommendation) error {
	// Header
	fmt.Fprintf(w, "%s\n", bold(fmt.Sprintf("HerpMatch: %d match(es)", len(rec.Results))))
	fmt.Fprintf(w, "%s\n\n", dim(fmt.Sprintf("dataset %s · policy %s · %s",
		rec.DatasetVersion, rec.ScoringPolicyVersion, rec.RequestID)))

	if len(rec.Results) == 0 {
		fmt.Fprintln(w, "No species matched your preferences.")
		return nil
	}

	for i, res := range rec.Results {
		score := fmt.Sprintf("%.1f", res.MatchScore)
		fmt.Fprintf(w, "%2d. %s  %s\n", i+1, bold(res.Name),
			colored(score, scoreColor(res.MatchScore)))
		fmt.Fprintf(w, "    %s · setup cost %d/5 · monthly cost %d/5\n",
			res.Category, res.InitialCostGrade, res.MonthlyCostGrade)

		if res.CareSummary != "" {
			for _, line := range wrapText(res.CareSummary, 70) {
				fmt.Fprintf(w, "    %s\n", dim(line))
			}
		}
		for _, reason := range res.MatchReasons {
			fmt.Fprintf(w, "    • %s\n", reason)
		}
		if len(res.TopContributions) > 0 {
			parts := make([]string, len(res.TopContributions))
			for j, c := range res.TopContributions {
				parts[j] = fmt.Sprintf("%s %.1f", c.Key, c.Amount)
			}
			fmt.Fprintf(w, "    %s\n", dim(strings.Join(parts, " · ")))
		}
		fmt.Fprintln(w)
	}

	return nil
}

// wrapText wraps a string at the given width, returning lines.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)
	return lines
}
