package journal

import (
	"fmt"
	"strings"
)

// FormatTradeOrg renders a TradeRecord as an Org-mode block. The form choices go
// into the PROPERTIES drawer so they stay searchable; the free text notes get
// their own sections.
func FormatTradeOrg(t TradeRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** Trade: %s %s (%s)\n", orDash(string(t.Pair)), t.Session.Label(), shortID(t.ID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":ID: %s\n", t.ID)
	fmt.Fprintf(&b, ":DATE: %s\n", t.Date)
	fmt.Fprintf(&b, ":PAIR: %s\n", t.Pair)
	fmt.Fprintf(&b, ":SESSION: %s\n", t.Session)
	fmt.Fprintf(&b, ":RR: %s\n", t.RiskReward)
	fmt.Fprintf(&b, ":RESULT: %s\n", orDash(string(t.Result)))
	fmt.Fprintf(&b, ":EMOTION: %s\n", orDash(string(t.Emotion)))
	fmt.Fprintf(&b, ":INDUCEMENT: %t\n", t.Inducement)
	b.WriteString(":END:\n\n")

	orgSection(&b, "Structure", t.Structure)
	b.WriteString("\n")
	orgSection(&b, "Liquidity", t.Liquidity)
	b.WriteString("\n")
	orgSection(&b, "Lesson", t.Lesson)

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []TradeRecord) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

func orgSection(b *strings.Builder, title, body string) {
	fmt.Fprintf(b, "*** %s\n", title)
	body = strings.TrimSpace(body)
	if body == "" {
		b.WriteString("- \n")
		return
	}
	for _, line := range strings.Split(body, "\n") {
		fmt.Fprintf(b, "- %s\n", strings.TrimSpace(line))
	}
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
