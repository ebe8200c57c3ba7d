package journal

import (
	"fmt"
	"io"
	"strings"
)

// FormatTradeText renders one history row followed by its lesson line.
func FormatTradeText(t TradeRecord) string {
	return fmt.Sprintf("%s | %s | %s | %s | RR %s\n  Lesson: %s",
		t.Date, t.Pair, t.Session.Label(), t.Result, t.RiskReward, t.Lesson)
}

// WriteHistory writes the journal history, oldest trade first.
func WriteHistory(w io.Writer, trades []TradeRecord) error {
	if len(trades) == 0 {
		_, err := io.WriteString(w, "No trades recorded.\n")
		return err
	}
	var b strings.Builder
	for _, t := range trades {
		b.WriteString(FormatTradeText(t))
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
