package journal

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{
	"id", "date", "pair", "session", "structure", "liquidity",
	"inducement", "rr", "result", "emotion", "lesson",
}

// WriteCSV exports the trades with a header row.
func WriteCSV(w io.Writer, trades []TradeRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range trades {
		if err := cw.Write(csvRow(t)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(t TradeRecord) []string {
	return []string{
		t.ID,
		t.Date,
		string(t.Pair),
		string(t.Session),
		t.Structure,
		t.Liquidity,
		strconv.FormatBool(t.Inducement),
		t.RiskReward,
		string(t.Result),
		string(t.Emotion),
		t.Lesson,
	}
}
