package journal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTradeText(t *testing.T) {
	t.Parallel()

	got := FormatTradeText(TradeRecord{
		Date:       "2024-03-15",
		Pair:       PairGBPUSD,
		Session:    SessionNewYork,
		RiskReward: "2",
		Result:     ResultLoss,
		Lesson:     "no confirmation",
	})
	assert.Equal(t, "2024-03-15 | GBPUSD | New York | Loss | RR 2\n  Lesson: no confirmation", got)
}

func TestWriteHistory(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteHistory(&buf, nil))
	assert.Equal(t, "No trades recorded.\n", buf.String())

	buf.Reset()
	trades := []TradeRecord{
		{Date: "d1", Pair: PairEURUSD, Session: SessionLondon, Result: ResultWin, RiskReward: "2"},
		{Date: "d2", Pair: PairUSDJPY, Session: SessionLondon, Result: ResultBE},
	}
	require.NoError(t, WriteHistory(&buf, trades))
	assert.Equal(t,
		"d1 | EURUSD | London | Win | RR 2\n  Lesson: \n"+
			"d2 | USDJPY | London | BE | RR \n  Lesson: \n",
		buf.String())
}
