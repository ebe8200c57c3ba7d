package journal

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSVHeaderOnly(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{
		"id", "date", "pair", "session", "structure", "liquidity",
		"inducement", "rr", "result", "emotion", "lesson",
	}, rows[0])
}

func TestWriteCSVRows(t *testing.T) {
	t.Parallel()

	trades := []TradeRecord{
		{
			ID:         "T1",
			Date:       "2024-03-15",
			Pair:       PairEURUSD,
			Session:    SessionNewYork,
			Structure:  "BOS, then CHoCH",
			Liquidity:  "EQH",
			Inducement: true,
			RiskReward: "2",
			Result:     ResultWin,
			Emotion:    EmotionCalm,
			Lesson:     "line one\nline two",
		},
		{ID: "T2", Pair: PairUSDJPY, Session: SessionLondon},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, trades))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"T1", "2024-03-15", "EURUSD", "NewYork", "BOS, then CHoCH", "EQH",
		"true", "2", "Win", "Calm", "line one\nline two",
	}, rows[1])
	assert.Equal(t, []string{
		"T2", "", "USDJPY", "London", "", "", "false", "", "", "", "",
	}, rows[2])
}
