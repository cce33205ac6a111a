package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeframe_Phrase(t *testing.T) {
	cases := map[Timeframe]string{
		Timeframe1D: "1 day",
		Timeframe7D: "7 days",
		Timeframe1M: "1 month",
		Timeframe1Y: "1 year",
	}

	for tf, phrase := range cases {
		assert.True(t, tf.IsValid())
		assert.Equal(t, phrase, tf.Phrase())
	}
}

func TestTimeframe_Invalid(t *testing.T) {
	tf := Timeframe("5Y")

	assert.False(t, tf.IsValid())
	assert.Empty(t, tf.Phrase())
}

func TestHistoricalPoint_Time(t *testing.T) {
	p := HistoricalPoint{Date: "2024-02-09", Rate: 1.1}

	parsed, err := p.Time()
	assert.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())

	_, err = HistoricalPoint{Date: "not a date"}.Time()
	assert.Error(t, err)
}
