package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLevelStats(t *testing.T) {
	t.Run("sum share and mean", func(t *testing.T) {
		days := []Record{measured(t, date(1, 4, 2021), 2), measured(t, date(2, 4, 2021), 6)}
		ls := ComputeLevelStats(days, 16)

		assert.Equal(t, 2, ls.Days)
		assert.Equal(t, 8, ls.Sum)
		assert.InDelta(t, 0.5, ls.Share, 1e-9)
		assert.InDelta(t, 4.0, ls.Mean, 1e-9)
	})

	t.Run("empty level", func(t *testing.T) {
		assert.Equal(t, LevelStats{}, ComputeLevelStats(nil, 100))
	})

	t.Run("zero season total", func(t *testing.T) {
		ls := ComputeLevelStats([]Record{measured(t, date(1, 4, 2021), 0)}, 0)
		assert.Equal(t, 1, ls.Days)
		assert.Zero(t, ls.Share)
	})
}

func TestSummarize(t *testing.T) {
	fixed := time.Date(2021, 6, 1, 9, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixed))
	defer SetClock(nil)

	sum := Summarize("Moscow_birch_2021", mustParse(t, moscowSeason))

	assert.Equal(t, "Moscow_birch_2021", sum.Key)
	assert.Equal(t, "Moscow", sum.City)
	require.NotNil(t, sum.Year)
	assert.Equal(t, 2021, *sum.Year)
	assert.Equal(t, &Day{Date: "2021-04-01", Amount: 5, Measured: true}, sum.StartOfBlossom)
	assert.Equal(t, &Day{Date: "2021-04-03", Amount: 120, Measured: true}, sum.EndOfBlossom)
	assert.Equal(t, &Day{Date: "2021-04-03", Amount: 120, Measured: true}, sum.Peak)
	assert.Equal(t, 125, sum.TotalAmount)
	assert.Equal(t, 3, sum.BlossomDays)
	assert.Equal(t, 1, sum.DaysNotCounted)
	assert.Equal(t, []Day{{Date: "2021-04-02"}}, sum.DatesNotCounted)
	assert.Equal(t, 1, sum.NothingDays)
	assert.Equal(t, fixed, sum.GeneratedAt)

	require.Len(t, sum.Levels, 5)
	assert.Equal(t, Low, sum.Levels[0].Level)
	assert.Equal(t, 1, sum.Levels[0].Days)
	assert.Equal(t, High, sum.Levels[2].Level)
	assert.Equal(t, 120, sum.Levels[2].Sum)
	assert.InDelta(t, 0.96, sum.Levels[2].Share, 1e-9)
	assert.Empty(t, sum.Levels[4].Dates)
}

func TestSummarize_EmptySeriesEncodesNulls(t *testing.T) {
	SetClock(clockwork.NewFakeClockAt(time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)))
	defer SetClock(nil)

	sum := Summarize("empty", NewSeries("", nil))
	data, err := json.Marshal(sum)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded["year"])
	assert.Nil(t, decoded["peak"])
	assert.Nil(t, decoded["start_of_blossom"])
	assert.Nil(t, decoded["end_of_blossom"])
	assert.Equal(t, UnknownCity, decoded["city"])
	assert.InDelta(t, 0, decoded["total_amount"], 0)

	levels, ok := decoded["levels"].([]any)
	require.True(t, ok)
	first, ok := levels[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "LOW", first["level"])
	assert.Contains(t, first, "share")
}

func TestOption(t *testing.T) {
	some := Some(3)
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 3, some.OrElse(7))
	require.NotNil(t, some.Ptr())
	assert.Equal(t, 3, *some.Ptr())

	none := None[int]()
	assert.False(t, none.IsPresent())
	assert.Equal(t, 7, none.OrElse(7))
	assert.Nil(t, none.Ptr())
}
