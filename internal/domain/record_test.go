package domain

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	d := time.Date(2021, time.April, 3, 15, 30, 0, 0, time.FixedZone("MSK", 3*3600))

	r, err := NewRecord(d, 120)
	require.NoError(t, err)
	assert.Equal(t, date(3, 4, 2021), r.Date())
	assert.Equal(t, 120, r.Amount())
	assert.True(t, r.Measured())
	assert.Equal(t, High, r.Level())
}

func TestNewRecord_AmountBounds(t *testing.T) {
	tests := []struct {
		name    string
		amount  int
		wantErr bool
	}{
		{"zero", 0, false},
		{"max", MaxAmount, false},
		{"negative", -5, true},
		{"past max", MaxAmount + 1, true},
		{"three billion", 3_000_000_000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRecord(date(1, 4, 2021), tt.amount)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedRecord)
				assert.Equal(t, Record{}, r)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.amount, r.Amount())
		})
	}
}

func TestNewRecord_MaxAmountRoundTrips(t *testing.T) {
	s := NewSeries("Moscow", []Record{measured(t, date(1, 4, 2021), MaxAmount)})

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, s, ""))

	parsed, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, s.Records(), parsed.Records())
}

func TestNewUnmeasured(t *testing.T) {
	r := NewUnmeasured(date(2, 4, 2021))
	assert.False(t, r.Measured())
	assert.Zero(t, r.Amount())
}
