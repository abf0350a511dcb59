package domain

import (
	"fmt"
	"math"
	"time"
)

// MaxAmount is the largest grain count a record can hold.
const MaxAmount = math.MaxInt32

// Record is one calendar day of a season. The zero amount of an unmeasured
// record is a placeholder, not a reading.
type Record struct {
	date     time.Time
	amount   int
	measured bool
}

// NewRecord returns a measured day with the given grain count. Amounts outside
// [0, MaxAmount] fail with ErrMalformedRecord.
func NewRecord(date time.Time, amount int) (Record, error) {
	if amount < 0 || amount > MaxAmount {
		return Record{}, fmt.Errorf("%w: amount %d out of range [0, %d]", ErrMalformedRecord, amount, MaxAmount)
	}
	return Record{date: truncateDay(date), amount: amount, measured: true}, nil
}

// NewUnmeasured returns a day on which no measurement was taken.
func NewUnmeasured(date time.Time) Record {
	return Record{date: truncateDay(date)}
}

func (r Record) Date() time.Time { return r.date }
func (r Record) Amount() int     { return r.amount }
func (r Record) Measured() bool  { return r.measured }

// Level classifies the record's amount. Only meaningful for measured records.
func (r Record) Level() Level { return Classify(r.amount) }

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
