package domain

import (
	"slices"
)

// Series is one city's season of daily records. It is read-only after
// construction, so concurrent readers are safe.
type Series struct {
	city    string
	records []Record
}

// NewSeries builds a Series from records already in memory. The slice is copied.
// A blank city becomes UnknownCity.
func NewSeries(city string, records []Record) *Series {
	if city == "" {
		city = UnknownCity
	}
	return &Series{city: city, records: slices.Clone(records)}
}

// City returns the display name of the series' city.
func (s *Series) City() string { return s.city }

// Len returns the number of records.
func (s *Series) Len() int { return len(s.records) }

// Records returns a copy of the records in input order.
func (s *Series) Records() []Record { return slices.Clone(s.records) }

// Year returns the calendar year of the first record in input order.
func (s *Series) Year() Option[int] {
	if len(s.records) == 0 {
		return None[int]()
	}
	return Some(s.records[0].date.Year())
}

// TotalAmount sums every record's amount. Unmeasured days contribute zero.
func (s *Series) TotalAmount() int {
	total := 0
	for _, r := range s.records {
		total += r.amount
	}
	return total
}

// Peak returns the record with the highest amount. Ties go to the earliest record.
func (s *Series) Peak() Option[Record] {
	if len(s.records) == 0 {
		return None[Record]()
	}
	peak := s.records[0]
	for _, r := range s.records[1:] {
		if r.amount > peak.amount {
			peak = r
		}
	}
	return Some(peak)
}

// DaysByLevel groups measured records by level, preserving input order within
// each level. Levels without records are absent from the map; unmeasured
// records never appear.
func (s *Series) DaysByLevel() map[Level][]Record {
	byLevel := make(map[Level][]Record)
	for _, r := range s.records {
		if !r.measured {
			continue
		}
		lvl := Classify(r.amount)
		byLevel[lvl] = append(byLevel[lvl], r)
	}
	return byLevel
}

// StartOfBlossom returns the first record in input order with a nonzero amount.
func (s *Series) StartOfBlossom() Option[Record] {
	for _, r := range s.records {
		if r.amount != 0 {
			return Some(r)
		}
	}
	return None[Record]()
}

// EndOfBlossom returns the latest record by date that is not a measured zero.
// An unmeasured day counts as possibly blooming and can therefore be the end.
func (s *Series) EndOfBlossom() Option[Record] {
	byDateDesc := slices.Clone(s.records)
	slices.SortStableFunc(byDateDesc, func(a, b Record) int {
		return b.date.Compare(a.date)
	})
	for _, r := range byDateDesc {
		if r.amount == 0 && r.measured {
			continue
		}
		return Some(r)
	}
	return None[Record]()
}

// BlossomDays counts measured days with pollen plus every unmeasured day.
func (s *Series) BlossomDays() int {
	n := 0
	for _, r := range s.records {
		if r.measured && r.amount > 0 {
			n++
		}
	}
	return n + s.DaysNotCounted()
}

// DaysNotCounted returns the number of unmeasured days.
func (s *Series) DaysNotCounted() int {
	return len(s.DatesNotCounted())
}

// DatesNotCounted returns the unmeasured records in input order.
func (s *Series) DatesNotCounted() []Record {
	var out []Record
	for _, r := range s.records {
		if !r.measured {
			out = append(out, r)
		}
	}
	return out
}
