package domain

import "time"

const dayLayout = "2006-01-02"

// Day is the serialized form of a Record.
type Day struct {
	Date     string `json:"date"`
	Amount   int    `json:"amount"`
	Measured bool   `json:"measured"`
}

// LevelSummary is one level's slice of the season.
type LevelSummary struct {
	Level Level `json:"level"`
	Lower int   `json:"lower"`
	Upper int   `json:"upper"`
	LevelStats
	Dates []Day `json:"dates"`
}

// Summary collects every season query into one serializable value.
// Absent values are nil so they encode as null rather than zero.
type Summary struct {
	Key             string         `json:"key"`
	City            string         `json:"city"`
	Year            *int           `json:"year"`
	StartOfBlossom  *Day           `json:"start_of_blossom"`
	EndOfBlossom    *Day           `json:"end_of_blossom"`
	Peak            *Day           `json:"peak"`
	TotalAmount     int            `json:"total_amount"`
	BlossomDays     int            `json:"blossom_days"`
	DaysNotCounted  int            `json:"days_not_counted"`
	DatesNotCounted []Day          `json:"dates_not_counted"`
	Levels          []LevelSummary `json:"levels"`
	NothingDays     int            `json:"nothing_days"` // measured zero days
	GeneratedAt     time.Time      `json:"generated_at"`
}

// Summarize evaluates all season queries for the dataset identified by key.
func Summarize(key string, s *Series) Summary {
	total := s.TotalAmount()
	byLevel := s.DaysByLevel()

	levels := make([]LevelSummary, 0, len(ReportLevels()))
	for _, lvl := range ReportLevels() {
		days := byLevel[lvl]
		levels = append(levels, LevelSummary{
			Level:      lvl,
			Lower:      lvl.Lower(),
			Upper:      lvl.Upper(),
			LevelStats: ComputeLevelStats(days, total),
			Dates:      toDays(days),
		})
	}

	return Summary{
		Key:             key,
		City:            s.City(),
		Year:            s.Year().Ptr(),
		StartOfBlossom:  dayPtr(s.StartOfBlossom()),
		EndOfBlossom:    dayPtr(s.EndOfBlossom()),
		Peak:            dayPtr(s.Peak()),
		TotalAmount:     total,
		BlossomDays:     s.BlossomDays(),
		DaysNotCounted:  s.DaysNotCounted(),
		DatesNotCounted: toDays(s.DatesNotCounted()),
		Levels:          levels,
		NothingDays:     len(byLevel[Nothing]),
		GeneratedAt:     clock.Now().UTC(),
	}
}

func toDay(r Record) Day {
	return Day{Date: r.date.Format(dayLayout), Amount: r.amount, Measured: r.measured}
}

func toDays(records []Record) []Day {
	days := make([]Day, len(records))
	for i, r := range records {
		days[i] = toDay(r)
	}
	return days
}

func dayPtr(o Option[Record]) *Day {
	r, ok := o.Get()
	if !ok {
		return nil
	}
	d := toDay(r)
	return &d
}
