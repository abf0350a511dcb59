package domain

import "github.com/montanaflynn/stats"

// LevelStats describes the measured days that fall into one level.
type LevelStats struct {
	Days  int     `json:"days"`
	Sum   int     `json:"sum"`
	Share float64 `json:"share"` // Sum divided by the season total; 0 when the total is 0
	Mean  float64 `json:"mean"`  // 0 when the level has no days
}

// ComputeLevelStats aggregates the amounts of days against the season total.
func ComputeLevelStats(days []Record, seasonTotal int) LevelStats {
	if len(days) == 0 {
		return LevelStats{}
	}

	amounts := make(stats.Float64Data, len(days))
	for i, d := range days {
		amounts[i] = float64(d.amount)
	}

	// Errors are only returned for empty input, ruled out above.
	sum, _ := stats.Sum(amounts)
	mean, _ := stats.Mean(amounts)

	ls := LevelStats{Days: len(days), Sum: int(sum), Mean: mean}
	if seasonTotal > 0 {
		ls.Share = sum / float64(seasonTotal)
	}
	return ls
}
