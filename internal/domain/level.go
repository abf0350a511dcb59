package domain

import "fmt"

// Level is a pollen severity class over daily grain counts.
type Level int

// Declaration order mirrors the reporting order, with Nothing last.
const (
	Low Level = iota
	Medium
	High
	VeryHigh
	SuperHigh
	Nothing
)

var levelBounds = [...]struct {
	name         string
	lower, upper int
}{
	Low:       {"LOW", 1, 9},
	Medium:    {"MEDIUM", 10, 99},
	High:      {"HIGH", 100, 999},
	VeryHigh:  {"VERY_HIGH", 1000, 9999},
	SuperHigh: {"SUPER_HIGH", 10000, 50000},
	Nothing:   {"NOTHING", 0, 0},
}

// ReportLevels lists the levels shown in a season report, in ascending order.
func ReportLevels() []Level {
	return []Level{Low, Medium, High, VeryHigh, SuperHigh}
}

func (l Level) valid() bool { return l >= Low && l <= Nothing }

// Lower returns the inclusive lower bound of the level, or 0 for an unknown level.
func (l Level) Lower() int {
	if !l.valid() {
		return 0
	}
	return levelBounds[l].lower
}

// Upper returns the declared inclusive upper bound of the level, or 0 for an
// unknown level. SuperHigh's upper bound is informational; Classify never
// enforces it.
func (l Level) Upper() int {
	if !l.valid() {
		return 0
	}
	return levelBounds[l].upper
}

func (l Level) String() string {
	if !l.valid() {
		return "UNKNOWN"
	}
	return levelBounds[l].name
}

// MarshalText encodes the level by name so it can key JSON objects.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText decodes a level name produced by MarshalText.
func (l *Level) UnmarshalText(text []byte) error {
	for lvl := Low; lvl <= Nothing; lvl++ {
		if string(text) == lvl.String() {
			*l = lvl
			return nil
		}
	}
	return fmt.Errorf("unknown pollen level %q", text)
}

// Classify maps a grain count to a level by cascading comparisons against the
// upper bounds of Low through VeryHigh. Any amount above VeryHigh is SuperHigh,
// including values past 50000. Zero is Nothing.
func Classify(amount int) Level {
	switch {
	case amount >= Low.Lower() && amount <= Low.Upper():
		return Low
	case amount > Low.Upper() && amount <= Medium.Upper():
		return Medium
	case amount > Medium.Upper() && amount <= High.Upper():
		return High
	case amount > High.Upper() && amount <= VeryHigh.Upper():
		return VeryHigh
	case amount > VeryHigh.Upper():
		return SuperHigh
	default:
		return Nothing
	}
}
