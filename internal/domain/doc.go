// Package domain models a season of daily pollen-concentration measurements.
//
// # Data Source
//
// A season dataset is a plain-text file produced by an aerobiology station.
// The first line names the city; every following line carries one day:
//
//	Moscow
//	01/04/2021 5
//	02/04/2021 -
//	03/04/2021 120
//
// The date uses a configurable layout (dd/mm/yyyy by default). The amount is
// the daily grain count per cubic metre. The marker "-" means no measurement
// was taken that day, which is distinct from a measured zero.
//
// # Levels
//
// Measured days are classified into severity levels by grain count:
//
//	LOW 1-9 | MEDIUM 10-99 | HIGH 100-999 | VERY_HIGH 1000-9999 | SUPER_HIGH 10000-50000
//
// A measured zero is NOTHING. Classification only compares against the upper
// bounds of LOW through VERY_HIGH, so anything above 9999 is SUPER_HIGH even
// past its declared ceiling. See [Classify].
//
// # Blossom Window
//
// The season starts at the first day with a nonzero amount and ends at the
// last day, by date, that is not a measured zero. Unmeasured days are treated
// as possibly blooming: they extend the end of the window and count toward
// [Series.BlossomDays].
package domain
