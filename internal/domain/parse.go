package domain

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultDateLayout is dd/mm/yyyy.
	DefaultDateLayout = "02/01/2006"

	// NotMeasuredMarker stands in for the amount on days without a measurement.
	NotMeasuredMarker = "-"

	// UnknownCity is used when the dataset's first line is missing or blank.
	UnknownCity = "unknown city"
)

type parseConfig struct {
	dateLayout string
}

// ParseOption customizes Parse.
type ParseOption func(*parseConfig)

// WithDateLayout sets the time layout used for the date column.
// An empty layout keeps DefaultDateLayout.
func WithDateLayout(layout string) ParseOption {
	return func(c *parseConfig) {
		if layout != "" {
			c.dateLayout = layout
		}
	}
}

// Parse reads a season dataset: a city line followed by "<date> <amount|->"
// lines. The city line is trimmed of surrounding whitespace, so CRLF files
// and padded names yield the bare name. Records keep input order. Any
// malformed line aborts the whole parse and no Series is returned.
func Parse(r io.Reader, opts ...ParseOption) (*Series, error) {
	cfg := parseConfig{dateLayout: DefaultDateLayout}
	for _, opt := range opts {
		opt(&cfg)
	}

	scanner := bufio.NewScanner(r)
	city := UnknownCity
	if scanner.Scan() {
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			city = name
		}
	}

	var records []Record
	lineNum := 1
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		rec, err := parseLine(line, cfg.dateLayout)
		if err != nil {
			return nil, &ParseError{Line: lineNum, Text: line, Err: err}
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	return &Series{city: city, records: records}, nil
}

// parseLine converts one data line into a Record. Tokens past the second are ignored.
func parseLine(line, layout string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Record{}, fmt.Errorf("%w: expected date and amount, got %d token(s)", ErrMalformedRecord, len(fields))
	}

	date, err := time.Parse(layout, fields[0])
	if err != nil {
		return Record{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	if fields[1] == NotMeasuredMarker {
		return NewUnmeasured(date), nil
	}
	amount, err := parseAmount(fields[1])
	if err != nil {
		return Record{}, err
	}
	return NewRecord(date, amount)
}

// parseAmount accepts unsigned decimal integers up to MaxAmount.
func parseAmount(token string) (int, error) {
	v, err := strconv.ParseUint(token, 10, 31)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q is not a non-negative integer", ErrMalformedRecord, token)
	}
	return int(v), nil
}
