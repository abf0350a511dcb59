package domain

import (
	"bufio"
	"io"
	"strconv"
)

// Write encodes s in the dataset format read by Parse, using layout for dates.
// An empty layout means DefaultDateLayout.
func Write(w io.Writer, s *Series, layout string) error {
	if layout == "" {
		layout = DefaultDateLayout
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(s.city)
	bw.WriteByte('\n')
	for _, r := range s.records {
		bw.WriteString(r.date.Format(layout))
		bw.WriteByte(' ')
		if r.measured {
			bw.WriteString(strconv.Itoa(r.amount))
		} else {
			bw.WriteString(NotMeasuredMarker)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
