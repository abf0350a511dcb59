// Package report renders a season as a numbered, localized console report.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/pollen-stats/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	// ErrNoSeasonData means the season has no records, so there is no year to report.
	ErrNoSeasonData = errors.New("no season data")

	// ErrNoBlossomOnset means no day in the season carries pollen.
	ErrNoBlossomOnset = errors.New("no data about pollen concentration found")
)

const (
	separator      = "-------------------------------------------------"
	listDelimiter  = " - "
	defaultPerLine = 5
)

// Renderer writes season reports in one language.
type Renderer struct {
	printer  *message.Printer
	calendar calendar
	perLine  int
}

// New returns a Renderer for lang (a BCP 47 tag such as "ru" or "en").
// Unsupported languages fall back to Russian.
func New(lang string) *Renderer {
	tag, _ := language.Parse(lang)
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	chosen := supported[idx]
	return &Renderer{
		printer:  message.NewPrinter(chosen.tag),
		calendar: chosen.calendar,
		perLine:  defaultPerLine,
	}
}

// sequence numbers report sections. Each Render call starts its own.
type sequence int

func (s *sequence) next() int {
	*s++
	return int(*s)
}

// Render writes the report for s to w. It returns ErrNoSeasonData for an
// empty season and ErrNoBlossomOnset when no day has pollen; in both cases
// the lines written so far explain the condition.
func (r *Renderer) Render(w io.Writer, s *domain.Series) error {
	out := &lineWriter{w: w, p: r.printer}
	var seq sequence

	year, ok := s.Year().Get()
	if !ok {
		out.printf(msgNoStatistics, s.City())
		return out.errOr(fmt.Errorf("%w: %s", ErrNoSeasonData, s.City()))
	}
	out.printf(msgTitle, s.City(), strconv.Itoa(year))
	out.println(separator)

	start, ok := s.StartOfBlossom().Get()
	if !ok {
		return out.errOr(fmt.Errorf("%w: %s %d", ErrNoBlossomOnset, s.City(), year))
	}
	end := s.EndOfBlossom().OrElse(start)
	endAmount := r.printer.Sprintf(msgNoData)
	if end.Amount() > 0 {
		endAmount = r.printer.Sprintf("%d", end.Amount())
	}
	out.printf(msgBlossom, seq.next(), s.BlossomDays(),
		r.date(start.Date()), start.Amount(), r.date(end.Date()), endAmount)

	if peak, ok := s.Peak().Get(); ok {
		out.printf(msgPeak, seq.next(), r.date(peak.Date()), peak.Amount())
	}
	out.printf(msgTotal, seq.next(), s.TotalAmount())

	r.renderLevels(out, s, seq.next())
	return out.err
}

func (r *Renderer) renderLevels(out *lineWriter, s *domain.Series, num int) {
	byLevel := s.DaysByLevel()
	total := s.TotalAmount()

	out.printf(msgLevelsHeader, num)
	for _, lvl := range domain.ReportLevels() {
		days := byLevel[lvl]
		st := domain.ComputeLevelStats(days, total)

		items := make([]string, len(days))
		for i, d := range days {
			items[i] = r.printer.Sprintf(msgDayAmount, r.date(d.Date()), d.Amount())
		}

		out.println("")
		// bounds are labels, so they skip the printer's digit grouping
		out.printf(msgLevel, lvl, strconv.Itoa(lvl.Lower()), strconv.Itoa(lvl.Upper()))
		out.printf(msgLevelDays, st.Days, strings.Join(items, listDelimiter))
		out.printf(msgLevelStats, st.Sum, st.Share, st.Mean)
	}

	gaps := s.DatesNotCounted()
	items := make([]string, len(gaps))
	for i, d := range gaps {
		items[i] = r.printer.Sprintf(msgWeekdayDate, r.date(d.Date()), r.calendar.weekday(d.Date().Weekday()))
	}

	out.println("")
	out.printf(msgUnknownLevel)
	out.printf(msgNotCounted, len(gaps), wrapList(items, r.perLine))
}

// date formats t as "dd Mon" with the localized month abbreviation.
func (r *Renderer) date(t time.Time) string {
	return fmt.Sprintf("%02d %s", t.Day(), r.calendar.month(t.Month()))
}

// wrapList joins items with the list delimiter and breaks the line after every
// perLine items. No delimiter follows the last item.
func wrapList(items []string, perLine int) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString(listDelimiter)
			if perLine > 0 && i%perLine == 0 {
				b.WriteString("\n")
			}
		}
		b.WriteString(item)
	}
	return b.String()
}

// lineWriter prints localized lines and keeps the first write error.
type lineWriter struct {
	w   io.Writer
	p   *message.Printer
	err error
}

func (lw *lineWriter) printf(key message.Reference, args ...any) {
	if lw.err != nil {
		return
	}
	if _, err := lw.p.Fprintf(lw.w, key, args...); err != nil {
		lw.err = err
		return
	}
	lw.println("")
}

func (lw *lineWriter) println(s string) {
	if lw.err != nil {
		return
	}
	_, lw.err = io.WriteString(lw.w, s+"\n")
}

// errOr returns the write error if one occurred, otherwise err.
func (lw *lineWriter) errOr(err error) error {
	if lw.err != nil {
		return lw.err
	}
	return err
}
