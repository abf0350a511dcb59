// Command genmock writes a synthetic pollen season dataset for local testing
// and demos. Daily amounts follow a bell curve around the peak date, with
// randomly placed unmeasured days.
//
// Usage:
//
//	go run ./cmd/genmock \
//	  -city Moscow -year 2021 -start 01/04 -days 60 \
//	  -peak 4200 -gap-rate 0.1 -seed 7 \
//	  -out data/Moscow_birch_2021.gz
//
// An output path ending in .gz is gzip-compressed.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/couchcryptid/pollen-stats/internal/domain"
	"github.com/klauspost/compress/gzip"
)

// seasonParams describes the synthetic season to generate.
type seasonParams struct {
	city    string
	start   time.Time
	days    int
	peak    int
	gapRate float64
	seed    uint64
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	city := flag.String("city", "Moscow", "city name for the first line")
	year := flag.Int("year", 2021, "season year")
	start := flag.String("start", "01/04", "first day of the season as dd/mm")
	days := flag.Int("days", 60, "number of days to generate")
	peak := flag.Int("peak", 4200, "grain count on the peak day")
	gapRate := flag.Float64("gap-rate", 0.1, "probability that a pollen day is unmeasured")
	seed := flag.Uint64("seed", 1, "random seed")
	out := flag.String("out", "", "output path (stdout when empty)")
	flag.Parse()

	startDate, err := time.Parse("02/01/2006", fmt.Sprintf("%s/%04d", *start, *year))
	if err != nil {
		return fmt.Errorf("invalid -start: %w", err)
	}
	if *days <= 0 || *peak < 0 || *peak > domain.MaxAmount || *gapRate < 0 || *gapRate > 1 {
		flag.Usage()
		return fmt.Errorf("-days must be positive, -peak within [0,%d], -gap-rate within [0,1]", domain.MaxAmount)
	}

	series, err := generate(seasonParams{
		city:    *city,
		start:   startDate,
		days:    *days,
		peak:    *peak,
		gapRate: *gapRate,
		seed:    *seed,
	})
	if err != nil {
		return err
	}

	if *out == "" {
		return domain.Write(os.Stdout, series, "")
	}
	if err := writeFile(*out, series); err != nil {
		return err
	}
	log.Printf("wrote %d days for %s to %s (total %d grains)", series.Len(), series.City(), *out, series.TotalAmount())
	return nil
}

// generate lays a bell curve over the season: the peak sits at 40% of the
// range and the curve reaches zero about a fifth of the way from each edge.
func generate(p seasonParams) (*domain.Series, error) {
	rng := rand.New(rand.NewPCG(p.seed, p.seed^0x9e3779b97f4a7c15))
	mid := float64(p.days) * 0.4
	sigma := math.Max(float64(p.days)/8, 1)

	records := make([]domain.Record, 0, p.days)
	for i := range p.days {
		date := p.start.AddDate(0, 0, i)
		x := (float64(i) - mid) / sigma
		amount := int(math.Round(float64(p.peak) * math.Exp(-x*x/2)))
		if amount > 0 && rng.Float64() < p.gapRate {
			records = append(records, domain.NewUnmeasured(date))
			continue
		}
		rec, err := domain.NewRecord(date, amount)
		if err != nil {
			return nil, fmt.Errorf("day %s: %w", date.Format("02/01/2006"), err)
		}
		records = append(records, rec)
	}
	return domain.NewSeries(p.city, records), nil
}

func writeFile(path string, series *domain.Series) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create: %w", err)
	}
	defer f.Close()

	var w io.Writer = f
	var zw *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		zw = gzip.NewWriter(f)
		w = zw
	}
	if err := domain.Write(w, series, ""); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			return fmt.Errorf("gzip: %w", err)
		}
	}
	return f.Close()
}
