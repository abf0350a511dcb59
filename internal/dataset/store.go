// Package dataset resolves season keys such as "Moscow_birch_2021" to files
// in a data directory and loads them into domain.Series values.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/couchcryptid/pollen-stats/internal/domain"
	"github.com/couchcryptid/pollen-stats/internal/observability"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

var (
	// ErrNotFound means no file exists for the key under any supported suffix.
	ErrNotFound = errors.New("season dataset not found")

	// ErrInvalidKey means the key is empty or is not a bare file name.
	ErrInvalidKey = errors.New("invalid season key")
)

// codec identifies how a dataset file is encoded on disk.
type codec int

const (
	codecPlain codec = iota
	codecGzip
	codecZstd
)

// candidates are tried in order for every key.
var candidates = []struct {
	suffix string
	codec  codec
}{
	{"", codecPlain},
	{".gz", codecGzip},
	{".zst", codecZstd},
}

// Store loads season datasets from a directory.
type Store struct {
	dir        string
	dateLayout string
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewStore creates a Store reading from dir. dateLayout is passed to
// domain.Parse; empty means domain.DefaultDateLayout.
func NewStore(dir, dateLayout string, logger *slog.Logger, metrics *observability.Metrics) *Store {
	return &Store{
		dir:        dir,
		dateLayout: dateLayout,
		logger:     logger,
		metrics:    metrics,
	}
}

// Load opens and parses the dataset for key. The file handle is closed before
// Load returns, whether or not parsing succeeds.
func (s *Store) Load(key string) (*domain.Series, error) {
	start := time.Now()

	series, err := s.load(key)
	if err != nil {
		s.metrics.SeasonLoadErrors.WithLabelValues(failureReason(err)).Inc()
		s.logger.Warn("season load failed", "season", key, "error", err)
		return nil, err
	}

	s.metrics.SeasonsLoaded.Inc()
	s.metrics.RecordsParsed.Add(float64(series.Len()))
	s.metrics.SeasonLoadDuration.Observe(time.Since(start).Seconds())
	s.logger.Debug("season loaded", "season", key, "city", series.City(), "records", series.Len())
	return series, nil
}

func (s *Store) load(key string) (*domain.Series, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	path, c, err := s.resolve(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open season %s: %w", key, err)
	}
	defer f.Close()

	r, closeReader, err := decode(f, c)
	if err != nil {
		return nil, fmt.Errorf("decode season %s: %w", key, err)
	}
	defer closeReader()

	series, err := domain.Parse(r, domain.WithDateLayout(s.dateLayout))
	if err != nil {
		return nil, fmt.Errorf("parse season %s: %w", key, err)
	}
	return series, nil
}

// resolve returns the first existing file for key.
func (s *Store) resolve(key string) (string, codec, error) {
	for _, cand := range candidates {
		path := filepath.Join(s.dir, key+cand.suffix)
		info, err := os.Stat(path)
		if err == nil && info.Mode().IsRegular() {
			return path, cand.codec, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", codecPlain, fmt.Errorf("stat season %s: %w", key, err)
		}
	}
	return "", codecPlain, fmt.Errorf("%w: %s", ErrNotFound, key)
}

// decode wraps r in the decompressor for c. The returned func releases
// decoder resources; it does not close r.
func decode(r io.Reader, c codec) (io.Reader, func(), error) {
	switch c {
	case codecGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, func() { _ = zr.Close() }, nil
	case codecZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, zr.Close, nil
	default:
		return r, func() {}, nil
	}
}

// List returns the keys of all datasets in the directory, sorted, with
// compression suffixes stripped. Hidden files are skipped.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() || strings.HasPrefix(name, ".") {
			continue
		}
		for _, cand := range candidates[1:] {
			name = strings.TrimSuffix(name, cand.suffix)
		}
		keys = append(keys, name)
	}
	slices.Sort(keys)
	return slices.Compact(keys), nil
}

// CheckReadiness reports whether the data directory can be read.
func (s *Store) CheckReadiness(_ context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("data directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data directory %s is not a directory", s.dir)
	}
	return nil
}

func validateKey(key string) error {
	if key == "" || strings.HasPrefix(key, ".") || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidKey):
		return "invalid_key"
	case errors.Is(err, domain.ErrMalformedRecord), errors.Is(err, domain.ErrInvalidDate):
		return "malformed"
	default:
		return "io"
	}
}
