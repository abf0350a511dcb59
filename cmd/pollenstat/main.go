// Command pollenstat prints the pollen season report for one dataset and can
// publish season summaries to Kafka.
//
// Usage:
//
//	go run ./cmd/pollenstat -season Moscow_birch_2021
//	go run ./cmd/pollenstat -season Moscow_birch_2021 -lang en
//	go run ./cmd/pollenstat -export            # publish every season in DATA_DIR
//
// Datasets are read from DATA_DIR (default "data"); see internal/config for
// the remaining environment variables.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/pollen-stats/internal/adapter/kafka"
	"github.com/couchcryptid/pollen-stats/internal/config"
	"github.com/couchcryptid/pollen-stats/internal/dataset"
	"github.com/couchcryptid/pollen-stats/internal/domain"
	"github.com/couchcryptid/pollen-stats/internal/observability"
	"github.com/couchcryptid/pollen-stats/internal/pipeline"
	"github.com/couchcryptid/pollen-stats/internal/report"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

func main() {
	season := flag.String("season", "", "dataset key to report on, e.g. Moscow_birch_2021")
	lang := flag.String("lang", "", "report language (ru, en); overrides REPORT_LANGUAGE")
	publish := flag.Bool("publish", false, "also publish the season summary to Kafka")
	export := flag.Bool("export", false, "publish summaries for -season, or for every dataset when -season is empty, without printing a report")
	flag.Parse()

	if *season == "" && !*export {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *lang != "" {
		if err := config.ValidateLanguage(*lang); err != nil {
			slog.Error("invalid -lang", "error", err)
			os.Exit(2)
		}
		cfg.ReportLanguage = *lang
	}
	cfg.KafkaPublishEnabled = cfg.KafkaPublishEnabled || *publish || *export

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, cfg, *season, *export, os.Stdout)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, cfg *config.Config, season string, export bool, stdout io.Writer) int {
	logger := sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()
	store := dataset.NewStore(cfg.DataDir, cfg.DateLayout, logger, metrics)

	var publisher *kafka.Publisher
	if cfg.KafkaPublishEnabled {
		publisher = kafka.NewPublisher(cfg, logger, metrics)
		defer func() {
			if err := publisher.Close(); err != nil {
				logger.Error("kafka writer close error", "error", err)
			}
		}()
	}

	if export {
		var keys []string
		if season != "" {
			keys = []string{season}
		}
		res, err := pipeline.New(store, publisher, logger).Run(ctx, keys)
		if err != nil {
			logger.Error("export failed", "error", err)
			return 1
		}
		fmt.Fprintf(stdout, "published %d season(s), skipped %d\n", res.Published, res.Skipped)
		return 0
	}

	series, err := store.Load(season)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	if err := report.New(cfg.ReportLanguage).Render(stdout, series); err != nil {
		if !errors.Is(err, report.ErrNoSeasonData) && !errors.Is(err, report.ErrNoBlossomOnset) {
			logger.Error("render report failed", "season", season, "error", err)
		}
		fmt.Fprintf(os.Stderr, "FATAL: %v\n", err)
		return 1
	}

	if publisher != nil {
		if err := publisher.Publish(ctx, domain.Summarize(season, series)); err != nil {
			logger.Error("publish failed", "season", season, "error", err)
			return 1
		}
	}
	return 0
}
