package pipeline_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/couchcryptid/pollen-stats/internal/domain"
	"github.com/couchcryptid/pollen-stats/internal/pipeline"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockLoader struct {
	datasets map[string]string
	keys     []string
	listErr  error
}

func (m *mockLoader) Load(key string) (*domain.Series, error) {
	raw, ok := m.datasets[key]
	if !ok {
		return nil, fmt.Errorf("season %s not found", key)
	}
	return domain.Parse(strings.NewReader(raw))
}

func (m *mockLoader) List() ([]string, error) {
	return m.keys, m.listErr
}

type mockPublisher struct {
	published []domain.Summary
	err       error
}

func (m *mockPublisher) Publish(_ context.Context, summary domain.Summary) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, summary)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newLoader() *mockLoader {
	return &mockLoader{
		datasets: map[string]string{
			"Moscow_birch_2020": "Moscow\n01/04/2020 12\n02/04/2020 0\n",
			"Moscow_birch_2021": "Moscow\n01/04/2021 5\n02/04/2021 -\n03/04/2021 120\n04/04/2021 0\n",
			"broken":            "Moscow\n01/04/2021\n",
		},
		keys: []string{"Moscow_birch_2020", "Moscow_birch_2021", "broken"},
	}
}

// --- tests ---

func TestPipeline_Run_AllSeasons(t *testing.T) {
	pub := &mockPublisher{}
	p := pipeline.New(newLoader(), pub, discardLogger())

	res, err := p.Run(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, pipeline.Result{Published: 2, Skipped: 1}, res)
	keys := make([]string, len(pub.published))
	for i, s := range pub.published {
		keys[i] = s.Key
	}
	if diff := cmp.Diff([]string{"Moscow_birch_2020", "Moscow_birch_2021"}, keys); diff != "" {
		t.Errorf("published keys mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 125, pub.published[1].TotalAmount)
}

func TestPipeline_Run_SelectedSeasons(t *testing.T) {
	pub := &mockPublisher{}
	p := pipeline.New(newLoader(), pub, discardLogger())

	res, err := p.Run(context.Background(), []string{"Moscow_birch_2021"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Published)
	require.Len(t, pub.published, 1)
	assert.Equal(t, "Moscow", pub.published[0].City)
}

func TestPipeline_Run_ListError(t *testing.T) {
	loader := newLoader()
	loader.listErr = errors.New("permission denied")
	p := pipeline.New(loader, &mockPublisher{}, discardLogger())

	_, err := p.Run(context.Background(), nil)
	require.EqualError(t, err, "permission denied")
}

func TestPipeline_Run_ContextCancellation(t *testing.T) {
	pub := &mockPublisher{}
	p := pipeline.New(newLoader(), pub, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := p.Run(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, res.Published)
	assert.Empty(t, pub.published)
}

func TestPipeline_Run_PublishErrorStopsAfterRetries(t *testing.T) {
	pub := &mockPublisher{err: errors.New("broker unavailable")}
	p := pipeline.New(newLoader(), pub, discardLogger())

	// The deadline expires during the first backoff and ends the retries early.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	res, err := p.Run(ctx, []string{"Moscow_birch_2021"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export season Moscow_birch_2021: broker unavailable")
	assert.Zero(t, res.Published)
}
