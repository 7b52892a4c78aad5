package workers

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type recorderStub struct {
	mu      sync.Mutex
	samples []uint64
}

func (r *recorderStub) RecordProcess(rssBytes uint64, _ float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples = append(r.samples, rssBytes)
}

func (r *recorderStub) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.samples)
}

func TestHealthWorker_SamplesCurrentProcess(t *testing.T) {
	req := require.New(t)
	recorder := &recorderStub{}
	worker := NewHealthWorker(logs.GetLoggerFromLevel(slog.LevelDebug), recorder, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	// When the worker runs until its context expires
	err := worker.Run(ctx)

	// Then it stopped cleanly after several non-empty samples
	req.NoError(err)
	req.GreaterOrEqual(recorder.count(), 2)
	req.Positive(recorder.samples[0])
}

func TestHealthWorker_SamplesImmediately(t *testing.T) {
	req := require.New(t)
	recorder := &recorderStub{}
	worker := NewHealthWorker(slog.Default(), recorder, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	req.Eventually(func() bool { return recorder.count() == 1 }, time.Second, 10*time.Millisecond)
	cancel()
	req.NoError(<-done)
}
