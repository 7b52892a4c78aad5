package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// ProcessRecorder receives the samples taken by HealthWorker.
type ProcessRecorder interface {
	RecordProcess(rssBytes uint64, cpuPercent float64)
}

// HealthWorker samples memory and CPU usage of the bot process at a fixed
// interval, starting right away.
type HealthWorker struct {
	log      *slog.Logger
	recorder ProcessRecorder
	interval time.Duration
	pid      int32
}

func NewHealthWorker(log *slog.Logger, recorder ProcessRecorder, interval time.Duration) *HealthWorker {
	return &HealthWorker{
		log:      log,
		recorder: recorder,
		interval: interval,
		pid:      int32(os.Getpid()),
	}
}

func (w *HealthWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(w.pid)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sample(p)
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping health sampling")
			return nil
		case <-ticker.C:
			w.sample(p)
		}
	}
}

func (w *HealthWorker) sample(p *process.Process) {
	mem, err := p.MemoryInfo()
	if err != nil {
		w.log.Error("Error while finding process memory usage", "pid", w.pid, "err", err)
		return
	}
	cpu, err := p.CPUPercent()
	if err != nil {
		w.log.Error("Error while finding process cpu usage", "pid", w.pid, "err", err)
		return
	}
	w.recorder.RecordProcess(mem.RSS, cpu)
}
