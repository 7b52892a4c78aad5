package observability

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"team-bot/domain"
	"time"
)

// MonitoringStats is the snapshot shown by the status command.
type MonitoringStats struct {
	StartedAt time.Time     `json:"started_at"`
	Uptime    time.Duration `json:"uptime"`

	// --- SPLIT METRICS ---
	Splits        uint64 `json:"splits"`
	AbortedSplits uint64 `json:"aborted_splits"`
	Moved         uint64 `json:"moved"`
	Skipped       uint64 `json:"skipped"`
	Failed        uint64 `json:"failed"`
	Rejected      uint64 `json:"rejected"`

	// --- PROCESS METRICS ---
	RSSBytes    uint64    `json:"rss_bytes"`
	CPUPercent  float64   `json:"cpu_percent"`
	AllocMemMb  uint64    `json:"alloc_mem_mb"`
	NumGC       uint32    `json:"num_gc"`
	Goroutines  int       `json:"goroutines"`
	LastSampled time.Time `json:"last_sampled"`
}

// MonitoringManager aggregates split counters and process samples.
// Counters are updated lock-free; samples are written by the health worker.
type MonitoringManager struct {
	log       *slog.Logger
	mu        sync.RWMutex
	startedAt time.Time
	process   MonitoringStats

	splits   uint64
	aborted  uint64
	moved    uint64
	skipped  uint64
	failed   uint64
	rejected uint64
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{log: log, startedAt: time.Now().UTC()}
}

// RecordSplit counts a split that went past its pre-flight checks.
func (mm *MonitoringManager) RecordSplit(result domain.SplitResult) {
	atomic.AddUint64(&mm.splits, 1)
	if result.Aborted {
		atomic.AddUint64(&mm.aborted, 1)
	}
	atomic.AddUint64(&mm.moved, uint64(result.Count(domain.RelocationMoved)))
	atomic.AddUint64(&mm.skipped, uint64(result.Count(domain.RelocationSkipped)))
	atomic.AddUint64(&mm.failed, uint64(result.Count(domain.RelocationFailed)))
}

// IncrRejected counts a split refused before any move.
func (mm *MonitoringManager) IncrRejected() {
	atomic.AddUint64(&mm.rejected, 1)
}

// RecordProcess stores the latest process sample along with Go runtime stats.
func (mm *MonitoringManager) RecordProcess(rssBytes uint64, cpuPercent float64) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.process.RSSBytes = rssBytes
	mm.process.CPUPercent = cpuPercent
	mm.process.AllocMemMb = m.Alloc / 1024 / 1024
	mm.process.NumGC = m.NumGC
	mm.process.Goroutines = runtime.NumGoroutine()
	mm.process.LastSampled = time.Now().UTC()

	mm.log.Debug("Process sampled",
		"rss_bytes", rssBytes,
		"cpu_percent", cpuPercent,
		"alloc_mem_mb", mm.process.AllocMemMb,
		"goroutines", mm.process.Goroutines,
	)
}

func (mm *MonitoringManager) GetLatest() MonitoringStats {
	mm.mu.RLock()
	stats := mm.process
	mm.mu.RUnlock()

	stats.StartedAt = mm.startedAt
	stats.Uptime = time.Since(mm.startedAt).Truncate(time.Second)
	stats.Splits = atomic.LoadUint64(&mm.splits)
	stats.AbortedSplits = atomic.LoadUint64(&mm.aborted)
	stats.Moved = atomic.LoadUint64(&mm.moved)
	stats.Skipped = atomic.LoadUint64(&mm.skipped)
	stats.Failed = atomic.LoadUint64(&mm.failed)
	stats.Rejected = atomic.LoadUint64(&mm.rejected)
	return stats
}
