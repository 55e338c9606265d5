package stats

import (
	"context"
	"runtime"
	"sort"
	"sync"
	"time"
)

type Stats struct {
	Timestamp time.Time    `json:"timestamp"`
	Memory    MemoryStats  `json:"memory"`
	Tools     ToolStats    `json:"tools"`
	Runtime   RuntimeStats `json:"runtime"`
}

type MemoryStats struct {
	Alloc        uint64 `json:"alloc"`
	TotalAlloc   uint64 `json:"total_alloc"`
	Sys          uint64 `json:"sys"`
	NumGC        uint32 `json:"num_gc"`
	HeapAlloc    uint64 `json:"heap_alloc"`
	HeapSys      uint64 `json:"heap_sys"`
	HeapInuse    uint64 `json:"heap_inuse"`
	HeapReleased uint64 `json:"heap_released"`
}

type ToolStats struct {
	TotalCalls    int64      `json:"total_calls"`
	TotalFailures int64      `json:"total_failures"`
	PerTool       []ToolStat `json:"per_tool"`
}

type ToolStat struct {
	Name              string    `json:"name"`
	Calls             int64     `json:"calls"`
	Failures          int64     `json:"failures"`
	AvgDurationMillis float64   `json:"avg_duration_ms"`
	LastCallID        string    `json:"last_call_id,omitempty"`
	LastCallAt        time.Time `json:"last_call_at"`
}

type RuntimeStats struct {
	NumGoroutines int   `json:"num_goroutines"`
	NumCPU        int   `json:"num_cpu"`
	UptimeSeconds int64 `json:"uptime_seconds"`
}

type toolCounter struct {
	calls      int64
	failures   int64
	total      time.Duration
	lastCallID string
	lastCallAt time.Time
}

// Collector aggregates in-process tool call counters. Nothing is persisted.
type Collector struct {
	startTime  time.Time
	cachedMem  *MemoryStats
	cacheTime  time.Time
	cacheMutex sync.RWMutex

	toolsMutex sync.Mutex
	tools      map[string]*toolCounter
}

var (
	memStatsCacheDuration = 5 * time.Second
)

func NewCollector() *Collector {
	return &Collector{
		startTime: time.Now(),
		tools:     make(map[string]*toolCounter),
	}
}

// Record counts one finished tool invocation
func (c *Collector) Record(tool, callID string, duration time.Duration, failed bool) {
	c.toolsMutex.Lock()
	defer c.toolsMutex.Unlock()

	tc, ok := c.tools[tool]
	if !ok {
		tc = &toolCounter{}
		c.tools[tool] = tc
	}
	tc.calls++
	if failed {
		tc.failures++
	}
	tc.total += duration
	tc.lastCallID = callID
	tc.lastCallAt = time.Now()
}

func (c *Collector) Collect(ctx context.Context) (*Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stats := &Stats{
		Timestamp: time.Now(),
	}

	stats.Memory = c.collectMemoryStats()
	stats.Tools = c.collectToolStats()
	stats.Runtime = c.collectRuntimeStats()

	return stats, nil
}

func (c *Collector) collectMemoryStats() MemoryStats {
	c.cacheMutex.RLock()
	if c.cachedMem != nil && time.Since(c.cacheTime) < memStatsCacheDuration {
		mem := *c.cachedMem
		c.cacheMutex.RUnlock()
		return mem
	}
	c.cacheMutex.RUnlock()

	c.cacheMutex.Lock()
	defer c.cacheMutex.Unlock()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	mem := MemoryStats{
		Alloc:        m.Alloc,
		TotalAlloc:   m.TotalAlloc,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		HeapInuse:    m.HeapInuse,
		HeapReleased: m.HeapReleased,
	}

	c.cachedMem = &mem
	c.cacheTime = time.Now()

	return mem
}

func (c *Collector) collectToolStats() ToolStats {
	c.toolsMutex.Lock()
	defer c.toolsMutex.Unlock()

	var stats ToolStats
	for name, tc := range c.tools {
		stat := ToolStat{
			Name:       name,
			Calls:      tc.calls,
			Failures:   tc.failures,
			LastCallID: tc.lastCallID,
			LastCallAt: tc.lastCallAt,
		}
		if tc.calls > 0 {
			stat.AvgDurationMillis = float64(tc.total.Milliseconds()) / float64(tc.calls)
		}
		stats.PerTool = append(stats.PerTool, stat)
		stats.TotalCalls += tc.calls
		stats.TotalFailures += tc.failures
	}

	sort.Slice(stats.PerTool, func(i, j int) bool {
		return stats.PerTool[i].Name < stats.PerTool[j].Name
	})

	return stats
}

func (c *Collector) collectRuntimeStats() RuntimeStats {
	uptime := time.Since(c.startTime).Seconds()
	return RuntimeStats{
		NumGoroutines: runtime.NumGoroutine(),
		NumCPU:        runtime.NumCPU(),
		UptimeSeconds: int64(uptime),
	}
}
