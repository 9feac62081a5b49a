package infrastructure

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// PoolStatsFunc reports connection pool statistics; (*sql.DB).Stats fits.
type PoolStatsFunc func() sql.DBStats

// SystemMetrics exports runtime and database pool gauges. Values are read on
// each collection, so nothing runs in the background.
type SystemMetrics struct {
	registration metric.Registration
	startTime    time.Time
	poolStats    PoolStatsFunc
}

// SystemStats is a point-in-time snapshot of the gauges
type SystemStats struct {
	Goroutines      int64
	HeapAllocBytes  int64
	UptimeSeconds   float64
	OpenConnections int64
	InUse           int64
	Idle            int64
	WaitCount       int64
}

// RegisterSystemMetrics registers observable gauges on meter. poolStats may be
// nil, in which case the pool gauges report zero.
func RegisterSystemMetrics(meter metric.Meter, poolStats PoolStatsFunc) (*SystemMetrics, error) {
	goroutines, err := meter.Int64ObservableGauge(
		"system_goroutines",
		metric.WithDescription("Number of active goroutines"),
	)
	if err != nil {
		return nil, err
	}

	heapAlloc, err := meter.Int64ObservableGauge(
		"system_heap_alloc_bytes",
		metric.WithDescription("Bytes of allocated heap objects"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	uptime, err := meter.Float64ObservableGauge(
		"system_process_uptime_seconds",
		metric.WithDescription("Process uptime in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	openConns, err := meter.Int64ObservableGauge(
		"db_pool_open_connections",
		metric.WithDescription("Established connections to the report store"),
	)
	if err != nil {
		return nil, err
	}

	inUse, err := meter.Int64ObservableGauge(
		"db_pool_in_use_connections",
		metric.WithDescription("Connections currently in use"),
	)
	if err != nil {
		return nil, err
	}

	idle, err := meter.Int64ObservableGauge(
		"db_pool_idle_connections",
		metric.WithDescription("Idle connections"),
	)
	if err != nil {
		return nil, err
	}

	waitCount, err := meter.Int64ObservableCounter(
		"db_pool_wait_count_total",
		metric.WithDescription("Total number of connections waited for"),
	)
	if err != nil {
		return nil, err
	}

	sm := &SystemMetrics{
		startTime: time.Now(),
		poolStats: poolStats,
	}

	sm.registration, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		stats := sm.Snapshot()
		o.ObserveInt64(goroutines, stats.Goroutines)
		o.ObserveInt64(heapAlloc, stats.HeapAllocBytes)
		o.ObserveFloat64(uptime, stats.UptimeSeconds)
		o.ObserveInt64(openConns, stats.OpenConnections)
		o.ObserveInt64(inUse, stats.InUse)
		o.ObserveInt64(idle, stats.Idle)
		o.ObserveInt64(waitCount, stats.WaitCount)
		return nil
	}, goroutines, heapAlloc, uptime, openConns, inUse, idle, waitCount)
	if err != nil {
		return nil, fmt.Errorf("failed to register system metrics callback: %w", err)
	}

	return sm, nil
}

// Snapshot reads the current values
func (sm *SystemMetrics) Snapshot() SystemStats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	stats := SystemStats{
		Goroutines:     int64(runtime.NumGoroutine()),
		HeapAllocBytes: int64(mem.HeapAlloc),
		UptimeSeconds:  time.Since(sm.startTime).Seconds(),
	}

	if sm.poolStats != nil {
		pool := sm.poolStats()
		stats.OpenConnections = int64(pool.OpenConnections)
		stats.InUse = int64(pool.InUse)
		stats.Idle = int64(pool.Idle)
		stats.WaitCount = pool.WaitCount
	}

	return stats
}

// Unregister detaches the callback from the meter
func (sm *SystemMetrics) Unregister() error {
	if sm == nil || sm.registration == nil {
		return nil
	}
	return sm.registration.Unregister()
}
