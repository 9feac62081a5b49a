package infrastructure

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collectGauges(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	values := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Gauge[int64]:
				for _, dp := range data.DataPoints {
					values[m.Name] = dp.Value
				}
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					values[m.Name] = dp.Value
				}
			}
		}
	}
	return values
}

func TestSystemMetrics_PoolGauges(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	stats := func() sql.DBStats {
		return sql.DBStats{OpenConnections: 3, InUse: 1, Idle: 2, WaitCount: 7}
	}

	sm, err := RegisterSystemMetrics(mp.Meter("test"), stats)
	require.NoError(t, err)

	values := collectGauges(t, reader)
	assert.Equal(t, int64(3), values["db_pool_open_connections"])
	assert.Equal(t, int64(1), values["db_pool_in_use_connections"])
	assert.Equal(t, int64(2), values["db_pool_idle_connections"])
	assert.Equal(t, int64(7), values["db_pool_wait_count_total"])
	assert.Positive(t, values["system_goroutines"])
	assert.Positive(t, values["system_heap_alloc_bytes"])

	require.NoError(t, sm.Unregister())
	values = collectGauges(t, reader)
	assert.NotContains(t, values, "db_pool_open_connections")
}

func TestSystemMetrics_NoPool(t *testing.T) {
	sm, err := RegisterSystemMetrics(noop.NewMeterProvider().Meter("test"), nil)
	require.NoError(t, err)

	snap := sm.Snapshot()
	assert.Zero(t, snap.OpenConnections)
	assert.Positive(t, snap.Goroutines)
	assert.GreaterOrEqual(t, snap.UptimeSeconds, 0.0)
	assert.NoError(t, sm.Unregister())

	var nilMetrics *SystemMetrics
	assert.NoError(t, nilMetrics.Unregister())
}
