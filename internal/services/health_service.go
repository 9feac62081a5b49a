package services

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"awreports/pkg/contracts"
)

// Health states reported by the health endpoints
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusAlive     = "alive"
	StatusReady     = "ready"
	StatusNotReady  = "not_ready"
)

// Pinger is satisfied by *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthService provides health check functionality
type HealthService struct {
	db          Pinger
	pingTimeout time.Duration
	startTime   time.Time
	logger      *slog.Logger
}

// HealthStatus represents the health status response
type HealthStatus struct {
	Status    string                   `json:"status"`
	Timestamp time.Time                `json:"timestamp"`
	Version   string                   `json:"version"`
	Uptime    string                   `json:"uptime,omitempty"`
	Runtime   map[string]interface{}   `json:"runtime,omitempty"`
	Services  map[string]ServiceHealth `json:"services,omitempty"`
}

// ServiceHealth represents individual dependency health
type ServiceHealth struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	LatencyMs int64  `json:"latency_ms"`
}

// VersionResponse is returned by the version endpoint
type VersionResponse struct {
	contracts.VersionInfo
	StartTime     string  `json:"start_time"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// NewHealthService creates a new health service. A zero pingTimeout
// falls back to two seconds.
func NewHealthService(db Pinger, pingTimeout time.Duration, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	if pingTimeout <= 0 {
		pingTimeout = 2 * time.Second
	}

	return &HealthService{
		db:          db,
		pingTimeout: pingTimeout,
		startTime:   time.Now(),
		logger:      logger.With(slog.String("component", "health_service")),
	}
}

// HealthCheck returns the overall status, including the database ping
func (hs *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	database := hs.checkDatabase(ctx)

	status := HealthStatus{
		Status:    StatusHealthy,
		Timestamp: time.Now(),
		Version:   contracts.Version,
		Uptime:    time.Since(hs.startTime).Round(time.Second).String(),
		Services:  map[string]ServiceHealth{"database": database},
	}
	if database.Status != StatusHealthy {
		status.Status = StatusUnhealthy
	}

	hs.logger.DebugContext(ctx, "Health check completed",
		slog.String("status", status.Status),
		slog.Int64("db_latency_ms", database.LatencyMs))

	return status
}

// ReadinessCheck reports ready only when the database answers a ping
func (hs *HealthService) ReadinessCheck(ctx context.Context) HealthStatus {
	database := hs.checkDatabase(ctx)

	status := HealthStatus{
		Status:    StatusReady,
		Timestamp: time.Now(),
		Version:   contracts.Version,
		Services:  map[string]ServiceHealth{"database": database},
	}
	if database.Status != StatusHealthy {
		status.Status = StatusNotReady
	}
	return status
}

// LivenessCheck returns liveness status
func (hs *HealthService) LivenessCheck(_ context.Context) HealthStatus {
	return HealthStatus{
		Status:    StatusAlive,
		Timestamp: time.Now(),
		Version:   contracts.Version,
		Runtime: map[string]interface{}{
			"uptime":     time.Since(hs.startTime).Seconds(),
			"go_version": runtime.Version(),
			"goroutines": runtime.NumGoroutine(),
		},
	}
}

// Version returns version information
func (hs *HealthService) Version() VersionResponse {
	return VersionResponse{
		VersionInfo:   contracts.GetVersionInfo(),
		StartTime:     hs.startTime.Format(time.RFC3339),
		UptimeSeconds: time.Since(hs.startTime).Seconds(),
	}
}

func (hs *HealthService) checkDatabase(ctx context.Context) ServiceHealth {
	if hs.db == nil {
		return ServiceHealth{Status: StatusUnhealthy, Message: "database not configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, hs.pingTimeout)
	defer cancel()

	start := time.Now()
	err := hs.db.PingContext(ctx)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		hs.logger.WarnContext(ctx, "Database ping failed", slog.String("error", err.Error()))
		return ServiceHealth{Status: StatusUnhealthy, Message: err.Error(), LatencyMs: latency}
	}
	return ServiceHealth{Status: StatusHealthy, LatencyMs: latency}
}
