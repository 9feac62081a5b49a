package services

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"awreports/internal/shared/testutil"
	"awreports/pkg/contracts"
)

func TestHealthService_HealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus string
		wantDB     string
	}{
		{name: "database up", pingErr: nil, wantStatus: StatusHealthy, wantDB: StatusHealthy},
		{name: "database down", pingErr: errors.New("unable to open database file"), wantStatus: StatusUnhealthy, wantDB: StatusUnhealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := testutil.NewTestLogger(t)
			db := new(mockPinger)
			db.On("PingContext", mock.Anything).Return(tt.pingErr)

			hs := NewHealthService(db, time.Second, logger)
			status := hs.HealthCheck(context.Background())

			assert.Equal(t, tt.wantStatus, status.Status)
			assert.Equal(t, contracts.Version, status.Version)
			assert.NotEmpty(t, status.Uptime)
			require.Contains(t, status.Services, "database")
			assert.Equal(t, tt.wantDB, status.Services["database"].Status)
			if tt.pingErr != nil {
				assert.Equal(t, tt.pingErr.Error(), status.Services["database"].Message)
			}
			db.AssertExpectations(t)
		})
	}
}

func TestHealthService_ReadinessCheck(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)

	up := new(mockPinger)
	up.On("PingContext", mock.Anything).Return(nil)
	assert.Equal(t, StatusReady, NewHealthService(up, 0, logger).ReadinessCheck(context.Background()).Status)

	down := new(mockPinger)
	down.On("PingContext", mock.Anything).Return(errors.New("closed"))
	assert.Equal(t, StatusNotReady, NewHealthService(down, 0, logger).ReadinessCheck(context.Background()).Status)

	assert.Equal(t, StatusNotReady, NewHealthService(nil, 0, logger).ReadinessCheck(context.Background()).Status)
}

func TestHealthService_PingDeadline(t *testing.T) {
	logger, _ := testutil.NewTestLogger(t)
	db := new(mockPinger)
	db.On("PingContext", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)
	})

	NewHealthService(db, 50*time.Millisecond, logger).HealthCheck(context.Background())
	db.AssertExpectations(t)
}

func TestHealthService_LivenessCheck(t *testing.T) {
	hs := NewHealthService(nil, 0, nil)

	status := hs.LivenessCheck(context.Background())

	assert.Equal(t, StatusAlive, status.Status)
	assert.Equal(t, runtime.Version(), status.Runtime["go_version"])
	assert.Contains(t, status.Runtime, "goroutines")
}

func TestHealthService_Version(t *testing.T) {
	hs := NewHealthService(nil, 0, nil)

	v := hs.Version()

	assert.Equal(t, contracts.Version, v.Version)
	assert.Equal(t, contracts.APIVersion, v.APIVersion)
	assert.Equal(t, runtime.GOOS, v.OS)
	assert.GreaterOrEqual(t, v.UptimeSeconds, 0.0)
	_, err := time.Parse(time.RFC3339, v.StartTime)
	assert.NoError(t, err)
}
