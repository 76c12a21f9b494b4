package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/CampusHaven/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_ExpiresSession(t *testing.T) {
	expirer := mocks.NewMockSessionExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, 50*time.Millisecond, time.Hour, log)

	expirer.EXPECT().ExpireStale(mock.Anything, time.Hour).Return(true, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	expirer := mocks.NewMockSessionExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, 50*time.Millisecond, time.Minute, log)

	expirer.EXPECT().ExpireStale(mock.Anything, time.Minute).Return(false, errors.New("store unavailable"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	expirer := mocks.NewMockSessionExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, time.Second, time.Hour, log)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	expirer := mocks.NewMockSessionExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, 30*time.Millisecond, time.Hour, log)

	expirer.EXPECT().ExpireStale(mock.Anything, mock.Anything).Return(false, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 2)
}
