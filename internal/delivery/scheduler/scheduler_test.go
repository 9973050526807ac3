package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"ecocart/config"
	"ecocart/internal/domain/entity"
	"ecocart/internal/infra/metrics"
	mockSvc "ecocart/internal/mocks/service"
	mockUsecase "ecocart/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestScheduler_Disabled(t *testing.T) {
	s := newScheduler(&config.ReminderConfig{Enabled: false},
		mockUsecase.NewMockReminderUsecase(t), mockSvc.NewMockClock(t), metrics.New(), discardLogger())

	require.NoError(t, s.Serve(t.Context()))
	require.NoError(t, s.shutdown(t.Context()))
}

func TestScheduler_RunsBothKindsOnStart(t *testing.T) {
	reminderUC := mockUsecase.NewMockReminderUsecase(t)
	clock := mockSvc.NewMockClock(t)
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now)

	swept := make(chan entity.ReminderKind, 2)
	for _, kind := range []entity.ReminderKind{entity.ReminderExpiring, entity.ReminderExpired} {
		reminderUC.EXPECT().Sweep(mock.Anything, kind, now).
			RunAndReturn(func(ctx context.Context, k entity.ReminderKind, _ time.Time) (*entity.SweepResult, error) {
				swept <- k

				return &entity.SweepResult{Kind: k, Claimed: 1, Dispatched: 1}, nil
			}).Once()
	}

	s := newScheduler(&config.ReminderConfig{
		Enabled:         true,
		RunOnStart:      true,
		Interval:        time.Hour,
		ExpiredInterval: time.Hour,
	}, reminderUC, clock, metrics.New(), discardLogger())

	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(context.Background()) }()

	got := map[entity.ReminderKind]bool{}
	for range 2 {
		select {
		case kind := <-swept:
			got[kind] = true
		case <-time.After(2 * time.Second):
			t.Fatal("sweep did not run")
		}
	}
	assert.True(t, got[entity.ReminderExpiring])
	assert.True(t, got[entity.ReminderExpired])

	require.NoError(t, s.shutdown(t.Context()))
	require.NoError(t, <-errCh)
}

func TestScheduler_TickAfterFailure(t *testing.T) {
	reminderUC := mockUsecase.NewMockReminderUsecase(t)
	clock := mockSvc.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Now())

	calls := make(chan struct{}, 8)
	reminderUC.EXPECT().Sweep(mock.Anything, entity.ReminderExpiring, mock.Anything).
		RunAndReturn(func(context.Context, entity.ReminderKind, time.Time) (*entity.SweepResult, error) {
			select {
			case calls <- struct{}{}:
			default:
			}

			return nil, errors.New("database unavailable")
		})

	s := newScheduler(&config.ReminderConfig{
		Enabled:         true,
		Interval:        10 * time.Millisecond,
		ExpiredInterval: time.Hour,
	}, reminderUC, clock, metrics.New(), discardLogger())

	errCh := make(chan error, 1)
	go func() { errCh <- s.Serve(context.Background()) }()

	for range 2 {
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatal("scheduler stopped ticking after a failed sweep")
		}
	}

	require.NoError(t, s.shutdown(t.Context()))
	require.NoError(t, <-errCh)
}
