package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
	"github.com/Astemirdum/biblioteca-service/stats/internal/errs"
	"github.com/Astemirdum/biblioteca-service/stats/internal/model"
	"github.com/Astemirdum/biblioteca-service/stats/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memRepo struct {
	events []kafka.LoanEvent
}

func (r *memRepo) SaveEvent(_ context.Context, e kafka.LoanEvent) error {
	r.events = append(r.events, e)
	return nil
}

func (r *memRepo) ListEvents(context.Context) ([]model.Event, error) {
	out := make([]model.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, model.Event{Type: e.Type, LoanID: e.LoanID, UserID: e.UserID, OccurredAt: e.Timestamp})
	}
	return out, nil
}

func (r *memRepo) ListUserEvents(ctx context.Context, userID int64) ([]model.Event, error) {
	all, _ := r.ListEvents(ctx)
	touched := make(map[int64]bool)
	for _, e := range all {
		if e.UserID == userID {
			touched[e.LoanID] = true
		}
	}
	var out []model.Event
	for _, e := range all {
		if touched[e.LoanID] {
			out = append(out, e)
		}
	}
	return out, nil
}

func TestService_SaveEvent(t *testing.T) {
	t.Parallel()
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		event kafka.LoanEvent
		saved bool
	}{
		{name: "ok", event: kafka.NewLoanEvent(kafka.LoanCreated, 11, 3, 7, at), saved: true},
		{name: "skip. no user", event: kafka.NewLoanEvent(kafka.LoanCreated, 11, 3, 0, at)},
		{name: "skip. no loan", event: kafka.NewLoanEvent(kafka.LoanReturned, 0, 3, 7, at)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo := &memRepo{}
			svc := service.NewService(repo, zap.NewNop())

			require.NoError(t, svc.SaveEvent(context.Background(), tt.event))
			require.Equal(t, tt.saved, len(repo.events) == 1)

			_, err := svc.GetUserStats(context.Background(), 7)
			if tt.saved {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, errs.ErrNotFound)
			}
		})
	}
}

func TestService_Stats(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := &memRepo{}
	svc := service.NewService(repo, zap.NewNop())

	for _, e := range []kafka.LoanEvent{
		kafka.NewLoanEvent(kafka.LoanCreated, 11, 3, 7, at),
		kafka.NewLoanEvent(kafka.LoanCreated, 12, 4, 7, at.Add(time.Hour)),
		kafka.NewLoanEvent(kafka.LoanUpdated, 12, 4, 9, at.Add(2*time.Hour)),
		kafka.NewLoanEvent(kafka.LoanReturned, 11, 3, 7, at.Add(3*time.Hour)),
		kafka.NewLoanEvent(kafka.LoanReturned, 11, 3, 7, at.Add(4*time.Hour)),
	} {
		require.NoError(t, svc.SaveEvent(ctx, e))
	}

	all, err := svc.GetStats(ctx)
	require.NoError(t, err)
	require.Len(t, all.Data, 2)

	seven, err := svc.GetUserStats(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, model.UserStats{UserID: 7, Loans: 2, Returns: 1, LastEvent: at.Add(4 * time.Hour)}, seven)

	nine, err := svc.GetUserStats(ctx, 9)
	require.NoError(t, err)
	require.Equal(t, 1, nine.Active)

	_, err = svc.GetUserStats(ctx, 404)
	require.ErrorIs(t, err, errs.ErrNotFound)
}
