package repository

import (
	"context"
	"fmt"

	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
	"github.com/Astemirdum/biblioteca-service/stats/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository interface {
	SaveEvent(ctx context.Context, event kafka.LoanEvent) error
	ListEvents(ctx context.Context) ([]model.Event, error)
	ListUserEvents(ctx context.Context, userID int64) ([]model.Event, error)
}

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type repository struct {
	db  DB
	log *zap.Logger
}

func NewRepository(db DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

// SaveEvent is idempotent on the event id, so redelivered messages are ignored.
func (r *repository) SaveEvent(ctx context.Context, event kafka.LoanEvent) error {
	const q = `insert into loan_events (id, type, loan_id, book_id, user_id, occurred_at)
	values (@id, @type, @loan_id, @book_id, @user_id, @occurred_at)
	on conflict (id) do nothing`
	args := pgx.NamedArgs{
		"id":          event.ID.String(),
		"type":        string(event.Type),
		"loan_id":     event.LoanID,
		"book_id":     event.BookID,
		"user_id":     event.UserID,
		"occurred_at": event.Timestamp,
	}
	tag, err := r.db.Exec(ctx, q, args)
	if err != nil {
		return fmt.Errorf("insert loan event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		r.log.Debug("duplicate loan event", zap.String("id", event.ID.String()))
	}
	return nil
}

const eventsQuery = `select type, loan_id, user_id, occurred_at from loan_events`

// ListEvents returns every stored event in occurrence order.
func (r *repository) ListEvents(ctx context.Context) ([]model.Event, error) {
	return r.collect(ctx, eventsQuery+` order by occurred_at, id`)
}

// ListUserEvents returns every event of every loan the user ever appeared on,
// including the events other users produced after the loan moved.
func (r *repository) ListUserEvents(ctx context.Context, userID int64) ([]model.Event, error) {
	return r.collect(ctx, eventsQuery+`
	where loan_id in (select loan_id from loan_events where user_id = @user_id)
	order by occurred_at, id`, pgx.NamedArgs{"user_id": userID})
}

func (r *repository) collect(ctx context.Context, q string, args ...any) ([]model.Event, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	events, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Event])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return events, nil
}
