package model

import (
	"time"

	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
)

// Event is a stored loan event, as read back for aggregation.
type Event struct {
	Type       kafka.LoanEventType `db:"type"`
	LoanID     int64               `db:"loan_id"`
	UserID     int64               `db:"user_id"`
	OccurredAt time.Time           `db:"occurred_at"`
}

// UserStats aggregates the loan events of one borrower.
type UserStats struct {
	UserID    int64     `json:"usuarioId"`
	Loans     int       `json:"prestamos"`
	Renewals  int       `json:"renovaciones"`
	Returns   int       `json:"devoluciones"`
	Deleted   int       `json:"eliminados"`
	Active    int       `json:"activos"`
	LastEvent time.Time `json:"ultimoEvento"`
}

type StatsInfo struct {
	Data []UserStats `json:"data"`
}
