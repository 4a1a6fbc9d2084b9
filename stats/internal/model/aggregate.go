package model

import (
	"sort"
	"time"

	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
)

type loanState struct {
	owner  int64
	seen   time.Time
	opened bool
	closed bool
}

type userLoan struct {
	userID int64
	loanID int64
	typ    kafka.LoanEventType
}

// Aggregate folds events, ordered by occurrence, into per-user stats.
//
// Loans, returns and deletions count distinct loans, so a redelivered
// RETURNED does not count twice. A loan is active while it has a CREATED
// event and neither a RETURNED nor a DELETED one; it is attributed to the
// user of its latest event, which follows an UPDATED that moved the loan.
func Aggregate(events []Event) []UserStats {
	users := make(map[int64]*UserStats)
	loans := make(map[int64]*loanState)
	counted := make(map[userLoan]struct{})

	user := func(id int64) *UserStats {
		st, ok := users[id]
		if !ok {
			st = &UserStats{UserID: id}
			users[id] = st
		}
		return st
	}

	for _, e := range events {
		st := user(e.UserID)
		if e.OccurredAt.After(st.LastEvent) {
			st.LastEvent = e.OccurredAt
		}

		loan, ok := loans[e.LoanID]
		if !ok {
			loan = &loanState{}
			loans[e.LoanID] = loan
		}
		if !e.OccurredAt.Before(loan.seen) {
			loan.owner = e.UserID
			loan.seen = e.OccurredAt
		}

		switch e.Type {
		case kafka.LoanRenewed:
			st.Renewals++
			continue
		case kafka.LoanCreated:
			loan.opened = true
		case kafka.LoanReturned, kafka.LoanDeleted:
			loan.closed = true
		default:
			continue
		}

		key := userLoan{userID: e.UserID, loanID: e.LoanID, typ: e.Type}
		if _, dup := counted[key]; dup {
			continue
		}
		counted[key] = struct{}{}
		switch e.Type {
		case kafka.LoanCreated:
			st.Loans++
		case kafka.LoanReturned:
			st.Returns++
		case kafka.LoanDeleted:
			st.Deleted++
		}
	}

	for _, loan := range loans {
		if loan.opened && !loan.closed {
			user(loan.owner).Active++
		}
	}

	out := make([]UserStats, 0, len(users))
	for _, st := range users {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out
}
