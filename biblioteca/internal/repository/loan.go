package repository

import (
	"context"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	sq "github.com/Masterminds/squirrel"
)

var loanColumns = []string{"id", "book_id", "user_id", "loan_date", "return_date", "duration_days"}

func loanViews() sq.SelectBuilder {
	return qb.Select(
		"l.id", "l.book_id", "b.title as book_title", "l.user_id", "u.name as user_name",
		"l.loan_date", "l.return_date", "l.duration_days",
	).
		From(loansTableName + " l").
		Join(booksTableName + " b on b.id = l.book_id").
		Join(usersTableName + " u on u.id = l.user_id")
}

func loanFilter(b sq.SelectBuilder, filter model.LoanFilter) sq.SelectBuilder {
	if filter.UserID != nil {
		b = b.Where(sq.Eq{"l.user_id": *filter.UserID})
	}
	return b
}

func (r *repository) ListLoans(ctx context.Context, filter model.LoanFilter, page model.PageRequest) (model.ListLoans, error) {
	total, err := r.count(ctx, loanFilter(qb.Select("count(*)").From(loansTableName+" l"), filter))
	if err != nil {
		return model.ListLoans{}, err
	}

	q := loanFilter(loanViews(), filter).
		OrderBy("l.id").
		Limit(page.Limit()).
		Offset(page.Offset())
	loans := make([]model.LoanView, 0)
	if err := r.list(ctx, &loans, q); err != nil {
		return model.ListLoans{}, err
	}

	return model.ListLoans{
		Paging: page.Paging(total),
		Items:  loans,
	}, nil
}

func (r *repository) GetLoanView(ctx context.Context, id int64) (model.LoanView, error) {
	var loan model.LoanView
	if err := r.get(ctx, &loan, loanViews().Where(sq.Eq{"l.id": id}).Limit(1)); err != nil {
		return model.LoanView{}, err
	}
	return loan, nil
}

// GetLoanForUpdate locks the loan row until the surrounding transaction ends.
func (r *repository) GetLoanForUpdate(ctx context.Context, id int64) (model.Loan, error) {
	q := qb.Select(loanColumns...).
		From(loansTableName).
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE")
	var loan model.Loan
	if err := r.get(ctx, &loan, q); err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}

func (r *repository) UserLoans(ctx context.Context, userID int64) ([]model.Loan, error) {
	q := qb.Select(loanColumns...).
		From(loansTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id")
	loans := make([]model.Loan, 0)
	if err := r.list(ctx, &loans, q); err != nil {
		return nil, err
	}
	return loans, nil
}

func (r *repository) CreateLoan(ctx context.Context, loan model.Loan) (model.Loan, error) {
	q := qb.Insert(loansTableName).
		Columns("book_id", "user_id", "loan_date", "return_date", "duration_days").
		Values(loan.BookID, loan.UserID, loan.LoanDate, loan.ReturnDate, loan.DurationDays).
		Suffix("RETURNING id")
	if err := r.get(ctx, &loan.ID, q); err != nil {
		return model.Loan{}, err
	}
	return loan, nil
}

func (r *repository) UpdateLoan(ctx context.Context, loan model.Loan) error {
	return r.exec(ctx, qb.Update(loansTableName).
		Set("book_id", loan.BookID).
		Set("user_id", loan.UserID).
		Set("loan_date", loan.LoanDate).
		Set("return_date", loan.ReturnDate).
		Where(sq.Eq{"id": loan.ID}))
}

func (r *repository) DeleteLoan(ctx context.Context, id int64) error {
	return r.exec(ctx, qb.Delete(loansTableName).Where(sq.Eq{"id": id}))
}
