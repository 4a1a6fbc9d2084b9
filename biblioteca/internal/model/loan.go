package model

const LoanDurationDays = 14

type Loan struct {
	ID           int64 `json:"id" db:"id"`
	BookID       int64 `json:"libroId" db:"book_id"`
	UserID       int64 `json:"usuarioId" db:"user_id"`
	LoanDate     Date  `json:"fechaPrestamo" db:"loan_date"`
	ReturnDate   *Date `json:"fechaDevolucion" db:"return_date"`
	DurationDays int   `json:"duracionDias" db:"duration_days"`
}

// Due is the last day the book may be kept.
func (l Loan) Due() Date {
	return l.LoanDate.AddDays(l.DurationDays)
}

// Overdue reports whether the loan is still open after its due date.
func (l Loan) Overdue(today Date) bool {
	return l.ReturnDate == nil && l.Due().Before(today)
}

type LoanView struct {
	ID         int64  `json:"id" db:"id"`
	BookID     int64  `json:"libroId" db:"book_id"`
	BookTitle  string `json:"libroTitulo" db:"book_title"`
	UserID     int64  `json:"usuarioId" db:"user_id"`
	UserName   string `json:"nombre" db:"user_name"`
	LoanDate   Date   `json:"fechaPrestamo" db:"loan_date"`
	ReturnDate *Date  `json:"fechaDevolucion" db:"return_date"`
	// DurationDays is only used to derive Overdue.
	DurationDays int  `json:"-" db:"duration_days"`
	Overdue      bool `json:"vencido" db:"-"`
}

func (v *LoanView) Evaluate(today Date) {
	v.Overdue = Loan{
		LoanDate:     v.LoanDate,
		ReturnDate:   v.ReturnDate,
		DurationDays: v.DurationDays,
	}.Overdue(today)
}

type ListLoans struct {
	Paging `json:",inline"`
	Items  []LoanView `json:"items"`
}

type LoanFilter struct {
	UserID *int64
}

type CreateLoan struct {
	BookID int64 `json:"libroId" validate:"required,gte=1"`
	UserID int64 `json:"usuarioId" validate:"required,gte=1"`
}

type UpdateLoan struct {
	BookID int64 `json:"libroId" validate:"required,gte=1"`
	UserID int64 `json:"usuarioId" validate:"required,gte=1"`
}
