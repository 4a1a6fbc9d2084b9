package service

import (
	"context"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/repository"
	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	opCreate = "create"
	opRenew  = "renew"
	opReturn = "return"
	opDelete = "delete"
	opUpdate = "update"
)

func (s *Service) ListLoans(ctx context.Context, filter model.LoanFilter, page model.PageRequest) (model.ListLoans, error) {
	loans, err := s.repo.ListLoans(ctx, filter, page)
	if err != nil {
		return model.ListLoans{}, err
	}
	today := s.today()
	for i := range loans.Items {
		loans.Items[i].Evaluate(today)
	}
	return loans, nil
}

func (s *Service) GetLoan(ctx context.Context, id int64) (model.LoanView, error) {
	loan, err := s.repo.GetLoanView(ctx, id)
	if err != nil {
		return model.LoanView{}, err
	}
	loan.Evaluate(s.today())
	return loan, nil
}

// CreateLoan lends a book to a user. The book row stays locked for the
// whole check-and-set so two readers cannot borrow the same copy.
func (s *Service) CreateLoan(ctx context.Context, req model.CreateLoan) (model.LoanView, error) {
	today := s.today()
	var view model.LoanView
	err := s.repo.Tx(ctx, func(repo repository.Repository) error {
		book, err := repo.GetBookForUpdate(ctx, req.BookID)
		if err != nil {
			return errors.Wrap(err, "book")
		}
		user, err := repo.GetUser(ctx, req.UserID)
		if err != nil {
			return errors.Wrap(err, "user")
		}
		if book.State == model.BookOnLoan {
			return errs.ErrBookUnavailable
		}

		loans, err := repo.UserLoans(ctx, user.ID)
		if err != nil {
			return err
		}
		for _, l := range loans {
			if l.Overdue(today) {
				return errs.ErrLoanOverdue
			}
		}

		if err := repo.SetBookState(ctx, book.ID, model.BookOnLoan); err != nil {
			return err
		}
		loan, err := repo.CreateLoan(ctx, model.Loan{
			BookID:       book.ID,
			UserID:       user.ID,
			LoanDate:     today,
			DurationDays: model.LoanDurationDays,
		})
		if err != nil {
			return err
		}
		view = model.LoanView{
			ID:           loan.ID,
			BookID:       book.ID,
			BookTitle:    book.Title,
			UserID:       user.ID,
			UserName:     user.Name,
			LoanDate:     loan.LoanDate,
			DurationDays: loan.DurationDays,
		}
		return nil
	})
	s.observe(opCreate, err)
	if err != nil {
		return model.LoanView{}, err
	}
	s.publish(ctx, kafka.LoanCreated, view.ID, view.BookID, view.UserID)
	return view, nil
}

// RenewLoan moves the loan date forward by extraDays. The return date is left as is.
func (s *Service) RenewLoan(ctx context.Context, id int64, extraDays int) (model.LoanView, error) {
	today := s.today()
	view, err := s.mutateLoan(ctx, id, func(repo repository.Repository, loan *model.Loan) error {
		if extraDays < 1 {
			return errors.Wrap(errs.ErrInvalidArgument, "extension days must be at least 1")
		}
		if loan.Overdue(today) {
			return errs.ErrLoanOverdue
		}
		loan.LoanDate = loan.LoanDate.AddDays(extraDays)
		return repo.UpdateLoan(ctx, *loan)
	})
	s.observe(opRenew, err)
	if err != nil {
		return model.LoanView{}, err
	}
	s.publish(ctx, kafka.LoanRenewed, view.ID, view.BookID, view.UserID)
	return view, nil
}

// ReturnLoan frees the book and stamps today as the return date, whatever the prior state.
func (s *Service) ReturnLoan(ctx context.Context, id int64) (model.LoanView, error) {
	today := s.today()
	view, err := s.mutateLoan(ctx, id, func(repo repository.Repository, loan *model.Loan) error {
		if err := repo.SetBookState(ctx, loan.BookID, model.BookAvailable); err != nil {
			return err
		}
		loan.ReturnDate = &today
		return repo.UpdateLoan(ctx, *loan)
	})
	s.observe(opReturn, err)
	if err != nil {
		return model.LoanView{}, err
	}
	s.publish(ctx, kafka.LoanReturned, view.ID, view.BookID, view.UserID)
	return view, nil
}

// UpdateLoan re-points the loan to another book and user. Book states are not touched.
func (s *Service) UpdateLoan(ctx context.Context, id int64, req model.UpdateLoan) (model.LoanView, error) {
	view, err := s.mutateLoan(ctx, id, func(repo repository.Repository, loan *model.Loan) error {
		if _, err := repo.GetBook(ctx, req.BookID); err != nil {
			return errors.Wrap(err, "book")
		}
		if _, err := repo.GetUser(ctx, req.UserID); err != nil {
			return errors.Wrap(err, "user")
		}
		loan.BookID = req.BookID
		loan.UserID = req.UserID
		return repo.UpdateLoan(ctx, *loan)
	})
	s.observe(opUpdate, err)
	if err != nil {
		return model.LoanView{}, err
	}
	s.publish(ctx, kafka.LoanUpdated, view.ID, view.BookID, view.UserID)
	return view, nil
}

func (s *Service) DeleteLoan(ctx context.Context, id int64) error {
	var loan model.Loan
	err := s.repo.Tx(ctx, func(repo repository.Repository) error {
		var err error
		loan, err = repo.GetLoanForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := repo.SetBookState(ctx, loan.BookID, model.BookAvailable); err != nil {
			return err
		}
		return repo.DeleteLoan(ctx, loan.ID)
	})
	s.observe(opDelete, err)
	if err != nil {
		return err
	}
	s.publish(ctx, kafka.LoanDeleted, loan.ID, loan.BookID, loan.UserID)
	return nil
}

// mutateLoan locks the loan, applies fn and reads the resulting view in the same transaction.
func (s *Service) mutateLoan(ctx context.Context, id int64, fn func(repo repository.Repository, loan *model.Loan) error) (model.LoanView, error) {
	var view model.LoanView
	err := s.repo.Tx(ctx, func(repo repository.Repository) error {
		loan, err := repo.GetLoanForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := fn(repo, &loan); err != nil {
			return err
		}
		view, err = repo.GetLoanView(ctx, loan.ID)
		return err
	})
	if err != nil {
		return model.LoanView{}, err
	}
	view.Evaluate(s.today())
	return view, nil
}

func (s *Service) observe(op string, err error) {
	if s.metrics != nil {
		s.metrics.LoanOperation(op, err)
	}
}

func (s *Service) publish(ctx context.Context, typ kafka.LoanEventType, loanID, bookID, userID int64) {
	event := kafka.NewLoanEvent(typ, loanID, bookID, userID, s.now())
	err := s.publisher.Publish(ctx, event)
	if s.metrics != nil {
		s.metrics.EventPublished(err)
	}
	if err != nil {
		s.log.Warn("publish loan event",
			zap.String("type", string(typ)),
			zap.Int64("loanID", loanID),
			zap.Error(err))
	}
}
