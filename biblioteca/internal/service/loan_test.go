package service_test

import (
	"context"
	"testing"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/service"
	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	repo_mocks "github.com/Astemirdum/biblioteca-service/biblioteca/internal/repository/mocks"
)

func TestService_CreateLoan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	returned := date("2024-01-10")
	book := model.Book{ID: 1, Title: "Ficciones", State: model.BookAvailable, AuthorID: 2}
	user := model.User{ID: 5, Name: "Ana", Role: model.RoleReader}

	type mockBehavior func(r *repo_mocks.MockRepository)
	tests := []struct {
		name         string
		mockBehavior mockBehavior
		want         model.LoanView
		wantErr      error
		wantEvents   []kafka.LoanEventType
	}{
		{
			name: "ok",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				gomock.InOrder(
					r.EXPECT().GetBookForUpdate(ctx, book.ID).Return(book, nil),
					r.EXPECT().GetUser(ctx, user.ID).Return(user, nil),
					r.EXPECT().UserLoans(ctx, user.ID).Return([]model.Loan{
						{ID: 1, LoanDate: date("2024-01-01"), ReturnDate: &returned, DurationDays: 14},
						{ID: 2, LoanDate: date("2024-02-20"), DurationDays: 14},
					}, nil),
					r.EXPECT().SetBookState(ctx, book.ID, model.BookOnLoan).Return(nil),
					r.EXPECT().CreateLoan(ctx, model.Loan{
						BookID: book.ID, UserID: user.ID, LoanDate: today(), DurationDays: model.LoanDurationDays,
					}).Return(model.Loan{
						ID: 9, BookID: book.ID, UserID: user.ID, LoanDate: today(), DurationDays: model.LoanDurationDays,
					}, nil),
				)
			},
			want: model.LoanView{
				ID: 9, BookID: book.ID, BookTitle: "Ficciones", UserID: user.ID, UserName: "Ana",
				LoanDate: today(), DurationDays: model.LoanDurationDays,
			},
			wantEvents: []kafka.LoanEventType{kafka.LoanCreated},
		},
		{
			name: "err. book not found",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBookForUpdate(ctx, book.ID).Return(model.Book{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name: "err. user not found",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBookForUpdate(ctx, book.ID).Return(book, nil)
				r.EXPECT().GetUser(ctx, user.ID).Return(model.User{}, errs.ErrNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name: "err. book on loan",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				onLoan := book
				onLoan.State = model.BookOnLoan
				r.EXPECT().GetBookForUpdate(ctx, book.ID).Return(onLoan, nil)
				r.EXPECT().GetUser(ctx, user.ID).Return(user, nil)
			},
			wantErr: errs.ErrBookUnavailable,
		},
		{
			name: "err. user has overdue loan",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBookForUpdate(ctx, book.ID).Return(book, nil)
				r.EXPECT().GetUser(ctx, user.ID).Return(user, nil)
				r.EXPECT().UserLoans(ctx, user.ID).Return([]model.Loan{
					{ID: 1, LoanDate: date("2024-01-01"), ReturnDate: &returned, DurationDays: 14},
					{ID: 3, LoanDate: date("2024-02-15"), DurationDays: 14},
				}, nil)
			},
			wantErr: errs.ErrLoanOverdue,
		},
		{
			name: "err. duplicate loan same day",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBookForUpdate(ctx, book.ID).Return(book, nil)
				r.EXPECT().GetUser(ctx, user.ID).Return(user, nil)
				r.EXPECT().UserLoans(ctx, user.ID).Return(nil, nil)
				r.EXPECT().SetBookState(ctx, book.ID, model.BookOnLoan).Return(nil)
				r.EXPECT().CreateLoan(ctx, gomock.Any()).Return(model.Loan{}, errors.Wrap(errs.ErrDuplicate, "loans_book_id_user_id_loan_date_key"))
			},
			wantErr: errs.ErrDuplicate,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pub := &recordingPublisher{}
			svc, repo := newService(t, service.WithPublisher(pub))
			tt.mockBehavior(repo)

			got, err := svc.CreateLoan(ctx, model.CreateLoan{BookID: book.ID, UserID: user.ID})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, pub.types())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Nil(t, got.ReturnDate)
			require.Equal(t, tt.wantEvents, pub.types())
		})
	}
}

// Book B1 is lent to U1; a second request for B1 by U2 must be refused.
func TestService_CreateLoan_BookBecomesUnavailable(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newService(t)

	b1 := model.Book{ID: 1, Title: "B1", State: model.BookAvailable}
	u1 := model.User{ID: 1, Name: "U1"}
	u2 := model.User{ID: 2, Name: "U2"}

	repo.EXPECT().GetBookForUpdate(ctx, b1.ID).DoAndReturn(func(context.Context, int64) (model.Book, error) {
		return b1, nil
	}).Times(2)
	repo.EXPECT().GetUser(ctx, u1.ID).Return(u1, nil)
	repo.EXPECT().GetUser(ctx, u2.ID).Return(u2, nil)
	repo.EXPECT().UserLoans(ctx, u1.ID).Return([]model.Loan{}, nil)
	repo.EXPECT().SetBookState(ctx, b1.ID, gomock.Any()).DoAndReturn(func(_ context.Context, _ int64, state model.BookState) error {
		b1.State = state
		return nil
	})
	repo.EXPECT().CreateLoan(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, l model.Loan) (model.Loan, error) {
		l.ID = 100
		return l, nil
	})

	loan, err := svc.CreateLoan(ctx, model.CreateLoan{BookID: b1.ID, UserID: u1.ID})
	require.NoError(t, err)
	require.Equal(t, today(), loan.LoanDate)
	require.Nil(t, loan.ReturnDate)
	require.False(t, loan.Overdue)
	require.Equal(t, model.BookOnLoan, b1.State)

	_, err = svc.CreateLoan(ctx, model.CreateLoan{BookID: b1.ID, UserID: u2.ID})
	require.ErrorIs(t, err, errs.ErrBookUnavailable)
}

func TestService_CreateLoan_PublishFailureIsNotReturned(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc, repo := newService(t, service.WithPublisher(pub))

	repo.EXPECT().GetBookForUpdate(ctx, int64(1)).Return(model.Book{ID: 1, State: model.BookAvailable}, nil)
	repo.EXPECT().GetUser(ctx, int64(2)).Return(model.User{ID: 2}, nil)
	repo.EXPECT().UserLoans(ctx, int64(2)).Return(nil, nil)
	repo.EXPECT().SetBookState(ctx, int64(1), model.BookOnLoan).Return(nil)
	repo.EXPECT().CreateLoan(ctx, gomock.Any()).Return(model.Loan{ID: 3, BookID: 1, UserID: 2, LoanDate: today()}, nil)

	_, err := svc.CreateLoan(ctx, model.CreateLoan{BookID: 1, UserID: 2})
	require.NoError(t, err)
	require.Equal(t, []kafka.LoanEventType{kafka.LoanCreated}, pub.types())
}

func TestService_RenewLoan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	returned := date("2024-02-25")

	tests := []struct {
		name      string
		loan      model.Loan
		extraDays int
		wantDate  model.Date
		wantErr   error
	}{
		{
			name:      "ok. shifts loan date",
			loan:      model.Loan{ID: 7, BookID: 1, UserID: 2, LoanDate: date("2024-02-20"), DurationDays: 14},
			extraDays: 7,
			wantDate:  date("2024-02-27"),
		},
		{
			name:      "ok. return date untouched",
			loan:      model.Loan{ID: 7, BookID: 1, UserID: 2, LoanDate: date("2024-01-01"), ReturnDate: &returned, DurationDays: 14},
			extraDays: 3,
			wantDate:  date("2024-01-04"),
		},
		{
			name:      "err. overdue",
			loan:      model.Loan{ID: 7, BookID: 1, UserID: 2, LoanDate: date("2024-02-01"), DurationDays: 14},
			extraDays: 7,
			wantErr:   errs.ErrLoanOverdue,
		},
		{
			name:      "err. non positive extension",
			loan:      model.Loan{ID: 7, BookID: 1, UserID: 2, LoanDate: date("2024-02-20"), DurationDays: 14},
			extraDays: 0,
			wantErr:   errs.ErrInvalidArgument,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pub := &recordingPublisher{}
			svc, repo := newService(t, service.WithPublisher(pub))

			repo.EXPECT().GetLoanForUpdate(ctx, tt.loan.ID).Return(tt.loan, nil)
			if tt.wantErr == nil {
				updated := tt.loan
				updated.LoanDate = tt.wantDate
				repo.EXPECT().UpdateLoan(ctx, updated).Return(nil)
				repo.EXPECT().GetLoanView(ctx, tt.loan.ID).Return(model.LoanView{
					ID: tt.loan.ID, BookID: 1, UserID: 2, LoanDate: tt.wantDate,
					ReturnDate: tt.loan.ReturnDate, DurationDays: 14,
				}, nil)
			}

			got, err := svc.RenewLoan(ctx, tt.loan.ID, tt.extraDays)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantDate, got.LoanDate)
			require.Equal(t, tt.loan.ReturnDate, got.ReturnDate)
			require.Equal(t, []kafka.LoanEventType{kafka.LoanRenewed}, pub.types())
		})
	}
}

func TestService_RenewLoan_NotFound(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)
	repo.EXPECT().GetLoanForUpdate(gomock.Any(), int64(404)).Return(model.Loan{}, errs.ErrNotFound)

	_, err := svc.RenewLoan(context.Background(), 404, 3)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_ReturnLoan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	earlier := date("2024-02-01")

	for _, prior := range []*model.Date{nil, &earlier} {
		prior := prior
		t.Run("prior return "+fmtDate(prior), func(t *testing.T) {
			t.Parallel()
			svc, repo := newService(t)
			loan := model.Loan{ID: 4, BookID: 8, UserID: 2, LoanDate: date("2024-01-20"), ReturnDate: prior, DurationDays: 14}
			td := today()
			returned := loan
			returned.ReturnDate = &td

			gomock.InOrder(
				repo.EXPECT().GetLoanForUpdate(ctx, loan.ID).Return(loan, nil),
				repo.EXPECT().SetBookState(ctx, loan.BookID, model.BookAvailable).Return(nil),
				repo.EXPECT().UpdateLoan(ctx, returned).Return(nil),
				repo.EXPECT().GetLoanView(ctx, loan.ID).Return(model.LoanView{
					ID: loan.ID, BookID: loan.BookID, UserID: loan.UserID, LoanDate: loan.LoanDate,
					ReturnDate: &td, DurationDays: 14,
				}, nil),
			)

			got, err := svc.ReturnLoan(ctx, loan.ID)
			require.NoError(t, err)
			require.NotNil(t, got.ReturnDate)
			require.Equal(t, today(), *got.ReturnDate)
			require.False(t, got.Overdue)
		})
	}
}

func fmtDate(d *model.Date) string {
	if d == nil {
		return "none"
	}
	return d.String()
}

func TestService_DeleteLoan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		pub := &recordingPublisher{}
		svc, repo := newService(t, service.WithPublisher(pub))
		loan := model.Loan{ID: 4, BookID: 8, UserID: 2, LoanDate: date("2024-02-20"), DurationDays: 14}
		gomock.InOrder(
			repo.EXPECT().GetLoanForUpdate(ctx, loan.ID).Return(loan, nil),
			repo.EXPECT().SetBookState(ctx, loan.BookID, model.BookAvailable).Return(nil),
			repo.EXPECT().DeleteLoan(ctx, loan.ID).Return(nil),
		)
		require.NoError(t, svc.DeleteLoan(ctx, loan.ID))
		require.Equal(t, []kafka.LoanEventType{kafka.LoanDeleted}, pub.types())
	})

	t.Run("err. not found", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetLoanForUpdate(ctx, int64(4)).Return(model.Loan{}, errs.ErrNotFound)
		require.ErrorIs(t, svc.DeleteLoan(ctx, 4), errs.ErrNotFound)
	})
}

func TestService_UpdateLoan(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	loan := model.Loan{ID: 4, BookID: 8, UserID: 2, LoanDate: date("2024-02-20"), DurationDays: 14}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		moved := loan
		moved.BookID, moved.UserID = 9, 3
		repo.EXPECT().GetLoanForUpdate(ctx, loan.ID).Return(loan, nil)
		repo.EXPECT().GetBook(ctx, int64(9)).Return(model.BookDetail{Book: model.Book{ID: 9}}, nil)
		repo.EXPECT().GetUser(ctx, int64(3)).Return(model.User{ID: 3}, nil)
		repo.EXPECT().UpdateLoan(ctx, moved).Return(nil)
		repo.EXPECT().GetLoanView(ctx, loan.ID).Return(model.LoanView{ID: 4, BookID: 9, UserID: 3, LoanDate: loan.LoanDate, DurationDays: 14}, nil)

		got, err := svc.UpdateLoan(ctx, loan.ID, model.UpdateLoan{BookID: 9, UserID: 3})
		require.NoError(t, err)
		require.Equal(t, int64(9), got.BookID)
	})

	t.Run("err. unknown user", func(t *testing.T) {
		t.Parallel()
		svc, repo := newService(t)
		repo.EXPECT().GetLoanForUpdate(ctx, loan.ID).Return(loan, nil)
		repo.EXPECT().GetBook(ctx, int64(9)).Return(model.BookDetail{Book: model.Book{ID: 9}}, nil)
		repo.EXPECT().GetUser(ctx, int64(3)).Return(model.User{}, errs.ErrNotFound)

		_, err := svc.UpdateLoan(ctx, loan.ID, model.UpdateLoan{BookID: 9, UserID: 3})
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestService_ListLoans_EvaluatesOverdue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, repo := newService(t)
	userID := int64(2)
	page := model.NewPageRequest(1, 20)

	repo.EXPECT().ListLoans(ctx, model.LoanFilter{UserID: &userID}, page).Return(model.ListLoans{
		Paging: page.Paging(2),
		Items: []model.LoanView{
			{ID: 1, LoanDate: date("2024-02-01"), DurationDays: 14},
			{ID: 2, LoanDate: date("2024-02-20"), DurationDays: 14},
		},
	}, nil)

	got, err := svc.ListLoans(ctx, model.LoanFilter{UserID: &userID}, page)
	require.NoError(t, err)
	require.True(t, got.Items[0].Overdue)
	require.False(t, got.Items[1].Overdue)
}
