package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockRepo(t *testing.T) (*repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := NewRepository(sqlx.NewDb(db, "sqlmock"), zap.NewNop())
	require.NoError(t, err)
	return repo, mock
}

func q(s string) string { return regexp.QuoteMeta(s) }

func TestRepository_GetAuthor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mock    func(m sqlmock.Sqlmock)
		want    model.Author
		wantErr error
	}{
		{
			name: "ok",
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(q("SELECT id, name, nationality FROM authors WHERE id = $1")).
					WithArgs(int64(1)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "nationality"}).
						AddRow(1, "Gabriel García Márquez", "colombiana"))
			},
			want: model.Author{ID: 1, Name: "Gabriel García Márquez", Nationality: "colombiana"},
		},
		{
			name: "err. not found",
			mock: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(q("SELECT id, name, nationality FROM authors WHERE id = $1")).
					WithArgs(int64(1)).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "nationality"}))
			},
			wantErr: errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo, mock := newMockRepo(t)
			tt.mock(mock)

			got, err := repo.GetAuthor(context.Background(), 1)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.want, got)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListAuthorsWithBooks(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(q("SELECT count(*) FROM authors WHERE name ILIKE $1")).
		WithArgs("%gar%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(q("SELECT id, name, nationality FROM authors WHERE name ILIKE $1 ORDER BY id")).
		WithArgs("%gar%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "nationality"}).
			AddRow(1, "Gabriel García Márquez", "colombiana").
			AddRow(2, "Edgar Allan Poe", "estadounidense"))
	mock.ExpectQuery(q("SELECT author_id, title FROM books WHERE author_id IN ($1,$2)")).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"author_id", "title"}).
			AddRow(1, "Cien años de soledad").
			AddRow(1, "El coronel no tiene quien le escriba"))

	got, err := repo.ListAuthors(context.Background(), model.AuthorFilter{Name: "gar", WithBooks: true}, model.NewPageRequest(1, 10))
	require.NoError(t, err)
	require.Equal(t, model.ListAuthors{
		Paging: model.Paging{Page: 1, PageSize: 10, TotalElements: 2},
		Items: []model.Author{
			{ID: 1, Name: "Gabriel García Márquez", Nationality: "colombiana", Books: []string{"Cien años de soledad", "El coronel no tiene quien le escriba"}},
			{ID: 2, Name: "Edgar Allan Poe", Nationality: "estadounidense", Books: []string{}},
		},
	}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListBooks(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(q("SELECT count(*) FROM books b WHERE b.title ILIKE $1 AND lower(b.genre) = lower($2)")).
		WithArgs("%soledad%", "Novela").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(q("SELECT b.id, b.title, b.genre, b.publication_year, b.state, b.author_id, a.name as author_name FROM books b JOIN authors a on a.id = b.author_id WHERE b.title ILIKE $1 AND lower(b.genre) = lower($2) ORDER BY b.id")).
		WithArgs("%soledad%", "Novela").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "genre", "publication_year", "state", "author_id", "author_name"}).
			AddRow(3, "Cien años de soledad", "novela", "1967", "prestado", 1, "Gabriel García Márquez"))

	got, err := repo.ListBooks(context.Background(), model.BookFilter{Title: "soledad", Genre: "Novela"}, model.NewPageRequest(0, 0))
	require.NoError(t, err)
	require.Equal(t, model.ListBooks{
		Paging: model.Paging{Page: 1, PageSize: model.DefaultPageSize, TotalElements: 1},
		Items: []model.BookDetail{{
			Book: model.Book{
				ID: 3, Title: "Cien años de soledad", Genre: "novela", PublicationYear: "1967",
				State: model.BookOnLoan, AuthorID: 1,
			},
			AuthorName: "Gabriel García Márquez",
		}},
	}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Tx(t *testing.T) {
	t.Parallel()

	t.Run("commit", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(q("SELECT id, title, genre, publication_year, state, author_id FROM books WHERE id = $1 FOR UPDATE")).
			WithArgs(int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "genre", "publication_year", "state", "author_id"}).
				AddRow(3, "Rayuela", "novela", "1963", "disponible", 4))
		mock.ExpectExec(q("UPDATE books SET state = $1 WHERE id = $2")).
			WithArgs(model.BookOnLoan, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Tx(context.Background(), func(tx Repository) error {
			book, err := tx.GetBookForUpdate(context.Background(), 3)
			if err != nil {
				return err
			}
			require.Equal(t, model.BookAvailable, book.State)
			return tx.SetBookState(context.Background(), book.ID, model.BookOnLoan)
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(q("UPDATE books SET state = $1 WHERE id = $2")).
			WithArgs(model.BookAvailable, int64(9)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Tx(context.Background(), func(tx Repository) error {
			return tx.SetBookState(context.Background(), 9, model.BookAvailable)
		})
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_CreateLoan(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	today := model.NewDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))

	mock.ExpectQuery(q("INSERT INTO loans (book_id,user_id,loan_date,return_date,duration_days) VALUES ($1,$2,$3,$4,$5) RETURNING id")).
		WithArgs(int64(3), int64(5), sqlmock.AnyArg(), nil, model.LoanDurationDays).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	got, err := repo.CreateLoan(context.Background(), model.Loan{
		BookID: 3, UserID: 5, LoanDate: today, DurationDays: model.LoanDurationDays,
	})
	require.NoError(t, err)
	require.Equal(t, int64(11), got.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UserLoans(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	loanDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	returnDate := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(q("SELECT id, book_id, user_id, loan_date, return_date, duration_days FROM loans WHERE user_id = $1 ORDER BY id")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "book_id", "user_id", "loan_date", "return_date", "duration_days"}).
			AddRow(1, 3, 5, loanDate, returnDate, 14).
			AddRow(2, 4, 5, loanDate, nil, 14))

	got, err := repo.UserLoans(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.NotNil(t, got[0].ReturnDate)
	require.Equal(t, "2024-01-05", got[0].ReturnDate.String())
	require.Nil(t, got[1].ReturnDate)
	require.Equal(t, "2024-01-01", got[1].LoanDate.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ErrorTranslation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{name: "unique violation", code: pgerrcode.UniqueViolation, wantErr: errs.ErrDuplicate},
		{name: "foreign key violation", code: pgerrcode.ForeignKeyViolation, wantErr: errs.ErrInUse},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			repo, mock := newMockRepo(t)
			mock.ExpectExec(q("DELETE FROM users WHERE id = $1")).
				WithArgs(int64(5)).
				WillReturnError(&pgconn.PgError{Code: tt.code, ConstraintName: "c"})

			err := repo.DeleteUser(context.Background(), 5)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("other errors pass through", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)
		boom := errors.New("conn reset")
		mock.ExpectExec(q("DELETE FROM users WHERE id = $1")).
			WithArgs(int64(5)).
			WillReturnError(boom)

		require.ErrorIs(t, repo.DeleteUser(context.Background(), 5), boom)
	})
}

func TestRepository_RevokedTokens(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	exp := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(q("INSERT INTO revoked_tokens (jti,expires_at) VALUES ($1,$2) ON CONFLICT (jti) DO NOTHING")).
		WithArgs("jti-1", exp).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(q("DELETE FROM revoked_tokens WHERE expires_at < $1")).
		WithArgs(exp).
		WillReturnResult(sqlmock.NewResult(0, 4))

	require.NoError(t, repo.RevokeToken(context.Background(), "jti-1", exp))
	n, err := repo.PurgeRevokedTokens(context.Background(), exp)
	require.NoError(t, err)
	require.Equal(t, int64(4), n)
	require.NoError(t, mock.ExpectationsWereMet())
}
