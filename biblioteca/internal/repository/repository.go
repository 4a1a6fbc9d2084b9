package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	// Tx runs fn inside a single transaction. Calls on a transactional
	// repository join the running transaction.
	Tx(ctx context.Context, fn func(repo Repository) error) error

	ListAuthors(ctx context.Context, filter model.AuthorFilter, page model.PageRequest) (model.ListAuthors, error)
	GetAuthor(ctx context.Context, id int64) (model.Author, error)
	CreateAuthor(ctx context.Context, author model.Author) (model.Author, error)
	UpdateAuthor(ctx context.Context, author model.Author) error
	DeleteAuthor(ctx context.Context, id int64) error

	ListBooks(ctx context.Context, filter model.BookFilter, page model.PageRequest) (model.ListBooks, error)
	GetBook(ctx context.Context, id int64) (model.BookDetail, error)
	GetBookForUpdate(ctx context.Context, id int64) (model.Book, error)
	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, book model.Book) error
	SetBookState(ctx context.Context, id int64, state model.BookState) error
	DeleteBook(ctx context.Context, id int64) error

	ListUsers(ctx context.Context, filter model.UserFilter, page model.PageRequest) (model.ListUsers, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	UpdateUser(ctx context.Context, user model.User) error
	SetUserRole(ctx context.Context, id int64, role model.Role) error
	SetUserAvatar(ctx context.Context, id int64, path string) error
	DeleteUser(ctx context.Context, id int64) error

	ListLoans(ctx context.Context, filter model.LoanFilter, page model.PageRequest) (model.ListLoans, error)
	GetLoanView(ctx context.Context, id int64) (model.LoanView, error)
	GetLoanForUpdate(ctx context.Context, id int64) (model.Loan, error)
	UserLoans(ctx context.Context, userID int64) ([]model.Loan, error)
	CreateLoan(ctx context.Context, loan model.Loan) (model.Loan, error)
	UpdateLoan(ctx context.Context, loan model.Loan) error
	DeleteLoan(ctx context.Context, id int64) error

	RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error
	GetRevokedToken(ctx context.Context, jti string) (model.RevokedToken, error)
	PurgeRevokedTokens(ctx context.Context, before time.Time) (int64, error)
}

type repository struct {
	db  *sqlx.DB
	ext sqlx.ExtContext
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		ext: db,
		log: log.Named("repo"),
	}, nil
}

const (
	authorsTableName       = `authors`
	booksTableName         = `books`
	usersTableName         = `users`
	loansTableName         = `loans`
	revokedTokensTableName = `revoked_tokens`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) Tx(ctx context.Context, fn func(repo Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "BeginTxx")
	}
	txRepo := &repository{ext: tx, log: r.log}
	if err := fn(txRepo); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Error("tx.Rollback", zap.Error(rbErr))
		}
		return err
	}
	return errors.Wrap(tx.Commit(), "tx.Commit")
}

func (r *repository) get(ctx context.Context, dest any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	if err := sqlx.GetContext(ctx, r.ext, dest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errs.ErrNotFound
		}
		r.log.Error("get", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return translate(err)
	}
	return nil
}

func (r *repository) list(ctx context.Context, dest any, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	r.log.Debug("list", zap.String("query", query), zap.Any("args", args))
	if err := sqlx.SelectContext(ctx, r.ext, dest, query, args...); err != nil {
		return translate(err)
	}
	return nil
}

func (r *repository) count(ctx context.Context, b sq.SelectBuilder) (int, error) {
	var total int
	if err := r.get(ctx, &total, b); err != nil {
		return 0, err
	}
	return total, nil
}

// exec runs a write and maps "no rows affected" to ErrNotFound.
func (r *repository) exec(ctx context.Context, b sq.Sqlizer) error {
	_, err := r.execCount(ctx, b, true)
	return err
}

func (r *repository) execCount(ctx context.Context, b sq.Sqlizer, mustAffect bool) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	res, err := r.ext.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Error("exec", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return 0, translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if mustAffect && n == 0 {
		return 0, errs.ErrNotFound
	}
	return n, nil
}

func translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return errors.Wrap(errs.ErrDuplicate, pgErr.ConstraintName)
	case pgerrcode.ForeignKeyViolation:
		return errors.Wrap(errs.ErrInUse, pgErr.ConstraintName)
	}
	return err
}

func contains(s string) string {
	return "%" + s + "%"
}
