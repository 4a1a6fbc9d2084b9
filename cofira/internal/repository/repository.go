package repository

import (
	"context"
	"database/sql"

	"github.com/Astemirdum/biblioteca-service/cofira/internal/errs"
	"github.com/Astemirdum/biblioteca-service/cofira/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	Tx(ctx context.Context, fn func(repo Repository) error) error

	ListAlimentos(ctx context.Context) ([]model.Alimento, error)
	GetAlimento(ctx context.Context, id int64) (model.Alimento, error)
	CreateAlimento(ctx context.Context, alimento model.Alimento) (model.Alimento, error)
	UpdateAlimento(ctx context.Context, alimento model.Alimento) error
	DeleteAlimento(ctx context.Context, id int64) error

	ListEjercicios(ctx context.Context) ([]model.Ejercicio, error)
	ListEjerciciosBySala(ctx context.Context, salaID int64) ([]model.Ejercicio, error)
	GetEjercicio(ctx context.Context, id int64) (model.Ejercicio, error)
	CreateEjercicio(ctx context.Context, ejercicio model.Ejercicio) (model.Ejercicio, error)
	UpdateEjercicio(ctx context.Context, ejercicio model.Ejercicio) error
	DeleteEjercicio(ctx context.Context, id int64) error

	ListSalas(ctx context.Context) ([]model.Sala, error)
	GetSala(ctx context.Context, id int64) (model.Sala, error)
	CreateSala(ctx context.Context, sala model.Sala) (model.Sala, error)
	UpdateSala(ctx context.Context, sala model.Sala) error
	DeleteSala(ctx context.Context, id int64) error

	ListPlanes(ctx context.Context) ([]model.Plan, error)
	GetPlan(ctx context.Context, id int64) (model.Plan, error)
	GetPlanByUsuario(ctx context.Context, usuarioID int64) (model.Plan, error)
	CreatePlan(ctx context.Context, plan model.Plan) (model.Plan, error)
	UpdatePlan(ctx context.Context, plan model.Plan) error
	DeletePlan(ctx context.Context, id int64) error

	ListObjetivos(ctx context.Context) ([]model.Objetivos, error)
	GetObjetivos(ctx context.Context, id int64) (model.Objetivos, error)
	GetObjetivosByUsuario(ctx context.Context, usuarioID int64) (model.Objetivos, error)
	CreateObjetivos(ctx context.Context, objetivos model.Objetivos) (model.Objetivos, error)
	UpdateObjetivos(ctx context.Context, objetivos model.Objetivos) error
	DeleteObjetivos(ctx context.Context, id int64) error

	ListRutinasEjercicio(ctx context.Context) ([]model.RutinaEjercicio, error)
	GetRutinaEjercicio(ctx context.Context, id int64) (model.RutinaEjercicio, error)
	CreateRutinaEjercicio(ctx context.Context, rutina model.RutinaEjercicio) (model.RutinaEjercicio, error)
	DeleteRutinaEjercicio(ctx context.Context, id int64) error

	ListRutinasAlimentacion(ctx context.Context) ([]model.RutinaAlimentacion, error)
	GetRutinaAlimentacion(ctx context.Context, id int64) (model.RutinaAlimentacion, error)
	CreateRutinaAlimentacion(ctx context.Context, rutina model.RutinaAlimentacion) (model.RutinaAlimentacion, error)
	DeleteRutinaAlimentacion(ctx context.Context, id int64) error
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
	alimentosTableName           = `alimentos`
	ejerciciosTableName          = `ejercicios`
	salasTableName               = `salas`
	planesTableName              = `planes`
	objetivosTableName           = `objetivos`
	rutinasEjercicioTableName    = `rutinas_ejercicio`
	diasEjercicioTableName       = `dias_ejercicio`
	diaEjerciciosTableName       = `dia_ejercicio_ejercicios`
	rutinasAlimentacionTableName = `rutinas_alimentacion`
	diasAlimentacionTableName    = `dias_alimentacion`
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
	if err := fn(&repository{ext: tx, log: r.log}); err != nil {
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

// exec runs a write and maps "no rows affected" to ErrNotFound.
func (r *repository) exec(ctx context.Context, b sq.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	res, err := r.ext.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.Error("exec", zap.String("q", query), zap.Any("args", args), zap.Error(err))
		return translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
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
	case pgerrcode.CheckViolation:
		return errors.Wrap(errs.ErrInvalidArgument, pgErr.ConstraintName)
	}
	return err
}

func byID(id int64) sq.Eq {
	return sq.Eq{"id": id}
}
