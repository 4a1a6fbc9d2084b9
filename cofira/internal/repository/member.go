package repository

import (
	"context"

	"github.com/Astemirdum/biblioteca-service/cofira/internal/model"
	sq "github.com/Masterminds/squirrel"
)

var (
	planColumns      = []string{"id", "precio", "subscripcion_activa", "usuario_id"}
	objetivosColumns = []string{"id", "lista_objetivos", "usuario_id"}
)

func (r *repository) ListPlanes(ctx context.Context) ([]model.Plan, error) {
	planes := make([]model.Plan, 0)
	if err := r.list(ctx, &planes, qb.Select(planColumns...).From(planesTableName).OrderBy("id")); err != nil {
		return nil, err
	}
	return planes, nil
}

func (r *repository) GetPlan(ctx context.Context, id int64) (model.Plan, error) {
	return r.getPlan(ctx, byID(id))
}

func (r *repository) GetPlanByUsuario(ctx context.Context, usuarioID int64) (model.Plan, error) {
	return r.getPlan(ctx, sq.Eq{"usuario_id": usuarioID})
}

func (r *repository) getPlan(ctx context.Context, where sq.Eq) (model.Plan, error) {
	var plan model.Plan
	if err := r.get(ctx, &plan, qb.Select(planColumns...).From(planesTableName).Where(where)); err != nil {
		return model.Plan{}, err
	}
	return plan, nil
}

func (r *repository) CreatePlan(ctx context.Context, plan model.Plan) (model.Plan, error) {
	q := qb.Insert(planesTableName).
		Columns("precio", "subscripcion_activa", "usuario_id").
		Values(plan.Precio, plan.SubscripcionActiva, plan.UsuarioID).
		Suffix("RETURNING id")
	if err := r.get(ctx, &plan.ID, q); err != nil {
		return model.Plan{}, err
	}
	return plan, nil
}

func (r *repository) UpdatePlan(ctx context.Context, plan model.Plan) error {
	return r.exec(ctx, qb.Update(planesTableName).
		Set("precio", plan.Precio).
		Set("subscripcion_activa", plan.SubscripcionActiva).
		Where(byID(plan.ID)))
}

func (r *repository) DeletePlan(ctx context.Context, id int64) error {
	return r.exec(ctx, qb.Delete(planesTableName).Where(byID(id)))
}

func (r *repository) ListObjetivos(ctx context.Context) ([]model.Objetivos, error) {
	objetivos := make([]model.Objetivos, 0)
	if err := r.list(ctx, &objetivos, qb.Select(objetivosColumns...).From(objetivosTableName).OrderBy("id")); err != nil {
		return nil, err
	}
	return objetivos, nil
}

func (r *repository) GetObjetivos(ctx context.Context, id int64) (model.Objetivos, error) {
	return r.getObjetivos(ctx, byID(id))
}

func (r *repository) GetObjetivosByUsuario(ctx context.Context, usuarioID int64) (model.Objetivos, error) {
	return r.getObjetivos(ctx, sq.Eq{"usuario_id": usuarioID})
}

func (r *repository) getObjetivos(ctx context.Context, where sq.Eq) (model.Objetivos, error) {
	var objetivos model.Objetivos
	if err := r.get(ctx, &objetivos, qb.Select(objetivosColumns...).From(objetivosTableName).Where(where)); err != nil {
		return model.Objetivos{}, err
	}
	return objetivos, nil
}

func (r *repository) CreateObjetivos(ctx context.Context, objetivos model.Objetivos) (model.Objetivos, error) {
	q := qb.Insert(objetivosTableName).
		Columns("lista_objetivos", "usuario_id").
		Values(objetivos.ListaObjetivos, objetivos.UsuarioID).
		Suffix("RETURNING id")
	if err := r.get(ctx, &objetivos.ID, q); err != nil {
		return model.Objetivos{}, err
	}
	return objetivos, nil
}

func (r *repository) UpdateObjetivos(ctx context.Context, objetivos model.Objetivos) error {
	return r.exec(ctx, qb.Update(objetivosTableName).
		Set("lista_objetivos", objetivos.ListaObjetivos).
		Where(byID(objetivos.ID)))
}

func (r *repository) DeleteObjetivos(ctx context.Context, id int64) error {
	return r.exec(ctx, qb.Delete(objetivosTableName).Where(byID(id)))
}
