package repository

import (
	"context"

	"github.com/Astemirdum/biblioteca-service/cofira/internal/model"
	sq "github.com/Masterminds/squirrel"
)

var (
	alimentoColumns  = []string{"id", "nombre", "ingredientes"}
	ejercicioColumns = []string{
		"id", "nombre_ejercicio", "series", "repeticiones",
		"tiempo_descanso_segundos", "descripcion", "grupo_muscular", "sala_id",
	}
	salaColumns = []string{"id", "fecha_inicio", "fecha_fin"}
)

func (r *repository) ListAlimentos(ctx context.Context) ([]model.Alimento, error) {
	alimentos := make([]model.Alimento, 0)
	q := qb.Select(alimentoColumns...).From(alimentosTableName).OrderBy("id")
	if err := r.list(ctx, &alimentos, q); err != nil {
		return nil, err
	}
	return alimentos, nil
}

func (r *repository) GetAlimento(ctx context.Context, id int64) (model.Alimento, error) {
	var alimento model.Alimento
	q := qb.Select(alimentoColumns...).From(alimentosTableName).Where(byID(id))
	if err := r.get(ctx, &alimento, q); err != nil {
		return model.Alimento{}, err
	}
	return alimento, nil
}

func (r *repository) CreateAlimento(ctx context.Context, alimento model.Alimento) (model.Alimento, error) {
	q := qb.Insert(alimentosTableName).
		Columns("nombre", "ingredientes").
		Values(alimento.Nombre, alimento.Ingredientes).
		Suffix("RETURNING id")
	if err := r.get(ctx, &alimento.ID, q); err != nil {
		return model.Alimento{}, err
	}
	return alimento, nil
}

func (r *repository) UpdateAlimento(ctx context.Context, alimento model.Alimento) error {
	return r.exec(ctx, qb.Update(alimentosTableName).
		Set("nombre", alimento.Nombre).
		Set("ingredientes", alimento.Ingredientes).
		Where(byID(alimento.ID)))
}

func (r *repository) DeleteAlimento(ctx context.Context, id int64) error {
	return r.exec(ctx, qb.Delete(alimentosTableName).Where(byID(id)))
}

func (r *repository) ListEjercicios(ctx context.Context) ([]model.Ejercicio, error) {
	return r.listEjercicios(ctx, nil)
}

func (r *repository) ListEjerciciosBySala(ctx context.Context, salaID int64) ([]model.Ejercicio, error) {
	return r.listEjercicios(ctx, sq.Eq{"sala_id": salaID})
}

func (r *repository) listEjercicios(ctx context.Context, where sq.Sqlizer) ([]model.Ejercicio, error) {
	q := qb.Select(ejercicioColumns...).From(ejerciciosTableName).OrderBy("id")
	if where != nil {
		q = q.Where(where)
	}
	ejercicios := make([]model.Ejercicio, 0)
	if err := r.list(ctx, &ejercicios, q); err != nil {
		return nil, err
	}
	return ejercicios, nil
}

func (r *repository) GetEjercicio(ctx context.Context, id int64) (model.Ejercicio, error) {
	var ejercicio model.Ejercicio
	q := qb.Select(ejercicioColumns...).From(ejerciciosTableName).Where(byID(id))
	if err := r.get(ctx, &ejercicio, q); err != nil {
		return model.Ejercicio{}, err
	}
	return ejercicio, nil
}

func (r *repository) CreateEjercicio(ctx context.Context, e model.Ejercicio) (model.Ejercicio, error) {
	q := qb.Insert(ejerciciosTableName).
		Columns("nombre_ejercicio", "series", "repeticiones",
			"tiempo_descanso_segundos", "descripcion", "grupo_muscular", "sala_id").
		Values(e.NombreEjercicio, e.Series, e.Repeticiones,
			e.TiempoDescansoSegundos, e.Descripcion, e.GrupoMuscular, e.SalaID).
		Suffix("RETURNING id")
	if err := r.get(ctx, &e.ID, q); err != nil {
		return model.Ejercicio{}, err
	}
	return e, nil
}

func (r *repository) UpdateEjercicio(ctx context.Context, e model.Ejercicio) error {
	return r.exec(ctx, qb.Update(ejerciciosTableName).
		Set("nombre_ejercicio", e.NombreEjercicio).
		Set("series", e.Series).
		Set("repeticiones", e.Repeticiones).
		Set("tiempo_descanso_segundos", e.TiempoDescansoSegundos).
		Set("descripcion", e.Descripcion).
		Set("grupo_muscular", e.GrupoMuscular).
		Where(byID(e.ID)))
}

func (r *repository) DeleteEjercicio(ctx context.Context, id int64) error {
	return r.exec(ctx, qb.Delete(ejerciciosTableName).Where(byID(id)))
}

func (r *repository) ListSalas(ctx context.Context) ([]model.Sala, error) {
	salas := make([]model.Sala, 0)
	if err := r.list(ctx, &salas, qb.Select(salaColumns...).From(salasTableName).OrderBy("id")); err != nil {
		return nil, err
	}
	return salas, nil
}

func (r *repository) GetSala(ctx context.Context, id int64) (model.Sala, error) {
	var sala model.Sala
	if err := r.get(ctx, &sala, qb.Select(salaColumns...).From(salasTableName).Where(byID(id))); err != nil {
		return model.Sala{}, err
	}
	return sala, nil
}

func (r *repository) CreateSala(ctx context.Context, sala model.Sala) (model.Sala, error) {
	q := qb.Insert(salasTableName).
		Columns("fecha_inicio", "fecha_fin").
		Values(sala.FechaInicio, sala.FechaFin).
		Suffix("RETURNING id")
	if err := r.get(ctx, &sala.ID, q); err != nil {
		return model.Sala{}, err
	}
	return sala, nil
}

func (r *repository) UpdateSala(ctx context.Context, sala model.Sala) error {
	return r.exec(ctx, qb.Update(salasTableName).
		Set("fecha_inicio", sala.FechaInicio).
		Set("fecha_fin", sala.FechaFin).
		Where(byID(sala.ID)))
}

// DeleteSala detaches the room's exercises instead of deleting them.
func (r *repository) DeleteSala(ctx context.Context, id int64) error {
	return r.exec(ctx, qb.Delete(salasTableName).Where(byID(id)))
}
