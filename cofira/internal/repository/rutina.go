package repository

import (
	"context"

	"github.com/Astemirdum/biblioteca-service/cofira/internal/model"
	sq "github.com/Masterminds/squirrel"
)

func (r *repository) ListRutinasEjercicio(ctx context.Context) ([]model.RutinaEjercicio, error) {
	rutinas := make([]model.RutinaEjercicio, 0)
	q := qb.Select("id", "fecha_inicio").From(rutinasEjercicioTableName).OrderBy("id")
	if err := r.list(ctx, &rutinas, q); err != nil {
		return nil, err
	}
	if err := r.attachDiasEjercicio(ctx, rutinas); err != nil {
		return nil, err
	}
	return rutinas, nil
}

func (r *repository) GetRutinaEjercicio(ctx context.Context, id int64) (model.RutinaEjercicio, error) {
	var rutina model.RutinaEjercicio
	q := qb.Select("id", "fecha_inicio").From(rutinasEjercicioTableName).Where(byID(id))
	if err := r.get(ctx, &rutina, q); err != nil {
		return model.RutinaEjercicio{}, err
	}
	rutinas := []model.RutinaEjercicio{rutina}
	if err := r.attachDiasEjercicio(ctx, rutinas); err != nil {
		return model.RutinaEjercicio{}, err
	}
	return rutinas[0], nil
}

func (r *repository) attachDiasEjercicio(ctx context.Context, rutinas []model.RutinaEjercicio) error {
	if len(rutinas) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(rutinas))
	for _, rutina := range rutinas {
		ids = append(ids, rutina.ID)
	}
	var dias []model.DiaEjercicio
	q := qb.Select("id", "rutina_id", "dia_semana").
		From(diasEjercicioTableName).
		Where(sq.Eq{"rutina_id": ids}).
		OrderBy("rutina_id", "id")
	if err := r.list(ctx, &dias, q); err != nil {
		return err
	}

	diaIDs := make([]int64, 0, len(dias))
	for _, dia := range dias {
		diaIDs = append(diaIDs, dia.ID)
	}
	ejercicios := make(map[int64][]model.Ejercicio, len(dias))
	if len(diaIDs) > 0 {
		var rows []struct {
			DiaID int64 `db:"dia_id"`
			model.Ejercicio
		}
		q := qb.Select("de.dia_id", "e.id", "e.nombre_ejercicio", "e.series", "e.repeticiones",
			"e.tiempo_descanso_segundos", "e.descripcion", "e.grupo_muscular", "e.sala_id").
			From(diaEjerciciosTableName + " de").
			Join(ejerciciosTableName + " e on e.id = de.ejercicio_id").
			Where(sq.Eq{"de.dia_id": diaIDs}).
			OrderBy("de.dia_id", "de.position")
		if err := r.list(ctx, &rows, q); err != nil {
			return err
		}
		for _, row := range rows {
			ejercicios[row.DiaID] = append(ejercicios[row.DiaID], row.Ejercicio)
		}
	}

	byRutina := make(map[int64][]model.DiaEjercicio, len(rutinas))
	for _, dia := range dias {
		dia.Ejercicios = ejercicios[dia.ID]
		if dia.Ejercicios == nil {
			dia.Ejercicios = []model.Ejercicio{}
		}
		byRutina[dia.RutinaID] = append(byRutina[dia.RutinaID], dia)
	}
	for i := range rutinas {
		rutinas[i].DiasEjercicio = byRutina[rutinas[i].ID]
		if rutinas[i].DiasEjercicio == nil {
			rutinas[i].DiasEjercicio = []model.DiaEjercicio{}
		}
	}
	return nil
}

// CreateRutinaEjercicio stores the routine with its days. Only the ids of the
// day exercises are read; run it inside Tx.
func (r *repository) CreateRutinaEjercicio(ctx context.Context, rutina model.RutinaEjercicio) (model.RutinaEjercicio, error) {
	q := qb.Insert(rutinasEjercicioTableName).
		Columns("fecha_inicio").
		Values(rutina.FechaInicio).
		Suffix("RETURNING id")
	if err := r.get(ctx, &rutina.ID, q); err != nil {
		return model.RutinaEjercicio{}, err
	}
	for i := range rutina.DiasEjercicio {
		dia := &rutina.DiasEjercicio[i]
		dia.RutinaID = rutina.ID
		q := qb.Insert(diasEjercicioTableName).
			Columns("rutina_id", "dia_semana").
			Values(dia.RutinaID, dia.DiaSemana).
			Suffix("RETURNING id")
		if err := r.get(ctx, &dia.ID, q); err != nil {
			return model.RutinaEjercicio{}, err
		}
		if len(dia.Ejercicios) == 0 {
			continue
		}
		ins := qb.Insert(diaEjerciciosTableName).Columns("dia_id", "position", "ejercicio_id")
		for pos, e := range dia.Ejercicios {
			ins = ins.Values(dia.ID, pos, e.ID)
		}
		if err := r.exec(ctx, ins); err != nil {
			return model.RutinaEjercicio{}, err
		}
	}
	return rutina, nil
}

func (r *repository) DeleteRutinaEjercicio(ctx context.Context, id int64) error {
	return r.exec(ctx, qb.Delete(rutinasEjercicioTableName).Where(byID(id)))
}

var diaAlimentacionColumns = []string{
	"id", "rutina_id", "dia_semana", "desayuno", "almuerzo", "comida", "merienda", "cena",
}

func (r *repository) ListRutinasAlimentacion(ctx context.Context) ([]model.RutinaAlimentacion, error) {
	rutinas := make([]model.RutinaAlimentacion, 0)
	q := qb.Select("id", "fecha_inicio").From(rutinasAlimentacionTableName).OrderBy("id")
	if err := r.list(ctx, &rutinas, q); err != nil {
		return nil, err
	}
	if err := r.attachDiasAlimentacion(ctx, rutinas); err != nil {
		return nil, err
	}
	return rutinas, nil
}

func (r *repository) GetRutinaAlimentacion(ctx context.Context, id int64) (model.RutinaAlimentacion, error) {
	var rutina model.RutinaAlimentacion
	q := qb.Select("id", "fecha_inicio").From(rutinasAlimentacionTableName).Where(byID(id))
	if err := r.get(ctx, &rutina, q); err != nil {
		return model.RutinaAlimentacion{}, err
	}
	rutinas := []model.RutinaAlimentacion{rutina}
	if err := r.attachDiasAlimentacion(ctx, rutinas); err != nil {
		return model.RutinaAlimentacion{}, err
	}
	return rutinas[0], nil
}

func (r *repository) attachDiasAlimentacion(ctx context.Context, rutinas []model.RutinaAlimentacion) error {
	if len(rutinas) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(rutinas))
	for _, rutina := range rutinas {
		ids = append(ids, rutina.ID)
	}
	var dias []model.DiaAlimentacion
	q := qb.Select(diaAlimentacionColumns...).
		From(diasAlimentacionTableName).
		Where(sq.Eq{"rutina_id": ids}).
		OrderBy("rutina_id", "id")
	if err := r.list(ctx, &dias, q); err != nil {
		return err
	}
	byRutina := make(map[int64][]model.DiaAlimentacion, len(rutinas))
	for _, dia := range dias {
		byRutina[dia.RutinaID] = append(byRutina[dia.RutinaID], dia)
	}
	for i := range rutinas {
		rutinas[i].DiasAlimentacion = byRutina[rutinas[i].ID]
		if rutinas[i].DiasAlimentacion == nil {
			rutinas[i].DiasAlimentacion = []model.DiaAlimentacion{}
		}
	}
	return nil
}

func (r *repository) CreateRutinaAlimentacion(ctx context.Context, rutina model.RutinaAlimentacion) (model.RutinaAlimentacion, error) {
	q := qb.Insert(rutinasAlimentacionTableName).
		Columns("fecha_inicio").
		Values(rutina.FechaInicio).
		Suffix("RETURNING id")
	if err := r.get(ctx, &rutina.ID, q); err != nil {
		return model.RutinaAlimentacion{}, err
	}
	for i := range rutina.DiasAlimentacion {
		dia := &rutina.DiasAlimentacion[i]
		dia.RutinaID = rutina.ID
		q := qb.Insert(diasAlimentacionTableName).
			Columns(diaAlimentacionColumns[1:]...).
			Values(dia.RutinaID, dia.DiaSemana, dia.Desayuno, dia.Almuerzo, dia.Comida, dia.Merienda, dia.Cena).
			Suffix("RETURNING id")
		if err := r.get(ctx, &dia.ID, q); err != nil {
			return model.RutinaAlimentacion{}, err
		}
	}
	return rutina, nil
}

func (r *repository) DeleteRutinaAlimentacion(ctx context.Context, id int64) error {
	return r.exec(ctx, qb.Delete(rutinasAlimentacionTableName).Where(byID(id)))
}
