package service

import (
	"context"

	"github.com/Astemirdum/biblioteca-service/cofira/internal/errs"
	"github.com/Astemirdum/biblioteca-service/cofira/internal/model"
	"github.com/Astemirdum/biblioteca-service/pkg/validate"
	"github.com/pkg/errors"
)

func (s *Service) ListAlimentos(ctx context.Context) ([]model.Alimento, error) {
	return s.repo.ListAlimentos(ctx)
}

func (s *Service) GetAlimento(ctx context.Context, id int64) (model.Alimento, error) {
	alimento, err := s.repo.GetAlimento(ctx, id)
	return alimento, notFound(err, "alimento", id)
}

func (s *Service) CreateAlimento(ctx context.Context, req model.CreateAlimento) (model.Alimento, error) {
	return s.repo.CreateAlimento(ctx, model.Alimento{
		Nombre:       req.Nombre,
		Ingredientes: req.Ingredientes,
	})
}

func (s *Service) UpdateAlimento(ctx context.Context, id int64, req model.UpdateAlimento) (model.Alimento, error) {
	alimento, err := s.repo.GetAlimento(ctx, id)
	if err != nil {
		return model.Alimento{}, notFound(err, "alimento", id)
	}
	if req.Nombre != nil {
		alimento.Nombre = *req.Nombre
	}
	if req.Ingredientes != nil {
		alimento.Ingredientes = req.Ingredientes
	}
	if err := s.repo.UpdateAlimento(ctx, alimento); err != nil {
		return model.Alimento{}, err
	}
	return alimento, nil
}

func (s *Service) DeleteAlimento(ctx context.Context, id int64) error {
	return notFound(s.repo.DeleteAlimento(ctx, id), "alimento", id)
}

func (s *Service) ListEjercicios(ctx context.Context) ([]model.Ejercicio, error) {
	return s.repo.ListEjercicios(ctx)
}

// ListEjerciciosBySala is empty for an unknown room, not an error.
func (s *Service) ListEjerciciosBySala(ctx context.Context, salaID int64) ([]model.Ejercicio, error) {
	return s.repo.ListEjerciciosBySala(ctx, salaID)
}

func (s *Service) GetEjercicio(ctx context.Context, id int64) (model.Ejercicio, error) {
	ejercicio, err := s.repo.GetEjercicio(ctx, id)
	return ejercicio, notFound(err, "ejercicio", id)
}

func (s *Service) CreateEjercicio(ctx context.Context, req model.CreateEjercicio) (model.Ejercicio, error) {
	if _, err := s.repo.GetSala(ctx, req.SalaID); err != nil {
		return model.Ejercicio{}, notFound(err, "sala", req.SalaID)
	}
	salaID := req.SalaID
	return s.repo.CreateEjercicio(ctx, model.Ejercicio{
		NombreEjercicio:        req.NombreEjercicio,
		Series:                 req.Series,
		Repeticiones:           req.Repeticiones,
		TiempoDescansoSegundos: req.TiempoDescansoSegundos,
		Descripcion:            req.Descripcion,
		GrupoMuscular:          req.GrupoMuscular,
		SalaID:                 &salaID,
	})
}

func (s *Service) UpdateEjercicio(ctx context.Context, id int64, req model.UpdateEjercicio) (model.Ejercicio, error) {
	e, err := s.repo.GetEjercicio(ctx, id)
	if err != nil {
		return model.Ejercicio{}, notFound(err, "ejercicio", id)
	}
	if req.NombreEjercicio != nil {
		e.NombreEjercicio = *req.NombreEjercicio
	}
	if req.Series != nil {
		e.Series = *req.Series
	}
	if req.Repeticiones != nil {
		e.Repeticiones = *req.Repeticiones
	}
	if req.TiempoDescansoSegundos != nil {
		e.TiempoDescansoSegundos = req.TiempoDescansoSegundos
	}
	if req.Descripcion != nil {
		e.Descripcion = *req.Descripcion
	}
	if req.GrupoMuscular != nil {
		e.GrupoMuscular = *req.GrupoMuscular
	}
	if err := s.repo.UpdateEjercicio(ctx, e); err != nil {
		return model.Ejercicio{}, err
	}
	return e, nil
}

// DeleteEjercicio fails with ErrInUse while a routine still lists the exercise.
func (s *Service) DeleteEjercicio(ctx context.Context, id int64) error {
	return notFound(s.repo.DeleteEjercicio(ctx, id), "ejercicio", id)
}

func (s *Service) ListSalas(ctx context.Context) ([]model.Sala, error) {
	return s.repo.ListSalas(ctx)
}

func (s *Service) GetSala(ctx context.Context, id int64) (model.Sala, error) {
	sala, err := s.repo.GetSala(ctx, id)
	return sala, notFound(err, "sala", id)
}

func (s *Service) CreateSala(ctx context.Context, req model.CreateSala) (model.Sala, error) {
	fe := validate.FieldErrors{}
	if req.FechaInicio.IsZero() {
		fe["fechaInicio"] = "must not be empty"
	}
	if req.FechaFin.IsZero() {
		fe["fechaFin"] = "must not be empty"
	}
	if len(fe) > 0 {
		return model.Sala{}, fe
	}
	sala := model.Sala{FechaInicio: req.FechaInicio, FechaFin: req.FechaFin}
	if !sala.Valid() {
		return model.Sala{}, errDates
	}
	return s.repo.CreateSala(ctx, sala)
}

// UpdateSala re-checks the date order after merging the patch.
func (s *Service) UpdateSala(ctx context.Context, id int64, req model.UpdateSala) (model.Sala, error) {
	sala, err := s.repo.GetSala(ctx, id)
	if err != nil {
		return model.Sala{}, notFound(err, "sala", id)
	}
	if req.FechaInicio != nil && !req.FechaInicio.IsZero() {
		sala.FechaInicio = *req.FechaInicio
	}
	if req.FechaFin != nil && !req.FechaFin.IsZero() {
		sala.FechaFin = *req.FechaFin
	}
	if !sala.Valid() {
		return model.Sala{}, errDates
	}
	if err := s.repo.UpdateSala(ctx, sala); err != nil {
		return model.Sala{}, err
	}
	return sala, nil
}

func (s *Service) DeleteSala(ctx context.Context, id int64) error {
	return notFound(s.repo.DeleteSala(ctx, id), "sala", id)
}

var errDates = errors.Wrap(errs.ErrInvalidArgument, "fechaInicio must not be after fechaFin")

// notFound names the missing resource; other errors pass through.
func notFound(err error, what string, id int64) error {
	if errors.Is(err, errs.ErrNotFound) {
		return errors.Wrapf(errs.ErrNotFound, "%s %d", what, id)
	}
	return err
}
