package service

import (
	"context"

	"github.com/Astemirdum/biblioteca-service/cofira/internal/model"
	cofiraRepo "github.com/Astemirdum/biblioteca-service/cofira/internal/repository"
	"github.com/Astemirdum/biblioteca-service/pkg/validate"
)

func (s *Service) ListRutinasEjercicio(ctx context.Context) ([]model.RutinaEjercicio, error) {
	return s.repo.ListRutinasEjercicio(ctx)
}

func (s *Service) GetRutinaEjercicio(ctx context.Context, id int64) (model.RutinaEjercicio, error) {
	rutina, err := s.repo.GetRutinaEjercicio(ctx, id)
	return rutina, notFound(err, "rutina de ejercicio", id)
}

// CreateRutinaEjercicio resolves every exercise id before anything is stored.
func (s *Service) CreateRutinaEjercicio(ctx context.Context, req model.CreateRutinaEjercicio) (model.RutinaEjercicio, error) {
	if req.FechaInicio.IsZero() {
		return model.RutinaEjercicio{}, validate.FieldErrors{"fechaInicio": "must not be empty"}
	}
	rutina := model.RutinaEjercicio{
		FechaInicio:   req.FechaInicio,
		DiasEjercicio: make([]model.DiaEjercicio, 0, len(req.DiasEjercicio)),
	}
	var created model.RutinaEjercicio
	err := s.repo.Tx(ctx, func(repo cofiraRepo.Repository) error {
		for _, d := range req.DiasEjercicio {
			dia, err := model.ParseDiaSemana(d.DiaSemana)
			if err != nil {
				return err
			}
			ejercicios := make([]model.Ejercicio, 0, len(d.EjerciciosIDs))
			for _, id := range d.EjerciciosIDs {
				e, err := repo.GetEjercicio(ctx, id)
				if err != nil {
					return notFound(err, "ejercicio", id)
				}
				ejercicios = append(ejercicios, e)
			}
			rutina.DiasEjercicio = append(rutina.DiasEjercicio, model.DiaEjercicio{
				DiaSemana:  dia,
				Ejercicios: ejercicios,
			})
		}
		var err error
		created, err = repo.CreateRutinaEjercicio(ctx, rutina)
		return err
	})
	if err != nil {
		return model.RutinaEjercicio{}, err
	}
	return created, nil
}

func (s *Service) DeleteRutinaEjercicio(ctx context.Context, id int64) error {
	return notFound(s.repo.DeleteRutinaEjercicio(ctx, id), "rutina de ejercicio", id)
}

func (s *Service) ListRutinasAlimentacion(ctx context.Context) ([]model.RutinaAlimentacion, error) {
	return s.repo.ListRutinasAlimentacion(ctx)
}

func (s *Service) GetRutinaAlimentacion(ctx context.Context, id int64) (model.RutinaAlimentacion, error) {
	rutina, err := s.repo.GetRutinaAlimentacion(ctx, id)
	return rutina, notFound(err, "rutina de alimentacion", id)
}

func (s *Service) CreateRutinaAlimentacion(ctx context.Context, req model.CreateRutinaAlimentacion) (model.RutinaAlimentacion, error) {
	if req.FechaInicio.IsZero() {
		return model.RutinaAlimentacion{}, validate.FieldErrors{"fechaInicio": "must not be empty"}
	}
	rutina := model.RutinaAlimentacion{
		FechaInicio:      req.FechaInicio,
		DiasAlimentacion: make([]model.DiaAlimentacion, 0, len(req.DiasAlimentacion)),
	}
	for _, d := range req.DiasAlimentacion {
		dia, err := model.ParseDiaSemana(d.DiaSemana)
		if err != nil {
			return model.RutinaAlimentacion{}, err
		}
		rutina.DiasAlimentacion = append(rutina.DiasAlimentacion, model.DiaAlimentacion{
			DiaSemana: dia,
			Desayuno:  d.Desayuno,
			Almuerzo:  d.Almuerzo,
			Comida:    d.Comida,
			Merienda:  d.Merienda,
			Cena:      d.Cena,
		})
	}
	var created model.RutinaAlimentacion
	err := s.repo.Tx(ctx, func(repo cofiraRepo.Repository) error {
		var err error
		created, err = repo.CreateRutinaAlimentacion(ctx, rutina)
		return err
	})
	if err != nil {
		return model.RutinaAlimentacion{}, err
	}
	return created, nil
}

func (s *Service) DeleteRutinaAlimentacion(ctx context.Context, id int64) error {
	return notFound(s.repo.DeleteRutinaAlimentacion(ctx, id), "rutina de alimentacion", id)
}
