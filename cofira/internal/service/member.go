package service

import (
	"context"

	"github.com/Astemirdum/biblioteca-service/cofira/internal/errs"
	"github.com/Astemirdum/biblioteca-service/cofira/internal/model"
	"github.com/pkg/errors"
)

func (s *Service) ListPlanes(ctx context.Context) ([]model.Plan, error) {
	return s.repo.ListPlanes(ctx)
}

func (s *Service) GetPlan(ctx context.Context, id int64) (model.Plan, error) {
	plan, err := s.repo.GetPlan(ctx, id)
	return plan, notFound(err, "plan", id)
}

func (s *Service) GetPlanByUsuario(ctx context.Context, usuarioID int64) (model.Plan, error) {
	plan, err := s.repo.GetPlanByUsuario(ctx, usuarioID)
	return plan, notFound(err, "plan for usuario", usuarioID)
}

// CreatePlan allows one plan per user; a second one is ErrDuplicate.
func (s *Service) CreatePlan(ctx context.Context, req model.CreatePlan) (model.Plan, error) {
	return s.repo.CreatePlan(ctx, model.Plan{
		Precio:             *req.Precio,
		SubscripcionActiva: *req.SubscripcionActiva,
		UsuarioID:          req.UsuarioID,
	})
}

func (s *Service) UpdatePlan(ctx context.Context, id int64, req model.UpdatePlan) (model.Plan, error) {
	plan, err := s.repo.GetPlan(ctx, id)
	if err != nil {
		return model.Plan{}, notFound(err, "plan", id)
	}
	if req.Precio != nil {
		plan.Precio = *req.Precio
	}
	if req.SubscripcionActiva != nil {
		plan.SubscripcionActiva = *req.SubscripcionActiva
	}
	if err := s.repo.UpdatePlan(ctx, plan); err != nil {
		return model.Plan{}, err
	}
	return plan, nil
}

func (s *Service) DeletePlan(ctx context.Context, id int64) error {
	return notFound(s.repo.DeletePlan(ctx, id), "plan", id)
}

func (s *Service) ListObjetivos(ctx context.Context) ([]model.Objetivos, error) {
	return s.repo.ListObjetivos(ctx)
}

func (s *Service) GetObjetivos(ctx context.Context, id int64) (model.Objetivos, error) {
	objetivos, err := s.repo.GetObjetivos(ctx, id)
	return objetivos, notFound(err, "objetivos", id)
}

func (s *Service) GetObjetivosByUsuario(ctx context.Context, usuarioID int64) (model.Objetivos, error) {
	objetivos, err := s.repo.GetObjetivosByUsuario(ctx, usuarioID)
	return objetivos, notFound(err, "objetivos for usuario", usuarioID)
}

func (s *Service) CreateObjetivos(ctx context.Context, req model.CreateObjetivos) (model.Objetivos, error) {
	objetivos, err := s.repo.CreateObjetivos(ctx, model.Objetivos{
		ListaObjetivos: req.ListaObjetivos,
		UsuarioID:      req.UsuarioID,
	})
	if errors.Is(err, errs.ErrDuplicate) {
		return model.Objetivos{}, errors.Wrapf(errs.ErrDuplicate, "usuario %d already has objetivos", req.UsuarioID)
	}
	return objetivos, err
}

func (s *Service) UpdateObjetivos(ctx context.Context, id int64, req model.UpdateObjetivos) (model.Objetivos, error) {
	objetivos, err := s.repo.GetObjetivos(ctx, id)
	if err != nil {
		return model.Objetivos{}, notFound(err, "objetivos", id)
	}
	objetivos.ListaObjetivos = req.ListaObjetivos
	if err := s.repo.UpdateObjetivos(ctx, objetivos); err != nil {
		return model.Objetivos{}, err
	}
	return objetivos, nil
}

func (s *Service) DeleteObjetivos(ctx context.Context, id int64) error {
	return notFound(s.repo.DeleteObjetivos(ctx, id), "objetivos", id)
}
