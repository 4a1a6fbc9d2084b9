package handler

import (
	"context"

	"github.com/Astemirdum/biblioteca-service/cofira/internal/model"
	"github.com/Astemirdum/biblioteca-service/cofira/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CofiraService interface {
	ListAlimentos(ctx context.Context) ([]model.Alimento, error)
	GetAlimento(ctx context.Context, id int64) (model.Alimento, error)
	CreateAlimento(ctx context.Context, req model.CreateAlimento) (model.Alimento, error)
	UpdateAlimento(ctx context.Context, id int64, req model.UpdateAlimento) (model.Alimento, error)
	DeleteAlimento(ctx context.Context, id int64) error

	ListEjercicios(ctx context.Context) ([]model.Ejercicio, error)
	ListEjerciciosBySala(ctx context.Context, salaID int64) ([]model.Ejercicio, error)
	GetEjercicio(ctx context.Context, id int64) (model.Ejercicio, error)
	CreateEjercicio(ctx context.Context, req model.CreateEjercicio) (model.Ejercicio, error)
	UpdateEjercicio(ctx context.Context, id int64, req model.UpdateEjercicio) (model.Ejercicio, error)
	DeleteEjercicio(ctx context.Context, id int64) error

	ListSalas(ctx context.Context) ([]model.Sala, error)
	GetSala(ctx context.Context, id int64) (model.Sala, error)
	CreateSala(ctx context.Context, req model.CreateSala) (model.Sala, error)
	UpdateSala(ctx context.Context, id int64, req model.UpdateSala) (model.Sala, error)
	DeleteSala(ctx context.Context, id int64) error

	ListPlanes(ctx context.Context) ([]model.Plan, error)
	GetPlan(ctx context.Context, id int64) (model.Plan, error)
	GetPlanByUsuario(ctx context.Context, usuarioID int64) (model.Plan, error)
	CreatePlan(ctx context.Context, req model.CreatePlan) (model.Plan, error)
	UpdatePlan(ctx context.Context, id int64, req model.UpdatePlan) (model.Plan, error)
	DeletePlan(ctx context.Context, id int64) error

	ListObjetivos(ctx context.Context) ([]model.Objetivos, error)
	GetObjetivos(ctx context.Context, id int64) (model.Objetivos, error)
	GetObjetivosByUsuario(ctx context.Context, usuarioID int64) (model.Objetivos, error)
	CreateObjetivos(ctx context.Context, req model.CreateObjetivos) (model.Objetivos, error)
	UpdateObjetivos(ctx context.Context, id int64, req model.UpdateObjetivos) (model.Objetivos, error)
	DeleteObjetivos(ctx context.Context, id int64) error

	ListRutinasEjercicio(ctx context.Context) ([]model.RutinaEjercicio, error)
	GetRutinaEjercicio(ctx context.Context, id int64) (model.RutinaEjercicio, error)
	CreateRutinaEjercicio(ctx context.Context, req model.CreateRutinaEjercicio) (model.RutinaEjercicio, error)
	DeleteRutinaEjercicio(ctx context.Context, id int64) error

	ListRutinasAlimentacion(ctx context.Context) ([]model.RutinaAlimentacion, error)
	GetRutinaAlimentacion(ctx context.Context, id int64) (model.RutinaAlimentacion, error)
	CreateRutinaAlimentacion(ctx context.Context, req model.CreateRutinaAlimentacion) (model.RutinaAlimentacion, error)
	DeleteRutinaAlimentacion(ctx context.Context, id int64) error
}

var _ CofiraService = (*service.Service)(nil)
