package model

type Plan struct {
	ID                 int64   `json:"id" db:"id"`
	Precio             float64 `json:"precio" db:"precio"`
	SubscripcionActiva bool    `json:"subscripcionActiva" db:"subscripcion_activa"`
	UsuarioID          int64   `json:"usuarioId" db:"usuario_id"`
}

type CreatePlan struct {
	Precio             *float64 `json:"precio" validate:"required,gte=0"`
	SubscripcionActiva *bool    `json:"subscripcionActiva" validate:"required"`
	UsuarioID          int64    `json:"usuarioId" validate:"required,gte=1"`
}

type UpdatePlan struct {
	Precio             *float64 `json:"precio" validate:"omitempty,gte=0"`
	SubscripcionActiva *bool    `json:"subscripcionActiva"`
}
