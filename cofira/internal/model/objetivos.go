package model

type Objetivos struct {
	ID             int64   `json:"id" db:"id"`
	ListaObjetivos Strings `json:"listaObjetivos" db:"lista_objetivos"`
	UsuarioID      int64   `json:"usuarioId" db:"usuario_id"`
}

type CreateObjetivos struct {
	ListaObjetivos []string `json:"listaObjetivos" validate:"required,dive,required"`
	UsuarioID      int64    `json:"usuarioId" validate:"required,gte=1"`
}

type UpdateObjetivos struct {
	ListaObjetivos []string `json:"listaObjetivos" validate:"required,dive,required"`
}
