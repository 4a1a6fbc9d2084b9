package model

type Ejercicio struct {
	ID                     int64  `json:"id" db:"id"`
	NombreEjercicio        string `json:"nombreEjercicio" db:"nombre_ejercicio"`
	Series                 int    `json:"series" db:"series"`
	Repeticiones           int    `json:"repeticiones" db:"repeticiones"`
	TiempoDescansoSegundos *int   `json:"tiempoDescansoSegundos,omitempty" db:"tiempo_descanso_segundos"`
	Descripcion            string `json:"descripcion,omitempty" db:"descripcion"`
	GrupoMuscular          string `json:"grupoMuscular,omitempty" db:"grupo_muscular"`
	SalaID                 *int64 `json:"salaDeGimnasioId,omitempty" db:"sala_id"`
}

type CreateEjercicio struct {
	NombreEjercicio        string `json:"nombreEjercicio" validate:"required,max=255"`
	Series                 int    `json:"series" validate:"required,gte=1"`
	Repeticiones           int    `json:"repeticiones" validate:"required,gte=1"`
	TiempoDescansoSegundos *int   `json:"tiempoDescansoSegundos" validate:"omitempty,gte=0"`
	Descripcion            string `json:"descripcion"`
	GrupoMuscular          string `json:"grupoMuscular" validate:"max=100"`
	SalaID                 int64  `json:"salaDeGimnasioId" validate:"required,gte=1"`
}

type UpdateEjercicio struct {
	NombreEjercicio        *string `json:"nombreEjercicio" validate:"omitempty,min=1,max=255"`
	Series                 *int    `json:"series" validate:"omitempty,gte=1"`
	Repeticiones           *int    `json:"repeticiones" validate:"omitempty,gte=1"`
	TiempoDescansoSegundos *int    `json:"tiempoDescansoSegundos" validate:"omitempty,gte=0"`
	Descripcion            *string `json:"descripcion"`
	GrupoMuscular          *string `json:"grupoMuscular" validate:"omitempty,max=100"`
}
