package model

type Sala struct {
	ID          int64 `json:"id" db:"id"`
	FechaInicio Date  `json:"fechaInicio" db:"fecha_inicio"`
	FechaFin    Date  `json:"fechaFin" db:"fecha_fin"`
}

type CreateSala struct {
	FechaInicio Date `json:"fechaInicio"`
	FechaFin    Date `json:"fechaFin"`
}

type UpdateSala struct {
	FechaInicio *Date `json:"fechaInicio"`
	FechaFin    *Date `json:"fechaFin"`
}

// Valid reports whether the room does not close before it opens.
func (s Sala) Valid() bool {
	return !s.FechaInicio.After(s.FechaFin.Time)
}
