package model

type Alimento struct {
	ID           int64   `json:"id" db:"id"`
	Nombre       string  `json:"nombre" db:"nombre"`
	Ingredientes Strings `json:"ingredientes" db:"ingredientes"`
}

type CreateAlimento struct {
	Nombre       string   `json:"nombre" validate:"required,max=255"`
	Ingredientes []string `json:"ingredientes" validate:"omitempty,dive,required"`
}

// UpdateAlimento replaces only the fields present in the body.
type UpdateAlimento struct {
	Nombre       *string  `json:"nombre" validate:"omitempty,min=1,max=255"`
	Ingredientes []string `json:"ingredientes" validate:"omitempty,dive,required"`
}
