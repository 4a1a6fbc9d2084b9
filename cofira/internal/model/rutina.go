package model

import (
	"database/sql/driver"
	"encoding/json"
)

// RutinaEjercicio is a weekly training plan.
type RutinaEjercicio struct {
	ID            int64          `json:"id" db:"id"`
	FechaInicio   Date           `json:"fechaInicio" db:"fecha_inicio"`
	DiasEjercicio []DiaEjercicio `json:"diasEjercicio"`
}

type DiaEjercicio struct {
	ID         int64       `json:"id" db:"id"`
	RutinaID   int64       `json:"-" db:"rutina_id"`
	DiaSemana  DiaSemana   `json:"diaSemana" db:"dia_semana"`
	Ejercicios []Ejercicio `json:"ejercicios"`
}

type CreateRutinaEjercicio struct {
	FechaInicio   Date                 `json:"fechaInicio"`
	DiasEjercicio []CreateDiaEjercicio `json:"diasEjercicio" validate:"required,dive"`
}

type CreateDiaEjercicio struct {
	DiaSemana     string  `json:"diaSemana" validate:"required"`
	EjerciciosIDs []int64 `json:"ejerciciosIds" validate:"required,dive,gte=1"`
}

// RutinaAlimentacion is a weekly meal plan.
type RutinaAlimentacion struct {
	ID               int64             `json:"id" db:"id"`
	FechaInicio      Date              `json:"fechaInicio" db:"fecha_inicio"`
	DiasAlimentacion []DiaAlimentacion `json:"diasAlimentacion"`
}

type DiaAlimentacion struct {
	ID        int64     `json:"id" db:"id"`
	RutinaID  int64     `json:"-" db:"rutina_id"`
	DiaSemana DiaSemana `json:"diaSemana" db:"dia_semana"`
	Desayuno  *Comida   `json:"desayuno" db:"desayuno"`
	Almuerzo  *Comida   `json:"almuerzo" db:"almuerzo"`
	Comida    *Comida   `json:"comida" db:"comida"`
	Merienda  *Comida   `json:"merienda" db:"merienda"`
	Cena      *Comida   `json:"cena" db:"cena"`
}

// Comida is one meal of a day; nil when the day skips it.
type Comida struct {
	Alimentos Strings `json:"alimentos"`
}

func (c *Comida) Scan(src any) error {
	return scanJSON(src, c)
}

func (c *Comida) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	b, err := json.Marshal(c)
	return string(b), err
}

type CreateRutinaAlimentacion struct {
	FechaInicio      Date                    `json:"fechaInicio"`
	DiasAlimentacion []CreateDiaAlimentacion `json:"diasAlimentacion" validate:"required,dive"`
}

type CreateDiaAlimentacion struct {
	DiaSemana string  `json:"diaSemana" validate:"required"`
	Desayuno  *Comida `json:"desayuno"`
	Almuerzo  *Comida `json:"almuerzo"`
	Comida    *Comida `json:"comida"`
	Merienda  *Comida `json:"merienda"`
	Cena      *Comida `json:"cena"`
}
