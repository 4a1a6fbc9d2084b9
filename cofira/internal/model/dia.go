package model

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/Astemirdum/biblioteca-service/cofira/internal/errs"
)

type DiaSemana string

const (
	Lunes     DiaSemana = "LUNES"
	Martes    DiaSemana = "MARTES"
	Miercoles DiaSemana = "MIERCOLES"
	Jueves    DiaSemana = "JUEVES"
	Viernes   DiaSemana = "VIERNES"
	Sabado    DiaSemana = "SABADO"
	Domingo   DiaSemana = "DOMINGO"
)

var semana = []DiaSemana{Lunes, Martes, Miercoles, Jueves, Viernes, Sabado, Domingo}

// ParseDiaSemana accepts a weekday name in any case.
func ParseDiaSemana(s string) (DiaSemana, error) {
	d := DiaSemana(strings.ToUpper(strings.TrimSpace(s)))
	for _, day := range semana {
		if d == day {
			return d, nil
		}
	}
	return "", errors.Wrapf(errs.ErrInvalidArgument, "unknown weekday %q", s)
}
