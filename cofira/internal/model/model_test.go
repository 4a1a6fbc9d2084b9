package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Astemirdum/biblioteca-service/cofira/internal/errs"
	"github.com/Astemirdum/biblioteca-service/cofira/internal/model"
	"github.com/stretchr/testify/require"
)

func TestParseDiaSemana(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    model.DiaSemana
		wantErr bool
	}{
		{in: "LUNES", want: model.Lunes},
		{in: "miercoles", want: model.Miercoles},
		{in: " Domingo ", want: model.Domingo},
		{in: "miércoles", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := model.ParseDiaSemana(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestStrings(t *testing.T) {
	t.Parallel()

	t.Run("scan", func(t *testing.T) {
		t.Parallel()
		var s model.Strings
		require.NoError(t, s.Scan([]byte(`["huevo","patata"]`)))
		require.Equal(t, model.Strings{"huevo", "patata"}, s)

		require.Error(t, s.Scan(42))
	})

	t.Run("nil is an empty array", func(t *testing.T) {
		t.Parallel()
		var s model.Strings
		v, err := s.Value()
		require.NoError(t, err)
		require.Equal(t, "[]", v)

		b, err := json.Marshal(model.Alimento{ID: 1, Nombre: "Agua"})
		require.NoError(t, err)
		require.JSONEq(t, `{"id":1,"nombre":"Agua","ingredientes":[]}`, string(b))
	})
}

func TestComida(t *testing.T) {
	t.Parallel()

	var skipped *model.Comida
	v, err := skipped.Value()
	require.NoError(t, err)
	require.Nil(t, v)

	c := &model.Comida{}
	require.NoError(t, c.Scan(`{"alimentos":["avena","leche"]}`))
	require.Equal(t, model.Strings{"avena", "leche"}, c.Alimentos)

	v, err = c.Value()
	require.NoError(t, err)
	require.JSONEq(t, `{"alimentos":["avena","leche"]}`, v.(string))
}

func TestDate_JSON(t *testing.T) {
	t.Parallel()
	var got struct {
		Fecha model.Date `json:"fecha"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"fecha":"2024-02-05"}`), &got))
	require.Equal(t, model.NewDate(time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)), got.Fecha)

	b, err := json.Marshal(model.Sala{ID: 1, FechaInicio: got.Fecha})
	require.NoError(t, err)
	require.JSONEq(t, `{"id":1,"fechaInicio":"2024-02-05","fechaFin":null}`, string(b))

	require.Error(t, json.Unmarshal([]byte(`{"fecha":"05/02/2024"}`), &got))
}

func TestSala_Valid(t *testing.T) {
	t.Parallel()
	d := func(day int) model.Date { return model.NewDate(time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)) }

	require.True(t, model.Sala{FechaInicio: d(1), FechaFin: d(2)}.Valid())
	require.True(t, model.Sala{FechaInicio: d(2), FechaFin: d(2)}.Valid())
	require.False(t, model.Sala{FechaInicio: d(3), FechaFin: d(2)}.Valid())
}
