package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseAmount(t *testing.T) {
	amount, err := ParseAmount("monto", "150.50")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.RequireFromString("150.50")))
	assert.Equal(t, "S/ 150.50", FormatSoles(amount))

	for _, raw := range []string{"", "   ", "abc", "12,50", "-3"} {
		_, err := ParseAmount("monto", raw)
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr, raw)
		assert.Equal(t, "monto", vErr.Field)
	}
}

func TestDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", d.String())

	data, err := json.Marshal(struct {
		Fecha Date `json:"fecha"`
	}{d})
	require.NoError(t, err)
	assert.JSONEq(t, `{"fecha":"2024-03-05"}`, string(data))

	var decoded struct {
		Fecha Date `json:"fecha"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"fecha":"2024-03-05T10:20:00Z"}`), &decoded))
	assert.Equal(t, "2024-03-05", decoded.Fecha.String())

	var scanned Date
	require.NoError(t, scanned.Scan(time.Date(2024, 3, 5, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-05", scanned.String())
	require.NoError(t, scanned.Scan([]byte("2023-12-31")))
	assert.Equal(t, "2023-12-31", scanned.String())
	require.NoError(t, scanned.Scan(nil))
	assert.True(t, scanned.IsZero())

	value, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", value)

	_, err = ParseDate("05/03/2024")
	assert.Error(t, err)
}

func TestVocabularyBadge(t *testing.T) {
	assert.Equal(t, ToneGreen, EstadoPago.Badge("completado"))
	assert.Equal(t, ToneNeutral, EstadoPago.Badge("reembolsado"))
	assert.Equal(t, ToneNeutral, PrioridadIncidencia.Badge(""))
	assert.Equal(t, ToneRed, EstadoInventario.Badge("dañado"))
}

func newRequestValidator(t *testing.T) *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, RegisterValidations(v))
	return v
}

func failedField(t *testing.T, err error) validator.FieldError {
	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	return errs[0]
}

func TestRequestBindingRules(t *testing.T) {
	v := newRequestValidator(t)

	fe := failedField(t, v.Struct(CreateClienteRequest{Nombres: "Ana"}))
	assert.Equal(t, "apellidos", fe.Field())
	assert.Equal(t, "required", fe.Tag())

	fe = failedField(t, v.Struct(CreateIncidenciaRequest{IDCliente: "u1", Descripcion: "  "}))
	assert.Equal(t, "descripcion", fe.Field())
	assert.Equal(t, "notblank", fe.Tag())

	fe = failedField(t, v.Struct(CreateUsuarioRequest{Nombre: "Ana", Usuario: "ana"}))
	assert.Equal(t, "password", fe.Field())

	fe = failedField(t, v.Struct(CreateUsuarioRequest{Nombre: "Ana", Usuario: "ana", Password: "123"}))
	assert.Equal(t, "min", fe.Tag())

	lat := 120.0
	fe = failedField(t, v.Struct(CreateInstalacionRequest{
		IDCliente:            "u1",
		DireccionInstalacion: "Av. Arequipa 100",
		TecnicoResponsable:   "Luis",
		Latitud:              &lat,
	}))
	assert.Equal(t, "latitud", fe.Field())

	negative := -1
	fe = failedField(t, v.Struct(CreateItemInventarioRequest{Nombre: "ONT", Cantidad: &negative}))
	assert.Equal(t, "cantidad", fe.Field())

	zero := 0
	assert.NoError(t, v.Struct(CreateItemInventarioRequest{Nombre: "ONT", Cantidad: &zero}))
}

func TestUpdateRequestBindingRules(t *testing.T) {
	v := newRequestValidator(t)

	assert.NoError(t, v.Struct(UpdateContratoRequest{}))
	assert.NoError(t, v.Struct(UpdateContratoRequest{Estado: strPtr("suspendido")}))

	fe := failedField(t, v.Struct(UpdateContratoRequest{Estado: strPtr("pausado")}))
	assert.Equal(t, "estado", fe.Field())
	assert.Equal(t, "oneof", fe.Tag())

	fe = failedField(t, v.Struct(UpdateClienteRequest{Nombres: strPtr("")}))
	assert.Equal(t, "nombres", fe.Field())
}

func TestEnumeratedRequestFieldsAcceptEveryVocabularyValue(t *testing.T) {
	v := newRequestValidator(t)

	for value := range EstadoPago {
		assert.NoError(t, v.Struct(CreatePagoRequest{IDCliente: "u1", Monto: "1", EstadoPago: value}), value)
	}
	for value := range PrioridadIncidencia {
		assert.NoError(t, v.Struct(UpdateIncidenciaRequest{Prioridad: strPtr(value)}), value)
	}
	for value := range EstadoInventario {
		assert.NoError(t, v.Struct(UpdateItemInventarioRequest{Estado: strPtr(value)}), value)
	}
	for value := range RolUsuario {
		assert.NoError(t, v.Struct(UpdateUsuarioRequest{Rol: strPtr(value)}), value)
	}
	for value := range TipoServicio {
		assert.NoError(t, v.Struct(UpdateContratoRequest{TipoServicio: strPtr(value)}), value)
	}
}

func TestCreatePagoRequestRecord(t *testing.T) {
	fecha, err := ParseDate("2024-05-01")
	require.NoError(t, err)
	req := CreatePagoRequest{IDCliente: "u1", Monto: "150.50", FechaPago: fecha}

	pago, err := req.Record()
	require.NoError(t, err)
	assert.Equal(t, "u1", pago.IDCliente)
	assert.Equal(t, "150.5", pago.Monto.String())
	assert.Equal(t, "completado", pago.EstadoPago)
	assert.Equal(t, "efectivo", pago.MetodoPago)
	assert.Equal(t, "2024-05-01", pago.FechaPago.String())
	assert.Empty(t, pago.ID)

	req.Monto = "ciento cincuenta"
	_, err = req.Record()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "monto", vErr.Field)
}

func TestUpdateContratoRequestOnlyPresentFields(t *testing.T) {
	updates, err := UpdateContratoRequest{Estado: strPtr("suspendido")}.Updates()
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"estado": "suspendido"}, updates)

	_, err = UpdateContratoRequest{MontoMensual: strPtr("-5")}.Updates()
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "monto_mensual", vErr.Field)
}

func TestCreateItemInventarioRequestDefaults(t *testing.T) {
	item, err := CreateItemInventarioRequest{Nombre: " ONT Huawei ", Serie: ""}.Record()
	require.NoError(t, err)
	assert.Equal(t, "ONT Huawei", item.Nombre)
	assert.Equal(t, "otro", item.Tipo)
	assert.Equal(t, "nuevo", item.Estado)
	assert.Equal(t, 1, item.Cantidad)
	assert.Nil(t, item.Serie)
	assert.False(t, item.FechaAdquisicion.IsZero())

	zero := 0
	item, err = CreateItemInventarioRequest{Nombre: "Modem X", Cantidad: &zero}.Record()
	require.NoError(t, err)
	assert.Equal(t, 0, item.Cantidad)
}

func TestUpdateItemInventarioRequestClearsSerie(t *testing.T) {
	updates, err := UpdateItemInventarioRequest{Serie: strPtr(" "), Cantidad: func() *int { v := 0; return &v }()}.Updates()
	require.NoError(t, err)
	assert.Nil(t, updates["serie"])
	assert.Contains(t, updates, "serie")
	assert.Equal(t, 0, updates["cantidad"])
}

func TestClienteFullName(t *testing.T) {
	c := Cliente{Nombres: "Ana", Apellidos: "Paz"}
	assert.Equal(t, "Ana Paz", c.FullName())
}
