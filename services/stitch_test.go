package services

import (
	"testing"

	"backend_tigo/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cliente(id, nombres, apellidos string) models.Cliente {
	return models.Cliente{Base: models.Base{ID: id}, Nombres: nombres, Apellidos: apellidos}
}

func TestEnrichContratos_AttachesCustomer(t *testing.T) {
	contratos := []models.Contrato{{Base: models.Base{ID: "c1"}, IDCliente: "u1"}}
	clientes := []models.Cliente{cliente("u1", "Ana", "Paz")}

	views := EnrichContratos(contratos, clientes)

	require.Len(t, views, 1)
	require.NotNil(t, views[0].Cliente)
	assert.Equal(t, "u1", views[0].Cliente.ID)
	assert.Equal(t, "Ana Paz", views[0].ClienteNombre)
}

func TestEnrichInstalaciones_DanglingReference(t *testing.T) {
	instalaciones := []models.Instalacion{{Base: models.Base{ID: "i1"}, IDCliente: "u9"}}

	views := EnrichInstalaciones(instalaciones, nil)

	require.Len(t, views, 1)
	assert.Nil(t, views[0].Cliente)
	assert.Equal(t, "Cliente no encontrado", views[0].ClienteNombre)
}

func TestEnrichAcciones_TwoHop(t *testing.T) {
	incidencias := []models.Incidencia{{Base: models.Base{ID: "inc1"}, IDCliente: "u1"}}
	clientes := []models.Cliente{cliente("u1", "Luis", "Rojas")}
	acciones := []models.AccionPreventiva{{Base: models.Base{ID: "a1"}, IDIncidencia: "inc1"}}

	views := EnrichAcciones(acciones, incidencias, clientes)

	require.Len(t, views, 1)
	require.NotNil(t, views[0].Incidencia)
	require.NotNil(t, views[0].Incidencia.Cliente)
	assert.Equal(t, "u1", views[0].Incidencia.Cliente.ID)
	assert.Equal(t, "Luis Rojas", views[0].ClienteNombre)
}

func TestEnrichAcciones_MissingFirstHop(t *testing.T) {
	acciones := []models.AccionPreventiva{{Base: models.Base{ID: "a1"}, IDIncidencia: "gone"}}

	views := EnrichAcciones(acciones, nil, []models.Cliente{cliente("u1", "Luis", "Rojas")})

	require.Len(t, views, 1)
	assert.Nil(t, views[0].Incidencia)
	assert.Equal(t, MissingCustomerLabel, views[0].ClienteNombre)
}

func TestEnrichAcciones_IncidentWithoutCustomer(t *testing.T) {
	incidencias := []models.Incidencia{{Base: models.Base{ID: "inc1"}, IDCliente: "u404"}}
	acciones := []models.AccionPreventiva{{Base: models.Base{ID: "a1"}, IDIncidencia: "inc1"}}

	views := EnrichAcciones(acciones, incidencias, nil)

	require.NotNil(t, views[0].Incidencia)
	assert.Nil(t, views[0].Incidencia.Cliente)
	assert.Equal(t, MissingCustomerLabel, views[0].ClienteNombre)
}

func TestIndexByID_FirstMatchWins(t *testing.T) {
	clientes := []models.Cliente{
		cliente("u1", "Primera", "Fila"),
		cliente("u1", "Segunda", "Fila"),
	}

	index := IndexByID(clientes, clienteID)

	require.Len(t, index, 1)
	assert.Equal(t, "Primera", index["u1"].Nombres)
}

func TestAttach_KeepsPrimaryOrderAndLength(t *testing.T) {
	pagos := []models.Pago{
		{Base: models.Base{ID: "p3"}, IDCliente: "u2"},
		{Base: models.Base{ID: "p1"}, IDCliente: "u1"},
		{Base: models.Base{ID: "p2"}, IDCliente: "u404"},
		{Base: models.Base{ID: "p4"}, IDCliente: "u2"},
	}
	clientes := []models.Cliente{cliente("u1", "Ana", "Paz"), cliente("u2", "Eva", "Sol")}

	joined := Attach(pagos, clientes, func(p models.Pago) string { return p.IDCliente }, clienteID)

	require.Len(t, joined, len(pagos))
	for i, j := range joined {
		assert.Equal(t, pagos[i].ID, j.Row.ID)
		if j.Related != nil {
			assert.Equal(t, j.Row.IDCliente, j.Related.ID)
		}
	}
	assert.Nil(t, joined[2].Related)
	assert.Same(t, joined[0].Related, joined[3].Related)
}

func TestCustomerLabel(t *testing.T) {
	c := cliente("u1", "Ana", "Paz")
	assert.Equal(t, "Ana Paz", CustomerLabel(&c))
	assert.Equal(t, "Cliente no encontrado", CustomerLabel(nil))
}

func TestViews_Badges(t *testing.T) {
	incidencias := EnrichIncidencias([]models.Incidencia{
		{Base: models.Base{ID: "i1"}, Estado: "abierta", Prioridad: "critica", TipoIncidencia: "falla_servicio"},
		{Base: models.Base{ID: "i2"}, Estado: "archivada", Prioridad: ""},
	}, nil)
	require.Len(t, incidencias, 2)
	assert.Equal(t, models.ToneRed, incidencias[0].EstadoBadge)
	assert.Equal(t, models.ToneRed, incidencias[0].PrioridadBadge)
	assert.Equal(t, models.ToneRed, incidencias[0].TipoIncidenciaBadge)
	assert.Equal(t, models.ToneNeutral, incidencias[1].EstadoBadge)
	assert.Equal(t, models.ToneNeutral, incidencias[1].PrioridadBadge)

	pagos := EnrichPagos([]models.Pago{
		{Base: models.Base{ID: "p1"}, EstadoPago: "completado"},
		{Base: models.Base{ID: "p2"}, EstadoPago: "reembolsado"},
	}, nil)
	assert.Equal(t, models.ToneGreen, pagos[0].EstadoPagoBadge)
	assert.Equal(t, models.ToneNeutral, pagos[1].EstadoPagoBadge)

	acciones := EnrichAcciones([]models.AccionPreventiva{{Base: models.Base{ID: "a1"}, Estado: "en_ejecucion"}}, nil, nil)
	assert.Equal(t, models.ToneBlue, acciones[0].EstadoBadge)

	items := ItemInventarioViews([]models.ItemInventario{{Base: models.Base{ID: "x1"}, Tipo: "modem", Estado: "dañado"}})
	assert.Equal(t, models.ToneBlue, items[0].TipoBadge)
	assert.Equal(t, models.ToneRed, items[0].EstadoBadge)

	usuarios := UsuarioViews([]models.Usuario{{Rol: "supervisor"}})
	assert.Equal(t, models.ToneNeutral, usuarios[0].RolBadge)
}
