package services

import "backend_tigo/models"

// MissingCustomerLabel is shown in place of a customer that is absent from the fetched set
const MissingCustomerLabel = "Cliente no encontrado"

// Joined is a primary row with its related row attached, or nil for a dangling reference
type Joined[P any, R any] struct {
	Row     P
	Related *R
}

// IndexByID indexes rows by identifier in a single pass.
// When several rows share an identifier the first one wins.
func IndexByID[R any](rows []R, id func(R) string) map[string]*R {
	index := make(map[string]*R, len(rows))
	for i := range rows {
		key := id(rows[i])
		if _, seen := index[key]; seen {
			continue
		}
		index[key] = &rows[i]
	}
	return index
}

// Attach pairs every primary row with the related row its reference names.
// The result keeps the primary order and has exactly one entry per primary row.
func Attach[P any, R any](primary []P, related []R, ref func(P) string, id func(R) string) []Joined[P, R] {
	index := IndexByID(related, id)

	joined := make([]Joined[P, R], len(primary))
	for i, row := range primary {
		joined[i] = Joined[P, R]{Row: row, Related: index[ref(row)]}
	}
	return joined
}

// CustomerLabel returns the display name of c
func CustomerLabel(c *models.Cliente) string {
	if c == nil {
		return MissingCustomerLabel
	}
	return c.FullName()
}

func clienteID(c models.Cliente) string { return c.ID }

// ContratoView is a contract with its customer
type ContratoView struct {
	models.Contrato
	Cliente       *models.Cliente `json:"cliente"`
	ClienteNombre string          `json:"cliente_nombre"`
	MontoLabel    string          `json:"monto_label"`

	TipoServicioBadge string `json:"tipo_servicio_badge"`
	EstadoBadge       string `json:"estado_badge"`
}

// EnrichContratos attaches each contract's customer
func EnrichContratos(contratos []models.Contrato, clientes []models.Cliente) []ContratoView {
	joined := Attach(contratos, clientes, func(c models.Contrato) string { return c.IDCliente }, clienteID)

	views := make([]ContratoView, len(joined))
	for i, j := range joined {
		views[i] = ContratoView{
			Contrato:      j.Row,
			Cliente:       j.Related,
			ClienteNombre: CustomerLabel(j.Related),
			MontoLabel:    models.FormatSoles(j.Row.MontoMensual),

			TipoServicioBadge: models.TipoServicio.Badge(j.Row.TipoServicio),
			EstadoBadge:       models.EstadoContrato.Badge(j.Row.Estado),
		}
	}
	return views
}

// InstalacionView is an installation with its customer
type InstalacionView struct {
	models.Instalacion
	Cliente       *models.Cliente `json:"cliente"`
	ClienteNombre string          `json:"cliente_nombre"`
	EstadoBadge   string          `json:"estado_badge"`
}

// EnrichInstalaciones attaches each installation's customer
func EnrichInstalaciones(instalaciones []models.Instalacion, clientes []models.Cliente) []InstalacionView {
	joined := Attach(instalaciones, clientes, func(i models.Instalacion) string { return i.IDCliente }, clienteID)

	views := make([]InstalacionView, len(joined))
	for i, j := range joined {
		views[i] = InstalacionView{
			Instalacion:   j.Row,
			Cliente:       j.Related,
			ClienteNombre: CustomerLabel(j.Related),
			EstadoBadge:   models.EstadoInstalacion.Badge(j.Row.Estado),
		}
	}
	return views
}

// PagoView is a payment with its customer
type PagoView struct {
	models.Pago
	Cliente       *models.Cliente `json:"cliente"`
	ClienteNombre string          `json:"cliente_nombre"`
	MontoLabel    string          `json:"monto_label"`

	EstadoPagoBadge string `json:"estado_pago_badge"`
}

// EnrichPagos attaches each payment's customer
func EnrichPagos(pagos []models.Pago, clientes []models.Cliente) []PagoView {
	joined := Attach(pagos, clientes, func(p models.Pago) string { return p.IDCliente }, clienteID)

	views := make([]PagoView, len(joined))
	for i, j := range joined {
		views[i] = PagoView{
			Pago:          j.Row,
			Cliente:       j.Related,
			ClienteNombre: CustomerLabel(j.Related),
			MontoLabel:    models.FormatSoles(j.Row.Monto),

			EstadoPagoBadge: models.EstadoPago.Badge(j.Row.EstadoPago),
		}
	}
	return views
}

// IncidenciaView is an incident with its customer
type IncidenciaView struct {
	models.Incidencia
	Cliente       *models.Cliente `json:"cliente"`
	ClienteNombre string          `json:"cliente_nombre"`

	TipoIncidenciaBadge string `json:"tipo_incidencia_badge"`
	EstadoBadge         string `json:"estado_badge"`
	PrioridadBadge      string `json:"prioridad_badge"`
}

// EnrichIncidencias attaches each incident's customer
func EnrichIncidencias(incidencias []models.Incidencia, clientes []models.Cliente) []IncidenciaView {
	joined := Attach(incidencias, clientes, func(i models.Incidencia) string { return i.IDCliente }, clienteID)

	views := make([]IncidenciaView, len(joined))
	for i, j := range joined {
		views[i] = IncidenciaView{
			Incidencia:    j.Row,
			Cliente:       j.Related,
			ClienteNombre: CustomerLabel(j.Related),

			TipoIncidenciaBadge: models.TipoIncidencia.Badge(j.Row.TipoIncidencia),
			EstadoBadge:         models.EstadoIncidencia.Badge(j.Row.Estado),
			PrioridadBadge:      models.PrioridadIncidencia.Badge(j.Row.Prioridad),
		}
	}
	return views
}

// AccionView is a preventive action with its incident, which carries the incident's customer
type AccionView struct {
	models.AccionPreventiva
	Incidencia    *IncidenciaView `json:"incidencia"`
	ClienteNombre string          `json:"cliente_nombre"`
	EstadoBadge   string          `json:"estado_badge"`
}

// EnrichAcciones stitches in two hops: incidents get their customer first,
// then each action gets its already enriched incident.
func EnrichAcciones(acciones []models.AccionPreventiva, incidencias []models.Incidencia, clientes []models.Cliente) []AccionView {
	incidentViews := EnrichIncidencias(incidencias, clientes)
	joined := Attach(acciones, incidentViews,
		func(a models.AccionPreventiva) string { return a.IDIncidencia },
		func(v IncidenciaView) string { return v.ID },
	)

	views := make([]AccionView, len(joined))
	for i, j := range joined {
		view := AccionView{
			AccionPreventiva: j.Row,
			Incidencia:       j.Related,
			ClienteNombre:    MissingCustomerLabel,
			EstadoBadge:      models.EstadoAccion.Badge(j.Row.Estado),
		}
		if j.Related != nil {
			view.ClienteNombre = j.Related.ClienteNombre
		}
		views[i] = view
	}
	return views
}
