package services

import (
	"strings"

	"backend_tigo/models"
)

// Search keeps the rows where any of the searchable fields contains term,
// ignoring case. An empty term keeps every row.
func Search[T any](rows []T, term string, fields func(T) []string) []T {
	if term == "" || fields == nil {
		return rows
	}

	needle := strings.ToLower(term)
	matched := make([]T, 0, len(rows))
	for _, row := range rows {
		for _, field := range fields(row) {
			if strings.Contains(strings.ToLower(field), needle) {
				matched = append(matched, row)
				break
			}
		}
	}
	return matched
}

func customerName(c *models.Cliente) []string {
	if c == nil {
		return nil
	}
	return []string{c.FullName()}
}

// ClienteSearchFields matches on names, surnames, DNI and district
func ClienteSearchFields(c ClienteView) []string {
	return []string{c.Nombres, c.Apellidos, c.DNI, c.Distrito}
}

// ContratoSearchFields matches on the customer name
func ContratoSearchFields(v ContratoView) []string {
	return customerName(v.Cliente)
}

// PagoSearchFields matches on the customer name
func PagoSearchFields(v PagoView) []string {
	return customerName(v.Cliente)
}

// InstalacionSearchFields matches on the customer name or the technician
func InstalacionSearchFields(v InstalacionView) []string {
	return append(customerName(v.Cliente), v.TecnicoResponsable)
}

// IncidenciaSearchFields matches on the description or the customer name
func IncidenciaSearchFields(v IncidenciaView) []string {
	return append([]string{v.Descripcion}, customerName(v.Cliente)...)
}

// AccionSearchFields matches on the description or the customer of the linked incident
func AccionSearchFields(v AccionView) []string {
	fields := []string{v.Descripcion}
	if v.Incidencia != nil {
		fields = append(fields, customerName(v.Incidencia.Cliente)...)
	}
	return fields
}

// InventarioSearchFields matches on name, model or serial
func InventarioSearchFields(item ItemInventarioView) []string {
	fields := []string{item.Nombre, item.Modelo}
	if item.Serie != nil {
		fields = append(fields, *item.Serie)
	}
	return fields
}

// UsuarioSearchFields matches on the full name or the login
func UsuarioSearchFields(u UsuarioView) []string {
	return []string{u.Nombre, u.Usuario.Usuario}
}
