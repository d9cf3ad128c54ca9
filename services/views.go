package services

import "backend_tigo/models"

// ClienteView is a customer with its service badge
type ClienteView struct {
	models.Cliente
	EstadoServicioBadge string `json:"estado_servicio_badge"`
}

func ClienteViews(clientes []models.Cliente) []ClienteView {
	views := make([]ClienteView, len(clientes))
	for i, c := range clientes {
		views[i] = ClienteView{Cliente: c, EstadoServicioBadge: models.EstadoServicio.Badge(c.EstadoServicio)}
	}
	return views
}

// ItemInventarioView is a stock item with its type and condition badges
type ItemInventarioView struct {
	models.ItemInventario
	TipoBadge   string `json:"tipo_badge"`
	EstadoBadge string `json:"estado_badge"`
}

func ItemInventarioViews(items []models.ItemInventario) []ItemInventarioView {
	views := make([]ItemInventarioView, len(items))
	for i, item := range items {
		views[i] = ItemInventarioView{
			ItemInventario: item,
			TipoBadge:      models.TipoInventario.Badge(item.Tipo),
			EstadoBadge:    models.EstadoInventario.Badge(item.Estado),
		}
	}
	return views
}

// UsuarioView is an account with its role badge
type UsuarioView struct {
	models.Usuario
	RolBadge string `json:"rol_badge"`
}

func UsuarioViews(usuarios []models.Usuario) []UsuarioView {
	views := make([]UsuarioView, len(usuarios))
	for i, u := range usuarios {
		views[i] = UsuarioView{Usuario: u, RolBadge: models.RolUsuario.Badge(u.Rol)}
	}
	return views
}
