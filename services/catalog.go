package services

import (
	"context"

	"backend_tigo/config"
	"backend_tigo/models"

	"github.com/sirupsen/logrus"
)

// CatalogService holds the gateway of every table and builds the screens over them
type CatalogService struct {
	Clientes      *Gateway[models.Cliente]
	Contratos     *Gateway[models.Contrato]
	Instalaciones *Gateway[models.Instalacion]
	Pagos         *Gateway[models.Pago]
	Incidencias   *Gateway[models.Incidencia]
	Acciones      *Gateway[models.AccionPreventiva]
	Inventario    *Gateway[models.ItemInventario]
	Usuarios      *Gateway[models.Usuario]

	notifier Notifier
	logger   *logrus.Logger
}

// NewCatalogService wires the gateways with their read orderings
func NewCatalogService(store Store, notifier Notifier, logger *logrus.Logger) *CatalogService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &CatalogService{
		Clientes:      NewGateway[models.Cliente](store, "", logger),
		Contratos:     NewGateway[models.Contrato](store, "created_at DESC", logger),
		Instalaciones: NewGateway[models.Instalacion](store, "fecha_instalacion DESC", logger),
		Pagos:         NewGateway[models.Pago](store, "created_at DESC", logger),
		Incidencias:   NewGateway[models.Incidencia](store, "created_at DESC", logger),
		Acciones:      NewGateway[models.AccionPreventiva](store, "created_at DESC", logger),
		Inventario:    NewGateway[models.ItemInventario](store, "created_at DESC", logger),
		Usuarios:      NewGateway[models.Usuario](store, "", logger),
		notifier:      notifier,
		logger:        logger,
	}
}

func (s *CatalogService) ClientesScreen() *Screen[ClienteView] {
	return NewScreen(func(ctx context.Context) ([]ClienteView, error) {
		clientes, err := s.Clientes.List(ctx)
		if err != nil {
			return nil, err
		}
		return ClienteViews(clientes), nil
	})
}

func (s *CatalogService) ContratosScreen() *Screen[ContratoView] {
	return NewScreen(func(ctx context.Context) ([]ContratoView, error) {
		var contratos []models.Contrato
		var clientes []models.Cliente
		if err := LoadAll(ctx, s.Contratos.Into(&contratos), s.Clientes.Into(&clientes)); err != nil {
			return nil, err
		}
		return EnrichContratos(contratos, clientes), nil
	})
}

func (s *CatalogService) InstalacionesScreen() *Screen[InstalacionView] {
	return NewScreen(func(ctx context.Context) ([]InstalacionView, error) {
		var instalaciones []models.Instalacion
		var clientes []models.Cliente
		if err := LoadAll(ctx, s.Instalaciones.Into(&instalaciones), s.Clientes.Into(&clientes)); err != nil {
			return nil, err
		}
		return EnrichInstalaciones(instalaciones, clientes), nil
	})
}

func (s *CatalogService) PagosScreen() *Screen[PagoView] {
	return NewScreen(func(ctx context.Context) ([]PagoView, error) {
		var pagos []models.Pago
		var clientes []models.Cliente
		if err := LoadAll(ctx, s.Pagos.Into(&pagos), s.Clientes.Into(&clientes)); err != nil {
			return nil, err
		}
		return EnrichPagos(pagos, clientes), nil
	})
}

func (s *CatalogService) IncidenciasScreen() *Screen[IncidenciaView] {
	return NewScreen(func(ctx context.Context) ([]IncidenciaView, error) {
		var incidencias []models.Incidencia
		var clientes []models.Cliente
		if err := LoadAll(ctx, s.Incidencias.Into(&incidencias), s.Clientes.Into(&clientes)); err != nil {
			return nil, err
		}
		return EnrichIncidencias(incidencias, clientes), nil
	})
}

// AccionesScreen loads actions, incidents and customers together for the two-hop stitch
func (s *CatalogService) AccionesScreen() *Screen[AccionView] {
	return NewScreen(func(ctx context.Context) ([]AccionView, error) {
		var acciones []models.AccionPreventiva
		var incidencias []models.Incidencia
		var clientes []models.Cliente
		err := LoadAll(ctx,
			s.Acciones.Into(&acciones),
			s.Incidencias.Into(&incidencias),
			s.Clientes.Into(&clientes),
		)
		if err != nil {
			return nil, err
		}
		return EnrichAcciones(acciones, incidencias, clientes), nil
	})
}

func (s *CatalogService) InventarioScreen() *Screen[ItemInventarioView] {
	return NewScreen(func(ctx context.Context) ([]ItemInventarioView, error) {
		items, err := s.Inventario.List(ctx)
		if err != nil {
			return nil, err
		}
		return ItemInventarioViews(items), nil
	})
}

func (s *CatalogService) UsuariosScreen() *Screen[UsuarioView] {
	return NewScreen(func(ctx context.Context) ([]UsuarioView, error) {
		usuarios, err := s.Usuarios.List(ctx)
		if err != nil {
			return nil, err
		}
		return UsuarioViews(usuarios), nil
	})
}

// IncidentRegistered alerts the field-ops chat about a new critical incident.
// A failed alert is logged and does not affect the write.
func (s *CatalogService) IncidentRegistered(ctx context.Context, incidencia models.Incidencia) {
	if !incidencia.IsCritical() {
		return
	}

	var cliente *models.Cliente
	if c, err := s.Clientes.Find(ctx, incidencia.IDCliente); err == nil {
		cliente = &c
	}

	if err := s.notifier.NotifyCriticalIncident(ctx, incidencia, cliente); err != nil {
		config.LogError(s.logger, "services", "IncidentRegistered", "telegram alert", incidencia.ID, err)
	}
}
