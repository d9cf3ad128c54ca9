package api

import (
	"context"
	"net/http"

	"backend_tigo/models"
	"backend_tigo/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CatalogAPI exposes the eight management screens
type CatalogAPI struct {
	catalog *services.CatalogService
	users   *services.UserService
	logger  *logrus.Logger
}

func NewCatalogAPI(catalog *services.CatalogService, users *services.UserService, logger *logrus.Logger) *CatalogAPI {
	return &CatalogAPI{catalog: catalog, users: users, logger: logger}
}

// RegisterRoutes mounts one resource per table
func (ca *CatalogAPI) RegisterRoutes(router *gin.RouterGroup) {
	s := ca.catalog

	(&resource[models.Cliente, services.ClienteView, models.CreateClienteRequest, models.UpdateClienteRequest]{
		name:    "clientes",
		gateway: s.Clientes,
		screen:  s.ClientesScreen,
		search:  services.ClienteSearchFields,
		logger:  ca.logger,
	}).RegisterRoutes(router)

	(&resource[models.Contrato, services.ContratoView, models.CreateContratoRequest, models.UpdateContratoRequest]{
		name:    "contratos",
		gateway: s.Contratos,
		screen:  s.ContratosScreen,
		search:  services.ContratoSearchFields,
		logger:  ca.logger,
	}).RegisterRoutes(router)

	(&resource[models.Instalacion, services.InstalacionView, models.CreateInstalacionRequest, models.UpdateInstalacionRequest]{
		name:    "instalaciones",
		gateway: s.Instalaciones,
		screen:  s.InstalacionesScreen,
		search:  services.InstalacionSearchFields,
		logger:  ca.logger,
	}).RegisterRoutes(router)

	(&resource[models.Pago, services.PagoView, models.CreatePagoRequest, models.UpdatePagoRequest]{
		name:    "pagos",
		gateway: s.Pagos,
		screen:  s.PagosScreen,
		search:  services.PagoSearchFields,
		logger:  ca.logger,
	}).RegisterRoutes(router)

	(&resource[models.Incidencia, services.IncidenciaView, models.CreateIncidenciaRequest, models.UpdateIncidenciaRequest]{
		name:    "incidencias",
		gateway: s.Incidencias,
		screen:  s.IncidenciasScreen,
		search:  services.IncidenciaSearchFields,
		logger:  ca.logger,
		created: s.IncidentRegistered,
	}).RegisterRoutes(router)

	(&resource[models.AccionPreventiva, services.AccionView, models.CreateAccionPreventivaRequest, models.UpdateAccionPreventivaRequest]{
		name:    "acciones",
		gateway: s.Acciones,
		screen:  s.AccionesScreen,
		search:  services.AccionSearchFields,
		logger:  ca.logger,
	}).RegisterRoutes(router)

	(&resource[models.ItemInventario, services.ItemInventarioView, models.CreateItemInventarioRequest, models.UpdateItemInventarioRequest]{
		name:    "inventario",
		gateway: s.Inventario,
		screen:  s.InventarioScreen,
		search:  services.InventarioSearchFields,
		logger:  ca.logger,
	}).RegisterRoutes(router)

	usuarios := &resource[models.Usuario, services.UsuarioView, models.CreateUsuarioRequest, models.UpdateUsuarioRequest]{
		name:    "usuarios",
		gateway: s.Usuarios,
		screen:  s.UsuariosScreen,
		search:  services.UsuarioSearchFields,
		logger:  ca.logger,
		insert:  ca.insertUsuario,
		updates: ca.usuarioUpdates,
	}
	usuarios.RegisterRoutes(router)
	router.PATCH("/usuarios/:id/estado", ca.ToggleUsuarioEstado)
}

func (ca *CatalogAPI) insertUsuario(ctx context.Context, req models.CreateUsuarioRequest, usuario models.Usuario) (models.Usuario, error) {
	return ca.users.Create(ctx, usuario, req.Password)
}

// usuarioUpdates adds the new password hash when the request carries a password
func (ca *CatalogAPI) usuarioUpdates(req models.UpdateUsuarioRequest) (map[string]any, error) {
	fields, err := req.Updates()
	if err != nil {
		return nil, err
	}
	if req.Password != nil {
		hash, err := services.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		fields["password_hash"] = hash
	}
	return fields, nil
}

// ToggleUsuarioEstado godoc
// PATCH /api/usuarios/:id/estado
func (ca *CatalogAPI) ToggleUsuarioEstado(c *gin.Context) {
	usuario, err := ca.users.ToggleEstado(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondFailure(c, ca.logger, "ToggleUsuarioEstado", err)
		return
	}

	ca.logger.WithFields(logrus.Fields{
		"usuario": usuario.Usuario,
		"estado":  usuario.Estado,
	}).Info("user state toggled")

	respondSuccess(c, http.StatusOK, usuario)
}
