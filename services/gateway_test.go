package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"backend_tigo/database"
	"backend_tigo/models"
	"backend_tigo/testutils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

type GatewayTestSuite struct {
	suite.Suite
	db      *gorm.DB
	catalog *CatalogService
	ctx     context.Context
}

func (suite *GatewayTestSuite) SetupTest() {
	db, err := testutils.SetupTestDB()
	suite.Require().NoError(err)
	suite.db = db
	suite.catalog = NewCatalogService(database.NewGormStore(db), nil, quietLogger())
	suite.ctx = context.Background()
}

func (suite *GatewayTestSuite) TearDownTest() {
	testutils.CleanupTestDB(suite.db)
}

func (suite *GatewayTestSuite) TestInsertPayment_RoundTrip() {
	cliente := testutils.CreateTestCliente(suite.db, "Ana", "Paz", "Surco")
	suite.Require().NotNil(cliente)

	fecha, err := models.ParseDate("2024-05-10")
	suite.Require().NoError(err)
	req := models.CreatePagoRequest{
		IDCliente: cliente.ID,
		Monto:     "150.50",
		FechaPago: fecha,
	}
	pago, err := req.Record()
	suite.Require().NoError(err)

	created, err := suite.catalog.Pagos.Insert(suite.ctx, pago)
	suite.Require().NoError(err)
	suite.NotEmpty(created.ID)

	screen := suite.catalog.PagosScreen()
	suite.Require().NoError(screen.Load(suite.ctx))
	suite.Equal(StateLoaded, screen.State())
	suite.Require().Len(screen.Rows(), 1)

	row := screen.Rows()[0]
	suite.Equal(created.ID, row.ID)
	suite.True(row.Monto.Equal(decimal.RequireFromString("150.50")), "got %s", row.Monto)
	suite.Equal("S/ 150.50", row.MontoLabel)
	suite.Equal("Ana Paz", row.ClienteNombre)
	suite.Equal("2024-05-10", row.FechaPago.String())
}

func (suite *GatewayTestSuite) TestInsert_ClearsStoreAssignedColumns() {
	item := models.ItemInventario{
		Base:     models.Base{ID: "chosen-by-client", CreatedAt: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
		Nombre:   "Router",
		Tipo:     "modem",
		Estado:   "nuevo",
		Cantidad: 3,
	}

	created, err := suite.catalog.Inventario.Insert(suite.ctx, item)
	suite.Require().NoError(err)

	suite.NotEqual("chosen-by-client", created.ID)
	suite.Len(created.ID, 36)
	suite.True(created.CreatedAt.After(time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func (suite *GatewayTestSuite) TestInsertInventory_ZeroQuantity() {
	zero := 0
	item, err := models.CreateItemInventarioRequest{Nombre: "Modem X", Cantidad: &zero}.Record()
	suite.Require().NoError(err)
	suite.Equal(0, item.Cantidad)

	created, err := suite.catalog.Inventario.Insert(suite.ctx, item)
	suite.Require().NoError(err)
	suite.Equal(0, created.Cantidad)

	listed, err := suite.catalog.Inventario.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(listed, 1)
	suite.Equal(0, listed[0].Cantidad)

	defaulted, err := models.CreateItemInventarioRequest{Nombre: "Cable UTP"}.Record()
	suite.Require().NoError(err)
	_, err = suite.catalog.Inventario.Insert(suite.ctx, defaulted)
	suite.Require().NoError(err)

	var stored models.ItemInventario
	suite.Require().NoError(suite.db.First(&stored, "nombre = ?", "Cable UTP").Error)
	suite.Equal(1, stored.Cantidad)
}

func (suite *GatewayTestSuite) TestUpdateContract_PreservesIdentity() {
	cliente := testutils.CreateTestCliente(suite.db, "Ana", "Paz", "Surco")
	contrato := testutils.CreateTestContrato(suite.db, cliente.ID, "internet", "activo", "89.90")
	suite.Require().NotNil(contrato)

	before, err := suite.catalog.Contratos.Find(suite.ctx, contrato.ID)
	suite.Require().NoError(err)

	fields, err := models.UpdateContratoRequest{Estado: strPtr("suspendido")}.Updates()
	suite.Require().NoError(err)
	fields["id"] = "hijacked"
	fields["created_at"] = time.Now().Add(time.Hour)

	suite.Require().NoError(suite.catalog.Contratos.Update(suite.ctx, contrato.ID, fields))

	after, err := suite.catalog.Contratos.Find(suite.ctx, contrato.ID)
	suite.Require().NoError(err)
	suite.Equal("suspendido", after.Estado)
	suite.Equal(before.ID, after.ID)
	suite.True(before.CreatedAt.Equal(after.CreatedAt))
	suite.Equal(before.TipoServicio, after.TipoServicio)
	suite.True(before.MontoMensual.Equal(after.MontoMensual))
}

func (suite *GatewayTestSuite) TestUpdate_UnknownID() {
	err := suite.catalog.Clientes.Update(suite.ctx, "missing", map[string]any{"distrito": "Lince"})

	var writeErr *WriteError
	suite.Require().True(errors.As(err, &writeErr))
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *GatewayTestSuite) TestDelete_OrphansDependents() {
	cliente := testutils.CreateTestCliente(suite.db, "Ana", "Paz", "Surco")
	testutils.CreateTestContrato(suite.db, cliente.ID, "internet", "activo", "50")

	suite.Require().NoError(suite.catalog.Clientes.Delete(suite.ctx, cliente.ID, true))

	screen := suite.catalog.ContratosScreen()
	suite.Require().NoError(screen.Load(suite.ctx))
	suite.Require().Len(screen.Rows(), 1)
	suite.Nil(screen.Rows()[0].Cliente)
	suite.Equal(MissingCustomerLabel, screen.Rows()[0].ClienteNombre)
}

func (suite *GatewayTestSuite) TestInstalacionesOrderedByDate() {
	cliente := testutils.CreateTestCliente(suite.db, "Ana", "Paz", "Surco")
	for _, fecha := range []string{"2024-01-10", "2024-03-01", "2024-02-15"} {
		d, _ := models.ParseDate(fecha)
		suite.Require().NoError(suite.db.Create(&models.Instalacion{IDCliente: cliente.ID, FechaInstalacion: d, Estado: "programada"}).Error)
	}

	rows, err := suite.catalog.Instalaciones.List(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(rows, 3)
	suite.Equal("2024-03-01", rows[0].FechaInstalacion.String())
	suite.Equal("2024-02-15", rows[1].FechaInstalacion.String())
	suite.Equal("2024-01-10", rows[2].FechaInstalacion.String())
}

func TestGatewayTestSuite(t *testing.T) {
	suite.Run(t, new(GatewayTestSuite))
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	store := newFakeStore()
	gateway := NewGateway[models.Cliente](store, "", quietLogger())

	err := gateway.Delete(context.Background(), "u1", false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	assert.Empty(t, store.deletes)

	require.NoError(t, gateway.Delete(context.Background(), "u1", true))
	assert.Equal(t, []string{"u1"}, store.deletes)
}

func TestList_DropsRowsWithoutID(t *testing.T) {
	store := newFakeStore()
	store.tables["clientes"] = []models.Cliente{
		cliente("u1", "Ana", "Paz"),
		cliente("", "Sin", "Id"),
	}
	gateway := NewGateway[models.Cliente](store, "", quietLogger())

	rows, err := gateway.List(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "u1", rows[0].ID)
}

func TestList_FetchFailure(t *testing.T) {
	store := newFakeStore()
	store.failing["pagos"] = true
	gateway := NewGateway[models.Pago](store, "created_at DESC", quietLogger())

	rows, err := gateway.List(context.Background())

	assert.Nil(t, rows)
	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, "pagos", fetchErr.Table)
}

func TestUpdate_EmptyFormNeverReachesStore(t *testing.T) {
	store := newFakeStore()
	gateway := NewGateway[models.Contrato](store, "", quietLogger())

	err := gateway.Update(context.Background(), "c1", map[string]any{"id": "c2"})

	var validationErr *models.ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Empty(t, store.updates)
}
