package testutils

import (
	"backend_tigo/database"
	"backend_tigo/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB creates an in-memory sqlite database with the full schema.
// Every test gets its own database.
func SetupTestDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// each connection to ":memory:" is a separate database
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// CleanupTestDB closes the test database
func CleanupTestDB(db *gorm.DB) {
	if db != nil {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	}
}

// CreateTestCliente inserts a customer
func CreateTestCliente(db *gorm.DB, nombres, apellidos, distrito string) *models.Cliente {
	cliente := &models.Cliente{
		Nombres:        nombres,
		Apellidos:      apellidos,
		DNI:            "40000000",
		Distrito:       distrito,
		EstadoServicio: "activo",
	}
	if err := db.Create(cliente).Error; err != nil {
		return nil
	}
	return cliente
}

// CreateTestContrato inserts a contract for idCliente
func CreateTestContrato(db *gorm.DB, idCliente, tipo, estado string, monto string) *models.Contrato {
	contrato := &models.Contrato{
		IDCliente:    idCliente,
		TipoServicio: tipo,
		FechaInicio:  models.Today(),
		Estado:       estado,
		MontoMensual: decimal.RequireFromString(monto),
	}
	if err := db.Create(contrato).Error; err != nil {
		return nil
	}
	return contrato
}

// CreateTestPago inserts a payment for idCliente on fecha (YYYY-MM-DD)
func CreateTestPago(db *gorm.DB, idCliente, monto, fecha, estado string) *models.Pago {
	date, err := models.ParseDate(fecha)
	if err != nil {
		return nil
	}
	pago := &models.Pago{
		IDCliente:  idCliente,
		Monto:      decimal.RequireFromString(monto),
		FechaPago:  date,
		EstadoPago: estado,
		MetodoPago: "efectivo",
	}
	if err := db.Create(pago).Error; err != nil {
		return nil
	}
	return pago
}

// CreateTestIncidencia inserts an incident for idCliente
func CreateTestIncidencia(db *gorm.DB, idCliente, tipo, prioridad string) *models.Incidencia {
	incidencia := &models.Incidencia{
		IDCliente:      idCliente,
		TipoIncidencia: tipo,
		Descripcion:    "Sin señal desde la mañana",
		Fecha:          models.Today(),
		Estado:         "abierta",
		Prioridad:      prioridad,
	}
	if err := db.Create(incidencia).Error; err != nil {
		return nil
	}
	return incidencia
}

// CreateTestInstalacion inserts an installation for idCliente
func CreateTestInstalacion(db *gorm.DB, idCliente, tecnico, estado string) *models.Instalacion {
	instalacion := &models.Instalacion{
		IDCliente:            idCliente,
		DireccionInstalacion: "Av. Arequipa 123",
		FechaInstalacion:     models.Today(),
		TecnicoResponsable:   tecnico,
		Estado:               estado,
	}
	if err := db.Create(instalacion).Error; err != nil {
		return nil
	}
	return instalacion
}

// CreateTestUsuario inserts an operator account with an already hashed password
func CreateTestUsuario(db *gorm.DB, usuario, passwordHash string, estado bool) *models.Usuario {
	u := &models.Usuario{
		Nombre:       "Usuario " + usuario,
		Usuario:      usuario,
		Rol:          "operador",
		Estado:       estado,
		PasswordHash: passwordHash,
	}
	if err := db.Create(u).Error; err != nil {
		return nil
	}
	return u
}
