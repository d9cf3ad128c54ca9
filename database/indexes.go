package database

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// DatabaseIndex describes a secondary index created after migration
type DatabaseIndex struct {
	Name    string
	Table   string
	Columns []string
	Unique  bool
}

// PerformanceIndexes back the fixed read orderings and the report views
var PerformanceIndexes = []DatabaseIndex{
	{Name: "idx_contratos_created_at", Table: "contratos", Columns: []string{"created_at DESC"}},
	{Name: "idx_contratos_estado_tipo", Table: "contratos", Columns: []string{"estado", "tipo_servicio"}},
	{Name: "idx_pagos_created_at", Table: "pagos", Columns: []string{"created_at DESC"}},
	{Name: "idx_pagos_estado_fecha", Table: "pagos", Columns: []string{"estado_pago", "fecha_pago"}},
	{Name: "idx_incidencias_created_at", Table: "incidencias", Columns: []string{"created_at DESC"}},
	{Name: "idx_incidencias_tipo", Table: "incidencias", Columns: []string{"tipo_incidencia"}},
	{Name: "idx_acciones_created_at", Table: "acciones_preventivas", Columns: []string{"created_at DESC"}},
	{Name: "idx_inventario_created_at", Table: "inventario", Columns: []string{"created_at DESC"}},
	{Name: "idx_instalaciones_estado_tecnico", Table: "instalaciones", Columns: []string{"estado", "tecnico_responsable"}},
}

// CreatePerformanceIndexes creates every index in PerformanceIndexes.
// A failing index is logged and skipped.
func CreatePerformanceIndexes(db *gorm.DB, log *logrus.Logger) error {
	for _, index := range PerformanceIndexes {
		if err := CreateIndex(db, index); err != nil {
			log.WithError(err).WithField("index", index.Name).Warn("failed to create index")
			continue
		}
		log.WithField("index", index.Name).Debug("index ready")
	}
	return nil
}

// CreateIndex creates a single index if it does not exist yet
func CreateIndex(db *gorm.DB, index DatabaseIndex) error {
	unique := ""
	if index.Unique {
		unique = "UNIQUE "
	}

	stmt := fmt.Sprintf(
		"CREATE %sINDEX IF NOT EXISTS %s ON %s (%s)",
		unique, index.Name, index.Table, strings.Join(index.Columns, ", "),
	)
	return db.Exec(stmt).Error
}

// DropIndex removes an index
func DropIndex(db *gorm.DB, indexName string) error {
	return db.Exec(fmt.Sprintf("DROP INDEX IF EXISTS %s", indexName)).Error
}
