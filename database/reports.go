package database

import (
	"context"
	"fmt"

	"backend_tigo/models"

	"gorm.io/gorm"
)

// reportView is a store-side aggregate read by the dashboard
type reportView struct {
	Name  string
	Query string
	Order string
}

var reportViews = []reportView{
	{
		Name: models.ReporteZonasCriticas,
		Query: `SELECT c.distrito AS distrito, COUNT(i.id) AS total_fallas
FROM incidencias i
JOIN clientes c ON c.id = i.id_cliente
WHERE i.tipo_incidencia = 'falla_servicio'
GROUP BY c.distrito`,
		Order: "total_fallas DESC, distrito ASC",
	},
	{
		Name: models.ReporteRankingPlanes,
		Query: `SELECT tipo_servicio AS nombre_plan, COUNT(id) AS total_contratos
FROM contratos
WHERE estado = 'activo'
GROUP BY tipo_servicio`,
		Order: "total_contratos DESC, nombre_plan ASC",
	},
	{
		Name: models.ReporteTopTecnicos,
		Query: `SELECT tecnico_responsable AS tecnico, COUNT(id) AS total_instalaciones
FROM instalaciones
WHERE estado = 'completada'
GROUP BY tecnico_responsable`,
		Order: "total_instalaciones DESC, tecnico ASC",
	},
	{
		Name: models.ReporteIngresosMensuales,
		Query: `SELECT SUBSTR(CAST(fecha_pago AS TEXT), 1, 7) AS mes, SUM(monto) AS total
FROM pagos
WHERE estado_pago = 'completado'
GROUP BY SUBSTR(CAST(fecha_pago AS TEXT), 1, 7)`,
		Order: "mes DESC",
	},
	{
		Name: models.ReporteClientesMorosos,
		Query: `SELECT c.id AS id_cliente, c.nombres AS nombres, c.apellidos AS apellidos,
	COALESCE((SELECT ct.tipo_servicio FROM contratos ct WHERE ct.id_cliente = c.id ORDER BY ct.created_at DESC LIMIT 1), '') AS nombre_plan,
	SUM(p.monto) AS deuda_estimada
FROM clientes c
JOIN pagos p ON p.id_cliente = c.id
WHERE p.estado_pago IN ('pendiente', 'rechazado')
GROUP BY c.id, c.nombres, c.apellidos`,
		Order: "deuda_estimada DESC, apellidos ASC",
	},
}

// reportOrders maps each report source to the ordering applied when it is read
var reportOrders = func() map[string]string {
	orders := make(map[string]string, len(reportViews))
	for _, v := range reportViews {
		orders[v.Name] = v.Order
	}
	return orders
}()

func materialized(db *gorm.DB) bool {
	return db.Dialector.Name() == "postgres"
}

// CreateReportViews creates the report views: materialized on postgres, plain elsewhere
func CreateReportViews(db *gorm.DB) error {
	kind := "VIEW"
	if materialized(db) {
		kind = "MATERIALIZED VIEW"
	}

	for _, v := range reportViews {
		stmt := fmt.Sprintf("CREATE %s IF NOT EXISTS %s AS %s", kind, v.Name, v.Query)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create report view %s: %w", v.Name, err)
		}
	}
	return nil
}

// RefreshReportViews recomputes the materialized report views.
// Plain views are always current, so this is a no-op on sqlite.
func RefreshReportViews(ctx context.Context, db *gorm.DB) error {
	if !materialized(db) {
		return nil
	}

	for _, v := range reportViews {
		if err := db.WithContext(ctx).Exec("REFRESH MATERIALIZED VIEW " + v.Name).Error; err != nil {
			return fmt.Errorf("failed to refresh %s: %w", v.Name, err)
		}
	}
	return nil
}
