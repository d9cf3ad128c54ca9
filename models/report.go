package models

import "github.com/shopspring/decimal"

// Report source names exposed by the store
const (
	ReporteZonasCriticas     = "reporte_zonas_criticas"
	ReporteRankingPlanes     = "reporte_ranking_planes"
	ReporteTopTecnicos       = "reporte_top_tecnicos"
	ReporteIngresosMensuales = "reporte_ingresos_mensuales"
	ReporteClientesMorosos   = "reporte_clientes_morosos"
)

// ZonaCritica is a district with its service-fault count
type ZonaCritica struct {
	Distrito    string `json:"distrito" gorm:"column:distrito"`
	TotalFallas int64  `json:"total_fallas" gorm:"column:total_fallas"`
}

// PlanRanking is a service plan with its number of active contracts
type PlanRanking struct {
	Plan           string `json:"plan" gorm:"column:nombre_plan"`
	TotalContratos int64  `json:"total_contratos" gorm:"column:total_contratos"`
}

// TecnicoTop is a technician with its number of completed installations
type TecnicoTop struct {
	Tecnico            string `json:"tecnico" gorm:"column:tecnico"`
	TotalInstalaciones int64  `json:"total_instalaciones" gorm:"column:total_instalaciones"`
}

// IngresoMensual is the completed-payment total of a month (YYYY-MM)
type IngresoMensual struct {
	Mes   string          `json:"mes" gorm:"column:mes"`
	Total decimal.Decimal `json:"total" gorm:"column:total"`
}

// ClienteMoroso is a customer with outstanding payments
type ClienteMoroso struct {
	IDCliente     string          `json:"id_cliente" gorm:"column:id_cliente"`
	Nombres       string          `json:"nombres" gorm:"column:nombres"`
	Apellidos     string          `json:"apellidos" gorm:"column:apellidos"`
	Plan          string          `json:"plan" gorm:"column:nombre_plan"`
	DeudaEstimada decimal.Decimal `json:"deuda_estimada" gorm:"column:deuda_estimada"`
}
