package models

import "github.com/shopspring/decimal"

// Contrato is a service contract held by a customer
type Contrato struct {
	Base

	IDCliente    string          `json:"id_cliente" gorm:"column:id_cliente;not null;type:varchar(36);index"`
	TipoServicio string          `json:"tipo_servicio" gorm:"column:tipo_servicio;not null;type:varchar(20)"` // internet, cable, telefonia, combo
	FechaInicio  Date            `json:"fecha_inicio" gorm:"column:fecha_inicio"`
	Estado       string          `json:"estado" gorm:"column:estado;default:'activo';type:varchar(20)"` // activo, suspendido, cancelado
	MontoMensual decimal.Decimal `json:"monto_mensual" gorm:"column:monto_mensual;type:decimal(12,2)"`
}

func (Contrato) TableName() string {
	return "contratos"
}
