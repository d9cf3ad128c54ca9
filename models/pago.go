package models

import "github.com/shopspring/decimal"

// Pago is a payment received from a customer
type Pago struct {
	Base

	IDCliente  string          `json:"id_cliente" gorm:"column:id_cliente;not null;type:varchar(36);index"`
	Monto      decimal.Decimal `json:"monto" gorm:"column:monto;type:decimal(12,2)"`
	FechaPago  Date            `json:"fecha_pago" gorm:"column:fecha_pago"`
	EstadoPago string          `json:"estado_pago" gorm:"column:estado_pago;default:'completado';type:varchar(20)"` // completado, pendiente, rechazado
	MetodoPago string          `json:"metodo_pago" gorm:"column:metodo_pago;default:'efectivo';type:varchar(30)"`
}

func (Pago) TableName() string {
	return "pagos"
}
