package models

import "strings"

// Cliente is a service subscriber
type Cliente struct {
	Base

	Nombres        string `json:"nombres" gorm:"column:nombres;not null;type:varchar(100)"`
	Apellidos      string `json:"apellidos" gorm:"column:apellidos;not null;type:varchar(100)"`
	DNI            string `json:"dni" gorm:"column:dni;type:varchar(20);index"`
	Direccion      string `json:"direccion" gorm:"column:direccion;type:text"`
	Distrito       string `json:"distrito" gorm:"column:distrito;type:varchar(100);index"`
	Telefono       string `json:"telefono" gorm:"column:telefono;type:varchar(20)"`
	EstadoServicio string `json:"estado_servicio" gorm:"column:estado_servicio;default:'activo';type:varchar(20)"` // activo, suspendido, inactivo
}

func (Cliente) TableName() string {
	return "clientes"
}

// FullName returns "nombres apellidos"
func (c *Cliente) FullName() string {
	return strings.TrimSpace(c.Nombres + " " + c.Apellidos)
}
