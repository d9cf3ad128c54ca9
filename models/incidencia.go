package models

// Incidencia is a customer-reported problem
type Incidencia struct {
	Base

	IDCliente      string `json:"id_cliente" gorm:"column:id_cliente;not null;type:varchar(36);index"`
	TipoIncidencia string `json:"tipo_incidencia" gorm:"column:tipo_incidencia;not null;type:varchar(30)"` // falla_servicio, soporte_tecnico, facturacion, otro
	Descripcion    string `json:"descripcion" gorm:"column:descripcion;type:text"`
	Fecha          Date   `json:"fecha" gorm:"column:fecha"`
	Estado         string `json:"estado" gorm:"column:estado;default:'abierta';type:varchar(20)"`     // abierta, en_proceso, resuelta, cerrada
	Prioridad      string `json:"prioridad" gorm:"column:prioridad;default:'media';type:varchar(20)"` // baja, media, alta, critica
}

func (Incidencia) TableName() string {
	return "incidencias"
}

// IsCritical reports whether the incident has critical priority
func (i *Incidencia) IsCritical() bool {
	return i.Prioridad == "critica"
}
