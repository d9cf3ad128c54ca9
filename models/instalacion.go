package models

// Instalacion is a field installation job
type Instalacion struct {
	Base

	IDCliente            string   `json:"id_cliente" gorm:"column:id_cliente;not null;type:varchar(36);index"`
	DireccionInstalacion string   `json:"direccion_instalacion" gorm:"column:direccion_instalacion;type:text"`
	FechaInstalacion     Date     `json:"fecha_instalacion" gorm:"column:fecha_instalacion;index"`
	TecnicoResponsable   string   `json:"tecnico_responsable" gorm:"column:tecnico_responsable;type:varchar(150)"`
	Observaciones        string   `json:"observaciones" gorm:"column:observaciones;type:text"`
	Latitud              *float64 `json:"latitud,omitempty" gorm:"column:latitud"`
	Longitud             *float64 `json:"longitud,omitempty" gorm:"column:longitud"`
	Estado               string   `json:"estado" gorm:"column:estado;default:'programada';type:varchar(20)"` // programada, completada, cancelada, pendiente
}

func (Instalacion) TableName() string {
	return "instalaciones"
}
