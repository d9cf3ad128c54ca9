package models

// AccionPreventiva is a preventive measure taken after an incident
type AccionPreventiva struct {
	Base

	IDIncidencia string `json:"id_incidencia" gorm:"column:id_incidencia;not null;type:varchar(36);index"`
	Descripcion  string `json:"descripcion" gorm:"column:descripcion;type:text"`
	Fecha        Date   `json:"fecha" gorm:"column:fecha"`
	Estado       string `json:"estado" gorm:"column:estado;default:'planificada';type:varchar(20)"` // planificada, en_ejecucion, completada
}

func (AccionPreventiva) TableName() string {
	return "acciones_preventivas"
}
