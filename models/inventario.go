package models

// ItemInventario is a stock item held by the field team
type ItemInventario struct {
	Base

	Nombre           string  `json:"nombre" gorm:"column:nombre;not null;type:varchar(150)"`
	Tipo             string  `json:"tipo" gorm:"column:tipo;default:'otro';type:varchar(20)"` // modem, cable, fibra, conector, herramienta, otro
	Modelo           string  `json:"modelo" gorm:"column:modelo;type:varchar(100)"`
	Serie            *string `json:"serie" gorm:"column:serie;type:varchar(100)"`
	Estado           string  `json:"estado" gorm:"column:estado;default:'nuevo';type:varchar(20)"` // nuevo, usado, dañado, en_uso
	Cantidad         int     `json:"cantidad" gorm:"column:cantidad;not null"`
	FechaAdquisicion Date    `json:"fecha_adquisicion" gorm:"column:fecha_adquisicion"`
}

func (ItemInventario) TableName() string {
	return "inventario"
}
