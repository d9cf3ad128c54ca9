package models

// Usuario is an operator account of the dashboard
type Usuario struct {
	Base

	Nombre       string `json:"nombre" gorm:"column:nombre;not null;type:varchar(150)"`
	Usuario      string `json:"usuario" gorm:"column:usuario;uniqueIndex;not null;type:varchar(64)"`
	Rol          string `json:"rol" gorm:"column:rol;default:'operador';type:varchar(20)"` // administrador, tecnico, operador
	Estado       bool   `json:"estado" gorm:"column:estado;not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;type:varchar(100)"`
}

func (Usuario) TableName() string {
	return "usuarios"
}
