package models

import "time"

type Restaurante struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Nombre       string `json:"nombre" gorm:"not null"`
	Direccion    string `json:"direccion"`
	Telefono     string `json:"telefono"`
	HoraAtencion string `json:"hora_atencion"`
	Facebook     string `json:"facebook"`
	Instagram    string `json:"instagram"`
	Twitter      string `json:"twitter"`
	TipoComida   string `json:"tipo_comida"`
	// Service modes: dine-in, own delivery and third-party platforms
	IsEnLugar       bool         `json:"is_en_lugar"`
	IsDomicilios    bool         `json:"is_domicilios"`
	IsRappi         bool         `json:"is_rappi"`
	IsDidi          bool         `json:"is_didi"`
	AdministradorID uint         `json:"administrador_id" gorm:"not null;index"`
	Administrador   *User        `json:"administrador,omitempty" gorm:"foreignKey:AdministradorID"`
	Menus           []MenuSemana `json:"menus,omitempty" gorm:"foreignKey:RestauranteID"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

func (Restaurante) TableName() string { return "restaurantes" }
