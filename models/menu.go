package models

import "time"

// MenuSemana is a named 7-day recipe schedule for one restaurant.
// Nombre is unique across all menus, not per restaurant.
type MenuSemana struct {
	ID            uint         `json:"id" gorm:"primaryKey"`
	Nombre        string       `json:"nombre" gorm:"uniqueIndex;not null"`
	FechaInicial  time.Time    `json:"fecha_inicial" gorm:"not null"`
	FechaFinal    time.Time    `json:"fecha_final" gorm:"not null"`
	RestauranteID uint         `json:"restaurante" gorm:"not null;index"`
	Restaurante   *Restaurante `json:"-" gorm:"foreignKey:RestauranteID"`
	UsuarioID     uint         `json:"usuario" gorm:"not null"`
	Usuario       *User        `json:"-" gorm:"foreignKey:UsuarioID"`
	Recetas       []Receta     `json:"recetas" gorm:"many2many:menu_receta;joinForeignKey:MenuID;joinReferences:RecetaID"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

func (MenuSemana) TableName() string { return "menu_semana" }

// MenuReceta is the join row pairing a weekly menu with a recipe
type MenuReceta struct {
	MenuID   uint `json:"menu" gorm:"primaryKey"`
	RecetaID uint `json:"receta" gorm:"primaryKey"`
}

func (MenuReceta) TableName() string { return "menu_receta" }
