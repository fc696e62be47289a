package models

import "time"

// Rol defines the allowed roles in the system
type Rol string

const (
	RolAdministrador Rol = "ADMINISTRADOR"
	RolChef          Rol = "CHEF"
)

// Valid reports whether the role belongs to the closed set
func (r Rol) Valid() bool {
	switch r {
	case RolAdministrador, RolChef:
		return true
	}
	return false
}

type User struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Usuario    string `json:"usuario" gorm:"uniqueIndex;not null"`
	Contrasena string `json:"-" gorm:"not null"`
	Rol        Rol    `json:"rol" gorm:"not null;default:'ADMINISTRADOR'"`
	Nombre     string `json:"nombre"`
	// RestauranteID is set only for chefs: the single restaurant they cook for
	RestauranteID *uint         `json:"restaurante_id"`
	Restaurante   *Restaurante  `json:"restaurante,omitempty" gorm:"foreignKey:RestauranteID"`
	Recetas       []Receta      `json:"recetas,omitempty" gorm:"foreignKey:UsuarioID;constraint:OnDelete:CASCADE"`
	Restaurantes  []Restaurante `json:"restaurantes,omitempty" gorm:"foreignKey:AdministradorID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (User) TableName() string { return "usuarios" }
