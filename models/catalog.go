package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Ingrediente struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Nombre    string          `json:"nombre" gorm:"not null"`
	Unidad    string          `json:"unidad"`
	Costo     decimal.Decimal `json:"costo" gorm:"type:decimal(12,2)"`
	Calorias  decimal.Decimal `json:"calorias" gorm:"type:decimal(12,2)"`
	Sitio     string          `json:"sitio"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (Ingrediente) TableName() string { return "ingredientes" }

// RecetaIngrediente is one line item: a quantity of one ingredient in one recipe
type RecetaIngrediente struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	Cantidad      decimal.Decimal `json:"cantidad" gorm:"type:decimal(12,2)"`
	IngredienteID uint            `json:"ingrediente" gorm:"not null;index"`
	Ingrediente   *Ingrediente    `json:"-" gorm:"foreignKey:IngredienteID"`
	RecetaID      uint            `json:"receta" gorm:"not null;index"`
}

func (RecetaIngrediente) TableName() string { return "receta_ingredientes" }

type Receta struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Nombre      string          `json:"nombre" gorm:"not null"`
	Duracion    decimal.Decimal `json:"duracion" gorm:"type:decimal(12,2)"`
	Porcion     decimal.Decimal `json:"porcion" gorm:"type:decimal(12,2)"`
	Preparacion string          `json:"preparacion"`
	UsuarioID   uint            `json:"usuario" gorm:"not null;index"`
	// Line items are owned by the recipe and removed with it
	Ingredientes []RecetaIngrediente `json:"ingredientes" gorm:"foreignKey:RecetaID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func (Receta) TableName() string { return "recetas" }
