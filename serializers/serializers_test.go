package serializers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/andsoler0309/restaurantes-app/models"

	"github.com/shopspring/decimal"
)

func TestNewIngredienteFormatsNumericsAsStrings(t *testing.T) {
	ing := models.Ingrediente{
		ID:       7,
		Nombre:   "Tomate",
		Unidad:   "kg",
		Costo:    decimal.RequireFromString("2500.50"),
		Calorias: decimal.RequireFromString("18"),
		Sitio:    "Plaza",
	}
	dto := NewIngrediente(&ing)
	if dto.ID != "7" {
		t.Errorf("ID = %q, want \"7\"", dto.ID)
	}
	if dto.Costo != "2500.5" {
		t.Errorf("Costo = %q, want \"2500.5\"", dto.Costo)
	}
	if dto.Calorias != "18" {
		t.Errorf("Calorias = %q, want \"18\"", dto.Calorias)
	}

	raw, err := json.Marshal(dto)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, field := range []string{"id", "costo", "calorias"} {
		if _, ok := decoded[field].(string); !ok {
			t.Errorf("field %q should be a JSON string, got %T", field, decoded[field])
		}
	}
}

func TestNewRecetaNestsEnrichedLineItems(t *testing.T) {
	receta := models.Receta{
		ID:          3,
		Nombre:      "Ajiaco",
		Duracion:    decimal.RequireFromString("90"),
		Porcion:     decimal.RequireFromString("4"),
		Preparacion: "Cocinar todo junto",
		UsuarioID:   12,
		Ingredientes: []models.RecetaIngrediente{
			{
				ID:            5,
				Cantidad:      decimal.RequireFromString("0.5"),
				IngredienteID: 7,
				Ingrediente: &models.Ingrediente{
					ID:     7,
					Nombre: "Papa criolla",
					Costo:  decimal.RequireFromString("3200"),
				},
			},
		},
	}

	dto := NewReceta(&receta)
	if dto.Usuario != "12" {
		t.Errorf("Usuario = %q, want \"12\"", dto.Usuario)
	}
	if len(dto.Ingredientes) != 1 {
		t.Fatalf("Ingredientes length = %d, want 1", len(dto.Ingredientes))
	}
	item := dto.Ingredientes[0]
	if item.ID != "5" || item.Cantidad != "0.5" {
		t.Errorf("line item = %+v", item)
	}
	if item.Ingrediente == nil || item.Ingrediente.Nombre != "Papa criolla" {
		t.Errorf("line item should nest full ingredient, got %+v", item.Ingrediente)
	}
}

func TestNewMenuSemanaFormatsDatesAndCreator(t *testing.T) {
	menu := models.MenuSemana{
		ID:            2,
		Nombre:        "Semana1",
		FechaInicial:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		FechaFinal:    time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
		RestauranteID: 9,
		UsuarioID:     4,
		Usuario:       &models.User{Usuario: "chef1", Rol: models.RolChef},
	}
	dto := NewMenuSemana(&menu)
	if dto.FechaInicial != "2024-01-01" || dto.FechaFinal != "2024-01-07" {
		t.Errorf("dates = %q..%q", dto.FechaInicial, dto.FechaFinal)
	}
	if dto.Restaurante != "9" {
		t.Errorf("Restaurante = %q, want \"9\"", dto.Restaurante)
	}
	if dto.Creador == nil || dto.Creador.Usuario != "chef1" || dto.Creador.Rol != "CHEF" {
		t.Errorf("Creador = %+v", dto.Creador)
	}
	if dto.Recetas == nil {
		t.Error("Recetas should serialize as an empty list, not null")
	}
}

func TestNewChefCarriesRestaurantDetail(t *testing.T) {
	affiliation := uint(9)
	chef := models.User{
		ID:            6,
		Usuario:       "chef1",
		Rol:           models.RolChef,
		Nombre:        "Ana",
		RestauranteID: &affiliation,
		Restaurante:   &models.Restaurante{ID: 9, Nombre: "La Puerta", AdministradorID: 1},
	}
	dto := NewChef(&chef)
	if dto.RestauranteID != "9" {
		t.Errorf("RestauranteID = %q, want \"9\"", dto.RestauranteID)
	}
	if dto.Restaurante == nil || dto.Restaurante.Nombre != "La Puerta" {
		t.Errorf("Restaurante = %+v", dto.Restaurante)
	}
}
