package handlers

import (
	"net/http"
	"strconv"

	"github.com/andsoler0309/restaurantes-app/config"
	"github.com/andsoler0309/restaurantes-app/models"
	"github.com/andsoler0309/restaurantes-app/serializers"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RecetaIngredienteRequest struct {
	// ID is empty for new line items and carries the existing line-item
	// id when editing. Matching on update is by this id only, never by
	// ingredient identity.
	ID            string          `json:"id"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	IDIngrediente string          `json:"idIngrediente" binding:"required"`
}

type RecetaRequest struct {
	Nombre       string                     `json:"nombre" binding:"required"`
	Preparacion  string                     `json:"preparacion"`
	Duracion     decimal.Decimal            `json:"duracion"`
	Porcion      decimal.Decimal            `json:"porcion"`
	Ingredientes []RecetaIngredienteRequest `json:"ingredientes"`
}

// ListRecipes returns the recipes owned by the path user, each line item
// enriched with its full ingredient detail
func ListRecipes(c *gin.Context) {
	var recetas []models.Receta
	config.DB.Preload("Ingredientes.Ingrediente").
		Where("usuario_id = ?", c.Param("idUsuario")).
		Find(&recetas)

	out := make([]serializers.Receta, 0, len(recetas))
	for i := range recetas {
		out = append(out, serializers.NewReceta(&recetas[i]))
	}
	c.JSON(http.StatusOK, out)
}

// CreateRecipe creates a recipe with its line items for the path user
func CreateRecipe(c *gin.Context) {
	usuarioID, err := strconv.ParseUint(c.Param("idUsuario"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return
	}

	var req RecetaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receta := models.Receta{
		Nombre:      req.Nombre,
		Preparacion: req.Preparacion,
		Duracion:    req.Duracion,
		Porcion:     req.Porcion,
		UsuarioID:   uint(usuarioID),
	}
	for _, item := range req.Ingredientes {
		ingredienteID, err := strconv.ParseUint(item.IDIngrediente, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ingredient id: " + item.IDIngrediente})
			return
		}
		receta.Ingredientes = append(receta.Ingredientes, models.RecetaIngrediente{
			Cantidad:      item.Cantidad,
			IngredienteID: uint(ingredienteID),
		})
	}

	if err := config.DB.Create(&receta).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
		return
	}

	if err := config.DB.Preload("Ingredientes.Ingrediente").
		First(&receta, receta.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load created recipe"})
		return
	}
	c.JSON(http.StatusOK, serializers.NewReceta(&receta))
}

// GetRecipe returns one recipe with enriched line items
func GetRecipe(c *gin.Context) {
	var receta models.Receta
	if err := config.DB.Preload("Ingredientes.Ingrediente").
		First(&receta, c.Param("idReceta")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "La receta no existe"})
		return
	}
	c.JSON(http.StatusOK, serializers.NewReceta(&receta))
}

// UpdateRecipe updates a recipe and syncs its line items against the
// incoming payload: items with an empty id are inserted, items with a
// matching id update quantity and ingredient in place, and existing
// items whose id is absent from the payload are deleted.
func UpdateRecipe(c *gin.Context) {
	var receta models.Receta
	if err := config.DB.Preload("Ingredientes").
		First(&receta, c.Param("idReceta")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "La receta no existe"})
		return
	}

	var req RecetaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Resolve incoming ids up front so a malformed payload fails before
	// any row is touched
	incoming := map[uint]RecetaIngredienteRequest{}
	var inserts []models.RecetaIngrediente
	for _, item := range req.Ingredientes {
		ingredienteID, err := strconv.ParseUint(item.IDIngrediente, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ingredient id: " + item.IDIngrediente})
			return
		}
		if item.ID == "" {
			inserts = append(inserts, models.RecetaIngrediente{
				Cantidad:      item.Cantidad,
				IngredienteID: uint(ingredienteID),
				RecetaID:      receta.ID,
			})
			continue
		}
		itemID, err := strconv.ParseUint(item.ID, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid line item id: " + item.ID})
			return
		}
		incoming[uint(itemID)] = item
	}

	// A non-empty id must name one of the recipe's current line items;
	// anything else is a stale or foreign reference
	existingIDs := make(map[uint]bool, len(receta.Ingredientes))
	for i := range receta.Ingredientes {
		existingIDs[receta.Ingredientes[i].ID] = true
	}
	for itemID := range incoming {
		if !existingIDs[itemID] {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No existe el ingrediente de la receta con id: " + strconv.FormatUint(uint64(itemID), 10),
			})
			return
		}
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		receta.Nombre = req.Nombre
		receta.Preparacion = req.Preparacion
		receta.Duracion = req.Duracion
		receta.Porcion = req.Porcion
		if err := tx.Omit("Ingredientes").Save(&receta).Error; err != nil {
			return err
		}

		for i := range receta.Ingredientes {
			existing := &receta.Ingredientes[i]
			item, found := incoming[existing.ID]
			if !found {
				if err := tx.Delete(existing).Error; err != nil {
					return err
				}
				continue
			}
			ingredienteID, _ := strconv.ParseUint(item.IDIngrediente, 10, 32)
			existing.Cantidad = item.Cantidad
			existing.IngredienteID = uint(ingredienteID)
			if err := tx.Save(existing).Error; err != nil {
				return err
			}
		}

		for i := range inserts {
			if err := tx.Create(&inserts[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
		return
	}

	if err := config.DB.Preload("Ingredientes.Ingrediente").
		First(&receta, receta.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load updated recipe"})
		return
	}
	c.JSON(http.StatusOK, serializers.NewReceta(&receta))
}

// DeleteRecipe removes a recipe and its line items
func DeleteRecipe(c *gin.Context) {
	var receta models.Receta
	if err := config.DB.First(&receta, c.Param("idReceta")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "La receta no existe"})
		return
	}
	config.DB.Select("Ingredientes").Delete(&receta)
	c.Status(http.StatusNoContent)
}
