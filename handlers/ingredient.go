package handlers

import (
	"net/http"

	"github.com/andsoler0309/restaurantes-app/config"
	"github.com/andsoler0309/restaurantes-app/models"
	"github.com/andsoler0309/restaurantes-app/serializers"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

type IngredienteRequest struct {
	Nombre   string          `json:"nombre" binding:"required"`
	Unidad   string          `json:"unidad"`
	Costo    decimal.Decimal `json:"costo"`
	Calorias decimal.Decimal `json:"calorias"`
	Sitio    string          `json:"sitio"`
}

// ListIngredients returns every ingredient in the catalog
func ListIngredients(c *gin.Context) {
	var ingredientes []models.Ingrediente
	config.DB.Find(&ingredientes)

	out := make([]serializers.Ingrediente, 0, len(ingredientes))
	for i := range ingredientes {
		out = append(out, serializers.NewIngrediente(&ingredientes[i]))
	}
	c.JSON(http.StatusOK, out)
}

// CreateIngredient adds a new ingredient to the catalog
func CreateIngredient(c *gin.Context) {
	var req IngredienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingrediente := models.Ingrediente{
		Nombre:   req.Nombre,
		Unidad:   req.Unidad,
		Costo:    req.Costo,
		Calorias: req.Calorias,
		Sitio:    req.Sitio,
	}
	if err := config.DB.Create(&ingrediente).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ingredient"})
		return
	}
	c.JSON(http.StatusOK, serializers.NewIngrediente(&ingrediente))
}

// GetIngredient returns one ingredient by id
func GetIngredient(c *gin.Context) {
	var ingrediente models.Ingrediente
	if err := config.DB.First(&ingrediente, c.Param("idIngrediente")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "El ingrediente no existe"})
		return
	}
	c.JSON(http.StatusOK, serializers.NewIngrediente(&ingrediente))
}

// UpdateIngredient replaces every editable field of an ingredient
func UpdateIngredient(c *gin.Context) {
	var ingrediente models.Ingrediente
	if err := config.DB.First(&ingrediente, c.Param("idIngrediente")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "El ingrediente no existe"})
		return
	}

	var req IngredienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ingrediente.Nombre = req.Nombre
	ingrediente.Unidad = req.Unidad
	ingrediente.Costo = req.Costo
	ingrediente.Calorias = req.Calorias
	ingrediente.Sitio = req.Sitio
	if err := config.DB.Save(&ingrediente).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update ingredient"})
		return
	}
	c.JSON(http.StatusOK, serializers.NewIngrediente(&ingrediente))
}

// DeleteIngredient removes an ingredient unless a recipe still uses it
func DeleteIngredient(c *gin.Context) {
	var ingrediente models.Ingrediente
	if err := config.DB.First(&ingrediente, c.Param("idIngrediente")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "El ingrediente no existe"})
		return
	}

	var refs int64
	config.DB.Model(&models.RecetaIngrediente{}).
		Where("ingrediente_id = ?", ingrediente.ID).
		Count(&refs)
	if refs > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "El ingrediente se está usando en diferentes recetas"})
		return
	}

	config.DB.Delete(&ingrediente)
	c.Status(http.StatusNoContent)
}

// BulkImportIngredients loads ingredients from an uploaded .xlsx file.
// Expected columns: nombre, unidad, costo, calorias, sitio. Header row
// and malformed rows are skipped.
func BulkImportIngredients(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to open Excel file"})
		return
	}
	defer file.Close()

	xl, err := excelize.OpenReader(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse Excel file"})
		return
	}
	rows, err := xl.GetRows(xl.GetSheetName(0))
	if err != nil || len(rows) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Excel must have at least one row of data"})
		return
	}

	var created []serializers.Ingrediente
	var skipped int
	for _, row := range rows[1:] {
		if len(row) < 4 || row[0] == "" {
			skipped++
			continue
		}
		costo, err := decimal.NewFromString(row[2])
		if err != nil {
			skipped++
			continue
		}
		calorias, err := decimal.NewFromString(row[3])
		if err != nil {
			skipped++
			continue
		}
		ingrediente := models.Ingrediente{
			Nombre:   row[0],
			Unidad:   row[1],
			Costo:    costo,
			Calorias: calorias,
		}
		if len(row) > 4 {
			ingrediente.Sitio = row[4]
		}
		if err := config.DB.Create(&ingrediente).Error; err != nil {
			skipped++
			continue
		}
		created = append(created, serializers.NewIngrediente(&ingrediente))
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje":      "Ingredientes importados",
		"creados":      len(created),
		"omitidos":     skipped,
		"ingredientes": created,
	})
}
