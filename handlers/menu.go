package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/andsoler0309/restaurantes-app/config"
	"github.com/andsoler0309/restaurantes-app/models"
	"github.com/andsoler0309/restaurantes-app/scheduling"
	"github.com/andsoler0309/restaurantes-app/serializers"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuSemanaRequest struct {
	Nombre       string `json:"nombre" binding:"required"`
	FechaInicial string `json:"fechaInicial" binding:"required"`
	FechaFinal   string `json:"fechaFinal" binding:"required"`
	// IDRestaurante is read for administrators only; a chef is always
	// scoped to their affiliated restaurant
	IDRestaurante string `json:"id_restaurante"`
	Recetas       []struct {
		ID string `json:"id"`
	} `json:"recetas"`
}

var errMenuValidation = errors.New("menu validation failed")

// CreateMenu creates a weekly menu for a restaurant. The span must be
// exactly 7 days inclusive, the name unique across all menus, and the
// dates free of conflicts with the restaurant's existing menus. The
// duplicate and conflict checks run inside the insert transaction so
// two concurrent requests cannot both claim the same week.
func CreateMenu(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("idUsuario")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "El usuario no existe"})
		return
	}

	var req MenuSemanaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var restauranteID uint
	if user.Rol == models.RolChef {
		if user.RestauranteID == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El chef no tiene restaurante asignado"})
			return
		}
		restauranteID = *user.RestauranteID
	} else {
		parsed, err := strconv.ParseUint(req.IDRestaurante, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant id: " + req.IDRestaurante})
			return
		}
		restauranteID = uint(parsed)
	}

	fechaInicial, err := scheduling.ParseDate(req.FechaInicial)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fechaFinal, err := scheduling.ParseDate(req.FechaFinal)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := scheduling.CheckSpan(fechaInicial, fechaFinal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recetaIDs := make([]uint, 0, len(req.Recetas))
	for _, receta := range req.Recetas {
		parsed, err := strconv.ParseUint(receta.ID, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe id: " + receta.ID})
			return
		}
		recetaIDs = append(recetaIDs, uint(parsed))
	}

	menu := models.MenuSemana{
		Nombre:        req.Nombre,
		FechaInicial:  fechaInicial,
		FechaFinal:    fechaFinal,
		RestauranteID: restauranteID,
		UsuarioID:     user.ID,
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		var repetido models.MenuSemana
		if err := tx.Where("nombre = ?", req.Nombre).First(&repetido).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El nombre del menu ya existe"})
			return errMenuValidation
		}

		var existentes []models.MenuSemana
		if err := tx.Where("restaurante_id = ?", restauranteID).Find(&existentes).Error; err != nil {
			return err
		}
		if conflicto := scheduling.FindConflict(fechaInicial, fechaFinal, existentes); conflicto != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Las fechas tienen conflicto con las de otro menu"})
			return errMenuValidation
		}

		if err := tx.Omit("Recetas").Create(&menu).Error; err != nil {
			return err
		}
		for _, recetaID := range recetaIDs {
			if err := tx.Create(&models.MenuReceta{MenuID: menu.ID, RecetaID: recetaID}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, errMenuValidation) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu"})
		}
		return
	}

	if err := config.DB.Preload("Recetas.Ingredientes.Ingrediente").
		First(&menu, menu.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load created menu"})
		return
	}
	c.JSON(http.StatusOK, serializers.NewMenuSemana(&menu))
}

// ListMenus returns the weekly menus visible to the path user: a chef
// sees only their restaurant's menus, an administrator the menus of
// every restaurant they own. Each menu carries a minimal projection of
// its creator.
func ListMenus(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("idUsuario")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "El usuario no existe"})
		return
	}

	var menus []models.MenuSemana
	query := config.DB.Preload("Recetas.Ingredientes.Ingrediente").Preload("Usuario")

	if user.Rol == models.RolChef {
		if user.RestauranteID == nil {
			c.JSON(http.StatusOK, []serializers.MenuSemana{})
			return
		}
		query.Where("restaurante_id = ?", *user.RestauranteID).Find(&menus)
	} else {
		var restauranteIDs []uint
		config.DB.Model(&models.Restaurante{}).
			Where("administrador_id = ?", user.ID).
			Pluck("id", &restauranteIDs)
		if len(restauranteIDs) > 0 {
			query.Where("restaurante_id IN ?", restauranteIDs).Find(&menus)
		}
	}

	out := make([]serializers.MenuSemana, 0, len(menus))
	for i := range menus {
		out = append(out, serializers.NewMenuSemana(&menus[i]))
	}
	c.JSON(http.StatusOK, out)
}
