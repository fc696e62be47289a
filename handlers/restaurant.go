package handlers

import (
	"net/http"

	"github.com/andsoler0309/restaurantes-app/config"
	"github.com/andsoler0309/restaurantes-app/models"
	"github.com/andsoler0309/restaurantes-app/serializers"

	"github.com/gin-gonic/gin"
)

type RestauranteRequest struct {
	Nombre       string `json:"nombre" binding:"required"`
	Direccion    string `json:"direccion"`
	Telefono     string `json:"telefono"`
	HoraAtencion string `json:"hora_atencion"`
	Facebook     string `json:"facebook"`
	Instagram    string `json:"instagram"`
	Twitter      string `json:"twitter"`
	TipoComida   string `json:"tipo_comida"`
	IsEnLugar    bool   `json:"is_en_lugar"`
	IsDomicilios bool   `json:"is_domicilios"`
	IsRappi      bool   `json:"is_rappi"`
	IsDidi       bool   `json:"is_didi"`
}

// resolveAdministrator loads the path user and enforces the admin role.
// It writes the error response itself and returns nil when the gate fails.
func resolveAdministrator(c *gin.Context, action string) *models.User {
	var user models.User
	if err := config.DB.First(&user, c.Param("idUsuario")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "El Administrador no existe"})
		return nil
	}
	if user.Rol != models.RolAdministrador {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Solo los Administradores pueden " + action})
		return nil
	}
	return &user
}

// CreateRestaurant creates a restaurant owned by the path administrator
func CreateRestaurant(c *gin.Context) {
	admin := resolveAdministrator(c, "crear Restaurantes")
	if admin == nil {
		return
	}

	var req RestauranteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Restaurante
	if err := config.DB.Where("administrador_id = ? AND nombre = ?", admin.ID, req.Nombre).
		First(&existing).Error; err == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Ya existe un restaurante con nombre: " + req.Nombre})
		return
	}

	restaurante := models.Restaurante{
		Nombre:          req.Nombre,
		Direccion:       req.Direccion,
		Telefono:        req.Telefono,
		HoraAtencion:    req.HoraAtencion,
		Facebook:        req.Facebook,
		Instagram:       req.Instagram,
		Twitter:         req.Twitter,
		TipoComida:      req.TipoComida,
		IsEnLugar:       req.IsEnLugar,
		IsDomicilios:    req.IsDomicilios,
		IsRappi:         req.IsRappi,
		IsDidi:          req.IsDidi,
		AdministradorID: admin.ID,
	}
	if err := config.DB.Create(&restaurante).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje": "Restaurante creado exitosamente",
		"id":      restaurante.ID,
	})
}

// ListRestaurants returns the administrator's restaurants ordered by name
func ListRestaurants(c *gin.Context) {
	admin := resolveAdministrator(c, "listar Restaurantes")
	if admin == nil {
		return
	}

	var restaurantes []models.Restaurante
	config.DB.Where("administrador_id = ?", admin.ID).
		Order("nombre").
		Find(&restaurantes)

	out := make([]serializers.Restaurante, 0, len(restaurantes))
	for i := range restaurantes {
		out = append(out, serializers.NewRestaurante(&restaurantes[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetRestaurant returns one restaurant by id after the admin role gate.
// Ownership of the restaurant is not verified; any administrator can
// fetch any restaurant by id.
func GetRestaurant(c *gin.Context) {
	if admin := resolveAdministrator(c, "consultar Restaurantes"); admin == nil {
		return
	}

	var restaurante models.Restaurante
	if err := config.DB.First(&restaurante, c.Param("idRestaurante")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "El restaurante no existe"})
		return
	}
	c.JSON(http.StatusOK, serializers.NewRestaurante(&restaurante))
}
