package handlers

import (
	"net/http"
	"strconv"

	"github.com/andsoler0309/restaurantes-app/config"
	"github.com/andsoler0309/restaurantes-app/models"
	"github.com/andsoler0309/restaurantes-app/serializers"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type ChefRequest struct {
	Usuario       string `json:"usuario" binding:"required"`
	Contrasena    string `json:"contrasena" binding:"required"`
	Nombre        string `json:"nombre" binding:"required"`
	RestauranteID string `json:"restaurante_id" binding:"required"`
}

// CreateChef creates a chef account affiliated with a restaurant.
// Only administrators may create chefs.
func CreateChef(c *gin.Context) {
	admin := resolveAdministrator(c, "crear Chef")
	if admin == nil {
		return
	}

	var req ChefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restauranteID, err := strconv.ParseUint(req.RestauranteID, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurant id: " + req.RestauranteID})
		return
	}

	var existing models.User
	if err := config.DB.Where("usuario = ?", req.Usuario).First(&existing).Error; err == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "El usuario ya existe"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	affiliation := uint(restauranteID)
	chef := models.User{
		Usuario:       req.Usuario,
		Contrasena:    string(hash),
		Rol:           models.RolChef,
		Nombre:        req.Nombre,
		RestauranteID: &affiliation,
	}
	if err := config.DB.Create(&chef).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create chef"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje": "chef creado exitosamente",
		"id":      chef.ID,
	})
}

// ListChefs returns chefs working at any restaurant the administrator
// owns, ordered by display name, each with its restaurant detail
func ListChefs(c *gin.Context) {
	admin := resolveAdministrator(c, "listar Chefs")
	if admin == nil {
		return
	}

	var restauranteIDs []uint
	config.DB.Model(&models.Restaurante{}).
		Where("administrador_id = ?", admin.ID).
		Pluck("id", &restauranteIDs)

	var chefs []models.User
	if len(restauranteIDs) > 0 {
		config.DB.Preload("Restaurante").
			Where("rol = ? AND restaurante_id IN ?", models.RolChef, restauranteIDs).
			Order("nombre").
			Find(&chefs)
	}

	out := make([]serializers.Chef, 0, len(chefs))
	for i := range chefs {
		out = append(out, serializers.NewChef(&chefs[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetChef returns one chef by id after the admin role gate. As with
// restaurant detail, ownership of the chef's restaurant is not verified.
func GetChef(c *gin.Context) {
	if admin := resolveAdministrator(c, "consultar Chefs"); admin == nil {
		return
	}

	var chef models.User
	if err := config.DB.Preload("Restaurante").
		Where("rol = ?", models.RolChef).
		First(&chef, c.Param("idChef")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "El chef no existe"})
		return
	}
	c.JSON(http.StatusOK, serializers.NewChef(&chef))
}
