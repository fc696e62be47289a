package handlers

import (
	"net/http"

	"github.com/andsoler0309/restaurantes-app/config"
	"github.com/andsoler0309/restaurantes-app/middleware"
	"github.com/andsoler0309/restaurantes-app/models"
	"github.com/andsoler0309/restaurantes-app/serializers"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SignInRequest struct {
	Usuario    string `json:"usuario" binding:"required"`
	Contrasena string `json:"contrasena" binding:"required"`
}

// SignIn registers a new administrator account
func SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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

	user := models.User{
		Usuario:    req.Usuario,
		Contrasena: string(hash),
		Rol:        models.RolAdministrador,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje": "usuario creado exitosamente",
		"id":      user.ID,
		"token":   token,
	})
}

// LogIn authenticates a user and returns a JWT
func LogIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("usuario = ?", req.Usuario).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "El usuario no existe"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Contrasena), []byte(req.Contrasena)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "El usuario no existe"})
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"mensaje": "Inicio de sesión exitoso",
		"token":   token,
		"id":      user.ID,
		"rol":     user.Rol,
	})
}

// UpdatePassword changes the password of an existing account
func UpdatePassword(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("idUsuario")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "El usuario no existe"})
		return
	}

	var req struct {
		Contrasena string `json:"contrasena" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	if err := config.DB.Model(&user).Update("contrasena", string(hash)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	c.JSON(http.StatusOK, serializers.NewUsuario(&user))
}

// DeleteUser removes an account together with everything it owns: the
// user's recipes, those recipes' line items and, for administrators,
// their restaurants. The chain is deleted explicitly because sqlite
// does not enforce the declared foreign-key cascades.
func DeleteUser(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.Param("idUsuario")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "El usuario no existe"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var recetaIDs []uint
		if err := tx.Model(&models.Receta{}).
			Where("usuario_id = ?", user.ID).
			Pluck("id", &recetaIDs).Error; err != nil {
			return err
		}
		if len(recetaIDs) > 0 {
			if err := tx.Where("receta_id IN ?", recetaIDs).
				Delete(&models.RecetaIngrediente{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", recetaIDs).
				Delete(&models.Receta{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("administrador_id = ?", user.ID).
			Delete(&models.Restaurante{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.Status(http.StatusNoContent)
}
