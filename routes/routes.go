package routes

import (
	"github.com/andsoler0309/restaurantes-app/handlers"
	"github.com/andsoler0309/restaurantes-app/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// Public: account registration and login
	r.POST("/signin", handlers.SignIn)
	r.POST("/login", handlers.LogIn)

	// Everything else requires a valid session token; role gates run
	// inside each handler against the path user
	auth := r.Group("/")
	auth.Use(middleware.AuthRequired())
	{
		auth.PUT("/signin/:idUsuario", handlers.UpdatePassword)
		auth.DELETE("/signin/:idUsuario", handlers.DeleteUser)

		// Ingredient catalog
		auth.GET("/ingredientes", handlers.ListIngredients)
		auth.POST("/ingredientes", handlers.CreateIngredient)
		auth.POST("/ingredientes/excel", handlers.BulkImportIngredients)
		auth.GET("/ingrediente/:idIngrediente", handlers.GetIngredient)
		auth.PUT("/ingrediente/:idIngrediente", handlers.UpdateIngredient)
		auth.DELETE("/ingrediente/:idIngrediente", handlers.DeleteIngredient)

		// Recipes
		auth.GET("/recetas/:idUsuario", handlers.ListRecipes)
		auth.POST("/recetas/:idUsuario", handlers.CreateRecipe)
		auth.GET("/receta/:idReceta", handlers.GetRecipe)
		auth.PUT("/receta/:idReceta", handlers.UpdateRecipe)
		auth.DELETE("/receta/:idReceta", handlers.DeleteRecipe)

		// Restaurants (administrator only)
		auth.POST("/restaurantes/:idUsuario", handlers.CreateRestaurant)
		auth.GET("/restaurantes/:idUsuario", handlers.ListRestaurants)
		auth.GET("/restaurantes/:idUsuario/:idRestaurante", handlers.GetRestaurant)

		// Weekly menus (administrator or chef)
		auth.POST("/menu-semana/:idUsuario", handlers.CreateMenu)
		auth.GET("/menu-semana/:idUsuario", handlers.ListMenus)

		// Chefs (administrator only)
		auth.POST("/chef/:idUsuario", handlers.CreateChef)
		auth.GET("/chef/:idUsuario/:idChef", handlers.GetChef)
		auth.GET("/chefs/:idUsuario", handlers.ListChefs)
	}
}
