package config

import (
	"log"
	"os"

	"github.com/andsoler0309/restaurantes-app/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(GetEnv("JWT_SECRET", "frase-secreta"))

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	path := GetEnv("DATABASE_PATH", "dbapp.sqlite")
	db, err := OpenDB(path)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	DB = db
	log.Println("Database connected and migrated")
}

// OpenDB opens a sqlite database at path and migrates the schema.
// Tests use it directly with a temp file so they never share state.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	// Menus reference recipes through our own join model so the
	// scheduler can insert join rows directly
	if err := db.SetupJoinTable(&models.MenuSemana{}, "Recetas", &models.MenuReceta{}); err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Restaurante{},
		&models.Ingrediente{},
		&models.Receta{},
		&models.RecetaIngrediente{},
		&models.MenuSemana{},
		&models.MenuReceta{},
	); err != nil {
		return nil, err
	}
	return db, nil
}
