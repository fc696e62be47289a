package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/andsoler0309/restaurantes-app/config"
	"github.com/andsoler0309/restaurantes-app/models"
	"github.com/andsoler0309/restaurantes-app/serializers"

	"github.com/gin-gonic/gin"
)

func restaurantePayload(nombre string) gin.H {
	return gin.H{
		"nombre":        nombre,
		"direccion":     "Calle 1 # 2-3",
		"telefono":      "3001234567",
		"hora_atencion": "8:00-20:00",
		"facebook":      "fb",
		"instagram":     "ig",
		"twitter":       "tw",
		"tipo_comida":   "Colombiana",
		"is_en_lugar":   true,
		"is_domicilios": true,
		"is_rappi":      false,
		"is_didi":       false,
	}
}

func TestCreateRestaurant(t *testing.T) {
	r := setupRouter(t)
	admin, token := seedUser(t, "admin1", models.RolAdministrador, nil)

	path := fmt.Sprintf("/restaurantes/%d", admin.ID)
	w := doJSON(t, r, http.MethodPost, path, token, restaurantePayload("La Puerta Falsa"))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Mensaje string `json:"mensaje"`
		ID      uint   `json:"id"`
	}
	decodeBody(t, w, &resp)
	if resp.ID == 0 {
		t.Fatal("response carries no restaurant id")
	}

	var restaurante models.Restaurante
	if err := config.DB.First(&restaurante, resp.ID).Error; err != nil {
		t.Fatalf("restaurant not persisted: %v", err)
	}
	if restaurante.AdministradorID != admin.ID {
		t.Errorf("owner = %d, want %d", restaurante.AdministradorID, admin.ID)
	}
	if !restaurante.IsEnLugar || restaurante.IsRappi {
		t.Errorf("service flags not persisted: %+v", restaurante)
	}
}

func TestCreateRestaurantDuplicateName(t *testing.T) {
	r := setupRouter(t)
	admin, token := seedUser(t, "admin1", models.RolAdministrador, nil)
	other, otherToken := seedUser(t, "admin2", models.RolAdministrador, nil)

	path := fmt.Sprintf("/restaurantes/%d", admin.ID)
	if w := doJSON(t, r, http.MethodPost, path, token, restaurantePayload("La Puerta")); w.Code != http.StatusOK {
		t.Fatalf("first create status = %d", w.Code)
	}
	w := doJSON(t, r, http.MethodPost, path, token, restaurantePayload("La Puerta"))
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("duplicate name status = %d, want 422", w.Code)
	}

	// Name uniqueness is per administrator: another admin may reuse it
	otherPath := fmt.Sprintf("/restaurantes/%d", other.ID)
	if w := doJSON(t, r, http.MethodPost, otherPath, otherToken, restaurantePayload("La Puerta")); w.Code != http.StatusOK {
		t.Errorf("same name under another admin status = %d, want 200", w.Code)
	}
}

func TestCreateRestaurantRoleGate(t *testing.T) {
	r := setupRouter(t)
	admin, _ := seedUser(t, "admin1", models.RolAdministrador, nil)
	restaurante := seedRestaurant(t, "R1", admin.ID)
	chef, chefToken := seedUser(t, "chef1", models.RolChef, &restaurante.ID)

	w := doJSON(t, r, http.MethodPost, fmt.Sprintf("/restaurantes/%d", chef.ID), chefToken, restaurantePayload("Otro"))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("chef create status = %d, want 401", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/restaurantes/9999", chefToken, restaurantePayload("Otro"))
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown user status = %d, want 404", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/restaurantes/%d", chef.ID), chefToken, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("chef list status = %d, want 401", w.Code)
	}
}

func TestListRestaurantsOrderedByName(t *testing.T) {
	r := setupRouter(t)
	admin, token := seedUser(t, "admin1", models.RolAdministrador, nil)
	other, _ := seedUser(t, "admin2", models.RolAdministrador, nil)
	seedRestaurant(t, "Zarzamora", admin.ID)
	seedRestaurant(t, "Andante", admin.ID)
	seedRestaurant(t, "Ajena", other.ID)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/restaurantes/%d", admin.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var list []serializers.Restaurante
	decodeBody(t, w, &list)
	if len(list) != 2 {
		t.Fatalf("list length = %d, want 2 (only own restaurants)", len(list))
	}
	if list[0].Nombre != "Andante" || list[1].Nombre != "Zarzamora" {
		t.Errorf("list not ordered by name: %s, %s", list[0].Nombre, list[1].Nombre)
	}
}

func TestGetRestaurantDetail(t *testing.T) {
	r := setupRouter(t)
	admin, token := seedUser(t, "admin1", models.RolAdministrador, nil)
	other, otherToken := seedUser(t, "admin2", models.RolAdministrador, nil)
	restaurante := seedRestaurant(t, "La Puerta", admin.ID)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/restaurantes/%d/%d", admin.ID, restaurante.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var detail serializers.Restaurante
	decodeBody(t, w, &detail)
	if detail.Nombre != "La Puerta" || detail.AdministradorID == "" {
		t.Errorf("detail = %+v", detail)
	}

	// Ownership is not checked on detail: another administrator can
	// read it by id
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/restaurantes/%d/%d", other.ID, restaurante.ID), otherToken, nil)
	if w.Code != http.StatusOK {
		t.Errorf("cross-admin detail status = %d, want 200", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/restaurantes/%d/9999", admin.ID), token, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("missing restaurant status = %d, want 404", w.Code)
	}
}
