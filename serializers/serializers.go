// Package serializers maps persisted entities to their wire shape.
// Identifiers and numeric fields travel as decimal strings so clients
// never see floating-point drift on costs, quantities or calories.
package serializers

import (
	"strconv"

	"github.com/andsoler0309/restaurantes-app/models"
	"github.com/andsoler0309/restaurantes-app/scheduling"
)

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

type Ingrediente struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Unidad   string `json:"unidad"`
	Costo    string `json:"costo"`
	Calorias string `json:"calorias"`
	Sitio    string `json:"sitio"`
}

func NewIngrediente(i *models.Ingrediente) Ingrediente {
	return Ingrediente{
		ID:       formatID(i.ID),
		Nombre:   i.Nombre,
		Unidad:   i.Unidad,
		Costo:    i.Costo.String(),
		Calorias: i.Calorias.String(),
		Sitio:    i.Sitio,
	}
}

// RecetaIngrediente carries its full ingredient detail so clients can
// show cost and calories without a second round trip.
type RecetaIngrediente struct {
	ID          string       `json:"id"`
	Cantidad    string       `json:"cantidad"`
	Ingrediente *Ingrediente `json:"ingrediente"`
}

func NewRecetaIngrediente(li *models.RecetaIngrediente) RecetaIngrediente {
	out := RecetaIngrediente{
		ID:       formatID(li.ID),
		Cantidad: li.Cantidad.String(),
	}
	if li.Ingrediente != nil {
		ing := NewIngrediente(li.Ingrediente)
		out.Ingrediente = &ing
	}
	return out
}

type Receta struct {
	ID           string              `json:"id"`
	Nombre       string              `json:"nombre"`
	Duracion     string              `json:"duracion"`
	Porcion      string              `json:"porcion"`
	Preparacion  string              `json:"preparacion"`
	Usuario      string              `json:"usuario"`
	Ingredientes []RecetaIngrediente `json:"ingredientes"`
}

func NewReceta(r *models.Receta) Receta {
	items := make([]RecetaIngrediente, 0, len(r.Ingredientes))
	for i := range r.Ingredientes {
		items = append(items, NewRecetaIngrediente(&r.Ingredientes[i]))
	}
	return Receta{
		ID:           formatID(r.ID),
		Nombre:       r.Nombre,
		Duracion:     r.Duracion.String(),
		Porcion:      r.Porcion.String(),
		Preparacion:  r.Preparacion,
		Usuario:      formatID(r.UsuarioID),
		Ingredientes: items,
	}
}

type Restaurante struct {
	ID              string `json:"id"`
	Nombre          string `json:"nombre"`
	Direccion       string `json:"direccion"`
	Telefono        string `json:"telefono"`
	HoraAtencion    string `json:"hora_atencion"`
	Facebook        string `json:"facebook"`
	Instagram       string `json:"instagram"`
	Twitter         string `json:"twitter"`
	TipoComida      string `json:"tipo_comida"`
	IsEnLugar       bool   `json:"is_en_lugar"`
	IsDomicilios    bool   `json:"is_domicilios"`
	IsRappi         bool   `json:"is_rappi"`
	IsDidi          bool   `json:"is_didi"`
	AdministradorID string `json:"administrador_id"`
}

func NewRestaurante(r *models.Restaurante) Restaurante {
	return Restaurante{
		ID:              formatID(r.ID),
		Nombre:          r.Nombre,
		Direccion:       r.Direccion,
		Telefono:        r.Telefono,
		HoraAtencion:    r.HoraAtencion,
		Facebook:        r.Facebook,
		Instagram:       r.Instagram,
		Twitter:         r.Twitter,
		TipoComida:      r.TipoComida,
		IsEnLugar:       r.IsEnLugar,
		IsDomicilios:    r.IsDomicilios,
		IsRappi:         r.IsRappi,
		IsDidi:          r.IsDidi,
		AdministradorID: formatID(r.AdministradorID),
	}
}

type Usuario struct {
	ID            string `json:"id"`
	Usuario       string `json:"usuario"`
	Rol           string `json:"rol"`
	Nombre        string `json:"nombre"`
	RestauranteID string `json:"restaurante_id,omitempty"`
}

func NewUsuario(u *models.User) Usuario {
	out := Usuario{
		ID:      formatID(u.ID),
		Usuario: u.Usuario,
		Rol:     string(u.Rol),
		Nombre:  u.Nombre,
	}
	if u.RestauranteID != nil {
		out.RestauranteID = formatID(*u.RestauranteID)
	}
	return out
}

// Chef is a chef account together with its affiliated restaurant detail
type Chef struct {
	Usuario
	Restaurante *Restaurante `json:"restaurante,omitempty"`
}

func NewChef(u *models.User) Chef {
	out := Chef{Usuario: NewUsuario(u)}
	if u.Restaurante != nil {
		r := NewRestaurante(u.Restaurante)
		out.Restaurante = &r
	}
	return out
}

// Creador is the minimal projection of a menu's creator
type Creador struct {
	Usuario string `json:"usuario"`
	Rol     string `json:"rol"`
}

type MenuSemana struct {
	ID           string   `json:"id"`
	Nombre       string   `json:"nombre"`
	FechaInicial string   `json:"fecha_inicial"`
	FechaFinal   string   `json:"fecha_final"`
	Restaurante  string   `json:"restaurante"`
	Recetas      []Receta `json:"recetas"`
	Creador      *Creador `json:"creador,omitempty"`
}

func NewMenuSemana(m *models.MenuSemana) MenuSemana {
	recetas := make([]Receta, 0, len(m.Recetas))
	for i := range m.Recetas {
		recetas = append(recetas, NewReceta(&m.Recetas[i]))
	}
	out := MenuSemana{
		ID:           formatID(m.ID),
		Nombre:       m.Nombre,
		FechaInicial: m.FechaInicial.UTC().Format(scheduling.DateLayout),
		FechaFinal:   m.FechaFinal.UTC().Format(scheduling.DateLayout),
		Restaurante:  formatID(m.RestauranteID),
		Recetas:      recetas,
	}
	if m.Usuario != nil {
		out.Creador = &Creador{Usuario: m.Usuario.Usuario, Rol: string(m.Usuario.Rol)}
	}
	return out
}
