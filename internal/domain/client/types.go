package client

import (
	"context"
	"time"
)

type Entity struct {
	ID                 string    `json:"id"`
	Code               string    `json:"codigoCliente"`
	Document           string    `json:"documento"`
	FirstName          string    `json:"nombre"`
	LastName           string    `json:"apellido"`
	HomeAddress        string    `json:"direccionCliente"`
	CollectionAddress  string    `json:"direccionCobro"`
	Phone              string    `json:"telefono"`
	Photo              string    `json:"foto"`
	Country            string    `json:"pais"`
	City               string    `json:"ciudad"`
	PersonalReferences string    `json:"referenciasPersonales"`
	Active             bool      `json:"activo"`
	CreatedAt          time.Time `json:"createdAt"`
}

func (e *Entity) FullName() string {
	return e.FirstName + " " + e.LastName
}

type Repository interface {
	GetByID(ctx context.Context, id string) (*Entity, error)
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]Entity, error)
}
