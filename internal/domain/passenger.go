package domain

import "time"

type Passenger struct {
	ID                  int64     `json:"id"`
	Nome                string    `json:"nome"`
	DocumentoIdentidade *string   `json:"documentoIdentidade"`
	Email               *string   `json:"email"`
	CreatedAt           time.Time `json:"createdAt"`
	PlaneID             *int64    `json:"planeId"`
}
