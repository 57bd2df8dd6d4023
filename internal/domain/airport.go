package domain

import "time"

type Airport struct {
	ID         int64     `json:"id"`
	Nome       string    `json:"nome"`
	Cidade     string    `json:"cidade"`
	Estado     string    `json:"estado"`
	CodigoIATA string    `json:"codigoIATA"`
	CriadoEm   time.Time `json:"criadoEm"`
}

// AirportDetails is an Airport aggregate with its serviced planes and
// attributed cash flows loaded.
type AirportDetails struct {
	Airport
	Planes    []Plane    `json:"planes"`
	CashFlows []CashFlow `json:"cashFlows"`
}
