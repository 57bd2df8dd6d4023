package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PlaneStatus string

const (
	PlaneStatusOperante    PlaneStatus = "operante"
	PlaneStatusManutencao  PlaneStatus = "manutencao"
	PlaneStatusForaServico PlaneStatus = "fora_servico"
)

type Plane struct {
	ID            int64           `json:"id"`
	Modelo        string          `json:"modelo"`
	AnoFabricacao int             `json:"anoFabricacao"`
	Capacidade    int             `json:"capacidade"`
	ValorCompra   decimal.Decimal `json:"valorCompra"`
	Status        PlaneStatus     `json:"status"`
	CreatedAt     time.Time       `json:"createdAt"`
}
