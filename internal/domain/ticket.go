package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Ticket struct {
	ID           int64           `json:"id"`
	Assento      string          `json:"assento"`
	Preco        decimal.Decimal `json:"preco"`
	DataCompra   time.Time       `json:"dataCompra"`
	PassageiroID int64           `json:"passageiroId"`
	VooID        int64           `json:"vooId"`

	Passageiro *Passenger `json:"passageiro,omitempty"`
	Voo        *Flight    `json:"voo,omitempty"`
}
