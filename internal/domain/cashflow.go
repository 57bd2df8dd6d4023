package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CashFlowType string

const (
	CashFlowTypeIncome  CashFlowType = "income"
	CashFlowTypeExpense CashFlowType = "expense"
)

type CashFlow struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Type        CashFlowType    `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"createdAt"`
	PlaneID     int64           `json:"planeId"`
	AirportID   int64           `json:"airportId"`

	Plane   *Plane   `json:"plane,omitempty"`
	Airport *Airport `json:"airport,omitempty"`
}

// CashFlowReport aggregates every entry at query time; nothing here is stored.
type CashFlowReport struct {
	Balance decimal.Decimal `json:"balance"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	History []CashFlow      `json:"history"`
}
