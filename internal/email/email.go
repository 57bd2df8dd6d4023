package email

import (
	"context"
	"fmt"

	"github.com/lribeiro91/aerogest/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.FinanceEvent) error {
	fmt.Printf("notify finance team: %s of %s (%s) for plane %d at airport %d\n",
		event.Type, event.Amount.StringFixed(2), event.FlowType, event.PlaneID, event.AirportID)
	return nil
}
