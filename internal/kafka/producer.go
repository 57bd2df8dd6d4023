package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// FinanceEvent describes a cash-flow lifecycle change published to the
// finance topic and mirrored to the notifications topic.
type FinanceEvent struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	CashFlowID  int64           `json:"cash_flow_id"`
	Description string          `json:"description"`
	FlowType    string          `json:"flow_type"`
	Amount      decimal.Decimal `json:"amount"`
	PlaneID     int64           `json:"plane_id"`
	AirportID   int64           `json:"airport_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
