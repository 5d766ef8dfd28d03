package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/aws/aws-lambda-go/events"

	"github.com/mercata/shop-backend/internal/awsx"
)

// Processor handles SQS messages carrying order lifecycle events and turns
// them into CloudWatch metrics.
type Processor struct {
	metrics *awsx.MetricsEmitter
}

// NewProcessor creates a new worker processor over a metrics emitter.
func NewProcessor(cw awsx.CloudWatchAPI, namespace string) *Processor {
	return &Processor{
		metrics: awsx.NewMetricsEmitter(cw, namespace),
	}
}

// Handle receives an SQS batch event and processes each message.
func (p *Processor) Handle(ctx context.Context, ev events.SQSEvent) error {
	for _, rec := range ev.Records {
		if err := p.processMessage(ctx, rec); err != nil {
			// Return error: Lambda will retry. If failed too many times, message goes to DLQ.
			log.Printf("worker error: %v", err)
			return err
		}
	}
	return nil
}

func (p *Processor) processMessage(ctx context.Context, rec events.SQSMessage) error {
	var msg awsx.OrderEvent
	if err := json.Unmarshal([]byte(rec.Body), &msg); err != nil {
		return fmt.Errorf("invalid message body: %w", err)
	}
	if msg.EventType == "" {
		return fmt.Errorf("message without event_type: %s", rec.Body)
	}

	log.Printf("[worker] received %s order=%s client=%s total=%.2f",
		msg.EventType, msg.OrderID, msg.ClientID, msg.Total)

	if err := p.metrics.EmitOrderEvent(ctx, msg.EventType, msg.Total); err != nil {
		return fmt.Errorf("emit metrics for order %s: %w", msg.OrderID, err)
	}
	return nil
}
