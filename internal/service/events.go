package service

import (
	"context"
	"log"
	"time"

	"github.com/mercata/shop-backend/internal/awsx"
	"github.com/mercata/shop-backend/internal/orders"
)

// publishOrderEvent emits a lifecycle event for o. Failures are logged only;
// the request has already committed by the time events go out.
func publishOrderEvent(ctx context.Context, pub EventPublisher, eventType string, o *orders.Order) {
	if pub == nil {
		return
	}
	ev := awsx.OrderEvent{
		EventType:  eventType,
		OrderID:    o.OrderID,
		ClientID:   o.ClientID,
		ItemID:     o.ItemID,
		Total:      o.Total,
		OccurredAt: time.Now().UTC(),
	}
	if err := pub.PublishOrderEvent(ctx, ev); err != nil {
		log.Printf("publish %s event for order %s: %v", eventType, o.OrderID, err)
	}
}
