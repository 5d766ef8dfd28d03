package awsx

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type mockSQS struct {
	inputs []*sqs.SendMessageInput
}

func (m *mockSQS) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	m.inputs = append(m.inputs, params)
	return &sqs.SendMessageOutput{}, nil
}

func TestPublishOrderEvent(t *testing.T) {
	mock := &mockSQS{}
	p := NewPublisher(mock, "https://sqs.example/queue")

	ev := OrderEvent{
		EventType:  EventOrderCreated,
		OrderID:    "order-1",
		ClientID:   "client-1",
		ItemID:     "item-1",
		Total:      25.5,
		OccurredAt: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
	}
	if err := p.PublishOrderEvent(context.Background(), ev); err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(mock.inputs) != 1 {
		t.Fatalf("expected one SendMessage call, got %d", len(mock.inputs))
	}
	input := mock.inputs[0]
	if *input.QueueUrl != "https://sqs.example/queue" {
		t.Errorf("queue url: %s", *input.QueueUrl)
	}

	var got OrderEvent
	if err := json.Unmarshal([]byte(*input.MessageBody), &got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if got != ev {
		t.Errorf("body mismatch: %+v vs %+v", got, ev)
	}

	if attr := input.MessageAttributes["event_type"]; *attr.StringValue != EventOrderCreated {
		t.Errorf("event_type attribute: %s", *attr.StringValue)
	}
	if attr := input.MessageAttributes["order_id"]; *attr.StringValue != "order-1" {
		t.Errorf("order_id attribute: %s", *attr.StringValue)
	}
}

func TestPublishDisabled(t *testing.T) {
	mock := &mockSQS{}

	var nilPub *Publisher
	if err := nilPub.PublishOrderEvent(context.Background(), OrderEvent{}); err != nil {
		t.Fatalf("nil publisher must be a no-op, got %v", err)
	}

	p := NewPublisher(mock, "")
	if err := p.PublishOrderEvent(context.Background(), OrderEvent{EventType: EventOrderDeleted}); err != nil {
		t.Fatalf("empty queue url must be a no-op, got %v", err)
	}
	if len(mock.inputs) != 0 {
		t.Errorf("nothing should be sent, got %d calls", len(mock.inputs))
	}
}
