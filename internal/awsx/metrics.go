package awsx

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

// MetricsEmitter publishes order metrics to CloudWatch.
type MetricsEmitter struct {
	CW        CloudWatchAPI
	Namespace string
}

// NewMetricsEmitter returns an emitter bound to a metric namespace.
func NewMetricsEmitter(cw CloudWatchAPI, namespace string) *MetricsEmitter {
	return &MetricsEmitter{
		CW:        cw,
		Namespace: namespace,
	}
}

// EmitOrderEvent records one occurrence of an order lifecycle event along with
// the order total, dimensioned by event type.
func (m *MetricsEmitter) EmitOrderEvent(ctx context.Context, eventType string, total float64) error {
	dims := []cwtypes.Dimension{
		{Name: awsString("EventType"), Value: awsString(eventType)},
	}

	input := &cloudwatch.PutMetricDataInput{
		Namespace: &m.Namespace,
		MetricData: []cwtypes.MetricDatum{
			{
				MetricName: awsString("OrderEvents"),
				Dimensions: dims,
				Value:      awsFloat64(1),
				Unit:       cwtypes.StandardUnitCount,
			},
			{
				MetricName: awsString("OrderTotal"),
				Dimensions: dims,
				Value:      awsFloat64(total),
				Unit:       cwtypes.StandardUnitNone,
			},
		},
	}

	if _, err := m.CW.PutMetricData(ctx, input); err != nil {
		return fmt.Errorf("put metric data: %w", err)
	}
	return nil
}

func awsFloat64(f float64) *float64 { return &f }
