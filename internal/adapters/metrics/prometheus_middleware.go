package metrics

import (
	"context"
	"reflect"
	"time"

	"github.com/andrescamacho/bakery-go/internal/application/common"
)

// PrometheusMiddleware records latency and outcome for every mediator request.
// Requests are labelled by their bare type name, e.g. "ProduceBatchCommand".
func PrometheusMiddleware(collector *RequestMetricsCollector) common.Middleware {
	return func(ctx context.Context, request common.Request, next common.HandlerFunc) (common.Response, error) {
		if collector == nil {
			return next(ctx, request)
		}

		start := time.Now()
		response, err := next(ctx, request)
		collector.RecordRequest(requestName(request), time.Since(start), err)

		return response, err
	}
}

func requestName(request common.Request) string {
	if request == nil {
		return "Unknown"
	}
	t := reflect.TypeOf(request)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}
