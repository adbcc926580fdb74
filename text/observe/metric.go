package observe

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/lguimbarda/min-text/text/core"
)

// Metered wraps t so that every evaluation is recorded on meter:
//
//   - <name>.evaluations counts calls to AsString,
//   - <name>.errors counts failed calls,
//   - <name>.duration_us records how long each call took.
//
// The instruments are created immediately, so Metered can fail; t itself
// is not evaluated until AsString.
func Metered(t core.Text, meter metric.Meter, name string) (core.Text, error) {
	evaluations, err := meter.Int64Counter(name+".evaluations", metric.WithDescription("count of text evaluations"))
	if err != nil {
		return nil, fmt.Errorf("create evaluations counter: %w", err)
	}
	failures, err := meter.Int64Counter(name+".errors", metric.WithDescription("count of failed text evaluations"))
	if err != nil {
		return nil, fmt.Errorf("create errors counter: %w", err)
	}
	duration, err := meter.Int64Histogram(name+".duration_us",
		metric.WithDescription("duration of text evaluations"),
		metric.WithUnit("us"))
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	// Evaluation carries no context; measurements are recorded without one.
	ctx := context.Background()
	return Observed(t, Hooks{
		OnStart: func() {
			evaluations.Add(ctx, 1)
		},
		OnError: func(error) {
			failures.Add(ctx, 1)
		},
		OnComplete: func(d time.Duration) {
			duration.Record(ctx, d.Microseconds())
		},
	}), nil
}
