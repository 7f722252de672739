package console

import (
	"context"

	"github.com/Halzat4/Online-shop/internal/domain"
	"go.uber.org/multierr"
)

// OrderSink receives every order placed through the console.
type OrderSink interface {
	Record(ctx context.Context, order *domain.Order) error
}

// MultiSink hands each order to every sink in turn. A failing sink does not
// stop the rest; all failures are returned together.
type MultiSink []OrderSink

func (m MultiSink) Record(ctx context.Context, order *domain.Order) error {
	var errs error
	for _, sink := range m {
		errs = multierr.Append(errs, sink.Record(ctx, order))
	}
	return errs
}
