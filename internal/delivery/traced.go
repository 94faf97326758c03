package delivery

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Zachkp/portfolio/internal/contact"
)

// Traced wraps a sender so every delivery is recorded as a span.
type Traced struct {
	next    contact.Sender
	backend string
	tracer  trace.Tracer
}

func NewTraced(next contact.Sender, backend string) *Traced {
	return &Traced{next: next, backend: backend, tracer: otel.Tracer("portfolio/delivery")}
}

func (t *Traced) Send(ctx context.Context, msg contact.Message) error {
	ctx, span := t.tracer.Start(ctx, "contact.deliver",
		trace.WithAttributes(
			attribute.String("portfolio.delivery.backend", t.backend),
			attribute.Int("portfolio.message.length", len(msg.Message)),
		),
	)
	defer span.End()

	err := t.next.Send(ctx, msg)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.String("portfolio.outcome", "failed"))
		return err
	}
	span.SetAttributes(attribute.String("portfolio.outcome", "delivered"))
	return nil
}
