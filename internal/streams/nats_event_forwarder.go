package streams

import (
	"context"
	"encoding/json"
	"fmt"

	"san-monitor/internal/events"

	"github.com/nats-io/nats.go"
)

const sinkNats = "nats"

// natsConn is the subset of *nats.Conn the forwarder uses.
type natsConn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

// NatsEventForwarder publishes each audit event as a JSON message on one subject.
type NatsEventForwarder struct {
	nc      natsConn
	subject string
}

// NewNatsEventForwarder connects to the NATS server at url.
func NewNatsEventForwarder(url, subject string) (*NatsEventForwarder, error) {
	nc, err := nats.Connect(url, nats.Name("san-monitor"))
	if err != nil {
		return nil, fmt.Errorf("connect nats %s: %w", url, err)
	}
	return newNatsEventForwarder(nc, subject), nil
}

func newNatsEventForwarder(nc natsConn, subject string) *NatsEventForwarder {
	return &NatsEventForwarder{nc: nc, subject: subject}
}

func (f *NatsEventForwarder) Name() string { return sinkNats }

func (f *NatsEventForwarder) Append(ctx context.Context, auditEvents []events.AuditEvent) error {
	for _, event := range auditEvents {
		if err := ctx.Err(); err != nil {
			return err
		}
		data, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("marshal audit event %s: %w", event.ID, err)
		}
		if err := f.nc.Publish(f.subject, data); err != nil {
			return fmt.Errorf("publish audit event %s: %w", event.ID, err)
		}
	}
	return nil
}

// Close drains and closes the NATS connection.
func (f *NatsEventForwarder) Close() error {
	if f.nc == nil {
		return nil
	}
	return f.nc.Drain()
}
