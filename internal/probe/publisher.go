package probe

import (
	"log"
	"time"

	v1 "TrafficScope/api/gen/v1"
	"TrafficScope/internal/config"
	"TrafficScope/internal/model"

	"github.com/nats-io/nats.go"
	"google.golang.org/protobuf/proto"
)

// Publisher is responsible for publishing traffic events to a NATS subject.
type Publisher struct {
	nc      *nats.Conn
	subject string
}

// NewPublisher creates a new NATS publisher.
func NewPublisher(cfg config.ProbeConfig) (*Publisher, error) {
	nc, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		return nil, err
	}
	log.Printf("Connected to NATS server at %s", cfg.NATSURL)
	return &Publisher{nc: nc, subject: cfg.Subject}, nil
}

// Publish serializes an Event to Protobuf and publishes it to the configured NATS subject.
func (p *Publisher) Publish(ev model.Event) error {
	pbEvent := &v1.TrafficEvent{
		Timestamp:      time.Now().UnixNano(),
		Zone:           ev.Key.Zone,
		Upstream:       ev.Key.Upstream,
		Server:         ev.Key.Server,
		StatusCode:     uint32(ev.StatusCode),
		BytesIn:        ev.BytesIn,
		BytesOut:       ev.BytesOut,
		RequestTimeMs:  ev.RequestTimeMS,
		UpstreamTimeMs: ev.UpstreamTimeMS,
	}

	data, err := proto.Marshal(pbEvent)
	if err != nil {
		return err
	}

	return p.nc.Publish(p.subject, data)
}

// Close drains and closes the NATS connection.
func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Drain()
		log.Println("NATS connection drained and closed.")
	}
}
