package probe

import (
	"log"

	v1 "TrafficScope/api/gen/v1"
	"TrafficScope/internal/config"
	"TrafficScope/internal/model"

	"github.com/nats-io/nats.go"
	"google.golang.org/protobuf/proto"
)

// EventHandler is a function that processes a received traffic event.
type EventHandler func(ev model.Event)

// EventFromProto converts a wire event to the internal model. An event
// carrying an upstream group and server address is an upstream event;
// anything else counts against its server zone.
func EventFromProto(pb *v1.TrafficEvent) model.Event {
	var key model.EntityKey
	if pb.Upstream != "" && pb.Server != "" {
		key = model.UpstreamServerKey(pb.Upstream, pb.Server)
	} else {
		key = model.ServerZoneKey(pb.Zone)
	}
	return model.Event{
		Key:            key,
		StatusCode:     int(pb.StatusCode),
		BytesIn:        pb.BytesIn,
		BytesOut:       pb.BytesOut,
		RequestTimeMS:  pb.RequestTimeMs,
		UpstreamTimeMS: pb.UpstreamTimeMs,
	}
}

// Subscriber is responsible for subscribing to a NATS subject and processing messages.
type Subscriber struct {
	nc      *nats.Conn
	sub     *nats.Subscription
	subject string
}

// NewSubscriber creates a new NATS subscriber.
func NewSubscriber(cfg config.ProbeConfig) (*Subscriber, error) {
	nc, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		return nil, err
	}
	log.Printf("Connected to NATS server at %s", cfg.NATSURL)
	return &Subscriber{nc: nc, subject: cfg.Subject}, nil
}

// Start subscribes to the configured subject and starts processing messages with the provided handler.
func (s *Subscriber) Start(handler EventHandler) error {
	sub, err := s.nc.Subscribe(s.subject, func(msg *nats.Msg) {
		var pbEvent v1.TrafficEvent
		if err := proto.Unmarshal(msg.Data, &pbEvent); err != nil {
			log.Printf("Error unmarshalling protobuf: %v", err)
			return
		}
		handler(EventFromProto(&pbEvent))
	})
	if err != nil {
		return err
	}
	s.sub = sub
	log.Printf("Subscribed to '%s'. Waiting for messages...", s.subject)
	return nil
}

// Close unsubscribes and closes the NATS connection.
func (s *Subscriber) Close() {
	if s.sub != nil {
		s.sub.Unsubscribe()
	}
	if s.nc != nil {
		s.nc.Close()
		log.Println("NATS connection closed.")
	}
}
