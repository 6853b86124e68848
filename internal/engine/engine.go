// Package engine consumes traffic events from NATS and feeds them to the
// collector through a worker pool.
package engine

import (
	"log"
	"sync"

	v1 "TrafficScope/api/gen/v1"
	"TrafficScope/internal/alerter"
	"TrafficScope/internal/collector"
	"TrafficScope/internal/config"
	"TrafficScope/internal/model"
	"TrafficScope/internal/notification"
	"TrafficScope/internal/probe"

	"github.com/nats-io/nats.go"
	"google.golang.org/protobuf/proto"
)

// Engine owns the event worker pool and the NATS subscription feeding it.
type Engine struct {
	collector *collector.Collector
	alerter   *alerter.Alerter

	eventChannel chan *v1.TrafficEvent
	numWorkers   int
	workerWg     sync.WaitGroup

	nc          *nats.Conn
	sub         *nats.Subscription
	natsURL     string
	natsSubject string
}

// NewEngine creates an engine around an already-configured collector.
func NewEngine(cfg *config.Config, col *collector.Collector) (*Engine, error) {
	numWorkers := cfg.Collector.NumWorkers
	if numWorkers <= 0 {
		numWorkers = 1
	}

	e := &Engine{
		collector:    col,
		eventChannel: make(chan *v1.TrafficEvent, cfg.Collector.SizeOfEventChannel),
		numWorkers:   numWorkers,
		natsURL:      cfg.Probe.NATSURL,
		natsSubject:  cfg.Probe.Subject,
	}

	if cfg.Alerter.Enabled {
		var notifier model.Notifier
		if cfg.SMTP.Host != "" {
			notifier = notification.NewEmailNotifier(cfg.SMTP)
		}
		if notifier != nil {
			a, err := alerter.NewAlerter(&cfg.Alerter, col, notifier)
			if err != nil {
				return nil, err
			}
			e.alerter = a
			log.Println("Alerter enabled and initialized.")
		} else {
			log.Println("Alerter is enabled in config, but no notifiers are configured. Alerter will not run.")
		}
	}

	return e, nil
}

// StartWorkers launches the worker pool and the alerter without touching the
// network. Start calls it after subscribing; tests call it directly and feed
// InputChannel themselves.
func (e *Engine) StartWorkers() {
	if e.alerter != nil {
		go e.alerter.Start()
	}

	e.workerWg.Add(e.numWorkers)
	for i := 0; i < e.numWorkers; i++ {
		go e.worker()
	}
	log.Printf("Engine started with %d workers.", e.numWorkers)
}

// Start connects to NATS, subscribes to the event subject, and launches the
// worker pool.
func (e *Engine) Start() error {
	nc, err := nats.Connect(e.natsURL)
	if err != nil {
		return err
	}
	e.nc = nc
	log.Printf("Engine connected to NATS server at %s", e.natsURL)

	e.sub, err = e.nc.Subscribe(e.natsSubject, e.handleEvent)
	if err != nil {
		e.nc.Close()
		return err
	}
	log.Printf("Engine subscribed to '%s'", e.natsSubject)

	e.StartWorkers()
	return nil
}

// Stop gracefully shuts down the engine: it stops accepting new events, lets
// the workers drain the buffered ones, then stops the alerter.
func (e *Engine) Stop() {
	log.Println("Engine stopping...")
	if e.sub != nil {
		e.sub.Unsubscribe()
	}
	if e.nc != nil {
		e.nc.Close()
	}

	close(e.eventChannel)
	e.workerWg.Wait()

	if e.alerter != nil {
		e.alerter.Stop()
	}
	log.Println("Engine stopped.")
}

// InputChannel exposes the event channel for direct injection.
func (e *Engine) InputChannel() chan<- *v1.TrafficEvent {
	return e.eventChannel
}

// handleEvent decodes a NATS message and passes it to the worker pool.
func (e *Engine) handleEvent(msg *nats.Msg) {
	var pbEvent v1.TrafficEvent
	if err := proto.Unmarshal(msg.Data, &pbEvent); err != nil {
		log.Printf("Error unmarshalling protobuf: %v", err)
		return
	}
	e.eventChannel <- &pbEvent
}

func (e *Engine) worker() {
	defer e.workerWg.Done()
	for pbEvent := range e.eventChannel {
		ev := probe.EventFromProto(pbEvent)

		var err error
		if ev.Key.Kind == model.KindUpstreamServer {
			err = e.collector.RecordUpstreamEvent(ev.Key.Upstream, ev.Key.Server,
				ev.StatusCode, ev.BytesIn, ev.BytesOut, ev.RequestTimeMS, ev.UpstreamTimeMS)
		} else {
			err = e.collector.RecordZoneEvent(ev.Key.Zone,
				ev.StatusCode, ev.BytesIn, ev.BytesOut, ev.RequestTimeMS)
		}
		if err != nil {
			log.Printf("Dropped event for %s: %v", ev.Key, err)
		}
	}
}
