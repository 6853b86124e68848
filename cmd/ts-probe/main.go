package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"TrafficScope/internal/config"
	"TrafficScope/internal/model"
	"TrafficScope/internal/probe"
)

func main() {
	mode := flag.String("mode", "sub", "Operating mode: 'pub' to publish synthetic traffic, 'sub' to subscribe and print.")
	configPath := flag.String("config", "configs/config.yaml", "Path to the configuration file.")
	zone := flag.String("zone", "web", "Server zone name for published events.")
	upstream := flag.String("upstream", "", "Upstream group name; leave empty to publish zone events.")
	server := flag.String("server", "", "Upstream server address, required with -upstream.")
	count := flag.Int("count", 0, "Number of events to publish, 0 for unlimited.")
	interval := flag.Duration("interval", 100*time.Millisecond, "Delay between published events.")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	switch *mode {
	case "pub":
		runPublisher(cfg.Probe, *zone, *upstream, *server, *count, *interval)
	case "sub":
		runSubscriber(cfg.Probe)
	default:
		fmt.Fprintf(os.Stderr, "Invalid mode: %s\n", *mode)
		flag.Usage()
		os.Exit(1)
	}
}

// runPublisher generates synthetic request events and publishes them to NATS.
func runPublisher(cfg config.ProbeConfig, zone, upstream, server string, count int, interval time.Duration) {
	if upstream != "" && server == "" {
		log.Println("Error: -server is required with -upstream.")
		flag.Usage()
		os.Exit(1)
	}
	log.Printf("Starting ts-probe in PUBLISH mode (zone=%s upstream=%s)", zone, upstream)

	pub, err := probe.NewPublisher(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer pub.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	statuses := []int{200, 200, 200, 200, 200, 200, 301, 304, 404, 503}

	published := 0
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-sigChan:
			log.Printf("Shutdown signal received. %d events published.", published)
			return
		case <-ticker.C:
			var key model.EntityKey
			if upstream != "" {
				key = model.UpstreamServerKey(upstream, server)
			} else {
				key = model.ServerZoneKey(zone)
			}
			ev := model.Event{
				Key:            key,
				StatusCode:     statuses[rand.Intn(len(statuses))],
				BytesIn:        uint64(rand.Intn(2048)),
				BytesOut:       uint64(rand.Intn(65536)),
				RequestTimeMS:  uint64(rand.Intn(500)),
				UpstreamTimeMS: uint64(rand.Intn(400)),
			}
			if err := pub.Publish(ev); err != nil {
				log.Printf("Failed to publish event: %v", err)
				continue
			}
			published++
			if published%1000 == 0 {
				log.Printf("%d events published...", published)
			}
			if count > 0 && published >= count {
				log.Printf("Done. %d events published.", published)
				return
			}
		}
	}
}

// runSubscriber subscribes to the event subject and prints every event.
func runSubscriber(cfg config.ProbeConfig) {
	log.Println("Starting ts-probe in SUBSCRIBER mode...")

	sub, err := probe.NewSubscriber(cfg)
	if err != nil {
		log.Fatalf("Failed to create subscriber: %v", err)
	}
	defer sub.Close()

	handler := func(ev model.Event) {
		log.Printf("Received Event: %s status=%d in=%d out=%d time=%dms",
			ev.Key, ev.StatusCode, ev.BytesIn, ev.BytesOut, ev.RequestTimeMS)
	}

	if err := sub.Start(handler); err != nil {
		log.Fatalf("Subscriber failed to start: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")
}
