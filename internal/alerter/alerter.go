package alerter

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"TrafficScope/internal/collector"
	"TrafficScope/internal/config"
	"TrafficScope/internal/model"

	"github.com/gomarkdown/markdown"
)

// Alerter periodically evaluates zone statistics against configured rules
// and sends a consolidated notification when any rule is violated.
type Alerter struct {
	collector     *collector.Collector
	rules         []config.AlerterRule
	notifier      model.Notifier
	checkInterval time.Duration
	stopChan      chan struct{}
	wg            sync.WaitGroup
}

// NewAlerter creates a new Alerter instance.
func NewAlerter(cfg *config.AlerterConfig, col *collector.Collector, notifier model.Notifier) (*Alerter, error) {
	interval, err := time.ParseDuration(cfg.CheckInterval)
	if err != nil {
		return nil, fmt.Errorf("invalid check_interval for alerter: %w", err)
	}

	return &Alerter{
		collector:     col,
		rules:         cfg.Rules,
		notifier:      notifier,
		checkInterval: interval,
		stopChan:      make(chan struct{}),
	}, nil
}

// Start begins the periodic evaluation of alert rules.
func (a *Alerter) Start() {
	log.Println("Alerter started")

	a.wg.Add(1)
	defer a.wg.Done()

	ticker := time.NewTicker(a.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.EvaluateRules()
		case <-a.stopChan:
			return
		}
	}
}

// Stop gracefully stops the alerter's evaluation loop and runs one final check.
func (a *Alerter) Stop() {
	log.Println("Stopping Alerter...")
	close(a.stopChan)
	a.wg.Wait()
	a.EvaluateRules()
}

// EvaluateRules checks every rule concurrently and sends one consolidated
// notification for all violations found in this pass.
func (a *Alerter) EvaluateRules() {
	var wg sync.WaitGroup
	resultsChan := make(chan string, len(a.rules))

	for _, rule := range a.rules {
		wg.Add(1)
		go func(rule config.AlerterRule) {
			defer wg.Done()
			if msg := a.evaluateRule(rule); msg != "" {
				resultsChan <- msg
			}
		}(rule)
	}

	wg.Wait()
	close(resultsChan)

	var allMessages []string
	for msg := range resultsChan {
		allMessages = append(allMessages, msg)
	}

	if len(allMessages) == 0 {
		return
	}

	log.Printf("Alerter evaluation completed. %d alert(s) triggered.", len(allMessages))

	md := "# TrafficScope Alert Summary\n\n" +
		"The following alerts were triggered during the last check:\n\n" +
		strings.Join(allMessages, "\n\n---\n\n")
	body := string(markdown.ToHTML([]byte(md), nil, nil))

	if a.notifier != nil {
		subject := fmt.Sprintf("TrafficScope Alert Summary (%d Triggered)", len(allMessages))
		if err := a.notifier.Send(subject, body); err != nil {
			log.Printf("ERROR: Failed to send consolidated alert notification: %v", err)
		} else {
			log.Printf("INFO: Consolidated alert notification sent successfully.")
		}
	}
}

// evaluateRule returns a markdown alert message, or "" when the rule holds.
// A rule is silent until its zone has seen MinRequests total requests, so a
// handful of early failures cannot page anyone.
func (a *Alerter) evaluateRule(rule config.AlerterRule) string {
	view, ok := a.collector.ZoneView(rule.Zone)
	if !ok {
		return ""
	}
	if view.Requests == 0 || view.Requests < rule.MinRequests {
		return ""
	}

	serverErrors := view.Statuses[4]
	ratio := float64(serverErrors) / float64(view.Requests)
	if ratio <= rule.MaxErrorRatio {
		return ""
	}

	return fmt.Sprintf(
		"## Zone `%s`: elevated error ratio\n\n"+
			"- 5xx responses: **%d** of %d requests (%.2f%%)\n"+
			"- configured threshold: %.2f%%\n"+
			"- average request time: %.1f ms",
		rule.Zone, serverErrors, view.Requests, ratio*100,
		rule.MaxErrorRatio*100, view.RequestTime.AvgMS)
}
