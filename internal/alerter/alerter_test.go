package alerter

import (
	"strings"
	"sync"
	"testing"

	"TrafficScope/internal/collector"
	"TrafficScope/internal/config"
	"TrafficScope/internal/registry"
)

type fakeNotifier struct {
	mu       sync.Mutex
	subjects []string
	bodies   []string
}

func (f *fakeNotifier) Send(subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subjects = append(f.subjects, subject)
	f.bodies = append(f.bodies, body)
	return nil
}

func newTestAlerter(t *testing.T, rules []config.AlerterRule) (*Alerter, *collector.Collector, *fakeNotifier) {
	t.Helper()
	col := collector.New()
	if err := col.ConfigureZone("main", 16*registry.RecordFootprint, 8); err != nil {
		t.Fatalf("ConfigureZone failed: %v", err)
	}
	notifier := &fakeNotifier{}
	a, err := NewAlerter(&config.AlerterConfig{
		Enabled:       true,
		CheckInterval: "1h",
		Rules:         rules,
	}, col, notifier)
	if err != nil {
		t.Fatalf("NewAlerter failed: %v", err)
	}
	return a, col, notifier
}

func TestAlerter_InvalidInterval(t *testing.T) {
	_, err := NewAlerter(&config.AlerterConfig{CheckInterval: "soon"}, collector.New(), nil)
	if err == nil {
		t.Error("expected error for bad check_interval")
	}
}

func TestAlerter_TriggersOnErrorRatio(t *testing.T) {
	a, col, notifier := newTestAlerter(t, []config.AlerterRule{
		{Zone: "web", MaxErrorRatio: 0.10, MinRequests: 10},
	})

	// 12 requests, 3 of them 5xx: ratio 25% against a 10% threshold.
	for i := 0; i < 9; i++ {
		if err := col.RecordZoneEvent("web", 200, 1, 1, 10); err != nil {
			t.Fatalf("RecordZoneEvent failed: %v", err)
		}
	}
	for i := 0; i < 3; i++ {
		if err := col.RecordZoneEvent("web", 503, 1, 1, 10); err != nil {
			t.Fatalf("RecordZoneEvent failed: %v", err)
		}
	}

	a.EvaluateRules()

	if len(notifier.subjects) != 1 {
		t.Fatalf("got %d notifications, want 1", len(notifier.subjects))
	}
	if !strings.Contains(notifier.subjects[0], "1 Triggered") {
		t.Errorf("subject = %q", notifier.subjects[0])
	}
	body := notifier.bodies[0]
	if !strings.Contains(body, "web") || !strings.Contains(body, "25.00%") {
		t.Errorf("body missing zone or ratio:\n%s", body)
	}
	// The markdown body must have been rendered to HTML.
	if !strings.Contains(body, "<h2>") {
		t.Errorf("body not rendered as HTML:\n%s", body)
	}
}

func TestAlerter_SilentBelowMinRequests(t *testing.T) {
	a, col, notifier := newTestAlerter(t, []config.AlerterRule{
		{Zone: "web", MaxErrorRatio: 0.10, MinRequests: 100},
	})

	// 100% errors but only 5 requests, below the floor.
	for i := 0; i < 5; i++ {
		if err := col.RecordZoneEvent("web", 500, 1, 1, 10); err != nil {
			t.Fatalf("RecordZoneEvent failed: %v", err)
		}
	}

	a.EvaluateRules()

	if len(notifier.subjects) != 0 {
		t.Errorf("got %d notifications, want 0", len(notifier.subjects))
	}
}

func TestAlerter_SilentForUnknownZone(t *testing.T) {
	a, _, notifier := newTestAlerter(t, []config.AlerterRule{
		{Zone: "never-seen", MaxErrorRatio: 0.01, MinRequests: 0},
	})

	a.EvaluateRules()

	if len(notifier.subjects) != 0 {
		t.Errorf("got %d notifications, want 0", len(notifier.subjects))
	}
}
