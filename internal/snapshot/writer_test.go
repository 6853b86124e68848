package snapshot

import (
	"encoding/gob"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"TrafficScope/internal/collector"
	"TrafficScope/internal/registry"
	"TrafficScope/internal/stats"
)

func TestWriter_WriteSnapshot(t *testing.T) {
	col := collector.New()
	if err := col.ConfigureZone("main", 16*registry.RecordFootprint, 8); err != nil {
		t.Fatalf("ConfigureZone failed: %v", err)
	}
	if err := col.RecordZoneEvent("web", 200, 100, 2000, 125); err != nil {
		t.Fatalf("RecordZoneEvent failed: %v", err)
	}
	if err := col.RecordUpstreamEvent("backend", "10.0.0.1:80", 200, 1, 2, 3, 2); err != nil {
		t.Fatalf("RecordUpstreamEvent failed: %v", err)
	}

	tmpDir := t.TempDir()
	writer := NewWriter()
	if err := writer.WriteSnapshot(col, tmpDir); err != nil {
		t.Fatalf("WriteSnapshot failed: %v", err)
	}

	// The directory name is based on the current time, so we need to find it.
	dirs, err := os.ReadDir(tmpDir)
	if err != nil || len(dirs) != 1 || !dirs[0].IsDir() {
		t.Fatalf("Expected one timestamped directory in temp dir, found %d", len(dirs))
	}
	dumpDir := filepath.Join(tmpDir, dirs[0].Name())

	// Verify summary content.
	summaryBytes, err := os.ReadFile(filepath.Join(dumpDir, "summary.json"))
	if err != nil {
		t.Fatalf("Failed to read summary.json: %v", err)
	}
	var summary SummaryData
	if err := json.Unmarshal(summaryBytes, &summary); err != nil {
		t.Fatalf("Failed to unmarshal summary.json: %v", err)
	}
	if summary.ZoneName != "main" {
		t.Errorf("ZoneName = %q, want main", summary.ZoneName)
	}
	if summary.TotalRecords != 2 {
		t.Errorf("TotalRecords = %d, want 2", summary.TotalRecords)
	}

	// Verify gob file content.
	gobFile, err := os.Open(filepath.Join(dumpDir, "records.dat"))
	if err != nil {
		t.Fatalf("Failed to open records.dat: %v", err)
	}
	defer gobFile.Close()
	var views map[string]stats.RecordView
	if err := gob.NewDecoder(gobFile).Decode(&views); err != nil {
		t.Fatalf("Failed to decode gob file: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("Expected 2 records in decoded map, got %d", len(views))
	}
	if view, ok := views["web"]; !ok || view.Requests != 1 || view.BytesOut != 2000 {
		t.Errorf("Decoded zone record does not match expected content. Got: %+v", view)
	}
	if _, ok := views["backend/10.0.0.1:80"]; !ok {
		t.Errorf("Decoded upstream record missing. Keys: %v", views)
	}

	// Verify the rendered metrics document.
	metricsBytes, err := os.ReadFile(filepath.Join(dumpDir, "metrics.prom"))
	if err != nil {
		t.Fatalf("Failed to read metrics.prom: %v", err)
	}
	if !strings.Contains(string(metricsBytes), `trafficscope_server_requests_total{zone="web"} 1`) {
		t.Errorf("metrics.prom missing zone line:\n%s", metricsBytes)
	}
}

func TestWriter_Unconfigured(t *testing.T) {
	if err := NewWriter().WriteSnapshot(collector.New(), t.TempDir()); err == nil {
		t.Error("expected error for unconfigured collector")
	}
}
