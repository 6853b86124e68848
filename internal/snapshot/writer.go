package snapshot

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"TrafficScope/internal/collector"
	"TrafficScope/internal/model"
	"TrafficScope/internal/stats"
)

// SummaryData holds the metadata for an on-disk dump.
type SummaryData struct {
	ZoneName     string `json:"zone_name"`
	TotalRecords int    `json:"total_records"`
	Capacity     int64  `json:"capacity"`
	Timestamp    string `json:"timestamp"`
}

// Writer handles dumping collector state to disk.
type Writer struct{}

// NewWriter creates a new snapshot writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteSnapshot dumps the collector's current state into a timestamped
// directory under rootPath: the record views as gob, the rendered metrics
// document, and a summary file.
func (w *Writer) WriteSnapshot(col *collector.Collector, rootPath string) error {
	store := col.Store()
	if store == nil {
		return model.ErrNotInitialized
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	dumpDir := filepath.Join(rootPath, timestamp)
	if err := os.MkdirAll(dumpDir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	views := make(map[string]stats.RecordView)
	store.Range(func(key model.EntityKey, rec *stats.Record) bool {
		views[key.String()] = rec.View()
		return true
	})

	recordsPath := filepath.Join(dumpDir, "records.dat")
	recordsFile, err := os.Create(recordsPath)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file '%s': %w", recordsPath, err)
	}
	defer recordsFile.Close()
	if err := gob.NewEncoder(recordsFile).Encode(views); err != nil {
		return fmt.Errorf("failed to encode records to gob: %w", err)
	}

	metricsPath := filepath.Join(dumpDir, "metrics.prom")
	metricsFile, err := os.Create(metricsPath)
	if err != nil {
		return fmt.Errorf("failed to create metrics file: %w", err)
	}
	defer metricsFile.Close()
	if err := col.WriteSnapshot(metricsFile); err != nil {
		return fmt.Errorf("failed to write metrics document: %w", err)
	}

	summary := SummaryData{
		ZoneName:     store.Name(),
		TotalRecords: len(views),
		Capacity:     store.Capacity(),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	summaryPath := filepath.Join(dumpDir, "summary.json")
	summaryFile, err := os.Create(summaryPath)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer summaryFile.Close()
	jsonEncoder := json.NewEncoder(summaryFile)
	jsonEncoder.SetIndent("", "  ")
	if err := jsonEncoder.Encode(summary); err != nil {
		return fmt.Errorf("failed to encode summary to json: %w", err)
	}

	return nil
}
