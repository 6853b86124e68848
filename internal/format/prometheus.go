// Package format renders statistics snapshots into the line-oriented
// metrics text format, metric names and label sets compatible with
// Prometheus exposition.
package format

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"TrafficScope/internal/model"
	"TrafficScope/internal/stats"
)

// DefaultPrefix is prepended to every metric name.
const DefaultPrefix = "trafficscope_"

// Source is a weakly-consistent walk over the live records, as provided by
// the registry store.
type Source interface {
	Range(fn func(model.EntityKey, *stats.Record) bool)
}

// ConnectionsView carries the proxy connection gauges and totals.
type ConnectionsView struct {
	Active   uint64
	Reading  uint64
	Writing  uint64
	Waiting  uint64
	Accepted uint64
	Handled  uint64
}

// Formatter writes the metrics document. It is a fold over the snapshot:
// apart from the sorted key index needed for reproducible output it holds
// no per-record state.
type Formatter struct {
	Prefix string
}

// NewFormatter returns a formatter with the default metric prefix.
func NewFormatter() *Formatter {
	return &Formatter{Prefix: DefaultPrefix}
}

var statusLabels = [...]string{"1xx", "2xx", "3xx", "4xx", "5xx"}

var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// errWriter latches the first write error so the emit helpers stay flat.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) head(prefix, name, help, typ string) {
	ew.printf("# HELP %s%s %s\n", prefix, name, help)
	ew.printf("# TYPE %s%s %s\n", prefix, name, typ)
}

func seconds(ms float64) float64 { return ms / 1000.0 }

// zoneEntry / upstreamEntry are the sorted index over the snapshot.
type zoneEntry struct {
	zone string
	view stats.RecordView
}

type upstreamEntry struct {
	upstream string
	server   string
	view     stats.RecordView
}

// collect walks the source once and splits the records into sorted zone and
// upstream indexes. Each record is read exactly once.
func collect(src Source) ([]zoneEntry, []upstreamEntry) {
	var zones []zoneEntry
	var upstreams []upstreamEntry
	src.Range(func(key model.EntityKey, rec *stats.Record) bool {
		switch key.Kind {
		case model.KindServerZone:
			zones = append(zones, zoneEntry{zone: key.Zone, view: rec.View()})
		case model.KindUpstreamServer:
			upstreams = append(upstreams, upstreamEntry{upstream: key.Upstream, server: key.Server, view: rec.View()})
		}
		return true
	})
	sort.Slice(zones, func(i, j int) bool { return zones[i].zone < zones[j].zone })
	sort.Slice(upstreams, func(i, j int) bool {
		if upstreams[i].upstream != upstreams[j].upstream {
			return upstreams[i].upstream < upstreams[j].upstream
		}
		return upstreams[i].server < upstreams[j].server
	})
	return zones, upstreams
}

// WriteZones renders the server-zone and upstream metric families for every
// record in src. Output is sorted by key so identical record values always
// produce an identical document.
func (f *Formatter) WriteZones(w io.Writer, src Source) error {
	zones, upstreams := collect(src)
	ew := &errWriter{w: w}
	f.writeServerZones(ew, zones)
	f.writeUpstreams(ew, upstreams)
	return ew.err
}

func (f *Formatter) writeServerZones(ew *errWriter, zones []zoneEntry) {
	p := f.Prefix

	ew.head(p, "server_requests_total", "Total number of requests", "counter")
	for _, e := range zones {
		ew.printf("%sserver_requests_total{zone=\"%s\"} %d\n", p, labelEscaper.Replace(e.zone), e.view.Requests)
	}
	ew.printf("\n")

	ew.head(p, "server_bytes_total", "Total bytes transferred", "counter")
	for _, e := range zones {
		zone := labelEscaper.Replace(e.zone)
		ew.printf("%sserver_bytes_total{zone=\"%s\",direction=\"in\"} %d\n", p, zone, e.view.BytesIn)
		ew.printf("%sserver_bytes_total{zone=\"%s\",direction=\"out\"} %d\n", p, zone, e.view.BytesOut)
	}
	ew.printf("\n")

	ew.head(p, "server_responses_total", "Total responses by status code class", "counter")
	for _, e := range zones {
		zone := labelEscaper.Replace(e.zone)
		for i, label := range statusLabels {
			ew.printf("%sserver_responses_total{zone=\"%s\",status=\"%s\"} %d\n", p, zone, label, e.view.Statuses[i])
		}
	}
	ew.printf("\n")

	ew.head(p, "server_request_seconds", "Request processing time", "gauge")
	for _, e := range zones {
		zone := labelEscaper.Replace(e.zone)
		t := e.view.RequestTime
		ew.printf("%sserver_request_seconds{zone=\"%s\",type=\"avg\"} %.6f\n", p, zone, seconds(t.AvgMS))
		ew.printf("%sserver_request_seconds{zone=\"%s\",type=\"min\"} %.6f\n", p, zone, seconds(float64(t.MinMS)))
		ew.printf("%sserver_request_seconds{zone=\"%s\",type=\"max\"} %.6f\n", p, zone, seconds(float64(t.MaxMS)))
	}
	ew.printf("\n")
}

func (f *Formatter) writeUpstreams(ew *errWriter, upstreams []upstreamEntry) {
	p := f.Prefix

	ew.head(p, "upstream_requests_total", "Total upstream requests", "counter")
	for _, e := range upstreams {
		ew.printf("%supstream_requests_total{upstream=\"%s\",server=\"%s\"} %d\n",
			p, labelEscaper.Replace(e.upstream), labelEscaper.Replace(e.server), e.view.Requests)
	}
	ew.printf("\n")

	ew.head(p, "upstream_bytes_total", "Total bytes transferred to/from upstream", "counter")
	for _, e := range upstreams {
		up, srv := labelEscaper.Replace(e.upstream), labelEscaper.Replace(e.server)
		ew.printf("%supstream_bytes_total{upstream=\"%s\",server=\"%s\",direction=\"in\"} %d\n", p, up, srv, e.view.BytesIn)
		ew.printf("%supstream_bytes_total{upstream=\"%s\",server=\"%s\",direction=\"out\"} %d\n", p, up, srv, e.view.BytesOut)
	}
	ew.printf("\n")

	ew.head(p, "upstream_responses_total", "Upstream responses by status code class", "counter")
	for _, e := range upstreams {
		up, srv := labelEscaper.Replace(e.upstream), labelEscaper.Replace(e.server)
		for i, label := range statusLabels {
			ew.printf("%supstream_responses_total{upstream=\"%s\",server=\"%s\",status=\"%s\"} %d\n",
				p, up, srv, label, e.view.Statuses[i])
		}
	}
	ew.printf("\n")

	ew.head(p, "upstream_request_seconds", "Total request time for upstream requests", "gauge")
	for _, e := range upstreams {
		up, srv := labelEscaper.Replace(e.upstream), labelEscaper.Replace(e.server)
		t := e.view.RequestTime
		ew.printf("%supstream_request_seconds{upstream=\"%s\",server=\"%s\",type=\"avg\"} %.6f\n", p, up, srv, seconds(t.AvgMS))
		ew.printf("%supstream_request_seconds{upstream=\"%s\",server=\"%s\",type=\"min\"} %.6f\n", p, up, srv, seconds(float64(t.MinMS)))
		ew.printf("%supstream_request_seconds{upstream=\"%s\",server=\"%s\",type=\"max\"} %.6f\n", p, up, srv, seconds(float64(t.MaxMS)))
	}
	ew.printf("\n")

	ew.head(p, "upstream_response_seconds", "Upstream backend response time", "gauge")
	for _, e := range upstreams {
		up, srv := labelEscaper.Replace(e.upstream), labelEscaper.Replace(e.server)
		t := e.view.UpstreamTime
		ew.printf("%supstream_response_seconds{upstream=\"%s\",server=\"%s\",type=\"avg\"} %.6f\n", p, up, srv, seconds(t.AvgMS))
		ew.printf("%supstream_response_seconds{upstream=\"%s\",server=\"%s\",type=\"min\"} %.6f\n", p, up, srv, seconds(float64(t.MinMS)))
		ew.printf("%supstream_response_seconds{upstream=\"%s\",server=\"%s\",type=\"max\"} %.6f\n", p, up, srv, seconds(float64(t.MaxMS)))
	}
	ew.printf("\n")

	ew.head(p, "upstream_server_up", "Upstream server status (1=up, 0=down)", "gauge")
	for _, e := range upstreams {
		v := 0
		if e.view.Up {
			v = 1
		}
		ew.printf("%supstream_server_up{upstream=\"%s\",server=\"%s\"} %d\n",
			p, labelEscaper.Replace(e.upstream), labelEscaper.Replace(e.server), v)
	}
	ew.printf("\n")
}

// WriteConnections renders the proxy connection gauge and total families.
func (f *Formatter) WriteConnections(w io.Writer, conns ConnectionsView) error {
	p := f.Prefix
	ew := &errWriter{w: w}

	ew.head(p, "connections", "Current proxy connections", "gauge")
	ew.printf("%sconnections{state=\"active\"} %d\n", p, conns.Active)
	ew.printf("%sconnections{state=\"reading\"} %d\n", p, conns.Reading)
	ew.printf("%sconnections{state=\"writing\"} %d\n", p, conns.Writing)
	ew.printf("%sconnections{state=\"waiting\"} %d\n", p, conns.Waiting)
	ew.printf("\n")

	ew.head(p, "connections_total", "Total proxy connections", "counter")
	ew.printf("%sconnections_total{state=\"accepted\"} %d\n", p, conns.Accepted)
	ew.printf("%sconnections_total{state=\"handled\"} %d\n", p, conns.Handled)
	ew.printf("\n")
	return ew.err
}

// WriteCaches renders per-cache-zone status counters and hit ratios.
// Zones are sorted by name.
func (f *Formatter) WriteCaches(w io.Writer, caches map[string]stats.CacheView) error {
	if len(caches) == 0 {
		return nil
	}
	p := f.Prefix
	ew := &errWriter{w: w}

	names := make([]string, 0, len(caches))
	for name := range caches {
		names = append(names, name)
	}
	sort.Strings(names)

	ew.head(p, "cache_requests_total", "Cache requests by status", "counter")
	for _, name := range names {
		zone := labelEscaper.Replace(name)
		view := caches[name]
		labels := make([]string, 0, len(view.Counts))
		for label := range view.Counts {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			ew.printf("%scache_requests_total{zone=\"%s\",status=\"%s\"} %d\n", p, zone, label, view.Counts[label])
		}
	}
	ew.printf("\n")

	ew.head(p, "cache_hit_ratio", "Cache hit ratio (0..1)", "gauge")
	for _, name := range names {
		ew.printf("%scache_hit_ratio{zone=\"%s\"} %.6f\n", p, labelEscaper.Replace(name), caches[name].HitRatio)
	}
	ew.printf("\n")
	return ew.err
}

// WriteInfo renders the module information metric.
func (f *Formatter) WriteInfo(w io.Writer, hostname, version string) error {
	p := f.Prefix
	ew := &errWriter{w: w}
	ew.head(p, "info", "TrafficScope module information", "gauge")
	ew.printf("%sinfo{hostname=\"%s\",version=\"%s\"} 1\n\n",
		p, labelEscaper.Replace(hostname), labelEscaper.Replace(version))
	return ew.err
}

// WriteSoftErrors renders the malformed-event counter.
func (f *Formatter) WriteSoftErrors(w io.Writer, count uint64) error {
	p := f.Prefix
	ew := &errWriter{w: w}
	ew.head(p, "collector_soft_errors_total", "Events dropped for malformed input", "counter")
	ew.printf("%scollector_soft_errors_total %d\n\n", p, count)
	return ew.err
}
