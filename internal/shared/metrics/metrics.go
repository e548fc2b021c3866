package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	publishStartedTotal   atomic.Uint64
	publishCompletedTotal atomic.Uint64
	publishFailedTotal    atomic.Uint64
	domainChecksTotal     atomic.Uint64
	pdfExportsTotal       atomic.Uint64

	siteGenerationDuration = newHistogram([]float64{1, 5, 10, 25, 50, 100, 250, 500, 1000})
	pdfExportDuration      = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000})
)

// IncPublishStarted increments the started counter.
func IncPublishStarted() {
	publishStartedTotal.Add(1)
}

// IncPublishCompleted increments the completed counter.
func IncPublishCompleted() {
	publishCompletedTotal.Add(1)
}

// IncPublishFailed increments the failed counter.
func IncPublishFailed() {
	publishFailedTotal.Add(1)
}

// IncDomainChecks increments the domain availability check counter.
func IncDomainChecks() {
	domainChecksTotal.Add(1)
}

// IncPDFExports increments the PDF export counter.
func IncPDFExports() {
	pdfExportsTotal.Add(1)
}

// ObserveSiteGenerationMs records a site generation duration in milliseconds.
func ObserveSiteGenerationMs(value float64) {
	if value < 0 {
		value = 0
	}
	siteGenerationDuration.Observe(value)
}

// ObservePDFExportMs records a PDF export duration in milliseconds.
func ObservePDFExportMs(value float64) {
	if value < 0 {
		value = 0
	}
	pdfExportDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "publish_started_total", "Total publications started", publishStartedTotal.Load())
	writeCounter(&buf, "publish_completed_total", "Total publications completed", publishCompletedTotal.Load())
	writeCounter(&buf, "publish_failed_total", "Total publications failed", publishFailedTotal.Load())
	writeCounter(&buf, "domain_checks_total", "Total domain availability checks", domainChecksTotal.Load())
	writeCounter(&buf, "pdf_exports_total", "Total PDF exports", pdfExportsTotal.Load())
	writeHistogram(&buf, "site_generation_ms", "Site generation duration in milliseconds", siteGenerationDuration.Snapshot())
	writeHistogram(&buf, "pdf_export_ms", "PDF export duration in milliseconds", pdfExportDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
