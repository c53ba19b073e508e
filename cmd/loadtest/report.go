package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"google.golang.org/grpc/codes"
)

type latencySummary struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
	P50 float64 `json:"p50"`
	P95 float64 `json:"p95"`
	P99 float64 `json:"p99"`
}

type methodReport struct {
	Calls     int64            `json:"calls"`
	Success   int64            `json:"success"`
	Failed    int64            `json:"failed"`
	Codes     map[string]int64 `json:"codes"`
	LatencyMs latencySummary   `json:"latency_ms"`
}

// stockReport сверяет остаток товара после прогона.
type stockReport struct {
	ProductID     string `json:"product_id"`
	InitialStock  int64  `json:"initial_stock"`
	FinalStock    int64  `json:"final_stock"`
	UnitsSold     int64  `json:"units_sold"`
	Oversold      bool   `json:"oversold"`
	Inconsistent  bool   `json:"inconsistent"`
	PlacedOrders  int64  `json:"placed_orders"`
	RejectedStock int64  `json:"rejected_insufficient_stock"`
}

type report struct {
	StartedAt       time.Time               `json:"started_at"`
	DurationSeconds float64                 `json:"duration_seconds"`
	RPS             float64                 `json:"rps"`
	Stock           stockReport             `json:"stock"`
	Methods         map[string]methodReport `json:"methods"`
}

// Коды PlaceOrder, которые не считаются сбоем сервиса.
var expectedPlaceCodes = map[string]bool{
	codes.OK.String():                 true,
	codes.FailedPrecondition.String(): true,
}

// Failed сообщает, что прогон нарушил складской инвариант или упал с неожиданными кодами.
func (r report) Failed() bool {
	if r.Stock.Oversold || r.Stock.Inconsistent {
		return true
	}
	for code, count := range r.Methods[methodPlaceOrder].Codes {
		if count > 0 && !expectedPlaceCodes[code] {
			return true
		}
	}
	return false
}

type sample struct {
	ms   float64
	code codes.Code
}

// collector копит сырые замеры; агрегаты считаются один раз в конце прогона.
type collector struct {
	mu      sync.Mutex
	samples map[string][]sample
}

func newCollector() *collector {
	return &collector{samples: make(map[string][]sample)}
}

func (c *collector) record(method string, latency time.Duration, code codes.Code) {
	s := sample{ms: float64(latency.Microseconds()) / 1000, code: code}

	c.mu.Lock()
	c.samples[method] = append(c.samples[method], s)
	c.mu.Unlock()
}

func (c *collector) methodsReport() map[string]methodReport {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]methodReport, len(c.samples))
	for method, samples := range c.samples {
		mr := methodReport{Calls: int64(len(samples)), Codes: make(map[string]int64)}
		latencies := make([]float64, 0, len(samples))
		for _, s := range samples {
			if s.code == codes.OK {
				mr.Success++
			}
			mr.Codes[s.code.String()]++
			latencies = append(latencies, s.ms)
		}
		mr.Failed = mr.Calls - mr.Success
		mr.LatencyMs = buildLatencySummary(latencies)
		out[method] = mr
	}
	return out
}

// writeJSONReport пишет отчёт в файл внутри рабочего каталога.
func writeJSONReport(path string, result report) error {
	clean := filepath.Clean(path)
	if clean == "." || !filepath.IsLocal(clean) {
		return fmt.Errorf("report path must name a file inside the working directory: %q", path)
	}

	raw, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return os.WriteFile(clean, append(raw, '\n'), 0o600)
}

func printReport(out io.Writer, result report) {
	s := result.Stock
	_, _ = fmt.Fprintf(out, "load test: %.2fs, %.2f place/s\n", result.DurationSeconds, result.RPS)
	_, _ = fmt.Fprintf(out, "stock: product=%s initial=%d final=%d sold=%d placed=%d rejected=%d oversold=%t inconsistent=%t\n",
		s.ProductID, s.InitialStock, s.FinalStock, s.UnitsSold, s.PlacedOrders, s.RejectedStock, s.Oversold, s.Inconsistent)

	methods := make([]string, 0, len(result.Methods))
	for m := range result.Methods {
		methods = append(methods, m)
	}
	slices.Sort(methods)
	for _, m := range methods {
		mr := result.Methods[m]
		l := mr.LatencyMs
		_, _ = fmt.Fprintf(out, "  %-16s calls=%d ok=%d failed=%d p50=%.2fms p95=%.2fms p99=%.2fms max=%.2fms\n",
			m, mr.Calls, mr.Success, mr.Failed, l.P50, l.P95, l.P99, l.Max)
	}
}

func buildLatencySummary(values []float64) latencySummary {
	n := len(values)
	if n == 0 {
		return latencySummary{}
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	var total float64
	for _, v := range sorted {
		total += v
	}
	return latencySummary{
		Min: sorted[0],
		Max: sorted[n-1],
		Avg: total / float64(n),
		P50: percentile(sorted, 0.50),
		P95: percentile(sorted, 0.95),
		P99: percentile(sorted, 0.99),
	}
}

// percentile интерполирует между соседними рангами отсортированной выборки.
func percentile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := min(lo+1, len(sorted)-1)
	return sorted[lo] + (sorted[hi]-sorted[lo])*(pos-float64(lo))
}
