package telemetry

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RowsRead = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kvizgrad_rows_read_total",
		Help: "Rows read per input file, header excluded.",
	}, []string{"file"})

	RowsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kvizgrad_rows_written_total",
		Help: "Rows written per output file, header excluded.",
	}, []string{"file"})

	StageApplications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kvizgrad_stage_applications_total",
		Help: "Completed chain stage applications per rule.",
	}, []string{"rule"})

	SpellFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kvizgrad_spell_fallbacks_total",
		Help: "Cells reverted to their original value after suggestion exhaustion.",
	}, []string{"column"})
)

func Expose(port int) {
	go func() {
		http.Handle("/metrics", promhttp.Handler())
		_ = http.ListenAndServe(fmt.Sprintf(":%d", port), nil)
	}()
}
