package telemetry

import "github.com/prometheus/client_golang/prometheus"

// ChunksScanned counts chunks evaluated by direct scan (as opposed to
// served from a prebuilt scalar index), labeled by field.
var ChunksScanned = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "predicate",
	Name:      "chunks_scanned_total",
	Help:      "Number of chunks evaluated by direct scan rather than scalar index lookup.",
}, []string{"field"})

// ChunksIndexed counts chunks evaluated via a prebuilt scalar index.
var ChunksIndexed = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "predicate",
	Name:      "chunks_indexed_total",
	Help:      "Number of chunks evaluated via a prebuilt scalar index.",
}, []string{"field"})

// LeafDuration observes wall-clock time spent on one chunk of a leaf node
// (one scalar index lookup or one chunk scan), labeled by leaf kind
// ("term" or "range").
var LeafDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "predicate",
	Name:      "leaf_duration_seconds",
	Help:      "Time spent evaluating one chunk of a predicate leaf node.",
	Buckets:   prometheus.DefBuckets,
}, []string{"kind"})

// MustRegister registers all predicate metrics against reg. Callers that
// embed the executor in a larger service call this once against their own
// registry; it is never called automatically so the package has no import-
// time side effect on a process-wide default registry.
func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(ChunksScanned, ChunksIndexed, LeafDuration)
}
