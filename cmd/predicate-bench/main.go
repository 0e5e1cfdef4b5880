// Command predicate-bench drives the executor against a synthetic
// in-memory segment, for ad-hoc timing and for exercising the telemetry
// wiring outside the test suite.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/scigolib/predicate/exec"
	"github.com/scigolib/predicate/expr"
	"github.com/scigolib/predicate/internal/config"
	"github.com/scigolib/predicate/internal/telemetry"
	"github.com/scigolib/predicate/schema"
	"github.com/scigolib/predicate/segment"
)

func main() {
	numChunks := flag.Int("chunks", 64, "number of chunks to generate")
	chunkSize := flag.Int("chunk-size", 2048, "rows per chunk")
	indexedFrac := flag.Float64("indexed", 0.5, "fraction of leading chunks to index")
	parallelism := flag.Int("parallelism", 1, "chunk scan parallelism")
	metricsAddr := flag.String("metrics-addr", "", "if set, serve /metrics on this address after the run until the server fails")
	flag.Parse()

	store := segment.NewMemoryColumnStore(*chunkSize)
	reg := segment.NewMemoryIndexRegistry(*chunkSize, 4096)
	sch := schema.NewStaticSchema(map[string]schema.Type{"value": schema.Int32}, []string{"value"})

	rng := rand.New(rand.NewSource(1))
	barrier := int(float64(*numChunks) * *indexedFrac)
	for i := 0; i < *numChunks; i++ {
		chunk := make([]expr.Value, *chunkSize)
		for j := range chunk {
			chunk[j] = expr.IntValue(schema.Int32, int64(rng.Intn(1000)))
		}
		if err := store.AppendChunk("value", chunk, *chunkSize); err != nil {
			log.Fatalf("predicate-bench: append chunk %d: %v", i, err)
		}
		if i < barrier {
			if err := reg.BuildIndex("value", i, chunk); err != nil {
				log.Fatalf("predicate-bench: build index chunk %d: %v", i, err)
			}
		}
	}

	registry := prometheus.NewRegistry()
	telemetry.MustRegister(registry)

	e := exec.New(store, reg, sch, config.WithChunkParallelism(*parallelism))
	pred, err := expr.NewRange("value", schema.Int32, []expr.Cond{
		{Op: expr.GE, Val: expr.IntValue(schema.Int32, 200)},
		{Op: expr.LT, Val: expr.IntValue(schema.Int32, 800)},
	})
	if err != nil {
		log.Fatalf("predicate-bench: build predicate: %v", err)
	}

	start := time.Now()
	result, err := e.Execute(context.Background(), pred)
	if err != nil {
		log.Fatalf("predicate-bench: execute: %v", err)
	}
	elapsed := time.Since(start)

	matched := 0
	for _, b := range result {
		matched += b.Count()
	}
	fmt.Fprintf(os.Stdout, "chunks=%d chunk_size=%d indexed_chunks=%d matched=%d elapsed=%s\n",
		*numChunks, *chunkSize, barrier, matched, elapsed)

	if *metricsAddr != "" {
		http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		log.Printf("predicate-bench: serving /metrics on %s", *metricsAddr)
		log.Fatal(http.ListenAndServe(*metricsAddr, nil))
	}
}
