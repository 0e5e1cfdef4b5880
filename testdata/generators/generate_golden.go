//go:build ignore
// +build ignore

// Command generate_golden runs representative predicate scenarios through
// the real executor and writes the resulting chunked bitsets to
// testdata/golden as JSON, so a future change to the execution core can be
// diffed against a recorded-good output rather than hand-recomputed.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/scigolib/predicate/bitset"
	"github.com/scigolib/predicate/exec"
	"github.com/scigolib/predicate/expr"
	"github.com/scigolib/predicate/schema"
	"github.com/scigolib/predicate/segment"
)

type fixture struct {
	Name   string   `json:"name"`
	Result [][]bool `json:"result"`
}

func toFixture(name string, result bitset.Chunked) fixture {
	rows := make([][]bool, len(result))
	for i, c := range result {
		row := make([]bool, c.Len())
		for j := range row {
			row[j] = c.Get(j)
		}
		rows[i] = row
	}
	return fixture{Name: name, Result: rows}
}

func vals32(vs ...int64) []expr.Value {
	out := make([]expr.Value, len(vs))
	for i, v := range vs {
		out[i] = expr.IntValue(schema.Int32, v)
	}
	return out
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func main() {
	var fixtures []fixture

	// Two-sided range over a field with its leading chunk indexed.
	store := segment.NewMemoryColumnStore(4)
	must(store.AppendChunk("age", vals32(10, 20, 30, 40), 4))
	must(store.AppendChunk("age", vals32(50, 60, 0, 0), 2))
	reg := segment.NewMemoryIndexRegistry(4, 64)
	must(reg.BuildIndex("age", 0, vals32(10, 20, 30, 40)))
	sch := schema.NewStaticSchema(map[string]schema.Type{"age": schema.Int32}, []string{"age"})
	e := exec.New(store, reg, sch)
	rangePred, err := expr.NewRange("age", schema.Int32, []expr.Cond{
		{Op: expr.GE, Val: expr.IntValue(schema.Int32, 20)},
		{Op: expr.LT, Val: expr.IntValue(schema.Int32, 60)},
	})
	must(err)
	rangeResult, err := e.Execute(context.Background(), rangePred)
	must(err)
	fixtures = append(fixtures, toFixture("two_sided_range", rangeResult))

	// Term membership over a single fully-scanned chunk.
	termStore := segment.NewMemoryColumnStore(8)
	must(termStore.AppendChunk("tag", vals32(1, 2, 3, 4, 5, 6, 7, 8), 8))
	termReg := segment.NewMemoryIndexRegistry(8, 64)
	termSch := schema.NewStaticSchema(map[string]schema.Type{"tag": schema.Int32}, []string{"tag"})
	termExec := exec.New(termStore, termReg, termSch)
	term := expr.NewTerm("tag", schema.Int32, vals32(2, 5, 99))
	termResult, err := termExec.Execute(context.Background(), term)
	must(err)
	fixtures = append(fixtures, toFixture("term_membership", termResult))

	out, err := json.MarshalIndent(fixtures, "", "  ")
	must(err)
	must(os.MkdirAll(filepath.Join("testdata", "golden"), 0o755))
	must(os.WriteFile(filepath.Join("testdata", "golden", "scenarios.json"), out, 0o644))
	fmt.Println("wrote testdata/golden/scenarios.json")
}
