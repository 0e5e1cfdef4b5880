// Command gen emits exec/dispatch_gen.go: six comparison functions (lt, le,
// gt, ge, eq, ne) per scalar type, monomorphized so the executor's inner scan loops never
// pay for a type switch per row (cf. spec.md §4.3.5). Modeled on the
// teacher's own code-generation tools (cmd/sonnet6/hdf5_test_generator.go,
// testdata/generators/generate_test_files.go): a small main package that
// renders a text/template against a fixed type table and writes the result
// next to the package it augments.
//
//go:generate go run . -out ../dispatch_gen.go
package main

import (
	"flag"
	"log"
	"os"
	"text/template"
)

type scalarType struct {
	Name  string // Go-identifier-safe suffix, e.g. "Int32"
	Go    string // Go type, e.g. "int32"
	Float bool
}

var types = []scalarType{
	{Name: "Bool", Go: "bool"},
	{Name: "Int8", Go: "int8"},
	{Name: "Int16", Go: "int16"},
	{Name: "Int32", Go: "int32"},
	{Name: "Int64", Go: "int64"},
	{Name: "Float32", Go: "float32", Float: true},
	{Name: "Float64", Go: "float64", Float: true},
}

func main() {
	out := flag.String("out", "dispatch_gen.go", "output file path")
	flag.Parse()

	tmpl, err := template.ParseFiles("dispatch.go.tmpl")
	if err != nil {
		log.Fatalf("gen: parse template: %v", err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("gen: create %s: %v", *out, err)
	}
	defer f.Close()

	// bool has no ordering in Go, so the template's a < b form does not
	// compile for it; Bool is left out of the template run and its six
	// functions are written by hand below, ordering false < true.
	ordered := make([]scalarType, 0, len(types))
	for _, t := range types {
		if t.Name != "Bool" {
			ordered = append(ordered, t)
		}
	}

	if err := tmpl.Execute(f, ordered); err != nil {
		log.Fatalf("gen: execute template: %v", err)
	}

	boolFuncs := `
func eqBool(a, b bool) bool { return a == b }
func neBool(a, b bool) bool { return a != b }

// boolToInt orders false < true, matching how the predicate tree's generic
// Value comparator treats bool for ordered operators.
func boolToInt(v bool) int8 {
	if v {
		return 1
	}
	return 0
}

func ltBool(a, b bool) bool { return boolToInt(a) < boolToInt(b) }
func leBool(a, b bool) bool { return boolToInt(a) <= boolToInt(b) }
func gtBool(a, b bool) bool { return boolToInt(a) > boolToInt(b) }
func geBool(a, b bool) bool { return boolToInt(a) >= boolToInt(b) }
`
	if _, err := f.WriteString(boolFuncs); err != nil {
		log.Fatalf("gen: write bool funcs: %v", err)
	}
}
