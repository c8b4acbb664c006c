package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	gojson "github.com/goccy/go-json"
	jsongrid "github.com/reoring/jsongrid"
	yamlsrc "github.com/reoring/jsongrid/source/yaml"
)

func main() {
	fs := flag.NewFlagSet("jsongrid", flag.ExitOnError)
	var (
		fromYAML  = fs.Bool("yaml", false, "treat input as YAML instead of JSON-like text")
		repair    = fs.Bool("repair", false, "enable the jsonrepair recovery stage")
		asJSON    = fs.Bool("json", false, "emit the derived grid as JSON")
		pathOnly  = fs.Bool("path", false, "print only the chosen array's path")
		colsOnly  = fs.Bool("columns", false, "print only the derived columns")
		sampleCap = fs.Int("sample", 0, "override the scorer's sample cap")
	)
	fs.Usage = usage(fs)
	_ = fs.Parse(os.Args[1:])

	text, err := readInput(fs.Arg(0))
	if err != nil {
		fatalf("reading input: %v", err)
	}

	opt := jsongrid.Options{Repair: *repair, SampleCap: *sampleCap}
	var res *jsongrid.Result
	if *fromYAML {
		res, err = yamlsrc.Derive(text, opt)
	} else {
		res, err = jsongrid.Derive(text, opt)
	}
	if err != nil {
		fatalf("parse: %v", err)
	}
	if res == nil {
		fmt.Fprintln(os.Stderr, "no tabular data found")
		os.Exit(1)
	}

	switch {
	case *pathOnly:
		fmt.Println(res.Path.String())
	case *colsOnly:
		for _, c := range res.Columns {
			fmt.Printf("%s:%s\n", c.Key, c.Type)
		}
	case *asJSON:
		printJSON(res)
	default:
		printTable(res)
	}
}

func usage(fs *flag.FlagSet) func() {
	return func() {
		fmt.Fprintln(os.Stderr, "jsongrid derives a grid from JSON-like text\n\nUsage:\n  jsongrid [flags] [file]\n\nReads stdin when no file is given.")
		fs.PrintDefaults()
	}
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

func printJSON(res *jsongrid.Result) {
	rows := make([]map[string]any, len(res.Rows))
	for i, r := range res.Rows {
		rows[i] = r.Cells
	}
	out := struct {
		Path    string                `json:"path"`
		Note    string                `json:"note"`
		Columns []jsongrid.GridColumn `json:"columns"`
		Rows    []map[string]any      `json:"rows"`
	}{res.Path.String(), res.Note, res.Columns, rows}
	b, err := gojson.MarshalIndent(out, "", "  ")
	if err != nil {
		fatalf("encode: %v", err)
	}
	fmt.Println(string(b))
}

func printTable(res *jsongrid.Result) {
	fmt.Println(res.Note)
	header := make([]string, len(res.Columns))
	for i, c := range res.Columns {
		header[i] = c.Key
	}
	fmt.Println(strings.Join(header, " | "))
	for _, row := range res.Rows {
		cells := make([]string, len(res.Columns))
		for i, c := range res.Columns {
			cells[i] = cellString(row, c.Key)
		}
		fmt.Println(strings.Join(cells, " | "))
	}
}

func cellString(row jsongrid.GridRow, key string) string {
	if !row.Defined(key) {
		return ""
	}
	cell := row.Cells[key]
	if cell == nil {
		return "null"
	}
	return fmt.Sprintf("%v", cell)
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
