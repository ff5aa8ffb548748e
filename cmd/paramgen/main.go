// Command paramgen derives the round constants and MDS matrices of every
// shipped instantiation and writes them as Go tables into internal/params.
//
//	go run ./cmd/paramgen --out internal/params
//	go run ./cmd/paramgen --check
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"math/big"
	"os"
	"path/filepath"
	"slices"
	"text/template"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/vocdoni/algohash/internal/params"
)

type table struct {
	Name string
	Type string
	Rows []string
}

var fileTmpl = template.Must(template.New("params").Parse(`// Code generated by paramgen. DO NOT EDIT.

package params
{{range .}}
var {{.Name}} = []{{.Type}}{
{{range .Rows}}	{{.}},
{{end}}}
{{end}}`))

// newTable lays vs out with width values per row. Values wider than 64 bits
// switch the table to decimal strings, one per row.
func newTable(name string, vs []*big.Int, width int) table {
	wide := slices.ContainsFunc(vs, func(v *big.Int) bool { return !v.IsUint64() })
	if wide {
		rows := make([]string, len(vs))
		for i, v := range vs {
			rows[i] = fmt.Sprintf("%q", v.String())
		}
		return table{Name: name, Type: "string", Rows: rows}
	}
	var rows []string
	for row := range slices.Chunk(vs, width) {
		var b bytes.Buffer
		for i, v := range row {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(v.String())
		}
		rows = append(rows, b.String())
	}
	return table{Name: name, Type: "uint64", Rows: rows}
}

// generate returns the formatted source of every generated file, keyed by
// file name.
func generate() (map[string][]byte, error) {
	var order []string
	tables := map[string][]table{}
	add := func(file string, ts ...table) {
		if _, ok := tables[file]; !ok {
			order = append(order, file)
		}
		tables[file] = append(tables[file], ts...)
	}

	for _, s := range params.RescueSpecs {
		g := params.PrimitiveElement(s.Modulus, s.Factors)
		mds := params.RescueMDS(s.Modulus, g, s.StateSize)
		ark := params.RescueRoundConstants(s.Modulus, s.StateSize, s.StateSize-s.Rate, s.Security, s.Rounds)
		add(s.File, newTable(s.Ident+"MDS", mds, s.StateSize), newTable(s.Ident+"ARK", ark, s.StateSize))
	}
	for _, s := range params.AnemoiSpecs {
		g := params.PrimitiveElement(s.Modulus, s.Factors)
		if s.Columns != 4 {
			return nil, errors.Errorf("%s: no linear layer for %d columns", s.Name, s.Columns)
		}
		c, d := params.AnemoiRoundConstants(s.Modulus, g, s.Alpha, s.Rounds, s.Columns)
		add(s.File,
			newTable(s.Ident+"MDS", params.AnemoiMDS4(s.Modulus, g), s.Columns),
			newTable(s.Ident+"C", c, s.Columns),
			newTable(s.Ident+"D", d, s.Columns),
		)
	}

	out := make(map[string][]byte, len(order))
	for _, file := range order {
		var b bytes.Buffer
		if err := fileTmpl.Execute(&b, tables[file]); err != nil {
			return nil, errors.Wrapf(err, "render %s", file)
		}
		src, err := format.Source(b.Bytes())
		if err != nil {
			return nil, errors.Wrapf(err, "format %s", file)
		}
		out[file] = src
	}
	return out, nil
}

// stale lists the files under dir whose content differs from files.
func stale(dir string, files map[string][]byte) ([]string, error) {
	var diff []string
	for name, src := range files {
		cur, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "read %s", name)
		}
		if !bytes.Equal(cur, src) {
			diff = append(diff, name)
		}
	}
	slices.Sort(diff)
	return diff, nil
}

func run(args []string, log zerolog.Logger) error {
	fs := pflag.NewFlagSet("paramgen", pflag.ContinueOnError)
	dir := fs.String("out", "internal/params", "directory receiving the generated files")
	check := fs.Bool("check", false, "report stale files instead of writing them")
	if err := fs.Parse(args); err != nil {
		return err
	}

	files, err := generate()
	if err != nil {
		return err
	}
	diff, err := stale(*dir, files)
	if err != nil {
		return err
	}
	if *check {
		if len(diff) > 0 {
			return errors.Errorf("stale generated files: %v", diff)
		}
		log.Info().Int("files", len(files)).Msg("generated tables are up to date")
		return nil
	}
	for _, name := range diff {
		path := filepath.Join(*dir, name)
		if err := os.WriteFile(path, files[name], 0o644); err != nil {
			return errors.Wrapf(err, "write %s", path)
		}
		log.Info().Str("file", path).Msg("wrote")
	}
	return nil
}

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := run(os.Args[1:], log); err != nil {
		log.Fatal().Err(err).Msg("paramgen")
	}
}
