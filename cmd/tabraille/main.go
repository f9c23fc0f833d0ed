/*
Command tabraille converts Tamil text to braille.

Usage:

	tabraille [flags] [file ...]

Text is read from the files given, or from stdin if there are none (or the
file name is "-"). Output goes to stdout as Unicode braille, BRF, or as a
JSON document with the complete alignment of text and cells.

With -from-braille the input is taken to be Unicode braille already, and is
written as BRF. Other text in the input is copied unchanged.

Settings are taken from a YAML file (-config), else from the environment
(TABRAILLE_FORMAT, TABRAILLE_TABLE, TABRAILLE_TRACE). Flags override both.
*/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/tamilbraille"
	"github.com/npillmayer/tamilbraille/brf"
	"github.com/npillmayer/tamilbraille/tablefile"
)

const (
	formatUnicode = "unicode"
	formatBRF     = "brf"
	formatJSON    = "json"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("tabraille", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		flagConfig    string
		flagFormat    string
		flagTable     string
		flagTrace     string
		flagDumpTable bool
		flagValidate  bool
		flagFromBRL   bool
	)
	flags.StringVar(&flagConfig, "config", "", "YAML configuration file")
	flags.StringVar(&flagFormat, "format", "", "output format: unicode, brf or json")
	flags.StringVar(&flagTable, "table", "", "table file overlaid onto the built-in table")
	flags.StringVar(&flagTrace, "trace", "", "trace level: error, info or debug")
	flags.BoolVar(&flagDumpTable, "dump-table", false, "write the effective table and exit")
	flags.BoolVar(&flagValidate, "validate", false, "check alignment invariants of every conversion")
	flags.BoolVar(&flagFromBRL, "from-braille", false, "read Unicode braille and write it as BRF")
	if err := flags.Parse(args); err != nil {
		return 2
	}
	cfg, err := LoadConfig(flagConfig)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	if flagFormat != "" {
		cfg.Format = flagFormat
	}
	if flagTable != "" {
		cfg.Table = flagTable
	}
	if flagTrace != "" {
		cfg.Trace = flagTrace
	}
	if err = cfg.validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	setupTracing(cfg.Trace, stderr)
	table, err := loadTable(cfg.Table)
	if err != nil {
		fmt.Fprintf(stderr, "cannot load table: %v\n", err)
		return 3
	}
	if flagDumpTable {
		if err = tablefile.Write(stdout, table); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		return 0
	}
	inputs := flags.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	for _, in := range inputs {
		text, err := readInput(in, stdin)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		if flagFromBRL {
			if _, err = fmt.Fprint(stdout, brf.FromUnicode(text)); err != nil {
				fmt.Fprintln(stderr, err)
				return 1
			}
			continue
		}
		res := table.Convert(text)
		if flagValidate {
			if err = res.Validate(); err != nil {
				fmt.Fprintf(stderr, "%s: %v\n", in, err)
				return 1
			}
		}
		if err = writeResult(stdout, res, cfg.Format); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	return 0
}

func setupTracing(level string, w io.Writer) {
	tr := gologadapter.New()
	tr.SetOutput(w)
	tr.SetTraceLevel(tracing.TraceLevelFromString(level))
	tracing.SetTraceSelector(traceSelector{tr})
}

// traceSelector hands out the same tracer for every key.
type traceSelector struct {
	tr tracing.Trace
}

func (sel traceSelector) Select(string) tracing.Trace {
	return sel.tr
}

func loadTable(path string) (*tamilbraille.Table, error) {
	if path == "" {
		return tamilbraille.DefaultTable(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tablefile.Extend(tamilbraille.DefaultTable(), path, f)
}

func readInput(name string, stdin io.Reader) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(name)
	return string(data), err
}

func writeResult(w io.Writer, res *tamilbraille.ConversionResult, format string) error {
	switch format {
	case formatBRF:
		_, err := fmt.Fprintln(w, brf.EncodeResult(res))
		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resultDocument(res))
	}
	_, err := fmt.Fprintln(w, res.Braille())
	return err
}

type cellDoc struct {
	Dots    []int  `json:"dots"`
	Braille string `json:"braille"`
}

type mappingDoc struct {
	ID         tamilbraille.MappingID `json:"mappingId"`
	SourceText string                 `json:"sourceText"`
	StartIndex int                    `json:"startIndex"`
	EndIndex   int                    `json:"endIndex"`
	Class      string                 `json:"class"`
	Mapped     bool                   `json:"mapped"`
	Cells      []cellDoc              `json:"cells"`
}

type wordDoc struct {
	StartIndex int `json:"startIndex"`
	EndIndex   int `json:"endIndex"`
}

type resultDoc struct {
	Text           string       `json:"text"`
	CellsByLine    []string     `json:"cellsByLine"`
	BRF            []string     `json:"brf"`
	Mappings       []mappingDoc `json:"mappings"`
	WordBoundaries []wordDoc    `json:"wordBoundaries"`
}

func resultDocument(res *tamilbraille.ConversionResult) resultDoc {
	doc := resultDoc{
		Text:           res.Text(),
		CellsByLine:    []string{},
		BRF:            []string{},
		Mappings:       []mappingDoc{},
		WordBoundaries: []wordDoc{},
	}
	for _, l := range res.Lines() {
		rr := make([]rune, len(l))
		for i, c := range l {
			rr[i] = c.Rune()
		}
		doc.CellsByLine = append(doc.CellsByLine, string(rr))
		doc.BRF = append(doc.BRF, brf.Encode(l))
	}
	for _, m := range res.Mappings() {
		md := mappingDoc{
			ID:         m.ID,
			SourceText: m.SourceText,
			StartIndex: m.StartIndex,
			EndIndex:   m.EndIndex,
			Class:      m.Class.String(),
			Mapped:     m.Mapped,
			Cells:      make([]cellDoc, len(m.Cells)),
		}
		for i, c := range m.Cells {
			md.Cells[i] = cellDoc{Dots: c.Dots.Positions(), Braille: string(c.Rune())}
		}
		doc.Mappings = append(doc.Mappings, md)
	}
	for _, w := range res.WordBoundaries() {
		doc.WordBoundaries = append(doc.WordBoundaries, wordDoc{StartIndex: w.StartIndex, EndIndex: w.EndIndex})
	}
	return doc
}
