// Package sampledata generates synthetic (product, price) datasets and
// persists them in csv, feather or parquet, optionally compressed.
//
// Generation is deterministic: the random source is seeded with a fixed
// constant, so the same parameters always produce byte-identical files.
package sampledata

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	// DefaultLines is the number of rows generated when the caller does not
	// ask for a specific count.
	DefaultLines = 50_000_000

	DefaultFormat   = "csv"
	DefaultFilename = "sample"

	// Rows are produced and written in batches of this size so that large
	// datasets never materialize in memory at once.
	batchSize = 1 << 16
)

// products is the fixed six-symbol alphabet rows draw from.
var products = [6]string{"A", "B", "C", "D", "E", "F"}

// Row is a single generated record. The parquet tags define the file schema
// for the parquet format; csv and feather derive theirs from the same shape.
type Row struct {
	Product string `parquet:"product,dict"`
	Price   int32  `parquet:"price"`
}

// Params are the generation parameters. A zero Lines is meaningful (it
// produces a file with no rows), so callers wanting the default row count
// must pass DefaultLines explicitly. Empty Format and Filename fall back to
// DefaultFormat and DefaultFilename.
type Params struct {
	Lines       int
	Format      string
	Filename    string
	Compression string
}

func (p Params) withDefaults() Params {
	if p.Format == "" {
		p.Format = DefaultFormat
	}
	if p.Filename == "" {
		p.Filename = DefaultFilename
	}
	return p
}

// Generator writes sample datasets to a filesystem. Diagnostics for the two
// soft no-op conditions (unsupported format, pre-existing file) go to the
// diagnostic writer; everything else is reported as an error.
type Generator struct {
	fs     afero.Fs
	logger log.Logger
	out    io.Writer
}

func NewGenerator(fs afero.Fs, logger log.Logger, out io.Writer) *Generator {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Generator{fs: fs, logger: logger, out: out}
}

// Generate produces p.Lines rows and writes them to the path derived from
// (Filename, Format, Compression). An unsupported format or an already
// existing output file is not an error: a diagnostic is printed and nothing
// is written. Any other failure propagates.
func (g *Generator) Generate(ctx context.Context, p Params) error {
	p = p.withDefaults()
	if p.Lines < 0 {
		return errors.Errorf("sampledata: invalid line count %d", p.Lines)
	}

	format, ok := ParseFormat(p.Format)
	if !ok {
		fmt.Fprintf(g.out, "This format is not allowed.\nPlease, use any of the following options:\n\t(%s)\n",
			strings.Join(AllowedFormats, ", "))
		return nil
	}

	name := outputName(p.Filename, p.Format, p.Compression)
	exists, err := afero.Exists(g.fs, name)
	if err != nil {
		return err
	}
	if exists {
		fmt.Fprintf(g.out, "File %s already exists. Not created!!\n", name)
		return nil
	}

	level.Debug(g.logger).Log(
		"msg", "generating sample data",
		"rows", humanize.Comma(int64(p.Lines)),
		"format", format,
		"path", name,
	)

	f, err := g.fs.Create(name)
	if err != nil {
		return err
	}

	src := newRowSource(p.Lines)
	switch format {
	case FormatCSV:
		err = writeCSV(ctx, f, src, p.Compression)
	case FormatParquet:
		err = writeParquet(ctx, f, src, p.Compression)
	case FormatFeather:
		err = writeFeather(ctx, f, src)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// A partial file is worse than none.
		_ = g.fs.Remove(name)
		return errors.Wrapf(err, "writing %s", name)
	}
	return nil
}

// outputName derives the output path from the naming parameters. A gzip
// compression request yields the conventional ".gz" suffix, but the codec
// stays gzip.
func outputName(filename, format, compression string) string {
	name := filename + "." + format
	if compression != "" {
		suffix := compression
		if suffix == "gzip" {
			suffix = "gz"
		}
		name += "." + suffix
	}
	return name
}

// sampleSeed is the fixed seed of the row stream. Changing it invalidates
// the reproducibility guarantee for previously generated files.
var sampleSeed = int64(math.Float64bits(0.42))

// rowSource yields the deterministic row stream. Per row it draws the
// product first and the price second; the draw order is part of the
// reproducibility contract, not just the marginal distributions.
type rowSource struct {
	rnd       *rand.Rand
	remaining int
}

func newRowSource(lines int) *rowSource {
	return &rowSource{
		rnd:       rand.New(rand.NewSource(sampleSeed)),
		remaining: lines,
	}
}

// next fills buf with at most len(buf) rows and returns the filled prefix.
// An empty result means the stream is exhausted.
func (s *rowSource) next(buf []Row) []Row {
	n := len(buf)
	if s.remaining < n {
		n = s.remaining
	}
	for i := 0; i < n; i++ {
		product := int(math.Ceil(s.rnd.Float64() * 6))
		if product < 1 {
			product = 1
		}
		price := int32(5 + s.rnd.Float64()*110)
		buf[i] = Row{Product: products[product-1], Price: price}
	}
	s.remaining -= n
	return buf[:n]
}
