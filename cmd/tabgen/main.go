package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/afero"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/tabtools/tabgen/pkg/build"
	"github.com/tabtools/tabgen/pkg/sampledata"
	tabgencontext "github.com/tabtools/tabgen/pkg/tabgen/context"
)

var cfg struct {
	verbose  bool
	generate struct {
		lines       int
		format      string
		filename    string
		compression string
	}
	heatmap struct {
		input  string
		title  string
		output string
		show   bool
	}
}

var (
	consoleOutput = os.Stderr
	logger        = log.NewLogfmtLogger(consoleOutput)
)

func main() {
	app := kingpin.New(filepath.Base(os.Args[0]), "Workshop tooling for generating sample datasets and rendering value-annotated heatmaps.").UsageWriter(os.Stdout)
	app.Version(build.Summary())
	app.HelpFlag.Short('h')
	app.Flag("verbose", "Enable verbose logging.").Short('v').Default("0").BoolVar(&cfg.verbose)

	generateCmd := app.Command("generate", "Generate a synthetic (product, price) dataset file.")
	generateCmd.Flag("lines", "Number of rows to generate.").Default(strconv.Itoa(sampledata.DefaultLines)).IntVar(&cfg.generate.lines)
	generateCmd.Flag("format", "Output format: csv, feather or parquet.").Default(sampledata.DefaultFormat).StringVar(&cfg.generate.format)
	generateCmd.Flag("filename", "Base filename for the output file.").Default(sampledata.DefaultFilename).StringVar(&cfg.generate.filename)
	generateCmd.Flag("compression", "Compression codec, e.g. gzip or zstd. Ignored for feather, which is always zstd.").Default("").StringVar(&cfg.generate.compression)

	heatmapCmd := app.Command("heatmap", "Render a csv table as an annotated heatmap image.")
	heatmapCmd.Arg("input", "csv file with column labels in the first row and row labels in the first column.").Required().ExistingFileVar(&cfg.heatmap.input)
	heatmapCmd.Flag("title", "Title displayed above the plot.").Default("").StringVar(&cfg.heatmap.title)
	heatmapCmd.Flag("output", "Path of the rendered png.").Default("heatmap.png").StringVar(&cfg.heatmap.output)
	heatmapCmd.Flag("show", "Open the rendered image in the system viewer.").Default("false").BoolVar(&cfg.heatmap.show)

	inspectCmd := app.Command("inspect", "Inspect a parquet file's structure.")
	inspectFiles := inspectCmd.Arg("file", "parquet file path").Required().ExistingFiles()

	parsedCmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	if !cfg.verbose {
		logger = level.NewFilter(logger, level.AllowInfo())
	}
	ctx := tabgencontext.WithLogger(context.Background(), logger)
	ctx = tabgencontext.WithOutput(ctx, os.Stdout)

	switch parsedCmd {
	case generateCmd.FullCommand():
		g := sampledata.NewGenerator(afero.NewOsFs(), logger, os.Stdout)
		os.Exit(checkError(g.Generate(ctx, sampledata.Params{
			Lines:       cfg.generate.lines,
			Format:      cfg.generate.format,
			Filename:    cfg.generate.filename,
			Compression: cfg.generate.compression,
		})))
	case heatmapCmd.FullCommand():
		os.Exit(checkError(renderHeatmap(ctx, cfg.heatmap.input, cfg.heatmap.title, cfg.heatmap.output, cfg.heatmap.show)))
	case inspectCmd.FullCommand():
		for _, file := range *inspectFiles {
			if err := parquetInspect(ctx, file); err != nil {
				os.Exit(checkError(err))
			}
		}
	default:
		level.Error(logger).Log("msg", "unknown command", "cmd", parsedCmd)
	}
}

func checkError(err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	return 1
}
