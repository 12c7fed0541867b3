package main

import (
	"context"
	"encoding/csv"
	"os"
	"os/exec"
	"runtime"

	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"

	"github.com/tabtools/tabgen/pkg/heatmap"
	tabgencontext "github.com/tabtools/tabgen/pkg/tabgen/context"
)

// renderHeatmap reads a labeled csv table, renders it and writes the png.
// With show set it additionally opens the image in the platform viewer,
// the closest thing a command line tool has to an interactive display.
func renderHeatmap(ctx context.Context, input, title, output string, show bool) error {
	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return errors.Wrapf(err, "reading %s", input)
	}
	if len(records) < 2 || len(records[0]) < 2 {
		return errors.Errorf("%s: a heatmap table needs at least one labeled row and column", input)
	}

	cols := records[0][1:]
	rows := make([]string, 0, len(records)-1)
	cells := make([][]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, rec[0])
		cells = append(cells, rec[1:])
	}

	table, err := heatmap.CoerceTable(cols, rows, cells)
	if err != nil {
		return err
	}
	p, err := heatmap.Render(table, title)
	if err != nil {
		return err
	}
	if err := p.Save(10*vg.Inch, 6*vg.Inch, output); err != nil {
		return err
	}
	level.Info(tabgencontext.Logger(ctx)).Log("msg", "heatmap rendered", "path", output)

	if show {
		return openViewer(output)
	}
	return nil
}

func openViewer(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
