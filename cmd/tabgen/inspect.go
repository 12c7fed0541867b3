package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/parquet-go/parquet-go"

	tabgencontext "github.com/tabtools/tabgen/pkg/tabgen/context"
)

// parquetInspect prints the row group and column chunk layout of a parquet
// file, including how well each column compressed.
func parquetInspect(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	stats, err := f.Stat()
	if err != nil {
		return err
	}
	pf, err := parquet.OpenFile(f, stats.Size())
	if err != nil {
		return err
	}

	out := tabgencontext.Output(ctx)
	fmt.Fprintln(out, "schema:", pf.Schema())
	meta := pf.Metadata()
	fmt.Fprintln(out, "Num Rows:", meta.NumRows)
	for i, rg := range meta.RowGroups {
		fmt.Fprintln(out, "\t Row group:", i)
		fmt.Fprintln(out, "\t\t Row Count:", rg.NumRows)
		fmt.Fprintln(out, "\t\t Row size:", humanize.Bytes(uint64(rg.TotalByteSize)))
		fmt.Fprintln(out, "\t\t Columns:")
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{
			"Col", "Type", "NumVal", "Compressed", "Uncompressed", "Compression",
		})
		for _, ds := range rg.Columns {
			table.Append([]string{
				strings.Join(ds.MetaData.PathInSchema, "/"),
				ds.MetaData.Type.String(),
				fmt.Sprintf("%d", ds.MetaData.NumValues),
				humanize.Bytes(uint64(ds.MetaData.TotalCompressedSize)),
				humanize.Bytes(uint64(ds.MetaData.TotalUncompressedSize)),
				ds.MetaData.Codec.String(),
			})
		}
		table.Render()
	}
	return nil
}
