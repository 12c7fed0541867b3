package sampledata

import (
	"context"
	"io"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress"
	"github.com/pkg/errors"

	"github.com/tabtools/tabgen/pkg/build"
)

// parquetCodec maps a compression name to a parquet codec. An empty name
// selects the uncompressed codec explicitly, so the choice is recorded in
// the column metadata rather than merely absent.
func parquetCodec(name string) (compress.Codec, error) {
	switch name {
	case "", "uncompressed":
		return &parquet.Uncompressed, nil
	case "gzip":
		return &parquet.Gzip, nil
	case "zstd":
		return &parquet.Zstd, nil
	case "snappy":
		return &parquet.Snappy, nil
	}
	return nil, errors.Errorf("unsupported parquet compression %q", name)
}

func writeParquet(ctx context.Context, w io.Writer, src *rowSource, compression string) error {
	codec, err := parquetCodec(compression)
	if err != nil {
		return err
	}

	pw := parquet.NewGenericWriter[Row](w,
		parquet.Compression(codec),
		parquet.CreatedBy("github.com/tabtools/tabgen", build.Version, build.GitSHA),
	)

	buf := make([]Row, batchSize)
	for {
		rows := src.next(buf)
		if len(rows) == 0 {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := pw.Write(rows); err != nil {
			return err
		}
	}
	return pw.Close()
}
