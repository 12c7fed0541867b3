package sampledata

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

var csvHeader = []string{"product", "price"}

// writeCSV streams the row source as csv with the requested compression
// codec wrapped around the destination. An unknown codec is a hard error.
func writeCSV(ctx context.Context, w io.Writer, src *rowSource, compression string) error {
	out, closeCodec, err := csvCodec(w, compression)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(out)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	buf := make([]Row, batchSize)
	record := make([]string, 2)
	for {
		rows := src.next(buf)
		if len(rows) == 0 {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		for i := range rows {
			record[0] = rows[i].Product
			record[1] = strconv.Itoa(int(rows[i].Price))
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	if closeCodec != nil {
		return closeCodec()
	}
	return nil
}

// csvCodec wraps w with the named compression writer. The returned close
// function flushes the codec and must run before the underlying file is
// closed.
func csvCodec(w io.Writer, compression string) (io.Writer, func() error, error) {
	switch compression {
	case "":
		return w, nil, nil
	case "gzip":
		gw := gzip.NewWriter(w)
		return gw, gw.Close, nil
	case "zstd":
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, nil, err
		}
		return zw, zw.Close, nil
	}
	return nil, nil, errors.Errorf("unsupported csv compression %q", compression)
}
