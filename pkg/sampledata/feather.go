package sampledata

import (
	"context"
	"io"

	"github.com/apache/arrow/go/v12/arrow"
	"github.com/apache/arrow/go/v12/arrow/array"
	"github.com/apache/arrow/go/v12/arrow/ipc"
	"github.com/apache/arrow/go/v12/arrow/memory"
)

// FeatherSchema is the Arrow schema of generated feather files.
var FeatherSchema = arrow.NewSchema([]arrow.Field{
	{Name: "product", Type: arrow.BinaryTypes.String, Nullable: false},
	{Name: "price", Type: arrow.PrimitiveTypes.Int32, Nullable: false},
}, nil)

// writeFeather materializes rows into in-memory Arrow record batches and
// writes them as an Arrow IPC file. Feather output is always
// zstd-compressed; the Compression parameter does not apply to this format.
func writeFeather(ctx context.Context, w io.WriteSeeker, src *rowSource) error {
	pool := memory.NewGoAllocator()
	fw, err := ipc.NewFileWriter(w,
		ipc.WithSchema(FeatherSchema),
		ipc.WithAllocator(pool),
		ipc.WithZstd(),
	)
	if err != nil {
		return err
	}

	b := array.NewRecordBuilder(pool, FeatherSchema)
	defer b.Release()
	productBuilder := b.Field(0).(*array.StringBuilder)
	priceBuilder := b.Field(1).(*array.Int32Builder)

	buf := make([]Row, batchSize)
	for {
		rows := src.next(buf)
		if len(rows) == 0 {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		productBuilder.Reserve(len(rows))
		priceBuilder.Reserve(len(rows))
		for i := range rows {
			productBuilder.Append(rows[i].Product)
			priceBuilder.Append(rows[i].Price)
		}
		rec := b.NewRecord()
		err := fw.Write(rec)
		rec.Release()
		if err != nil {
			return err
		}
	}
	return fw.Close()
}
