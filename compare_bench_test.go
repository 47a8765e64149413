package lzss

import (
	"testing"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// BenchmarkRatio reports compressed size relative to input for this codec
// and a few reference block codecs on the same data.
func BenchmarkRatio(b *testing.B) {
	data := benchInput

	b.Run("lzss", func(b *testing.B) {
		var n int
		for i := 0; i < b.N; i++ {
			out, err := Compress(data, nil)
			if err != nil {
				b.Fatal(err)
			}
			n = len(out)
		}
		b.ReportMetric(float64(n)/float64(len(data)), "ratio")
	})

	b.Run("snappy", func(b *testing.B) {
		var n int
		for i := 0; i < b.N; i++ {
			n = len(snappy.Encode(nil, data))
		}
		b.ReportMetric(float64(n)/float64(len(data)), "ratio")
	})

	b.Run("lz4", func(b *testing.B) {
		dst := make([]byte, lz4.CompressBlockBound(len(data)))
		var n int
		for i := 0; i < b.N; i++ {
			var err error
			n, err = lz4.CompressBlock(data, dst, nil)
			if err != nil {
				b.Fatal(err)
			}
		}
		b.ReportMetric(float64(n)/float64(len(data)), "ratio")
	})

	b.Run("zstd", func(b *testing.B) {
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			b.Fatal(err)
		}
		defer enc.Close()

		var n int
		for i := 0; i < b.N; i++ {
			n = len(enc.EncodeAll(data, nil))
		}
		b.ReportMetric(float64(n)/float64(len(data)), "ratio")
	})
}
