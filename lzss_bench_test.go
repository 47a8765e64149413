package lzss

import (
	"bytes"
	"testing"
)

var benchInput = bytes.Repeat([]byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit. "), 512)

func BenchmarkCompress(b *testing.B) {
	data := benchInput
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Compress(data, nil)
	}
}

func BenchmarkCompressPresets(b *testing.B) {
	data := benchInput
	for _, name := range PresetNames() {
		params, err := LookupPreset(name)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = Compress(data, params)
			}
		})
	}
}

func BenchmarkCompressInto(b *testing.B) {
	data := benchInput
	params := DefaultParams()
	win := AllocWindow(params)
	dst := make([]byte, CompressBound(len(data), params))
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = CompressInto(data, dst, win, params)
	}
}

func BenchmarkDecompress(b *testing.B) {
	data := benchInput
	enc, err := Compress(data, nil)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decompress(enc, len(data), nil)
	}
}
