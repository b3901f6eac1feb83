package dataset

import (
	"bytes"
	"io"
	"strings"
	"sync"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the codec wrapped around an encoded blob.
type Compression uint8

const (
	// CompressionNone stores the blob as is.
	CompressionNone Compression = iota
	// CompressionZSTD uses zstd frames (".zst").
	CompressionZSTD
	// CompressionLZ4 uses lz4 frames (".lz4").
	CompressionLZ4
	// CompressionGzip uses gzip (".gz").
	CompressionGzip
)

var compressionSuffixes = []struct {
	suffix string
	c      Compression
}{
	{".zst", CompressionZSTD},
	{".lz4", CompressionLZ4},
	{".gz", CompressionGzip},
}

// String returns the file suffix of c, or "none".
func (c Compression) String() string {
	for _, s := range compressionSuffixes {
		if s.c == c {
			return s.suffix
		}
	}
	return "none"
}

// CompressionFor returns the codec named by the suffix of name and the name
// with that suffix removed.
func CompressionFor(name string) (Compression, string) {
	lower := strings.ToLower(name)
	for _, s := range compressionSuffixes {
		if strings.HasSuffix(lower, s.suffix) {
			return s.c, name[:len(name)-len(s.suffix)]
		}
	}
	return CompressionNone, name
}

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func compress(c Compression, data []byte) ([]byte, error) {
	switch c {
	case CompressionZSTD:
		enc := getZstdEncoder()
		defer zstdEncoderPool.Put(enc)
		return enc.EncodeAll(data, nil), nil
	case CompressionLZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case CompressionGzip:
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return data, nil
	}
}

func decompress(c Compression, data []byte) ([]byte, error) {
	switch c {
	case CompressionZSTD:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)
		return dec.DecodeAll(data, nil)
	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	case CompressionGzip:
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer func() { _ = r.Close() }()
		return io.ReadAll(r)
	default:
		return data, nil
	}
}
