package middleware

import (
	"bytes"
	"context"
	"io"
	"mime"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"go.opentelemetry.io/otel/attribute"

	"github.com/architeacher/devicedomains/internal/config"
	"github.com/architeacher/devicedomains/pkg/metrics"
)

const (
	encodingGzip   = "gzip"
	encodingBrotli = "br"

	headerAcceptEncoding  = "Accept-Encoding"
	headerContentEncoding = "Content-Encoding"
	headerVary            = "Vary"

	compressionAlgorithmKey = "compression.algorithm"

	httpCompressionTotal         = "http_compression_total"
	httpCompressionOriginalBytes = "http_compression_original_bytes"
	httpCompressionBytes         = "http_compression_compressed_bytes"
)

// DefaultCompressibleTypes are used when no content types are configured.
var DefaultCompressibleTypes = []string{
	"application/json",
	"application/problem+json",
	"text/plain",
}

// serverPreferenceOrder breaks ties between equally weighted encodings.
var serverPreferenceOrder = []string{encodingGzip, encodingBrotli}

type acceptEncoding struct {
	encoding string
	quality  float64
}

type compressor struct {
	gzipPool   sync.Pool
	brotliPool sync.Pool
}

func newCompressor(level int) *compressor {
	return &compressor{
		gzipPool: sync.Pool{New: func() any {
			w, err := gzip.NewWriterLevel(io.Discard, level)
			if err != nil {
				w = gzip.NewWriter(io.Discard)
			}

			return w
		}},
		brotliPool: sync.Pool{New: func() any {
			return brotli.NewWriterLevel(io.Discard, level)
		}},
	}
}

func (c *compressor) compress(encoding string, body []byte) ([]byte, error) {
	var out bytes.Buffer

	switch encoding {
	case encodingGzip:
		w := c.gzipPool.Get().(*gzip.Writer)
		defer c.gzipPool.Put(w)

		w.Reset(&out)
		if _, err := w.Write(body); err != nil {
			return nil, err
		}

		if err := w.Close(); err != nil {
			return nil, err
		}
	case encodingBrotli:
		w := c.brotliPool.Get().(*brotli.Writer)
		defer c.brotliPool.Put(w)

		w.Reset(&out)
		if _, err := w.Write(body); err != nil {
			return nil, err
		}

		if err := w.Close(); err != nil {
			return nil, err
		}
	}

	return out.Bytes(), nil
}

// Compression encodes responses of at least cfg.MinSize bytes with the best
// encoding the client accepts. Smaller bodies, bodiless statuses and
// non-textual content types are sent unchanged.
func Compression(cfg config.Compression, metricsClient metrics.Client) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	contentTypes := cfg.ContentTypes
	if len(contentTypes) == 0 {
		contentTypes = DefaultCompressibleTypes
	}

	c := newCompressor(cfg.Level)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			encoding := selectEncoding(parseAcceptEncoding(r.Header.Get(headerAcceptEncoding)))
			if encoding == "" {
				next.ServeHTTP(w, r)

				return
			}

			buffered := NewBufferedResponseWriter(w)
			next.ServeHTTP(buffered, r)

			body := buffered.Body()
			if !shouldCompress(buffered, body, cfg.MinSize, contentTypes) {
				_ = buffered.FlushToClient()

				return
			}

			compressed, err := c.compress(encoding, body)
			if err != nil {
				_ = buffered.FlushToClient()

				return
			}

			recordCompression(r.Context(), metricsClient, encoding, len(body), len(compressed))

			w.Header().Set(headerContentEncoding, encoding)
			w.Header().Add(headerVary, headerAcceptEncoding)
			w.Header().Set("Content-Length", strconv.Itoa(len(compressed)))
			w.WriteHeader(buffered.StatusCode())
			_, _ = w.Write(compressed)
		})
	}
}

func shouldCompress(buffered *BufferedResponseWriter, body []byte, minSize int, contentTypes []string) bool {
	switch status := buffered.StatusCode(); {
	case status < http.StatusOK, status == http.StatusNoContent, status == http.StatusNotModified:
		return false
	}

	if len(body) == 0 || len(body) < minSize {
		return false
	}

	if buffered.Header().Get(headerContentEncoding) != "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(buffered.Header().Get(contentTypeHeader))
	if err != nil {
		return false
	}

	return slices.Contains(contentTypes, mediaType)
}

func parseAcceptEncoding(header string) []acceptEncoding {
	var encodings []acceptEncoding

	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		name, params, _ := strings.Cut(part, ";")
		enc := acceptEncoding{encoding: strings.ToLower(strings.TrimSpace(name)), quality: 1.0}

		if q, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
			if quality, err := strconv.ParseFloat(q, 64); err == nil {
				enc.quality = quality
			}
		}

		encodings = append(encodings, enc)
	}

	return encodings
}

// selectEncoding picks the highest weighted supported encoding, preferring
// gzip over brotli on ties. A wildcard stands for any encoding not named.
func selectEncoding(encodings []acceptEncoding) string {
	best, bestQuality := "", 0.0

	for _, candidate := range serverPreferenceOrder {
		quality := encodingQuality(encodings, candidate)
		if quality > bestQuality {
			best, bestQuality = candidate, quality
		}
	}

	return best
}

func encodingQuality(encodings []acceptEncoding, name string) float64 {
	wildcard := 0.0

	for _, enc := range encodings {
		switch enc.encoding {
		case name:
			return enc.quality
		case "*":
			wildcard = enc.quality
		}
	}

	return wildcard
}

func recordCompression(ctx context.Context, metricsClient metrics.Client, encoding string, original, compressed int) {
	if metricsClient == nil {
		return
	}

	attr := attribute.String(compressionAlgorithmKey, encoding)

	metricsClient.Inc(ctx, httpCompressionTotal, int64(1), attr)
	metricsClient.Inc(ctx, httpCompressionOriginalBytes, int64(original), attr)
	metricsClient.Inc(ctx, httpCompressionBytes, int64(compressed), attr)
}
