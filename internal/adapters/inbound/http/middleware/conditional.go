package middleware

import (
	"encoding/binary"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	headerETag        = "ETag"
	headerIfNoneMatch = "If-None-Match"
)

// ETag derives a strong, quoted entity tag from the response body.
func ETag(body []byte) string {
	var sum [8]byte
	binary.BigEndian.PutUint64(sum[:], xxhash.Sum64(body))

	return `"` + hex.EncodeToString(sum[:]) + `"`
}

// ConditionalGET tags successful GET responses and answers 304 Not Modified
// when the client already holds the current representation.
func ConditionalGET() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)

				return
			}

			buffered := NewBufferedResponseWriter(w)
			next.ServeHTTP(buffered, r)

			if buffered.StatusCode() != http.StatusOK {
				_ = buffered.FlushToClient()

				return
			}

			etag := ETag(buffered.Body())
			w.Header().Set(headerETag, etag)

			if etagMatches(r.Header.Get(headerIfNoneMatch), etag) {
				w.Header().Del(contentTypeHeader)
				w.Header().Del("Content-Length")
				w.WriteHeader(http.StatusNotModified)

				return
			}

			_ = buffered.FlushToClient()
		})
	}
}

// etagMatches applies the weak comparison RFC 9110 prescribes for
// If-None-Match.
func etagMatches(ifNoneMatch, etag string) bool {
	if ifNoneMatch == "" {
		return false
	}

	if strings.TrimSpace(ifNoneMatch) == "*" {
		return true
	}

	for _, candidate := range strings.Split(ifNoneMatch, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == etag {
			return true
		}
	}

	return false
}
