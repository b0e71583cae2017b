package middleware

import (
	"bytes"
	"net/http"
)

// StatusRecorder passes writes through while remembering the status code and
// the number of body bytes sent.
type StatusRecorder struct {
	http.ResponseWriter
	statusCode   int
	bytesWritten uint64
	wroteHeader  bool
}

func NewStatusRecorder(w http.ResponseWriter) *StatusRecorder {
	return &StatusRecorder{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (w *StatusRecorder) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}

	w.statusCode = code
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *StatusRecorder) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytesWritten += uint64(n)

	return n, err
}

func (w *StatusRecorder) StatusCode() int {
	return w.statusCode
}

func (w *StatusRecorder) BytesWritten() uint64 {
	return w.bytesWritten
}

func (w *StatusRecorder) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (w *StatusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// BufferedResponseWriter holds the whole response back so a later stage can
// rewrite it. Headers are written to the wrapped writer's header map.
type BufferedResponseWriter struct {
	http.ResponseWriter
	statusCode  int
	body        bytes.Buffer
	wroteHeader bool
}

func NewBufferedResponseWriter(w http.ResponseWriter) *BufferedResponseWriter {
	return &BufferedResponseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (w *BufferedResponseWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}

	w.statusCode = code
	w.wroteHeader = true
}

func (w *BufferedResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	return w.body.Write(b)
}

func (w *BufferedResponseWriter) StatusCode() int {
	return w.statusCode
}

func (w *BufferedResponseWriter) Body() []byte {
	return w.body.Bytes()
}

// FlushToClient sends the buffered status and body unchanged.
func (w *BufferedResponseWriter) FlushToClient() error {
	w.ResponseWriter.WriteHeader(w.statusCode)
	_, err := w.ResponseWriter.Write(w.body.Bytes())

	return err
}
