package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/architeacher/devicedomains/pkg/logger"
)

const (
	codeInternalError = "INTERNAL_ERROR"
	msgInternalError  = "internal server error"
)

func Recovery(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}

				// The server aborts the response itself; nothing to report.
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				var errMsg string
				switch v := rvr.(type) {
				case string:
					errMsg = v
				case error:
					errMsg = v.Error()
				default:
					errMsg = fmt.Sprintf("%v", v)
				}

				reqLogger := log.WithContext(r.Context())
				reqLogger.Error().
					Str("error", errMsg).
					Str("stack", string(debug.Stack())).
					Str("path", r.URL.Path).
					Str("method", r.Method).
					Msg("panic recovered")

				writeError(w, http.StatusInternalServerError, codeInternalError, msgInternalError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
