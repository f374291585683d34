package middleware

import (
	"net/http"
	"os"
	"strconv"
)

const defaultMaxBodyBytes = 1 << 20 // 1 MiB

// MaxBodyMiddleware caps request body size. KYC uploads use a larger
// multipart limit enforced in the handler itself.
func MaxBodyMiddleware(next http.Handler) http.Handler {
	limit := int64(defaultMaxBodyBytes)
	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			limit = n
		}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
