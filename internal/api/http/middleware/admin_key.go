package middleware

import (
	"crypto/hmac"
	"encoding/json"
	"net/http"
	"strings"

	"service-ratebank/internal/models"
)

const apiKeyHeader = "X-API-Key"

// AdminKey guards cache-mutating routes. With an empty adminKey every request
// is refused.
func AdminKey(adminKey string) func(http.Handler) http.Handler {
	adminKey = strings.TrimSpace(adminKey)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminKey == "" {
				writeBizErr(w, http.StatusForbidden, "admin_disabled", "admin api is disabled")
				return
			}

			key := strings.TrimSpace(r.Header.Get(apiKeyHeader))
			if key == "" {
				writeBizErr(w, http.StatusUnauthorized, "api_key_missing", "missing X-API-Key")
				return
			}
			if !hmac.Equal([]byte(key), []byte(adminKey)) {
				writeBizErr(w, http.StatusUnauthorized, "invalid_api_key", "invalid api key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func writeBizErr(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.BusinessError{Code: code, Message: msg})
}
