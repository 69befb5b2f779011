package middleware

import (
	"net/http"

	"github.com/heartmarshall/carecompanion-backend/pkg/ctxutil"
)

// TimezoneHeader carries the caller's IANA zone name, e.g. "Europe/Berlin".
const TimezoneHeader = "X-Timezone"

// Timezone stores the caller's location in the request context.
// Unknown or missing zones resolve to UTC.
func Timezone(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loc := ctxutil.ParseTimezone(r.Header.Get(TimezoneHeader))
		next.ServeHTTP(w, r.WithContext(ctxutil.WithTimezone(r.Context(), loc)))
	})
}
