package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/muhammadheryan/storefront-search/constant"
	"github.com/muhammadheryan/storefront-search/utils/errors"
)

// InternalMiddleware checks for static API key in header. An empty key
// disables the internal routes entirely.
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("Authorization")
			want := "Bearer " + apiKey
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(got), []byte(want)) != 1 {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
