package app

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/mailcow-tools/scim-bridge/pkg/config"
)

const authzHeaderParts = 2

type application struct {
	cfg *config.Auth
}

// auth rejects any request without the expected bearer token before a single
// downstream call is made.
func (app *application) auth(next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqToken := r.Header.Get("Authorization")
		splitToken := strings.Split(reqToken, "Bearer ")

		if len(splitToken) == authzHeaderParts {
			if subtle.ConstantTimeCompare([]byte(app.cfg.Bearer.Token), []byte(splitToken[1])) == 1 {
				next.ServeHTTP(w, r)
				return
			}
		}

		w.Header().Set("WWW-Authenticate", `Bearer realm="restricted"`)
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	})
}
