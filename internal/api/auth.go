package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/makuralymi/Questionnaire-survey/internal/config"
	"github.com/makuralymi/Questionnaire-survey/pkg/router"
)

// BasicAuth gates every dashboard route behind HTTP Basic credentials. It is
// a boundary check only: handlers behind it never see the credentials. The
// gate fails closed when no password is configured.
func BasicAuth(auth config.Auth) router.Middleware {
	return func(next router.HandlerFunc) router.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || auth.Password == "" ||
				subtle.ConstantTimeCompare([]byte(user), []byte(auth.User)) != 1 ||
				subtle.ConstantTimeCompare([]byte(pass), []byte(auth.Password)) != 1 {
				w.Header().Set("WWW-Authenticate", `Basic realm="Stats Dashboard"`)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next(w, r)
		}
	}
}
