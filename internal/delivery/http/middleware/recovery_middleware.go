package middleware

import (
	"fmt"
	"net/http"

	"sepsis-screening-server/pkg/response"

	"github.com/sirupsen/logrus"
)

// RecoveryMiddleware converts handler panics into a 500 JSON response. The
// panic value is echoed back outside production only.
type RecoveryMiddleware struct {
	production bool
}

func NewRecoveryMiddleware(production bool) *RecoveryMiddleware {
	return &RecoveryMiddleware{production: production}
}

func (m *RecoveryMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logrus.Errorf("Panic serving %s %s: %+v", r.Method, r.URL.Path, rec)
				if m.production {
					response.InternalServerError(w, "Internal Server Error")
					return
				}
				response.ErrorWithDetail(w, http.StatusInternalServerError, "Internal Server Error", fmt.Sprintf("%v", rec))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
