package handlers

import (
	"log"
	"net/http"
	"runtime"
)

// RecoverWrapper wraps an http.HandlerFunc with panic recovery. A recovered
// panic answers with the standard error envelope so clients never see a
// half-written body.
func RecoverWrapper(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := make([]byte, 8*1024)
				stack = stack[:runtime.Stack(stack, false)]
				log.Printf("panic on %s %s: %v\n%s", r.Method, r.URL.Path, rec, stack)
				writeJSON(w, http.StatusInternalServerError, ApiResponse{
					Success: false,
					Message: "internal server error",
				})
			}
		}()

		handler(w, r)
	}
}
