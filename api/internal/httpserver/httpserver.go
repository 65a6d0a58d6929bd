package httpserver

import (
	"log"
	"net/http"
)

// New builds the service mux with the always-on health probe; callers add
// their own routes before Start.
func New() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// Start blocks serving mux on addr.
func Start(addr string, mux *http.ServeMux) error {
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}
