package handle

import (
	"encoding/json"
	"net/http"

	"caption-api/api/internal/caption"
)

type Handle struct {
	captioner caption.Captioner
}

func New(c caption.Captioner) *Handle {
	return &Handle{
		captioner: c,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, code int, detail string) {
	writeJSON(w, code, map[string]string{"detail": detail})
}
