package handle

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"caption-api/api/internal/caption"
)

// Uploads are buffered fully in memory; anything past this is refused.
const maxUploadBytes = 32 << 20

type CaptionResponse struct {
	Filename string `json:"filename"`
	Caption  string `json:"caption"`
}

// Caption accepts one multipart image upload, forwards it to the model with
// the fixed prompt and returns the caption. Every failure is mapped to a
// JSON error body here; nothing propagates past this handler.
func (h *Handle) Caption(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeDetail(w, http.StatusMethodNotAllowed, "POST only")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeDetail(w, http.StatusBadRequest, "bad multipart upload: "+err.Error())
		return
	}
	defer file.Close()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		writeDetail(w, http.StatusBadRequest, "Invalid file type. Please upload an image.")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeDetail(w, http.StatusInternalServerError, "An unexpected error occurred: "+err.Error())
		return
	}

	if err := caption.CheckDecodable(data); err != nil {
		writeCaptionErr(w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestDeadline(r))
	defer cancel()

	text, err := h.captioner.Caption(ctx, data)
	if err != nil {
		writeCaptionErr(w, err)
		return
	}

	writeJSON(w, http.StatusOK, CaptionResponse{
		Filename: header.Filename,
		Caption:  caption.Normalize(text),
	})
}

// writeCaptionErr translates the error taxonomy to HTTP exactly once, at the
// request boundary. Provider failures name the provider; everything else is
// reported generically.
func writeCaptionErr(w http.ResponseWriter, err error) {
	switch caption.KindOf(err) {
	case caption.KindProvider:
		writeDetail(w, http.StatusInternalServerError, "Gemini API Error: "+err.Error())
	default:
		writeDetail(w, http.StatusInternalServerError, "An unexpected error occurred: "+err.Error())
	}
}

func requestDeadline(r *http.Request) time.Duration {
	deadline := 180 * time.Second
	if ts := r.Header.Get("X-Request-Timeout"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			deadline = time.Duration(v) * time.Second
		}
	} else if ts := r.URL.Query().Get("timeoutSec"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			deadline = time.Duration(v) * time.Second
		}
	}
	return deadline
}
