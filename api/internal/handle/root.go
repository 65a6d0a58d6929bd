package handle

import "net/http"

const welcomeMessage = "Welcome to the Gemini Image Captioning API! Visit /docs for more info."

// Root serves the static service description on GET /.
func (h *Handle) Root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		writeDetail(w, http.StatusMethodNotAllowed, "GET only")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": welcomeMessage})
}
