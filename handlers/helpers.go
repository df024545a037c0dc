package handlers

import (
	"encoding/json"
	"net/http"

	"daydo/utils"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		utils.Logger.Errorw("encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

// readJSON decodes the request body; a body that does not parse is an
// internal error on this API, not a 400.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.Logger.Errorw("decoding request body", "path", r.URL.Path, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return false
	}
	return true
}

// requireSession resolves the sessionId cookie through the registry before
// any protected work runs.
func requireSession(w http.ResponseWriter, r *http.Request, registry utils.SessionRegistry) (string, bool) {
	if !utils.CookieExists(r, "sessionId") {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	cookie, _ := r.Cookie("sessionId")
	userID, err := registry.Resolve(cookie.Value)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return "", false
	}
	return userID, true
}
