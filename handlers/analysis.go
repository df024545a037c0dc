package handlers

import (
	"net/http"

	"daydo/utils"
)

// GetAnalysis returns the rolling 7-day summary, most recent day first.
func GetAnalysis(w http.ResponseWriter, r *http.Request, registry utils.SessionRegistry, svc *utils.TaskService) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	userID, ok := requireSession(w, r, registry)
	if !ok {
		return
	}

	analysis, err := svc.Analysis(userID)
	if err != nil {
		utils.Logger.Errorw("building analysis", "userId", userID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"analysis": analysis})
}
