package handlers

import (
	"errors"
	"net/http"

	"daydo/models"
	"daydo/utils"
)

func Register(w http.ResponseWriter, r *http.Request, store utils.UserStore) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.RegisterRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.Name == "" || req.UserID == "" || req.Password == "" || req.Gmail == "" {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}
	if err := utils.ValidateUserID(req.UserID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := utils.RegisterUser(store, req)
	if err != nil {
		if errors.Is(err, utils.ErrUserExists) {
			writeError(w, http.StatusBadRequest, "User already exists")
			return
		}
		utils.Logger.Errorw("registering user", "userId", req.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	go func() {
		if err := utils.SendWelcomeEmail(user.Name, user.Gmail); err != nil {
			utils.Logger.Errorw("sending welcome email", "gmail", user.Gmail, "error", err)
		}
	}()

	writeMessage(w, "User registered successfully")
}

func Login(w http.ResponseWriter, r *http.Request, store utils.UserStore, registry utils.SessionRegistry) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req models.LoginRequest
	if !readJSON(w, r, &req) {
		return
	}
	if req.UserID == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "UserId and password required")
		return
	}

	token, err := utils.LoginUser(store, registry, req.UserID, req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.Logger.Errorw("logging in user", "userId", req.UserID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "sessionId",
		Value:    token,
		HttpOnly: true,
		Path:     "/",
	})
	writeMessage(w, "Login successful")
}

func Logout(w http.ResponseWriter, r *http.Request, registry utils.SessionRegistry) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if _, ok := requireSession(w, r, registry); !ok {
		return
	}

	cookie, _ := r.Cookie("sessionId")
	if err := registry.Destroy(cookie.Value); err != nil {
		utils.Logger.Errorw("destroying session", "error", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "sessionId",
		Value:    "",
		HttpOnly: true,
		Path:     "/",
		MaxAge:   -1,
	})
	writeMessage(w, "Logged out")
}
