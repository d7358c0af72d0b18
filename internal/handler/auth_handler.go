package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/acesite/backend/internal/service"
	"github.com/acesite/backend/pkg/auth"
)

// AuthHandler handles admin login and logout.
type AuthHandler struct {
	auth         service.AuthService
	secret       []byte
	secureCookie bool
}

// NewAuthHandler creates an AuthHandler. secureCookie should be true in
// production so the session cookie is only sent over HTTPS.
func NewAuthHandler(authSvc service.AuthService, secret []byte, secureCookie bool) *AuthHandler {
	return &AuthHandler{auth: authSvc, secret: secret, secureCookie: secureCookie}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message,omitempty"`
}

// Login handles POST /api/admin/login. Every failure returns the same
// message so the endpoint does not leak which accounts exist.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, loginResponse{Success: false, Message: "Invalid request body"})
		return
	}

	user, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeJSON(w, http.StatusUnauthorized, loginResponse{Success: false, Message: "Invalid email or password"})
		return
	}
	if err != nil {
		slog.Error("login failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, loginResponse{Success: false, Message: "An error occurred. Please try again later."})
		return
	}

	token := auth.CreateSessionToken(auth.Session{UserID: user.ID, Role: user.Role}, h.secret)
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    token,
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, loginResponse{Success: true, Name: user.Name, Email: user.Email})
}

// Logout handles POST /api/admin/logout by expiring the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, actionResponse{Success: true})
}

// Me handles GET /api/admin/me for session checks from the admin UI.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, actionResponse{Success: false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "userId": userID})
}
