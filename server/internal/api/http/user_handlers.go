package httpapi

import (
	"net/http"

	"github.com/PelusheLD/Pepito-s-House/server/internal/domain"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds domain.CredentialsInput
	if !decodeBody(w, r, &creds) {
		return
	}

	user, token, err := h.Users.Login(creds.Username, creds.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"id":           user.ID,
		"username":     user.Username,
		"role":         user.Role,
		"isFirstLogin": user.IsFirstLogin,
		"token":        token,
	})
}

// logout exists for client symmetry. Tokens are stateless, so the client
// discards its copy and the server just acknowledges.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "logged out")
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	claims := h.claimsFrom(r)
	if claims == nil {
		writeMessage(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := h.Users.Get(claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	claims := h.claimsFrom(r)
	if claims == nil {
		writeMessage(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var input domain.ChangePasswordInput
	if !decodeBody(w, r, &input) {
		return
	}

	if err := h.Users.ChangePassword(claims.UserID, input); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "password updated")
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var input domain.CredentialsInput
	if !decodeBody(w, r, &input) {
		return
	}

	user, err := h.Users.Create(input)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.Users.Delete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var body struct {
		NewPassword string `json:"newPassword"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	if err := h.Users.ResetPassword(id, body.NewPassword); err != nil {
		writeServiceError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "password reset")
}
