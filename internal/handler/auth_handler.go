package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"yatube/internal/repository"
)

type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=150"`
	Password string `json:"password" validate:"required,min=6"`
}

type TokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, msgBadRequest, http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные пользователя.", http.StatusBadRequest)
		return
	}

	user, err := h.AuthService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			WriteError(w, "Пользователь с таким именем уже существует.", http.StatusBadRequest)
			return
		}
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, UserResponse{ID: user.ID, Username: user.Username}, http.StatusCreated)
}

// JWTCreate выдаёт пару access/refresh по имени и паролю.
func (h *Handlers) JWTCreate(w http.ResponseWriter, r *http.Request) {
	var req TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, msgBadRequest, http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные.", http.StatusBadRequest)
		return
	}

	_, accessToken, refreshToken, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, "Неверное имя пользователя или пароль.", http.StatusUnauthorized)
		return
	}

	WriteSuccess(w, TokenResponse{Access: accessToken, Refresh: refreshToken}, http.StatusOK)
}

func (h *Handlers) JWTRefresh(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Refresh string `json:"refresh" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, msgBadRequest, http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Отсутствует refresh token.", http.StatusBadRequest)
		return
	}

	_, accessToken, refreshToken, err := h.AuthService.RefreshTokens(r.Context(), req.Refresh)
	if err != nil {
		WriteError(w, "Refresh token истек или недействителен.", http.StatusUnauthorized)
		return
	}

	WriteSuccess(w, TokenResponse{Access: accessToken, Refresh: refreshToken}, http.StatusOK)
}

func (h *Handlers) JWTVerify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, msgBadRequest, http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Отсутствует token.", http.StatusBadRequest)
		return
	}

	if _, err := h.AuthService.ValidateToken(req.Token); err != nil {
		WriteError(w, "Токен недействителен.", http.StatusUnauthorized)
		return
	}

	WriteSuccess(w, map[string]string{}, http.StatusOK)
}
