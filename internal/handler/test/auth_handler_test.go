package test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"yatube/internal/models"
	"yatube/internal/repository"
)

func TestSignupHandler(t *testing.T) {
	t.Run("Успешная регистрация", func(t *testing.T) {
		mockAuthService := new(MockAuthService)
		mockAuthService.On("Register", mock.Anything, "leo", "secret123").
			Return(&models.User{ID: 1, Username: "leo", Role: models.RoleUser}, nil)

		handler := newTestHandlers()
		handler.AuthService = mockAuthService

		body, _ := json.Marshal(map[string]string{"username": "leo", "password": "secret123"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewReader(body))

		rr := httptest.NewRecorder()
		handler.Signup(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var response map[string]interface{}
		json.Unmarshal(rr.Body.Bytes(), &response)
		assert.Equal(t, "leo", response["username"])
	})

	t.Run("Занятое имя пользователя", func(t *testing.T) {
		mockAuthService := new(MockAuthService)
		mockAuthService.On("Register", mock.Anything, "leo", "secret123").
			Return(nil, fmt.Errorf("пользователь leo: %w", repository.ErrDuplicate))

		handler := newTestHandlers()
		handler.AuthService = mockAuthService

		body, _ := json.Marshal(map[string]string{"username": "leo", "password": "secret123"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewReader(body))

		rr := httptest.NewRecorder()
		handler.Signup(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Короткий пароль отклоняется", func(t *testing.T) {
		handler := newTestHandlers()

		body, _ := json.Marshal(map[string]string{"username": "leo", "password": "123"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewReader(body))

		rr := httptest.NewRecorder()
		handler.Signup(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestJWTCreateHandler(t *testing.T) {
	t.Run("Выдача пары токенов", func(t *testing.T) {
		mockAuthService := new(MockAuthService)
		mockAuthService.On("Login", mock.Anything, "leo", "secret123").
			Return(&models.User{ID: 1, Username: "leo"}, "access-token", "refresh-token", nil)

		handler := newTestHandlers()
		handler.AuthService = mockAuthService

		body, _ := json.Marshal(map[string]string{"username": "leo", "password": "secret123"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/jwt/create", bytes.NewReader(body))

		rr := httptest.NewRecorder()
		handler.JWTCreate(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response map[string]string
		json.Unmarshal(rr.Body.Bytes(), &response)
		assert.Equal(t, "access-token", response["access"])
		assert.Equal(t, "refresh-token", response["refresh"])
	})

	t.Run("Неверный пароль", func(t *testing.T) {
		mockAuthService := new(MockAuthService)
		mockAuthService.On("Login", mock.Anything, "leo", "wrong").
			Return(nil, "", "", errors.New("ошибка аутентификации"))

		handler := newTestHandlers()
		handler.AuthService = mockAuthService

		body, _ := json.Marshal(map[string]string{"username": "leo", "password": "wrong"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/jwt/create", bytes.NewReader(body))

		rr := httptest.NewRecorder()
		handler.JWTCreate(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestJWTRefreshHandler(t *testing.T) {
	t.Run("Просроченный refresh token", func(t *testing.T) {
		mockAuthService := new(MockAuthService)
		mockAuthService.On("RefreshTokens", mock.Anything, "stale").
			Return(nil, "", "", errors.New("недействительный refresh token"))

		handler := newTestHandlers()
		handler.AuthService = mockAuthService

		body, _ := json.Marshal(map[string]string{"refresh": "stale"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/jwt/refresh", bytes.NewReader(body))

		rr := httptest.NewRecorder()
		handler.JWTRefresh(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
