package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"yatube/internal/models"
	"yatube/internal/policy"
	"yatube/internal/service"
)

func TestGetFollowsHandler(t *testing.T) {
	t.Run("Аноним не видит подписок", func(t *testing.T) {
		handler := newTestHandlers()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/follow", nil)
		rr := httptest.NewRecorder()
		handler.GetFollows(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Список подписок текущего пользователя", func(t *testing.T) {
		mockFollowService := new(MockFollowService)
		mockFollowService.On("ListFollows", mock.Anything, int64(1), "").
			Return([]models.Follow{
				{ID: 1, UserID: 1, User: "leo", FollowingID: 2, Following: "anna"},
			}, nil)

		handler := newTestHandlers()
		handler.FollowService = mockFollowService

		req := httptest.NewRequest(http.MethodGet, "/api/v1/follow", nil)
		req = withPrincipal(req, policy.Principal{UserID: 1, Username: "leo", Role: models.RoleUser})

		rr := httptest.NewRecorder()
		handler.GetFollows(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response []models.Follow
		json.Unmarshal(rr.Body.Bytes(), &response)
		assert.Len(t, response, 1)
		assert.Equal(t, "anna", response[0].Following)
	})

	t.Run("Параметр search передаётся в сервис", func(t *testing.T) {
		mockFollowService := new(MockFollowService)
		mockFollowService.On("ListFollows", mock.Anything, int64(1), "ann").
			Return([]models.Follow{}, nil)

		handler := newTestHandlers()
		handler.FollowService = mockFollowService

		req := httptest.NewRequest(http.MethodGet, "/api/v1/follow?search=ann", nil)
		req = withPrincipal(req, policy.Principal{UserID: 1, Username: "leo", Role: models.RoleUser})

		rr := httptest.NewRecorder()
		handler.GetFollows(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockFollowService.AssertExpectations(t)
	})
}

func TestCreateFollowHandler(t *testing.T) {
	t.Run("Успешная подписка", func(t *testing.T) {
		mockFollowService := new(MockFollowService)
		mockFollowService.On("CreateFollow", mock.Anything, int64(1), "anna").
			Return(&models.Follow{ID: 1, UserID: 1, User: "leo", FollowingID: 2, Following: "anna"}, nil)

		handler := newTestHandlers()
		handler.FollowService = mockFollowService

		body, _ := json.Marshal(map[string]string{"following": "anna"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/follow", bytes.NewReader(body))
		req = withPrincipal(req, policy.Principal{UserID: 1, Username: "leo", Role: models.RoleUser})

		rr := httptest.NewRecorder()
		handler.CreateFollow(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Подписка на несуществующего пользователя", func(t *testing.T) {
		mockFollowService := new(MockFollowService)
		mockFollowService.On("CreateFollow", mock.Anything, int64(1), "nobody").
			Return(nil, service.ErrTargetNotFound)

		handler := newTestHandlers()
		handler.FollowService = mockFollowService

		body, _ := json.Marshal(map[string]string{"following": "nobody"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/follow", bytes.NewReader(body))
		req = withPrincipal(req, policy.Principal{UserID: 1, Username: "leo", Role: models.RoleUser})

		rr := httptest.NewRecorder()
		handler.CreateFollow(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var response map[string]string
		json.Unmarshal(rr.Body.Bytes(), &response)
		assert.Equal(t, "Такого пользователя не существует.", response["detail"])
	})

	t.Run("Повторная или самоподписка", func(t *testing.T) {
		mockFollowService := new(MockFollowService)
		mockFollowService.On("CreateFollow", mock.Anything, int64(1), "leo").
			Return(nil, service.ErrInvalidFollow)

		handler := newTestHandlers()
		handler.FollowService = mockFollowService

		body, _ := json.Marshal(map[string]string{"following": "leo"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/follow", bytes.NewReader(body))
		req = withPrincipal(req, policy.Principal{UserID: 1, Username: "leo", Role: models.RoleUser})

		rr := httptest.NewRecorder()
		handler.CreateFollow(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var response map[string]string
		json.Unmarshal(rr.Body.Bytes(), &response)
		assert.Equal(t, "Неверный запрос на подписку.", response["detail"])
	})

	t.Run("Отсутствует поле following", func(t *testing.T) {
		handler := newTestHandlers()

		body, _ := json.Marshal(map[string]string{})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/follow", bytes.NewReader(body))
		req = withPrincipal(req, policy.Principal{UserID: 1, Username: "leo", Role: models.RoleUser})

		rr := httptest.NewRecorder()
		handler.CreateFollow(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
