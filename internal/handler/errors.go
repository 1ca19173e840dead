package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"yatube/internal/policy"
	"yatube/internal/repository"
	"yatube/internal/service"
	"yatube/internal/storage"
)

const (
	msgNotFound     = "Страница не найдена."
	msgAuthRequired = "Учетные данные не были предоставлены."
	msgBadRequest   = "Неверный формат запроса."
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Detail: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeDecision переводит отказ политики в ответ. Возвращает true,
// если запрос разрешён и обработку можно продолжать.
func writeDecision(w http.ResponseWriter, d policy.Decision) bool {
	switch d {
	case policy.Allow:
		return true
	case policy.DenyUnauthenticated:
		WriteError(w, msgAuthRequired, http.StatusUnauthorized)
	default:
		WriteError(w, policy.DeniedMessage, http.StatusForbidden)
	}
	return false
}

// writeServiceError переводит ошибки репозиториев и сервисов в HTTP-статусы.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, msgNotFound, http.StatusNotFound)
	case errors.Is(err, service.ErrTargetNotFound):
		WriteError(w, "Такого пользователя не существует.", http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidFollow):
		WriteError(w, "Неверный запрос на подписку.", http.StatusBadRequest)
	case errors.Is(err, service.ErrGroupNotFound):
		WriteError(w, "Группа не найдена.", http.StatusBadRequest)
	case errors.Is(err, storage.ErrBadDataURI):
		WriteError(w, "Недопустимый формат изображения.", http.StatusBadRequest)
	case errors.Is(err, service.ErrImageTooLarge):
		WriteError(w, "Размер изображения превышает допустимый.", http.StatusBadRequest)
	case errors.Is(err, repository.ErrDuplicate):
		WriteError(w, "Запись с такими данными уже существует.", http.StatusBadRequest)
	default:
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}
