package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"yatube/cmd/app"
	"yatube/internal/config"
	handlers "yatube/internal/handler"
	"yatube/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, cfg)

	router := mux.NewRouter()
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()

	// auth
	api.HandleFunc("/users", handler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/jwt/create", handler.JWTCreate).Methods(http.MethodPost)
	api.HandleFunc("/jwt/refresh", handler.JWTRefresh).Methods(http.MethodPost)
	api.HandleFunc("/jwt/verify", handler.JWTVerify).Methods(http.MethodPost)

	// posts
	api.HandleFunc("/posts", handler.GetPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id:[0-9]+}", handler.GetPost).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id:[0-9]+}", handler.UpdatePost).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/posts/{id:[0-9]+}", handler.DeletePost).Methods(http.MethodDelete)

	// comments
	api.HandleFunc("/posts/{post_id:[0-9]+}/comments", handler.GetComments).Methods(http.MethodGet)
	api.HandleFunc("/posts/{post_id:[0-9]+}/comments", handler.CreateComment).Methods(http.MethodPost)
	api.HandleFunc("/posts/{post_id:[0-9]+}/comments/{id:[0-9]+}", handler.GetComment).Methods(http.MethodGet)
	api.HandleFunc("/posts/{post_id:[0-9]+}/comments/{id:[0-9]+}", handler.UpdateComment).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/posts/{post_id:[0-9]+}/comments/{id:[0-9]+}", handler.DeleteComment).Methods(http.MethodDelete)

	// groups
	api.HandleFunc("/groups", handler.GetGroups).Methods(http.MethodGet)
	api.HandleFunc("/groups", handler.CreateGroup).Methods(http.MethodPost)
	api.HandleFunc("/groups/{id:[0-9]+}", handler.GetGroup).Methods(http.MethodGet)
	api.HandleFunc("/groups/{id:[0-9]+}", handler.UpdateGroup).Methods(http.MethodPut, http.MethodPatch)
	api.HandleFunc("/groups/{id:[0-9]+}", handler.DeleteGroup).Methods(http.MethodDelete)

	// follows
	api.HandleFunc("/follow", handler.GetFollows).Methods(http.MethodGet)
	api.HandleFunc("/follow", handler.CreateFollow).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		router,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware,
		middleware.AuthMiddleware(services.Auth),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
